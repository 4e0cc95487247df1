package pair

// Walk repeatedly calls Tail, invoking yield with each pair in the chain
// starting with this one, in the range-over-func iterator style. It stops
// when yield returns false, when the chain ends, or when Tail returns an
// error -- in the last case the error is discarded by Walk itself; use
// WalkErr to observe it.
//
// This adds no semantics beyond repeated Tail calls (mempair.py's
// original usage pattern); it exists purely as a convenience for the
// common "walk to the end" case.
func (p *Pair) Walk(yield func(*Pair) bool) {
	p.WalkErr(func(q *Pair, err error) bool {
		if err != nil {
			return false
		}
		return yield(q)
	})
}

// WalkErr is like Walk but also reports the error, if any, that ended the
// walk early (nil if the chain simply ran out).
func (p *Pair) WalkErr(yield func(*Pair, error) bool) {
	cur := p
	for {
		if !yield(cur, nil) {
			return
		}
		next, err := cur.Tail()
		if err != nil {
			yield(nil, err)
			return
		}
		if next == nil {
			return
		}
		cur = next
	}
}
