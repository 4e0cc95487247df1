package pair

import "github.com/wolneykien/gopair/pair/trace"

// Tail discovers and returns the pair that forms this pair's tail, or nil
// if there is none: a local rule attempt, then (for array-delegate
// layouts) responsibility handover up the parent chain, then a bounds
// check, then construction of the child.
//
// Re-entering Tail on the same Pair with the buffer unchanged yields an
// equivalent Pair view: the algorithm is a pure function of (p.layout,
// p.Head(), p.parent, p.index) and the buffer's current contents.
func (p *Pair) Tail() (*Pair, error) {
	trace.Log("tail: layout=%s index=%d", p.layout.name, p.index)

	next, parent, idx, err := p.resolveSuccessor()
	if err != nil {
		return nil, err
	}
	if next == nil {
		trace.Log("tail: layout=%s has no successor", p.layout.name)
		return nil, nil
	}

	rest := p.buf[p.layout.Size():]
	if len(rest) < next.Size() {
		return nil, newHeadOverflow(len(rest), next.Size())
	}
	return newChild(next, rest, parent, idx)
}

// resolveSuccessor attempts the local successor rule first, falling
// back to responsibility handover for array-delegate layouts. It returns
// the next layout (nil meaning "no tail"), the parent and index the
// resulting pair should carry, or an error.
func (p *Pair) resolveSuccessor() (next *HeadLayout, parent *Pair, idx int, err error) {
	switch p.layout.ruleKind {
	case RuleHomogeneous:
		n, err := p.layout.homogeneous(p.Head())
		if err != nil {
			return nil, nil, 0, newSuccessorUnresolved(err)
		}
		return n, p, 0, nil

	case RuleCDRMap:
		rule := p.layout.effectiveIndexed()
		if rule == nil {
			return nil, nil, 0, nil
		}
		n, result, err := rule(0)
		if err != nil {
			return nil, nil, 0, newSuccessorUnresolved(err)
		}
		if result != IndexedNext {
			return nil, nil, 0, nil
		}
		return n, p, 0, nil

	case RuleArrayDelegate:
		return p.handover()

	default:
		return nil, nil, 0, nil
	}
}

// handover implements the responsibility-handover walk: starting at
// p.parent with k := p.Index()+1, consult each ancestor's indexed rule
// until one accepts k, one ends the chain, or the ancestors are
// exhausted.
func (p *Pair) handover() (next *HeadLayout, parent *Pair, idx int, err error) {
	walker := p.parent
	k := p.index + 1

	for walker != nil {
		trace.Log("handover: trying parent layout=%s k=%d", walker.layout.name, k)

		rule := walker.layout.effectiveIndexed()
		if rule == nil {
			k = walker.index + 1
			walker = walker.parent
			continue
		}

		n, result, err := rule(k)
		if err != nil {
			return nil, nil, 0, newSuccessorUnresolved(err)
		}
		switch result {
		case IndexedNext:
			return n, walker, k, nil
		case IndexedEnd:
			return nil, nil, 0, nil
		case IndexedOutOfRange:
			k = walker.index + 1
			walker = walker.parent
		}
	}

	return nil, nil, 0, nil
}
