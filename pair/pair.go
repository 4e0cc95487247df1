// Package pair implements a lazy, navigable view over a byte buffer
// composed of a chain of pairs. Each pair has a fixed-layout head of
// known size and an optional tail, which is itself another pair whose
// head layout is determined at runtime by inspecting the preceding head
// (or, for array elements, by walking up to a parent pair). See the
// package-level tests for worked examples.
//
// The package never copies the buffer it is given: every Pair is a view
// that aliases its caller's byte slice, and HeadView reads/writes go
// straight through to that slice.
package pair

// Pair is an immutable handle over a byte range with a bound head layout.
// Construct a root with New; derive children with Tail.
type Pair struct {
	buf    []byte
	layout *HeadLayout
	parent *Pair
	index  int
}

// New binds buf to layout as a root pair. Returns HeadOverflow if buf is
// shorter than layout's declared size.
func New(layout *HeadLayout, buf []byte) (*Pair, error) {
	return newChild(layout, buf, nil, 0)
}

// newChild is the single construction path used by both New and tail
// discovery, so the HeadOverflow check is enforced in one place.
func newChild(layout *HeadLayout, buf []byte, parent *Pair, index int) (*Pair, error) {
	if len(buf) < layout.Size() {
		return nil, newHeadOverflow(len(buf), layout.Size())
	}
	return &Pair{buf: buf, layout: layout, parent: parent, index: index}, nil
}

// Layout returns the HeadLayout bound to this pair.
func (p *Pair) Layout() *HeadLayout { return p.layout }

// Parent returns the pair whose successor rule produced this one, or nil
// for the root.
func (p *Pair) Parent() *Pair { return p.parent }

// Index returns this pair's position under its parent's successor rule;
// 0 if the pair was produced fresh, incremented by one each time
// responsibility handover advances within the same parent.
func (p *Pair) Index() int { return p.index }

// Head returns a typed read/write projection over this pair's head bytes.
func (p *Pair) Head() HeadView {
	return HeadView{layout: p.layout, buf: p.buf[:p.layout.Size()]}
}

// HeadBuffer returns the address and length of this pair's head.
func (p *Pair) HeadBuffer() (*byte, int) {
	size := p.layout.Size()
	if size == 0 {
		return nil, 0
	}
	return &p.buf[0], size
}

// RawBuffer returns the address and length of the entire slice this pair
// was constructed over, including any trailing space beyond the resolved
// chain. Unlike FullBuffer, this never walks the tail.
func (p *Pair) RawBuffer() (*byte, int) {
	if len(p.buf) == 0 {
		return nil, 0
	}
	return &p.buf[0], len(p.buf)
}

// FullBuffer returns the address and length of this pair's head plus the
// full chain of its tail, computed by one recursive descent. Never
// copies. A SuccessorUnresolved or HeadOverflow encountered while walking
// the tail truncates the length at the last pair known to be valid and
// returns that error.
func (p *Pair) FullBuffer() (*byte, int, error) {
	addr, _ := p.HeadBuffer()
	total := p.layout.Size()

	tail, err := p.Tail()
	if err != nil {
		return addr, total, err
	}
	if tail == nil {
		return addr, total, nil
	}

	_, tailLen, err := tail.FullBuffer()
	return addr, total + tailLen, err
}
