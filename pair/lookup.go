package pair

// Value is the result of a successful Lookup: either a scalar (uint64,
// []byte or string, matching the field's Kind) or a *Pair when name names
// a CDR-map slot.
type Value struct {
	Scalar any
	Sub    *Pair
}

// Lookup resolves name against this pair and, failing that, its tail
// chain.
//
//  1. If name is a head field of this layout, return its scalar value.
//  2. Else, if this layout's successor rule is a CDR map and name names
//     one of its entries, return the first sub-pair of that group
//     (indexed access for count > 1 follows via Index).
//  3. Else, walk the tail chain: for each pair reached by Tail, retry
//     steps 1-2 against it.
//
// UnknownField if the chain is exhausted without a match.
func (p *Pair) Lookup(name string) (Value, error) {
	if f, ok := p.layout.field(name); ok {
		v, err := scalarOf(p.Head(), f)
		return Value{Scalar: v}, err
	}

	if _, ok := p.layout.CDREntryFor(name); ok {
		sub, err := p.Index(name, 0)
		if err != nil {
			return Value{}, err
		}
		return Value{Sub: sub}, nil
	}

	walker, err := p.Tail()
	for {
		if err != nil {
			return Value{}, err
		}
		if walker == nil {
			return Value{}, newUnknownField(name)
		}
		if f, ok := walker.layout.field(name); ok {
			v, err := scalarOf(walker.Head(), f)
			return Value{Scalar: v}, err
		}
		if _, ok := walker.layout.CDREntryFor(name); ok {
			sub, err := walker.Index(name, 0)
			if err != nil {
				return Value{}, err
			}
			return Value{Sub: sub}, nil
		}
		walker, err = walker.Tail()
	}
}

func scalarOf(h HeadView, f Field) (any, error) {
	switch f.Kind {
	case KindU8, KindU16, KindU32, KindU64:
		return h.GetUint(f.Name)
	case KindChars:
		return h.GetString(f.Name)
	default:
		return h.GetBytes(f.Name)
	}
}

// Index resolves the i'th element of a CDR-map slot named name. When the
// owning layout's CDR map has other entries declared before name, their
// sub-pair ranges are skipped first: the flat position passed to Tail's
// responsibility handover is the sum of every earlier entry's count,
// plus i.
//
// If name's entry and every entry before it have an element layout with
// no successor of its own (array-delegate, terminal), every element is a
// fixed size and the skip is O(1): direct byte arithmetic into the tail.
// Otherwise it walks Tail the flat position's worth of times, O(n).
//
// OutOfRange if i >= the declared count. UnknownField if name does not
// name a CDR-map slot reachable from this pair (following the same
// chain-walk Lookup uses).
func (p *Pair) Index(name string, i int) (*Pair, error) {
	owner, entry, err := p.findCDREntry(name)
	if err != nil {
		return nil, err
	}
	if i < 0 || i >= entry.Count {
		return nil, newOutOfRange(name, i, entry.Count)
	}

	flat := i
	skipBytes := 0
	allTerminal := entry.Layout.terminal()
	for _, e := range owner.layout.cdrMap {
		if e.Name == entry.Name {
			break
		}
		flat += e.Count
		skipBytes += e.Count * e.Layout.Size()
		if !e.Layout.terminal() {
			allTerminal = false
		}
	}

	first, err := owner.Tail()
	if err != nil {
		return nil, err
	}
	if first == nil {
		return nil, newOutOfRange(name, i, entry.Count)
	}

	if allTerminal {
		off := skipBytes + i*entry.Layout.Size()
		if off > len(first.buf) {
			return nil, newHeadOverflow(0, entry.Layout.Size())
		}
		return newChild(entry.Layout, first.buf[off:], owner, flat)
	}

	elem := first
	for n := 0; n < flat; n++ {
		elem, err = elem.Tail()
		if err != nil {
			return nil, err
		}
		if elem == nil {
			return nil, newOutOfRange(name, i, entry.Count)
		}
	}
	return elem, nil
}

// findCDREntry walks this pair's chain (itself, then Tail, then Tail's
// Tail, ...) looking for a CDR-map entry named name, the same traversal
// Lookup uses for unowned names.
func (p *Pair) findCDREntry(name string) (owner *Pair, entry CDREntry, err error) {
	walker := p
	for walker != nil {
		if e, ok := walker.layout.CDREntryFor(name); ok {
			return walker, e, nil
		}
		walker, err = walker.Tail()
		if err != nil {
			return nil, CDREntry{}, err
		}
	}
	return nil, CDREntry{}, newUnknownField(name)
}

// Set writes value into the head field named name, mirroring Lookup but
// for mutation. Defined only for primitive head fields: writing into a
// CDR-map slot name is UnknownField, since slot names are read-only
// navigation handles.
func (p *Pair) Set(name string, value any) error {
	if f, ok := p.layout.field(name); ok {
		return setScalar(p.Head(), f, value)
	}

	walker, err := p.Tail()
	for {
		if err != nil {
			return err
		}
		if walker == nil {
			return newUnknownField(name)
		}
		if f, ok := walker.layout.field(name); ok {
			return setScalar(walker.Head(), f, value)
		}
		walker, err = walker.Tail()
	}
}

func setScalar(h HeadView, f Field, value any) error {
	switch f.Kind {
	case KindU8, KindU16, KindU32, KindU64:
		v, ok := asUint64(value)
		if !ok {
			return newValueOutOfRange(f.Name, f.width())
		}
		return h.SetUint(f.Name, v)
	case KindChars:
		s, ok := value.(string)
		if !ok {
			return newValueOutOfRange(f.Name, f.width())
		}
		return h.SetBytes(f.Name, []byte(s))
	default:
		b, ok := value.([]byte)
		if !ok {
			return newValueOutOfRange(f.Name, f.width())
		}
		return h.SetBytes(f.Name, b)
	}
}

func asUint64(value any) (uint64, bool) {
	switch v := value.(type) {
	case uint64:
		return v, true
	case uint32:
		return uint64(v), true
	case uint16:
		return uint64(v), true
	case uint8:
		return uint64(v), true
	case int:
		if v < 0 {
			return 0, false
		}
		return uint64(v), true
	default:
		return 0, false
	}
}
