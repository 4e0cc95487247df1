package pair

import "encoding/binary"

// HeadView is a typed read/write projection over a pair's head bytes. It
// never copies: every Get/Set reads or writes directly into the backing
// slice the Pair was constructed over.
type HeadView struct {
	layout *HeadLayout
	buf    []byte // exactly layout.Size() bytes
}

// Layout returns the layout this view projects.
func (h HeadView) Layout() *HeadLayout { return h.layout }

// GetUint returns the value of an integer-kinded field (u8/u16/u32/u64) as
// a uint64. Returns UnknownField if name is absent or if the field is not
// integer-kinded.
func (h HeadView) GetUint(name string) (uint64, error) {
	f, ok := h.layout.field(name)
	if !ok {
		return 0, newUnknownField(name)
	}
	b := h.buf[f.Offset : f.Offset+f.width()]
	switch f.Kind {
	case KindU8:
		return uint64(b[0]), nil
	case KindU16:
		return uint64(binary.LittleEndian.Uint16(b)), nil
	case KindU32:
		return uint64(binary.LittleEndian.Uint32(b)), nil
	case KindU64:
		return binary.LittleEndian.Uint64(b), nil
	default:
		return 0, newUnknownField(name)
	}
}

// GetBytes returns the raw bytes of a KindBytes/KindChars field, aliasing
// the backing buffer.
func (h HeadView) GetBytes(name string) ([]byte, error) {
	f, ok := h.layout.field(name)
	if !ok {
		return nil, newUnknownField(name)
	}
	if f.Kind != KindBytes && f.Kind != KindChars {
		return nil, newUnknownField(name)
	}
	return h.buf[f.Offset : f.Offset+f.width()], nil
}

// GetString returns a KindChars field decoded as a string (a copy, since
// Go strings are immutable; the head bytes themselves are never copied
// elsewhere).
func (h HeadView) GetString(name string) (string, error) {
	b, err := h.GetBytes(name)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// SetUint writes v into an integer-kinded field. Returns ValueOutOfRange
// if v does not fit the field's width.
func (h HeadView) SetUint(name string, v uint64) error {
	f, ok := h.layout.field(name)
	if !ok {
		return newUnknownField(name)
	}
	w := f.width()
	b := h.buf[f.Offset : f.Offset+w]
	switch f.Kind {
	case KindU8:
		if v > 0xff {
			return newValueOutOfRange(name, w)
		}
		b[0] = byte(v)
	case KindU16:
		if v > 0xffff {
			return newValueOutOfRange(name, w)
		}
		binary.LittleEndian.PutUint16(b, uint16(v))
	case KindU32:
		if v > 0xffffffff {
			return newValueOutOfRange(name, w)
		}
		binary.LittleEndian.PutUint32(b, uint32(v))
	case KindU64:
		binary.LittleEndian.PutUint64(b, v)
	default:
		return newUnknownField(name)
	}
	return nil
}

// SetBytes copies src into a KindBytes/KindChars field. Returns
// ValueOutOfRange if len(src) does not equal the field's declared width.
func (h HeadView) SetBytes(name string, src []byte) error {
	f, ok := h.layout.field(name)
	if !ok {
		return newUnknownField(name)
	}
	if f.Kind != KindBytes && f.Kind != KindChars {
		return newUnknownField(name)
	}
	w := f.width()
	if len(src) != w {
		return newValueOutOfRange(name, w)
	}
	copy(h.buf[f.Offset:f.Offset+w], src)
	return nil
}
