package layouts9p

import "github.com/wolneykien/gopair/pair"

// String9P is a 9P message string: a u16 length prefix followed by that
// many bytes of text, grounded on messages.py's p9msgstring. The
// successor rule reads the just-decoded len field and produces a
// terminal Chars[len] layout (scenario S2).
var String9P = pair.NewLayout("string9p", 2,
	pair.Field{Name: "len", Kind: pair.KindU16, Offset: 0},
).WithHomogeneousSuccessor(func(h pair.HeadView) (*pair.HeadLayout, error) {
	n, err := h.GetUint("len")
	if err != nil {
		return nil, err
	}
	return charsLayout(int(n)), nil
})

// charsLayout returns a fresh terminal layout for a char array of exactly
// n bytes, addressable by the field name "chars".
func charsLayout(n int) *pair.HeadLayout {
	return pair.NewLayout("chars", n,
		pair.Field{Name: "chars", Kind: pair.KindChars, Offset: 0, Width: n},
	).WithArrayDelegate()
}
