package layouts9p

import "github.com/wolneykien/gopair/pair"

// ByteArray9P is a 9P length-prefixed byte array, grounded on
// messages.py's p9msgarray: a u16 length prefix followed by that many raw
// bytes, structurally identical to String9P but for opaque data rather
// than text.
var ByteArray9P = pair.NewLayout("bytearray9p", 2,
	pair.Field{Name: "len", Kind: pair.KindU16, Offset: 0},
).WithHomogeneousSuccessor(func(h pair.HeadView) (*pair.HeadLayout, error) {
	n, err := h.GetUint("len")
	if err != nil {
		return nil, err
	}
	return bytesLayout(int(n)), nil
})

// bytesLayout returns a fresh terminal layout for a raw byte array of
// exactly n bytes, addressable by the field name "bytes".
func bytesLayout(n int) *pair.HeadLayout {
	return pair.NewLayout("bytes", n,
		pair.Field{Name: "bytes", Kind: pair.KindBytes, Offset: 0, Width: n},
	).WithArrayDelegate()
}
