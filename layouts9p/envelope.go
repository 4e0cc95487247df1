package layouts9p

import (
	"fmt"

	"github.com/wolneykien/gopair/pair"
)

// bodyTable is the static type -> body-layout dispatch table design note
// 9.4 asks for ("prefer a static table from u8 -> layout to any form of
// runtime class lookup"), replacing messages.py's p9msgclasses tuple
// indexed by the message's type byte.
var bodyTable [256]*pair.HeadLayout

// RegisterBody declares the body layout for 9P message type t. Intended
// to be called from package init functions of callers that define
// concrete message bodies; Envelope's successor rule consults this table
// at tail-discovery time, never before.
func RegisterBody(t byte, layout *pair.HeadLayout) {
	bodyTable[t] = layout
}

// Envelope is the 9P message head: {size:u32, type:u8, tag:u16}. Its
// successor rule dispatches on type through bodyTable, mirroring
// messages.py's p9msg.cdarclass(): an unregistered type is
// SuccessorUnresolved, matching the original's ValueError("Unknown
// message type").
var Envelope = pair.NewLayout("envelope", 7,
	pair.Field{Name: "size", Kind: pair.KindU32, Offset: 0},
	pair.Field{Name: "type", Kind: pair.KindU8, Offset: 4},
	pair.Field{Name: "tag", Kind: pair.KindU16, Offset: 5},
).WithHomogeneousSuccessor(func(h pair.HeadView) (*pair.HeadLayout, error) {
	t, err := h.GetUint("type")
	if err != nil {
		return nil, err
	}
	body := bodyTable[t]
	if body == nil {
		return nil, fmt.Errorf("unknown message type: %d", t)
	}
	return body, nil
})
