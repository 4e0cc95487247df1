package layouts9p

import "github.com/wolneykien/gopair/pair"

// Concrete message type bytes used by the fixtures in this package and in
// pair's end-to-end scenario tests. These are illustrative stand-ins,
// not the full 9P protocol -- just enough to drive a few worked
// scenarios.
const (
	// TypeEmpty is a message type whose body is empty: the envelope's
	// successor rule resolves to the terminal, zero-size EmptyBody layout,
	// so the envelope's Tail returns a zero-length empty-body pair and
	// that pair's Tail returns nil (scenario S1).
	TypeEmpty byte = 0x6D

	// TypeVersion is a message type whose body is a u32 msize followed
	// by a String9P version tag, driving the nested-successor walk of
	// scenario S5: envelope -> body -> string -> char-array -> end.
	TypeVersion byte = 100

	// TypeStat is a message type whose body is a fixed-count array of
	// qids, driving the responsibility-handover walk of scenario S4.
	TypeStat byte = 101
)

// EmptyBody is a zero-size terminal body layout: binding it produces a
// pair whose head is empty and which has no tail.
var EmptyBody = pair.NewLayout("empty-body", 0).WithArrayDelegate()

// VersionBody is {msize:u32} whose successor is String9P's tag field,
// matching 9P's Tversion/Rversion message shape closely enough to
// exercise nested successor resolution end to end.
var VersionBody = pair.NewLayout("version-body", 4,
	pair.Field{Name: "msize", Kind: pair.KindU32, Offset: 0},
).WithHomogeneousSuccessor(func(pair.HeadView) (*pair.HeadLayout, error) {
	return String9P, nil
})

// NewQidArrayBody declares a body layout with no head fields of its own,
// whose entire tail is a CDR map of exactly count consecutive Qid pairs
// named "qids" (scenario S4): parsing stops with OutOfRange once count
// elements have been produced, the responsibility-handover equivalent of
// messages.py never defining a cdarclass for p9qid and thus always
// delegating to its parent. The handover index rule itself is derived
// from the CDR map entry, not hand-written here.
func NewQidArrayBody(count int) *pair.HeadLayout {
	return pair.NewLayout("qid-array-body", 0).
		WithCDRMap(pair.CDREntry{Name: "qids", Layout: Qid, Count: count})
}

func init() {
	RegisterBody(TypeEmpty, EmptyBody)
	RegisterBody(TypeVersion, VersionBody)
	RegisterBody(TypeStat, NewQidArrayBody(3))
}
