package layouts9p

import "github.com/wolneykien/gopair/pair"

// Qid is the 9P qid type: the server's unique identifier for a file being
// accessed. It is terminal -- it declares no successor of its own, so it
// must always appear as an array-delegate element inside a parent's
// CDR-map slot (e.g. NewQidArrayBody in messages.go), per messages.py's p9qid.
var Qid = pair.NewLayout("qid", 13,
	pair.Field{Name: "type", Kind: pair.KindU8, Offset: 0},
	pair.Field{Name: "version", Kind: pair.KindU32, Offset: 1},
	pair.Field{Name: "path", Kind: pair.KindU64, Offset: 5},
).WithArrayDelegate()
