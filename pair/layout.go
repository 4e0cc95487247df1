package pair

import "fmt"

// Kind is the primitive type of a head field. Widths and encoding are
// fixed: little-endian, packed, no padding between fields.
type Kind int

const (
	// KindU8 is a single unsigned byte.
	KindU8 Kind = iota
	// KindU16 is a little-endian uint16.
	KindU16
	// KindU32 is a little-endian uint32.
	KindU32
	// KindU64 is a little-endian uint64.
	KindU64
	// KindBytes is a fixed-length raw byte array.
	KindBytes
	// KindChars is a fixed-length byte array interpreted as text.
	KindChars
)

// fixedWidth returns the field width in bytes for fixed-size kinds. For
// KindBytes/KindChars the width is carried on the Field itself (n), not
// derivable from the Kind alone, so callers must use Field.Width.
func (k Kind) fixedWidth() (int, bool) {
	switch k {
	case KindU8:
		return 1, true
	case KindU16:
		return 2, true
	case KindU32:
		return 4, true
	case KindU64:
		return 8, true
	default:
		return 0, false
	}
}

// Field describes one named member of a head layout.
type Field struct {
	Name   string
	Kind   Kind
	Offset int
	// Width is required for KindBytes/KindChars, and is derived from Kind
	// for fixed-width primitive kinds (callers may leave it zero there).
	Width int
}

func (f Field) width() int {
	if w, ok := f.Kind.fixedWidth(); ok {
		return w
	}
	return f.Width
}

// RuleKind identifies which of the three successor-rule variants a
// HeadLayout carries.
type RuleKind int

const (
	// RuleHomogeneous: a function of the decoded head picks the single
	// next layout, or signals End.
	RuleHomogeneous RuleKind = iota
	// RuleCDRMap: the tail is a fixed, heterogeneous sequence of named
	// sub-pair groups declared up front.
	RuleCDRMap
	// RuleArrayDelegate: this layout has no local successor; resolution
	// is delegated to the parent via responsibility handover.
	RuleArrayDelegate
)

// HomogeneousFunc inspects a fully-populated head and returns the layout
// of the pair that follows, or (nil, nil) to mean End, or a
// SuccessorUnresolved-worthy error if the head's values don't decide it.
type HomogeneousFunc func(h HeadView) (*HeadLayout, error)

// CDREntry is one named, fixed-count group of a CDR map.
type CDREntry struct {
	Name   string
	Layout *HeadLayout
	Count  int
}

// IndexedResult is the outcome of consulting a parent's IndexedFunc during
// responsibility handover.
type IndexedResult int

const (
	// IndexedNext means the lookup produced a next layout.
	IndexedNext IndexedResult = iota
	// IndexedEnd means this ancestor authoritatively ends the chain.
	IndexedEnd
	// IndexedOutOfRange means this ancestor has no opinion at this
	// index; the walk continues to the next ancestor up.
	IndexedOutOfRange
)

// IndexedFunc resolves the layout for index i during responsibility
// handover.
type IndexedFunc func(i int) (*HeadLayout, IndexedResult, error)

// HeadLayout is an immutable, fixed-size head descriptor: field table plus
// successor rule. Build one with NewLayout and the fluent Withxxx setters;
// its fields are unexported, so a struct literal from outside the package
// cannot set them.
type HeadLayout struct {
	name   string
	size   int
	fields []Field
	byName map[string]int

	ruleKind    RuleKind
	homogeneous HomogeneousFunc
	cdrMap      []CDREntry
	indexed     IndexedFunc
}

// NewLayout declares a head layout of the given byte size with the given
// fields. It panics if a field's offset+width exceeds the declared size,
// or if two fields overlap -- these are descriptor-authoring bugs, not
// runtime HeadOverflow: "buffer too small" and "layout malformed" are
// distinct failure modes.
func NewLayout(name string, size int, fields ...Field) *HeadLayout {
	l := &HeadLayout{
		name:   name,
		size:   size,
		fields: fields,
		byName: make(map[string]int, len(fields)),
	}
	for i, f := range fields {
		start, end := f.Offset, f.Offset+f.width()
		if f.Offset < 0 || end > size {
			panic(fmt.Sprintf("pair: layout %q: field %q at [%d,%d) exceeds declared size %d", name, f.Name, start, end, size))
		}
		for _, other := range fields[:i] {
			oStart, oEnd := other.Offset, other.Offset+other.width()
			if start < oEnd && oStart < end {
				panic(fmt.Sprintf("pair: layout %q: field %q at [%d,%d) overlaps field %q at [%d,%d)", name, f.Name, start, end, other.Name, oStart, oEnd))
			}
		}
		l.byName[f.Name] = i
	}
	return l
}

// Name returns the layout's declared name, useful for diagnostics.
func (l *HeadLayout) Name() string { return l.name }

// Size returns the fixed byte size of this head.
func (l *HeadLayout) Size() int { return l.size }

// Fields returns the ordered field table.
func (l *HeadLayout) Fields() []Field { return l.fields }

// field looks up a field by name; ok is false if absent.
func (l *HeadLayout) field(name string) (Field, bool) {
	i, ok := l.byName[name]
	if !ok {
		return Field{}, false
	}
	return l.fields[i], true
}

// WithHomogeneousSuccessor declares this layout's successor rule as a
// homogeneous function of the head.
func (l *HeadLayout) WithHomogeneousSuccessor(fn HomogeneousFunc) *HeadLayout {
	l.ruleKind = RuleHomogeneous
	l.homogeneous = fn
	return l
}

// WithCDRMap declares this layout's tail as a heterogeneous sequence of
// named sub-pair groups. entries must cover the entire tail; the core
// does not itself verify coverage beyond what construction naturally
// enforces (an undersized tail surfaces as HeadOverflow on the offending
// element).
func (l *HeadLayout) WithCDRMap(entries ...CDREntry) *HeadLayout {
	l.ruleKind = RuleCDRMap
	l.cdrMap = entries
	return l
}

// WithArrayDelegate declares this layout has no local successor rule;
// resolution is delegated to the parent pair during responsibility
// handover. Used for elements inside a CDR-map slot.
func (l *HeadLayout) WithArrayDelegate() *HeadLayout {
	l.ruleKind = RuleArrayDelegate
	return l
}

// WithIndexedRule declares the indexed successor rule this layout exposes
// when it is acting as a parent during responsibility handover.
func (l *HeadLayout) WithIndexedRule(fn IndexedFunc) *HeadLayout {
	l.indexed = fn
	return l
}

// terminal reports whether this layout has no successor of any kind --
// neither a local rule that could produce a tail, nor an indexed rule a
// child could hand responsibility to. Used for the O(1) index skip of
// §4.6.
func (l *HeadLayout) terminal() bool {
	return l.ruleKind == RuleArrayDelegate && l.indexed == nil
}

// CDREntryFor returns the CDR-map entry named name, if this layout's
// successor rule is a CDR map and it has one.
func (l *HeadLayout) CDREntryFor(name string) (CDREntry, bool) {
	if l.ruleKind != RuleCDRMap {
		return CDREntry{}, false
	}
	for _, e := range l.cdrMap {
		if e.Name == name {
			return e, true
		}
	}
	return CDREntry{}, false
}

// effectiveIndexed returns the indexed rule this layout exposes during
// responsibility handover: an explicit WithIndexedRule override if one
// was given, otherwise -- for a CDR map -- one derived from the entries
// themselves, resolving a flat index across all of them in declaration
// order. This is what makes a multi-entry CDR map's later entries
// reachable by handover without every caller having to re-derive the
// same per-entry index arithmetic WithCDRMap already declared.
func (l *HeadLayout) effectiveIndexed() IndexedFunc {
	if l.indexed != nil {
		return l.indexed
	}
	if l.ruleKind != RuleCDRMap || len(l.cdrMap) == 0 {
		return nil
	}
	cdrMap := l.cdrMap
	return func(k int) (*HeadLayout, IndexedResult, error) {
		if k < 0 {
			return nil, IndexedOutOfRange, nil
		}
		base := 0
		for _, e := range cdrMap {
			if k < base+e.Count {
				return e.Layout, IndexedNext, nil
			}
			base += e.Count
		}
		return nil, IndexedOutOfRange, nil
	}
}
