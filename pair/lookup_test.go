package pair

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLookupLocalField(t *testing.T) {
	l := NewLayout("l", 2, Field{Name: "tag", Kind: KindU16, Offset: 0})
	buf := []byte{0x34, 0x12}
	p, err := New(l, buf)
	require.NoError(t, err)

	v, err := p.Lookup("tag")
	require.NoError(t, err)
	require.Equal(t, uint64(0x1234), v.Scalar)
}

func TestLookupWalksTailChain(t *testing.T) {
	inner := NewLayout("inner", 1, Field{Name: "x", Kind: KindU8, Offset: 0}).WithArrayDelegate()
	outer := NewLayout("outer", 1, Field{Name: "n", Kind: KindU8, Offset: 0}).
		WithHomogeneousSuccessor(func(HeadView) (*HeadLayout, error) { return inner, nil })

	p, err := New(outer, []byte{0x00, 0x2A})
	require.NoError(t, err)

	v, err := p.Lookup("x")
	require.NoError(t, err)
	require.Equal(t, uint64(0x2A), v.Scalar)
}

func TestLookupUnknownField(t *testing.T) {
	// Scenario S6: lookup after exhausting the chain is UnknownField.
	l := NewLayout("l", 1, Field{Name: "a", Kind: KindU8, Offset: 0}).WithArrayDelegate()
	p, err := New(l, []byte{0x00})
	require.NoError(t, err)

	_, err = p.Lookup("nonexistent")
	require.ErrorIs(t, err, ErrUnknownField)
}

func TestLookupCDRMapSlotReturnsFirstElement(t *testing.T) {
	elem := NewLayout("elem", 1, Field{Name: "v", Kind: KindU8, Offset: 0}).WithArrayDelegate()
	parent := NewLayout("parent", 0).
		WithCDRMap(CDREntry{Name: "items", Layout: elem, Count: 3})

	p, err := New(parent, []byte{10, 20, 30})
	require.NoError(t, err)

	v, err := p.Lookup("items")
	require.NoError(t, err)
	require.NotNil(t, v.Sub)
	got, err := v.Sub.Lookup("v")
	require.NoError(t, err)
	require.Equal(t, uint64(10), got.Scalar)
}

func TestIndexO1SkipForTerminalElements(t *testing.T) {
	elem := NewLayout("elem", 2, Field{Name: "v", Kind: KindU16, Offset: 0}).WithArrayDelegate()
	parent := NewLayout("parent", 0).
		WithCDRMap(CDREntry{Name: "items", Layout: elem, Count: 3})

	buf := []byte{0x01, 0x00, 0x02, 0x00, 0x03, 0x00}
	p, err := New(parent, buf)
	require.NoError(t, err)

	e2, err := p.Index("items", 2)
	require.NoError(t, err)
	v, err := e2.Lookup("v")
	require.NoError(t, err)
	require.Equal(t, uint64(3), v.Scalar)
}

func TestIndexOutOfRange(t *testing.T) {
	elem := NewLayout("elem", 1, Field{Name: "v", Kind: KindU8, Offset: 0}).WithArrayDelegate()
	parent := NewLayout("parent", 0).
		WithCDRMap(CDREntry{Name: "items", Layout: elem, Count: 2})

	p, err := New(parent, []byte{1, 2})
	require.NoError(t, err)

	_, err = p.Index("items", 2)
	require.ErrorIs(t, err, ErrOutOfRange)
}

func TestMultiEntryCDRMap(t *testing.T) {
	// A heterogeneous CDR map with two named entries: two 1-byte "a"
	// elements followed by three 2-byte "b" elements, all addressed
	// through the same owner. Exercises skipping earlier entries'
	// sub-pair ranges before landing on a later entry's elements.
	elemA := NewLayout("elemA", 1, Field{Name: "v", Kind: KindU8, Offset: 0}).WithArrayDelegate()
	elemB := NewLayout("elemB", 2, Field{Name: "v", Kind: KindU16, Offset: 0}).WithArrayDelegate()
	parent := NewLayout("parent", 0).
		WithCDRMap(
			CDREntry{Name: "a", Layout: elemA, Count: 2},
			CDREntry{Name: "b", Layout: elemB, Count: 3},
		)

	buf := []byte{
		0x01, 0x02, // a[0], a[1]
		0x03, 0x00, 0x04, 0x00, 0x05, 0x00, // b[0], b[1], b[2]
	}
	p, err := New(parent, buf)
	require.NoError(t, err)

	a0, err := p.Index("a", 0)
	require.NoError(t, err)
	v, err := a0.Lookup("v")
	require.NoError(t, err)
	require.Equal(t, uint64(0x01), v.Scalar)

	a1, err := p.Index("a", 1)
	require.NoError(t, err)
	v, err = a1.Lookup("v")
	require.NoError(t, err)
	require.Equal(t, uint64(0x02), v.Scalar)

	b0, err := p.Index("b", 0)
	require.NoError(t, err)
	v, err = b0.Lookup("v")
	require.NoError(t, err)
	require.Equal(t, uint64(0x03), v.Scalar)

	b2, err := p.Index("b", 2)
	require.NoError(t, err)
	v, err = b2.Lookup("v")
	require.NoError(t, err)
	require.Equal(t, uint64(0x05), v.Scalar)

	_, err = p.Index("b", 3)
	require.ErrorIs(t, err, ErrOutOfRange)

	// Walking Tail from the start visits a[0], a[1], b[0], b[1], b[2]
	// in order, then ends.
	var gotVals []uint64
	p.Walk(func(cur *Pair) bool {
		if cur == p {
			return true
		}
		v, err := cur.Lookup("v")
		require.NoError(t, err)
		gotVals = append(gotVals, v.Scalar.(uint64))
		return true
	})
	require.Equal(t, []uint64{0x01, 0x02, 0x03, 0x04, 0x05}, gotVals)
}
