package layouts9p_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wolneykien/gopair/layouts9p"
	"github.com/wolneykien/gopair/pair"
)

func TestQidArrayHandover(t *testing.T) {
	// Scenario S4: parent head + 3 13-byte qids; a 4th Tail() is
	// OutOfRange because there is no further ancestor.
	body := layouts9p.NewQidArrayBody(3)
	buf := make([]byte, 3*13)
	for i := 0; i < 3; i++ {
		buf[i*13] = byte(i + 1) // qid type byte, just to distinguish elements
	}

	root, err := pair.New(body, buf)
	require.NoError(t, err)

	cur := root
	for i := 0; i < 3; i++ {
		next, err := cur.Tail()
		require.NoError(t, err)
		require.NotNil(t, next)
		require.Equal(t, layouts9p.Qid, next.Layout())
		require.Equal(t, i, next.Index())

		v, err := next.Lookup("type")
		require.NoError(t, err)
		require.Equal(t, uint64(i+1), v.Scalar)

		cur = next
	}

	end, err := cur.Tail()
	require.NoError(t, err)
	require.Nil(t, end)
}

func TestQidArrayIndexedAccess(t *testing.T) {
	body := layouts9p.NewQidArrayBody(3)
	buf := make([]byte, 3*13)
	buf[1*13] = 0x2A // second qid's type byte

	root, err := pair.New(body, buf)
	require.NoError(t, err)

	v, err := root.Index("qids", 1)
	require.NoError(t, err)

	got, err := v.Lookup("type")
	require.NoError(t, err)
	require.Equal(t, uint64(0x2A), got.Scalar)

	_, err = root.Index("qids", 3)
	require.ErrorIs(t, err, pair.ErrOutOfRange)
}

func TestEnvelopeUnknownType(t *testing.T) {
	buf := []byte{0x07, 0x00, 0x00, 0x00, 0xF0, 0x00, 0x00} // type 0xF0 unregistered
	p, err := pair.New(layouts9p.Envelope, buf)
	require.NoError(t, err)

	_, err = p.Tail()
	require.ErrorIs(t, err, pair.ErrSuccessorUnresolved)
}

func TestByteArray9P(t *testing.T) {
	buf := []byte{0x03, 0x00, 0x01, 0x02, 0x03}
	p, err := pair.New(layouts9p.ByteArray9P, buf)
	require.NoError(t, err)

	tail, err := p.Tail()
	require.NoError(t, err)
	require.NotNil(t, tail)

	v, err := tail.Lookup("bytes")
	require.NoError(t, err)
	require.Equal(t, []byte{0x01, 0x02, 0x03}, v.Scalar)
}
