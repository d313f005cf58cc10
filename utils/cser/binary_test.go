package cser

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBinaryAdapterRoundTrip(t *testing.T) {
	require := require.New(t)

	raw, err := MarshalBinaryAdapter(func(w *Writer) error {
		w.U64(42)
		w.Bool(true)
		w.ASCII("mRNA-1273")
		w.I64(-8)
		return nil
	})
	require.NoError(err)

	err = UnmarshalBinaryAdapter(raw, func(r *Reader) error {
		require.Equal(uint64(42), r.U64())
		require.True(r.Bool())
		require.Equal("mRNA-1273", r.ASCII(50))
		require.Equal(int64(-8), r.I64())
		return nil
	})
	require.NoError(err)
}

func TestBinaryAdapterRejectsLeftovers(t *testing.T) {
	require := require.New(t)

	raw, err := MarshalBinaryAdapter(func(w *Writer) error {
		w.U64(42)
		w.U64(7)
		return nil
	})
	require.NoError(err)

	// Reading less than was written leaves bytes behind, which breaks the
	// one-blob-one-value canonical rule.
	err = UnmarshalBinaryAdapter(raw, func(r *Reader) error {
		_ = r.U64()
		return nil
	})
	require.ErrorIs(err, ErrNonCanonicalEncoding)
}

func TestBinaryAdapterRecoversOverrun(t *testing.T) {
	require := require.New(t)

	raw, err := MarshalBinaryAdapter(func(w *Writer) error {
		w.U8(1)
		return nil
	})
	require.NoError(err)

	// Reading more than was written panics inside the callback; the adapter
	// turns that into an error.
	err = UnmarshalBinaryAdapter(raw, func(r *Reader) error {
		_ = r.U8()
		_ = r.U64()
		return nil
	})
	require.ErrorIs(err, ErrMalformedEncoding)

	require.Error(UnmarshalBinaryAdapter(nil, func(r *Reader) error { return nil }))
}
