package cser

import (
	"github.com/rony4d/go-coldchain-ledger/utils/bits"
	"github.com/rony4d/go-coldchain-ledger/utils/fast"
)

// Wire layout: [body bytes][bit-stream bytes][reversed varint of bit-stream
// length]. The suffix is written backwards so the decoder can find the
// split point by scanning from the end.

// MarshalBinaryAdapter runs a marshal callback against a fresh Writer and
// packs both streams into a single blob.
func MarshalBinaryAdapter(marshalCser func(*Writer) error) ([]byte, error) {
	w := NewWriter()
	if err := marshalCser(w); err != nil {
		return nil, err
	}
	return binaryFromCSER(w.BitsW.Array, w.BytesW.Bytes())
}

func binaryFromCSER(bbits *bits.Array, bbytes []byte) ([]byte, error) {
	body := fast.NewWriter(bbytes)
	body.Write(bbits.Bytes)
	sizeW := fast.NewWriter(make([]byte, 0, 4))
	writeUint64Compact(sizeW, uint64(len(bbits.Bytes)))
	body.Write(reversed(sizeW.Bytes()))
	return body.Bytes(), nil
}

func binaryToCSER(raw []byte) (bbits *bits.Array, bbytes []byte, err error) {
	sizeR := fast.NewReader(reversed(tail(raw, 9)))
	bitsSize := readUint64Compact(sizeR)
	raw = raw[:len(raw)-sizeR.Position()]
	if uint64(len(raw)) < bitsSize {
		return nil, nil, ErrMalformedEncoding
	}
	bbits = &bits.Array{Bytes: raw[uint64(len(raw))-bitsSize:]}
	bbytes = raw[:uint64(len(raw))-bitsSize]
	return bbits, bbytes, nil
}

// UnmarshalBinaryAdapter splits a blob back into the two streams, runs the
// unmarshal callback, and enforces full consumption: leftover bytes or
// non-zero trailing bits make the encoding non-canonical. Panics from
// overruns inside the callback surface as ErrMalformedEncoding.
func UnmarshalBinaryAdapter(raw []byte, unmarshalCser func(*Reader) error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = ErrMalformedEncoding
		}
	}()

	bbits, bbytes, err := binaryToCSER(raw)
	if err != nil {
		return err
	}
	r := &Reader{
		BitsR:  bits.NewReader(bbits),
		BytesR: fast.NewReader(bbytes),
	}
	if err := unmarshalCser(r); err != nil {
		return err
	}

	if r.BitsR.NonReadBytes() > 1 {
		return ErrNonCanonicalEncoding
	}
	if r.BitsR.Read(r.BitsR.NonReadBits()) != 0 {
		return ErrNonCanonicalEncoding
	}
	if !r.BytesR.Empty() {
		return ErrNonCanonicalEncoding
	}
	return nil
}

func tail(b []byte, max int) []byte {
	if len(b) > max {
		return b[len(b)-max:]
	}
	return b
}

func reversed(b []byte) []byte {
	out := make([]byte, len(b))
	for i, v := range b {
		out[len(b)-1-i] = v
	}
	return out
}
