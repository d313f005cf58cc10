// Package cser implements a compact canonical serialization format. Values
// are written to two streams: raw bytes to a body stream, booleans and
// integer byte-length fields to a separate bit stream. Small integers cost
// only as many body bytes as their magnitude needs, and every value has
// exactly one legal encoding: padding, oversized length fields and unread
// trailing data are all rejected on decode.
//
// The cold-chain engines use cser for the batch, alert and stake record
// codecs consumed by the host's storage layer.
package cser

import (
	"errors"

	"github.com/rony4d/go-coldchain-ledger/utils/bits"
	"github.com/rony4d/go-coldchain-ledger/utils/fast"
)

// Encoding validation errors.
var (
	ErrNonCanonicalEncoding = errors.New("non canonical encoding")
	ErrMalformedEncoding    = errors.New("malformed encoding")
	ErrTooLargeAlloc        = errors.New("too large allocation")
)

// MaxAlloc caps decoded byte-slice sizes to keep a malicious blob from
// forcing huge allocations.
const MaxAlloc = 100 * 1024

// Writer serializes into the two streams.
type Writer struct {
	BitsW  *bits.Writer
	BytesW *fast.Writer
}

// Reader deserializes from the two streams.
type Reader struct {
	BitsR  *bits.Reader
	BytesR *fast.Reader
}

// NewWriter creates a ready-to-use cser writer.
func NewWriter() *Writer {
	return &Writer{
		BitsW:  bits.NewWriter(&bits.Array{Bytes: make([]byte, 0, 32)}),
		BytesW: fast.NewWriter(make([]byte, 0, 200)),
	}
}

// writeUint64Compact writes a varint with reversed stop logic: the high bit
// marks the LAST byte. Used only for the bit-stream length suffix, which is
// written reversed so the decoder can scan it from the end of the blob.
func writeUint64Compact(bytesW *fast.Writer, v uint64) {
	for {
		chunk := v & 0x7f
		v >>= 7
		if v == 0 {
			chunk |= 0x80
		}
		bytesW.WriteByte(byte(chunk))
		if v == 0 {
			return
		}
	}
}

func readUint64Compact(bytesR *fast.Reader) uint64 {
	v := uint64(0)
	for i := 0; ; i++ {
		chunk := uint64(bytesR.ReadByte())
		stop := chunk&0x80 != 0
		word := chunk & 0x7f
		v |= word << (i * 7)
		if stop {
			// A zero most-significant chunk means the value was padded.
			if i > 0 && word == 0 {
				panic(ErrNonCanonicalEncoding)
			}
			return v
		}
	}
}

// writeUint64BitCompact writes v little-endian using the fewest bytes
// possible, but at least minSize. Returns the byte count written.
func writeUint64BitCompact(bytesW *fast.Writer, v uint64, minSize int) (size int) {
	for size < minSize || v != 0 {
		bytesW.WriteByte(byte(v))
		size++
		v >>= 8
	}
	return size
}

func readUint64BitCompact(bytesR *fast.Reader, size int) uint64 {
	var (
		v    uint64
		last byte
	)
	for i, b := range bytesR.Read(size) {
		v |= uint64(b) << uint(8*i)
		last = b
	}
	// A zero most-significant byte means the value was padded.
	if size > 1 && last == 0 {
		panic(ErrNonCanonicalEncoding)
	}
	return v
}

// readU64 reads a byte-length field of bitsForSize bits from the bit
// stream, then that many (plus minSize) bytes from the body stream.
func (r *Reader) readU64(minSize int, bitsForSize int) uint64 {
	size := r.BitsR.Read(bitsForSize) + uint(minSize)
	return readUint64BitCompact(r.BytesR, int(size))
}

func (w *Writer) writeU64(minSize int, bitsForSize int, v uint64) {
	size := writeUint64BitCompact(w.BytesW, v, minSize)
	w.BitsW.Write(bitsForSize, uint(size-minSize))
}

// U8 writes a single raw byte, no length field.
func (w *Writer) U8(v uint8) {
	w.BytesW.WriteByte(v)
}

// U8 reads a single raw byte.
func (r *Reader) U8() uint8 {
	return r.BytesR.ReadByte()
}

// U16 writes a uint16 in 1-2 bytes (1 length bit).
func (w *Writer) U16(v uint16) {
	w.writeU64(1, 1, uint64(v))
}

// U16 reads a uint16.
func (r *Reader) U16() uint16 {
	return uint16(r.readU64(1, 1))
}

// U32 writes a uint32 in 1-4 bytes (2 length bits).
func (w *Writer) U32(v uint32) {
	w.writeU64(1, 2, uint64(v))
}

// U32 reads a uint32.
func (r *Reader) U32() uint32 {
	return uint32(r.readU64(1, 2))
}

// U64 writes a uint64 in 1-8 bytes (3 length bits).
func (w *Writer) U64(v uint64) {
	w.writeU64(1, 3, v)
}

// U64 reads a uint64.
func (r *Reader) U64() uint64 {
	return r.readU64(1, 3)
}

// U56 writes a value below 2^56 in 0-7 bytes (3 length bits). Used for
// slice length prefixes.
func (w *Writer) U56(v uint64) {
	const max = 1<<56 - 1
	if v > max {
		panic("cser: value exceeds 56 bits")
	}
	w.writeU64(0, 3, v)
}

// U56 reads a slice length prefix.
func (r *Reader) U56() uint64 {
	return r.readU64(0, 3)
}

// I64 writes a signed integer as a sign bit plus absolute value.
func (w *Writer) I64(v int64) {
	w.Bool(v < 0)
	if v < 0 {
		w.U64(uint64(-v))
	} else {
		w.U64(uint64(v))
	}
}

// I64 reads a signed integer. Negative zero is rejected as non-canonical.
func (r *Reader) I64() int64 {
	neg := r.Bool()
	abs := r.U64()
	if neg && abs == 0 {
		panic(ErrNonCanonicalEncoding)
	}
	if neg {
		return -int64(abs)
	}
	return int64(abs)
}

// Bool writes a single bit.
func (w *Writer) Bool(v bool) {
	u := uint(0)
	if v {
		u = 1
	}
	w.BitsW.Write(1, u)
}

// Bool reads a single bit.
func (r *Reader) Bool() bool {
	return r.BitsR.Read(1) != 0
}

// FixedBytes writes raw bytes with no length prefix.
func (w *Writer) FixedBytes(v []byte) {
	w.BytesW.Write(v)
}

// FixedBytes fills v with the next len(v) bytes.
func (r *Reader) FixedBytes(v []byte) {
	copy(v, r.BytesR.Read(len(v)))
}

// SliceBytes writes a length-prefixed byte slice.
func (w *Writer) SliceBytes(v []byte) {
	w.U56(uint64(len(v)))
	w.FixedBytes(v)
}

// SliceBytes reads a length-prefixed byte slice of at most maxLen bytes.
func (r *Reader) SliceBytes(maxLen int) []byte {
	size := r.U56()
	if size > uint64(maxLen) {
		panic(ErrTooLargeAlloc)
	}
	buf := make([]byte, size)
	r.FixedBytes(buf)
	return buf
}

// ASCII writes a length-prefixed string.
func (w *Writer) ASCII(v string) {
	w.SliceBytes([]byte(v))
}

// ASCII reads a length-prefixed string of at most maxLen bytes.
func (r *Reader) ASCII(maxLen int) string {
	return string(r.SliceBytes(maxLen))
}
