// Package fast provides minimal byte-slice reader/writer cursors for linear
// serialization. No bounds checking on reads: reading past the end panics,
// which the cser adapter converts into a malformed-encoding error.
package fast

// Reader consumes a byte slice front to back.
type Reader struct {
	buf    []byte
	offset int
}

// Writer appends to a byte slice.
type Writer struct {
	buf []byte
}

// NewReader creates a Reader over bb.
func NewReader(bb []byte) *Reader {
	return &Reader{buf: bb}
}

// NewWriter creates a Writer appending to bb. Usually called with
// make([]byte, 0, capacity).
func NewWriter(bb []byte) *Writer {
	return &Writer{buf: bb}
}

// WriteByte appends a single byte.
func (w *Writer) WriteByte(v byte) {
	w.buf = append(w.buf, v)
}

// Write appends a byte slice.
func (w *Writer) Write(v []byte) {
	w.buf = append(w.buf, v...)
}

// Bytes returns the accumulated content.
func (w *Writer) Bytes() []byte {
	return w.buf
}

// Read consumes and returns the next n bytes. The result shares memory with
// the underlying buffer. Panics on overrun.
func (r *Reader) Read(n int) []byte {
	res := r.buf[r.offset : r.offset+n]
	r.offset += n
	return res
}

// ReadByte consumes and returns one byte. Panics on overrun.
func (r *Reader) ReadByte() byte {
	res := r.buf[r.offset]
	r.offset++
	return res
}

// Position returns how many bytes have been consumed.
func (r *Reader) Position() int {
	return r.offset
}

// Empty reports whether the reader is exhausted.
func (r *Reader) Empty() bool {
	return len(r.buf) == r.offset
}
