// Package bits implements an unaligned bit stream reader and writer. It
// backs the cser codec's side channel: booleans and small length fields are
// packed as individual bits instead of whole bytes.
package bits

type (
	// Array holds the byte slice backing a bit stream.
	Array struct {
		Bytes []byte
	}

	// Writer appends bits to an Array. bitOffset is the index of the next
	// bit to write within the last byte (0 means a fresh byte is needed).
	Writer struct {
		*Array
		bitOffset int
	}

	// Reader consumes bits from an Array, tracking both the byte index and
	// the bit offset within it.
	Reader struct {
		*Array
		byteOffset int
		bitOffset  int
	}
)

// NewWriter creates a bit stream writer appending to arr.
func NewWriter(arr *Array) *Writer {
	return &Writer{Array: arr}
}

// NewReader creates a bit stream reader over arr.
func NewReader(arr *Array) *Reader {
	return &Reader{Array: arr}
}

func (w *Writer) byteBitsFree() int {
	return 8 - w.bitOffset
}

func (w *Writer) writeIntoLastByte(v uint) {
	w.Bytes[len(w.Bytes)-1] |= byte(v << w.bitOffset)
}

// maskLow keeps the low (8 - clear) bits of v.
func maskLow(v uint, clear int) uint {
	return v & (uint(0xff) >> clear)
}

// Write appends the lowest n bits of v to the stream.
func (w *Writer) Write(n int, v uint) {
	if w.bitOffset == 0 {
		w.Bytes = append(w.Bytes, 0)
	}
	free := w.byteBitsFree()
	if n <= free {
		w.writeIntoLastByte(v)
		if n == free {
			w.bitOffset = 0
		} else {
			w.bitOffset += n
		}
		return
	}
	// Spill: fill the current byte, recurse with the rest.
	w.writeIntoLastByte(maskLow(v, w.bitOffset))
	w.bitOffset = 0
	w.Write(n-free, v>>free)
}

func (r *Reader) byteBitsFree() int {
	return 8 - r.bitOffset
}

// Read consumes n bits and returns them as an integer (LSB first).
func (r *Reader) Read(n int) (v uint) {
	if n == 0 {
		return 0
	}
	free := r.byteBitsFree()
	if n <= free {
		clear := 8 - (r.bitOffset + n)
		v = maskLow(uint(r.Bytes[r.byteOffset]), clear) >> r.bitOffset
		if n == free {
			r.bitOffset = 0
			r.byteOffset++
		} else {
			r.bitOffset += n
		}
		return v
	}
	// Spans two or more bytes: take what's left here, recurse for the rest.
	v = uint(r.Bytes[r.byteOffset]) >> r.bitOffset
	r.bitOffset = 0
	r.byteOffset++
	rest := r.Read(n - free)
	return v | rest<<free
}

// View peeks at the next n bits without advancing the cursor.
func (r *Reader) View(n int) uint {
	cp := *r
	return (&cp).Read(n)
}

// NonReadBytes returns the number of bytes not yet fully consumed.
func (r *Reader) NonReadBytes() int {
	return len(r.Bytes) - r.byteOffset
}

// NonReadBits returns the number of unread bits remaining.
func (r *Reader) NonReadBits() int {
	return r.NonReadBytes()*8 - r.bitOffset
}
