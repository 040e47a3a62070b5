// Package stream implements the linear binary persistence format used by
// rigidbody serialization: fixed-order little-endian primitives with no
// header and no versioning. Field order and encodings must be preserved
// exactly for compatibility, so values are written and read back in the
// same sequence with no metadata in between.
package stream

import (
	"encoding/binary"
	"io"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Writer writes primitives to an underlying io.Writer. The first write
// error sticks; subsequent writes are no-ops and Err reports it.
type Writer struct {
	w   io.Writer
	err error
	buf [8]byte
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

func (w *Writer) Err() error { return w.err }

func (w *Writer) write(b []byte) {
	if w.err != nil {
		return
	}
	_, w.err = w.w.Write(b)
}

func (w *Writer) WriteFloat64(v float64) {
	binary.LittleEndian.PutUint64(w.buf[:], math.Float64bits(v))
	w.write(w.buf[:])
}

// WriteBool writes a single byte: 1 for true, 0 for false.
func (w *Writer) WriteBool(v bool) {
	w.buf[0] = 0
	if v {
		w.buf[0] = 1
	}
	w.write(w.buf[:1])
}

// WriteVec3 writes the three components in x, y, z order.
func (w *Writer) WriteVec3(v mgl64.Vec3) {
	w.WriteFloat64(v[0])
	w.WriteFloat64(v[1])
	w.WriteFloat64(v[2])
}

// Reader reads primitives from an underlying io.Reader. The first read
// error sticks; subsequent reads return zero values and Err reports it.
type Reader struct {
	r   io.Reader
	err error
	buf [8]byte
}

func NewReader(r io.Reader) *Reader {
	return &Reader{r: r}
}

func (r *Reader) Err() error { return r.err }

func (r *Reader) read(b []byte) bool {
	if r.err != nil {
		return false
	}
	_, r.err = io.ReadFull(r.r, b)
	return r.err == nil
}

func (r *Reader) Float64() float64 {
	if !r.read(r.buf[:]) {
		return 0
	}
	return math.Float64frombits(binary.LittleEndian.Uint64(r.buf[:]))
}

func (r *Reader) Bool() bool {
	if !r.read(r.buf[:1]) {
		return false
	}
	return r.buf[0] != 0
}

func (r *Reader) Vec3() mgl64.Vec3 {
	return mgl64.Vec3{r.Float64(), r.Float64(), r.Float64()}
}
