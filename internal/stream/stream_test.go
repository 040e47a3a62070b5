package stream

import (
	"bytes"
	"encoding/binary"
	"io"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestWriteReadRoundTrip(t *testing.T) {
	var buf bytes.Buffer

	w := NewWriter(&buf)
	w.WriteFloat64(3.25)
	w.WriteBool(true)
	w.WriteBool(false)
	w.WriteVec3(mgl64.Vec3{1, -2, 0.5})
	if err := w.Err(); err != nil {
		t.Fatalf("write error: %v", err)
	}

	r := NewReader(&buf)
	if got := r.Float64(); got != 3.25 {
		t.Errorf("float = %v, expected 3.25", got)
	}
	if !r.Bool() {
		t.Errorf("expected true")
	}
	if r.Bool() {
		t.Errorf("expected false")
	}
	if got := r.Vec3(); got != (mgl64.Vec3{1, -2, 0.5}) {
		t.Errorf("vec = %v, expected (1, -2, 0.5)", got)
	}
	if err := r.Err(); err != nil {
		t.Fatalf("read error: %v", err)
	}
}

func TestWireEncoding(t *testing.T) {
	var buf bytes.Buffer

	w := NewWriter(&buf)
	w.WriteFloat64(1.0)
	w.WriteBool(true)

	b := buf.Bytes()
	if len(b) != 9 {
		t.Fatalf("expected 9 bytes, got %d", len(b))
	}
	if bits := binary.LittleEndian.Uint64(b[:8]); bits != math.Float64bits(1.0) {
		t.Errorf("float encoding = %x, expected little-endian IEEE bits", bits)
	}
	if b[8] != 1 {
		t.Errorf("bool encoding = %d, expected 1", b[8])
	}
}

func TestReaderShortInputSticks(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte{1, 2, 3}))

	if got := r.Float64(); got != 0 {
		t.Errorf("truncated read should yield zero, got %v", got)
	}
	if r.Err() == nil {
		t.Fatalf("expected an error after short read")
	}

	// The error sticks; later reads stay zero.
	if got := r.Vec3(); got != (mgl64.Vec3{}) {
		t.Errorf("reads after error should yield zero values, got %v", got)
	}
}

type failWriter struct{}

func (failWriter) Write(p []byte) (int, error) { return 0, io.ErrClosedPipe }

func TestWriterErrorSticks(t *testing.T) {
	w := NewWriter(failWriter{})
	w.WriteFloat64(1)
	w.WriteBool(true)

	if w.Err() != io.ErrClosedPipe {
		t.Errorf("expected the first write error, got %v", w.Err())
	}
}
