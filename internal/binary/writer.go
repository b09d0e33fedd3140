package binary

import (
	"encoding/binary"
	"io"
	"math"
)

// Writer encodes consecutive fixed-width fields to an io.WriterAt.
type Writer struct {
	w       io.WriterAt
	order   binary.ByteOrder
	off     int64
	scratch [8]byte
}

// NewWriter creates a writer starting at offset zero.
func NewWriter(w io.WriterAt, cfg Config) *Writer {
	return &Writer{w: w, order: cfg.ByteOrder}
}

// WriteBytes writes data at the current position.
func (w *Writer) WriteBytes(data []byte) error {
	if len(data) == 0 {
		return nil
	}
	n, err := w.w.WriteAt(data, w.off)
	w.off += int64(n)
	if err == nil && n < len(data) {
		err = io.ErrShortWrite
	}
	return err
}

func (w *Writer) WriteUint8(v uint8) error {
	w.scratch[0] = v
	return w.WriteBytes(w.scratch[:1])
}

func (w *Writer) WriteUint16(v uint16) error {
	w.order.PutUint16(w.scratch[:2], v)
	return w.WriteBytes(w.scratch[:2])
}

func (w *Writer) WriteUint32(v uint32) error {
	w.order.PutUint32(w.scratch[:4], v)
	return w.WriteBytes(w.scratch[:4])
}

func (w *Writer) WriteUint64(v uint64) error {
	w.order.PutUint64(w.scratch[:8], v)
	return w.WriteBytes(w.scratch[:8])
}

func (w *Writer) WriteInt16(v int16) error { return w.WriteUint16(uint16(v)) }
func (w *Writer) WriteInt32(v int32) error { return w.WriteUint32(uint32(v)) }
func (w *Writer) WriteInt64(v int64) error { return w.WriteUint64(uint64(v)) }

// WriteFloat32 writes an IEEE 754 single-precision value.
func (w *Writer) WriteFloat32(v float32) error {
	return w.WriteUint32(math.Float32bits(v))
}

// WriteFloat64 writes an IEEE 754 double-precision value.
func (w *Writer) WriteFloat64(v float64) error {
	return w.WriteUint64(math.Float64bits(v))
}

// Buffer is a growable in-memory io.WriterAt.
type Buffer struct {
	buf []byte
}

// NewBuffer creates a buffer with the given initial length.
func NewBuffer(size int) *Buffer {
	return &Buffer{buf: make([]byte, size)}
}

// WriteAt grows the buffer as needed.
func (b *Buffer) WriteAt(p []byte, off int64) (int, error) {
	if off < 0 {
		return 0, io.ErrShortWrite
	}
	if end := int(off) + len(p); end > len(b.buf) {
		b.buf = append(b.buf, make([]byte, end-len(b.buf))...)
	}
	return copy(b.buf[off:], p), nil
}

// Bytes returns the buffer contents.
func (b *Buffer) Bytes() []byte {
	return b.buf
}
