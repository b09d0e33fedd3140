// Package binary provides low-level binary I/O and byte-order handling for
// NIfTI headers and voxel buffers.
package binary

import (
	"encoding/binary"
	"io"
	"math"
)

// Config holds reader and writer configuration.
type Config struct {
	ByteOrder binary.ByteOrder
}

// Reader decodes consecutive fixed-width fields from an io.ReaderAt.
type Reader struct {
	r       io.ReaderAt
	order   binary.ByteOrder
	off     int64
	scratch [8]byte
}

// NewReader creates a reader starting at offset zero.
func NewReader(r io.ReaderAt, cfg Config) *Reader {
	return &Reader{r: r, order: cfg.ByteOrder}
}

// ReadInto fills buf from the current position. A short read returns
// io.ErrUnexpectedEOF and leaves the position unchanged.
func (r *Reader) ReadInto(buf []byte) error {
	if len(buf) == 0 {
		return nil
	}
	n, err := r.r.ReadAt(buf, r.off)
	if n < len(buf) {
		if err == nil || err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return err
	}
	r.off += int64(n)
	return nil
}

func (r *Reader) next(n int) ([]byte, error) {
	b := r.scratch[:n]
	if err := r.ReadInto(b); err != nil {
		return nil, err
	}
	return b, nil
}

// ReadUint8 reads an unsigned 8-bit integer.
func (r *Reader) ReadUint8() (uint8, error) {
	b, err := r.next(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// ReadUint16 reads an unsigned 16-bit integer.
func (r *Reader) ReadUint16() (uint16, error) {
	b, err := r.next(2)
	if err != nil {
		return 0, err
	}
	return r.order.Uint16(b), nil
}

// ReadUint32 reads an unsigned 32-bit integer.
func (r *Reader) ReadUint32() (uint32, error) {
	b, err := r.next(4)
	if err != nil {
		return 0, err
	}
	return r.order.Uint32(b), nil
}

// ReadUint64 reads an unsigned 64-bit integer.
func (r *Reader) ReadUint64() (uint64, error) {
	b, err := r.next(8)
	if err != nil {
		return 0, err
	}
	return r.order.Uint64(b), nil
}

func (r *Reader) ReadInt16() (int16, error) {
	v, err := r.ReadUint16()
	return int16(v), err
}

func (r *Reader) ReadInt32() (int32, error) {
	v, err := r.ReadUint32()
	return int32(v), err
}

func (r *Reader) ReadInt64() (int64, error) {
	v, err := r.ReadUint64()
	return int64(v), err
}

// ReadFloat32 reads an IEEE 754 single-precision value.
func (r *Reader) ReadFloat32() (float32, error) {
	v, err := r.ReadUint32()
	return math.Float32frombits(v), err
}

// ReadFloat64 reads an IEEE 754 double-precision value.
func (r *Reader) ReadFloat64() (float64, error) {
	v, err := r.ReadUint64()
	return math.Float64frombits(v), err
}
