package dtype

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/robert-malhotra/go-nifti/internal/errs"
)

// Elements in a dataset buffer are stored in host byte order.
var host = binary.NativeEndian

func unsupported(c Code) string {
	return fmt.Sprintf("dtype: unsupported datatype code %d", int16(c))
}

// Get returns element i of buf as a float64.
func Get(buf []byte, c Code, i int) float64 {
	switch c {
	case Uint8:
		return float64(buf[i])
	case Int16:
		return float64(int16(host.Uint16(buf[2*i:])))
	case Int32:
		return float64(int32(host.Uint32(buf[4*i:])))
	case Float32:
		return float64(math.Float32frombits(host.Uint32(buf[4*i:])))
	case Float64:
		return math.Float64frombits(host.Uint64(buf[8*i:]))
	}
	panic(unsupported(c))
}

// getInt returns element i of an integer buffer.
func getInt(buf []byte, c Code, i int) int64 {
	switch c {
	case Uint8:
		return int64(buf[i])
	case Int16:
		return int64(int16(host.Uint16(buf[2*i:])))
	case Int32:
		return int64(int32(host.Uint32(buf[4*i:])))
	}
	panic(unsupported(c))
}

// putInt stores an integer value, wrapping on integer targets.
func putInt(buf []byte, c Code, i int, v int64) {
	switch c {
	case Uint8:
		buf[i] = uint8(v)
	case Int16:
		host.PutUint16(buf[2*i:], uint16(int16(v)))
	case Int32:
		host.PutUint32(buf[4*i:], uint32(int32(v)))
	case Float32:
		host.PutUint32(buf[4*i:], math.Float32bits(float32(v)))
	case Float64:
		host.PutUint64(buf[8*i:], math.Float64bits(float64(v)))
	default:
		panic(unsupported(c))
	}
}

// Set stores v as element i of buf. Integer targets truncate toward zero
// and saturate; NaN becomes 0.
func Set(buf []byte, c Code, i int, v float64) {
	switch c {
	case Float32:
		host.PutUint32(buf[4*i:], math.Float32bits(float32(v)))
	case Float64:
		host.PutUint64(buf[8*i:], math.Float64bits(v))
	default:
		putInt(buf, c, i, saturate(math.Trunc(v), c))
	}
}

// SetRounded is Set with round-half-away-from-zero on integer targets.
func SetRounded(buf []byte, c Code, i int, v float64) {
	if IsInteger(c) {
		v = math.Round(v)
	}
	Set(buf, c, i, v)
}

// saturate clamps an integral float to the range of integer type c.
func saturate(v float64, c Code) int64 {
	if math.IsNaN(v) {
		return 0
	}
	var lo, hi float64
	switch c {
	case Uint8:
		lo, hi = 0, math.MaxUint8
	case Int16:
		lo, hi = math.MinInt16, math.MaxInt16
	case Int32:
		lo, hi = math.MinInt32, math.MaxInt32
	}
	if v <= lo {
		return int64(lo)
	}
	if v >= hi {
		return int64(hi)
	}
	return int64(v)
}

// Cast converts every element of src (datatype from) into dst (datatype
// to). dst must hold exactly as many elements as src.
func Cast(dst []byte, to Code, src []byte, from Code) error {
	fromSize, toSize := ElementSize(from), ElementSize(to)
	if len(src)%fromSize != 0 {
		return errs.New(errs.Value, "source length %d is not a multiple of %d", len(src), fromSize)
	}
	n := len(src) / fromSize
	if len(dst) != n*toSize {
		return errs.New(errs.Value, "destination length %d, want %d", len(dst), n*toSize)
	}

	if from == to {
		copy(dst, src)
		return nil
	}
	if IsInteger(from) {
		for i := 0; i < n; i++ {
			putInt(dst, to, i, getInt(src, from, i))
		}
		return nil
	}
	for i := 0; i < n; i++ {
		Set(dst, to, i, Get(src, from, i))
	}
	return nil
}
