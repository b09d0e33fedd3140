package dtype

import (
	"unsafe"

	"github.com/robert-malhotra/go-nifti/internal/alloc"
	"github.com/robert-malhotra/go-nifti/internal/errs"
)

// Element is the set of Go types backing the supported datatypes.
type Element interface {
	~uint8 | ~int16 | ~int32 | ~float32 | ~float64
}

// FromSlice returns the datatype code of a typed slice and a copy of its
// contents in host byte order. The copy is 8-byte aligned.
func FromSlice(v any) (Code, []byte, error) {
	switch s := v.(type) {
	case []uint8:
		return copyOut(Uint8, s)
	case []int16:
		return copyOut(Int16, s)
	case []int32:
		return copyOut(Int32, s)
	case []float32:
		return copyOut(Float32, s)
	case []float64:
		return copyOut(Float64, s)
	default:
		return 0, nil, errs.New(errs.Type, "unsupported voxel slice type %T", v)
	}
}

func copyOut[T Element](c Code, s []T) (Code, []byte, error) {
	buf, err := alloc.Bytes(int64(len(s)) * int64(ElementSize(c)))
	if err != nil {
		return 0, nil, err
	}
	copy(buf, AsBytes(s))
	return c, buf, nil
}

// AsBytes reinterprets a typed slice as its raw bytes.
func AsBytes[T Element](s []T) []byte {
	if len(s) == 0 {
		return []byte{}
	}
	var zero T
	return unsafe.Slice((*byte)(unsafe.Pointer(&s[0])), len(s)*int(unsafe.Sizeof(zero)))
}

// View reinterprets an aligned byte buffer as a typed slice sharing its
// memory. len(buf) must be a multiple of the element size and buf must be
// suitably aligned, as buffers from the alloc package are.
func View[T Element](buf []byte) []T {
	var zero T
	size := int(unsafe.Sizeof(zero))
	if len(buf) == 0 {
		return []T{}
	}
	return unsafe.Slice((*T)(unsafe.Pointer(&buf[0])), len(buf)/size)
}
