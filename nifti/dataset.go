package nifti

import (
	"fmt"

	"github.com/robert-malhotra/go-nifti/internal/alloc"
	"github.com/robert-malhotra/go-nifti/internal/dtype"
	"github.com/robert-malhotra/go-nifti/internal/errs"
	"github.com/robert-malhotra/go-nifti/internal/header"
)

// Header is the canonical NIfTI-2 header of a dataset.
type Header = header.Nifti2

// Dataset is a 4-D voxel array with its NIfTI header. A Dataset is not
// safe for concurrent use.
type Dataset struct {
	hdr     Header
	order   Order
	code    dtype.Code
	data    []byte
	shape   [4]int64
	strides [4]int64
}

// Build creates a zero-filled dataset of ni×nj×nk voxels and nt frames.
func Build(ni, nj, nk, nt int64, datatype, order string) (*Dataset, error) {
	if ni <= 0 || nj <= 0 || nk <= 0 || nt <= 0 {
		return nil, errs.New(errs.Value, "dataset dimensions must be greater than zero")
	}
	code, err := dtype.Parse(datatype)
	if err != nil {
		return nil, err
	}
	o, err := ParseOrder(order)
	if err != nil {
		return nil, err
	}
	return newDataset(minimalHeader(ni, nj, nk, nt, code), o)
}

// FromSlice creates a dataset holding a copy of data, which must be a
// []uint8, []int16, []int32, []float32 or []float64 laid out in the named
// order.
func FromSlice(ni, nj, nk, nt int64, data any, order string) (*Dataset, error) {
	code, raw, err := dtype.FromSlice(data)
	if err != nil {
		return nil, err
	}
	d, err := Build(ni, nj, nk, nt, code.String(), order)
	if err != nil {
		return nil, err
	}
	if len(raw) != len(d.data) {
		return nil, errs.New(errs.Value, "slice holds %d elements, dimensions need %d",
			len(raw)/dtype.ElementSize(code), d.Len())
	}
	copy(d.data, raw)
	return d, nil
}

// minimalHeader returns the header of a freshly built dataset.
func minimalHeader(ni, nj, nk, nt int64, code dtype.Code) Header {
	h := Header{
		SizeofHdr: header.Size2,
		Datatype:  int16(code),
		Bitpix:    dtype.Bitpix(code),
		XYZTUnits: header.UnitsMM,
	}
	h.SetMagic(0)
	h.Dim = [8]int64{3, ni, nj, nk, nt, 1, 1, 1}
	if nt > 1 {
		h.Dim[0] = 4
		h.Pixdim[4] = 1
		h.XYZTUnits |= header.UnitsSec
	}
	h.Pixdim[1], h.Pixdim[2], h.Pixdim[3] = 1, 1, 1
	return h
}

// newDataset allocates a zeroed buffer matching hdr's dims and datatype.
func newDataset(hdr Header, o Order) (*Dataset, error) {
	d := &Dataset{hdr: hdr, code: dtype.Code(hdr.Datatype)}
	size, err := alloc.Size(int64(d.elementSize()), d.NI(), d.NJ(), d.NK(), d.NT())
	if err != nil {
		return nil, err
	}
	if d.data, err = alloc.Bytes(size); err != nil {
		return nil, err
	}
	d.setLayout(o)
	return d, nil
}

// setLayout records o and derives shape and byte strides from it.
func (d *Dataset) setLayout(o Order) {
	ni, nj, nk, nt := d.NI(), d.NJ(), d.NK(), d.NT()
	d.order = o
	if o == TKJI {
		d.shape = [4]int64{nt, nk, nj, ni}
	} else {
		d.shape = [4]int64{nk, nj, ni, nt}
	}
	stride := int64(d.elementSize())
	for i := 3; i >= 0; i-- {
		d.strides[i] = stride
		stride *= d.shape[i]
	}
}

func (d *Dataset) elementSize() int { return dtype.ElementSize(d.code) }

// NI returns the number of voxels along the first spatial axis.
func (d *Dataset) NI() int64 { return d.hdr.Dim[1] }

// NJ returns the number of voxels along the second spatial axis.
func (d *Dataset) NJ() int64 { return d.hdr.Dim[2] }

// NK returns the number of voxels along the third spatial axis.
func (d *Dataset) NK() int64 { return d.hdr.Dim[3] }

// NT returns the number of frames.
func (d *Dataset) NT() int64 { return d.hdr.Frames() }

// Len returns the number of elements in the voxel buffer.
func (d *Dataset) Len() int { return len(d.data) / d.elementSize() }

// Datatype returns the datatype name.
func (d *Dataset) Datatype() string { return d.code.String() }

// Bitpix returns the number of bits per element.
func (d *Dataset) Bitpix() int16 { return d.hdr.Bitpix }

// Order returns the current storage order.
func (d *Dataset) Order() Order { return d.order }

// Header returns a copy of the canonical header.
func (d *Dataset) Header() Header { return d.hdr }

// Bytes returns the voxel buffer in host byte order. It aliases the
// dataset's memory.
func (d *Dataset) Bytes() []byte { return d.data }

// Shape returns the buffer dimensions from slowest to fastest varying.
func (d *Dataset) Shape() [4]int64 { return d.shape }

// Strides returns the byte stride of each dimension in Shape.
func (d *Dataset) Strides() [4]int64 { return d.strides }

// Index returns the element index of voxel (i, j, k) in frame t for the
// current storage order. It panics if a coordinate is out of range.
func (d *Dataset) Index(i, j, k, t int64) int {
	ni, nj, nk, nt := d.NI(), d.NJ(), d.NK(), d.NT()
	if i < 0 || i >= ni || j < 0 || j >= nj || k < 0 || k >= nk || t < 0 || t >= nt {
		panic(fmt.Sprintf("nifti: index (%d, %d, %d, %d) out of range [%d, %d, %d, %d]",
			i, j, k, t, ni, nj, nk, nt))
	}
	if d.order == TKJI {
		return int(((t*nk+k)*nj+j)*ni + i)
	}
	return int(((k*nj+j)*ni+i)*nt + t)
}

// At returns the value of voxel (i, j, k) in frame t.
func (d *Dataset) At(i, j, k, t int64) float64 {
	return dtype.Get(d.data, d.code, d.Index(i, j, k, t))
}

// SetAt stores v at voxel (i, j, k) in frame t, converting it to the
// dataset's datatype.
func (d *Dataset) SetAt(i, j, k, t int64, v float64) {
	dtype.Set(d.data, d.code, d.Index(i, j, k, t), v)
}

// Uint8s returns the buffer as []uint8, or nil for another datatype.
func (d *Dataset) Uint8s() []uint8 {
	if d.code != dtype.Uint8 {
		return nil
	}
	return dtype.View[uint8](d.data)
}

// Int16s returns the buffer as []int16, or nil for another datatype.
func (d *Dataset) Int16s() []int16 {
	if d.code != dtype.Int16 {
		return nil
	}
	return dtype.View[int16](d.data)
}

// Int32s returns the buffer as []int32, or nil for another datatype.
func (d *Dataset) Int32s() []int32 {
	if d.code != dtype.Int32 {
		return nil
	}
	return dtype.View[int32](d.data)
}

// Float32s returns the buffer as []float32, or nil for another datatype.
func (d *Dataset) Float32s() []float32 {
	if d.code != dtype.Float32 {
		return nil
	}
	return dtype.View[float32](d.data)
}

// Float64s returns the buffer as []float64, or nil for another datatype.
func (d *Dataset) Float64s() []float64 {
	if d.code != dtype.Float64 {
		return nil
	}
	return dtype.View[float64](d.data)
}

// Copy returns an independent copy of the dataset.
func (d *Dataset) Copy() (*Dataset, error) {
	return d.ToDatatype(d.Datatype())
}

// ToDatatype returns a copy of the dataset converted to the named
// datatype. The storage order is preserved.
func (d *Dataset) ToDatatype(name string) (*Dataset, error) {
	code, err := dtype.Parse(name)
	if err != nil {
		return nil, err
	}
	hdr := d.hdr
	hdr.Datatype = int16(code)
	hdr.Bitpix = dtype.Bitpix(code)

	out, err := newDataset(hdr, d.order)
	if err != nil {
		return nil, err
	}
	if err := dtype.Cast(out.data, code, d.data, d.code); err != nil {
		return nil, err
	}
	return out, nil
}

func (d *Dataset) String() string {
	return fmt.Sprintf("Dataset(%dx%dx%dx%d %s %s)", d.NI(), d.NJ(), d.NK(), d.NT(), d.Datatype(), d.order)
}
