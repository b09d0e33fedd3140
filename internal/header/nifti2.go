package header

import (
	"bytes"
	"encoding/binary"
	"fmt"

	nbinary "github.com/robert-malhotra/go-nifti/internal/binary"
)

// Nifti2 is the 540-byte NIfTI-2 header. It is also the canonical in-memory
// header of a dataset regardless of the file version it came from.
type Nifti2 struct {
	SizeofHdr     int32
	Magic         [8]byte
	Datatype      int16
	Bitpix        int16
	Dim           [8]int64
	IntentP1      float64
	IntentP2      float64
	IntentP3      float64
	Pixdim        [8]float64
	VoxOffset     int64
	SclSlope      float64
	SclInter      float64
	CalMax        float64
	CalMin        float64
	SliceDuration float64
	Toffset       float64
	SliceStart    int64
	SliceEnd      int64
	Descrip       [80]byte
	AuxFile       [24]byte
	QformCode     int32
	SformCode     int32
	QuaternB      float64
	QuaternC      float64
	QuaternD      float64
	QoffsetX      float64
	QoffsetY      float64
	QoffsetZ      float64
	SrowX         [4]float64
	SrowY         [4]float64
	SrowZ         [4]float64
	SliceCode     int32
	XYZTUnits     int32
	IntentCode    int32
	IntentName    [16]byte
	DimInfo       byte
	Unused        [15]byte
}

// DecodeNifti2 parses a NIfTI-2 header from the first Size2 bytes of raw
// using the given byte order.
func DecodeNifti2(raw []byte, order binary.ByteOrder) (*Nifti2, error) {
	if len(raw) < Size2 {
		return nil, fmt.Errorf("nifti-2 header needs %d bytes, got %d", Size2, len(raw))
	}
	f := &fieldReader{r: nbinary.NewReader(bytes.NewReader(raw[:Size2]), nbinary.Config{ByteOrder: order})}
	h := &Nifti2{}

	f.i32(&h.SizeofHdr)
	f.raw(h.Magic[:])
	f.i16(&h.Datatype)
	f.i16(&h.Bitpix)
	for i := range h.Dim {
		f.i64(&h.Dim[i])
	}
	f.f64(&h.IntentP1)
	f.f64(&h.IntentP2)
	f.f64(&h.IntentP3)
	for i := range h.Pixdim {
		f.f64(&h.Pixdim[i])
	}
	f.i64(&h.VoxOffset)
	f.f64(&h.SclSlope)
	f.f64(&h.SclInter)
	f.f64(&h.CalMax)
	f.f64(&h.CalMin)
	f.f64(&h.SliceDuration)
	f.f64(&h.Toffset)
	f.i64(&h.SliceStart)
	f.i64(&h.SliceEnd)
	f.raw(h.Descrip[:])
	f.raw(h.AuxFile[:])
	f.i32(&h.QformCode)
	f.i32(&h.SformCode)
	f.f64(&h.QuaternB)
	f.f64(&h.QuaternC)
	f.f64(&h.QuaternD)
	f.f64(&h.QoffsetX)
	f.f64(&h.QoffsetY)
	f.f64(&h.QoffsetZ)
	for i := 0; i < 4; i++ {
		f.f64(&h.SrowX[i])
	}
	for i := 0; i < 4; i++ {
		f.f64(&h.SrowY[i])
	}
	for i := 0; i < 4; i++ {
		f.f64(&h.SrowZ[i])
	}
	f.i32(&h.SliceCode)
	f.i32(&h.XYZTUnits)
	f.i32(&h.IntentCode)
	f.raw(h.IntentName[:])
	f.u8(&h.DimInfo)
	f.raw(h.Unused[:])

	if f.err != nil {
		return nil, fmt.Errorf("decode nifti-2 header: %w", f.err)
	}
	return h, nil
}

// Encode serializes the header into Size2 bytes using the given byte order.
func (h *Nifti2) Encode(order binary.ByteOrder) []byte {
	buf := nbinary.NewBuffer(Size2)
	f := &fieldWriter{w: nbinary.NewWriter(buf, nbinary.Config{ByteOrder: order})}

	f.i32(h.SizeofHdr)
	f.raw(h.Magic[:])
	f.i16(h.Datatype)
	f.i16(h.Bitpix)
	for _, d := range h.Dim {
		f.i64(d)
	}
	f.f64(h.IntentP1)
	f.f64(h.IntentP2)
	f.f64(h.IntentP3)
	for _, p := range h.Pixdim {
		f.f64(p)
	}
	f.i64(h.VoxOffset)
	f.f64(h.SclSlope)
	f.f64(h.SclInter)
	f.f64(h.CalMax)
	f.f64(h.CalMin)
	f.f64(h.SliceDuration)
	f.f64(h.Toffset)
	f.i64(h.SliceStart)
	f.i64(h.SliceEnd)
	f.raw(h.Descrip[:])
	f.raw(h.AuxFile[:])
	f.i32(h.QformCode)
	f.i32(h.SformCode)
	f.f64(h.QuaternB)
	f.f64(h.QuaternC)
	f.f64(h.QuaternD)
	f.f64(h.QoffsetX)
	f.f64(h.QoffsetY)
	f.f64(h.QoffsetZ)
	for _, v := range h.SrowX {
		f.f64(v)
	}
	for _, v := range h.SrowY {
		f.f64(v)
	}
	for _, v := range h.SrowZ {
		f.f64(v)
	}
	f.i32(h.SliceCode)
	f.i32(h.XYZTUnits)
	f.i32(h.IntentCode)
	f.raw(h.IntentName[:])
	f.u8(h.DimInfo)
	f.raw(h.Unused[:])

	return buf.Bytes()
}

// Swap reverses the byte order of every multi-byte field in place.
func (h *Nifti2) Swap() {
	h.SizeofHdr = nbinary.SwapInt32(h.SizeofHdr)
	h.Datatype = nbinary.SwapInt16(h.Datatype)
	h.Bitpix = nbinary.SwapInt16(h.Bitpix)
	for i := range h.Dim {
		h.Dim[i] = nbinary.SwapInt64(h.Dim[i])
	}
	h.IntentP1 = nbinary.SwapFloat64(h.IntentP1)
	h.IntentP2 = nbinary.SwapFloat64(h.IntentP2)
	h.IntentP3 = nbinary.SwapFloat64(h.IntentP3)
	for i := range h.Pixdim {
		h.Pixdim[i] = nbinary.SwapFloat64(h.Pixdim[i])
	}
	h.VoxOffset = nbinary.SwapInt64(h.VoxOffset)
	h.SclSlope = nbinary.SwapFloat64(h.SclSlope)
	h.SclInter = nbinary.SwapFloat64(h.SclInter)
	h.CalMax = nbinary.SwapFloat64(h.CalMax)
	h.CalMin = nbinary.SwapFloat64(h.CalMin)
	h.SliceDuration = nbinary.SwapFloat64(h.SliceDuration)
	h.Toffset = nbinary.SwapFloat64(h.Toffset)
	h.SliceStart = nbinary.SwapInt64(h.SliceStart)
	h.SliceEnd = nbinary.SwapInt64(h.SliceEnd)
	h.QformCode = nbinary.SwapInt32(h.QformCode)
	h.SformCode = nbinary.SwapInt32(h.SformCode)
	h.QuaternB = nbinary.SwapFloat64(h.QuaternB)
	h.QuaternC = nbinary.SwapFloat64(h.QuaternC)
	h.QuaternD = nbinary.SwapFloat64(h.QuaternD)
	h.QoffsetX = nbinary.SwapFloat64(h.QoffsetX)
	h.QoffsetY = nbinary.SwapFloat64(h.QoffsetY)
	h.QoffsetZ = nbinary.SwapFloat64(h.QoffsetZ)
	for i := 0; i < 4; i++ {
		h.SrowX[i] = nbinary.SwapFloat64(h.SrowX[i])
		h.SrowY[i] = nbinary.SwapFloat64(h.SrowY[i])
		h.SrowZ[i] = nbinary.SwapFloat64(h.SrowZ[i])
	}
	h.SliceCode = nbinary.SwapInt32(h.SliceCode)
	h.XYZTUnits = nbinary.SwapInt32(h.XYZTUnits)
	h.IntentCode = nbinary.SwapInt32(h.IntentCode)
}

// ValidMagic reports whether the magic string is "ni2\0" or "n+2\0"
// followed by the \r\n\x1a\n signature.
func (h *Nifti2) ValidMagic() bool {
	if h.Magic[0] != 'n' || h.Magic[2] != '2' || h.Magic[3] != 0 {
		return false
	}
	if h.Magic[1] != MagicSingle && h.Magic[1] != MagicPair {
		return false
	}
	return [4]byte(h.Magic[4:8]) == magic2Tail
}

// SetMagic stores "n?2\0\r\n\x1a\n" with the given continuation byte.
func (h *Nifti2) SetMagic(continuation byte) {
	h.Magic = [8]byte{'n', continuation, '2', 0}
	copy(h.Magic[4:], magic2Tail[:])
}

// SingleFile reports whether the image data follows the header in the same
// file.
func (h *Nifti2) SingleFile() bool {
	return h.Magic[1] == MagicSingle
}

// Frames returns the number of volumes: dim[4] for 4-D data, dim[5] for
// statistical (5-D) data and 1 otherwise.
func (h *Nifti2) Frames() int64 {
	switch h.Dim[0] {
	case 4:
		return h.Dim[4]
	case 5:
		return h.Dim[5]
	default:
		return 1
	}
}

// CString returns b up to its first NUL byte.
func CString(b []byte) string {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	return string(b)
}
