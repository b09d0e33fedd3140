package header

import (
	"bytes"
	"encoding/binary"
	"fmt"

	nbinary "github.com/robert-malhotra/go-nifti/internal/binary"
)

// Nifti1 is the 348-byte NIfTI-1 header.
type Nifti1 struct {
	SizeofHdr     int32
	DataType      [10]byte
	DBName        [18]byte
	Extents       int32
	SessionError  int16
	Regular       byte
	DimInfo       byte
	Dim           [8]int16
	IntentP1      float32
	IntentP2      float32
	IntentP3      float32
	IntentCode    int16
	Datatype      int16
	Bitpix        int16
	SliceStart    int16
	Pixdim        [8]float32
	VoxOffset     float32
	SclSlope      float32
	SclInter      float32
	SliceEnd      int16
	SliceCode     uint8
	XYZTUnits     uint8
	CalMax        float32
	CalMin        float32
	SliceDuration float32
	Toffset       float32
	Glmax         int32
	Glmin         int32
	Descrip       [80]byte
	AuxFile       [24]byte
	QformCode     int16
	SformCode     int16
	QuaternB      float32
	QuaternC      float32
	QuaternD      float32
	QoffsetX      float32
	QoffsetY      float32
	QoffsetZ      float32
	SrowX         [4]float32
	SrowY         [4]float32
	SrowZ         [4]float32
	IntentName    [16]byte
	Magic         [4]byte
}

// DecodeNifti1 parses a NIfTI-1 header from the first Size1 bytes of raw
// using the given byte order.
func DecodeNifti1(raw []byte, order binary.ByteOrder) (*Nifti1, error) {
	if len(raw) < Size1 {
		return nil, fmt.Errorf("nifti-1 header needs %d bytes, got %d", Size1, len(raw))
	}
	f := &fieldReader{r: nbinary.NewReader(bytes.NewReader(raw[:Size1]), nbinary.Config{ByteOrder: order})}
	h := &Nifti1{}

	f.i32(&h.SizeofHdr)
	f.raw(h.DataType[:])
	f.raw(h.DBName[:])
	f.i32(&h.Extents)
	f.i16(&h.SessionError)
	f.u8(&h.Regular)
	f.u8(&h.DimInfo)
	for i := range h.Dim {
		f.i16(&h.Dim[i])
	}
	f.f32(&h.IntentP1)
	f.f32(&h.IntentP2)
	f.f32(&h.IntentP3)
	f.i16(&h.IntentCode)
	f.i16(&h.Datatype)
	f.i16(&h.Bitpix)
	f.i16(&h.SliceStart)
	for i := range h.Pixdim {
		f.f32(&h.Pixdim[i])
	}
	f.f32(&h.VoxOffset)
	f.f32(&h.SclSlope)
	f.f32(&h.SclInter)
	f.i16(&h.SliceEnd)
	f.u8(&h.SliceCode)
	f.u8(&h.XYZTUnits)
	f.f32(&h.CalMax)
	f.f32(&h.CalMin)
	f.f32(&h.SliceDuration)
	f.f32(&h.Toffset)
	f.i32(&h.Glmax)
	f.i32(&h.Glmin)
	f.raw(h.Descrip[:])
	f.raw(h.AuxFile[:])
	f.i16(&h.QformCode)
	f.i16(&h.SformCode)
	f.f32(&h.QuaternB)
	f.f32(&h.QuaternC)
	f.f32(&h.QuaternD)
	f.f32(&h.QoffsetX)
	f.f32(&h.QoffsetY)
	f.f32(&h.QoffsetZ)
	for i := 0; i < 4; i++ {
		f.f32(&h.SrowX[i])
	}
	for i := 0; i < 4; i++ {
		f.f32(&h.SrowY[i])
	}
	for i := 0; i < 4; i++ {
		f.f32(&h.SrowZ[i])
	}
	f.raw(h.IntentName[:])
	f.raw(h.Magic[:])

	if f.err != nil {
		return nil, fmt.Errorf("decode nifti-1 header: %w", f.err)
	}
	return h, nil
}

// Encode serializes the header into Size1 bytes using the given byte order.
func (h *Nifti1) Encode(order binary.ByteOrder) []byte {
	buf := nbinary.NewBuffer(Size1)
	f := &fieldWriter{w: nbinary.NewWriter(buf, nbinary.Config{ByteOrder: order})}

	f.i32(h.SizeofHdr)
	f.raw(h.DataType[:])
	f.raw(h.DBName[:])
	f.i32(h.Extents)
	f.i16(h.SessionError)
	f.u8(h.Regular)
	f.u8(h.DimInfo)
	for _, d := range h.Dim {
		f.i16(d)
	}
	f.f32(h.IntentP1)
	f.f32(h.IntentP2)
	f.f32(h.IntentP3)
	f.i16(h.IntentCode)
	f.i16(h.Datatype)
	f.i16(h.Bitpix)
	f.i16(h.SliceStart)
	for _, p := range h.Pixdim {
		f.f32(p)
	}
	f.f32(h.VoxOffset)
	f.f32(h.SclSlope)
	f.f32(h.SclInter)
	f.i16(h.SliceEnd)
	f.u8(h.SliceCode)
	f.u8(h.XYZTUnits)
	f.f32(h.CalMax)
	f.f32(h.CalMin)
	f.f32(h.SliceDuration)
	f.f32(h.Toffset)
	f.i32(h.Glmax)
	f.i32(h.Glmin)
	f.raw(h.Descrip[:])
	f.raw(h.AuxFile[:])
	f.i16(h.QformCode)
	f.i16(h.SformCode)
	f.f32(h.QuaternB)
	f.f32(h.QuaternC)
	f.f32(h.QuaternD)
	f.f32(h.QoffsetX)
	f.f32(h.QoffsetY)
	f.f32(h.QoffsetZ)
	for _, v := range h.SrowX {
		f.f32(v)
	}
	for _, v := range h.SrowY {
		f.f32(v)
	}
	for _, v := range h.SrowZ {
		f.f32(v)
	}
	f.raw(h.IntentName[:])
	f.raw(h.Magic[:])

	// Writes go to an in-memory buffer and cannot fail.
	return buf.Bytes()
}

// Swap reverses the byte order of every multi-byte field in place.
func (h *Nifti1) Swap() {
	h.SizeofHdr = nbinary.SwapInt32(h.SizeofHdr)
	h.Extents = nbinary.SwapInt32(h.Extents)
	h.SessionError = nbinary.SwapInt16(h.SessionError)
	for i := range h.Dim {
		h.Dim[i] = nbinary.SwapInt16(h.Dim[i])
	}
	h.IntentP1 = nbinary.SwapFloat32(h.IntentP1)
	h.IntentP2 = nbinary.SwapFloat32(h.IntentP2)
	h.IntentP3 = nbinary.SwapFloat32(h.IntentP3)
	h.IntentCode = nbinary.SwapInt16(h.IntentCode)
	h.Datatype = nbinary.SwapInt16(h.Datatype)
	h.Bitpix = nbinary.SwapInt16(h.Bitpix)
	h.SliceStart = nbinary.SwapInt16(h.SliceStart)
	for i := range h.Pixdim {
		h.Pixdim[i] = nbinary.SwapFloat32(h.Pixdim[i])
	}
	h.VoxOffset = nbinary.SwapFloat32(h.VoxOffset)
	h.SclSlope = nbinary.SwapFloat32(h.SclSlope)
	h.SclInter = nbinary.SwapFloat32(h.SclInter)
	h.SliceEnd = nbinary.SwapInt16(h.SliceEnd)
	h.CalMax = nbinary.SwapFloat32(h.CalMax)
	h.CalMin = nbinary.SwapFloat32(h.CalMin)
	h.SliceDuration = nbinary.SwapFloat32(h.SliceDuration)
	h.Toffset = nbinary.SwapFloat32(h.Toffset)
	h.Glmax = nbinary.SwapInt32(h.Glmax)
	h.Glmin = nbinary.SwapInt32(h.Glmin)
	h.QformCode = nbinary.SwapInt16(h.QformCode)
	h.SformCode = nbinary.SwapInt16(h.SformCode)
	h.QuaternB = nbinary.SwapFloat32(h.QuaternB)
	h.QuaternC = nbinary.SwapFloat32(h.QuaternC)
	h.QuaternD = nbinary.SwapFloat32(h.QuaternD)
	h.QoffsetX = nbinary.SwapFloat32(h.QoffsetX)
	h.QoffsetY = nbinary.SwapFloat32(h.QoffsetY)
	h.QoffsetZ = nbinary.SwapFloat32(h.QoffsetZ)
	for i := 0; i < 4; i++ {
		h.SrowX[i] = nbinary.SwapFloat32(h.SrowX[i])
		h.SrowY[i] = nbinary.SwapFloat32(h.SrowY[i])
		h.SrowZ[i] = nbinary.SwapFloat32(h.SrowZ[i])
	}
}

// ValidMagic reports whether the magic string is "ni1\0" or "n+1\0".
func (h *Nifti1) ValidMagic() bool {
	return h.Magic[0] == 'n' &&
		(h.Magic[1] == MagicSingle || h.Magic[1] == MagicPair) &&
		h.Magic[2] == '1' && h.Magic[3] == 0
}
