package header

import (
	"fmt"
	"math"
)

// Widen converts a NIfTI-1 header to NIfTI-2. The conversion is lossless.
// The continuation byte of the magic string is kept; fields that exist only
// in NIfTI-1 (data_type, db_name, extents, session_error, regular,
// glmax, glmin) are dropped.
func Widen(h1 *Nifti1) *Nifti2 {
	h2 := &Nifti2{
		SizeofHdr:     Size2,
		Datatype:      h1.Datatype,
		Bitpix:        h1.Bitpix,
		IntentP1:      float64(h1.IntentP1),
		IntentP2:      float64(h1.IntentP2),
		IntentP3:      float64(h1.IntentP3),
		VoxOffset:     int64(h1.VoxOffset),
		SclSlope:      float64(h1.SclSlope),
		SclInter:      float64(h1.SclInter),
		CalMax:        float64(h1.CalMax),
		CalMin:        float64(h1.CalMin),
		SliceDuration: float64(h1.SliceDuration),
		Toffset:       float64(h1.Toffset),
		SliceStart:    int64(h1.SliceStart),
		SliceEnd:      int64(h1.SliceEnd),
		Descrip:       h1.Descrip,
		AuxFile:       h1.AuxFile,
		QformCode:     int32(h1.QformCode),
		SformCode:     int32(h1.SformCode),
		QuaternB:      float64(h1.QuaternB),
		QuaternC:      float64(h1.QuaternC),
		QuaternD:      float64(h1.QuaternD),
		QoffsetX:      float64(h1.QoffsetX),
		QoffsetY:      float64(h1.QoffsetY),
		QoffsetZ:      float64(h1.QoffsetZ),
		SliceCode:     int32(h1.SliceCode),
		XYZTUnits:     int32(h1.XYZTUnits),
		IntentCode:    int32(h1.IntentCode),
		IntentName:    h1.IntentName,
		DimInfo:       h1.DimInfo,
	}
	h2.SetMagic(h1.Magic[1])
	for i := range h1.Dim {
		h2.Dim[i] = int64(h1.Dim[i])
		h2.Pixdim[i] = float64(h1.Pixdim[i])
	}
	for i := 0; i < 4; i++ {
		h2.SrowX[i] = float64(h1.SrowX[i])
		h2.SrowY[i] = float64(h1.SrowY[i])
		h2.SrowZ[i] = float64(h1.SrowZ[i])
	}
	return h2
}

// Narrow converts a NIfTI-2 header to NIfTI-1. Integer fields are
// range-checked against their NIfTI-1 widths and ErrRange is returned on
// overflow. Floating-point fields lose precision but never fail.
//
// VoxOffset and the magic continuation byte are left zero; they depend on
// the output container and are set by the writer.
func Narrow(h2 *Nifti2) (*Nifti1, error) {
	h1 := &Nifti1{SizeofHdr: Size1}

	for i, d := range h2.Dim {
		v, err := narrow16(fmt.Sprintf("dim[%d]", i), d)
		if err != nil {
			return nil, err
		}
		h1.Dim[i] = v
	}

	var err error
	if h1.IntentCode, err = narrow16("intent_code", int64(h2.IntentCode)); err != nil {
		return nil, err
	}
	if h1.SliceStart, err = narrow16("slice_start", h2.SliceStart); err != nil {
		return nil, err
	}
	if h1.SliceEnd, err = narrow16("slice_end", h2.SliceEnd); err != nil {
		return nil, err
	}
	if h1.QformCode, err = narrow16("qform_code", int64(h2.QformCode)); err != nil {
		return nil, err
	}
	if h1.SformCode, err = narrow16("sform_code", int64(h2.SformCode)); err != nil {
		return nil, err
	}
	if h1.SliceCode, err = narrow8("slice_code", h2.SliceCode); err != nil {
		return nil, err
	}
	if h1.XYZTUnits, err = narrow8("xyzt_units", h2.XYZTUnits); err != nil {
		return nil, err
	}

	h1.DimInfo = h2.DimInfo
	h1.Datatype = h2.Datatype
	h1.Bitpix = h2.Bitpix
	h1.IntentP1 = float32(h2.IntentP1)
	h1.IntentP2 = float32(h2.IntentP2)
	h1.IntentP3 = float32(h2.IntentP3)
	for i, p := range h2.Pixdim {
		h1.Pixdim[i] = float32(p)
	}
	h1.SclSlope = float32(h2.SclSlope)
	h1.SclInter = float32(h2.SclInter)
	h1.CalMax = float32(h2.CalMax)
	h1.CalMin = float32(h2.CalMin)
	h1.SliceDuration = float32(h2.SliceDuration)
	h1.Toffset = float32(h2.Toffset)
	h1.Descrip = h2.Descrip
	h1.AuxFile = h2.AuxFile
	h1.QuaternB = float32(h2.QuaternB)
	h1.QuaternC = float32(h2.QuaternC)
	h1.QuaternD = float32(h2.QuaternD)
	h1.QoffsetX = float32(h2.QoffsetX)
	h1.QoffsetY = float32(h2.QoffsetY)
	h1.QoffsetZ = float32(h2.QoffsetZ)
	for i := 0; i < 4; i++ {
		h1.SrowX[i] = float32(h2.SrowX[i])
		h1.SrowY[i] = float32(h2.SrowY[i])
		h1.SrowZ[i] = float32(h2.SrowZ[i])
	}
	h1.IntentName = h2.IntentName
	h1.Magic[0] = 'n'
	h1.Magic[2] = '1'
	return h1, nil
}

func narrow16(field string, v int64) (int16, error) {
	if v < math.MinInt16 || v > math.MaxInt16 {
		return 0, fmt.Errorf("%s = %d: %w", field, v, ErrRange)
	}
	return int16(v), nil
}

func narrow8(field string, v int32) (uint8, error) {
	if v < 0 || v > math.MaxUint8 {
		return 0, fmt.Errorf("%s = %d: %w", field, v, ErrRange)
	}
	return uint8(v), nil
}
