package nifti

import (
	"bytes"
	"encoding/binary"

	"github.com/sirupsen/logrus"

	"github.com/robert-malhotra/go-nifti/internal/alloc"
	nbinary "github.com/robert-malhotra/go-nifti/internal/binary"
	"github.com/robert-malhotra/go-nifti/internal/dtype"
	"github.com/robert-malhotra/go-nifti/internal/errs"
	"github.com/robert-malhotra/go-nifti/internal/fileio"
	"github.com/robert-malhotra/go-nifti/internal/header"
)

// pixdimTol is the smallest accepted voxel size.
const pixdimTol = 1e-8

// ReadLike creates a zero-filled dataset with the header of the NIfTI file
// at path. WithDatatype and WithFrames override the datatype and the
// number of frames; changing the frame count clears the intent fields.
func ReadLike(path string, opts ...Option) (*Dataset, error) {
	o := applyOptions(opts)

	var code dtype.Code
	if o.hasDatatype {
		var err error
		if code, err = dtype.Parse(o.datatype); err != nil {
			return nil, err
		}
	}
	if o.frames < 0 {
		return nil, errs.New(errs.Value, "requested nt cannot be less than zero")
	}
	return readNifti(path, code, o.frames, false, o)
}

// ReadFull reads the header and voxel data of the NIfTI file at path. The
// dataset is in TKJI order.
func ReadFull(path string, opts ...Option) (*Dataset, error) {
	o := applyOptions(opts)
	if o.hasDatatype || o.hasFrames {
		return nil, errs.New(errs.Value, "datatype and frame overrides apply to ReadLike only")
	}
	return readNifti(path, 0, 0, true, o)
}

func readNifti(path string, newCode dtype.Code, newFrames int64, readData bool, o *options) (_ *Dataset, err error) {
	defer func() {
		if e, ok := err.(*errs.Error); ok && e.Op == "" {
			e.Op = "read"
		}
	}()

	c, err := parseExt(path)
	if err != nil {
		return nil, err
	}

	var f1, f2 *fileio.File
	defer func() { fileio.CloseAll(&err, f1, f2) }()

	if f1, err = fileio.Open(path, fileio.ReadMode, o.compression, o.fileOptions()...); err != nil {
		return nil, err
	}
	if !o.compression {
		gz, err := f1.IsGzip()
		if err != nil {
			return nil, err
		}
		if gz {
			return nil, errs.New(errs.Domain, "compressed files not supported").WithPath(path)
		}
	}

	hdr, swapped, err := readHeader(f1, path)
	if err != nil {
		return nil, err
	}
	var order binary.ByteOrder = binary.NativeEndian
	if swapped {
		order = nbinary.Opposite(order)
	}
	log := o.logger.WithFields(logrus.Fields{
		"path":      path,
		"byteOrder": nbinary.OrderName(order),
		"paired":    c.paired,
	})

	if err := validate(hdr, path); err != nil {
		return nil, err
	}
	code := dtype.Code(hdr.Datatype)

	if newCode != 0 {
		hdr.Datatype = int16(newCode)
		hdr.Bitpix = dtype.Bitpix(newCode)
		code = newCode
	}
	if newFrames > 0 {
		setFrames(hdr, newFrames)
	}

	src := f1
	if readData {
		if !hdr.SingleFile() {
			if f2, err = fileio.Open(imagePath(path), fileio.ReadMode, o.compression, o.fileOptions()...); err != nil {
				return nil, err
			}
			src = f2
		}
		if err := checkLength(src, hdr); err != nil {
			return nil, err
		}
	}

	d, err := newDataset(*hdr, TKJI)
	if err != nil {
		return nil, err
	}
	log.WithFields(logrus.Fields{
		"dims":     d.Shape(),
		"datatype": code.String(),
	}).Debug("read NIfTI header")

	if !readData {
		return d, nil
	}
	if err := src.SeekTo(hdr.VoxOffset); err != nil {
		return nil, err
	}
	if err := src.Read(d.data, d.elementSize(), d.Len()); err != nil {
		return nil, err
	}
	if swapped {
		nbinary.SwapBuffer(d.data, d.elementSize())
	}
	log.WithField("bytes", len(d.data)).Debug("read NIfTI image data")
	return d, nil
}

// readHeader detects the NIfTI version and byte order from sizeof_hdr and
// returns the header widened to NIfTI-2 in host byte order.
func readHeader(f *fileio.File, path string) (*header.Nifti2, bool, error) {
	var size [4]byte
	if err := f.Read(size[:], 4, 1); err != nil {
		return nil, false, err
	}
	native, err := nbinary.NewReader(bytes.NewReader(size[:]), nbinary.Config{ByteOrder: binary.NativeEndian}).ReadInt32()
	if err != nil {
		return nil, false, errs.Wrap(errs.IO, err, "error reading from file").WithPath(path)
	}

	version, swapped := 0, false
	switch {
	case native == header.Size1:
		version = 1
	case native == header.Size2:
		version = 2
	case nbinary.SwapInt32(native) == header.Size1:
		version, swapped = 1, true
	case nbinary.SwapInt32(native) == header.Size2:
		version, swapped = 2, true
	default:
		return nil, false, errs.New(errs.Domain, "invalid NIfTI header (sizeof_hdr)").WithPath(path)
	}
	if err := f.SeekTo(0); err != nil {
		return nil, false, err
	}

	if version == 1 {
		raw := make([]byte, header.Size1)
		if err := f.Read(raw, header.Size1, 1); err != nil {
			return nil, false, err
		}
		h1, err := header.DecodeNifti1(raw, binary.NativeEndian)
		if err != nil {
			return nil, false, errs.Wrap(errs.IO, err, "error reading from file").WithPath(path)
		}
		if !h1.ValidMagic() {
			return nil, false, errs.New(errs.Domain, "invalid NIfTI header (NIfTI-1 magic number)").WithPath(path)
		}
		if swapped {
			h1.Swap()
		}
		return header.Widen(h1), swapped, nil
	}

	raw := make([]byte, header.Size2)
	if err := f.Read(raw, header.Size2, 1); err != nil {
		return nil, false, err
	}
	h2, err := header.DecodeNifti2(raw, binary.NativeEndian)
	if err != nil {
		return nil, false, errs.Wrap(errs.IO, err, "error reading from file").WithPath(path)
	}
	if !h2.ValidMagic() {
		return nil, false, errs.New(errs.Domain, "invalid NIfTI header (NIfTI-2 magic number)").WithPath(path)
	}
	if swapped {
		h2.Swap()
	}
	return h2, swapped, nil
}

// checkLength rejects an uncompressed image file too short for the dims in
// h before the voxel buffer is allocated. The length of compressed data is
// only known once it has been inflated, so those files are read as is.
func checkLength(f *fileio.File, h *header.Nifti2) error {
	if f.Compressed() {
		return nil
	}
	need, err := alloc.Size(int64(dtype.ElementSize(dtype.Code(h.Datatype))), h.Dim[1], h.Dim[2], h.Dim[3], h.Frames())
	if err != nil {
		return err
	}
	size, err := f.Size()
	if err != nil {
		return err
	}
	if have := size - h.VoxOffset; have < need {
		return errs.New(errs.IO, "error reading from file (image data needs %d bytes, file holds %d)",
			need, max(have, 0)).WithPath(f.Path())
	}
	return nil
}

// validate checks the header fields in order and normalizes dims and
// pixdims that are technically invalid but common in the wild.
func validate(h *header.Nifti2, path string) error {
	domain := func(msg string) error {
		return errs.New(errs.Domain, "%s", msg).WithPath(path)
	}

	if h.VoxOffset < 0 || h.VoxOffset&0xf != 0 {
		return domain("invalid NIfTI header (vox_offset)")
	}

	if h.Dim[0] < 3 || h.Dim[0] > 5 || (h.Dim[0] == 5 && h.Dim[4] > 1) {
		return domain("only 3D, 4D, and statistical NIfTI files are supported")
	}
	switch h.Dim[0] {
	case 3:
		if h.Dim[4] == 0 {
			h.Dim[4] = 1
		}
		if h.Dim[5] == 0 {
			h.Dim[5] = 1
		}
	case 4:
		if h.Dim[5] == 0 {
			h.Dim[5] = 1
		}
	case 5:
		if h.Dim[4] == 0 {
			h.Dim[4] = 1
		}
	}
	h.Dim[6], h.Dim[7] = 1, 1
	if h.Dim[1] < 1 || h.Dim[2] < 1 || h.Dim[3] < 1 || h.Frames() < 1 {
		return domain("invalid NIfTI header (nonpositive dataset dimension)")
	}

	code, err := dtype.Lookup(h.Datatype)
	if err != nil {
		return err
	}
	if h.Bitpix != dtype.Bitpix(code) {
		return domain("invalid NIfTI header (bitpix does not match datatype)")
	}

	if h.Pixdim[1] < pixdimTol || h.Pixdim[2] < pixdimTol || h.Pixdim[3] < pixdimTol ||
		(h.Dim[4] > 1 && h.Pixdim[4] < pixdimTol) {
		return domain("invalid NIfTI header (nonpositive pixdim)")
	}
	h.Pixdim[5], h.Pixdim[6], h.Pixdim[7] = 0, 0, 0
	return nil
}

// setFrames makes h a 4-D header with nt frames and no intent.
func setFrames(h *header.Nifti2, nt int64) {
	h.Dim[0] = 4
	h.Dim[4] = nt
	h.Dim[5] = 1
	h.IntentCode = 0
	h.IntentName = [16]byte{}
	h.IntentP1, h.IntentP2, h.IntentP3 = 0, 0, 0
	h.Toffset = 0
	h.XYZTUnits &= header.SpaceUnitsMask
	if nt == 1 {
		h.Pixdim[4] = 0
	} else {
		h.Pixdim[4] = 1
		h.XYZTUnits |= header.UnitsSec
	}
}
