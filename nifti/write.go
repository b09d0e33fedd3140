package nifti

import (
	"encoding/binary"

	"github.com/sirupsen/logrus"

	"github.com/robert-malhotra/go-nifti/internal/errs"
	"github.com/robert-malhotra/go-nifti/internal/fileio"
	"github.com/robert-malhotra/go-nifti/internal/header"
)

// Write stores d as a NIfTI file. The extension selects the container:
// .nii and .nii.gz hold header and image in one file, .hdr and .hdr.gz
// pair the header with an .img or .img.gz image file. WithVersion chooses
// NIfTI-1 or NIfTI-2 (the default). Files are written in host byte order.
//
// A KJIT dataset is transposed to TKJI for the write and restored
// afterwards, even on failure. After a successful write the header's
// vox_offset and magic record the container; a failed write leaves the
// header unchanged.
func Write(d *Dataset, path string, opts ...Option) (err error) {
	o := applyOptions(opts)
	defer func() {
		if e, ok := err.(*errs.Error); ok && e.Op == "" {
			e.Op = "write"
		}
	}()

	if o.version != 1 && o.version != 2 {
		return errs.New(errs.Value, "invalid nifti_ver: %d", o.version)
	}
	c, err := parseExt(path)
	if err != nil {
		return err
	}
	if c.gzipped && !o.compression {
		return errs.New(errs.Domain, "compressed files not supported").WithPath(path)
	}

	voxOffset, magic := c.layout(o.version)
	defer func() {
		if err == nil {
			d.hdr.VoxOffset = voxOffset
			d.hdr.Magic[1] = magic
		}
	}()

	var f1, f2 *fileio.File
	defer func() { fileio.CloseAll(&err, f1, f2) }()

	if f1, err = fileio.Open(path, fileio.WriteMode, c.gzipped, o.fileOptions()...); err != nil {
		return err
	}

	raw, err := encodeHeader(d.hdr, o.version, voxOffset, magic)
	if err != nil {
		return errs.Wrap(errs.Domain, err, "cannot export to NIfTI-1: header value out of range").WithPath(path)
	}
	if err := f1.Write(raw, len(raw), 1); err != nil {
		return err
	}

	dst := f1
	if c.paired {
		// Empty extension flag.
		if err := f1.Write(make([]byte, 4), 4, 1); err != nil {
			return err
		}
		if f2, err = fileio.Open(imagePath(path), fileio.WriteMode, c.gzipped, o.fileOptions()...); err != nil {
			return err
		}
		dst = f2
	}
	if err := dst.SeekTo(voxOffset); err != nil {
		return err
	}

	if d.order == KJIT {
		if err := d.SetOrder(TKJI); err != nil {
			return err
		}
		defer func() {
			if rerr := d.SetOrder(KJIT); rerr != nil && err == nil {
				err = rerr
			}
		}()
	}
	if err := dst.Write(d.data, d.elementSize(), d.Len()); err != nil {
		return err
	}

	o.logger.WithFields(logrus.Fields{
		"path":       path,
		"version":    o.version,
		"paired":     c.paired,
		"compressed": c.gzipped,
		"voxOffset":  voxOffset,
		"bytes":      len(d.data),
	}).Debug("wrote NIfTI file")
	return nil
}

// layout returns the vox_offset and magic continuation byte of a file
// written in c.
func (c container) layout(version int) (int64, byte) {
	switch {
	case c.paired:
		return 0, header.MagicPair
	case version == 1:
		return header.VoxOffset1, header.MagicSingle
	default:
		return header.VoxOffset2, header.MagicSingle
	}
}

// encodeHeader serializes h for the given version and container.
func encodeHeader(h Header, version int, voxOffset int64, magic byte) ([]byte, error) {
	if version == 1 {
		h1, err := header.Narrow(&h)
		if err != nil {
			return nil, err
		}
		h1.VoxOffset = float32(voxOffset)
		h1.Magic[1] = magic
		return h1.Encode(binary.NativeEndian), nil
	}
	h.VoxOffset = voxOffset
	h.Magic[1] = magic
	return h.Encode(binary.NativeEndian), nil
}
