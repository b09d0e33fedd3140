// Package nifti manages in-memory 4-D imaging datasets backed by NIfTI-1
// and NIfTI-2 files.
//
// A [Dataset] owns a voxel buffer laid out in one of two storage orders:
// [TKJI], where each volume is contiguous, or [KJIT], where each voxel's
// time series is contiguous. [Dataset.SetOrder] switches between them in
// place with a cache-oblivious transpose.
//
//	d, err := nifti.ReadFull("bold.nii.gz")
//	if err != nil {
//		return err
//	}
//	if err := d.SetOrder(nifti.KJIT); err != nil {
//		return err
//	}
//	ts := d.Float32s() // nil unless the datatype is float32
//
// Errors carry a kind that can be tested with errors.Is against
// [ErrType], [ErrValue], [ErrDomain], [ErrIO] and [ErrOutOfMemory].
package nifti

import "github.com/robert-malhotra/go-nifti/internal/errs"

// Error kinds.
var (
	ErrType        = errs.ErrType
	ErrValue       = errs.ErrValue
	ErrDomain      = errs.ErrDomain
	ErrIO          = errs.ErrIO
	ErrOutOfMemory = errs.ErrOutOfMemory
)

// Error is the concrete error type returned by this package.
type Error = errs.Error
