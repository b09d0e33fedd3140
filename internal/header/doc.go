// Package header implements the on-disk NIfTI-1 and NIfTI-2 headers.
//
// A NIfTI-1 header is 348 bytes and a NIfTI-2 header is 540 bytes. Both are
// stored in the byte order of the machine that wrote them; readers detect a
// foreign order from the sizeof_hdr field and swap every multi-byte field.
//
// Datasets keep a single canonical NIfTI-2 header in memory. NIfTI-1 files
// are widened on read and narrowed on write:
//
//	h1, _ := header.DecodeNifti1(raw, binary.NativeEndian)
//	h2 := header.Widen(h1)
//	back, err := header.Narrow(h2) // ErrRange if a value does not fit
//
// # Key Functions
//
//   - [DecodeNifti1], [DecodeNifti2]: parse raw header bytes
//   - [Nifti1.Encode], [Nifti2.Encode]: serialize a header
//   - [Nifti1.Swap], [Nifti2.Swap]: reverse the byte order of every field
//   - [Widen]: lossless NIfTI-1 to NIfTI-2 conversion
//   - [Narrow]: range-checked NIfTI-2 to NIfTI-1 conversion
package header
