// Package dtype provides the NIfTI voxel datatype table and element
// conversion.
//
// Five datatypes are supported:
//
//	Name     | Code | Bitpix | Go type
//	---------|------|--------|---------
//	uint8    | 2    | 8      | uint8
//	int16    | 4    | 16     | int16
//	int32    | 8    | 32     | int32
//	float32  | 16   | 32     | float32
//	float64  | 64   | 64     | float64
//
// Codes handed in by callers are trusted: [Name], [Bitpix] and
// [ElementSize] panic on a code outside the table. Codes read from a file
// go through [Lookup], which reports an unsupported code as a domain error.
//
// # Conversion
//
// [Cast] converts whole buffers with C cast semantics:
//
//	err := dtype.Cast(dst, dtype.Int16, src, dtype.Float32)
//
// Integer narrowing wraps. Floating-point to integer conversion truncates
// toward zero and saturates at the target bounds, with NaN mapping to 0.
//
// # Key Functions
//
//   - [Parse], [ParseValue]: datatype name to code
//   - [Lookup]: validate a file datatype code
//   - [Cast]: convert a buffer between datatypes
//   - [Get], [Set], [SetRounded]: single element access in host byte order
//   - [FromSlice]: typed Go slice to code and raw bytes
package dtype
