// Package alloc provides voxel and scratch buffer allocation.
//
// Voxel buffers are reinterpreted as uint8, int16, int32, float32 or
// float64 slices, so every buffer handed out here starts on an 8-byte
// boundary. Sizes are computed from header dimensions that come straight
// from disk, so the package also guards against products that overflow
// and against allocations the runtime refuses, reporting both as
// OutOfMemory errors instead of crashing the process.
//
// # Allocator
//
// The [Allocator] type tracks live buffers and totals. The transposition
// engine and the NIfTI writer use it for their scratch copies and release
// them on every exit path; the counters let tests verify that nothing is
// leaked.
//
// # Key Functions
//
//   - [Size]: overflow-checked ni*nj*nk*nt*elemSize
//   - [Bytes]: allocate an aligned, zeroed buffer
//   - [Allocator.Scratch] / [Allocator.Release]: tracked scratch buffers
package alloc
