package alloc

import (
	"fmt"
	"math"
	"sync"
	"unsafe"

	"github.com/robert-malhotra/go-nifti/internal/errs"
)

// MaxBytes is the largest buffer the package will attempt to allocate.
const MaxBytes = math.MaxInt64 / 2

// Size returns the product of dims and elemSize, or an OutOfMemory error
// if any factor is negative or the product overflows MaxBytes.
func Size(elemSize int64, dims ...int64) (int64, error) {
	if elemSize < 0 {
		return 0, errs.New(errs.OutOfMemory, "negative element size %d", elemSize)
	}
	total := elemSize
	for _, d := range dims {
		if d < 0 {
			return 0, errs.New(errs.OutOfMemory, "negative dimension %d", d)
		}
		if d != 0 && total > MaxBytes/d {
			return 0, errs.New(errs.OutOfMemory, "buffer size overflows")
		}
		total *= d
	}
	return total, nil
}

// Bytes allocates a zeroed buffer of n bytes aligned to 8 bytes.
func Bytes(n int64) (buf []byte, err error) {
	if n < 0 || n > MaxBytes || uint64(n) > uint64(math.MaxInt) {
		return nil, errs.New(errs.OutOfMemory, "cannot allocate %d bytes", n)
	}
	if n == 0 {
		return []byte{}, nil
	}

	// The runtime panics with a runtime.Error when it cannot satisfy a
	// makeslice request of a representable length.
	defer func() {
		if r := recover(); r != nil {
			buf = nil
			err = errs.New(errs.OutOfMemory, "cannot allocate %d bytes: %v", n, r)
		}
	}()

	words := make([]uint64, (n+7)/8)
	return unsafe.Slice((*byte)(unsafe.Pointer(&words[0])), int(n)), nil
}

// Stats contains allocation statistics.
type Stats struct {
	TotalAllocations uint64 // Number of scratch buffers handed out
	TotalBytesAlloc  uint64 // Total bytes handed out
	LargestAlloc     uint64 // Largest single allocation
	Live             int    // Buffers not yet released
}

// Allocator hands out tracked scratch buffers.
type Allocator struct {
	mu    sync.Mutex
	stats Stats
}

// Default is the process-wide allocator used for scratch buffers.
var Default = &Allocator{}

// Scratch allocates an aligned buffer of n bytes and counts it as live
// until Release is called.
func (a *Allocator) Scratch(n int64) ([]byte, error) {
	buf, err := Bytes(n)
	if err != nil {
		return nil, err
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	a.stats.TotalAllocations++
	a.stats.TotalBytesAlloc += uint64(n)
	if uint64(n) > a.stats.LargestAlloc {
		a.stats.LargestAlloc = uint64(n)
	}
	a.stats.Live++
	return buf, nil
}

// Release marks a scratch buffer as no longer in use. A nil buffer is
// ignored, so Release can be deferred before the allocation succeeds.
func (a *Allocator) Release(buf []byte) {
	if buf == nil {
		return
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.stats.Live == 0 {
		panic(fmt.Sprintf("alloc: release of %d-byte buffer with no live allocations", len(buf)))
	}
	a.stats.Live--
}

// Stats returns a copy of the allocation statistics.
func (a *Allocator) Stats() Stats {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.stats
}

// Reset clears the statistics. This is primarily useful for testing.
func (a *Allocator) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.stats = Stats{}
}
