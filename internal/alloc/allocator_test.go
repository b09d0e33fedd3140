package alloc

import (
	"errors"
	"math"
	"testing"
	"unsafe"

	"github.com/robert-malhotra/go-nifti/internal/errs"
)

func TestSize(t *testing.T) {
	n, err := Size(2, 2, 3, 4, 5)
	if err != nil {
		t.Fatalf("Size failed: %v", err)
	}
	if n != 240 {
		t.Errorf("Size = %d, want 240", n)
	}
}

func TestSizeOverflow(t *testing.T) {
	_, err := Size(8, math.MaxInt32, math.MaxInt32, math.MaxInt32)
	if !errors.Is(err, errs.ErrOutOfMemory) {
		t.Errorf("expected out of memory, got %v", err)
	}

	_, err = Size(8, -1)
	if !errors.Is(err, errs.ErrOutOfMemory) {
		t.Errorf("expected out of memory for negative dim, got %v", err)
	}
}

func TestBytesAligned(t *testing.T) {
	for _, n := range []int64{1, 2, 3, 7, 8, 9, 100, 4096} {
		buf, err := Bytes(n)
		if err != nil {
			t.Fatalf("Bytes(%d) failed: %v", n, err)
		}
		if int64(len(buf)) != n {
			t.Errorf("len = %d, want %d", len(buf), n)
		}
		if uintptr(unsafe.Pointer(&buf[0]))%8 != 0 {
			t.Errorf("Bytes(%d) not 8-byte aligned", n)
		}
		for i, b := range buf {
			if b != 0 {
				t.Fatalf("byte %d not zero", i)
			}
		}
	}
}

func TestBytesZero(t *testing.T) {
	buf, err := Bytes(0)
	if err != nil {
		t.Fatalf("Bytes(0) failed: %v", err)
	}
	if buf == nil || len(buf) != 0 {
		t.Errorf("expected empty non-nil buffer, got %v", buf)
	}
}

func TestBytesTooLarge(t *testing.T) {
	_, err := Bytes(MaxBytes + 1)
	if !errors.Is(err, errs.ErrOutOfMemory) {
		t.Errorf("expected out of memory, got %v", err)
	}
	_, err = Bytes(-1)
	if !errors.Is(err, errs.ErrOutOfMemory) {
		t.Errorf("expected out of memory for negative size, got %v", err)
	}
}

func TestAllocatorStats(t *testing.T) {
	a := &Allocator{}

	b1, err := a.Scratch(100)
	if err != nil {
		t.Fatal(err)
	}
	b2, err := a.Scratch(300)
	if err != nil {
		t.Fatal(err)
	}

	stats := a.Stats()
	if stats.TotalAllocations != 2 {
		t.Errorf("TotalAllocations = %d, want 2", stats.TotalAllocations)
	}
	if stats.TotalBytesAlloc != 400 {
		t.Errorf("TotalBytesAlloc = %d, want 400", stats.TotalBytesAlloc)
	}
	if stats.LargestAlloc != 300 {
		t.Errorf("LargestAlloc = %d, want 300", stats.LargestAlloc)
	}
	if stats.Live != 2 {
		t.Errorf("Live = %d, want 2", stats.Live)
	}

	a.Release(b1)
	a.Release(b2)
	a.Release(nil)
	if a.Stats().Live != 0 {
		t.Errorf("Live after release = %d, want 0", a.Stats().Live)
	}

	a.Reset()
	if a.Stats() != (Stats{}) {
		t.Error("Reset should clear stats")
	}
}
