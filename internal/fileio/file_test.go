package fileio

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/robert-malhotra/go-nifti/internal/errs"
)

func pattern(n int) []byte {
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = byte(i % 251)
	}
	return buf
}

func TestPlainRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plain.bin")
	data := pattern(1000)

	w, err := Open(path, WriteMode, false)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if err := w.Write(data, 4, 250); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	r, err := Open(path, ReadMode, false)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer r.Close()

	if err := r.SeekTo(600); err != nil {
		t.Fatalf("SeekTo failed: %v", err)
	}
	got := make([]byte, 400)
	if err := r.Read(got, 1, 400); err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if !bytes.Equal(got, data[600:]) {
		t.Error("data after seek mismatch")
	}

	if err := r.SeekTo(0); err != nil {
		t.Fatalf("SeekTo failed: %v", err)
	}
	if err := r.Read(got, 2, 200); err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if !bytes.Equal(got, data[:400]) {
		t.Error("data after rewind mismatch")
	}
}

func TestCompressedRoundTripBlocks(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.gz")
	data := pattern(10000)

	w, err := Open(path, WriteMode, true, WithBlockSize(64), WithLevel(1))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if !w.Compressed() {
		t.Error("expected a compressed writer")
	}
	if err := w.SeekTo(16); err != nil {
		t.Fatalf("forward SeekTo failed: %v", err)
	}
	if err := w.Write(data, 8, len(data)/8); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(raw[:2], gzipMagic) {
		t.Fatalf("output is not gzip: % x", raw[:2])
	}

	r, err := Open(path, ReadMode, true, WithBlockSize(100))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer r.Close()

	head := make([]byte, 16)
	if err := r.Read(head, 1, 16); err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if !bytes.Equal(head, make([]byte, 16)) {
		t.Errorf("seek gap not zero-filled: % x", head)
	}
	got := make([]byte, len(data))
	if err := r.Read(got, 1, len(got)); err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if !bytes.Equal(got, data) {
		t.Error("compressed round trip mismatch")
	}

	// Rewind restarts the stream.
	if err := r.SeekTo(20); err != nil {
		t.Fatalf("rewind SeekTo failed: %v", err)
	}
	small := make([]byte, 4)
	if err := r.Read(small, 4, 1); err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if !bytes.Equal(small, data[4:8]) {
		t.Errorf("after rewind got % x, want % x", small, data[4:8])
	}
}

func TestCompressedReadOfPlainFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plain.nii")
	if err := os.WriteFile(path, []byte("n+2 data"), 0o644); err != nil {
		t.Fatal(err)
	}
	r, err := Open(path, ReadMode, true)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer r.Close()
	if r.Compressed() {
		t.Error("plain file should not be treated as compressed")
	}
	got := make([]byte, 8)
	if err := r.Read(got, 1, 8); err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if string(got) != "n+2 data" {
		t.Errorf("got %q", got)
	}
}

func TestGzipSniff(t *testing.T) {
	path := filepath.Join(t.TempDir(), "x.nii.gz")
	w, err := Open(path, WriteMode, true)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if err := w.Write([]byte{1, 2, 3}, 1, 3); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	r, err := Open(path, ReadMode, false)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer r.Close()
	gz, err := r.IsGzip()
	if err != nil {
		t.Fatalf("IsGzip failed: %v", err)
	}
	if !gz {
		t.Error("expected gzip magic")
	}
	if r.Pos() != 0 {
		t.Error("Peek consumed input")
	}
}

func TestShortReadIsIOError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "short.bin")
	if err := os.WriteFile(path, []byte{1, 2, 3}, 0o644); err != nil {
		t.Fatal(err)
	}
	r, err := Open(path, ReadMode, true)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer r.Close()

	buf := make([]byte, 4)
	if err := r.Read(buf, 4, 1); !errors.Is(err, errs.ErrIO) {
		t.Errorf("expected IO error, got %v", err)
	}
}

func TestBackwardSeekOnCompressedWriter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "w.gz")
	w, err := Open(path, WriteMode, true)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer w.Close()
	if err := w.Write(pattern(32), 1, 32); err != nil {
		t.Fatal(err)
	}
	if err := w.SeekTo(8); !errors.Is(err, errs.ErrIO) {
		t.Errorf("expected IO error, got %v", err)
	}
}

func TestOpenMissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing.nii"), ReadMode, true)
	if !errors.Is(err, errs.ErrIO) {
		t.Fatalf("expected IO error, got %v", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected wrapped os.ErrNotExist, got %v", err)
	}
}

func TestCloseOnceAndCloseAll(t *testing.T) {
	dir := t.TempDir()
	a, err := Open(filepath.Join(dir, "a"), WriteMode, false)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Open(filepath.Join(dir, "b"), WriteMode, false)
	if err != nil {
		t.Fatal(err)
	}

	original := errors.New("earlier failure")
	pending := original
	CloseAll(&pending, a, nil, b)
	if pending != original {
		t.Errorf("CloseAll replaced pending error with %v", pending)
	}
	if err := a.Close(); err != nil {
		t.Errorf("second Close returned %v", err)
	}
	if err := a.Write([]byte{1}, 1, 1); !errors.Is(err, errs.ErrIO) {
		t.Errorf("write after close: expected IO error, got %v", err)
	}

	var none error
	CloseAll(&none, a, b)
	if none != nil {
		t.Errorf("CloseAll on closed files = %v", none)
	}
}

func TestCloseAllReportsCloseError(t *testing.T) {
	if _, err := os.Stat("/dev/full"); err != nil {
		t.Skip("/dev/full not available")
	}
	f, err := Open("/dev/full", WriteMode, false)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	// Small enough to stay buffered until Close.
	if err := f.Write(pattern(16), 1, 16); err != nil {
		t.Fatalf("buffered Write failed: %v", err)
	}

	var pending error
	CloseAll(&pending, f)
	if !errors.Is(pending, errs.ErrIO) {
		t.Errorf("expected IO error from close, got %v", pending)
	}
}

func TestFileSize(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sized")
	if err := os.WriteFile(path, pattern(300), 0o644); err != nil {
		t.Fatal(err)
	}
	f, err := Open(path, ReadMode, true)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	n, err := f.Size()
	if err != nil {
		t.Fatalf("Size failed: %v", err)
	}
	if n != 300 {
		t.Errorf("Size = %d, want 300", n)
	}
}
