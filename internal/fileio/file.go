package fileio

import (
	"bufio"
	"bytes"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"
	"github.com/sirupsen/logrus"

	"github.com/robert-malhotra/go-nifti/internal/errs"
)

// Mode selects the direction of a File.
type Mode int

const (
	ReadMode Mode = iota
	WriteMode
)

func (m Mode) String() string {
	if m == WriteMode {
		return "write"
	}
	return "read"
}

// gzipMagic starts every gzip member.
var gzipMagic = []byte{0x1f, 0x8b}

// File is a sequential binary file handle. It is not safe for concurrent
// use.
type File struct {
	path string
	mode Mode
	f    *os.File
	pos  int64
	opts *options
	log  logrus.FieldLogger

	// read side
	raw *bufio.Reader // buffered file bytes
	gzr *gzip.Reader  // non-nil for a compressed stream
	r   *bufio.Reader // logical bytes

	// write side
	bw  *bufio.Writer
	gzw *gzip.Writer
	w   io.Writer

	closed bool
}

// Open opens path in the given mode. With compress set, reads
// transparently decompress gzip data and writes produce a gzip stream.
func Open(path string, mode Mode, compress bool, opts ...Option) (*File, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	fh := &File{
		path: path,
		mode: mode,
		opts: o,
		log:  o.logger.WithFields(logrus.Fields{"path": path, "mode": mode.String()}),
	}

	var err error
	if mode == WriteMode {
		fh.f, err = os.Create(path)
	} else {
		fh.f, err = os.Open(path)
	}
	if err != nil {
		return nil, errs.Wrap(errs.IO, err, "error opening file").WithPath(path)
	}

	if mode == WriteMode {
		err = fh.initWriter(compress)
	} else {
		err = fh.initReader(compress)
	}
	if err != nil {
		fh.f.Close()
		return nil, err
	}
	fh.log.WithField("compressed", fh.Compressed()).Debug("opened file")
	return fh, nil
}

func (fh *File) initReader(compress bool) error {
	fh.raw = bufio.NewReader(fh.f)
	fh.r = fh.raw
	if !compress {
		return nil
	}
	magic, err := fh.raw.Peek(len(gzipMagic))
	if err != nil || !bytes.Equal(magic, gzipMagic) {
		// Short or plain files pass through unchanged.
		return nil
	}
	fh.gzr, err = gzip.NewReader(fh.raw)
	if err != nil {
		return errs.Wrap(errs.IO, err, "error opening file").WithPath(fh.path)
	}
	fh.r = bufio.NewReader(fh.gzr)
	return nil
}

func (fh *File) initWriter(compress bool) error {
	fh.bw = bufio.NewWriter(fh.f)
	fh.w = fh.bw
	if !compress {
		return nil
	}
	var err error
	fh.gzw, err = gzip.NewWriterLevel(fh.bw, fh.opts.level)
	if err != nil {
		return errs.Wrap(errs.IO, err, "error opening file").WithPath(fh.path)
	}
	fh.w = fh.gzw
	return nil
}

// Path returns the file name.
func (fh *File) Path() string { return fh.path }

// Pos returns the logical position.
func (fh *File) Pos() int64 { return fh.pos }

// Compressed reports whether transfers go through gzip.
func (fh *File) Compressed() bool { return fh.gzr != nil || fh.gzw != nil }

// chunk returns the largest transfer allowed for a remaining length.
func (fh *File) chunk(remaining int) int {
	if fh.Compressed() && remaining > fh.opts.blockSize {
		return fh.opts.blockSize
	}
	return remaining
}

// Read fills the first size*count bytes of buf. Anything less is an error.
func (fh *File) Read(buf []byte, size, count int) error {
	if fh.mode != ReadMode || fh.closed {
		return errs.New(errs.IO, "error reading from file").WithPath(fh.path)
	}
	n := size * count
	if size < 0 || count < 0 || n > len(buf) {
		return errs.New(errs.Value, "read of %dx%d bytes into %d-byte buffer", count, size, len(buf))
	}
	for off := 0; off < n; {
		k := fh.chunk(n - off)
		got, err := io.ReadFull(fh.r, buf[off:off+k])
		fh.pos += int64(got)
		if err != nil {
			return errs.Wrap(errs.IO, err, "error reading from file").WithPath(fh.path)
		}
		off += k
	}
	return nil
}

// Write writes the first size*count bytes of buf.
func (fh *File) Write(buf []byte, size, count int) error {
	if fh.mode != WriteMode || fh.closed {
		return errs.New(errs.IO, "error writing to file").WithPath(fh.path)
	}
	n := size * count
	if size < 0 || count < 0 || n > len(buf) {
		return errs.New(errs.Value, "write of %dx%d bytes from %d-byte buffer", count, size, len(buf))
	}
	for off := 0; off < n; {
		k := fh.chunk(n - off)
		got, err := fh.w.Write(buf[off : off+k])
		fh.pos += int64(got)
		if err == nil && got < k {
			err = io.ErrShortWrite
		}
		if err != nil {
			return errs.Wrap(errs.IO, err, "error writing to file").WithPath(fh.path)
		}
		off += k
	}
	return nil
}

// Peek returns the next n logical bytes without consuming them. Fewer
// than n bytes are returned at end of file.
func (fh *File) Peek(n int) ([]byte, error) {
	if fh.mode != ReadMode || fh.closed {
		return nil, errs.New(errs.IO, "error reading from file").WithPath(fh.path)
	}
	b, err := fh.r.Peek(n)
	if err != nil && err != io.EOF {
		return nil, errs.Wrap(errs.IO, err, "error reading from file").WithPath(fh.path)
	}
	return append([]byte(nil), b...), nil
}

// Size returns the length of the underlying file. For a compressed file
// this is the compressed length.
func (fh *File) Size() (int64, error) {
	info, err := fh.f.Stat()
	if err != nil {
		return 0, errs.Wrap(errs.IO, err, "error reading from file").WithPath(fh.path)
	}
	return info.Size(), nil
}

// IsGzip reports whether the file starts with the gzip magic number.
// Only meaningful for a file opened without compression.
func (fh *File) IsGzip() (bool, error) {
	b, err := fh.Peek(len(gzipMagic))
	if err != nil {
		return false, err
	}
	return bytes.Equal(b, gzipMagic), nil
}

// SeekTo moves to an absolute logical offset.
func (fh *File) SeekTo(offset int64) error {
	if offset < 0 || fh.closed {
		return fh.seekError(nil)
	}
	if fh.mode == ReadMode {
		return fh.seekRead(offset)
	}
	return fh.seekWrite(offset)
}

func (fh *File) seekError(err error) error {
	return errs.Wrap(errs.IO, err, "error seeking file offset").WithPath(fh.path)
}

func (fh *File) seekRead(offset int64) error {
	if fh.gzr == nil {
		if _, err := fh.f.Seek(offset, io.SeekStart); err != nil {
			return fh.seekError(err)
		}
		fh.raw.Reset(fh.f)
		fh.pos = offset
		return nil
	}

	if offset < fh.pos {
		// Rewind by restarting the decompressor at the top of the file.
		if _, err := fh.f.Seek(0, io.SeekStart); err != nil {
			return fh.seekError(err)
		}
		fh.raw.Reset(fh.f)
		if err := fh.gzr.Reset(fh.raw); err != nil {
			return fh.seekError(err)
		}
		fh.r.Reset(fh.gzr)
		fh.pos = 0
		fh.log.WithField("offset", offset).Debug("rewound compressed stream")
	}
	for fh.pos < offset {
		k := offset - fh.pos
		if k > int64(fh.opts.blockSize) {
			k = int64(fh.opts.blockSize)
		}
		got, err := fh.r.Discard(int(k))
		fh.pos += int64(got)
		if err != nil {
			return fh.seekError(err)
		}
	}
	return nil
}

func (fh *File) seekWrite(offset int64) error {
	if fh.gzw == nil {
		if err := fh.bw.Flush(); err != nil {
			return fh.seekError(err)
		}
		if _, err := fh.f.Seek(offset, io.SeekStart); err != nil {
			return fh.seekError(err)
		}
		fh.pos = offset
		return nil
	}

	if offset < fh.pos {
		return fh.seekError(nil)
	}
	if gap := offset - fh.pos; gap > 0 {
		zeros := make([]byte, min(gap, int64(fh.opts.blockSize)))
		for fh.pos < offset {
			k := min(offset-fh.pos, int64(len(zeros)))
			if err := fh.Write(zeros, 1, int(k)); err != nil {
				return fh.seekError(err)
			}
		}
	}
	return nil
}

// Close flushes pending output and releases the file. It is safe to call
// more than once; only the first call does any work.
func (fh *File) Close() error {
	if fh == nil || fh.closed {
		return nil
	}
	fh.closed = true

	var first error
	keep := func(err error) {
		if first == nil && err != nil {
			first = err
		}
	}
	if fh.gzw != nil {
		keep(fh.gzw.Close())
	}
	if fh.bw != nil {
		keep(fh.bw.Flush())
	}
	if fh.gzr != nil {
		keep(fh.gzr.Close())
	}
	keep(fh.f.Close())

	fh.log.WithField("bytes", fh.pos).Debug("closed file")
	if first != nil {
		return errs.Wrap(errs.IO, first, "error closing file").WithPath(fh.path)
	}
	return nil
}

// CloseAll closes every non-nil file. A close failure is stored in *err
// only if *err is nil, so cleanup never masks the original error.
func CloseAll(err *error, files ...*File) {
	for _, f := range files {
		if f == nil {
			continue
		}
		if cerr := f.Close(); cerr != nil && *err == nil {
			*err = cerr
		}
	}
}
