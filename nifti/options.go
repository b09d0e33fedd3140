package nifti

import (
	"github.com/klauspost/compress/gzip"
	"github.com/sirupsen/logrus"

	"github.com/robert-malhotra/go-nifti/internal/fileio"
)

// Option configures reading and writing.
type Option func(*options)

type options struct {
	logger      logrus.FieldLogger
	compression bool
	level       int
	version     int
	datatype    string
	hasDatatype bool
	frames      int64
	hasFrames   bool
	blockSize   int
}

func defaultOptions() *options {
	return &options{
		logger:      logrus.StandardLogger(),
		compression: true,
		level:       gzip.DefaultCompression,
		version:     2,
		blockSize:   fileio.MaxBlockSize,
	}
}

func applyOptions(opts []Option) *options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return o
}

func (o *options) fileOptions() []fileio.Option {
	return []fileio.Option{
		fileio.WithLogger(o.logger),
		fileio.WithLevel(o.level),
		fileio.WithBlockSize(o.blockSize),
	}
}

// WithLogger sets the logger for debug output. The default is the logrus
// standard logger.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithCompression enables or disables gzip support. With compression
// disabled, reading a gzip file and writing a .gz path both fail.
func WithCompression(enabled bool) Option {
	return func(o *options) {
		o.compression = enabled
	}
}

// WithCompressionLevel sets the gzip level used when writing (-1 to 9).
func WithCompressionLevel(level int) Option {
	return func(o *options) {
		if level >= gzip.DefaultCompression && level <= gzip.BestCompression {
			o.level = level
		}
	}
}

// WithVersion selects the NIfTI version written by Write (1 or 2).
func WithVersion(v int) Option {
	return func(o *options) {
		o.version = v
	}
}

// WithDatatype overrides the datatype of a dataset created by ReadLike.
func WithDatatype(name string) Option {
	return func(o *options) {
		o.datatype = name
		o.hasDatatype = true
	}
}

// WithFrames overrides the number of frames of a dataset created by
// ReadLike. Zero keeps the file's value.
func WithFrames(nt int64) Option {
	return func(o *options) {
		o.frames = nt
		o.hasFrames = true
	}
}

// WithBlockSize caps each transfer through the compression layer.
func WithBlockSize(n int) Option {
	return func(o *options) {
		o.blockSize = n
	}
}
