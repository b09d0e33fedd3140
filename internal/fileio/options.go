package fileio

import (
	"github.com/klauspost/compress/gzip"
	"github.com/sirupsen/logrus"
)

// MaxBlockSize caps a single transfer through the compression layer.
const MaxBlockSize = 1 << 30

// Option configures a File.
type Option func(*options)

type options struct {
	level     int
	blockSize int
	logger    logrus.FieldLogger
}

func defaultOptions() *options {
	return &options{
		level:     gzip.DefaultCompression,
		blockSize: MaxBlockSize,
		logger:    logrus.StandardLogger(),
	}
}

// WithLevel sets the gzip compression level for compressed writes.
func WithLevel(level int) Option {
	return func(o *options) {
		o.level = level
	}
}

// WithBlockSize overrides MaxBlockSize. Values outside (0, MaxBlockSize]
// are ignored.
func WithBlockSize(n int) Option {
	return func(o *options) {
		if n > 0 && n <= MaxBlockSize {
			o.blockSize = n
		}
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}
