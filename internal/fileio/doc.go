// Package fileio provides sequential binary file handles with optional
// transparent gzip compression.
//
// A [File] is opened for reading or writing. Reads and writes are exact:
// a short transfer is an error, since NIfTI header and image sizes are
// always known in advance. Seeks are absolute.
//
// Compressed files are handled by github.com/klauspost/compress/gzip.
// Opening a plain file for reading with compression enabled passes the
// bytes through unchanged, so .nii and .nii.gz readers share one code
// path. Transfers on compressed streams are split into blocks of at most
// [MaxBlockSize] bytes.
//
// # Key Functions
//
//   - [Open]: open a file for reading or writing
//   - [File.Read], [File.Write]: exact element transfers
//   - [File.SeekTo]: absolute seek
//   - [File.Peek]: look ahead without consuming
//   - [CloseAll]: close handles, keeping the first error
package fileio
