// Package stream implements DeepX-Go's I/O layer: file paths and stats, buffered and gzip-decompressing input wrappers, local
// and (optionally) HDFS file streams selected automatically from a
// path's scheme, and the magic-tagged binary codec used to serialize
// maps, sets, Tensors and SparseRowMatrices.
//
// The byte-level grammar is the one pod and srm.Matrix.WriteTo/ReadFrom
// already implement; this package is the transport and container layer
// sitting above it, grounded on persistence.go's little-endian framing
// style and on original_source/include/deepx_core/common/stream.h's
// StreamBase/AutoFileSystem design.
package stream

import (
	"errors"
	"path"
	"strings"
)

// ErrBad is returned by GunzipInputStream.Read once that stream has
// recorded a failure. A stream's bad bit is sticky: once set it stays set
// until Clear is called, mirroring StreamBase's fail()/bad() pair.
// BufferedInputStream and CFileStream record failures in their State but
// do not refuse later calls; those still reach the underlying reader or
// file.
var ErrBad = errors.New("stream: operation on a failed stream")

// hdfsScheme is the path prefix that routes FilePath/AutoFileSystem
// operations to the registered HDFS backend instead of the local
// filesystem.
const hdfsScheme = "hdfs://"

// FilePath is a UTF-8 path, local or HDFS ("hdfs://host:port/path"),
// kept exactly as given: no canonicalization or slash normalization is
// applied, and there are no basename/dirname helpers.
type FilePath string

// IsHDFS reports whether the path should be routed to the HDFS backend.
func (p FilePath) IsHDFS() bool {
	return strings.HasPrefix(string(p), hdfsScheme)
}

// IsGzip reports whether the path's extension marks it as gzip
// compressed.
func (p FilePath) IsGzip() bool {
	return path.Ext(string(p)) == ".gz"
}

// String returns the path as a plain string.
func (p FilePath) String() string { return string(p) }

// FileType classifies a path's target for FileStat.
type FileType int

const (
	FileTypeNotExist FileType = iota
	FileTypeRegular
	FileTypeDir
	FileTypeSymlink
	FileTypeOther
)

// FileStat is the subset of file metadata AutoFileSystem.Stat reports,
// uniformly across the local and HDFS backends.
type FileStat struct {
	Path    FilePath
	Type    FileType
	Size    int64
	ModTime int64 // unix seconds
}

// State is the sticky-bad-bit base embedded by every stream type in
// this package. Once Fail is called, IsOK stays false for the life of
// the stream, matching StreamBase's bad() never clearing without an
// explicit Clear.
type State struct {
	err error
}

// IsOK reports whether the stream has not yet recorded a failure.
func (s *State) IsOK() bool { return s.err == nil }

// Err returns the sticky error, or nil if the stream is still OK.
func (s *State) Err() error { return s.err }

// Fail records err as the stream's sticky failure if one is not already
// set; the first failure wins.
func (s *State) Fail(err error) {
	if s.err == nil && err != nil {
		s.err = err
	}
}

// Clear resets the sticky bad bit, matching StreamBase::clear().
func (s *State) Clear() { s.err = nil }
