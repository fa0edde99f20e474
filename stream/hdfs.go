package stream

import (
	"errors"
	"io"
)

// ErrHDFSUnavailable is returned by any hdfs:// operation when no HDFS
// backend has been registered. The real HDFS client depends on the
// libhdfs shared library, which may not be present on every machine
// that links this package; RegisterHDFS lets a separate (cgo-backed)
// package wire in a working implementation only where that library is
// loadable, leaving hdfs:// paths a clean failure everywhere else.
var ErrHDFSUnavailable = errors.New("stream: no HDFS backend registered")

// HDFS is the subset of HDFS operations AutoFileSystem and
// AutoInputFileStream/AutoOutputFileStream need. An implementation
// backed by libhdfs (or a pure-Go HDFS client) registers itself with
// RegisterHDFS; until one does, every method on this package's HDFS
// path ever called returns ErrHDFSUnavailable.
type HDFS interface {
	Open(path string) (io.ReadCloser, error)
	Create(path string) (io.WriteCloser, error)
	Stat(path string) (FileStat, error)
	List(path string) ([]FileStat, error)
	MakeDir(path string) error
	Move(src, dst string) error
}

var hdfsBackend HDFS

// RegisterHDFS installs h as the backend for every hdfs:// path
// operation. Passing nil uninstalls the current backend.
func RegisterHDFS(h HDFS) {
	hdfsBackend = h
}

func getHDFS() (HDFS, error) {
	if hdfsBackend == nil {
		return nil, ErrHDFSUnavailable
	}
	return hdfsBackend, nil
}
