package stream

import (
	"fmt"
	"os"
	"path/filepath"
)

// AutoFileSystem dispatches filesystem metadata and management
// operations to the local os package or the registered HDFS backend
// based on each FilePath's scheme, giving callers one API regardless of
// where a path actually lives.
type AutoFileSystem struct{}

func toFileStat(p FilePath, fi os.FileInfo) FileStat {
	typ := FileTypeOther
	switch {
	case fi.Mode()&os.ModeSymlink != 0:
		typ = FileTypeSymlink
	case fi.IsDir():
		typ = FileTypeDir
	case fi.Mode().IsRegular():
		typ = FileTypeRegular
	}
	return FileStat{Path: p, Type: typ, Size: fi.Size(), ModTime: fi.ModTime().Unix()}
}

// Stat reports metadata for path, local or HDFS.
func (AutoFileSystem) Stat(p FilePath) (FileStat, error) {
	if p.IsHDFS() {
		h, err := getHDFS()
		if err != nil {
			return FileStat{}, err
		}
		return h.Stat(string(p))
	}
	fi, err := os.Stat(string(p))
	if err != nil {
		if os.IsNotExist(err) {
			return FileStat{Path: p, Type: FileTypeNotExist}, nil
		}
		return FileStat{}, err
	}
	return toFileStat(p, fi), nil
}

// Exists is a convenience wrapper around Stat.
func (fs AutoFileSystem) Exists(p FilePath) (bool, error) {
	st, err := fs.Stat(p)
	if err != nil {
		return false, err
	}
	return st.Type != FileTypeNotExist, nil
}

// List returns the immediate children of a directory path.
func (AutoFileSystem) List(p FilePath) ([]FileStat, error) {
	if p.IsHDFS() {
		h, err := getHDFS()
		if err != nil {
			return nil, err
		}
		return h.List(string(p))
	}
	entries, err := os.ReadDir(string(p))
	if err != nil {
		return nil, err
	}
	stats := make([]FileStat, 0, len(entries))
	for _, e := range entries {
		fi, err := e.Info()
		if err != nil {
			return nil, err
		}
		child := FilePath(filepath.Join(string(p), e.Name()))
		stats = append(stats, toFileStat(child, fi))
	}
	return stats, nil
}

// ListRecursive walks a directory tree, returning every entry underneath
// it, whatever its type (the root itself excluded).
func (fs AutoFileSystem) ListRecursive(p FilePath) ([]FileStat, error) {
	var out []FileStat
	children, err := fs.List(p)
	if err != nil {
		return nil, err
	}
	for _, c := range children {
		out = append(out, c)
		if c.Type == FileTypeDir {
			sub, err := fs.ListRecursive(c.Path)
			if err != nil {
				return nil, err
			}
			out = append(out, sub...)
		}
	}
	return out, nil
}

// MakeDir creates path and any missing parents.
func (AutoFileSystem) MakeDir(p FilePath) error {
	if p.IsHDFS() {
		h, err := getHDFS()
		if err != nil {
			return err
		}
		return h.MakeDir(string(p))
	}
	return os.MkdirAll(string(p), 0o755)
}

// Move renames src to dst. Both must live on the same backend; moving
// across local/HDFS is not supported, matching the original's
// single-filesystem rename semantics.
func (AutoFileSystem) Move(src, dst FilePath) error {
	if src.IsHDFS() != dst.IsHDFS() {
		return fmt.Errorf("stream: cannot move across local/HDFS boundary: %s -> %s", src, dst)
	}
	if src.IsHDFS() {
		h, err := getHDFS()
		if err != nil {
			return err
		}
		return h.Move(string(src), string(dst))
	}
	return os.Rename(string(src), string(dst))
}

// BackupIfExists renames path to "path.<unixSeconds>" if it already
// exists, so a subsequent write starts from a clean slate without
// destroying the previous output. It is a no-op, returning "", if path
// does not exist.
func (fs AutoFileSystem) BackupIfExists(p FilePath, unixSeconds int64) (FilePath, error) {
	exists, err := fs.Exists(p)
	if err != nil {
		return "", err
	}
	if !exists {
		return "", nil
	}
	backup := FilePath(fmt.Sprintf("%s.%d", p, unixSeconds))
	if err := fs.Move(p, backup); err != nil {
		return "", err
	}
	return backup, nil
}
