// Package jsonfile implements the shared persistence primitive for Attune's
// file-backed stores: a JSON document on disk that tolerates absence and is
// replaced atomically on every save, so a crash mid-write never leaves a
// truncated or partially-written file behind.
package jsonfile

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bytedance/sonic"
)

// File wraps a single JSON document path.
type File struct {
	path string
}

// New creates a File for the given path. The file itself is not touched
// until Load or Save is called.
func New(path string) *File {
	return &File{path: path}
}

// Path returns the backing file path.
func (f *File) Path() string { return f.path }

// Load unmarshals the document into v. It returns found=false (and no
// error) when the file does not exist, so stores can start from an empty
// default. A present-but-unreadable file returns an error; callers decide
// whether to default to empty.
func (f *File) Load(v any) (found bool, err error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("read %s: %w", f.path, err)
	}
	if err := sonic.Unmarshal(data, v); err != nil {
		return true, fmt.Errorf("decode %s: %w", f.path, err)
	}
	return true, nil
}

// Save marshals v and atomically replaces the document: the bytes are
// written to a temporary file in the same directory, synced, and renamed
// over the target.
func (f *File) Save(v any) error {
	data, err := sonic.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", f.path, err)
	}

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create dir %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(f.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp for %s: %w", f.path, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write %s: %w", tmpName, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("sync %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close %s: %w", tmpName, err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("chmod %s: %w", tmpName, err)
	}
	if err := os.Rename(tmpName, f.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("rename %s: %w", f.path, err)
	}
	return nil
}
