package database

import (
	"context"
	"os"
	"path/filepath"
)

// FileBackend keeps the document in a local JSON file.
type FileBackend struct {
	path string
}

func NewFileBackend(path string) *FileBackend {
	return &FileBackend{path: path}
}

func (f *FileBackend) Read(_ context.Context) ([]byte, error) {
	fileBytes, err := os.ReadFile(f.path)
	if os.IsNotExist(err) {
		return nil, ErrNotExist
	}
	return fileBytes, err
}

// Write replaces the file through a temporary sibling and a rename, so a
// crash mid-write leaves the previous document in place.
func (f *FileBackend) Write(_ context.Context, document []byte) error {
	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(f.path)+".*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(document); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Chmod(0644); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), f.path)
}

func (f *FileBackend) Close() error {
	return nil
}

func (f *FileBackend) String() string {
	return "file " + f.path
}
