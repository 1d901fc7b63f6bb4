package vfs

import (
	"os"
	"path/filepath"
)

// Reader reads whole files as text.
type Reader interface {
	ReadFile(path string) (string, error)
}

type LocalOSReader struct {
}

func (r LocalOSReader) ReadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	return string(data), nil
}

var LocalOS = LocalOSReader{}

// DiskReader resolves relative paths against baseDir. Absolute paths are
// read as is.
type DiskReader struct {
	baseDir string
}

func NewDisk(baseDir string) *DiskReader {
	return &DiskReader{
		baseDir: baseDir,
	}
}

func (system *DiskReader) ReadFile(path string) (string, error) {
	if !filepath.IsAbs(path) {
		path = filepath.Join(system.baseDir, path)
	}

	return LocalOS.ReadFile(path)
}
