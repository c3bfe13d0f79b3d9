//go:build !unix

package mmap

import (
	"fmt"
	"io"
	"os"
)

type File struct {
	Data     []byte
	File     *os.File
	FileSize int
}

// Open reads the whole file on platforms without mmap support.
func Open(filePath string) (*File, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file %q: %w", filePath, err)
	}

	data, err := io.ReadAll(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	if len(data) == 0 {
		f.Close()
		return nil, fmt.Errorf("file %q is empty", filePath)
	}

	return &File{
		Data:     data,
		File:     f,
		FileSize: len(data),
	}, nil
}

func (mf *File) Close() error {
	mf.Data = nil
	if mf.File != nil {
		err := mf.File.Close()
		mf.File = nil
		return err
	}
	return nil
}
