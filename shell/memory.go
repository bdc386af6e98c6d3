package shell

import (
	"bytes"
	"io"
	"io/ioutil"
	"os"
)

// InMemoryFileSystem stands in for the disk during tests; the error fields
// inject failures for the corresponding operations.
type InMemoryFileSystem struct {
	fileSystem map[string][]byte

	ReadError  error
	WriteError error
}

func NewInMemoryFileSystem() *InMemoryFileSystem {
	return &InMemoryFileSystem{fileSystem: make(map[string][]byte)}
}

func (this *InMemoryFileSystem) ReadFile(path string) ([]byte, error) {
	if this.ReadError != nil {
		return nil, this.ReadError
	}
	contents, found := this.fileSystem[path]
	if !found {
		return nil, &os.PathError{Op: "open", Path: path, Err: os.ErrNotExist}
	}
	return contents, nil
}

func (this *InMemoryFileSystem) WriteFile(path string, content []byte) error {
	if this.WriteError != nil {
		return this.WriteError
	}
	this.fileSystem[path] = content
	return nil
}

func (this *InMemoryFileSystem) Open(path string) (io.ReadCloser, error) {
	contents, err := this.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ioutil.NopCloser(bytes.NewReader(contents)), nil
}
