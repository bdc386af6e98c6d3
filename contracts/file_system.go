package contracts

import "io"

// FUTURE: make each file system path return any underlying error.

type FileReader interface {
	ReadFile(path string) ([]byte, error)
}

type FileWriter interface {
	WriteFile(path string, content []byte) error
}

type FileOpener interface {
	Open(path string) (io.ReadCloser, error)
}

type ManifestStorage interface {
	FileReader
	FileWriter
}
