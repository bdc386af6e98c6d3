package shell

import (
	"io"
	"io/ioutil"
	"os"
	"path/filepath"
)

type DiskFileSystem struct{}

func NewDiskFileSystem() *DiskFileSystem {
	return &DiskFileSystem{}
}

func (this *DiskFileSystem) ReadFile(path string) ([]byte, error) {
	return ioutil.ReadFile(path)
}

// WriteFile stages the content in a temp file beside the destination and
// renames it into place so a crash mid-write never leaves a torn manifest.
func (this *DiskFileSystem) WriteFile(path string, content []byte) error {
	temp, err := ioutil.TempFile(filepath.Dir(path), filepath.Base(path)+".")
	if err != nil {
		return err
	}

	_, err = temp.Write(content)
	if closeErr := temp.Close(); err == nil {
		err = closeErr
	}
	if err == nil {
		err = os.Chmod(temp.Name(), 0644)
	}
	if err != nil {
		_ = os.Remove(temp.Name())
		return err
	}

	return os.Rename(temp.Name(), path)
}

func (this *DiskFileSystem) Open(path string) (io.ReadCloser, error) {
	return os.Open(path)
}
