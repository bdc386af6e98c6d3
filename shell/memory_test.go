package shell

import (
	"errors"
	"io/ioutil"
	"os"
	"testing"

	"github.com/smartystreets/assertions/should"
	"github.com/smartystreets/gunit"
)

func TestMemoryFixture(t *testing.T) {
	gunit.Run(new(MemoryFixture), t)
}

type MemoryFixture struct {
	*gunit.Fixture
	fileSystem *InMemoryFileSystem
}

func (this *MemoryFixture) Setup() {
	this.fileSystem = NewInMemoryFileSystem()
}

func (this *MemoryFixture) TestWriteFileReadFile() {
	err := this.fileSystem.WriteFile("/file.txt", []byte("Hello World"))
	this.So(err, should.BeNil)

	raw, err := this.fileSystem.ReadFile("/file.txt")
	this.So(err, should.BeNil)
	this.So(raw, should.Resemble, []byte("Hello World"))
}

func (this *MemoryFixture) TestReadFileNonExistingFile() {
	raw, err := this.fileSystem.ReadFile("/file.txt")

	this.So(raw, should.BeNil)
	this.So(os.IsNotExist(err), should.BeTrue)
}

func (this *MemoryFixture) TestOpenWrittenFile() {
	_ = this.fileSystem.WriteFile("/file.txt", []byte("Hello World"))

	reader, err := this.fileSystem.Open("/file.txt")
	this.So(err, should.BeNil)

	raw, _ := ioutil.ReadAll(reader)
	this.So(raw, should.Resemble, []byte("Hello World"))
	this.So(reader.Close(), should.BeNil)
}

func (this *MemoryFixture) TestOpenNonExistingFile() {
	reader, err := this.fileSystem.Open("/file.txt")

	this.So(reader, should.BeNil)
	this.So(os.IsNotExist(err), should.BeTrue)
}

func (this *MemoryFixture) TestInjectedReadError() {
	this.fileSystem.ReadError = errors.New("read failure")
	_ = this.fileSystem.WriteFile("/file.txt", []byte("Hello World"))

	_, err := this.fileSystem.ReadFile("/file.txt")

	this.So(err, should.Equal, this.fileSystem.ReadError)
}

func (this *MemoryFixture) TestInjectedWriteError() {
	this.fileSystem.WriteError = errors.New("write failure")

	err := this.fileSystem.WriteFile("/file.txt", []byte("Hello World"))

	this.So(err, should.Equal, this.fileSystem.WriteError)
	_, err = this.fileSystem.ReadFile("/file.txt")
	this.So(os.IsNotExist(err), should.BeTrue)
}
