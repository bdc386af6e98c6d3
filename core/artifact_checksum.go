package core

import (
	"crypto/md5"
	"encoding/hex"
	"io"
	"io/ioutil"

	"github.com/replsv/subsro-manifest/contracts"
)

// ArtifactChecksum computes the MD5 hex digest expected by the manifest's
// checksum field for the artifact at path.
func ArtifactChecksum(storage contracts.FileOpener, path string) (string, error) {
	file, err := storage.Open(path)
	if err != nil {
		return "", err
	}
	defer func() { _ = file.Close() }()

	hasher := md5.New()
	_, err = io.Copy(ioutil.Discard, NewHashReader(file, hasher))
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(hasher.Sum(nil)), nil
}
