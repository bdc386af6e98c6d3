package core

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/replsv/subsro-manifest/contracts"
)

type ManifestUpdater struct {
	path    string
	storage contracts.ManifestStorage
	stdout  io.Writer
}

func NewManifestUpdater(path string, storage contracts.ManifestStorage, stdout io.Writer) *ManifestUpdater {
	return &ManifestUpdater{path: path, storage: storage, stdout: stdout}
}

func (this *ManifestUpdater) Update(config contracts.UpdateConfig) error {
	manifest, err := this.load()
	if err != nil {
		return err
	}

	manifest[0].PutVersion(config.VersionEntry())

	err = this.save(manifest)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(this.stdout, "Manifest updated for version %s\n", config.Version)
	return nil
}

func (this *ManifestUpdater) load() ([]contracts.Plugin, error) {
	raw, err := this.storage.ReadFile(this.path)
	if err != nil {
		return nil, err
	}

	var manifest []contracts.Plugin
	err = json.Unmarshal(raw, &manifest)
	if err != nil {
		return nil, err
	}

	if len(manifest) == 0 {
		return nil, errEmptyManifest
	}
	if manifest[0].Versions == nil {
		return nil, errNoVersionListing
	}
	return manifest, nil
}

func (this *ManifestUpdater) save(manifest []contracts.Plugin) error {
	buffer := new(bytes.Buffer)
	encoder := json.NewEncoder(buffer)
	encoder.SetIndent("", "    ")
	err := encoder.Encode(manifest)
	if err != nil {
		return err
	}
	return this.storage.WriteFile(this.path, buffer.Bytes())
}

var (
	errEmptyManifest    = errors.New("manifest contains no plugin record")
	errNoVersionListing = errors.New("plugin record is missing the versions listing")
)
