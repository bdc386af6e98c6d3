package main

import (
	"fmt"
	"io/ioutil"
	"log"
	"path/filepath"

	"github.com/mholt/archiver"

	"github.com/replsv/subsro-manifest/contracts"
	"github.com/replsv/subsro-manifest/core"
	"github.com/replsv/subsro-manifest/shell"
)

func packMain(args []string) {
	NewPackApp(parsePackConfig(args)).Run()
}

type PackApp struct {
	config contracts.PackConfig
}

func NewPackApp(config contracts.PackConfig) *PackApp {
	return &PackApp{config: config}
}

func (this *PackApp) Run() {
	target := filepath.Join(this.config.TargetDirectory, contracts.ArchiveFilename(this.config.Version))

	log.Println("Building the archive...")
	err := archiver.NewZip().Archive(this.listSources(), target)
	if err != nil {
		log.Fatal(err)
	}

	checksum, err := core.ArtifactChecksum(shell.NewDiskFileSystem(), target)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("%s  %s\n", checksum, filepath.Base(target))
}

func (this *PackApp) listSources() (sources []string) {
	entries, err := ioutil.ReadDir(this.config.SourceDirectory)
	if err != nil {
		log.Fatal(err)
	}
	for _, entry := range entries {
		sources = append(sources, filepath.Join(this.config.SourceDirectory, entry.Name()))
	}
	return sources
}
