package main

import (
	"fmt"
	"log"
	"os"

	"github.com/replsv/subsro-manifest/core"
	"github.com/replsv/subsro-manifest/shell"
)

const manifestPath = "manifest.json"

func updateMain(args []string) {
	config, err := core.NewUpdateConfigLoader().LoadConfig(args)
	if err == core.ErrWrongArgumentCount {
		fmt.Println(core.Usage)
		os.Exit(1)
	}
	if err != nil {
		log.Fatal(err)
	}

	updater := core.NewManifestUpdater(manifestPath, shell.NewDiskFileSystem(), os.Stdout)
	err = updater.Update(config)
	if err != nil {
		log.Fatal(err)
	}
}
