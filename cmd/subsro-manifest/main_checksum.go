package main

import (
	"fmt"
	"log"
	"os"

	"github.com/replsv/subsro-manifest/core"
	"github.com/replsv/subsro-manifest/shell"
)

func checksumMain(args []string) {
	if len(args) != 1 {
		fmt.Println("usage: subsro-manifest checksum <file>")
		os.Exit(1)
	}

	checksum, err := core.ArtifactChecksum(shell.NewDiskFileSystem(), args[0])
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(checksum)
}
