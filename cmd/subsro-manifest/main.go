package main

import (
	"fmt"
	"log"
	"os"
)

func main() {
	log.SetFlags(log.Ltime | log.Lshortfile)

	if isSubCommand("pack") {
		packMain(os.Args[2:])
	} else if isSubCommand("checksum") {
		checksumMain(os.Args[2:])
	} else if isSubCommand("version") {
		versionMain()
	} else if isSubCommand("update") {
		log.Fatal("there is no need to supply 'update' as a sub-command")
	} else {
		updateMain(os.Args[1:])
	}
}

func isSubCommand(name string) bool {
	return len(os.Args) > 1 && os.Args[1] == name
}

func versionMain() {
	fmt.Printf("subsro-manifest [%s]\n", ldflagsSoftwareVersion)
}

var ldflagsSoftwareVersion = "debug"
