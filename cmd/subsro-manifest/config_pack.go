package main

import (
	"flag"
	"os"

	"github.com/replsv/subsro-manifest/contracts"
)

func parsePackConfig(args []string) (config contracts.PackConfig) {
	flags := flag.NewFlagSet("subsro-manifest pack", flag.ExitOnError)
	flags.StringVar(&config.SourceDirectory,
		"source",
		"",
		"Directory containing the built plugin files.",
	)
	flags.StringVar(&config.Version,
		"version",
		"",
		"Release version, used to name the archive.",
	)
	flags.StringVar(&config.TargetDirectory,
		"target",
		".",
		"Directory that receives the archive.",
	)
	_ = flags.Parse(args)

	if config.SourceDirectory == "" || config.Version == "" {
		flags.Usage()
		os.Exit(1)
	}

	return config
}
