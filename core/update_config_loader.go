package core

import (
	"errors"
	"strings"

	"github.com/replsv/subsro-manifest/contracts"
)

const updateArgumentCount = 5

const Usage = "usage: subsro-manifest <version> <checksum> <timestamp> <changelog> <tag_name>"

type UpdateConfigLoader struct{}

func NewUpdateConfigLoader() *UpdateConfigLoader {
	return &UpdateConfigLoader{}
}

func (this *UpdateConfigLoader) LoadConfig(args []string) (contracts.UpdateConfig, error) {
	if len(args) != updateArgumentCount {
		return contracts.UpdateConfig{}, ErrWrongArgumentCount
	}

	config := contracts.UpdateConfig{
		Version:   args[0],
		Checksum:  args[1],
		Timestamp: args[2],
		Changelog: args[3],
		TagName:   args[4],
	}
	return config, this.validate(config)
}

// Checksum, timestamp, and changelog remain opaque; only the fields that
// form the entry key and the download URL must be populated.
func (this *UpdateConfigLoader) validate(config contracts.UpdateConfig) error {
	if strings.TrimSpace(config.Version) == "" {
		return blankVersionErr
	}
	if strings.TrimSpace(config.TagName) == "" {
		return blankTagNameErr
	}
	return nil
}

var (
	ErrWrongArgumentCount = errors.New("wrong number of arguments")
	blankVersionErr       = errors.New("version should not be blank")
	blankTagNameErr       = errors.New("tag name should not be blank")
)
