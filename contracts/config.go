package contracts

type UpdateConfig struct {
	Version   string
	Checksum  string
	Timestamp string
	Changelog string
	TagName   string
}

func (this UpdateConfig) VersionEntry() VersionEntry {
	return VersionEntry{
		Version:   this.Version,
		Changelog: this.Changelog,
		TargetABI: TargetABI,
		SourceURL: ComposeSourceURL(this.TagName, this.Version),
		Checksum:  this.Checksum,
		Timestamp: this.Timestamp,
	}
}

type PackConfig struct {
	SourceDirectory string
	Version         string
	TargetDirectory string
}
