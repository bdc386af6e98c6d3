package contracts

import "fmt"

const (
	GitHubOwner      = "replsv"
	GitHubRepository = "jellyfin-subsro"
	TargetABI        = "10.11.5.0"
)

// Plugin is the single record at index 0 of the repository manifest.
// Fields other than Versions are carried through rewrites untouched.
type Plugin struct {
	GUID        string         `json:"guid,omitempty"`
	Name        string         `json:"name,omitempty"`
	Description string         `json:"description,omitempty"`
	Overview    string         `json:"overview,omitempty"`
	Owner       string         `json:"owner,omitempty"`
	Category    string         `json:"category,omitempty"`
	ImageURL    string         `json:"imageUrl,omitempty"`
	Versions    []VersionEntry `json:"versions"`
}

type VersionEntry struct {
	Version   string `json:"version"`
	Changelog string `json:"changelog"`
	TargetABI string `json:"targetAbi"`
	SourceURL string `json:"sourceUrl"`
	Checksum  string `json:"checksum"`
	Timestamp string `json:"timestamp"`
}

// PutVersion replaces the first entry with a matching version in place,
// or prepends the entry so newest releases stay at the front.
func (this *Plugin) PutVersion(entry VersionEntry) {
	for i, existing := range this.Versions {
		if existing.Version == entry.Version {
			this.Versions[i] = entry
			return
		}
	}
	this.Versions = append([]VersionEntry{entry}, this.Versions...)
}

func ComposeSourceURL(tagName, version string) string {
	return fmt.Sprintf("https://github.com/%s/%s/releases/download/%s/%s",
		GitHubOwner, GitHubRepository, tagName, ArchiveFilename(version))
}

func ArchiveFilename(version string) string {
	return fmt.Sprintf("%s-%s.zip", GitHubRepository, version)
}
