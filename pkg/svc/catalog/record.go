package catalog

import (
	"fmt"
	"strings"

	"github.com/c2h5oh/datasize"
)

// LatestImage is the resolved most recent image of a repository.
type LatestImage struct {
	Tag       string
	SizeBytes int64
}

// NoImage is the LatestImage reported when nothing could be resolved.
func NoImage() LatestImage {
	return LatestImage{Tag: NoneTag}
}

// SizeMB returns the image size in mebibytes.
func (l LatestImage) SizeMB() float64 {
	if l.SizeBytes <= 0 {
		return 0
	}

	return datasize.ByteSize(l.SizeBytes).MBytes()
}

// FormattedSize returns SizeMB with two decimals.
func (l LatestImage) FormattedSize() string {
	return fmt.Sprintf("%.2f", l.SizeMB())
}

// RepositoryRecord is one row of the catalog.
type RepositoryRecord struct {
	// Number is the 1-based position after sorting by name.
	Number int
	Name   string
	Group  string
	URI    string
	// LatestTag is the tag of the most recent image, or "<none>".
	LatestTag string
	// ImageSizeMB is the size of the most recent image with two decimals.
	ImageSizeMB    string
	ImageSizeBytes int64
}

// Group returns the part of a repository name before the first "/",
// or "-" when the name has none.
func Group(repository string) string {
	group, _, found := strings.Cut(repository, "/")
	if !found {
		return UngroupedName
	}

	return group
}

// NewRecord builds the catalog row of a repository.
func NewRecord(number int, repository, registryURI string, latest LatestImage) RepositoryRecord {
	return RepositoryRecord{
		Number:         number,
		Name:           repository,
		Group:          Group(repository),
		URI:            registryURI + "/" + repository,
		LatestTag:      latest.Tag,
		ImageSizeMB:    latest.FormattedSize(),
		ImageSizeBytes: latest.SizeBytes,
	}
}
