package catalog

import (
	"slices"

	"github.com/dev1-sg/ecrdocs/pkg/client/ecr"
)

// SelectLatest picks the most recent image of a repository.
//
// Images carrying any tag other than "latest" are preferred; when none exist
// every image is a candidate. Among the candidates the one with the greatest
// push time wins and ties keep the first one. The reported tag is the first
// tag that is not "latest", else the first tag, else "<none>".
func SelectLatest(images []ecr.ImageDetail) LatestImage {
	if len(images) == 0 {
		return NoImage()
	}

	pool := make([]ecr.ImageDetail, 0, len(images))
	for _, image := range images {
		if slices.ContainsFunc(image.Tags, isNotLatest) {
			pool = append(pool, image)
		}
	}

	if len(pool) == 0 {
		pool = images
	}

	newest := pool[0]
	for _, image := range pool[1:] {
		if image.PushedAt.After(newest.PushedAt) {
			newest = image
		}
	}

	return LatestImage{Tag: pickTag(newest.Tags), SizeBytes: newest.SizeBytes}
}

func pickTag(tags []string) string {
	if idx := slices.IndexFunc(tags, isNotLatest); idx >= 0 {
		return tags[idx]
	}

	if len(tags) > 0 {
		return tags[0]
	}

	return NoneTag
}

func isNotLatest(tag string) bool {
	return tag != LatestTag
}
