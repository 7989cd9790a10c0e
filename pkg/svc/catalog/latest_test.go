package catalog_test

import (
	"testing"
	"time"

	"github.com/dev1-sg/ecrdocs/pkg/client/ecr"
	"github.com/dev1-sg/ecrdocs/pkg/svc/catalog"
	"github.com/stretchr/testify/assert"
)

var (
	day1 = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	day2 = day1.Add(24 * time.Hour)
	day3 = day2.Add(24 * time.Hour)
)

//nolint:funlen // Table-driven test covering every selection rule.
func TestSelectLatest(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		images []ecr.ImageDetail
		want   catalog.LatestImage
	}{
		{
			name:   "no images",
			images: nil,
			want:   catalog.LatestImage{Tag: "<none>"},
		},
		{
			name: "newest tagged image wins",
			images: []ecr.ImageDetail{
				{Tags: []string{"v1"}, PushedAt: day1, SizeBytes: 1},
				{Tags: []string{"v2"}, PushedAt: day2, SizeBytes: 2},
			},
			want: catalog.LatestImage{Tag: "v2", SizeBytes: 2},
		},
		{
			name: "purely latest image excluded when a versioned image exists",
			images: []ecr.ImageDetail{
				{Tags: []string{"v1"}, PushedAt: day1, SizeBytes: 1},
				{Tags: []string{"latest"}, PushedAt: day3, SizeBytes: 3},
			},
			want: catalog.LatestImage{Tag: "v1", SizeBytes: 1},
		},
		{
			name: "only latest",
			images: []ecr.ImageDetail{
				{Tags: []string{"latest"}, PushedAt: day1, SizeBytes: 7},
			},
			want: catalog.LatestImage{Tag: "latest", SizeBytes: 7},
		},
		{
			name: "non latest tag preferred on the same image",
			images: []ecr.ImageDetail{
				{Tags: []string{"latest", "3.20"}, PushedAt: day1, SizeBytes: 4},
			},
			want: catalog.LatestImage{Tag: "3.20", SizeBytes: 4},
		},
		{
			name: "untagged images only",
			images: []ecr.ImageDetail{
				{PushedAt: day1, SizeBytes: 5},
			},
			want: catalog.LatestImage{Tag: "<none>", SizeBytes: 5},
		},
		{
			name: "missing push time counts as oldest",
			images: []ecr.ImageDetail{
				{Tags: []string{"v1"}, SizeBytes: 1},
				{Tags: []string{"v0"}, PushedAt: day1, SizeBytes: 2},
			},
			want: catalog.LatestImage{Tag: "v0", SizeBytes: 2},
		},
		{
			name: "ties keep the first image",
			images: []ecr.ImageDetail{
				{Tags: []string{"a"}, PushedAt: day2, SizeBytes: 1},
				{Tags: []string{"b"}, PushedAt: day2, SizeBytes: 2},
			},
			want: catalog.LatestImage{Tag: "a", SizeBytes: 1},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, testCase.want, catalog.SelectLatest(testCase.images))
		})
	}
}
