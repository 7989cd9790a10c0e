package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/dev1-sg/ecrdocs/pkg/client/ecr"
	"github.com/dev1-sg/ecrdocs/pkg/utils/notify"
	"github.com/sirupsen/logrus"
)

// Registry is the registry surface the catalog reads from.
type Registry interface {
	ListRepositories(ctx context.Context, prefix string) ([]string, error)
	DescribeImages(ctx context.Context, repository string) ([]ecr.ImageDetail, error)
}

// Options configures a Service.
type Options struct {
	// Prefix restricts the catalog to repositories starting with it.
	Prefix string
	// RegistryURI is prepended to repository names, e.g. "public.ecr.aws/dev1-sg".
	RegistryURI string
}

// Service builds repository catalogs.
type Service struct {
	registry Registry
	opts     Options
	out      io.Writer
	log      logrus.FieldLogger
}

// NewService creates a catalog service. Warnings and errors about single
// repositories are written to out.
func NewService(registry Registry, opts Options, out io.Writer, log logrus.FieldLogger) *Service {
	return &Service{registry: registry, opts: opts, out: out, log: log}
}

// ListRepositories returns every repository starting with prefix.
func (s *Service) ListRepositories(ctx context.Context, prefix string) ([]string, error) {
	s.log.WithField("prefix", prefix).Debug("listing repositories")

	names, err := s.registry.ListRepositories(ctx, prefix)
	if err != nil {
		return nil, fmt.Errorf("failed to list repositories: %w", err)
	}

	for _, name := range names {
		s.log.WithField("repository", name).Debug("found repository")
	}

	return names, nil
}

// LatestImage resolves the most recent image of a repository. It never fails:
// an empty or missing repository is reported as a warning, any other error
// as an error message, and both yield NoImage.
func (s *Service) LatestImage(ctx context.Context, repository string) LatestImage {
	images, err := s.registry.DescribeImages(ctx, repository)

	switch {
	case errors.Is(err, ecr.ErrRepositoryNotFound):
		notify.Warningf(s.out, "repository not found: %s", repository)

		return NoImage()
	case err != nil:
		notify.Errorf(s.out, "failed to get image info for %s: %v", repository, err)

		return NoImage()
	case len(images) == 0:
		notify.Warningf(s.out, "no images found in repository %s", repository)

		return NoImage()
	}

	latest := SelectLatest(images)

	s.log.WithFields(logrus.Fields{
		"repository": repository,
		"tag":        latest.Tag,
		"size_mb":    latest.FormattedSize(),
	}).Debug("resolved latest image")

	return latest
}

// Build lists the repositories under the configured prefix, sorted by name,
// and resolves the latest image of each one.
func (s *Service) Build(ctx context.Context) ([]RepositoryRecord, error) {
	names, err := s.ListRepositories(ctx, s.opts.Prefix)
	if err != nil {
		return nil, err
	}

	sort.Strings(names)

	records := make([]RepositoryRecord, 0, len(names))
	for i, name := range names {
		records = append(records, NewRecord(i+1, name, s.opts.RegistryURI, s.LatestImage(ctx, name)))
	}

	return records, nil
}
