package cmd

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/dev1-sg/ecrdocs/pkg/client/docker"
	"github.com/dev1-sg/ecrdocs/pkg/di"
	"github.com/dev1-sg/ecrdocs/pkg/io/configmanager"
	"github.com/dev1-sg/ecrdocs/pkg/io/render"
	"github.com/dev1-sg/ecrdocs/pkg/svc/catalog"
	"github.com/dev1-sg/ecrdocs/pkg/svc/introspect"
	"github.com/dev1-sg/ecrdocs/pkg/utils/notify"
)

// ImageReadmeName is the document written into each image directory.
const ImageReadmeName = "readme.md"

// imageDocumenter introspects images of the configured group and writes their
// documents into the source tree. It logs in at most once per command.
type imageDocumenter struct {
	cfg          *configmanager.Config
	introspector *introspect.Introspector
	auth         introspect.Auth
	out          io.Writer
}

func newImageDocumenter(ctx context.Context, injector di.Injector, out io.Writer) (*imageDocumenter, error) {
	cfg, err := di.ResolveConfig(injector)
	if err != nil {
		return nil, err
	}

	logger, err := di.ResolveLogger(injector)
	if err != nil {
		return nil, err
	}

	dockerClient, err := di.ResolveDockerClient(injector)
	if err != nil {
		return nil, err
	}

	var auth introspect.Auth

	if cfg.Anonymous {
		logger.Debug("anonymous mode, skipping registry login")
	} else {
		registry, err := di.ResolveRegistryClient(injector)
		if err != nil {
			return nil, err
		}

		notify.Activityf(out, "logging in to %s", configmanager.PublicRegistryHost)

		auth, err = introspect.NewAuthenticator(registry, dockerClient, configmanager.PublicRegistryHost).Login(ctx)
		if err != nil {
			return nil, err
		}
	}

	platforms, err := di.ResolvePlatformLister(injector)
	if err != nil {
		return nil, err
	}

	introspector := introspect.NewIntrospector(
		docker.NewImageManager(dockerClient, logger),
		docker.NewContainerRunner(dockerClient, cfg.CommandTimeout, logger),
		platforms,
		out,
		logger,
	)

	return &imageDocumenter{cfg: cfg, introspector: introspector, auth: auth, out: out}, nil
}

// Document introspects the latest image of name and writes
// <src>/<name>/readme.md.
func (d *imageDocumenter) Document(ctx context.Context, name string) error {
	ref := d.cfg.ImageReference(name, catalog.LatestTag)

	notify.Activityf(d.out, "introspecting %s", ref)

	facts, err := d.introspector.Introspect(ctx, ref, d.auth)
	if err != nil {
		return fmt.Errorf("failed to introspect %s: %w", ref, err)
	}

	markdown, err := render.RenderImage(d.cfg.TemplatePath, render.ImageData{
		Context:   facts,
		UpdatedAt: render.FormatTimestamp(time.Now()),
	})
	if err != nil {
		return err
	}

	output := filepath.Join(d.cfg.SrcPath, name, ImageReadmeName)

	err = render.WriteDocument(output, configmanager.FormatMarkdown, markdown)
	if err != nil {
		return err
	}

	notify.Generatef(d.out, "%s", output)

	return nil
}
