package cmd

import (
	"time"

	"github.com/dev1-sg/ecrdocs/pkg/di"
	"github.com/dev1-sg/ecrdocs/pkg/io/render"
	"github.com/dev1-sg/ecrdocs/pkg/svc/catalog"
	"github.com/dev1-sg/ecrdocs/pkg/utils/notify"
	"github.com/spf13/cobra"
)

const catalogLongDesc = `Write a catalog of every repository in the registry group.

Each row shows the repository, its group, the tag of the most recently pushed
image and that image's size. Repositories that cannot be read are listed
with "<none>" and a size of 0.

Examples:
  # Write ./readme.md for public.ecr.aws/dev1-sg/base/*
  ecrdocs catalog

  # Write a notebook for another group
  ecrdocs catalog --repository-group tools --output catalog.ipynb`

// NewCatalogCmd creates the catalog command.
func NewCatalogCmd(runtimeContainer *di.Runtime, modules ...func(*cobra.Command) di.Module) *cobra.Command {
	return &cobra.Command{
		Use:          "catalog",
		Short:        "Generate the repository catalog",
		Long:         catalogLongDesc,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE:         di.RunEWithRuntime(runtimeContainer, HandleCatalogRunE, modules...),
	}
}

// HandleCatalogRunE builds the catalog records and writes the catalog document.
func HandleCatalogRunE(cmd *cobra.Command, _ []string, injector di.Injector) error {
	cfg, err := di.ResolveConfig(injector)
	if err != nil {
		return err
	}

	logger, err := di.ResolveLogger(injector)
	if err != nil {
		return err
	}

	registry, err := di.ResolveRegistryClient(injector)
	if err != nil {
		return err
	}

	out := notify.NewStageWriter(cmd.OutOrStdout())

	notify.Titlef(out, "📚", "Cataloging %s", cfg.URI())

	service := catalog.NewService(registry, catalog.Options{
		Prefix:      cfg.RepositoryPrefix(),
		RegistryURI: cfg.URI(),
	}, out, logger)

	records, err := service.Build(cmd.Context())
	if err != nil {
		return err
	}

	notify.Activityf(out, "rendering %d repositories", len(records))

	markdown, err := render.RenderCatalog(cfg.TemplatePath, render.CatalogData{
		Items:     records,
		UpdatedAt: render.FormatTimestamp(time.Now()),
		Alias:     cfg.Alias,
		URI:       cfg.URI(),
	})
	if err != nil {
		return err
	}

	err = render.WriteDocument(cfg.OutputPath, cfg.Format, markdown)
	if err != nil {
		return err
	}

	notify.Generatef(out, "%s", cfg.OutputPath)
	notify.Successf(out, "catalog written")

	return nil
}
