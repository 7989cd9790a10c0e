package cmd

import (
	"github.com/dev1-sg/ecrdocs/pkg/di"
	"github.com/dev1-sg/ecrdocs/pkg/fsutil"
	"github.com/dev1-sg/ecrdocs/pkg/utils/notify"
	"github.com/spf13/cobra"
)

const imagesLongDesc = `Document every image found in the source path.

Each directory below the source path names one image of the registry group.
An image that cannot be documented is reported and skipped.

Examples:
  # Document every image under ./src
  ecrdocs images

  # Use another source tree and skip the registry login
  ecrdocs images --src ./images --anonymous`

// NewImagesCmd creates the images command.
func NewImagesCmd(runtimeContainer *di.Runtime, modules ...func(*cobra.Command) di.Module) *cobra.Command {
	return &cobra.Command{
		Use:          "images",
		Short:        "Generate the documents of every image",
		Long:         imagesLongDesc,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE:         di.RunEWithRuntime(runtimeContainer, HandleImagesRunE, modules...),
	}
}

// HandleImagesRunE documents every image directory below the source path.
// Failures of single images are reported and do not fail the command.
func HandleImagesRunE(cmd *cobra.Command, _ []string, injector di.Injector) error {
	cfg, err := di.ResolveConfig(injector)
	if err != nil {
		return err
	}

	names, err := fsutil.ListSubdirectories(cfg.SrcPath)
	if err != nil {
		return err
	}

	out := notify.NewStageWriter(cmd.OutOrStdout())

	notify.Titlef(out, "🐳", "Documenting %d images from %s", len(names), cfg.SrcPath)

	if len(names) == 0 {
		notify.Warningf(out, "no image directories found in %s", cfg.SrcPath)

		return nil
	}

	documenter, err := newImageDocumenter(cmd.Context(), injector, out)
	if err != nil {
		return err
	}

	failed := 0

	for _, name := range names {
		err = documenter.Document(cmd.Context(), name)
		if err != nil {
			notify.Errorf(out, "%v", err)

			failed++
		}
	}

	notify.Successf(out, "%d of %d images documented", len(names)-failed, len(names))

	return nil
}
