package cmd

import (
	"path/filepath"

	"github.com/dev1-sg/ecrdocs/pkg/di"
	"github.com/dev1-sg/ecrdocs/pkg/fsutil"
	"github.com/dev1-sg/ecrdocs/pkg/utils/notify"
	"github.com/spf13/cobra"
)

const imageLongDesc = `Document one image of the registry group.

The image <name> must have a directory under the source path. Its latest tag
is pulled and inspected with short-lived containers, and the result is
written to <src>/<name>/readme.md.

Examples:
  # Document public.ecr.aws/dev1-sg/base/alpine:latest
  ecrdocs image alpine`

// NewImageCmd creates the image command.
func NewImageCmd(runtimeContainer *di.Runtime, modules ...func(*cobra.Command) di.Module) *cobra.Command {
	return &cobra.Command{
		Use:          "image <name>",
		Short:        "Generate the document of one image",
		Long:         imageLongDesc,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE:         di.RunEWithRuntime(runtimeContainer, HandleImageRunE, modules...),
	}
}

// HandleImageRunE documents the image named by the single argument. Any
// failure aborts the command.
func HandleImageRunE(cmd *cobra.Command, args []string, injector di.Injector) error {
	cfg, err := di.ResolveConfig(injector)
	if err != nil {
		return err
	}

	name := args[0]

	err = fsutil.IsDirectory(filepath.Join(cfg.SrcPath, name))
	if err != nil {
		return err
	}

	out := notify.NewStageWriter(cmd.OutOrStdout())

	notify.Titlef(out, "🐳", "Documenting %s", name)

	documenter, err := newImageDocumenter(cmd.Context(), injector, out)
	if err != nil {
		return err
	}

	err = documenter.Document(cmd.Context(), name)
	if err != nil {
		return err
	}

	notify.Successf(out, "image documented")

	return nil
}
