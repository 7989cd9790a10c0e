package cmd

import (
	"fmt"

	"github.com/dev1-sg/ecrdocs/pkg/cli/ui/errorhandler"
	"github.com/dev1-sg/ecrdocs/pkg/di"
	"github.com/dev1-sg/ecrdocs/pkg/io/configmanager"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// LogLevelFlagName is the persistent flag selecting the debug log level.
const LogLevelFlagName = "log-level"

// NewRootCmd creates the root command with version info and subcommands.
func NewRootCmd(version, commit, date string) *cobra.Command {
	return NewRootCmdWithRuntime(di.NewRuntime(), version, commit, date)
}

// NewRootCmdWithRuntime creates the root command on top of runtimeContainer,
// which lets tests swap the registry and container runtime clients.
func NewRootCmdWithRuntime(runtimeContainer *di.Runtime, version, commit, date string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ecrdocs",
		Short: "Generate documentation for container images published to ECR Public",
		Long: `ecrdocs documents the container images of an ECR Public registry group.

It writes a catalog of every repository with its latest tag and size, and a
document per image describing its operating system, environment, installed
packages and local binaries.`,
		RunE:         handleRootRunE,
		SilenceUsage: true,
	}

	cmd.Version = fmt.Sprintf("%s (Built on %s from Git SHA %s)", version, date, commit)

	manager := configmanager.NewConfigManager()

	// Flag registration only fails for duplicate names.
	_ = manager.AddFlags(cmd.PersistentFlags())

	cmd.PersistentFlags().String(LogLevelFlagName, logrus.InfoLevel.String(), "debug log level")

	modules := []func(*cobra.Command) di.Module{
		configModule(manager),
		loggerModule,
	}

	cmd.AddCommand(NewCatalogCmd(runtimeContainer, modules...))
	cmd.AddCommand(NewImageCmd(runtimeContainer, modules...))
	cmd.AddCommand(NewImagesCmd(runtimeContainer, modules...))

	return cmd
}

// Execute runs the provided root command and handles errors.
func Execute(cmd *cobra.Command) error {
	executor := errorhandler.NewExecutor()

	err := executor.Execute(cmd)
	if err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

// --- internals ---

func handleRootRunE(cmd *cobra.Command, _ []string) error {
	// The err can safely be ignored, as it can never fail at runtime.
	_ = cmd.Help()

	return nil
}

func configModule(manager *configmanager.ConfigManager) func(*cobra.Command) di.Module {
	return func(*cobra.Command) di.Module {
		return func(injector di.Injector) error {
			cfg, err := manager.Load()
			if err != nil {
				return err
			}

			return di.ProvideConfig(cfg)(injector)
		}
	}
}

func loggerModule(cmd *cobra.Command) di.Module {
	return func(injector di.Injector) error {
		raw, err := cmd.Flags().GetString(LogLevelFlagName)
		if err != nil {
			return fmt.Errorf("read %s flag: %w", LogLevelFlagName, err)
		}

		level, err := logrus.ParseLevel(raw)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", LogLevelFlagName, err)
		}

		logger := logrus.New()
		logger.SetOutput(cmd.OutOrStdout())
		logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
		logger.SetLevel(level)

		return di.ProvideLogger(logger)(injector)
	}
}
