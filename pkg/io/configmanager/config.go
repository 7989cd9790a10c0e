package configmanager

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"
)

// Public registry host used for every image reference.
const PublicRegistryHost = "public.ecr.aws"

// Format values accepted by the format setting.
const (
	FormatAuto     = "auto"
	FormatMarkdown = "markdown"
	FormatNotebook = "notebook"
)

// Default values.
const (
	DefaultAlias           = "dev1-sg"
	DefaultRegion          = "us-east-1"
	DefaultRepositoryGroup = "base"
	DefaultOutputPath      = "./readme.md"
	DefaultSrcPath         = "./src"
)

// Validation errors.
var (
	// ErrAliasRequired is returned when the registry alias is empty.
	ErrAliasRequired = errors.New("registry alias is required")
	// ErrRegionRequired is returned when the region is empty.
	ErrRegionRequired = errors.New("region is required")
	// ErrInvalidFormat is returned for an unknown output format.
	ErrInvalidFormat = errors.New("invalid output format")
	// ErrNegativeTimeout is returned for a negative command timeout.
	ErrNegativeTimeout = errors.New("command timeout must not be negative")
)

// Config is the resolved configuration shared by every command.
type Config struct {
	// Alias is the ECR Public registry alias (public.ecr.aws/<alias>).
	Alias string `mapstructure:"alias"`
	// Region is the ECR Public API region.
	Region string `mapstructure:"region"`
	// RepositoryGroup is the repository name prefix, without the trailing slash.
	RepositoryGroup string `mapstructure:"repository-group"`
	// TemplatePath overrides the embedded template when set.
	TemplatePath string `mapstructure:"template"`
	// OutputPath is where the catalog document is written.
	OutputPath string `mapstructure:"output"`
	// SrcPath holds one directory per image.
	SrcPath string `mapstructure:"src"`
	// Format is auto, markdown or notebook.
	Format string `mapstructure:"format"`
	// CommandTimeout bounds each diagnostic container run. Zero disables it.
	CommandTimeout time.Duration `mapstructure:"command-timeout"`
	// Anonymous skips the registry login before pulling.
	Anonymous bool `mapstructure:"anonymous"`
}

// URI returns the registry namespace, e.g. public.ecr.aws/dev1-sg.
func (c Config) URI() string {
	return PublicRegistryHost + "/" + c.Alias
}

// Endpoint returns the ECR Public API endpoint for the configured region.
func (c Config) Endpoint() string {
	return fmt.Sprintf("https://ecr-public.%s.amazonaws.com", c.Region)
}

// RepositoryPrefix returns the repository name prefix used to filter listings.
func (c Config) RepositoryPrefix() string {
	if c.RepositoryGroup == "" {
		return ""
	}

	return strings.TrimSuffix(c.RepositoryGroup, "/") + "/"
}

// ImageReference returns the fully-qualified reference of an image in the group.
func (c Config) ImageReference(imageName, tag string) string {
	ref := c.URI() + "/" + c.RepositoryPrefix() + imageName
	if tag != "" {
		ref += ":" + tag
	}

	return ref
}

// Validate checks the configuration for values that cannot work.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Alias) == "" {
		return ErrAliasRequired
	}

	if strings.TrimSpace(c.Region) == "" {
		return ErrRegionRequired
	}

	if !slices.Contains([]string{FormatAuto, FormatMarkdown, FormatNotebook}, c.Format) {
		return fmt.Errorf("%w: %q (want %s, %s or %s)",
			ErrInvalidFormat, c.Format, FormatAuto, FormatMarkdown, FormatNotebook)
	}

	if c.CommandTimeout < 0 {
		return ErrNegativeTimeout
	}

	return nil
}
