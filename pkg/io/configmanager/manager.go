package configmanager

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/dev1-sg/ecrdocs/pkg/fsutil"
	"github.com/dev1-sg/ecrdocs/pkg/utils/envvar"
	mapstructure "github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// ConfigName is the base name of the optional configuration file.
const ConfigName = "ecrdocs"

// setting describes one configuration key with its environment variable,
// default value and flag usage.
type setting struct {
	key   string
	env   string
	value any
	usage string
}

//nolint:gochecknoglobals // static table of settings
var settings = []setting{
	{"alias", "AWS_ECR_PUBLIC_ALIAS", DefaultAlias, "ECR Public registry alias"},
	{"region", "AWS_ECR_PUBLIC_REGION", DefaultRegion, "ECR Public API region"},
	{"repository-group", "AWS_ECR_PUBLIC_REPOSITORY_GROUP", DefaultRepositoryGroup, "repository name prefix"},
	{"template", "README_TEMPLATE_PATH", "", "template file (defaults to the embedded template)"},
	{"output", "README_OUTPUT_PATH", DefaultOutputPath, "catalog output file"},
	{"src", "SRC_PATH", DefaultSrcPath, "directory holding one folder per image"},
	{"format", "README_FORMAT", FormatAuto, "output format: auto, markdown or notebook"},
	{"command-timeout", "COMMAND_TIMEOUT", "0s", "timeout for each diagnostic container run (0 disables)"},
	{"anonymous", "ECRDOCS_ANONYMOUS", false, "pull images without logging in to the registry"},
}

// ConfigManager resolves a Config from defaults, files, environment and flags.
type ConfigManager struct {
	Viper *viper.Viper
	// DotEnvFiles are loaded before resolving. Missing files are ignored.
	DotEnvFiles []string
}

// NewConfigManager creates a manager with defaults and environment bindings.
func NewConfigManager() *ConfigManager {
	return &ConfigManager{
		Viper:       InitializeViper(),
		DotEnvFiles: []string{".env"},
	}
}

// InitializeViper creates a viper instance with defaults, the optional
// ecrdocs.{yaml,json,toml} lookup and explicit environment variable names.
func InitializeViper() *viper.Viper {
	viperInstance := viper.New()
	viperInstance.SetConfigName(ConfigName)
	viperInstance.AddConfigPath(".")

	for _, s := range settings {
		viperInstance.SetDefault(s.key, s.value)
		// BindEnv only fails when called without a key.
		_ = viperInstance.BindEnv(s.key, s.env)
	}

	return viperInstance
}

// AddFlags registers one flag per setting and binds it to viper.
func (m *ConfigManager) AddFlags(flags *pflag.FlagSet) error {
	for _, s := range settings {
		switch value := s.value.(type) {
		case bool:
			flags.Bool(s.key, value, s.usage+" [$"+s.env+"]")
		case string:
			flags.String(s.key, value, s.usage+" [$"+s.env+"]")
		}

		err := m.Viper.BindPFlag(s.key, flags.Lookup(s.key))
		if err != nil {
			return fmt.Errorf("bind flag %s: %w", s.key, err)
		}
	}

	return nil
}

// Load resolves and validates the configuration.
func (m *ConfigManager) Load() (*Config, error) {
	err := m.loadDotEnv()
	if err != nil {
		return nil, err
	}

	err = m.readConfig()
	if err != nil {
		return nil, err
	}

	var cfg Config

	err = m.Viper.Unmarshal(&cfg, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
	)))
	if err != nil {
		return nil, fmt.Errorf("decode configuration: %w", err)
	}

	err = expandPaths(&cfg)
	if err != nil {
		return nil, err
	}

	err = cfg.Validate()
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// expandPaths resolves ${VAR} placeholders and a leading ~/ in path settings.
func expandPaths(cfg *Config) error {
	for _, path := range []*string{&cfg.TemplatePath, &cfg.OutputPath, &cfg.SrcPath} {
		expanded := envvar.Expand(*path)

		if strings.HasPrefix(expanded, "~/") {
			var err error

			expanded, err = fsutil.ExpandHomePath(expanded)
			if err != nil {
				return fmt.Errorf("expand %s: %w", *path, err)
			}
		}

		*path = expanded
	}

	return nil
}

func (m *ConfigManager) loadDotEnv() error {
	for _, file := range m.DotEnvFiles {
		// godotenv.Load never overrides variables that are already set.
		err := godotenv.Load(file)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", file, err)
		}
	}

	return nil
}

func (m *ConfigManager) readConfig() error {
	err := m.Viper.ReadInConfig()
	if err == nil {
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		return nil
	}

	return fmt.Errorf("failed to read config file: %w", err)
}
