package config

import (
	"bytes"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const (
	KeyLoaderDefaultFormat = "loader.default_format"
	KeyPreviewRows         = "preview.rows"
	KeyDatabasePath        = "database.path"
	KeyLogLevel            = "log.level"
)

type Config struct {
	Loader   LoaderConfig   `mapstructure:"loader" yaml:"loader"`
	Preview  PreviewConfig  `mapstructure:"preview" yaml:"preview"`
	Database DatabaseConfig `mapstructure:"database" yaml:"database"`
	Log      LogConfig      `mapstructure:"log" yaml:"log"`
}

type LoaderConfig struct {
	DefaultFormat string `mapstructure:"default_format" yaml:"default_format" validate:"required,oneof=csv excel json"`
}

type PreviewConfig struct {
	Rows int `mapstructure:"rows" yaml:"rows" validate:"gt=0"`
}

type DatabaseConfig struct {
	Path string `mapstructure:"path" yaml:"path" validate:"required"`
}

type LogConfig struct {
	Level string `mapstructure:"level" yaml:"level" validate:"required,oneof=debug info warn error"`
}

// SetDefaults sets default values if not provided
func SetDefaults() {
	setDefaults(viper.GetViper())
}

// LoadAndValidate loads config from Viper and validates it
func LoadAndValidate() (*Config, error) {
	return loadAndValidateFromViper(viper.GetViper())
}

// ValidateYAMLContent validates configuration from raw YAML content.
func ValidateYAMLContent(content []byte) (*Config, error) {
	local := viper.New()
	setDefaults(local)
	local.SetConfigType("yaml")
	if err := local.ReadConfig(bytes.NewReader(content)); err != nil {
		return nil, fmt.Errorf("read config content: %w", err)
	}
	return loadAndValidateFromViper(local)
}

// ExampleYAML returns the default configuration template.
func ExampleYAML() string {
	return `# tabload configuration
loader:
  default_format: "csv"

preview:
  rows: 10

database:
  path: "./tabload.db"

log:
  level: "info"
`
}

func loadAndValidateFromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyLoaderDefaultFormat, "csv")
	v.SetDefault(KeyPreviewRows, 10)
	v.SetDefault(KeyDatabasePath, "./tabload.db")
	v.SetDefault(KeyLogLevel, "info")
}
