package project

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/sqlfront/sqlfront/pkg/format"
)

const (
	// ConfigFile is the name of the project configuration file.
	ConfigFile = "sqlfront.yaml"

	// DefaultEntrypoint is the schema file used when none is configured.
	DefaultEntrypoint = "db/schema.sql"

	// DefaultIndentSize is the formatter indent used when none is configured.
	DefaultIndentSize = 4
)

type (
	// FormatterConfig holds the formatter settings of a project.
	FormatterConfig struct {
		// IndentSize is the number of spaces per indent level in formatted
		// output.
		IndentSize int `yaml:"indent_size,omitempty"`

		// AlignTypes pads column names so data types line up. Defaults to
		// true when omitted.
		AlignTypes *bool `yaml:"align_types,omitempty"`
	}

	// Config is the project configuration stored in sqlfront.yaml.
	Config struct {
		// Entrypoint is the main SQL file of the project schema.
		Entrypoint string `yaml:"entrypoint"`

		// Formatter holds the formatting settings applied by fmt.
		Formatter FormatterConfig `yaml:"formatter,omitempty"`
	}
)

// LoadConfig parses a project configuration from the provided io.Reader.
// Missing values fall back to their defaults.
func LoadConfig(r io.Reader) (*Config, error) {
	var cfg Config
	if err := yaml.NewDecoder(r).Decode(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal project config")
	}

	if cfg.Entrypoint == "" {
		cfg.Entrypoint = DefaultEntrypoint
	}
	if cfg.Formatter.IndentSize == 0 {
		cfg.Formatter.IndentSize = DefaultIndentSize
	}

	return &cfg, nil
}

// LoadConfigFile loads a project configuration from the specified file path.
// This is a convenience function that opens the file and calls LoadConfig.
func LoadConfigFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open file: %s", path)
	}
	defer func() { _ = f.Close() }()

	return LoadConfig(f)
}

// FormatOptions converts the formatter settings into format.Options.
func (c *Config) FormatOptions() format.Options {
	opts := format.Options{
		IndentSize: c.Formatter.IndentSize,
		AlignTypes: true,
	}
	if c.Formatter.AlignTypes != nil {
		opts.AlignTypes = *c.Formatter.AlignTypes
	}
	return opts
}
