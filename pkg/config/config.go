package config

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/sqltidy/sqltidy/pkg/format"
	"gopkg.in/yaml.v3"
)

type (
	// Params holds placeholder substitution values.
	Params struct {
		// Named maps placeholder names (without the :/@/$ prefix) to their
		// substitution text
		Named map[string]string `yaml:"named,omitempty"`

		// Positional supplies values for anonymous ? markers in order of
		// appearance, and for indexed ?N / $N markers
		Positional []string `yaml:"positional,omitempty"`
	}

	// Config represents the formatting configuration for a project.
	Config struct {
		// Indent is the text emitted per indentation level
		Indent string `yaml:"indent,omitempty"`

		// MaxLineLength wraps lines that would exceed this width (0 disables)
		MaxLineLength int `yaml:"max_line_length,omitempty"`

		// Params supplies placeholder substitution values
		Params Params `yaml:"params,omitempty"`
	}
)

// LoadConfig parses a formatting configuration from the provided io.Reader.
//
// The function expects YAML-formatted data. Missing fields fall back to the
// formatter defaults (two-space indent, no line length limit).
//
// Example:
//
//	yamlData := `
//	indent: "    "
//	max_line_length: 100
//	`
//
//	cfg, err := config.LoadConfig(strings.NewReader(yamlData))
//	if err != nil {
//		panic(err)
//	}
func LoadConfig(r io.Reader) (*Config, error) {
	var cfg Config
	if err := yaml.NewDecoder(r).Decode(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	if cfg.Indent == "" {
		cfg.Indent = format.Defaults.Indent
	}

	return &cfg, nil
}

// LoadConfigFile loads a configuration from the specified file path. This is
// a convenience function that opens the file and calls LoadConfig.
func LoadConfigFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open file: %s", path)
	}
	defer func() { _ = f.Close() }()

	return LoadConfig(f)
}

// Options converts the configuration into formatter options.
func (c *Config) Options() format.Options {
	if c == nil {
		return format.Defaults
	}

	return format.Options{
		Indent:        c.Indent,
		MaxLineLength: c.MaxLineLength,
		Params: format.Params{
			Named:      c.Params.Named,
			Positional: c.Params.Positional,
		},
	}
}

// GetFormatter returns a formatter configured from this config. A nil config
// yields the default formatter.
func (c *Config) GetFormatter() *format.Formatter {
	return format.New(c.Options())
}
