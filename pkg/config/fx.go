package config

import (
	"os"

	"github.com/sqltidy/sqltidy/pkg/consts"
	"github.com/sqltidy/sqltidy/pkg/format"
	"go.uber.org/fx"
)

var Module = fx.Module("config", fx.Provide(
	// Function attempts to load the configuration from sqltidy.yaml if it
	// exists. Returns nil if the file doesn't exist so that formatting with
	// defaults still works outside configured projects. The root command's
	// --config flag can point commands at a different file at run time.
	func() (*Config, error) {
		if _, err := os.Stat(consts.ConfigFile); os.IsNotExist(err) {
			return nil, nil
		}

		return LoadConfigFile(consts.ConfigFile)
	},
	func(c *Config) *format.Formatter {
		return c.GetFormatter()
	},
))
