package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/pkg/errors"
	"github.com/sqltidy/sqltidy/pkg/config"
	"github.com/sqltidy/sqltidy/pkg/consts"
	"github.com/sqltidy/sqltidy/pkg/format"
	"github.com/urfave/cli/v3"
	"go.uber.org/fx"
)

// currentFormatter is populated by the root command's Before hook when a
// config file is resolved through the global --config flag. Commands fall
// back to the formatter wired at startup while it is unset.
var currentFormatter *format.Formatter

type (
	Params struct {
		fx.In

		Args       []string
		Commands   []*cli.Command `group:"commands"`
		Ctx        context.Context
		Lifecycle  fx.Lifecycle
		Shutdowner fx.Shutdowner
		Version    *Version
	}

	Version struct {
		Version   string
		Commit    string
		Timestamp string
	}
)

// Run creates and executes the main sqltidy CLI application with the given
// version and command-line arguments. This function serves as the main entry
// point for all CLI operations and handles global configuration.
//
// Formatting options come from the file named by the global --config flag
// (or the SQLTIDY_CONFIG environment variable), defaulting to sqltidy.yaml
// in the current directory. A missing file at the default path is fine and
// leaves the formatter defaults in place; a missing file at an explicitly
// requested path is an error. Command execution is hooked into the fx
// lifecycle so that a failing command shuts the process down with exit
// code 1.
func Run(p Params) {
	cli.VersionPrinter = func(cmd *cli.Command) {
		fmt.Fprintln(cmd.Writer, "Version:", p.Version.Version)
		fmt.Fprintln(cmd.Writer, "Commit:", p.Version.Commit)
		fmt.Fprintln(cmd.Writer, "Date:", p.Version.Timestamp)
	}

	app := newApp(p)

	p.Lifecycle.Append(fx.StartHook(func() {
		if err := app.Run(p.Ctx, p.Args); err != nil {
			slog.Error("Error running command", "err", err)
			_ = p.Shutdowner.Shutdown(fx.ExitCode(1))
			return
		}

		_ = p.Shutdowner.Shutdown(fx.ExitCode(0))
	}))
}

func newApp(p Params) *cli.Command {
	return &cli.Command{
		Name:  "sqltidy",
		Usage: "A whitespace-normalizing SQL pretty-printer",
		Description: `sqltidy reflows SQL queries into consistently indented, readable text.
It reformats whitespace and layout only: token order and values are left
untouched, and no validation or dialect checking is performed.`,
		Version: p.Version.Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "the sqltidy config file",
				Sources: cli.EnvVars("SQLTIDY_CONFIG"),
				Value:   consts.ConfigFile,
				Config: cli.StringConfig{
					TrimSpace: true,
				},
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			path := cmd.String("config")

			if _, err := os.Stat(path); os.IsNotExist(err) {
				if cmd.IsSet("config") {
					return ctx, errors.Errorf("config file not found: %s", path)
				}

				return ctx, nil
			} else if err != nil {
				return ctx, errors.Wrapf(err, "failed to access config file: %s", path)
			}

			cfg, err := config.LoadConfigFile(path)
			if err != nil {
				return ctx, err
			}

			currentFormatter = cfg.GetFormatter()
			return ctx, nil
		},
		Commands: p.Commands,
	}
}

// resolveFormatter prefers the formatter loaded via the --config flag over
// the one wired at startup.
func resolveFormatter(fallback *format.Formatter) *format.Formatter {
	if currentFormatter != nil {
		return currentFormatter
	}

	return fallback
}
