package cmd

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/sqltidy/sqltidy/pkg/consts"
	"github.com/sqltidy/sqltidy/pkg/format"
	"github.com/urfave/cli/v3"
)

// fmtCmd creates a CLI command for reformatting SQL files. This command
// provides gofmt-like behavior: format a single file, a directory tree of
// .sql files, or stdin.
//
// Output modes:
//   - Stdout mode (default): formatted SQL is written to standard output
//   - Write mode (-w): files are rewritten in place
//   - Check mode (--check): nothing is written; files whose formatting would
//     change are listed and the command fails
//
// Path handling:
//   - "-" reads from stdin and writes to stdout
//   - File paths format the named file directly
//   - Directory paths recursively format all .sql files
//
// Examples:
//
//	# Format a single file to stdout
//	sqltidy fmt query.sql
//
//	# Rewrite all SQL files under db/ in place
//	sqltidy fmt -w db/
//
//	# Fail CI when anything is unformatted
//	sqltidy fmt --check db/
func fmtCmd(formatter *format.Formatter) *cli.Command {
	return &cli.Command{
		Name:      "fmt",
		Usage:     "Format SQL files",
		ArgsUsage: "<path>",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "write",
				Aliases: []string{"w"},
				Usage:   "Write result to source files instead of stdout",
			},
			&cli.BoolFlag{
				Name:  "check",
				Usage: "List files whose formatting would change and exit non-zero",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				return errors.New("exactly one path argument is required")
			}

			run := &fmtRun{
				formatter: resolveFormatter(formatter),
				writeBack: cmd.Bool("write"),
				check:     cmd.Bool("check"),
				writer:    cmd.Writer,
			}

			path := cmd.Args().First()
			if path == "-" {
				return run.formatStdin()
			}

			if err := run.formatPath(path); err != nil {
				return err
			}

			if len(run.unformatted) > 0 {
				return errors.Errorf("%d file(s) would be reformatted", len(run.unformatted))
			}

			return nil
		},
	}
}

type fmtRun struct {
	formatter   *format.Formatter
	writeBack   bool
	check       bool
	writer      io.Writer
	unformatted []string
}

func (r *fmtRun) formatStdin() error {
	content, err := io.ReadAll(os.Stdin)
	if err != nil {
		return errors.Wrap(err, "failed to read stdin")
	}

	if err := r.formatter.Format(r.writer, string(content)); err != nil {
		return errors.Wrap(err, "failed to format stdin")
	}

	_, err = fmt.Fprintln(r.writer)
	return err
}

// formatPath handles formatting of either a single file or a directory
// recursively.
func (r *fmtRun) formatPath(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return errors.Wrapf(err, "failed to access path: %s", path)
	}

	if info.IsDir() {
		return r.formatDirectory(path)
	}

	return r.formatFile(path)
}

// formatDirectory recursively walks through a directory and formats all .sql
// files in lexicographical order for consistent behavior across platforms.
func (r *fmtRun) formatDirectory(dir string) error {
	var sqlFiles []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(strings.ToLower(d.Name()), ".sql") {
			sqlFiles = append(sqlFiles, path)
		}

		return nil
	})
	if err != nil {
		return errors.Wrapf(err, "failed to walk directory: %s", dir)
	}

	if len(sqlFiles) == 0 {
		return errors.Errorf("no SQL files found in directory: %s", dir)
	}

	for _, sqlFile := range sqlFiles {
		if err := r.formatFile(sqlFile); err != nil {
			return errors.Wrapf(err, "failed to format file: %s", sqlFile)
		}
	}

	return nil
}

// formatFile formats a single SQL file and writes to stdout, back to the
// file, or (in check mode) only records whether the file would change.
func (r *fmtRun) formatFile(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "failed to read file: %s", path)
	}

	var buf strings.Builder
	if err := r.formatter.Format(&buf, string(content)); err != nil {
		return errors.Wrapf(err, "failed to format SQL in file: %s", path)
	}

	formatted := buf.String() + "\n"

	if r.check {
		if formatted != string(content) {
			r.unformatted = append(r.unformatted, path)
			color.New(color.FgYellow).Fprintf(r.writer, "would reformat %s\n", path)
		}
		return nil
	}

	if r.writeBack {
		if err := os.WriteFile(path, []byte(formatted), consts.ModeFile); err != nil {
			return errors.Wrapf(err, "failed to write formatted content to file: %s", path)
		}
		return nil
	}

	if _, err := fmt.Fprint(r.writer, formatted); err != nil {
		return errors.Wrap(err, "failed to write formatted content to output")
	}

	return nil
}
