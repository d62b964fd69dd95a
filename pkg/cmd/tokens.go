package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/sqltidy/sqltidy/pkg/tokenizer"
	"github.com/urfave/cli/v3"
)

// tokenTypeColors maps token classifications to display colors.
var tokenTypeColors = map[tokenizer.Type]*color.Color{
	tokenizer.LineComment:           color.New(color.FgHiBlack),
	tokenizer.BlockComment:          color.New(color.FgHiBlack),
	tokenizer.ReservedTopLevel:      color.New(color.FgBlue, color.Bold),
	tokenizer.ReservedNewline:       color.New(color.FgBlue),
	tokenizer.ReservedNewlineIndent: color.New(color.FgBlue),
	tokenizer.Reserved:              color.New(color.FgCyan),
	tokenizer.OpenParen:             color.New(color.FgMagenta),
	tokenizer.CloseParen:            color.New(color.FgMagenta),
	tokenizer.Placeholder:           color.New(color.FgGreen),
	tokenizer.Punct:                 color.New(color.FgYellow),
}

// tokensCmd creates a CLI command that dumps the classified token stream for
// a query. Useful for inspecting how the formatter will treat an input
// without actually reformatting it.
//
// Examples:
//
//	sqltidy tokens query.sql
//	echo 'SELECT 1' | sqltidy tokens -
func tokensCmd() *cli.Command {
	return &cli.Command{
		Name:      "tokens",
		Usage:     "Print the classified token stream for a SQL file",
		ArgsUsage: "<path>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				return errors.New("exactly one path argument is required")
			}

			path := cmd.Args().First()

			var content []byte
			var err error
			if path == "-" {
				content, err = io.ReadAll(os.Stdin)
			} else {
				content, err = os.ReadFile(path)
			}
			if err != nil {
				return errors.Wrapf(err, "failed to read input: %s", path)
			}

			tokens, err := tokenizer.Tokenize(string(content))
			if err != nil {
				return errors.Wrap(err, "failed to tokenize input")
			}

			for _, tok := range tokens {
				if tok.Type == tokenizer.Whitespace {
					continue
				}

				label := tok.Type.String()
				if c, ok := tokenTypeColors[tok.Type]; ok {
					label = c.Sprint(label)
				}
				fmt.Fprintf(cmd.Writer, "%-24s %q\n", label, tok.Value)
			}

			return nil
		},
	}
}
