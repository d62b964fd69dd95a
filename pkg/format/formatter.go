package format

import (
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/sqltidy/sqltidy/pkg/tokenizer"
)

// Options controls formatting behavior.
type Options struct {
	// Indent is the text emitted per indentation level.
	Indent string
	// MaxLineLength suggests when to wrap long lines onto an
	// overflow-indented continuation (0 = no limit).
	MaxLineLength int
	// Params supplies substitution values for placeholder tokens.
	Params Params
}

// Defaults are the standard formatting options: two-space indent, no line
// length limit, no placeholder substitution.
var Defaults = Options{Indent: "  "}

// Formatter reflows SQL text with configurable options. A Formatter is
// immutable and safe for concurrent use; every Format call owns its state
// exclusively.
type Formatter struct {
	opts Options
}

// New creates a Formatter with the specified options.
func New(opts Options) *Formatter {
	if opts.Indent == "" {
		opts.Indent = Defaults.Indent
	}
	return &Formatter{opts: opts}
}

// NewDefault creates a Formatter with default options.
func NewDefault() *Formatter {
	return New(Defaults)
}

// Format tokenizes sql and writes the reflowed text to w. The result is
// written atomically: on error nothing is written.
func (f *Formatter) Format(w io.Writer, sql string) error {
	tokens, err := tokenizer.Tokenize(sql)
	if err != nil {
		return errors.Wrap(err, "failed to tokenize sql")
	}
	return f.FormatTokens(w, tokens)
}

// FormatTokens reflows an already-tokenized stream. Token order and values
// are preserved; only whitespace, indentation, and line breaks change
// (placeholders may be substituted, line comments are normalized to block
// delimiters).
func (f *Formatter) FormatTokens(w io.Writer, tokens []tokenizer.Token) error {
	result, err := newEngine(f.opts, tokens).run()
	if err != nil {
		return err
	}

	_, err = io.WriteString(w, result)
	return errors.Wrap(err, "failed to write formatted sql")
}

// SQL formats a query with default options (convenience function).
func SQL(sql string) (string, error) {
	var sb strings.Builder
	if err := NewDefault().Format(&sb, sql); err != nil {
		return "", err
	}
	return sb.String(), nil
}
