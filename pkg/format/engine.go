package format

import (
	"bytes"
	"regexp"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/pkg/errors"
	"github.com/sqltidy/sqltidy/pkg/tokenizer"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// engine holds the mutable state of a single format operation. One engine is
// constructed per call and discarded afterwards; nothing is shared between
// concurrent operations.
type engine struct {
	opts   Options
	tokens []tokenizer.Token

	out    bytes.Buffer
	indent *indentation
	inline *inlineBlock

	// pending holds text (a comma) that must be glued onto the next
	// content-bearing token instead of starting its own line.
	pending string

	// lastReserved is the value of the most recent reserved keyword of any
	// kind. Only consulted to keep commas inside a LIMIT clause inline.
	lastReserved string

	// lastEmitted is the type of the last token that produced output.
	lastEmitted tokenizer.Type
	emittedAny  bool

	// paramIndex counts anonymous ? placeholders consumed so far.
	paramIndex int
}

func newEngine(opts Options, tokens []tokenizer.Token) *engine {
	return &engine{
		opts:   opts,
		tokens: tokens,
		indent: newIndentation(opts.Indent),
		inline: &inlineBlock{},
	}
}

// run performs the single forward pass over the token stream and returns the
// complete formatted text. Either the whole result is produced or an error
// is returned; there is no partial output.
func (e *engine) run() (string, error) {
	for i, tok := range e.tokens {
		if tok.Type == tokenizer.Whitespace {
			continue
		}

		prefix := ""
		if e.pending != "" && !isComment(tok.Type) {
			prefix, e.pending = e.pending, ""
		}

		switch tok.Type {
		case tokenizer.LineComment:
			e.lineComment(tok.Value)
		case tokenizer.BlockComment:
			e.blockComment(tok.Value)
		case tokenizer.ReservedTopLevel:
			e.topLevelReserved(prefix, tok.Value)
			e.lastReserved = tok.Value
		case tokenizer.ReservedNewline:
			e.newlineReserved(prefix, tok.Value)
			e.lastReserved = tok.Value
		case tokenizer.ReservedNewlineIndent:
			e.newlineIndentReserved(prefix, tok.Value)
			e.lastReserved = tok.Value
		case tokenizer.Reserved:
			e.wrapIfLong(tok.Value)
			e.write(prefix + collapseWhitespace(tok.Value) + " ")
			e.lastReserved = tok.Value
		case tokenizer.OpenParen:
			e.openParen(prefix, tok.Value, i)
		case tokenizer.CloseParen:
			e.closeParen(prefix, tok.Value)
		case tokenizer.Placeholder:
			value, consumed := e.opts.Params.resolve(tok.Value, e.paramIndex)
			if consumed {
				e.paramIndex++
			}
			e.write(prefix + value + " ")
		case tokenizer.Punct:
			switch tok.Value {
			case ",":
				e.comma(prefix)
			case ":":
				e.trimSpaces()
				e.write(prefix + tok.Value + " ")
			case ".":
				e.trimSpaces()
				e.write(prefix + tok.Value)
			case ";":
				e.querySeparator(prefix, tok.Value)
			default:
				e.wrapIfLong(tok.Value)
				e.write(prefix + tok.Value + " ")
			}
		case tokenizer.Word:
			e.wrapIfLong(tok.Value)
			e.write(prefix + tok.Value + " ")
		default:
			return "", errors.Errorf("unclassified token type %s (%q)", tok.Type, tok.Value)
		}

		e.lastEmitted = tok.Type
		e.emittedAny = true
	}

	return strings.TrimSpace(e.out.String()), nil
}

// lineComment normalizes a line comment to block-comment delimiters so that
// engine-controlled line breaks can never comment out trailing content, then
// breaks the line.
func (e *engine) lineComment(value string) {
	e.indent.resetOverflow()

	body := strings.TrimSpace(strings.TrimLeft(value, "-#"))
	if body == "" {
		e.write("/* */")
	} else {
		e.write("/* " + body + " */")
	}
	e.newline()
}

// blockComment re-indents the comment's interior lines to the current level
// and breaks the line after it.
func (e *engine) blockComment(value string) {
	e.write(strings.ReplaceAll(value, "\n", "\n"+e.indent.text()))
	e.newline()
}

// topLevelReserved starts a new clause: the keyword returns to the base
// indent and its body sits one level deeper.
func (e *engine) topLevelReserved(prefix, value string) {
	e.indent.resetOverflow()
	e.indent.decrease(indentNewline)
	e.indent.decrease(indentTopLevel)
	e.newline()
	e.indent.increase(indentTopLevel)
	e.write(prefix + collapseWhitespace(value) + " ")
	e.newline()
}

// newlineReserved breaks the line at the current indent. Join variants also
// close any continuation indent opened by a preceding operator keyword.
func (e *engine) newlineReserved(prefix, value string) {
	e.indent.resetOverflow()
	if tokenizer.IsJoin(value) {
		e.indent.decrease(indentNewline)
	}
	e.newline()
	e.write(prefix + collapseWhitespace(value) + " ")
}

// newlineIndentReserved breaks the line and indents the continuation.
func (e *engine) newlineIndentReserved(prefix, value string) {
	e.indent.resetOverflow()
	e.indent.increase(indentNewline)
	e.newline()
	e.write(prefix + collapseWhitespace(value) + " ")
}

func (e *engine) openParen(prefix, value string, index int) {
	e.indent.resetOverflow()

	if !e.preserveSpaceBefore(index) {
		e.trimSpaces()
	}

	e.inline.begin(e.tokens, index)
	if e.inline.isActive() {
		e.write(prefix + value)
		return
	}

	e.newline()
	e.write(prefix + value)
	e.indent.increase(indentBlock)
	e.newline()
}

// preserveSpaceBefore reports whether intentional spacing ahead of an opening
// parenthesis should survive: after explicit whitespace, after another open
// (avoids double-collapsing nested opens), and after a line comment (whose
// trailing line break must not be eaten).
func (e *engine) preserveSpaceBefore(index int) bool {
	if index == 0 {
		return false
	}
	switch e.tokens[index-1].Type {
	case tokenizer.Whitespace, tokenizer.OpenParen, tokenizer.LineComment:
		return true
	}
	return false
}

func (e *engine) closeParen(prefix, value string) {
	if e.inline.isActive() {
		e.inline.end()
		e.trimSpaces()
		e.write(prefix + value + " ")
		return
	}

	e.indent.decrease(indentBlock)
	e.newline()
	e.write(prefix + value + " ")
}

// comma ends a list item. Inside inline blocks and LIMIT clauses the list
// stays on one line; everywhere else the comma terminates its line. A comma
// that would land at the start of a line (the previous output was a comment)
// is buffered and glued onto the next content token instead.
func (e *engine) comma(prefix string) {
	e.indent.resetOverflow()

	if e.inline.isActive() || strings.EqualFold(e.lastReserved, "LIMIT") {
		e.trimSpaces()
		e.write(prefix + ", ")
		return
	}

	if e.emittedAny && isComment(e.lastEmitted) {
		e.pending = prefix + ","
		return
	}

	e.trimSpaces()
	e.write(prefix + ",")
	e.newline()
}

// querySeparator closes a statement and leaves a blank line before the next.
// Overflow indent never crosses a statement boundary.
func (e *engine) querySeparator(prefix, value string) {
	e.indent.resetOverflow()
	e.trimSpaces()
	e.write(prefix + value + "\n\n")
}

// wrapIfLong starts an overflow-indented continuation line when appending the
// next token would push the current line past the configured maximum width.
// Widths are measured in display columns. This is advisory layout only.
func (e *engine) wrapIfLong(next string) {
	if e.opts.MaxLineLength <= 0 {
		return
	}

	line := e.out.Bytes()
	if i := bytes.LastIndexByte(line, '\n'); i >= 0 {
		line = line[i+1:]
	}

	if runewidth.StringWidth(string(line))+runewidth.StringWidth(next) > e.opts.MaxLineLength {
		e.indent.increase(indentOverflow)
		e.newline()
	}
}

// newline trims trailing spaces, breaks the line unless one was just broken,
// and lays down the current indent.
func (e *engine) newline() {
	e.trimSpaces()

	b := e.out.Bytes()
	if len(b) == 0 || b[len(b)-1] != '\n' {
		e.out.WriteByte('\n')
	}
	e.out.WriteString(e.indent.text())
}

// trimSpaces removes trailing spaces and tabs from the buffer. Newlines are
// kept so that blank lines between statements survive.
func (e *engine) trimSpaces() {
	b := e.out.Bytes()
	n := len(b)
	for n > 0 && (b[n-1] == ' ' || b[n-1] == '\t') {
		n--
	}
	e.out.Truncate(n)
}

func (e *engine) write(s string) {
	e.out.WriteString(s)
}

func isComment(t tokenizer.Type) bool {
	return t == tokenizer.LineComment || t == tokenizer.BlockComment
}

// collapseWhitespace normalizes interior whitespace runs in multi-word
// keywords ("GROUP   BY" becomes "GROUP BY").
func collapseWhitespace(value string) string {
	return whitespaceRun.ReplaceAllString(value, " ")
}
