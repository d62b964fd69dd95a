package format

import "github.com/sqltidy/sqltidy/pkg/tokenizer"

// inlineMaxLength is the longest parenthesized region (parentheses included)
// that may be rendered on a single line.
const inlineMaxLength = 50

// inlineBlock tracks whether the formatter is inside a parenthesized region
// that should stay on one line. Only one inline block can be active at a
// time; the level counter exists solely so that parentheses nested inside an
// active block are balanced against the correct closing parenthesis.
type inlineBlock struct {
	level int
}

// begin activates inline mode if the region opened at openIdx qualifies.
// While a block is already active, nested opens only bump the level.
func (b *inlineBlock) begin(tokens []tokenizer.Token, openIdx int) {
	switch {
	case b.level > 0:
		b.level++
	case isInlineBlock(tokens, openIdx):
		b.level = 1
	}
}

// end closes one parenthesis level, deactivating inline mode when the
// opening parenthesis that started the block is balanced.
func (b *inlineBlock) end() {
	if b.level > 0 {
		b.level--
	}
}

func (b *inlineBlock) isActive() bool {
	return b.level > 0
}

// isInlineBlock scans forward from an opening parenthesis to its structural
// match and reports whether the region can be kept on one line: it must be
// short, and contain no clause keyword, line-breaking keyword, comment, or
// statement separator. An unmatched opening parenthesis never qualifies;
// multiline is the safe degradation for malformed input.
func isInlineBlock(tokens []tokenizer.Token, openIdx int) bool {
	length := 0
	depth := 0

	for i := openIdx; i < len(tokens); i++ {
		tok := tokens[i]

		length += len(tok.Value)
		if length > inlineMaxLength {
			return false
		}

		switch tok.Type {
		case tokenizer.OpenParen:
			depth++
		case tokenizer.CloseParen:
			depth--
			if depth == 0 {
				return true
			}
		case tokenizer.ReservedTopLevel, tokenizer.ReservedNewline,
			tokenizer.ReservedNewlineIndent, tokenizer.LineComment,
			tokenizer.BlockComment:
			return false
		}

		if tok.Type == tokenizer.Punct && tok.Value == ";" {
			return false
		}
	}

	return false
}
