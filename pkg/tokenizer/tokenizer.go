package tokenizer

import (
	"regexp"
	"sort"
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"
)

// Keyword groupings drive layout decisions in the formatter. The lists encode
// accumulated formatting-style decisions; treat them as tunable constants
// rather than something to re-derive from a SQL grammar.
var (
	// reservedTopLevel keywords open a new clause.
	reservedTopLevel = []string{
		"ADD", "ALTER COLUMN", "ALTER TABLE", "DELETE FROM", "EXCEPT",
		"FETCH FIRST", "FROM", "GROUP BY", "HAVING", "INSERT INTO", "INSERT",
		"INTERSECT", "LIMIT", "MODIFY", "ORDER BY", "SELECT",
		"SET CURRENT SCHEMA", "SET SCHEMA", "SET", "UNION ALL", "UNION",
		"UPDATE", "VALUES", "WHERE",
	}

	// reservedNewline keywords break the line but keep the current indent.
	reservedNewline = []string{
		"AND", "CROSS APPLY", "CROSS JOIN", "ELSE", "INNER JOIN", "JOIN",
		"LEFT JOIN", "LEFT OUTER JOIN", "OR", "OUTER APPLY", "OUTER JOIN",
		"RIGHT JOIN", "RIGHT OUTER JOIN", "WHEN", "XOR",
	}

	// reservedNewlineIndent keywords break the line and indent their
	// continuation.
	reservedNewlineIndent = []string{"ON"}

	// reserved keywords get no forced line break, only normalized spacing.
	reserved = []string{
		"ALL", "AS", "ASC", "BETWEEN", "BY", "CASE", "CAST", "DESC",
		"DISTINCT", "END", "ESCAPE", "EXISTS", "FALSE", "GROUP", "IF", "ILIKE",
		"IN", "INTERVAL", "IS", "LIKE", "NOT", "NULL", "NULLS", "ORDER",
		"OVER", "PARTITION", "THEN", "TRUE", "USING", "WITH",
	}
)

// sqlLexer defines the lexical grammar. Ordering matters: earlier rules win,
// so comments and keywords are tried before bare words and punctuation.
var sqlLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "LineComment", Pattern: `(?:--|#)[^\r\n]*`},
	{Name: "BlockComment", Pattern: `/\*[^*]*\*+(?:[^/*][^*]*\*+)*/`},
	{Name: "UnterminatedBlockComment", Pattern: `(?s)/\*.*`},
	{Name: "String", Pattern: `'(?:[^'\\]|\\.)*'|"(?:[^"\\]|\\.)*"`},
	{Name: "BacktickIdent", Pattern: "`(?:[^`\\\\]|\\\\.)*`"},
	{Name: "Number", Pattern: `\d+(?:\.\d*)?(?:[eE][-+]?\d+)?`},
	{Name: "Placeholder", Pattern: `\?\d*|[@:][A-Za-z_][A-Za-z0-9_$]*|\$(?:\d+|[A-Za-z_][A-Za-z0-9_$]*)`},
	{Name: "ReservedTopLevel", Pattern: keywordPattern(reservedTopLevel)},
	{Name: "ReservedNewline", Pattern: keywordPattern(reservedNewline)},
	{Name: "ReservedNewlineIndent", Pattern: keywordPattern(reservedNewlineIndent)},
	{Name: "Reserved", Pattern: keywordPattern(reserved)},
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_$]*`},
	{Name: "OpenParen", Pattern: `\(`},
	{Name: "CloseParen", Pattern: `\)`},
	{Name: "Punct", Pattern: `!=|<>|<=|>=|::|\|\||[-+*/%<>=!,;:.\[\]{}|&^~$@]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

// symbolNames maps the lexer's internal token types back to rule names.
var symbolNames = func() map[lexer.TokenType]string {
	names := make(map[lexer.TokenType]string)
	for name, typ := range sqlLexer.Symbols() {
		names[typ] = name
	}
	return names
}()

// nameTypes maps rule names to the public classification.
var nameTypes = map[string]Type{
	"LineComment":           LineComment,
	"BlockComment":          BlockComment,
	"String":                Word,
	"BacktickIdent":         Word,
	"Number":                Word,
	"Placeholder":           Placeholder,
	"ReservedTopLevel":      ReservedTopLevel,
	"ReservedNewline":       ReservedNewline,
	"ReservedNewlineIndent": ReservedNewlineIndent,
	"Reserved":              Reserved,
	"Ident":                 Word,
	"OpenParen":             OpenParen,
	"CloseParen":            CloseParen,
	"Punct":                 Punct,
	"Whitespace":            Whitespace,
}

// keywordPattern builds a case-insensitive alternation for a keyword list.
// Longer keywords are tried first so that "ORDER BY" wins over "ORDER", and
// interior spaces tolerate arbitrary whitespace runs in the source.
func keywordPattern(keywords []string) string {
	sorted := make([]string, len(keywords))
	copy(sorted, keywords)
	sort.Slice(sorted, func(i, j int) bool { return len(sorted[i]) > len(sorted[j]) })

	alts := make([]string, 0, len(sorted))
	for _, kw := range sorted {
		parts := strings.Fields(kw)
		for i, part := range parts {
			parts[i] = regexp.QuoteMeta(part)
		}
		alts = append(alts, strings.Join(parts, `\s+`))
	}

	return `(?i)(?:` + strings.Join(alts, "|") + `)\b`
}

// Tokenize splits sql into classified tokens. Concatenating the returned
// token values reproduces sql exactly. The only failures are contract
// violations the formatter cannot recover from: an unterminated block comment
// or a byte sequence no rule matches.
func Tokenize(sql string) ([]Token, error) {
	lex, err := sqlLexer.LexString("", sql)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize lexer")
	}

	var tokens []Token
	for {
		tok, err := lex.Next()
		if err != nil {
			return nil, errors.Wrap(err, "failed to tokenize sql")
		}
		if tok.EOF() {
			break
		}

		name, ok := symbolNames[tok.Type]
		if !ok {
			return nil, errors.Errorf("unclassified token %q", tok.Value)
		}
		if name == "UnterminatedBlockComment" {
			return nil, errors.Errorf("unterminated block comment at line %d", tok.Pos.Line)
		}

		tokens = append(tokens, Token{Type: nameTypes[name], Value: tok.Value})
	}

	return tokens, nil
}

// joinPattern matches the join variants that reset continuation indent.
var joinPattern = regexp.MustCompile(
	`(?i)^(?:(?:(?:CROSS|INNER|LEFT|RIGHT|OUTER)(?:\s+OUTER)?\s+)?JOIN|(?:CROSS|OUTER)\s+APPLY)$`,
)

// IsJoin reports whether a reserved keyword value is one of the JOIN/APPLY
// variants. Interior whitespace runs are tolerated, matching the tokenizer.
func IsJoin(value string) bool {
	return joinPattern.MatchString(value)
}
