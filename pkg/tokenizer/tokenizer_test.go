package tokenizer_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	. "github.com/sqltidy/sqltidy/pkg/tokenizer"
)

func TestTokenize_Classification(t *testing.T) {
	tests := []struct {
		name  string
		sql   string
		value string
		typ   Type
	}{
		{"top-level keyword", "SELECT 1", "SELECT", ReservedTopLevel},
		{"multi-word top-level keyword", "GROUP BY a", "GROUP BY", ReservedTopLevel},
		{"multi-word keyword with extra spaces", "ORDER   BY a", "ORDER   BY", ReservedTopLevel},
		{"lowercase keyword", "select 1", "select", ReservedTopLevel},
		{"newline keyword", "a AND b", "AND", ReservedNewline},
		{"join variant", "LEFT OUTER JOIN t", "LEFT OUTER JOIN", ReservedNewline},
		{"newline-with-indent keyword", "ON a = b", "ON", ReservedNewlineIndent},
		{"plain reserved keyword", "a BETWEEN 1", "BETWEEN", Reserved},
		{"open paren", "(", "(", OpenParen},
		{"close paren", ")", ")", CloseParen},
		{"anonymous placeholder", "a = ?", "?", Placeholder},
		{"indexed placeholder", "a = ?2", "?2", Placeholder},
		{"named placeholder", "a = :name", ":name", Placeholder},
		{"at placeholder", "a = @org", "@org", Placeholder},
		{"dollar placeholder", "a = $1", "$1", Placeholder},
		{"line comment", "-- note", "-- note", LineComment},
		{"hash comment", "# note", "# note", LineComment},
		{"block comment", "/* note */", "/* note */", BlockComment},
		{"string literal", "'a b'", "'a b'", Word},
		{"backtick identifier", "`from`", "`from`", Word},
		{"number", "1.5", "1.5", Word},
		{"comma", "a, b", ",", Punct},
		{"double-colon cast", "a::int", "::", Punct},
		{"lone dollar sign", "a $ b", "$", Punct},
		{"lone at sign", "a @ b", "@", Punct},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := Tokenize(tt.sql)
			require.NoError(t, err)

			for _, tok := range tokens {
				if tok.Value == tt.value {
					require.Equal(t, tt.typ, tok.Type, "token %q", tok.Value)
					return
				}
			}
			t.Fatalf("token %q not found in %v", tt.value, tokens)
		})
	}
}

func TestTokenize_KeywordBoundaries(t *testing.T) {
	// Words that merely start with a keyword must stay words.
	tokens, err := Tokenize("selected orders on_call")
	require.NoError(t, err)

	for _, tok := range tokens {
		if tok.Type == Whitespace {
			continue
		}
		require.Equal(t, Word, tok.Type, "token %q", tok.Value)
	}
}

func TestTokenize_ReproducesInput(t *testing.T) {
	sql := "SELECT a,b /* c */ FROM t\nWHERE x = :y -- end\n"

	tokens, err := Tokenize(sql)
	require.NoError(t, err)

	var sb strings.Builder
	for _, tok := range tokens {
		sb.WriteString(tok.Value)
	}
	require.Equal(t, sql, sb.String())
}

func TestTokenize_UnterminatedBlockComment(t *testing.T) {
	_, err := Tokenize("SELECT a /* nope")
	require.Error(t, err)
	require.Contains(t, err.Error(), "unterminated block comment")
}

func TestIsJoin(t *testing.T) {
	joins := []string{"JOIN", "join", "LEFT JOIN", "LEFT OUTER JOIN", "inner join", "CROSS APPLY", "OUTER  APPLY"}
	for _, v := range joins {
		require.True(t, IsJoin(v), "%q should be a join", v)
	}

	notJoins := []string{"ON", "AND", "UNION", "JOINED"}
	for _, v := range notJoins {
		require.False(t, IsJoin(v), "%q should not be a join", v)
	}
}
