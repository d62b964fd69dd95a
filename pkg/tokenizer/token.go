package tokenizer

// Type classifies a token for layout purposes. The set is closed; the
// formatter switches exhaustively over it.
type Type int

const (
	// Whitespace is any run of spaces, tabs, or newlines.
	Whitespace Type = iota
	// LineComment is a comment running to the end of the line (-- or #).
	LineComment
	// BlockComment is a /* ... */ comment, possibly spanning lines.
	BlockComment
	// ReservedTopLevel starts a new SQL clause (SELECT, FROM, WHERE, ...)
	// and anchors the base indent level.
	ReservedTopLevel
	// ReservedNewline starts a new line at the current indent without
	// changing it (AND, OR, the JOIN variants, ...).
	ReservedNewline
	// ReservedNewlineIndent starts a new line and indents its continuation
	// (ON).
	ReservedNewlineIndent
	// Reserved is any other reserved keyword.
	Reserved
	// OpenParen is an opening parenthesis.
	OpenParen
	// CloseParen is a closing parenthesis.
	CloseParen
	// Placeholder is a parameter marker (?, ?3, :name, @name, $1, $name).
	Placeholder
	// Punct is punctuation and operators without a dedicated type.
	Punct
	// Word is everything else: identifiers, literals, and numbers.
	Word
)

var typeNames = map[Type]string{
	Whitespace:            "Whitespace",
	LineComment:           "LineComment",
	BlockComment:          "BlockComment",
	ReservedTopLevel:      "ReservedTopLevel",
	ReservedNewline:       "ReservedNewline",
	ReservedNewlineIndent: "ReservedNewlineIndent",
	Reserved:              "Reserved",
	OpenParen:             "OpenParen",
	CloseParen:            "CloseParen",
	Placeholder:           "Placeholder",
	Punct:                 "Punct",
	Word:                  "Word",
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "Unknown"
}

// Token is a classified fragment of the input text. Values are kept exactly
// as they appeared in the source.
type Token struct {
	Type  Type
	Value string
}
