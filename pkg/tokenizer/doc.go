// Package tokenizer splits raw SQL text into a flat stream of classified
// tokens for the formatter.
//
// The tokenizer is deliberately not a parser: it never builds a syntax tree
// and never rejects structurally invalid SQL. Its single contract is that
// concatenating the values of the returned tokens, in order, reproduces the
// input text byte-for-byte. Classification covers whitespace, comments,
// reserved keywords (split into the three layout-relevant groups),
// parentheses, placeholders, punctuation, and everything else.
//
// Example usage:
//
//	tokens, err := tokenizer.Tokenize("SELECT id FROM users WHERE org = :org")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	for _, tok := range tokens {
//		fmt.Printf("%s %q\n", tok.Type, tok.Value)
//	}
package tokenizer
