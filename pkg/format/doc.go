// Package format reflows a stream of classified SQL tokens into
// whitespace-normalized, indented text.
//
// This package is a pretty-printer, not a parser: it never builds a syntax
// tree and never rejects malformed SQL. It walks the token stream once, left
// to right, and decides for each token how much leading whitespace,
// indentation, and line breaking to emit. Token order and values are
// preserved; only layout changes.
//
// Key behaviors:
// - Clause keywords (SELECT, FROM, WHERE, ...) anchor the base indent and
//   indent their bodies one level
// - Short parenthesized regions stay on one line; anything containing a
//   clause, line-breaking keyword, or comment expands across lines
// - Placeholder tokens (?, :name, $1, ...) are substituted from Params
// - An optional maximum line width wraps long lines onto overflow-indented
//   continuations
//
// Example usage:
//
//	out, err := format.SQL("SELECT a, b FROM t WHERE id = 1")
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(out)
//
// Output:
//
//	SELECT
//	  a,
//	  b
//	FROM
//	  t
//	WHERE
//	  id = 1
package format
