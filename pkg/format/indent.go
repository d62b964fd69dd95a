package format

import "strings"

// indentKind selects one of the four independent indentation counters.
// Top-level clause indentation, parenthesis nesting, operator continuations,
// and line-overflow wrapping each have their own open/close triggers that do
// not nest strictly inside one another, so they are tracked separately rather
// than on a single stack.
type indentKind int

const (
	indentTopLevel indentKind = iota
	indentBlock
	indentNewline
	indentOverflow
)

// indentation tracks the current indent as four saturating counters. A
// decrement at zero is a no-op.
type indentation struct {
	unit   string
	counts [4]int
}

func newIndentation(unit string) *indentation {
	return &indentation{unit: unit}
}

func (in *indentation) increase(kind indentKind) {
	in.counts[kind]++
}

func (in *indentation) decrease(kind indentKind) {
	if in.counts[kind] > 0 {
		in.counts[kind]--
	}
}

// resetOverflow clears all overflow indentation in one step. Overflow indent
// only persists until the next hard layout event (a keyword or comma that
// forces its own line break).
func (in *indentation) resetOverflow() {
	in.counts[indentOverflow] = 0
}

// text renders the current total indent.
func (in *indentation) text() string {
	total := 0
	for _, count := range in.counts {
		total += count
	}
	return strings.Repeat(in.unit, total)
}
