package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIndentation(t *testing.T) {
	t.Run("counters are independent and additive", func(t *testing.T) {
		in := newIndentation("  ")
		require.Equal(t, "", in.text())

		in.increase(indentTopLevel)
		in.increase(indentBlock)
		in.increase(indentNewline)
		in.increase(indentOverflow)
		require.Equal(t, "        ", in.text())

		in.decrease(indentBlock)
		require.Equal(t, "      ", in.text())
	})

	t.Run("decrement saturates at zero", func(t *testing.T) {
		in := newIndentation("  ")

		in.decrease(indentTopLevel)
		in.decrease(indentBlock)
		require.Equal(t, "", in.text())

		in.increase(indentTopLevel)
		in.decrease(indentTopLevel)
		in.decrease(indentTopLevel)
		require.Equal(t, "", in.text())

		in.increase(indentBlock)
		require.Equal(t, "  ", in.text())
	})

	t.Run("resetOverflow clears only overflow indent", func(t *testing.T) {
		in := newIndentation("  ")

		in.increase(indentTopLevel)
		in.increase(indentOverflow)
		in.increase(indentOverflow)
		require.Equal(t, "      ", in.text())

		in.resetOverflow()
		require.Equal(t, "  ", in.text())
	})

	t.Run("custom unit", func(t *testing.T) {
		in := newIndentation("\t")
		in.increase(indentTopLevel)
		in.increase(indentBlock)
		require.Equal(t, "\t\t", in.text())
	})
}
