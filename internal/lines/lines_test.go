package lines

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify_Kinds(t *testing.T) {
	src := "# header\n" +
		"// another comment\n" +
		"\n" +
		"$T = 18\n" +
		"BOARD[a] 1 x 2 x 3 \"A\"\n" +
		"table 1 x 2 x 3\n"

	got := Classify(src)
	require.Len(t, got, 3)
	assert.Equal(t, Command{Kind: Variable, Text: "$T = 18", Line: 4}, got[0])
	assert.Equal(t, Command{Kind: Board, Text: `BOARD[a] 1 x 2 x 3 "A"`, Line: 5}, got[1])
	assert.Equal(t, Command{Kind: Unknown, Text: "table 1 x 2 x 3", Line: 6}, got[2])
}

func TestClassify_Continuation(t *testing.T) {
	src := "board[a] 100 x 200 x 18 \"Side\"\n" +
		"    at 0, 0, 0\n" +
		"\tcolor #abc\n" +
		"board[b] 1 x 1 x 1 \"B\"\n"

	got := Classify(src)
	require.Len(t, got, 2)
	assert.Equal(t, `board[a] 100 x 200 x 18 "Side" at 0, 0, 0 color #abc`, got[0].Text)
	assert.Equal(t, 1, got[0].Line)
	assert.Equal(t, 4, got[1].Line)
}

func TestClassify_ContinuationStops(t *testing.T) {
	t.Run("blank line", func(t *testing.T) {
		got := Classify("board 1 x 1 x 1 \"A\"\n\n  at 0,0,0\n")
		require.Len(t, got, 2)
		assert.Equal(t, Unknown, got[1].Kind)
		assert.Equal(t, "at 0,0,0", got[1].Text)
		assert.Equal(t, 3, got[1].Line)
	})

	t.Run("comment line", func(t *testing.T) {
		got := Classify("board 1 x 1 x 1 \"A\"\n  # note\n  at 0,0,0\n")
		require.Len(t, got, 2)
		assert.Equal(t, "at 0,0,0", got[1].Text)
	})

	t.Run("after a variable", func(t *testing.T) {
		got := Classify("$a = 1\n  $b = 2\n")
		require.Len(t, got, 2)
		assert.Equal(t, Variable, got[1].Kind)
		assert.Equal(t, "$b = 2", got[1].Text)
	})

	t.Run("non-indented line", func(t *testing.T) {
		got := Classify("board 1 x 1 x 1 \"A\"\nat 0,0,0\n")
		require.Len(t, got, 2)
		assert.Equal(t, Unknown, got[1].Kind)
	})
}

func TestClassify_LineEndings(t *testing.T) {
	got := Classify("$a = 1\r\n$b = 2\r$c = 3")
	require.Len(t, got, 3)
	assert.Equal(t, 3, got[2].Line)
}

func TestClassify_Empty(t *testing.T) {
	assert.Empty(t, Classify(""))
	assert.Empty(t, Classify("   \n\t\n# only comments"))
}
