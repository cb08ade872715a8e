package textutil

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanText(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"already clean", "hello world", "hello world"},
		{"newlines and tabs", "hello\n\tworld", "hello world"},
		{"control characters", "a\fb\vc\rd", "a b c d"},
		{"runs of whitespace", "a   b \n\n  c", "a b c"},
		{"leading and trailing", "  padded  ", "padded"},
		{"only whitespace", " \n\t\r\f\v ", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, CleanText(tc.in))
		})
	}
}

func TestCleanTextIdempotent(t *testing.T) {
	inputs := []string{
		"",
		"plain text",
		"  messy\n\ttext \f with \v everything \r\n",
		"unicode  héllo\twörld",
	}
	for _, in := range inputs {
		once := CleanText(in)
		assert.Equal(t, once, CleanText(once), "input %q", in)
	}
}

func TestSplitTextByPages(t *testing.T) {
	t.Run("even split", func(t *testing.T) {
		pages := SplitTextByPages("alpha beta gamma delta", 2)
		assert.Equal(t, []string{"alpha beta", "gamma delta"}, pages)
	})

	t.Run("uneven split pads the tail", func(t *testing.T) {
		pages := SplitTextByPages("one two three four five", 3)
		assert.Equal(t, []string{"one two", "three four", "five"}, pages)
	})

	t.Run("more pages than words", func(t *testing.T) {
		pages := SplitTextByPages("solo", 3)
		assert.Equal(t, []string{"solo", "", ""}, pages)
	})

	t.Run("zero pages", func(t *testing.T) {
		assert.Empty(t, SplitTextByPages("anything at all", 0))
	})

	t.Run("empty text", func(t *testing.T) {
		assert.Equal(t, []string{"", "", "", ""}, SplitTextByPages("", 4))
	})
}

// Rejoining the split must reproduce the original word sequence exactly
// once, in order, for any page count.
func TestSplitTextByPagesRoundTrip(t *testing.T) {
	text := CleanText("the quick brown fox jumps over the lazy dog again and again")
	for totalPages := 1; totalPages <= 15; totalPages++ {
		pages := SplitTextByPages(text, totalPages)
		assert.Len(t, pages, totalPages)

		var nonEmpty []string
		for _, p := range pages {
			if p != "" {
				nonEmpty = append(nonEmpty, p)
			}
		}
		assert.Equal(t, text, strings.Join(nonEmpty, " "), "totalPages=%d", totalPages)
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "exact", Truncate("exact", 5))
	assert.Equal(t, "abc...", Truncate("abcdef", 3))
	assert.Equal(t, "héé...", Truncate("hééééé", 3), "rune-based, not byte-based")
	assert.Equal(t, "whatever", Truncate("whatever", 0), "non-positive limit disables truncation")
}

func TestWordCount(t *testing.T) {
	assert.Equal(t, 0, WordCount(""))
	assert.Equal(t, 0, WordCount("   "))
	assert.Equal(t, 4, WordCount("alpha beta gamma delta"))
	assert.Equal(t, 2, WordCount("  spaced \n out "))
}
