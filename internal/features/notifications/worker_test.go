package notifications

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/require"
)

func TestTruncate_ShortStringsUntouched(t *testing.T) {
	require.Equal(t, "Blue water bottle", truncate("Blue water bottle", 100))
	require.Equal(t, "", truncate("", 100))
}

func TestTruncate_CutsOnRuneBoundaries(t *testing.T) {
	title := strings.Repeat("é", 120)

	got := truncate(title, 100)
	require.True(t, utf8.ValidString(got))
	require.True(t, strings.HasSuffix(got, "..."))
	require.Equal(t, 100, utf8.RuneCountInString(got))
}

func TestTruncate_ExactLengthUntouched(t *testing.T) {
	title := strings.Repeat("日", 100)
	require.Equal(t, title, truncate(title, 100))
}
