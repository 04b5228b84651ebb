package notifications

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMatchesLocation_SubstringCaseInsensitive(t *testing.T) {
	require.True(t, MatchesLocation("Near the Library, 2nd floor", []string{"library"}))
	require.True(t, MatchesLocation("LIBRARY ANNEX", []string{"Library"}))
	require.True(t, MatchesLocation("Clark Hall lobby", []string{"gym", "clark"}))
}

func TestMatchesLocation_NoMatch(t *testing.T) {
	require.False(t, MatchesLocation("Near the Libary", []string{"library"}))
	require.False(t, MatchesLocation("Cafeteria", []string{"gym", "pool"}))
}

func TestMatchesLocation_EmptyInputs(t *testing.T) {
	require.False(t, MatchesLocation("", []string{"library"}))
	require.False(t, MatchesLocation("Library", nil))
	require.False(t, MatchesLocation("Library", []string{}))
}

func TestMatchesLocation_TrimsAndSkipsBlankPreferences(t *testing.T) {
	require.True(t, MatchesLocation("Clark Hall", []string{"  clark  "}))
	require.False(t, MatchesLocation("Clark Hall", []string{"", "   "}))
}
