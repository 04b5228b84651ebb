package pagination

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFromQuery_Defaults(t *testing.T) {
	page, limit := FromQuery("", "")
	require.Equal(t, 1, page)
	require.Equal(t, 20, limit)
}

func TestFromQuery_Clamps(t *testing.T) {
	page, limit := FromQuery("0", "0")
	require.Equal(t, 1, page)
	require.Equal(t, 20, limit)

	page, limit = FromQuery("-3", "1000")
	require.Equal(t, 1, page)
	require.Equal(t, 100, limit)

	page, limit = FromQuery("garbage", "garbage")
	require.Equal(t, 1, page)
	require.Equal(t, 20, limit)
}

func TestFromQuery_PassesThroughValidValues(t *testing.T) {
	page, limit := FromQuery("3", "50")
	require.Equal(t, 3, page)
	require.Equal(t, 50, limit)
}
