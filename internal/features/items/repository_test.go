package items

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestFeedFilter_StatusTabs(t *testing.T) {
	require.Equal(t, bson.M{"status": StatusLost}, feedFilter(StatusLost, ""))
	require.Equal(t, bson.M{"status": StatusFound}, feedFilter(StatusFound, ""))
	require.Equal(t, bson.M{"status": StatusClaimed}, feedFilter(StatusClaimed, ""))
}

func TestFeedFilter_AllHidesClaimed(t *testing.T) {
	want := bson.M{"status": bson.M{"$ne": StatusClaimed}}
	require.Equal(t, want, feedFilter("all", ""))
	require.Equal(t, want, feedFilter("", ""))
	require.Equal(t, want, feedFilter("bogus", ""))
}

func TestFeedFilter_TextSearchInQuery(t *testing.T) {
	query := feedFilter("all", "library")

	or, ok := query["$or"].([]bson.M)
	require.True(t, ok)
	require.Len(t, or, 2)

	category := or[0]["category"].(primitive.Regex)
	location := or[1]["location"].(primitive.Regex)
	require.Equal(t, "library", category.Pattern)
	require.Equal(t, "i", category.Options)
	require.Equal(t, "library", location.Pattern)
}

func TestFeedFilter_QuotesRegexMetacharacters(t *testing.T) {
	query := feedFilter("all", "c++ (lab)")

	or := query["$or"].([]bson.M)
	category := or[0]["category"].(primitive.Regex)
	require.Equal(t, `c\+\+ \(lab\)`, category.Pattern)
}
