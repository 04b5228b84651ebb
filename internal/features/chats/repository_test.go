package chats

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestThreadKey_OrderIndependent(t *testing.T) {
	itemID := primitive.NewObjectID()

	require.Equal(t,
		threadKey(itemID, "alice", "bob"),
		threadKey(itemID, "bob", "alice"),
	)
}

func TestThreadKey_DistinguishesItemsAndPairs(t *testing.T) {
	itemA := primitive.NewObjectID()
	itemB := primitive.NewObjectID()

	require.NotEqual(t, threadKey(itemA, "alice", "bob"), threadKey(itemB, "alice", "bob"))
	require.NotEqual(t, threadKey(itemA, "alice", "bob"), threadKey(itemA, "alice", "carol"))
}

func TestThreadKey_Shape(t *testing.T) {
	itemID := primitive.NewObjectID()

	require.Equal(t, itemID.Hex()+"_alice_bob", threadKey(itemID, "bob", "alice"))
}
