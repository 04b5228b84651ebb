package notifications

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/xyz-asif/lostfound/internal/features/auth"
)

func TestBuildItemCreatedMessages_RecipientSet(t *testing.T) {
	ev := Event{
		Type:         EventItemCreated,
		ItemID:       "item1",
		ItemTitle:    "Blue water bottle",
		ItemLocation: "Clark Hall entrance",
		OwnerUid:     "poster",
	}

	users := []auth.User{
		{UID: "x", PushToken: "tokX", PreferredLocations: []string{"clark"}},
		{UID: "y", PushToken: "tokY", PreferredLocations: []string{"gym"}},
		{UID: "z", PushToken: "", PreferredLocations: []string{"clark"}},
		{UID: "w", PushToken: "tokW", PreferredLocations: nil},
	}

	messages := BuildItemCreatedMessages(ev, users)

	require.Len(t, messages, 1)
	require.Equal(t, "tokX", messages[0].To)
	require.Equal(t, "New item posted", messages[0].Title)
	require.Equal(t, "Blue water bottle at Clark Hall entrance", messages[0].Body)
	require.Equal(t, "item1", messages[0].Data["itemId"])
}

func TestBuildItemCreatedMessages_NoMatches(t *testing.T) {
	ev := Event{ItemID: "item1", ItemTitle: "Keys", ItemLocation: "Pool"}

	users := []auth.User{
		{UID: "a", PushToken: "tokA", PreferredLocations: []string{"library"}},
	}

	require.Empty(t, BuildItemCreatedMessages(ev, users))
}

func TestBuildClaimCreatedMessage(t *testing.T) {
	ev := Event{
		Type:      EventClaimCreated,
		ItemID:    "item1",
		ItemTitle: "Black umbrella",
		ClaimID:   "claim1",
	}

	msg, ok := BuildClaimCreatedMessage(ev, "ownerTok")
	require.True(t, ok)
	require.Equal(t, "ownerTok", msg.To)
	require.Equal(t, "New claim received", msg.Title)
	require.Equal(t, "Black umbrella: someone believes it's theirs.", msg.Body)
	require.Equal(t, "item1", msg.Data["itemId"])
	require.Equal(t, "claim1", msg.Data["claimId"])
}

func TestBuildClaimCreatedMessage_MissingTokenSkips(t *testing.T) {
	_, ok := BuildClaimCreatedMessage(Event{ItemTitle: "Hat"}, "")
	require.False(t, ok)
}

func TestBuildClaimApprovedMessage(t *testing.T) {
	ev := Event{
		Type:      EventClaimApproved,
		ItemID:    "item1",
		ItemTitle: "Student ID card",
		ClaimID:   "claim1",
	}

	msg, ok := BuildClaimApprovedMessage(ev, "claimerTok")
	require.True(t, ok)
	require.Equal(t, "claimerTok", msg.To)
	require.Equal(t, "Claim approved", msg.Title)
	require.Equal(t, "Student ID card has been approved as yours.", msg.Body)
	require.Equal(t, "claim1", msg.Data["claimId"])

	_, ok = BuildClaimApprovedMessage(ev, "")
	require.False(t, ok)
}

func TestPublishDropsWhenFull(t *testing.T) {
	s := &Service{events: make(chan Event, 1)}

	s.Publish(Event{Type: EventClaimCreated})
	// Queue is full now; this must not block
	s.Publish(Event{Type: EventClaimCreated})

	require.Len(t, s.events, 1)
}
