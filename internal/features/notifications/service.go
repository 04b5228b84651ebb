package notifications

import (
	"context"
	"fmt"

	"github.com/xyz-asif/lostfound/internal/features/auth"
	"github.com/xyz-asif/lostfound/internal/pkg/push"
)

// UserSource is the slice of the users repository the fan-out engine reads.
type UserSource interface {
	ListNotifiable(ctx context.Context) ([]auth.User, error)
	GetByUID(ctx context.Context, uid string) (*auth.User, error)
}

// PushSender submits messages to the push gateway.
type PushSender interface {
	Send(ctx context.Context, messages []push.Message) error
}

// Service computes recipient sets for the three trigger events and
// dispatches pushes. It never propagates failures back to the mutation that
// published the event; everything here is best-effort.
type Service struct {
	repo   *Repository
	users  UserSource
	sender PushSender
	events chan Event
}

func NewService(repo *Repository, users UserSource, sender PushSender) *Service {
	return &Service{
		repo:   repo,
		users:  users,
		sender: sender,
		events: make(chan Event, 64),
	}
}

// BuildItemCreatedMessages computes the broadcast for a new item: every user
// with a push token whose preferred locations substring-match the item's
// location. The poster is not special-cased; posters don't normally watch
// their own posting location.
func BuildItemCreatedMessages(ev Event, users []auth.User) []push.Message {
	var messages []push.Message
	for _, u := range users {
		if u.PushToken == "" || len(u.PreferredLocations) == 0 {
			continue
		}
		if !MatchesLocation(ev.ItemLocation, u.PreferredLocations) {
			continue
		}
		messages = append(messages, push.Message{
			To:    u.PushToken,
			Title: "New item posted",
			Body:  fmt.Sprintf("%s at %s", ev.ItemTitle, ev.ItemLocation),
			Data:  map[string]string{"itemId": ev.ItemID},
		})
	}
	return messages
}

// BuildClaimCreatedMessage targets the item owner. ok is false when the
// owner has no registered token; a missing token is a silent skip, never an
// error.
func BuildClaimCreatedMessage(ev Event, ownerToken string) (push.Message, bool) {
	if ownerToken == "" {
		return push.Message{}, false
	}
	return push.Message{
		To:    ownerToken,
		Title: "New claim received",
		Body:  fmt.Sprintf("%s: someone believes it's theirs.", ev.ItemTitle),
		Data:  map[string]string{"itemId": ev.ItemID, "claimId": ev.ClaimID},
	}, true
}

// BuildClaimApprovedMessage targets the claimant of the approved claim.
func BuildClaimApprovedMessage(ev Event, claimerToken string) (push.Message, bool) {
	if claimerToken == "" {
		return push.Message{}, false
	}
	return push.Message{
		To:    claimerToken,
		Title: "Claim approved",
		Body:  fmt.Sprintf("%s has been approved as yours.", ev.ItemTitle),
		Data:  map[string]string{"itemId": ev.ItemID, "claimId": ev.ClaimID},
	}, true
}
