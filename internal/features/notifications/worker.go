package notifications

import (
	"context"
	"time"

	"github.com/xyz-asif/lostfound/internal/pkg/logger"
	"github.com/xyz-asif/lostfound/internal/pkg/push"
)

// Publish hands an event to the fan-out worker. It never blocks the mutation
// path: if the buffer is full the event is dropped with a warning, which is
// acceptable for best-effort notification delivery.
func (s *Service) Publish(ev Event) {
	select {
	case s.events <- ev:
	default:
		logger.Warn("notifications: event buffer full, dropping %s for item %s", ev.Type, ev.ItemID)
	}
}

// Run consumes events until ctx is cancelled. One invocation per event,
// sequential; dispatch order across recipients is not guaranteed and does
// not need to be.
func (s *Service) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev := <-s.events:
			s.handle(ev)
		}
	}
}

func (s *Service) handle(ev Event) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	var err error
	switch ev.Type {
	case EventItemCreated:
		err = s.handleItemCreated(ctx, ev)
	case EventClaimCreated:
		err = s.handleClaimCreated(ctx, ev)
	case EventClaimApproved:
		err = s.handleClaimApproved(ctx, ev)
	default:
		logger.Warn("notifications: unknown event type %q", ev.Type)
		return
	}

	if err != nil {
		logger.Warn("notifications: %s fan-out for item %s failed: %v", ev.Type, ev.ItemID, err)
	}
}

func (s *Service) handleItemCreated(ctx context.Context, ev Event) error {
	users, err := s.users.ListNotifiable(ctx)
	if err != nil {
		return err
	}

	messages := BuildItemCreatedMessages(ev, users)
	if len(messages) == 0 {
		return nil
	}

	return s.sender.Send(ctx, messages)
}

func (s *Service) handleClaimCreated(ctx context.Context, ev Event) error {
	// Inbox record for the owner regardless of push token
	record := &Notification{
		RecipientUid: ev.OwnerUid,
		ActorUid:     ev.ClaimerUid,
		Type:         TypeClaim,
		ItemID:       ev.ItemID,
		ClaimID:      ev.ClaimID,
		Preview:      truncate(ev.ItemTitle, 100),
	}
	if err := s.repo.CreateNotification(ctx, record); err != nil {
		logger.Warn("notifications: failed to store claim record: %v", err)
	}

	owner, err := s.users.GetByUID(ctx, ev.OwnerUid)
	if err != nil {
		return err
	}

	msg, ok := BuildClaimCreatedMessage(ev, owner.PushToken)
	if !ok {
		return nil
	}

	return s.sender.Send(ctx, []push.Message{msg})
}

func (s *Service) handleClaimApproved(ctx context.Context, ev Event) error {
	record := &Notification{
		RecipientUid: ev.ClaimerUid,
		ActorUid:     ev.OwnerUid,
		Type:         TypeApproval,
		ItemID:       ev.ItemID,
		ClaimID:      ev.ClaimID,
		Preview:      truncate(ev.ItemTitle, 100),
	}
	if err := s.repo.CreateNotification(ctx, record); err != nil {
		logger.Warn("notifications: failed to store approval record: %v", err)
	}

	claimer, err := s.users.GetByUID(ctx, ev.ClaimerUid)
	if err != nil {
		return err
	}

	msg, ok := BuildClaimApprovedMessage(ev, claimer.PushToken)
	if !ok {
		return nil
	}

	return s.sender.Send(ctx, []push.Message{msg})
}

// truncate cuts on rune boundaries so multibyte titles stay valid UTF-8
func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen-3]) + "..."
}
