package claims

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/xyz-asif/lostfound/internal/features/items"
	"github.com/xyz-asif/lostfound/internal/features/notifications"
	"github.com/xyz-asif/lostfound/internal/pkg/logger"
	apperrors "github.com/xyz-asif/lostfound/pkg/errors"
)

// StatsBumper is the slice of the users repository the ledger touches:
// the denormalized claims-made counter, bumped best-effort.
type StatsBumper interface {
	IncrementClaimsMade(ctx context.Context, uid string) error
}

// EventPublisher hands fan-out events to the notification worker.
type EventPublisher interface {
	Publish(ev notifications.Event)
}

// Service orchestrates the claim ledger and the resolution engine over the
// item store, and publishes the fan-out triggers. Mutation errors always
// surface to the caller; notification publication never fails a mutation.
type Service struct {
	repo      *Repository
	itemsRepo *items.Repository
	stats     StatsBumper
	events    EventPublisher
}

func NewService(repo *Repository, itemsRepo *items.Repository, stats StatsBumper, events EventPublisher) *Service {
	return &Service{
		repo:      repo,
		itemsRepo: itemsRepo,
		stats:     stats,
		events:    events,
	}
}

// Submit appends a pending claim after validating the submission rules:
// no self-claims, no claims on a claimed item, one active claim per user
// per item.
func (s *Service) Submit(ctx context.Context, itemID, claimerUid, claimerName string, req *SubmitClaimRequest) (*Claim, error) {
	item, err := s.itemsRepo.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	existing, err := s.repo.ListByItem(ctx, item.ID)
	if err != nil {
		return nil, err
	}

	if err := CheckSubmit(item, existing, claimerUid); err != nil {
		return nil, err
	}

	claim := &Claim{
		ItemID:      item.ID,
		ClaimerUid:  claimerUid,
		ClaimerName: claimerName,
		Message:     req.Message,
		CreatedAtMs: req.CreatedAtMs,
	}

	if err := s.repo.Insert(ctx, claim); err != nil {
		return nil, err
	}

	// Best-effort counter bump; a failure here never fails the claim
	if err := s.stats.IncrementClaimsMade(ctx, claimerUid); err != nil {
		logger.Warn("claims: failed to bump claimsMade for %s: %v", claimerUid, err)
	}

	s.events.Publish(notifications.Event{
		Type:       notifications.EventClaimCreated,
		ItemID:     item.ID.Hex(),
		ItemTitle:  item.Title,
		OwnerUid:   item.CreatedByUid,
		ClaimID:    claim.ID.Hex(),
		ClaimerUid: claimerUid,
	})

	return claim, nil
}

// Resolve applies the owner's decision. Only the item owner may resolve;
// the approved fan-out fires only when the engine reports an actual
// pending→approved transition, never on an idempotent replay.
func (s *Service) Resolve(ctx context.Context, itemID, claimID, decision, callerUid string) (*Claim, error) {
	if err := ValidateDecision(decision); err != nil {
		return nil, err
	}

	item, err := s.itemsRepo.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item.CreatedByUid != callerUid {
		return nil, fmt.Errorf("%w: only the item owner can resolve claims", apperrors.ErrForbidden)
	}

	claimOID, err := primitive.ObjectIDFromHex(claimID)
	if err != nil {
		return nil, apperrors.ErrNotFound
	}

	claim, transitioned, err := s.repo.Resolve(ctx, item.ID, claimOID, decision)
	if err != nil {
		return nil, err
	}

	if transitioned && decision == DecisionApproved {
		s.events.Publish(notifications.Event{
			Type:       notifications.EventClaimApproved,
			ItemID:     item.ID.Hex(),
			ItemTitle:  item.Title,
			OwnerUid:   item.CreatedByUid,
			ClaimID:    claimID,
			ClaimerUid: claim.ClaimerUid,
		})
	}

	return claim, nil
}

// ListForItem returns an item's claims, newest first
func (s *Service) ListForItem(ctx context.Context, itemID string) ([]Claim, error) {
	item, err := s.itemsRepo.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	return s.repo.ListByItem(ctx, item.ID)
}

// ListMine joins the caller's claims with their parent item snapshots,
// skipping claims whose item no longer exists, optionally filtered by
// status.
func (s *Service) ListMine(ctx context.Context, claimerUid, statusFilter string) ([]MyClaimRow, error) {
	claims, err := s.repo.ListByClaimer(ctx, claimerUid)
	if err != nil {
		return nil, err
	}

	rows := make([]MyClaimRow, 0, len(claims))
	for _, c := range claims {
		if statusFilter != "" && c.Status != statusFilter {
			continue
		}

		item, err := s.itemsRepo.GetByID(ctx, c.ItemID.Hex())
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				continue
			}
			return nil, err
		}

		rows = append(rows, MyClaimRow{
			ClaimID:        c.ID,
			ClaimStatus:    c.Status,
			ClaimCreatedAt: c.CreatedAt,
			Item:           *item,
		})
	}

	return rows, nil
}
