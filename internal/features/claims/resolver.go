package claims

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/xyz-asif/lostfound/internal/features/items"
	apperrors "github.com/xyz-asif/lostfound/pkg/errors"
)

// Resolve applies the owner's decision to a claim.
//
// A rejection is a single status flip. An approval is one transaction:
// the claim flips pending→approved behind a compare-and-swap on its current
// status, the parent item is marked claimed (also CAS-guarded, keeping the
// claimed flag monotonic and single-winner), and every sibling still pending
// is swept to rejected, recomputed inside the transaction rather than from
// a pre-transaction read.
//
// transitioned reports whether this call actually performed the flip.
// Replaying an already-applied decision is a successful no-op with
// transitioned=false, so a retried network call cannot be mistaken for a
// competing approval; a genuine race loser gets ErrConflict.
func (r *Repository) Resolve(ctx context.Context, itemID, claimID primitive.ObjectID, decision string) (claim *Claim, transitioned bool, err error) {
	session, err := r.client.StartSession()
	if err != nil {
		return nil, false, fmt.Errorf("%w: %v", apperrors.ErrUnavailable, err)
	}
	defer session.EndSession(ctx)

	var resolved Claim

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		if err := r.claims.FindOne(sc, bson.M{"_id": claimID, "itemId": itemID}).Decode(&resolved); err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return nil, apperrors.ErrNotFound
			}
			return nil, err
		}

		noop, terr := checkTransition(resolved.Status, decision)
		if terr != nil {
			return nil, terr
		}
		if noop {
			return nil, nil
		}

		// CAS: commit only if the claim is still pending
		res, err := r.claims.UpdateOne(sc,
			bson.M{"_id": claimID, "status": StatusPending},
			bson.M{"$set": bson.M{"status": decision}},
		)
		if err != nil {
			return nil, err
		}
		if res.ModifiedCount == 0 {
			return nil, apperrors.ErrConflict
		}

		if decision == DecisionApproved {
			now := time.Now()
			itemRes, err := r.items.UpdateOne(sc,
				bson.M{"_id": itemID, "claimed": false},
				bson.M{"$set": bson.M{
					"claimed":      true,
					"claimedByUid": resolved.ClaimerUid,
					"status":       items.StatusClaimed,
					"claimedAtMs":  now.UnixMilli(),
					"claimedAt":    now,
				}},
			)
			if err != nil {
				return nil, err
			}
			if itemRes.ModifiedCount == 0 {
				// Another approval claimed the item between our read and
				// this write; abort so at most one claim ends approved.
				return nil, apperrors.ErrConflict
			}

			// Sibling sweep, recomputed within the transaction
			if _, err := r.claims.UpdateMany(sc,
				bson.M{
					"itemId": itemID,
					"_id":    bson.M{"$ne": claimID},
					"status": StatusPending,
				},
				bson.M{"$set": bson.M{"status": StatusRejected}},
			); err != nil {
				return nil, err
			}
		}

		resolved.Status = decision
		transitioned = true
		return nil, nil
	})

	if err != nil {
		if isDomainError(err) {
			return nil, false, err
		}
		if isTransientTxnError(err) {
			return nil, false, fmt.Errorf("%w: %v", apperrors.ErrConflict, err)
		}
		return nil, false, err
	}

	return &resolved, transitioned, nil
}

func isDomainError(err error) bool {
	return errors.Is(err, apperrors.ErrNotFound) ||
		errors.Is(err, apperrors.ErrInvalidState) ||
		errors.Is(err, apperrors.ErrConflict)
}

// isTransientTxnError detects write conflicts the server asks us to retry;
// they surface to the caller as ErrConflict instead of being retried blindly,
// since the caller should re-fetch state first.
func isTransientTxnError(err error) bool {
	var cmdErr mongo.CommandError
	if errors.As(err, &cmdErr) {
		return cmdErr.HasErrorLabel("TransientTransactionError") || cmdErr.Code == 112
	}
	return false
}
