package claims

import (
	"fmt"

	"github.com/xyz-asif/lostfound/internal/features/items"
	apperrors "github.com/xyz-asif/lostfound/pkg/errors"
)

// CheckSubmit validates a claim submission against a snapshot of the item
// and its existing claims. A prior rejected claim does not block a retry;
// a pending or approved one does.
func CheckSubmit(item *items.Item, existing []Claim, claimerUid string) error {
	if claimerUid == "" {
		return fmt.Errorf("%w: must be signed in to create a claim", apperrors.ErrValidation)
	}
	if item.CreatedByUid == claimerUid {
		return fmt.Errorf("%w: you cannot claim your own item", apperrors.ErrValidation)
	}
	if item.Claimed {
		return fmt.Errorf("%w: item is already claimed", apperrors.ErrValidation)
	}

	for _, c := range existing {
		if c.ClaimerUid == claimerUid && c.Status != StatusRejected {
			return fmt.Errorf("%w: you already have an active claim on this item", apperrors.ErrValidation)
		}
	}

	return nil
}

// checkTransition gates the resolution state machine. A replay of an
// already-applied decision is reported as a no-op so retried calls stay
// indistinguishable from their first delivery; any other transition out of
// a terminal state is illegal.
func checkTransition(current, decision string) (noop bool, err error) {
	if current == decision {
		return true, nil
	}
	if current != StatusPending {
		return false, fmt.Errorf("%w: claim is already %s", apperrors.ErrInvalidState, current)
	}
	return false, nil
}

// ValidateDecision checks the decision value itself
func ValidateDecision(decision string) error {
	if decision != DecisionApproved && decision != DecisionRejected {
		return fmt.Errorf("%w: decision must be approved or rejected", apperrors.ErrValidation)
	}
	return nil
}
