package claims

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/xyz-asif/lostfound/internal/features/items"
	apperrors "github.com/xyz-asif/lostfound/pkg/errors"
)

func TestCheckSubmit_SelfClaim(t *testing.T) {
	item := &items.Item{CreatedByUid: "owner"}

	err := CheckSubmit(item, nil, "owner")
	require.ErrorIs(t, err, apperrors.ErrValidation)
	require.Contains(t, err.Error(), "your own item")
}

func TestCheckSubmit_AlreadyClaimedItem(t *testing.T) {
	item := &items.Item{CreatedByUid: "owner", Claimed: true}

	err := CheckSubmit(item, nil, "claimer")
	require.ErrorIs(t, err, apperrors.ErrValidation)
	require.Contains(t, err.Error(), "already claimed")
}

func TestCheckSubmit_DuplicateActiveClaim(t *testing.T) {
	item := &items.Item{CreatedByUid: "owner"}

	existing := []Claim{{ClaimerUid: "claimer", Status: StatusPending}}
	err := CheckSubmit(item, existing, "claimer")
	require.ErrorIs(t, err, apperrors.ErrValidation)
	require.Contains(t, err.Error(), "active claim")

	existing = []Claim{{ClaimerUid: "claimer", Status: StatusApproved}}
	err = CheckSubmit(item, existing, "claimer")
	require.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestCheckSubmit_RejectedClaimAllowsRetry(t *testing.T) {
	item := &items.Item{CreatedByUid: "owner"}

	existing := []Claim{{ClaimerUid: "claimer", Status: StatusRejected}}
	require.NoError(t, CheckSubmit(item, existing, "claimer"))
}

func TestCheckSubmit_OtherUsersClaimsDontBlock(t *testing.T) {
	item := &items.Item{CreatedByUid: "owner"}

	existing := []Claim{{ClaimerUid: "someoneelse", Status: StatusPending}}
	require.NoError(t, CheckSubmit(item, existing, "claimer"))
}

func TestCheckSubmit_Anonymous(t *testing.T) {
	item := &items.Item{CreatedByUid: "owner"}
	require.ErrorIs(t, CheckSubmit(item, nil, ""), apperrors.ErrValidation)
}

func TestCheckTransition_PendingProceeds(t *testing.T) {
	noop, err := checkTransition(StatusPending, StatusApproved)
	require.NoError(t, err)
	require.False(t, noop)

	noop, err = checkTransition(StatusPending, StatusRejected)
	require.NoError(t, err)
	require.False(t, noop)
}

func TestCheckTransition_ReplayIsNoop(t *testing.T) {
	noop, err := checkTransition(StatusApproved, StatusApproved)
	require.NoError(t, err)
	require.True(t, noop)

	noop, err = checkTransition(StatusRejected, StatusRejected)
	require.NoError(t, err)
	require.True(t, noop)
}

func TestCheckTransition_CrossTerminalRejected(t *testing.T) {
	_, err := checkTransition(StatusApproved, StatusRejected)
	require.ErrorIs(t, err, apperrors.ErrInvalidState)

	_, err = checkTransition(StatusRejected, StatusApproved)
	require.ErrorIs(t, err, apperrors.ErrInvalidState)
}

func TestValidateDecision(t *testing.T) {
	require.NoError(t, ValidateDecision(DecisionApproved))
	require.NoError(t, ValidateDecision(DecisionRejected))
	require.ErrorIs(t, ValidateDecision("maybe"), apperrors.ErrValidation)
	require.ErrorIs(t, ValidateDecision(""), apperrors.ErrValidation)
}
