package claims

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/event"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	apperrors "github.com/xyz-asif/lostfound/pkg/errors"
)

func pendingClaimDoc(claimID, itemID primitive.ObjectID, claimerUid string) bson.D {
	return claimDoc(claimID, itemID, claimerUid, StatusPending)
}

func claimDoc(claimID, itemID primitive.ObjectID, claimerUid, status string) bson.D {
	return bson.D{
		{Key: "_id", Value: claimID},
		{Key: "itemId", Value: itemID},
		{Key: "claimerUid", Value: claimerUid},
		{Key: "message", Value: "that's mine"},
		{Key: "status", Value: status},
		{Key: "createdAt", Value: time.Now()},
	}
}

func updateSuccess(modified int) bson.D {
	return mtest.CreateSuccessResponse(
		bson.E{Key: "n", Value: modified},
		bson.E{Key: "nModified", Value: modified},
	)
}

// startedCommand pops recorded events until one matches name. Skips the
// index builds issued by the repository constructor.
func startedCommand(mt *mtest.T, name string) *event.CommandStartedEvent {
	for {
		evt := mt.GetStartedEvent()
		if evt == nil {
			return nil
		}
		if evt.CommandName == name {
			return evt
		}
	}
}

// firstUpdateStatement returns the first entry of an update command's
// updates array (its q filter, u document and multi flag).
func firstUpdateStatement(t *testing.T, cmd bson.Raw) bson.Raw {
	t.Helper()
	updates, ok := cmd.Lookup("updates").ArrayOK()
	require.True(t, ok)
	values, err := updates.Values()
	require.NoError(t, err)
	require.NotEmpty(t, values)
	return values[0].Document()
}

func TestResolveApprove_ClaimsItemAndSweepsSiblings(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("approve", func(mt *mtest.T) {
		repo := NewRepository(mt.DB)
		itemID := primitive.NewObjectID()
		claimID := primitive.NewObjectID()
		ns := mt.DB.Name() + ".claims"

		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, pendingClaimDoc(claimID, itemID, "claimer")),
			updateSuccess(1), // claim pending -> approved
			updateSuccess(1), // item claimed
			updateSuccess(2), // sibling sweep
			mtest.CreateSuccessResponse(), // commit
		)

		claim, transitioned, err := repo.Resolve(context.Background(), itemID, claimID, DecisionApproved)
		require.NoError(mt, err)
		require.True(mt, transitioned)
		require.Equal(mt, StatusApproved, claim.Status)
		require.Equal(mt, "claimer", claim.ClaimerUid)

		evt := startedCommand(mt, "find")
		require.NotNil(mt, evt)

		// Claim flip is guarded: only a still-pending claim may transition
		evt = startedCommand(mt, "update")
		require.NotNil(mt, evt)
		stmt := firstUpdateStatement(mt.T, evt.Command)
		q := stmt.Lookup("q").Document()
		require.Equal(mt, claimID, q.Lookup("_id").ObjectID())
		require.Equal(mt, StatusPending, q.Lookup("status").StringValue())

		// Item write is guarded on claimed=false, keeping the flag
		// monotonic with a single winner
		evt = startedCommand(mt, "update")
		require.NotNil(mt, evt)
		stmt = firstUpdateStatement(mt.T, evt.Command)
		q = stmt.Lookup("q").Document()
		require.Equal(mt, itemID, q.Lookup("_id").ObjectID())
		require.False(mt, q.Lookup("claimed").Boolean())
		set := stmt.Lookup("u").Document().Lookup("$set").Document()
		require.True(mt, set.Lookup("claimed").Boolean())
		require.Equal(mt, "claimer", set.Lookup("claimedByUid").StringValue())
		require.Equal(mt, "claimed", set.Lookup("status").StringValue())

		// Sweep targets only the item's other still-pending claims
		evt = startedCommand(mt, "update")
		require.NotNil(mt, evt)
		stmt = firstUpdateStatement(mt.T, evt.Command)
		q = stmt.Lookup("q").Document()
		require.Equal(mt, itemID, q.Lookup("itemId").ObjectID())
		require.Equal(mt, StatusPending, q.Lookup("status").StringValue())
		require.Equal(mt, claimID, q.Lookup("_id", "$ne").ObjectID())
		require.True(mt, stmt.Lookup("multi").Boolean())
		set = stmt.Lookup("u").Document().Lookup("$set").Document()
		require.Equal(mt, StatusRejected, set.Lookup("status").StringValue())
	})
}

func TestResolveReject_SingleFlipNoItemWrite(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("reject", func(mt *mtest.T) {
		repo := NewRepository(mt.DB)
		itemID := primitive.NewObjectID()
		claimID := primitive.NewObjectID()
		ns := mt.DB.Name() + ".claims"

		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, pendingClaimDoc(claimID, itemID, "claimer")),
			updateSuccess(1),
			mtest.CreateSuccessResponse(), // commit
		)

		claim, transitioned, err := repo.Resolve(context.Background(), itemID, claimID, DecisionRejected)
		require.NoError(mt, err)
		require.True(mt, transitioned)
		require.Equal(mt, StatusRejected, claim.Status)

		// A rejection touches only the claim: one update command, no item
		// write and no sweep
		updates := 0
		for evt := mt.GetStartedEvent(); evt != nil; evt = mt.GetStartedEvent() {
			if evt.CommandName == "update" {
				updates++
			}
		}
		require.Equal(mt, 1, updates)
	})
}

func TestResolve_RaceLoserGetsConflict(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("claim CAS loses", func(mt *mtest.T) {
		repo := NewRepository(mt.DB)
		itemID := primitive.NewObjectID()
		claimID := primitive.NewObjectID()
		ns := mt.DB.Name() + ".claims"

		// The claim read pending but another resolution landed first, so
		// the guarded flip matches nothing
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, pendingClaimDoc(claimID, itemID, "claimer")),
			updateSuccess(0),
		)

		_, transitioned, err := repo.Resolve(context.Background(), itemID, claimID, DecisionApproved)
		require.ErrorIs(mt, err, apperrors.ErrConflict)
		require.False(mt, transitioned)
	})

	mt.Run("item already claimed", func(mt *mtest.T) {
		repo := NewRepository(mt.DB)
		itemID := primitive.NewObjectID()
		claimID := primitive.NewObjectID()
		ns := mt.DB.Name() + ".claims"

		// Claim flipped but a concurrent approval on a sibling claimed the
		// item first; at most one claim may end approved, so this aborts
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, pendingClaimDoc(claimID, itemID, "claimer")),
			updateSuccess(1),
			updateSuccess(0),
		)

		_, transitioned, err := repo.Resolve(context.Background(), itemID, claimID, DecisionApproved)
		require.ErrorIs(mt, err, apperrors.ErrConflict)
		require.False(mt, transitioned)
	})

	mt.Run("write conflict maps to conflict", func(mt *mtest.T) {
		repo := NewRepository(mt.DB)
		itemID := primitive.NewObjectID()
		claimID := primitive.NewObjectID()
		ns := mt.DB.Name() + ".claims"

		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, pendingClaimDoc(claimID, itemID, "claimer")),
			mtest.CreateCommandErrorResponse(mtest.CommandError{
				Code:    112,
				Name:    "WriteConflict",
				Message: "WriteConflict",
			}),
		)

		_, _, err := repo.Resolve(context.Background(), itemID, claimID, DecisionApproved)
		require.ErrorIs(mt, err, apperrors.ErrConflict)
	})
}

func TestResolve_ReplayIsNoopSuccess(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("replay approved", func(mt *mtest.T) {
		repo := NewRepository(mt.DB)
		itemID := primitive.NewObjectID()
		claimID := primitive.NewObjectID()
		ns := mt.DB.Name() + ".claims"

		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, claimDoc(claimID, itemID, "claimer", StatusApproved)),
			mtest.CreateSuccessResponse(),
		)

		claim, transitioned, err := repo.Resolve(context.Background(), itemID, claimID, DecisionApproved)
		require.NoError(mt, err)
		require.False(mt, transitioned)
		require.Equal(mt, StatusApproved, claim.Status)

		// No writes on a replay
		for evt := mt.GetStartedEvent(); evt != nil; evt = mt.GetStartedEvent() {
			require.NotEqual(mt, "update", evt.CommandName)
		}
	})

	mt.Run("cross-terminal decision rejected", func(mt *mtest.T) {
		repo := NewRepository(mt.DB)
		itemID := primitive.NewObjectID()
		claimID := primitive.NewObjectID()
		ns := mt.DB.Name() + ".claims"

		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, claimDoc(claimID, itemID, "claimer", StatusRejected)),
		)

		_, _, err := repo.Resolve(context.Background(), itemID, claimID, DecisionApproved)
		require.ErrorIs(mt, err, apperrors.ErrInvalidState)
	})

	mt.Run("claim missing", func(mt *mtest.T) {
		repo := NewRepository(mt.DB)
		ns := mt.DB.Name() + ".claims"

		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, ns, mtest.FirstBatch),
		)

		_, _, err := repo.Resolve(context.Background(), primitive.NewObjectID(), primitive.NewObjectID(), DecisionApproved)
		require.ErrorIs(mt, err, apperrors.ErrNotFound)
	})
}
