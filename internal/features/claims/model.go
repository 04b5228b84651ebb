package claims

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/xyz-asif/lostfound/internal/features/items"
)

// Claim statuses. pending is the only non-terminal state; approved and
// rejected are final.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// Decision values accepted by the resolution engine
const (
	DecisionApproved = StatusApproved
	DecisionRejected = StatusRejected
)

// Claim represents one user's assertion that an item is theirs
type Claim struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ItemID      primitive.ObjectID `bson:"itemId" json:"itemId"`
	ClaimerUid  string             `bson:"claimerUid" json:"claimerUid"`
	ClaimerName string             `bson:"claimerName,omitempty" json:"claimerName,omitempty"`
	Message     string             `bson:"message" json:"message"`
	Status      string             `bson:"status" json:"status"`

	// Dual-stamped: CreatedAtMs is the client clock for immediate UI
	// ordering, CreatedAt the canonical server time used for queries.
	CreatedAtMs int64     `bson:"createdAtMs" json:"createdAtMs"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
}

// SubmitClaimRequest represents claim submission data
type SubmitClaimRequest struct {
	Message     string `json:"message"`
	CreatedAtMs int64  `json:"createdAtMs"`
}

// DecisionRequest carries the owner's verdict on a claim
type DecisionRequest struct {
	Decision string `json:"decision" binding:"required"`
}

// MyClaimRow joins a claim with a snapshot of its parent item for the
// "my claims" view. Claims whose item has disappeared are skipped.
type MyClaimRow struct {
	ClaimID        primitive.ObjectID `json:"claimId"`
	ClaimStatus    string             `json:"claimStatus"`
	ClaimCreatedAt time.Time          `json:"claimCreatedAt"`
	Item           items.Item         `json:"item"`
}
