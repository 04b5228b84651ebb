package notifications

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Stored notification type constants
const (
	TypeClaim    = "claim"
	TypeApproval = "approval"
)

// Notification is the in-app inbox record kept for recipient-addressed
// events (a claim on your item, your claim approved). Location broadcasts
// are push-only and never stored.
type Notification struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	RecipientUid string             `bson:"recipientUid" json:"recipientUid"`
	ActorUid     string             `bson:"actorUid" json:"actorUid"`
	Type         string             `bson:"type" json:"type"`
	ItemID       string             `bson:"itemId" json:"itemId"`
	ClaimID      string             `bson:"claimId,omitempty" json:"claimId,omitempty"`
	Preview      string             `bson:"preview" json:"preview"`
	IsRead       bool               `bson:"isRead" json:"isRead"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
}

// Response DTOs

type UnreadCountResponse struct {
	UnreadCount int64 `json:"unreadCount"`
}

type MarkAllReadResponse struct {
	MarkedCount int64 `json:"markedCount"`
}
