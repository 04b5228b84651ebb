package chats

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Thread is a conversation between an item's owner and one claimer.
// Key is the canonical identity: itemId plus the two uids sorted, so the
// same pair always resolves to the same thread no matter who opens it.
type Thread struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Key          string             `bson:"key" json:"-"`
	ItemID       primitive.ObjectID `bson:"itemId" json:"itemId"`
	Participants []string           `bson:"participants" json:"participants"`
	LastMessage  string             `bson:"lastMessage,omitempty" json:"lastMessage,omitempty"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}

type Message struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ThreadID  primitive.ObjectID `bson:"threadId" json:"threadId"`
	SenderUid string             `bson:"senderUid" json:"senderUid"`
	Text      string             `bson:"text" json:"text"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

type OpenThreadRequest struct {
	ItemID   string `json:"itemId" binding:"required"`
	OtherUid string `json:"otherUid" binding:"required"`
}

type SendMessageRequest struct {
	Text string `json:"text" binding:"required"`
}
