package auth

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserStats holds denormalized activity counters. ClaimsMade is bumped
// best-effort when a claim is submitted; a failed bump never fails the claim.
type UserStats struct {
	ClaimsMade int `bson:"claimsMade" json:"claimsMade"`
}

// User represents a registered user in the system. UID is the Firebase UID
// and is the identity every item, claim and chat references; the Mongo _id is
// internal only.
type User struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	UID         string             `bson:"uid" json:"uid"`
	Email       string             `bson:"email" json:"email"`
	DisplayName string             `bson:"displayName" json:"displayName"`

	// PushToken is the legacy single-device token; Tokens carries every
	// registered device, append/dedupe only. Last-writer-wins is tolerated.
	PushToken string   `bson:"pushToken,omitempty" json:"pushToken,omitempty"`
	Tokens    []string `bson:"tokens,omitempty" json:"tokens,omitempty"`

	// PreferredLocations is the free-text substring watch list used by the
	// notification fan-out ("type a building name you care about").
	PreferredLocations []string `bson:"preferredLocations,omitempty" json:"preferredLocations,omitempty"`

	Stats     UserStats `bson:"stats" json:"stats"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// SessionRequest represents the payload for exchanging a Firebase ID token
// for an API session token
type SessionRequest struct {
	IDToken string `json:"idToken" binding:"required"`
}

// SessionResponse represents the response after successful authentication
type SessionResponse struct {
	User        *User  `json:"user"`
	AccessToken string `json:"accessToken"`
}
