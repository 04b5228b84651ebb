package items

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Item categories
const (
	CategoryElectronics = "Electronics"
	CategoryClothing    = "Clothing"
	CategoryID          = "ID"
	CategoryKeys        = "Keys"
	CategoryCharger     = "Charger"
	CategoryOther       = "Other"
)

// Item statuses. An approved claim moves the item to StatusClaimed and flips
// Claimed, which is monotonic: nothing in the public API resets it.
const (
	StatusLost    = "lost"
	StatusFound   = "found"
	StatusClaimed = "claimed"
)

var Categories = []string{
	CategoryElectronics, CategoryClothing, CategoryID,
	CategoryKeys, CategoryCharger, CategoryOther,
}

// Item represents a lost or found posting
type Item struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Category    string             `bson:"category" json:"category"`
	Status      string             `bson:"status" json:"status"`
	Location    string             `bson:"location" json:"location"`
	Lat         *float64           `bson:"lat,omitempty" json:"lat,omitempty"`
	Lng         *float64           `bson:"lng,omitempty" json:"lng,omitempty"`
	ImageURL    string             `bson:"imageUrl" json:"imageUrl"`

	// Poster identity, with the display name denormalized at creation time.
	// Staleness is tolerated; the UI never joins back to the user record.
	CreatedByUid  string `bson:"createdByUid" json:"createdByUid"`
	CreatedByName string `bson:"createdByName" json:"createdByName"`

	Claimed      bool       `bson:"claimed" json:"claimed"`
	ClaimedByUid string     `bson:"claimedByUid,omitempty" json:"claimedByUid,omitempty"`
	ClaimedAtMs  int64      `bson:"claimedAtMs,omitempty" json:"claimedAtMs,omitempty"`
	ClaimedAt    *time.Time `bson:"claimedAt,omitempty" json:"claimedAt,omitempty"`

	// Dual-stamped creation time: CreatedAtMs is the client clock for
	// immediate UI ordering, CreatedAt the canonical server time.
	CreatedAtMs int64     `bson:"createdAtMs" json:"createdAtMs"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
}

// CreateItemRequest represents item creation data
type CreateItemRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description"`
	Category    string   `json:"category" binding:"required"`
	Status      string   `json:"status" binding:"required"`
	Location    string   `json:"location" binding:"required"`
	Lat         *float64 `json:"lat"`
	Lng         *float64 `json:"lng"`
	ImageURL    string   `json:"imageUrl"`
	CreatedAtMs int64    `json:"createdAtMs"`
}

// UpdateStatusRequest flips an item between lost and found. Claimed is not
// accepted here; only the claim resolution engine may claim an item.
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
