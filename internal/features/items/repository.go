package items

import (
	"context"
	"errors"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	apperrors "github.com/xyz-asif/lostfound/pkg/errors"
)

type Repository struct {
	collection *mongo.Collection
}

func NewRepository(db *mongo.Database) *Repository {
	collection := db.Collection("items")

	// Create indexes
	_, _ = collection.Indexes().CreateMany(context.Background(), []mongo.IndexModel{
		{Keys: bson.D{{Key: "createdAt", Value: -1}}},
		{Keys: bson.D{{Key: "createdByUid", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
	})

	return &Repository{collection: collection}
}

func (r *Repository) Create(ctx context.Context, item *Item) error {
	item.CreatedAt = time.Now()
	if item.CreatedAtMs == 0 {
		item.CreatedAtMs = item.CreatedAt.UnixMilli()
	}
	item.Claimed = false

	result, err := r.collection.InsertOne(ctx, item)
	if err != nil {
		return err
	}

	item.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*Item, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.ErrNotFound
	}

	var item Item
	err = r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&item)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}

	return &item, nil
}

// List returns the feed, newest first. filter mirrors the mobile feed tabs:
// "lost", "found" and "claimed" select that status, anything else ("all")
// hides claimed items. queryText is a case-insensitive substring match over
// category and location, applied in the query so it sees the whole
// collection and not just the first page.
func (r *Repository) List(ctx context.Context, filter, queryText string, limit int) ([]Item, error) {
	query := feedFilter(filter, queryText)

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cursor, err := r.collection.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var items []Item
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}

	if items == nil {
		items = []Item{}
	}

	return items, nil
}

// feedFilter builds the feed query document. The text needle is quoted so
// the user types a substring, never a pattern.
func feedFilter(filter, queryText string) bson.M {
	query := bson.M{}
	switch filter {
	case StatusLost, StatusFound, StatusClaimed:
		query["status"] = filter
	default:
		query["status"] = bson.M{"$ne": StatusClaimed}
	}

	if queryText != "" {
		needle := primitive.Regex{Pattern: regexp.QuoteMeta(queryText), Options: "i"}
		query["$or"] = []bson.M{
			{"category": needle},
			{"location": needle},
		}
	}

	return query
}

// ListByOwner returns every item posted by the given user, newest first
func (r *Repository) ListByOwner(ctx context.Context, ownerUid string) ([]Item, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{"createdByUid": ownerUid}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var items []Item
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}

	if items == nil {
		items = []Item{}
	}

	return items, nil
}

// UpdateStatus flips an unclaimed item between lost and found. The claimed
// guard keeps the claimed flag monotonic: once an item is claimed no status
// write can revive it.
func (r *Repository) UpdateStatus(ctx context.Context, id, ownerUid, status string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperrors.ErrNotFound
	}

	result, err := r.collection.UpdateOne(ctx,
		bson.M{
			"_id":          objectID,
			"createdByUid": ownerUid,
			"claimed":      false,
		},
		bson.M{"$set": bson.M{"status": status}},
	)
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		// Distinguish "not yours / gone" from "already claimed"
		var item Item
		if err := r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&item); err != nil {
			return apperrors.ErrNotFound
		}
		if item.CreatedByUid != ownerUid {
			return apperrors.ErrForbidden
		}
		return apperrors.ErrInvalidState
	}

	return nil
}
