package auth

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	apperrors "github.com/xyz-asif/lostfound/pkg/errors"
)

// Repository handles database interactions for the users collection
type Repository struct {
	collection *mongo.Collection
}

// NewRepository initializes the repository and creates necessary indexes
func NewRepository(db *mongo.Database) *Repository {
	collection := db.Collection("users")

	_, _ = collection.Indexes().CreateMany(context.Background(), []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "uid", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "email", Value: 1}},
		},
	})

	return &Repository{collection: collection}
}

// UpsertOnSignIn creates the user document on first sign-in and refreshes
// the profile snapshot on every subsequent one.
func (r *Repository) UpsertOnSignIn(ctx context.Context, uid, email, displayName string) (*User, error) {
	now := time.Now()

	update := bson.M{
		"$set": bson.M{
			"email":     email,
			"updatedAt": now,
		},
		"$setOnInsert": bson.M{
			"uid":       uid,
			"stats":     UserStats{},
			"createdAt": now,
		},
	}
	if displayName != "" {
		update["$set"].(bson.M)["displayName"] = displayName
	}

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var user User
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"uid": uid}, update, opts).Decode(&user)
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// GetByUID finds a user by their Firebase UID
func (r *Repository) GetByUID(ctx context.Context, uid string) (*User, error) {
	var user User
	err := r.collection.FindOne(ctx, bson.M{"uid": uid}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// RegisterPushToken stores the device's push token: the legacy single
// pushToken field is overwritten, the tokens set is appended with dedupe.
func (r *Repository) RegisterPushToken(ctx context.Context, uid, pushToken string) error {
	result, err := r.collection.UpdateOne(ctx,
		bson.M{"uid": uid},
		bson.M{
			"$set":      bson.M{"pushToken": pushToken, "updatedAt": time.Now()},
			"$addToSet": bson.M{"tokens": pushToken},
		},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// SetPreferredLocations replaces the user's watch list
func (r *Repository) SetPreferredLocations(ctx context.Context, uid string, locations []string) error {
	if locations == nil {
		locations = []string{}
	}

	result, err := r.collection.UpdateOne(ctx,
		bson.M{"uid": uid},
		bson.M{"$set": bson.M{"preferredLocations": locations, "updatedAt": time.Now()}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// IncrementClaimsMade bumps the denormalized claims counter
func (r *Repository) IncrementClaimsMade(ctx context.Context, uid string) error {
	_, err := r.collection.UpdateOne(ctx,
		bson.M{"uid": uid},
		bson.M{"$inc": bson.M{"stats.claimsMade": 1}},
	)
	return err
}

// ListNotifiable returns every user holding a registered push token. The
// fan-out engine filters them further against preferred locations.
func (r *Repository) ListNotifiable(ctx context.Context) ([]User, error) {
	cursor, err := r.collection.Find(ctx, bson.M{
		"pushToken": bson.M{"$exists": true, "$ne": ""},
	})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var users []User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}

	return users, nil
}
