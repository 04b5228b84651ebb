package claims

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	apperrors "github.com/xyz-asif/lostfound/pkg/errors"
)

// Repository owns the claims collection. It also holds the items collection
// handle because an approval mutates the claim, its siblings and the parent
// item inside one transaction.
type Repository struct {
	client *mongo.Client
	claims *mongo.Collection
	items  *mongo.Collection
}

func NewRepository(db *mongo.Database) *Repository {
	claims := db.Collection("claims")

	// The partial unique index backs the one-active-claim invariant at the
	// store level: a racing duplicate submit fails on the index even if both
	// requests passed the pre-insert check.
	_, _ = claims.Indexes().CreateMany(context.Background(), []mongo.IndexModel{
		{Keys: bson.D{{Key: "itemId", Value: 1}, {Key: "createdAt", Value: -1}}},
		{Keys: bson.D{{Key: "claimerUid", Value: 1}, {Key: "createdAt", Value: -1}}},
		{
			Keys: bson.D{{Key: "itemId", Value: 1}, {Key: "claimerUid", Value: 1}},
			Options: options.Index().
				SetUnique(true).
				SetPartialFilterExpression(bson.M{"status": bson.M{"$in": []string{StatusPending, StatusApproved}}}),
		},
	})

	return &Repository{
		client: db.Client(),
		claims: claims,
		items:  db.Collection("items"),
	}
}

// Insert appends a new pending claim
func (r *Repository) Insert(ctx context.Context, claim *Claim) error {
	claim.Status = StatusPending
	claim.CreatedAt = time.Now()
	if claim.CreatedAtMs == 0 {
		claim.CreatedAtMs = claim.CreatedAt.UnixMilli()
	}

	result, err := r.claims.InsertOne(ctx, claim)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("%w: you already have an active claim on this item", apperrors.ErrValidation)
		}
		return err
	}

	claim.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

// GetByID fetches one claim scoped under its item
func (r *Repository) GetByID(ctx context.Context, itemID, claimID primitive.ObjectID) (*Claim, error) {
	var claim Claim
	err := r.claims.FindOne(ctx, bson.M{"_id": claimID, "itemId": itemID}).Decode(&claim)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &claim, nil
}

// ListByItem returns all claims on an item, newest first by canonical time
func (r *Repository) ListByItem(ctx context.Context, itemID primitive.ObjectID) ([]Claim, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.claims.Find(ctx, bson.M{"itemId": itemID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var claims []Claim
	if err := cursor.All(ctx, &claims); err != nil {
		return nil, err
	}

	if claims == nil {
		claims = []Claim{}
	}

	return claims, nil
}

// ListByClaimer returns every claim authored by a user across all items,
// newest first
func (r *Repository) ListByClaimer(ctx context.Context, claimerUid string) ([]Claim, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.claims.Find(ctx, bson.M{"claimerUid": claimerUid}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var claims []Claim
	if err := cursor.All(ctx, &claims); err != nil {
		return nil, err
	}

	if claims == nil {
		claims = []Claim{}
	}

	return claims, nil
}
