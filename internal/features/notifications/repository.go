package notifications

import (
	"context"
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
	collection := db.Collection("notifications")

	// Create indexes
	_, _ = collection.Indexes().CreateMany(context.Background(), []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "recipientUid", Value: 1},
				{Key: "isRead", Value: 1},
				{Key: "createdAt", Value: -1},
			},
		},
		{
			Keys: bson.D{{Key: "createdAt", Value: 1}},
		},
	})

	return &Repository{collection: collection}
}

// CreateNotification creates a single inbox record
func (r *Repository) CreateNotification(ctx context.Context, notification *Notification) error {
	notification.ID = primitive.NewObjectID()
	notification.CreatedAt = time.Now()
	notification.IsRead = false

	_, err := r.collection.InsertOne(ctx, notification)
	return err
}

// GetUserNotifications retrieves inbox records for a user, unread first
func (r *Repository) GetUserNotifications(ctx context.Context, uid string, unreadOnly bool, page, limit int) ([]Notification, int64, error) {
	filter := bson.M{"recipientUid": uid}
	if unreadOnly {
		filter["isRead"] = false
	}

	opts := options.Find().
		SetSort(bson.D{
			{Key: "isRead", Value: 1},
			{Key: "createdAt", Value: -1},
		}).
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var notifications []Notification
	if err = cursor.All(ctx, &notifications); err != nil {
		return nil, 0, err
	}

	if notifications == nil {
		notifications = []Notification{}
	}

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	return notifications, total, nil
}

// CountUnread counts unread inbox records for a user
func (r *Repository) CountUnread(ctx context.Context, uid string) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{
		"recipientUid": uid,
		"isRead":       false,
	})
}

// MarkAsRead marks one record as read, scoped to its recipient
func (r *Repository) MarkAsRead(ctx context.Context, id, uid string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperrors.ErrNotFound
	}

	result, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": objectID, "recipientUid": uid},
		bson.M{"$set": bson.M{"isRead": true}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// MarkAllAsRead marks every unread record for a user as read
func (r *Repository) MarkAllAsRead(ctx context.Context, uid string) (int64, error) {
	result, err := r.collection.UpdateMany(ctx,
		bson.M{"recipientUid": uid, "isRead": false},
		bson.M{"$set": bson.M{"isRead": true}},
	)
	if err != nil {
		return 0, err
	}
	return result.ModifiedCount, nil
}
