package chats

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/xyz-asif/lostfound/internal/pkg/logger"
	apperrors "github.com/xyz-asif/lostfound/pkg/errors"
)

type Repository struct {
	threads  *mongo.Collection
	messages *mongo.Collection
}

func NewRepository(db *mongo.Database) *Repository {
	repo := &Repository{
		threads:  db.Collection("chats"),
		messages: db.Collection("chat_messages"),
	}
	repo.ensureIndexes()
	return repo
}

func (r *Repository) ensureIndexes() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	threadIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "key", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "participants", Value: 1}, {Key: "updatedAt", Value: -1}},
		},
	}
	if _, err := r.threads.Indexes().CreateMany(ctx, threadIndexes); err != nil {
		logger.Warn("Failed to create thread indexes: %v", err)
	}

	messageIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "threadId", Value: 1}, {Key: "createdAt", Value: 1}},
		},
	}
	if _, err := r.messages.Indexes().CreateMany(ctx, messageIndexes); err != nil {
		logger.Warn("Failed to create message indexes: %v", err)
	}
}

// threadKey builds the canonical thread identity. Sorting the uids makes
// the key independent of which participant opens the conversation.
func threadKey(itemID primitive.ObjectID, uidA, uidB string) string {
	uids := []string{uidA, uidB}
	sort.Strings(uids)
	return itemID.Hex() + "_" + strings.Join(uids, "_")
}

// OpenOrCreate resolves the thread for an item/pair, creating it on first
// open. The upsert on the unique key keeps concurrent opens from racing
// into duplicate threads.
func (r *Repository) OpenOrCreate(ctx context.Context, itemID primitive.ObjectID, uidA, uidB string) (*Thread, error) {
	if uidA == uidB {
		return nil, fmt.Errorf("%w: cannot open a chat with yourself", apperrors.ErrValidation)
	}

	now := time.Now()
	key := threadKey(itemID, uidA, uidB)
	participants := []string{uidA, uidB}
	sort.Strings(participants)

	filter := bson.M{"key": key}
	update := bson.M{
		"$setOnInsert": bson.M{
			"key":          key,
			"itemId":       itemID,
			"participants": participants,
			"createdAt":    now,
			"updatedAt":    now,
		},
	}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var thread Thread
	if err := r.threads.FindOneAndUpdate(ctx, filter, update, opts).Decode(&thread); err != nil {
		return nil, err
	}
	return &thread, nil
}

// GetByID loads a thread the caller participates in
func (r *Repository) GetByID(ctx context.Context, id string, uid string) (*Thread, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.ErrNotFound
	}

	var thread Thread
	err = r.threads.FindOne(ctx, bson.M{"_id": oid}).Decode(&thread)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}

	for _, p := range thread.Participants {
		if p == uid {
			return &thread, nil
		}
	}
	return nil, apperrors.ErrForbidden
}

// ListMine returns the caller's threads, most recently active first
func (r *Repository) ListMine(ctx context.Context, uid string) ([]Thread, error) {
	opts := options.Find().SetSort(bson.D{{Key: "updatedAt", Value: -1}})

	cursor, err := r.threads.Find(ctx, bson.M{"participants": uid}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	threads := []Thread{}
	if err := cursor.All(ctx, &threads); err != nil {
		return nil, err
	}
	return threads, nil
}

// AppendMessage stores a message and bumps the thread's activity marker
func (r *Repository) AppendMessage(ctx context.Context, thread *Thread, senderUid, text string) (*Message, error) {
	msg := &Message{
		ThreadID:  thread.ID,
		SenderUid: senderUid,
		Text:      text,
		CreatedAt: time.Now(),
	}

	result, err := r.messages.InsertOne(ctx, msg)
	if err != nil {
		return nil, err
	}
	msg.ID = result.InsertedID.(primitive.ObjectID)

	update := bson.M{"$set": bson.M{
		"updatedAt":   msg.CreatedAt,
		"lastMessage": text,
	}}
	if _, err := r.threads.UpdateOne(ctx, bson.M{"_id": thread.ID}, update); err != nil {
		logger.Warn("Failed to bump thread %s: %v", thread.ID.Hex(), err)
	}

	return msg, nil
}

// ListMessages returns a thread's messages oldest first
func (r *Repository) ListMessages(ctx context.Context, threadID primitive.ObjectID) ([]Message, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})

	cursor, err := r.messages.Find(ctx, bson.M{"threadId": threadID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	messages := []Message{}
	if err := cursor.All(ctx, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}
