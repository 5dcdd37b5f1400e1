package services

import (
	"context"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"salon-bot/models"
)

// InitMongoDB initializes the MongoDB connection
func InitMongoDB(ctx context.Context, uri string) (*mongo.Client, error) {
	clientOptions := options.Client().ApplyURI(uri)

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, err
	}

	// Ping to verify connection
	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}

	slog.Info("Connected to MongoDB")

	return client, nil
}

// MessageStore is a write-only audit log of inbound messages and
// dispatched replies. It implements bot.MessageLog. Nothing in the
// dispatch path ever reads it back.
type MessageStore struct {
	collection *mongo.Collection
}

// NewMessageStore prepares the messages collection and its indexes.
func NewMessageStore(client *mongo.Client, databaseName string) *MessageStore {
	collection := client.Database(databaseName).Collection("messages")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.M{"sender_id": 1}},
		{Keys: bson.M{"timestamp": -1}},
	})

	return &MessageStore{collection: collection}
}

// Record inserts one audit document.
func (s *MessageStore) Record(ctx context.Context, rec models.MessageRecord) error {
	_, err := s.collection.InsertOne(ctx, rec)
	return err
}
