package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/campusconnect/helpmatch-api/schema"
)

// CreateMessage stores a chat message on a connection.
func (m *mongoDB) CreateMessage(message schema.ConnectionMessage) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	_, err := m.collection(schema.MessageCollection).InsertOne(ctx, message)
	return err
}

// ListMessages returns a connection's messages in the order they were
// sent.
func (m *mongoDB) ListMessages(matchID string) ([]schema.ConnectionMessage, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.M{"created_at": 1})
	cursor, err := m.collection(schema.MessageCollection).Find(ctx, bson.M{"match_id": matchID}, opts)
	if err != nil {
		return nil, err
	}

	messages := make([]schema.ConnectionMessage, 0)
	if err := cursor.All(ctx, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}
