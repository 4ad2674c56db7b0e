package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/campusconnect/helpmatch-api/schema"
)

var (
	ErrRequestNotFound = fmt.Errorf("request not found")
)

// CreateRequest stores a new help request.
func (m *mongoDB) CreateRequest(request schema.HelpRequest) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	_, err := m.collection(schema.RequestCollection).InsertOne(ctx, request)
	return err
}

// GetRequest returns the help request of a given id.
func (m *mongoDB) GetRequest(id string) (*schema.HelpRequest, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	var request schema.HelpRequest
	if err := m.collection(schema.RequestCollection).FindOne(ctx, bson.M{"id": id}).Decode(&request); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}
	return &request, nil
}

// ListRequestsByRequester returns a requester's help requests, newest
// first.
func (m *mongoDB) ListRequestsByRequester(requesterID string) ([]schema.HelpRequest, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.M{"created_at": -1})
	cursor, err := m.collection(schema.RequestCollection).Find(ctx, bson.M{"requester_id": requesterID}, opts)
	if err != nil {
		return nil, err
	}

	requests := make([]schema.HelpRequest, 0)
	if err := cursor.All(ctx, &requests); err != nil {
		return nil, err
	}
	return requests, nil
}
