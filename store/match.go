package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/campusconnect/helpmatch-api/matching"
	"github.com/campusconnect/helpmatch-api/schema"
)

var (
	ErrMatchNotFound = fmt.Errorf("match not found")
)

// GetMatch returns the match of a given deterministic id.
func (m *mongoDB) GetMatch(id string) (*schema.Match, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	var match schema.Match
	if err := m.collection(schema.MatchCollection).FindOne(ctx, bson.M{"id": id}).Decode(&match); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrMatchNotFound
		}
		return nil, err
	}
	return &match, nil
}

// ListMatchesByRequest returns a request's stored matches, best score
// first with helper id breaking ties.
func (m *mongoDB) ListMatchesByRequest(requestID string) ([]schema.Match, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{
		{Key: "score", Value: -1},
		{Key: "helper_id", Value: 1},
	})
	cursor, err := m.collection(schema.MatchCollection).Find(ctx, bson.M{"request_id": requestID}, opts)
	if err != nil {
		return nil, err
	}

	matches := make([]schema.Match, 0)
	if err := cursor.All(ctx, &matches); err != nil {
		return nil, err
	}
	return matches, nil
}

// ListMatchesByHelper returns the matches where a user is the helper,
// optionally narrowed to a set of states, most recently updated first.
func (m *mongoDB) ListMatchesByHelper(helperID string, states []string) ([]schema.Match, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	query := bson.M{"helper_id": helperID}
	if len(states) > 0 {
		query["state"] = bson.M{"$in": states}
	}

	opts := options.Find().SetSort(bson.M{"updated_at": -1})
	cursor, err := m.collection(schema.MatchCollection).Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}

	matches := make([]schema.Match, 0)
	if err := cursor.All(ctx, &matches); err != nil {
		return nil, err
	}
	return matches, nil
}

// UpsertSuggested writes a fresh suggestion conditioned on the stored
// state still being suggested (or the match not existing yet). A
// progressed match makes the filter miss, so the upsert attempts an
// insert and trips the unique index instead; that duplicate-key error is
// the signal to keep the stored record verbatim. There is no window in
// which a transition can be clobbered.
func (m *mongoDB) UpsertSuggested(match schema.Match) (*schema.Match, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	filter := bson.M{
		"id":    match.ID,
		"state": schema.MatchSuggested,
	}
	update := bson.M{
		"$set": bson.M{
			"request_id":   match.RequestID,
			"requester_id": match.RequesterID,
			"helper_id":    match.HelperID,
			"score":        match.Score,
			"reasons":      match.Reasons,
			"state":        schema.MatchSuggested,
			"updated_at":   match.UpdatedAt,
		},
		"$setOnInsert": bson.M{
			"id":         match.ID,
			"created_at": match.CreatedAt,
		},
	}

	opts := options.Update().SetUpsert(true)
	if _, err := m.collection(schema.MatchCollection).UpdateOne(ctx, filter, update, opts); err != nil {
		if !isDuplicateKeyError(err) {
			return nil, err
		}
		// progressed match owns the id; fall through and return it
	}

	return m.GetMatch(match.ID)
}

// TransitionMatch performs the atomic read-check-write of a lifecycle
// step: the filter carries the expected current state, so of two racing
// callers only one finds a document to update. The loser gets the stored
// record re-read to report a precise conflict.
func (m *mongoDB) TransitionMatch(id, from, to string, payload *schema.ConnectionPayload, now time.Time) (*schema.Match, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	set := bson.M{
		"state":      to,
		"updated_at": now,
	}
	if to == schema.MatchAccepted {
		if payload == nil {
			payload = &schema.ConnectionPayload{}
		}
		set["connection_payload"] = payload
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	result := m.collection(schema.MatchCollection).FindOneAndUpdate(ctx,
		bson.M{"id": id, "state": from},
		bson.M{"$set": set},
		opts)

	var match schema.Match
	if err := result.Decode(&match); err != nil {
		if err != mongo.ErrNoDocuments {
			return nil, err
		}

		existing, getErr := m.GetMatch(id)
		if getErr != nil {
			return nil, getErr
		}
		return nil, &matching.InvalidTransitionError{From: existing.State, To: to}
	}
	return &match, nil
}

// TouchMatch bumps a match's updatedAt.
func (m *mongoDB) TouchMatch(id string, now time.Time) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	result, err := m.collection(schema.MatchCollection).UpdateOne(ctx,
		bson.M{"id": id},
		bson.M{"$set": bson.M{"updated_at": now}})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrMatchNotFound
	}
	return nil
}
