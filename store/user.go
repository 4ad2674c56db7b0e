package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/campusconnect/helpmatch-api/schema"
)

var (
	ErrUserNotFound = fmt.Errorf("user not found")
	ErrEmailTaken   = fmt.Errorf("email already registered")
)

// CreateUser registers a new user. The unique index on email rejects a
// second registration for the same address.
func (m *mongoDB) CreateUser(user schema.User) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	if _, err := m.collection(schema.UserCollection).InsertOne(ctx, user); err != nil {
		if isDuplicateKeyError(err) {
			return ErrEmailTaken
		}
		return err
	}
	return nil
}

// GetUser returns the user of a given id.
func (m *mongoDB) GetUser(id string) (*schema.User, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	var user schema.User
	if err := m.collection(schema.UserCollection).FindOne(ctx, bson.M{"id": id}).Decode(&user); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// GetUserByEmail returns the user registered under an email address.
func (m *mongoDB) GetUserByEmail(email string) (*schema.User, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	var user schema.User
	if err := m.collection(schema.UserCollection).FindOne(ctx, bson.M{"email": email}).Decode(&user); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// UpdateUserProfile applies the supplied profile fields and returns the
// updated record.
func (m *mongoDB) UpdateUserProfile(id string, update UserProfileUpdate, now time.Time) (*schema.User, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	set := bson.M{"updated_at": now}
	if update.Name != nil {
		set["name"] = *update.Name
	}
	if update.Bio != nil {
		set["bio"] = *update.Bio
	}
	if update.Tags != nil {
		set["tags"] = update.Tags
	}
	if update.Timezone != nil {
		set["timezone"] = *update.Timezone
	}

	result, err := m.collection(schema.UserCollection).UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": set})
	if err != nil {
		return nil, err
	}
	if result.MatchedCount == 0 {
		return nil, ErrUserNotFound
	}

	return m.GetUser(id)
}

// ListCandidates returns every user except the excluded one.
func (m *mongoDB) ListCandidates(excludeID string) ([]schema.User, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	cursor, err := m.collection(schema.UserCollection).Find(ctx, bson.M{"id": bson.M{"$ne": excludeID}})
	if err != nil {
		return nil, err
	}

	users := make([]schema.User, 0)
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}
