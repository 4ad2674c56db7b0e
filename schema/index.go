package schema

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoDBIndexer struct {
	ctx      context.Context
	dbName   string
	Client   *mongo.Client
	Database *mongo.Database
}

func NewMongoDBIndexer(connectionString, dbName string) *MongoDBIndexer {
	ctx := context.Background()
	opts := options.Client().ApplyURI(connectionString)
	client, err := mongo.NewClient(opts)
	if err != nil {
		panic(err)
	}
	if err := client.Connect(ctx); err != nil {
		panic(err)
	}

	return &MongoDBIndexer{
		ctx:      ctx,
		dbName:   dbName,
		Client:   client,
		Database: client.Database(dbName),
	}
}

func (m *MongoDBIndexer) createIndex(collection string, index mongo.IndexModel) error {
	c := m.Database.Collection(collection)
	_, err := c.Indexes().CreateOne(m.ctx, index)
	return err
}

func panicIfError(err error) {
	if err != nil {
		panic(err)
	}
}

func (m *MongoDBIndexer) IndexAll() {
	panicIfError(m.IndexUserCollection())
	panicIfError(m.IndexRequestCollection())
	panicIfError(m.IndexMatchCollection())
	panicIfError(m.IndexMessageCollection())
}

func (m *MongoDBIndexer) IndexUserCollection() error {
	if err := m.createIndex(UserCollection, mongo.IndexModel{
		Keys: bson.M{
			"id": 1,
		},
		Options: options.Index().SetUnique(true),
	}); err != nil {
		return err
	}

	if err := m.createIndex(UserCollection, mongo.IndexModel{
		Keys: bson.M{
			"email": 1,
		},
		Options: options.Index().SetUnique(true),
	}); err != nil {
		return err
	}

	return m.createIndex(UserCollection, mongo.IndexModel{
		Keys: bson.M{
			"tags": 1,
		},
	})
}

func (m *MongoDBIndexer) IndexRequestCollection() error {
	if err := m.createIndex(RequestCollection, mongo.IndexModel{
		Keys: bson.M{
			"id": 1,
		},
		Options: options.Index().SetUnique(true),
	}); err != nil {
		return err
	}

	if err := m.createIndex(RequestCollection, mongo.IndexModel{
		Keys: bson.M{
			"requester_id": 1,
		},
	}); err != nil {
		return err
	}

	return m.createIndex(RequestCollection, mongo.IndexModel{
		Keys: bson.M{
			"created_at": -1,
		},
	})
}

func (m *MongoDBIndexer) IndexMatchCollection() error {
	// the deterministic match id is the only write key; the unique index
	// is what makes concurrent regeneration safe
	if err := m.createIndex(MatchCollection, mongo.IndexModel{
		Keys: bson.M{
			"id": 1,
		},
		Options: options.Index().SetUnique(true),
	}); err != nil {
		return err
	}

	if err := m.createIndex(MatchCollection, mongo.IndexModel{
		Keys: bson.D{
			{Key: "request_id", Value: 1},
			{Key: "score", Value: -1},
		},
	}); err != nil {
		return err
	}

	if err := m.createIndex(MatchCollection, mongo.IndexModel{
		Keys: bson.D{
			{Key: "helper_id", Value: 1},
			{Key: "state", Value: 1},
		},
	}); err != nil {
		return err
	}

	return m.createIndex(MatchCollection, mongo.IndexModel{
		Keys: bson.D{
			{Key: "requester_id", Value: 1},
			{Key: "state", Value: 1},
		},
	})
}

func (m *MongoDBIndexer) IndexMessageCollection() error {
	if err := m.createIndex(MessageCollection, mongo.IndexModel{
		Keys: bson.M{
			"id": 1,
		},
		Options: options.Index().SetUnique(true),
	}); err != nil {
		return err
	}

	return m.createIndex(MessageCollection, mongo.IndexModel{
		Keys: bson.D{
			{Key: "match_id", Value: 1},
			{Key: "created_at", Value: 1},
		},
	})
}
