package main

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/crypto/bcrypt"

	"github.com/campusconnect/helpmatch-api/schema"
)

func init() {
	viper.AutomaticEnv()
	viper.SetEnvPrefix("helpmatch")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
}

type seedUser struct {
	email string
	name  string
	bio   string
	tags  []string
	tz    string
}

type seedRequest struct {
	requesterEmail string
	title          string
	description    string
	urgency        string
	format         string
	tags           []string
}

var seedUsers = []seedUser{
	{"amara@campus.test", "Amara Osei", "Final-year CS student, happy to review code.", []string{"coding", "backend", "database"}, "UTC"},
	{"jonas@campus.test", "Jonas Weber", "Design mentor, portfolios and brand work.", []string{"design", "frontend"}, "Europe/Berlin"},
	{"priya@campus.test", "Priya Nair", "Careers society lead, CV and interview prep.", []string{"career", "cv", "interview"}, "UTC"},
	{"tomas@campus.test", "Tomas Silva", "Part-time copywriter.", []string{"writing", "marketing"}, "GMT-3"},
	{"lin@campus.test", "Lin Zhao", "Finance student, budgeting help.", []string{"finance", "admin"}, "GMT+8"},
}

var seedRequests = []seedRequest{
	{"amara@campus.test", "Mock interview before Thursday", "Graduate scheme interview, need a practice run.", schema.UrgencyHigh, schema.FormatCall, []string{"interview", "career"}},
	{"jonas@campus.test", "Review my API design", "Building a small backend and want a second pair of eyes.", schema.UrgencyMedium, schema.FormatChat, []string{"coding", "backend"}},
}

func main() {
	ctx := context.Background()

	opts := options.Client().ApplyURI(viper.GetString("mongo.conn"))
	client, err := mongo.NewClient(opts)
	if err != nil {
		log.Panic(err)
	}
	if err := client.Connect(ctx); err != nil {
		log.Panic(err)
	}
	db := client.Database(viper.GetString("mongo.database"))

	log.Info("Clearing old collections")
	for _, col := range []string{schema.UserCollection, schema.RequestCollection, schema.MatchCollection, schema.MessageCollection} {
		if _, err := db.Collection(col).DeleteMany(ctx, bson.M{}); err != nil {
			log.Panic(err)
		}
	}

	schema.NewMongoDBIndexer(viper.GetString("mongo.conn"), viper.GetString("mongo.database")).IndexAll()

	hash, err := bcrypt.GenerateFromPassword([]byte("changeme"), bcrypt.DefaultCost)
	if err != nil {
		log.Panic(err)
	}

	now := time.Now().UTC()
	userIDs := map[string]string{}

	for _, u := range seedUsers {
		user := schema.User{
			ID:           uuid.New().String(),
			Email:        u.email,
			PasswordHash: string(hash),
			Name:         u.name,
			Bio:          u.bio,
			Tags:         schema.FilterAllowedTags(u.tags),
			Timezone:     u.tz,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if _, err := db.Collection(schema.UserCollection).InsertOne(ctx, user); err != nil {
			log.Panic(err)
		}
		userIDs[u.email] = user.ID
	}
	log.Infof("Seeded %d users", len(seedUsers))

	for _, r := range seedRequests {
		request := schema.HelpRequest{
			ID:          uuid.New().String(),
			RequesterID: userIDs[r.requesterEmail],
			Title:       r.title,
			Description: r.description,
			Urgency:     r.urgency,
			Format:      r.format,
			Tags:        schema.FilterAllowedTags(r.tags),
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if _, err := db.Collection(schema.RequestCollection).InsertOne(ctx, request); err != nil {
			log.Panic(err)
		}
	}
	log.Infof("Seeded %d requests", len(seedRequests))
}
