package config

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureMongoIndexes creates the indexes the API relies on. Safe to call on
// every startup; CreateMany is a no-op for indexes that already exist.
func EnsureMongoIndexes() error {
	if MongoClient == nil {
		return errors.New("MongoClient is nil; call InitMongo() first")
	}
	db := Database()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Content collections: unique generated id plus the listing sort helper.
	for _, name := range []string{"skills", "experience", "education", "languages"} {
		_, err := db.Collection(name).Indexes().CreateMany(ctx, []mongo.IndexModel{
			{
				Keys:    bson.D{{Key: "id", Value: 1}},
				Options: options.Index().SetName("uniq_id").SetUnique(true),
			},
			{
				Keys:    bson.D{{Key: "order", Value: 1}, {Key: "created_at", Value: 1}},
				Options: options.Index().SetName("by_display_order"),
			},
		})
		if err != nil {
			return err
		}
	}

	// personal_info: the unique singleton guard backing the upsert, so the
	// collection can never hold two documents.
	_, err := db.Collection("personal_info").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "singleton", Value: 1}},
			Options: options.Index().SetName("uniq_singleton").SetUnique(true),
		},
	})
	if err != nil {
		return err
	}

	// contact_messages: inbox reads newest first.
	_, err = db.Collection("contact_messages").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetName("uniq_id").SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "created_at", Value: -1}},
			Options: options.Index().SetName("by_created_desc"),
		},
	})
	return err
}
