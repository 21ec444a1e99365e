package config

import (
	"context"
	"errors"
	"time"

	mongorepo "github.com/yoockh/admissions/internal/repositories/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func EnsureMongoIndexes(ctx context.Context, db *mongo.Database) error {
	if db == nil {
		return errors.New("mongo database is nil; call NewMongo first")
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	events := db.Collection(mongorepo.EventsCollection)
	_, err := events.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "application_id", Value: 1}, {Key: "at", Value: -1}},
			Options: options.Index().SetName("by_application_at"),
		},
		{
			Keys:    bson.D{{Key: "type", Value: 1}, {Key: "at", Value: -1}},
			Options: options.Index().SetName("by_type_at"),
		},
	})
	return err
}
