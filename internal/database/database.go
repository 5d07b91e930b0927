// Package database provides MongoDB connection management for the application.
package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"commune/internal/config"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Collection names used by the application.
const (
	UsersCollection = "users"
	PostsCollection = "posts"
)

// Connect establishes a MongoDB connection and verifies it with a ping.
// The returned database handle is safe for concurrent use.
func Connect(cfg *config.Config) (*mongo.Database, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	log.Println("MongoDB connected successfully")
	return client.Database(cfg.MongoDatabase), nil
}

// Disconnect closes the underlying client of the given database handle.
func Disconnect(ctx context.Context, db *mongo.Database) error {
	if db == nil {
		return nil
	}
	return db.Client().Disconnect(ctx)
}
