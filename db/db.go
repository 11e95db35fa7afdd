package db

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names
const (
	ColUsers    = "users"
	ColTemples  = "temples"
	ColProducts = "products"
	ColCarts    = "carts"
)

// Store wraps the Mongo client and exposes one repository per collection.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

func Connect(uri, dbName string) (*Store, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("db: connect failed: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("db: ping failed: %w", err)
	}

	s := &Store{client: client, db: client.Database(dbName)}

	if err := s.ensureIndexes(ctx); err != nil {
		log.Printf("WARNING: db: ensure indexes failed: %v", err)
	}

	return s, nil
}

func (s *Store) Disconnect(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

func (s *Store) col(name string) *mongo.Collection {
	return s.db.Collection(name)
}

func (s *Store) ensureIndexes(ctx context.Context) error {
	type idx struct {
		col    string
		keys   bson.D
		unique bool
	}

	indexes := []idx{
		{ColUsers, bson.D{{Key: "email", Value: 1}}, true},
		{ColUsers, bson.D{{Key: "booking_history.payment_id", Value: 1}}, false},
		{ColCarts, bson.D{{Key: "user_id", Value: 1}}, true},
		{ColTemples, bson.D{{Key: "created_by", Value: 1}}, false},
	}

	for _, i := range indexes {
		model := mongo.IndexModel{
			Keys:    i.keys,
			Options: options.Index().SetUnique(i.unique),
		}
		if _, err := s.col(i.col).Indexes().CreateOne(ctx, model); err != nil {
			return err
		}
	}
	return nil
}
