package db

import (
	"context"
	"time"

	"templeconnect/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (s *Store) CreateTemple(ctx context.Context, temple *models.Temple) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if temple.ID.IsZero() {
		temple.ID = primitive.NewObjectID()
	}
	_, err := s.col(ColTemples).InsertOne(ctx, temple)
	return err
}

func (s *Store) ListTemples(ctx context.Context) ([]models.Temple, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := s.col(ColTemples).Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	temples := []models.Temple{}
	if err := cursor.All(ctx, &temples); err != nil {
		return nil, err
	}
	return temples, nil
}

func (s *Store) GetTemple(ctx context.Context, id string) (*models.Temple, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var temple models.Temple
	err = s.col(ColTemples).FindOne(ctx, bson.M{"_id": oid}).Decode(&temple)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &temple, nil
}

func (s *Store) UpdateTemple(ctx context.Context, id string, update TempleUpdate) (*models.Temple, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	set := bson.M{}
	if update.Name != nil {
		set["name"] = *update.Name
	}
	if update.Location != nil {
		set["location"] = *update.Location
	}
	if update.Description != nil {
		set["description"] = *update.Description
	}
	if update.Lat != nil {
		set["lat"] = *update.Lat
	}
	if update.Lng != nil {
		set["lng"] = *update.Lng
	}
	if update.Contact != nil {
		set["contact"] = *update.Contact
	}
	if update.Poojas != nil {
		set["poojas"] = *update.Poojas
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var temple models.Temple
	err = s.col(ColTemples).FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&temple)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &temple, nil
}

func (s *Store) DeleteTemple(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := s.col(ColTemples).DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
