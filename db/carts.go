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

// GetCart returns the user's cart, creating an empty one on first access.
func (s *Store) GetCart(ctx context.Context, userID string) (*models.Cart, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, ErrNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"user_id": oid}
	update := bson.M{"$setOnInsert": bson.M{"user_id": oid, "items": []models.CartItem{}}}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var cart models.Cart
	if err := s.col(ColCarts).FindOneAndUpdate(ctx, filter, update, opts).Decode(&cart); err != nil {
		return nil, err
	}
	if cart.Items == nil {
		cart.Items = []models.CartItem{}
	}
	return &cart, nil
}

func (s *Store) AddItem(ctx context.Context, userID, productID string) (*models.Cart, error) {
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, ErrNotFound
	}
	pid, err := primitive.ObjectIDFromHex(productID)
	if err != nil {
		return nil, ErrNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	// Bump quantity if the product is already in the cart.
	res, err := s.col(ColCarts).UpdateOne(ctx,
		bson.M{"user_id": uid, "items.product_id": pid},
		bson.M{"$inc": bson.M{"items.$.quantity": 1}},
	)
	if err != nil {
		return nil, err
	}

	if res.MatchedCount == 0 {
		item := models.CartItem{ProductID: pid, Quantity: 1}
		opts := options.Update().SetUpsert(true)
		if _, err := s.col(ColCarts).UpdateOne(ctx,
			bson.M{"user_id": uid},
			bson.M{"$push": bson.M{"items": item}},
			opts,
		); err != nil {
			return nil, err
		}
	}

	var cart models.Cart
	err = s.col(ColCarts).FindOne(ctx, bson.M{"user_id": uid}).Decode(&cart)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

func (s *Store) ClearCart(ctx context.Context, userID string) error {
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return ErrNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err = s.col(ColCarts).UpdateOne(ctx,
		bson.M{"user_id": uid},
		bson.M{"$set": bson.M{"items": []models.CartItem{}}},
	)
	return err
}
