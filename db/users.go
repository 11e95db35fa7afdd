package db

import (
	"context"
	"time"

	"templeconnect/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func (s *Store) CreateUser(ctx context.Context, user *models.User) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	_, err := s.col(ColUsers).InsertOne(ctx, user)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicate
	}
	return err
}

func (s *Store) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var user models.User
	err := s.col(ColUsers).FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Store) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var user models.User
	err = s.col(ColUsers).FindOne(ctx, bson.M{"_id": oid}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Store) SetPlan(ctx context.Context, userID, plan string) error {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return ErrNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := s.col(ColUsers).UpdateByID(ctx, oid, bson.M{"$set": bson.M{"plan": plan}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) AppendBooking(ctx context.Context, userID string, entry models.BookingHistoryEntry, promotePlan bool) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return false, ErrNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	// Filter out users that already carry this payment id so a replayed
	// callback matches zero documents instead of appending twice.
	filter := bson.M{
		"_id":                        oid,
		"booking_history.payment_id": bson.M{"$ne": entry.PaymentID},
	}
	update := bson.M{"$push": bson.M{"booking_history": entry}}
	if promotePlan {
		update["$set"] = bson.M{"plan": models.PlanPremium}
	}

	res, err := s.col(ColUsers).UpdateOne(ctx, filter, update)
	if err != nil {
		return false, err
	}
	if res.MatchedCount == 0 {
		// Either the user does not exist or the entry is a duplicate.
		var exists models.User
		err := s.col(ColUsers).FindOne(ctx, bson.M{"_id": oid}).Decode(&exists)
		if err == mongo.ErrNoDocuments {
			return false, ErrNotFound
		}
		if err != nil {
			return false, err
		}
		return false, nil
	}
	return true, nil
}
