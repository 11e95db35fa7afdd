package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	PlanFree    = "free"
	PlanPremium = "premium"

	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	ID             primitive.ObjectID    `bson:"_id,omitempty" json:"id"`
	DisplayName    string                `bson:"display_name" json:"displayName"`
	Email          string                `bson:"email" json:"email"`
	PasswordHash   string                `bson:"password_hash" json:"-"`
	Plan           string                `bson:"plan" json:"plan"`
	Role           string                `bson:"role" json:"role"`
	Bio            string                `bson:"bio,omitempty" json:"bio,omitempty"`
	BookingHistory []BookingHistoryEntry `bson:"booking_history,omitempty" json:"bookingHistory,omitempty"`
	CreatedAt      time.Time             `bson:"created_at" json:"createdAt"`
}

// Booking transaction types as sent by the client.
const (
	BookingTypePooja        = "Pooja"
	BookingTypeDonation     = "Donation"
	BookingTypeSubscription = "Premium Subscription"
)

// BookingHistoryEntry records one verified payment. Entries are keyed by
// PaymentID and never updated or deleted once written.
type BookingHistoryEntry struct {
	Type       string    `bson:"type" json:"type"`
	Amount     int       `bson:"amount" json:"amount"`
	TempleName string    `bson:"temple_name" json:"templeName"`
	PoojaID    string    `bson:"pooja_id,omitempty" json:"poojaId,omitempty"`
	TempleID   string    `bson:"temple_id,omitempty" json:"templeId,omitempty"`
	PaymentID  string    `bson:"payment_id" json:"paymentId"`
	OrderID    string    `bson:"order_id" json:"orderId"`
	Date       time.Time `bson:"date" json:"date"`
	Status     string    `bson:"status" json:"status"`
}

const (
	BookingStatusPending   = "pending"
	BookingStatusCompleted = "completed"
	BookingStatusFailed    = "failed"
)
