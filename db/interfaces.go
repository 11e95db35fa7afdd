package db

import (
	"context"
	"errors"

	"templeconnect/models"
)

var (
	ErrNotFound  = errors.New("not found")
	ErrDuplicate = errors.New("already exists")
)

// Repositories are injected into the handlers so nothing talks to a
// package-global database handle. *Store satisfies all of them.

type UserStore interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	SetPlan(ctx context.Context, userID, plan string) error

	// AppendBooking records a verified payment on the user. The write is
	// keyed on the entry's PaymentID: if the user already holds an entry
	// with that payment id nothing is written and added is false.
	// promotePlan additionally sets the user's plan to premium.
	AppendBooking(ctx context.Context, userID string, entry models.BookingHistoryEntry, promotePlan bool) (added bool, err error)
}

type TempleUpdate struct {
	Name        *string
	Location    *string
	Description *string
	Lat         *float64
	Lng         *float64
	Contact     *models.Contact
	Poojas      *[]models.Pooja
}

type TempleStore interface {
	CreateTemple(ctx context.Context, temple *models.Temple) error
	ListTemples(ctx context.Context) ([]models.Temple, error)
	GetTemple(ctx context.Context, id string) (*models.Temple, error)
	UpdateTemple(ctx context.Context, id string, update TempleUpdate) (*models.Temple, error)
	DeleteTemple(ctx context.Context, id string) error
}

type ProductStore interface {
	ListProducts(ctx context.Context) ([]models.Product, error)
	GetProduct(ctx context.Context, id string) (*models.Product, error)
	CreateProduct(ctx context.Context, product *models.Product) error
}

type CartStore interface {
	GetCart(ctx context.Context, userID string) (*models.Cart, error)
	AddItem(ctx context.Context, userID, productID string) (*models.Cart, error)
	ClearCart(ctx context.Context, userID string) error
}
