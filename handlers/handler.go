package handlers

import (
	"templeconnect/config"
	"templeconnect/db"
	"templeconnect/services"

	"github.com/gin-gonic/gin"
)

// Handler carries the injected repositories and provider client. Tests
// construct it directly with fakes.
type Handler struct {
	Users    db.UserStore
	Temples  db.TempleStore
	Products db.ProductStore
	Carts    db.CartStore
	Orders   services.OrderCreator

	JWTSecret      []byte
	RazorpaySecret string
	Features       config.Features
}

func New(store *db.Store, orders services.OrderCreator, cfg config.Config) *Handler {
	return &Handler{
		Users:          store,
		Temples:        store,
		Products:       store,
		Carts:          store,
		Orders:         orders,
		JWTSecret:      []byte(cfg.JWTSecret),
		RazorpaySecret: cfg.RazorpayKeySecret,
		Features:       config.LoadFeatures(),
	}
}

// userIDFrom pulls the authenticated user id set by the auth middleware.
func userIDFrom(c *gin.Context) (string, bool) {
	v, exists := c.Get("userID")
	if !exists {
		return "", false
	}
	id, ok := v.(string)
	return id, ok && id != ""
}
