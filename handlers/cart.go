package handlers

import (
	"net/http"

	"templeconnect/db"
	"templeconnect/models"

	"github.com/gin-gonic/gin"
)

type AddToCartInput struct {
	ProductID string `json:"productId"`
}

func (h *Handler) GetCart(c *gin.Context) {
	userID, ok := userIDFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	cart, err := h.Carts.GetCart(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
		return
	}
	c.JSON(http.StatusOK, cart)
}

func (h *Handler) AddToCart(c *gin.Context) {
	userID, ok := userIDFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var input AddToCartInput
	if err := c.ShouldBindJSON(&input); err != nil || input.ProductID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Product ID is required"})
		return
	}

	// The product must exist before it lands in anyone's cart.
	if _, err := h.Products.GetProduct(c.Request.Context(), input.ProductID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	cart, err := h.Carts.AddItem(c.Request.Context(), userID, input.ProductID)
	if err != nil {
		if err == db.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add to cart"})
		return
	}
	c.JSON(http.StatusOK, cart)
}

func (h *Handler) CheckoutCart(c *gin.Context) {
	userID, ok := userIDFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	if err := h.Carts.ClearCart(c.Request.Context(), userID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process checkout"})
		return
	}
	c.JSON(http.StatusOK, models.CheckoutCartResponse{Message: "Checkout successful, cart cleared"})
}
