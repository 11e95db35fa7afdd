package handlers

import (
	"net/http"

	"templeconnect/models"

	"github.com/gin-gonic/gin"
)

// ListBookings returns the authenticated user's booking history, newest
// first.
func (h *Handler) ListBookings(c *gin.Context) {
	userID, ok := userIDFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	user, err := h.Users.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	bookings := make([]models.BookingHistoryEntry, 0, len(user.BookingHistory))
	for i := len(user.BookingHistory) - 1; i >= 0; i-- {
		bookings = append(bookings, user.BookingHistory[i])
	}

	c.JSON(http.StatusOK, bookings)
}

// GetReceipt looks up one booking entry by provider payment id. Only the
// owner sees it.
func (h *Handler) GetReceipt(c *gin.Context) {
	userID, ok := userIDFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	paymentID := c.Param("paymentId")

	user, err := h.Users.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	for _, entry := range user.BookingHistory {
		if entry.PaymentID == paymentID {
			c.JSON(http.StatusOK, entry)
			return
		}
	}

	c.JSON(http.StatusNotFound, gin.H{"error": "Receipt not found"})
}
