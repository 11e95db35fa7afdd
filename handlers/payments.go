package handlers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"templeconnect/db"
	"templeconnect/models"
	"templeconnect/services"

	"github.com/gin-gonic/gin"
)

// MinOrderAmount is the smallest order the provider accepts from us, in
// currency subunits (1000 paise = Rs. 10).
const MinOrderAmount = 1000

type InitializePaymentInput struct {
	Amount     int64  `json:"amount"`
	Currency   string `json:"currency"`
	TempleName string `json:"templeName"`
	Type       string `json:"type"`
	UserID     string `json:"userId"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	TempleID   string `json:"templeId"`
	PoojaID    string `json:"poojaId"`
}

// InitializePayment creates a provider-side order for the fee-inclusive
// amount. Nothing is persisted locally: the payment only enters the ledger
// once the callback signature verifies.
func (h *Handler) InitializePayment(c *gin.Context) {
	var input InitializePaymentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}

	if input.Amount == 0 || input.Type == "" || input.UserID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	if input.Amount < MinOrderAmount {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Minimum payment amount is Rs. 10"})
		return
	}

	currency := input.Currency
	if currency == "" {
		currency = "INR"
	}

	order, err := h.Orders.CreateOrder(input.Amount, currency, services.NewReceipt())
	if err != nil {
		fmt.Printf("Error creating provider order: %v\n", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to initialize payment"})
		return
	}

	c.JSON(http.StatusOK, models.InitializePaymentResponse{
		OrderID:  order.ID,
		Amount:   order.Amount,
		Currency: order.Currency,
	})
}

type VerifyPaymentInput struct {
	RazorpayOrderID   string `json:"razorpay_order_id"`
	RazorpayPaymentID string `json:"razorpay_payment_id"`
	RazorpaySignature string `json:"razorpay_signature"`
	UserID            string `json:"userId"`
	Type              string `json:"type"`
	Amount            int    `json:"amount"`
	TempleName        string `json:"templeName"`
	PoojaID           string `json:"poojaId"`
	TempleID          string `json:"templeId"`
}

// VerifyPayment checks the provider callback signature and records the
// booking. The write is keyed on the provider payment id, so a replayed
// callback is acknowledged without appending a second entry.
func (h *Handler) VerifyPayment(c *gin.Context) {
	var input VerifyPaymentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}

	if input.RazorpayOrderID == "" || input.RazorpayPaymentID == "" || input.UserID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	// Signature mismatch means the callback cannot be trusted. Reject and
	// write nothing.
	if !services.VerifyPaymentSignature(input.RazorpayOrderID, input.RazorpayPaymentID, input.RazorpaySignature, h.RazorpaySecret) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payment signature"})
		return
	}

	entry := models.BookingHistoryEntry{
		Type:       input.Type,
		Amount:     input.Amount,
		TempleName: input.TempleName,
		PoojaID:    input.PoojaID,
		TempleID:   input.TempleID,
		PaymentID:  input.RazorpayPaymentID,
		OrderID:    input.RazorpayOrderID,
		Date:       time.Now(),
		Status:     models.BookingStatusCompleted,
	}

	// A verified subscription purchase also flips the stored plan.
	promote := input.Type == models.BookingTypeSubscription

	added, err := h.Users.AppendBooking(c.Request.Context(), input.UserID, entry, promote)
	if err != nil {
		if err == db.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		fmt.Printf("Error recording booking: %v\n", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to verify payment"})
		return
	}

	if !added {
		fmt.Printf("Duplicate verify suppressed for payment %s\n", entry.PaymentID)
	}

	if added && (h.Features.ReceiptEmailEnabled || h.Features.SlackAlertsEnabled) {
		// Fire-and-forget notifications; the store write above is the
		// source of truth.
		features := h.Features
		userID := input.UserID
		go func() {
			defer func() {
				if r := recover(); r != nil {
					fmt.Printf("Notification panic recovered: %v\n", r)
				}
			}()

			user, err := h.Users.GetUserByID(context.Background(), userID)
			if err != nil {
				fmt.Printf("Error fetching user for notifications: %v\n", err)
				return
			}
			if features.ReceiptEmailEnabled {
				services.SendBookingReceipt(*user, entry)
			}
			if features.SlackAlertsEnabled {
				services.SendPaymentNotification(entry, user.Email)
			}
		}()
	}

	c.JSON(http.StatusOK, models.VerifyPaymentResponse{
		Message:   "Payment verified successfully",
		PaymentID: input.RazorpayPaymentID,
	})
}
