package services

import (
	"fmt"
	"os"
	"time"

	"templeconnect/models"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendBookingReceipt emails the payer a receipt for a verified payment.
// Best effort: the booking record in the store is the source of truth and
// the email is skipped silently when SendGrid is not configured.
func SendBookingReceipt(user models.User, entry models.BookingHistoryEntry) {
	apiKey := os.Getenv("SENDGRID_API_KEY")
	fromEmail := os.Getenv("RECEIPT_FROM_EMAIL")

	if apiKey == "" || fromEmail == "" {
		fmt.Println("Missing SendGrid config, skipping receipt email")
		return
	}

	subject := fmt.Sprintf("Payment confirmed: %s", entry.Type)
	if entry.TempleName != "" && entry.Type != models.BookingTypeSubscription {
		subject = fmt.Sprintf("Payment confirmed: %s at %s", entry.Type, entry.TempleName)
	}

	plainTextContent := fmt.Sprintf(`Namaste %s,

Your payment has been verified.

RECEIPT:
Type: %s
Temple: %s
Amount: Rs. %d
Date: %s

Payment ID: %s
Order ID: %s

Thank you for using TempleConnect.`,
		user.DisplayName,
		entry.Type,
		entry.TempleName,
		entry.Amount,
		entry.Date.Format(time.RFC3339),
		entry.PaymentID,
		entry.OrderID,
	)

	from := mail.NewEmail("TempleConnect", fromEmail)
	to := mail.NewEmail(user.DisplayName, user.Email)
	message := mail.NewSingleEmail(from, subject, to, plainTextContent, plainTextContent)
	client := sendgrid.NewSendClient(apiKey)

	response, err := client.Send(message)
	if err != nil {
		fmt.Printf("Error sending receipt email: %v\n", err)
	} else {
		fmt.Printf("Receipt email sent. Status Code: %d\n", response.StatusCode)
	}
}
