package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"templeconnect/models"
)

// SendPaymentNotification posts a verified payment to the ops Slack channel.
// Runs fire-and-forget from the verify handler.
func SendPaymentNotification(entry models.BookingHistoryEntry, userEmail string) {
	// Safety: Recover from any panic to avoid crashing the worker
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("Slack panic recovered: %v\n", r)
		}
	}()

	webhookURL := os.Getenv("SLACK_WEBHOOK_URL")
	if webhookURL == "" {
		fmt.Println("Slack skipped: SLACK_WEBHOOK_URL not set")
		return
	}

	payload := map[string]string{
		"text": fmt.Sprintf("Payment verified\n\nType: %s\nTemple: %s\nAmount: Rs. %d\nUser: %s\n\nPayment ID: %s",
			entry.Type,
			entry.TempleName,
			entry.Amount,
			userEmail,
			entry.PaymentID,
		),
	}

	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		fmt.Printf("Error marshaling Slack payload: %v\n", err)
		return
	}

	resp, err := http.Post(webhookURL, "application/json", bytes.NewBuffer(jsonPayload))
	if err != nil {
		fmt.Printf("Error sending Slack request: %v\n", err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		fmt.Printf("Slack API error: Status %d\n", resp.StatusCode)
	} else {
		fmt.Println("Slack payment notification sent")
	}
}
