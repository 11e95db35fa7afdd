package config

import "os"

type Features struct {
	BillingEnabled      bool
	ReceiptEmailEnabled bool
	SlackAlertsEnabled  bool
}

func LoadFeatures() Features {
	return Features{
		BillingEnabled:      os.Getenv("BILLING_ENABLED") == "true",
		ReceiptEmailEnabled: os.Getenv("RECEIPT_EMAIL_ENABLED") == "true",
		SlackAlertsEnabled:  os.Getenv("SLACK_WEBHOOK_URL") != "",
	}
}
