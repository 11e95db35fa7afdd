package services

import (
	"fmt"
	"time"

	razorpay "github.com/razorpay/razorpay-go"
)

// ProviderOrder is the provider-side resource created before checkout opens.
type ProviderOrder struct {
	ID       string
	Amount   int64
	Currency string
}

// OrderCreator sits between the handlers and the provider SDK so the
// payment flow can be exercised without network access.
type OrderCreator interface {
	CreateOrder(amount int64, currency, receipt string) (ProviderOrder, error)
}

type RazorpayOrders struct {
	client *razorpay.Client
}

func NewRazorpayOrders(keyID, keySecret string) *RazorpayOrders {
	return &RazorpayOrders{client: razorpay.NewClient(keyID, keySecret)}
}

func (r *RazorpayOrders) CreateOrder(amount int64, currency, receipt string) (ProviderOrder, error) {
	data := map[string]interface{}{
		"amount":   amount,
		"currency": currency,
		"receipt":  receipt,
	}

	body, err := r.client.Order.Create(data, nil)
	if err != nil {
		return ProviderOrder{}, fmt.Errorf("provider order create failed: %w", err)
	}

	id, ok := body["id"].(string)
	if !ok || id == "" {
		return ProviderOrder{}, fmt.Errorf("provider order create returned no id")
	}

	return ProviderOrder{ID: id, Amount: amount, Currency: currency}, nil
}

// NewReceipt tags a provider order with a locally generated receipt string.
func NewReceipt() string {
	return fmt.Sprintf("rcpt_%d", time.Now().UnixMilli())
}
