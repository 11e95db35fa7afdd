package checkout

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

type InitializePaymentRequest struct {
	Amount     int64  `json:"amount"`
	Currency   string `json:"currency"`
	TempleName string `json:"templeName"`
	Type       string `json:"type"`
	UserID     string `json:"userId"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	TempleID   string `json:"templeId,omitempty"`
	PoojaID    string `json:"poojaId,omitempty"`
}

type InitializePaymentResponse struct {
	OrderID  string `json:"orderId"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

type VerifyPaymentRequest struct {
	RazorpayOrderID   string `json:"razorpay_order_id"`
	RazorpayPaymentID string `json:"razorpay_payment_id"`
	RazorpaySignature string `json:"razorpay_signature"`
	UserID            string `json:"userId"`
	Type              string `json:"type"`
	Amount            int    `json:"amount"`
	TempleName        string `json:"templeName"`
	PoojaID           string `json:"poojaId,omitempty"`
	TempleID          string `json:"templeId,omitempty"`
}

type VerifyPaymentResponse struct {
	Message   string `json:"message"`
	PaymentID string `json:"paymentId"`
}

// Client is a typed HTTP client for the payment endpoints.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *Client) InitializePayment(ctx context.Context, req InitializePaymentRequest) (InitializePaymentResponse, error) {
	var resp InitializePaymentResponse
	err := c.post(ctx, "/api/payment/initialize", req, &resp)
	return resp, err
}

func (c *Client) VerifyPayment(ctx context.Context, req VerifyPaymentRequest) (VerifyPaymentResponse, error) {
	var resp VerifyPaymentResponse
	err := c.post(ctx, "/api/payment/verify", req, &resp)
	return resp, err
}

func (c *Client) post(ctx context.Context, path string, body, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+path, bytes.NewBuffer(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var apiErr struct {
			Error string `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Error != "" {
			return fmt.Errorf("%s: %s", resp.Status, apiErr.Error)
		}
		return fmt.Errorf("%s %s: status %d", http.MethodPost, path, resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
