package models

// Response bodies returned by the API. Error responses stay as
// {"error": "..."} maps; successful responses use these shapes so the
// contract is explicit per endpoint.

type AuthResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
	User    *User  `json:"user,omitempty"`
}

type InitializePaymentResponse struct {
	OrderID  string `json:"orderId"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

type VerifyPaymentResponse struct {
	Message   string `json:"message"`
	PaymentID string `json:"paymentId"`
}

type CheckoutCartResponse struct {
	Message string `json:"message"`
}

type PlanInfo struct {
	Plan          string `json:"plan"`
	PlatformFee   int    `json:"platformFee"`
	ProcessingFee int    `json:"processingFee"`
}
