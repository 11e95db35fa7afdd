// Package checkout drives a single payment attempt end to end: compute the
// fee-inclusive total, create a provider order, hand control to the
// provider's checkout UI, then verify the callback with the API. One flow
// per attempt, no internal concurrency, no automatic retry.
package checkout

import (
	"context"
	"errors"
	"fmt"

	"templeconnect/services"
)

type State int

const (
	StateIdle State = iota
	StateAwaitingOrder
	StateAwaitingProviderUI
	StateAwaitingVerification
	StateCompleted
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateAwaitingOrder:
		return "awaiting_order"
	case StateAwaitingProviderUI:
		return "awaiting_provider_ui"
	case StateAwaitingVerification:
		return "awaiting_verification"
	case StateCompleted:
		return "completed"
	case StateFailed:
		return "failed"
	}
	return "unknown"
}

// ErrDismissed is returned when the user closes the provider UI before
// paying. The flow returns to idle and nothing is recorded server-side.
var ErrDismissed = errors.New("checkout dismissed")

// API is the server contract the flow talks to. *Client implements it.
type API interface {
	InitializePayment(ctx context.Context, req InitializePaymentRequest) (InitializePaymentResponse, error)
	VerifyPayment(ctx context.Context, req VerifyPaymentRequest) (VerifyPaymentResponse, error)
}

// CheckoutOptions prefill the provider's modal.
type CheckoutOptions struct {
	OrderID     string
	Amount      int64
	Currency    string
	Description string
	PayerName   string
	PayerEmail  string
}

// CallbackPayload is what the provider UI hands back on success.
type CallbackPayload struct {
	OrderID   string
	PaymentID string
	Signature string
}

// Provider abstracts the hosted checkout UI. Open blocks until the user
// completes or dismisses it; dismissal is reported as ErrDismissed.
type Provider interface {
	Open(ctx context.Context, opts CheckoutOptions) (CallbackPayload, error)
}

// Booking describes the payment intent the user confirmed.
type Booking struct {
	BaseAmount int // whole rupees, before fees
	Type       string
	TempleName string
	TempleID   string
	PoojaID    string
	UserID     string
	PayerName  string
	PayerEmail string
	PayerPlan  string
}

type Receipt struct {
	PaymentID    string
	Fees         services.FeeBreakdown
	RedirectPath string
}

type Flow struct {
	api      API
	provider Provider
	state    State
}

func NewFlow(api API, provider Provider) *Flow {
	return &Flow{api: api, provider: provider, state: StateIdle}
}

func (f *Flow) State() State {
	return f.state
}

// Run executes one checkout attempt. Any failure surfaces as the returned
// error with the flow left in StateFailed; a dismissed modal returns
// ErrDismissed with the flow back at StateIdle.
func (f *Flow) Run(ctx context.Context, booking Booking) (Receipt, error) {
	if f.state != StateIdle {
		return Receipt{}, fmt.Errorf("checkout already in progress (state %s)", f.state)
	}

	fees := services.ComputeTotal(booking.BaseAmount, services.FeeExempt(booking.PayerPlan, booking.Type))

	f.state = StateAwaitingOrder
	order, err := f.api.InitializePayment(ctx, InitializePaymentRequest{
		Amount:     int64(fees.Total) * 100, // provider wants subunits
		Currency:   "INR",
		TempleName: booking.TempleName,
		Type:       booking.Type,
		UserID:     booking.UserID,
		Name:       booking.PayerName,
		Email:      booking.PayerEmail,
		TempleID:   booking.TempleID,
		PoojaID:    booking.PoojaID,
	})
	if err != nil {
		f.state = StateFailed
		return Receipt{}, fmt.Errorf("initialize payment: %w", err)
	}

	f.state = StateAwaitingProviderUI
	payload, err := f.provider.Open(ctx, CheckoutOptions{
		OrderID:     order.OrderID,
		Amount:      order.Amount,
		Currency:    order.Currency,
		Description: fmt.Sprintf("%s for %s", booking.Type, booking.TempleName),
		PayerName:   booking.PayerName,
		PayerEmail:  booking.PayerEmail,
	})
	if errors.Is(err, ErrDismissed) {
		// User backed out; no order cancellation call exists, the
		// unpaid order simply expires provider-side.
		f.state = StateIdle
		return Receipt{}, ErrDismissed
	}
	if err != nil {
		f.state = StateFailed
		return Receipt{}, fmt.Errorf("provider checkout: %w", err)
	}

	f.state = StateAwaitingVerification
	verified, err := f.api.VerifyPayment(ctx, VerifyPaymentRequest{
		RazorpayOrderID:   payload.OrderID,
		RazorpayPaymentID: payload.PaymentID,
		RazorpaySignature: payload.Signature,
		UserID:            booking.UserID,
		Type:              booking.Type,
		Amount:            fees.Total,
		TempleName:        booking.TempleName,
		PoojaID:           booking.PoojaID,
		TempleID:          booking.TempleID,
	})
	if err != nil {
		f.state = StateFailed
		return Receipt{}, fmt.Errorf("verify payment: %w", err)
	}

	f.state = StateCompleted
	return Receipt{
		PaymentID:    verified.PaymentID,
		Fees:         fees,
		RedirectPath: "/receipt/" + verified.PaymentID,
	}, nil
}

// Reset returns a finished or failed flow to idle so it can run again.
func (f *Flow) Reset() {
	f.state = StateIdle
}
