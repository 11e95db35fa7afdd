package checkout

import (
	"context"
	"errors"
	"testing"

	"templeconnect/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAPI struct {
	initReq    *InitializePaymentRequest
	initErr    error
	verifyReq  *VerifyPaymentRequest
	verifyErr  error
	verifyResp VerifyPaymentResponse
}

func (f *fakeAPI) InitializePayment(ctx context.Context, req InitializePaymentRequest) (InitializePaymentResponse, error) {
	f.initReq = &req
	if f.initErr != nil {
		return InitializePaymentResponse{}, f.initErr
	}
	return InitializePaymentResponse{OrderID: "order_1", Amount: req.Amount, Currency: req.Currency}, nil
}

func (f *fakeAPI) VerifyPayment(ctx context.Context, req VerifyPaymentRequest) (VerifyPaymentResponse, error) {
	f.verifyReq = &req
	if f.verifyErr != nil {
		return VerifyPaymentResponse{}, f.verifyErr
	}
	if f.verifyResp.PaymentID == "" {
		f.verifyResp = VerifyPaymentResponse{Message: "Payment verified successfully", PaymentID: req.RazorpayPaymentID}
	}
	return f.verifyResp, nil
}

type fakeProvider struct {
	opts    *CheckoutOptions
	payload CallbackPayload
	err     error
	states  []State
	flow    *Flow
}

func (f *fakeProvider) Open(ctx context.Context, opts CheckoutOptions) (CallbackPayload, error) {
	f.opts = &opts
	if f.flow != nil {
		f.states = append(f.states, f.flow.State())
	}
	if f.err != nil {
		return CallbackPayload{}, f.err
	}
	if f.payload.OrderID == "" {
		f.payload = CallbackPayload{OrderID: opts.OrderID, PaymentID: "pay_1", Signature: "sig_1"}
	}
	return f.payload, nil
}

func freeBooking() Booking {
	return Booking{
		BaseAmount: 101,
		Type:       models.BookingTypePooja,
		TempleName: "Sri Ranganathaswamy",
		PoojaID:    "p42",
		UserID:     "64a000000000000000000001",
		PayerName:  "Asha Iyer",
		PayerEmail: "asha@example.com",
		PayerPlan:  models.PlanFree,
	}
}

func TestFlowHappyPath(t *testing.T) {
	api := &fakeAPI{}
	provider := &fakeProvider{}
	flow := NewFlow(api, provider)
	provider.flow = flow

	receipt, err := flow.Run(context.Background(), freeBooking())
	require.NoError(t, err)

	// Fees: 101 + 40 + 30 = 171 rupees, 17100 paise on the wire.
	require.NotNil(t, api.initReq)
	assert.Equal(t, int64(17100), api.initReq.Amount)
	assert.Equal(t, "INR", api.initReq.Currency)
	assert.Equal(t, "Asha Iyer", api.initReq.Name)

	// Provider modal opened while awaiting its result, prefilled.
	require.NotNil(t, provider.opts)
	assert.Equal(t, "order_1", provider.opts.OrderID)
	assert.Equal(t, "asha@example.com", provider.opts.PayerEmail)
	assert.Equal(t, []State{StateAwaitingProviderUI}, provider.states)

	// Verification got the callback payload plus original metadata.
	require.NotNil(t, api.verifyReq)
	assert.Equal(t, "pay_1", api.verifyReq.RazorpayPaymentID)
	assert.Equal(t, "sig_1", api.verifyReq.RazorpaySignature)
	assert.Equal(t, 171, api.verifyReq.Amount)
	assert.Equal(t, "p42", api.verifyReq.PoojaID)

	assert.Equal(t, StateCompleted, flow.State())
	assert.Equal(t, "pay_1", receipt.PaymentID)
	assert.Equal(t, "/receipt/pay_1", receipt.RedirectPath)
	assert.Equal(t, 171, receipt.Fees.Total)
}

func TestFlowSubscriptionIsFeeFree(t *testing.T) {
	api := &fakeAPI{}
	flow := NewFlow(api, &fakeProvider{})

	booking := freeBooking()
	booking.Type = models.BookingTypeSubscription
	booking.BaseAmount = 499
	booking.TempleName = ""

	receipt, err := flow.Run(context.Background(), booking)
	require.NoError(t, err)
	assert.Equal(t, int64(49900), api.initReq.Amount)
	assert.Equal(t, 0, receipt.Fees.PlatformFee)
	assert.Equal(t, 499, receipt.Fees.Total)
}

func TestFlowPremiumUserPaysNoFees(t *testing.T) {
	api := &fakeAPI{}
	flow := NewFlow(api, &fakeProvider{})

	booking := freeBooking()
	booking.PayerPlan = models.PlanPremium

	receipt, err := flow.Run(context.Background(), booking)
	require.NoError(t, err)
	assert.Equal(t, int64(10100), api.initReq.Amount)
	assert.Equal(t, 101, receipt.Fees.Total)
}

func TestFlowInitializeFailure(t *testing.T) {
	api := &fakeAPI{initErr: errors.New("order create failed")}
	provider := &fakeProvider{}
	flow := NewFlow(api, provider)

	_, err := flow.Run(context.Background(), freeBooking())
	require.Error(t, err)
	assert.Equal(t, StateFailed, flow.State())
	assert.Nil(t, provider.opts, "provider UI must not open without an order")

	flow.Reset()
	assert.Equal(t, StateIdle, flow.State())
}

func TestFlowProviderFailure(t *testing.T) {
	api := &fakeAPI{}
	provider := &fakeProvider{err: errors.New("payment.failed")}
	flow := NewFlow(api, provider)

	_, err := flow.Run(context.Background(), freeBooking())
	require.Error(t, err)
	assert.Equal(t, StateFailed, flow.State())
	assert.Nil(t, api.verifyReq, "no verification attempt after a failed payment")
}

func TestFlowDismissReturnsToIdle(t *testing.T) {
	api := &fakeAPI{}
	provider := &fakeProvider{err: ErrDismissed}
	flow := NewFlow(api, provider)

	_, err := flow.Run(context.Background(), freeBooking())
	assert.ErrorIs(t, err, ErrDismissed)
	assert.Equal(t, StateIdle, flow.State())
	assert.Nil(t, api.verifyReq)

	// Flow is immediately reusable after a dismissal.
	provider.err = nil
	_, err = flow.Run(context.Background(), freeBooking())
	assert.NoError(t, err)
	assert.Equal(t, StateCompleted, flow.State())
}

func TestFlowVerifyFailure(t *testing.T) {
	api := &fakeAPI{verifyErr: errors.New("400 Bad Request: Invalid payment signature")}
	flow := NewFlow(api, &fakeProvider{})

	_, err := flow.Run(context.Background(), freeBooking())
	require.Error(t, err)
	assert.Equal(t, StateFailed, flow.State())
}

func TestFlowRejectsConcurrentRun(t *testing.T) {
	flow := NewFlow(&fakeAPI{}, &fakeProvider{})
	flow.state = StateAwaitingProviderUI

	_, err := flow.Run(context.Background(), freeBooking())
	assert.Error(t, err)
}
