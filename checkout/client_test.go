package checkout

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientInitializePayment(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/payment/initialize", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req InitializePaymentRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, int64(17100), req.Amount)

		json.NewEncoder(w).Encode(InitializePaymentResponse{
			OrderID: "order_1", Amount: req.Amount, Currency: "INR",
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	resp, err := client.InitializePayment(context.Background(), InitializePaymentRequest{
		Amount: 17100, Currency: "INR", UserID: "u1", Type: "Pooja",
	})
	require.NoError(t, err)
	assert.Equal(t, "order_1", resp.OrderID)
}

func TestClientSurfacesAPIErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": "Invalid payment signature"})
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	_, err := client.VerifyPayment(context.Background(), VerifyPaymentRequest{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid payment signature")
}
