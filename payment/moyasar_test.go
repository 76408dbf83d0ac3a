package payment

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapStatus(t *testing.T) {
	tests := []struct {
		gateway string
		want    string
	}{
		{"paid", StatusPaid},
		{"succeeded", StatusPaid},
		{"failed", StatusFailed},
		{"initiated", StatusInitiated},
		{"authorized", StatusInitiated},
		{"", StatusInitiated},
	}

	for _, tt := range tests {
		t.Run(tt.gateway, func(t *testing.T) {
			assert.Equal(t, tt.want, MapStatus(tt.gateway))
		})
	}
}

func TestVerifyWebhookToken(t *testing.T) {
	t.Setenv("MOYASAR_WEBHOOK_SECRET", "whsec_test")

	assert.True(t, VerifyWebhookToken("whsec_test"))
	assert.False(t, VerifyWebhookToken("whsec_wrong"))
	assert.False(t, VerifyWebhookToken(""))
}

func TestVerifyWebhookToken_NoSecretConfigured(t *testing.T) {
	t.Setenv("MOYASAR_WEBHOOK_SECRET", "")

	// Without a configured secret nothing verifies, not even empty input
	assert.False(t, VerifyWebhookToken(""))
	assert.False(t, VerifyWebhookToken("anything"))
}

func testCard() Card {
	return Card{Name: "Jane Roe", Number: "4111111111111111", CVC: "123", Month: 12, Year: 2030}
}

func TestCreatePayment_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/v1/payments", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, float64(2500), body["amount"])

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]any{"id": "inv_123", "status": "paid"})
	}))
	defer server.Close()

	t.Setenv("MOYASAR_BASE_URL", server.URL)
	t.Setenv("MOYASAR_API_KEY", "sk_test")

	result, err := NewClient().CreatePayment(ChargeRequest{
		Amount:   2500,
		Currency: "SAR",
		Card:     testCard(),
	})

	require.NoError(t, err)
	assert.Equal(t, "inv_123", result.InvoiceID)
	assert.Equal(t, StatusPaid, result.Status)
	assert.Equal(t, "paid", result.RawStatus)
}

func TestCreatePayment_DeclineIsNotAnAdapterFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"id": "inv_456", "status": "failed"})
	}))
	defer server.Close()

	t.Setenv("MOYASAR_BASE_URL", server.URL)
	t.Setenv("MOYASAR_API_KEY", "sk_test")

	result, err := NewClient().CreatePayment(ChargeRequest{Amount: 100, Currency: "SAR", Card: testCard()})

	require.NoError(t, err)
	assert.Equal(t, StatusFailed, result.Status)
}

func TestCreatePayment_GatewayError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"unavailable"}`, http.StatusServiceUnavailable)
	}))
	defer server.Close()

	t.Setenv("MOYASAR_BASE_URL", server.URL)
	t.Setenv("MOYASAR_API_KEY", "sk_test")

	_, err := NewClient().CreatePayment(ChargeRequest{Amount: 100, Currency: "SAR", Card: testCard()})

	assert.ErrorIs(t, err, ErrGatewayUnavailable)
}

func TestCreatePayment_MissingPaymentID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"status": "paid"})
	}))
	defer server.Close()

	t.Setenv("MOYASAR_BASE_URL", server.URL)
	t.Setenv("MOYASAR_API_KEY", "sk_test")

	_, err := NewClient().CreatePayment(ChargeRequest{Amount: 100, Currency: "SAR", Card: testCard()})

	assert.ErrorIs(t, err, ErrGatewayUnavailable)
}
