//go:build unit

package gateway_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"plugin-storefront/internal/infra/gateway"
	"plugin-storefront/internal/pkg/config"
	"plugin-storefront/internal/usecase/shared"
	"plugin-storefront/tests/common/kvtest"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClient(baseURL string) *gateway.Client {
	cfg := config.NewTestConfig().Gateway
	cfg.BaseURL = baseURL
	cfg.Timeout = time.Second
	return gateway.NewClient(cfg, kvtest.DiscardLogger())
}

func sessionRequest() shared.CheckoutSessionRequest {
	return shared.CheckoutSessionRequest{
		ProductID:     "foam",
		ProductName:   "Foam",
		Amount:        decimal.RequireFromString("23.20"),
		Currency:      "USD",
		CustomerEmail: "buyer@example.com",
		PromoCode:     "KVRFOAM",
		Metadata:      map[string]string{"product_id": "foam", "promo_code": "KVRFOAM"},
	}
}

func TestClient_CreateCheckoutSession(t *testing.T) {
	t.Run("posts minor units with bearer key", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/v1/checkout/sessions", r.URL.Path)
			assert.Equal(t, "Bearer test-api-key", r.Header.Get("Authorization"))

			var body map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.InDelta(t, 2320, body["amount"], 0)
			assert.Equal(t, "usd", body["currency"])
			assert.Equal(t, "buyer@example.com", body["customer_email"])
			metadata, _ := body["metadata"].(map[string]any)
			assert.Equal(t, "KVRFOAM", metadata["promo_code"])

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"id":"cs_123","url":"https://pay.example.com/cs_123"}`))
		}))
		defer server.Close()

		session, err := newClient(server.URL).CreateCheckoutSession(t.Context(), sessionRequest())
		require.NoError(t, err)
		assert.Equal(t, "cs_123", session.ID)
		assert.Equal(t, "https://pay.example.com/cs_123", session.URL)
	})

	t.Run("non-2xx is an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			_, _ = w.Write([]byte(`{"error":{"message":"card network down"}}`))
		}))
		defer server.Close()

		_, err := newClient(server.URL).CreateCheckoutSession(t.Context(), sessionRequest())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "card network down")
	})

	t.Run("incomplete session is an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"id":"cs_1"}`))
		}))
		defer server.Close()

		_, err := newClient(server.URL).CreateCheckoutSession(t.Context(), sessionRequest())
		assert.Error(t, err)
	})

	t.Run("slow gateway times out", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-r.Context().Done():
			case <-time.After(3 * time.Second):
			}
		}))
		defer server.Close()

		_, err := newClient(server.URL).CreateCheckoutSession(t.Context(), sessionRequest())
		assert.Error(t, err)
	})
}

func TestSignature(t *testing.T) {
	payload := []byte(`{"id":"evt_1"}`)
	sig := gateway.Sign("secret", payload)

	assert.True(t, gateway.VerifySignature("secret", payload, sig))
	assert.False(t, gateway.VerifySignature("other", payload, sig))
	assert.False(t, gateway.VerifySignature("secret", []byte(`{"id":"evt_2"}`), sig))
	assert.False(t, gateway.VerifySignature("secret", payload, "zz-not-hex"))
}
