//go:build unit

package api_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"plugin-storefront/internal/domain/promo"
	"plugin-storefront/internal/handler/api"
	resdto "plugin-storefront/internal/handler/dto/response"
	"plugin-storefront/internal/pkg/errs"
	"plugin-storefront/internal/usecase/commands"
	"plugin-storefront/internal/usecase/shared"
	"plugin-storefront/tests/common/httptest"
	"plugin-storefront/tests/common/testutil"
	commandsmock "plugin-storefront/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CheckoutHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCheckout *commandsmock.MockCheckoutCommands
	mockPayments *commandsmock.MockPaymentCommands
	handler      *api.CheckoutHandler
}

func (s *CheckoutHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCheckout = commandsmock.NewMockCheckoutCommands(s.mockCtrl)
	s.mockPayments = commandsmock.NewMockPaymentCommands(s.mockCtrl)
	s.handler = api.NewCheckoutHandler(s.mockCheckout, s.mockPayments)

	s.router.POST("/checkout", s.handler.Create)
	s.router.POST("/webhooks/payment", s.handler.Webhook)
}

func (s *CheckoutHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCheckoutHandlerSuite(t *testing.T) {
	suite.Run(t, new(CheckoutHandlerTestSuite))
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *CheckoutHandlerTestSuite) TestCreate() {
	url := "/checkout"
	reqBody := map[string]any{"productId": "abracadabra", "email": "user@example.com", "promoCode": "ABRACADABRA20"}

	s.Run("success: returns 201 with session", func() {
		expires := time.Date(2026, 3, 1, 12, 15, 0, 0, time.UTC)
		s.mockCheckout.EXPECT().Checkout(gomock.Any(), commands.CheckoutInput{
			ProductID: "abracadabra",
			Email:     "user@example.com",
			PromoCode: "ABRACADABRA20",
		}).Return(&commands.CheckoutResult{
			SessionID:     "cs_1",
			URL:           "https://pay.example.com/cs_1",
			Amount:        decimal.RequireFromString("39.2"),
			Currency:      "USD",
			PromoCode:     "ABRACADABRA20",
			HoldExpiresAt: &expires,
		}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, nil)

		var response resdto.CheckoutResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal("cs_1", response.SessionID)
		s.Equal("39.20", response.Amount)
		s.Require().NotNil(response.HoldExpiresAt)
		s.True(response.HoldExpiresAt.Equal(expires))
	})

	s.Run("error: 400 when product is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, testutil.DtoMap(s.T(), reqBody, testutil.Field("productId", nil)), nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			err            error
			expectedStatus int
			expectedMsg    string
		}{
			{name: "unknown product", err: commands.ErrUnknownProduct, expectedStatus: http.StatusNotFound, expectedMsg: "Unknown product"},
			{name: "unknown code", err: promo.ErrUnknownCode, expectedStatus: http.StatusNotFound, expectedMsg: "Unknown promo code"},
			{name: "promo for another product", err: commands.ErrPromoNotApplicable, expectedStatus: http.StatusBadRequest, expectedMsg: "Checkout failed"},
			{name: "gateway failure", err: errs.Mark(errors.New("502 from gateway"), errs.ErrUpstreamPayment), expectedStatus: http.StatusBadGateway, expectedMsg: "Payment provider error"},
			{name: "storage outage", err: errs.Mark(errors.New("refused"), errs.ErrStorageUnavailable), expectedStatus: http.StatusServiceUnavailable, expectedMsg: "temporarily unavailable"},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCheckout.EXPECT().Checkout(gomock.Any(), gomock.Any()).Return(nil, tc.err).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, nil)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})

	s.Run("error: 409 rejection when the promo is gone", func() {
		s.mockCheckout.EXPECT().Checkout(gomock.Any(), gomock.Any()).
			Return(nil, promo.NewRejection(promo.ReasonExhausted, nil)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, nil)

		s.Equal(http.StatusConflict, rec.Code)
		var response resdto.RejectionResponse
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
		s.Equal("exhausted", response.Reason)
	})
}

// ================================================================================
// TestWebhook
// ================================================================================

func (s *CheckoutHandlerTestSuite) TestWebhook() {
	url := "/webhooks/payment"
	event := []byte(`{
		"id": "evt_1",
		"type": "checkout.completed",
		"livemode": false,
		"data": {
			"session_id": "cs_1",
			"customer_email": "user@example.com",
			"metadata": {"promo_code": "KVRFOAM", "hold_token": "tok"}
		}
	}`)

	s.Run("success: acknowledges with outcome", func() {
		s.mockPayments.EXPECT().ConfirmPayment(gomock.Any(), commands.PaymentEvent{
			ID:             "evt_1",
			Type:           "checkout.completed",
			OrderReference: "cs_1",
			Email:          "user@example.com",
			Metadata:       map[string]string{"promo_code": "KVRFOAM", "hold_token": "tok"},
		}).Return(&commands.ConfirmResult{Outcome: shared.ClaimConfirmedHold}, nil).Times(1)

		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, url, event, nil)

		var response resdto.WebhookAckResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.Received)
		s.Equal(string(shared.ClaimConfirmedHold), response.Outcome)
	})

	s.Run("success: oversubscribed payment is still acknowledged", func() {
		s.mockPayments.EXPECT().ConfirmPayment(gomock.Any(), gomock.Any()).
			Return(&commands.ConfirmResult{Oversubscribed: true}, nil).Times(1)

		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, url, event, nil)

		var response resdto.WebhookAckResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.Oversubscribed)
	})

	s.Run("error: 400 for malformed payload", func() {
		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, url, []byte(`{"id":`), nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 400 when event type is missing", func() {
		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, url, []byte(`{"id":"evt_2"}`), nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 503 lets the gateway retry", func() {
		s.mockPayments.EXPECT().ConfirmPayment(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(errors.New("refused"), errs.ErrStorageUnavailable)).Times(1)

		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, url, event, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusServiceUnavailable, "")
	})
}
