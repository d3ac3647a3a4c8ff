package response

import (
	"time"

	"plugin-storefront/internal/usecase/commands"
)

type CheckoutResponse struct {
	SessionID     string     `json:"sessionId"`
	URL           string     `json:"url"`
	Amount        string     `json:"amount"`
	Currency      string     `json:"currency"`
	PromoCode     string     `json:"promoCode,omitempty"`
	HoldExpiresAt *time.Time `json:"holdExpiresAt,omitempty"`
}

func FromCheckoutResult(r *commands.CheckoutResult) *CheckoutResponse {
	return &CheckoutResponse{
		SessionID:     r.SessionID,
		URL:           r.URL,
		Amount:        r.Amount.StringFixed(2),
		Currency:      r.Currency,
		PromoCode:     r.PromoCode,
		HoldExpiresAt: r.HoldExpiresAt,
	}
}

type WebhookAckResponse struct {
	Received       bool   `json:"received"`
	Ignored        bool   `json:"ignored,omitempty"`
	Outcome        string `json:"outcome,omitempty"`
	Oversubscribed bool   `json:"oversubscribed,omitempty"`
}

func FromConfirmResult(r *commands.ConfirmResult) *WebhookAckResponse {
	return &WebhookAckResponse{
		Received:       true,
		Ignored:        r.Ignored,
		Outcome:        string(r.Outcome),
		Oversubscribed: r.Oversubscribed,
	}
}
