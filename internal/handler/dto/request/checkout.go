package request

import (
	"plugin-storefront/internal/usecase/commands"
)

type CheckoutRequest struct {
	ProductID string `json:"productId" binding:"required,max=64"`
	Email     string `json:"email" binding:"required,email,max=254"`
	PromoCode string `json:"promoCode" binding:"omitempty,max=64"`
}

func (r *CheckoutRequest) ToInput() commands.CheckoutInput {
	return commands.CheckoutInput{
		ProductID: r.ProductID,
		Email:     r.Email,
		PromoCode: r.PromoCode,
	}
}

// PaymentWebhookRequest is the gateway's event envelope.
type PaymentWebhookRequest struct {
	ID   string `json:"id" binding:"required"`
	Type string `json:"type" binding:"required"`
	Data struct {
		SessionID     string            `json:"session_id"`
		CustomerEmail string            `json:"customer_email"`
		Metadata      map[string]string `json:"metadata"`
	} `json:"data"`
}

func (r *PaymentWebhookRequest) ToEvent() commands.PaymentEvent {
	return commands.PaymentEvent{
		ID:             r.ID,
		Type:           r.Type,
		OrderReference: r.Data.SessionID,
		Email:          r.Data.CustomerEmail,
		Metadata:       r.Data.Metadata,
	}
}
