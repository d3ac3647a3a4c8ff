package queue

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html/template"
	"log/slog"

	"plugin-storefront/internal/usecase/shared"

	"github.com/hibiken/asynq"
)

type EmailSender interface {
	SendEmail(ctx context.Context, to, subject, htmlBody string) error
}

var confirmationTemplate = template.Must(template.New("confirmation").Parse(`<p>Thanks for your purchase!</p>
<p>Order <strong>{{.OrderReference}}</strong>: {{.ProductName}}</p>
{{- if .PromoCode}}
<p>Promo code <strong>{{.PromoCode}}</strong> was applied.</p>
{{- end}}
<p>Your license and download link follow in a separate email.</p>`))

type EmailTaskHandler struct {
	sender EmailSender
	logger *slog.Logger
}

func NewEmailTaskHandler(sender EmailSender, logger *slog.Logger) *EmailTaskHandler {
	return &EmailTaskHandler{sender: sender, logger: logger}
}

func (h *EmailTaskHandler) Register(mux *asynq.ServeMux) {
	mux.Handle(TypePurchaseConfirmation, h)
}

func (h *EmailTaskHandler) ProcessTask(ctx context.Context, t *asynq.Task) error {
	var msg shared.PurchaseConfirmation
	if err := json.Unmarshal(t.Payload(), &msg); err != nil {
		h.logger.Error("malformed confirmation payload", slog.String("error", err.Error()))
		return fmt.Errorf("unmarshal payload: %v: %w", err, asynq.SkipRetry)
	}
	if msg.Email == "" {
		return fmt.Errorf("confirmation without recipient: %w", asynq.SkipRetry)
	}

	body, err := RenderConfirmation(msg)
	if err != nil {
		return fmt.Errorf("render email: %v: %w", err, asynq.SkipRetry)
	}

	subject := fmt.Sprintf("Your order %s", msg.OrderReference)
	if err := h.sender.SendEmail(ctx, msg.Email, subject, body); err != nil {
		h.logger.Warn("failed to send confirmation email",
			slog.String("order_reference", msg.OrderReference),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("send email: %w", err)
	}

	h.logger.Info("confirmation email sent", slog.String("order_reference", msg.OrderReference))
	return nil
}

func RenderConfirmation(msg shared.PurchaseConfirmation) (string, error) {
	var buf bytes.Buffer
	if err := confirmationTemplate.Execute(&buf, msg); err != nil {
		return "", err
	}
	return buf.String(), nil
}
