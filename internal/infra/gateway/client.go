package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"plugin-storefront/internal/domain/product"
	"plugin-storefront/internal/pkg/config"
	"plugin-storefront/internal/pkg/errs"
	"plugin-storefront/internal/usecase/shared"
)

const sessionsPath = "/v1/checkout/sessions"

type Client struct {
	cfg        config.GatewayConfig
	httpClient *http.Client
	logger     *slog.Logger
}

func NewClient(cfg config.GatewayConfig, logger *slog.Logger) *Client {
	return &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger: logger,
	}
}

type sessionRequest struct {
	Amount        int64             `json:"amount"`
	Currency      string            `json:"currency"`
	ProductName   string            `json:"product_name"`
	CustomerEmail string            `json:"customer_email"`
	SuccessURL    string            `json:"success_url"`
	CancelURL     string            `json:"cancel_url"`
	Metadata      map[string]string `json:"metadata"`
}

type sessionResponse struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

type errorResponse struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// CreateCheckoutSession charges amounts in minor currency units.
func (c *Client) CreateCheckoutSession(ctx context.Context, req shared.CheckoutSessionRequest) (*shared.CheckoutSession, error) {
	body, err := json.Marshal(sessionRequest{
		Amount:        product.MinorUnits(req.Amount),
		Currency:      strings.ToLower(req.Currency),
		ProductName:   req.ProductName,
		CustomerEmail: req.CustomerEmail,
		SuccessURL:    c.cfg.SuccessURL,
		CancelURL:     c.cfg.CancelURL,
		Metadata:      req.Metadata,
	})
	if err != nil {
		return nil, errs.Wrap(err, "failed to marshal session request")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, strings.TrimRight(c.cfg.BaseURL, "/")+sessionsPath, bytes.NewReader(body))
	if err != nil {
		return nil, errs.Wrap(err, "failed to create HTTP request")
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, errs.Wrap(err, "failed to call payment gateway")
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, errs.Wrap(err, "failed to read gateway response")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr errorResponse
		_ = json.Unmarshal(respBody, &apiErr)
		c.logger.Warn("payment gateway rejected session",
			slog.Int("status", resp.StatusCode),
			slog.String("message", apiErr.Error.Message),
		)
		return nil, errs.New(fmt.Sprintf("payment gateway error: status %d: %s", resp.StatusCode, apiErr.Error.Message))
	}

	var session sessionResponse
	if err := json.Unmarshal(respBody, &session); err != nil {
		return nil, errs.Wrap(err, "failed to decode gateway response")
	}
	if session.ID == "" || session.URL == "" {
		return nil, errs.New("payment gateway returned an incomplete session")
	}

	return &shared.CheckoutSession{ID: session.ID, URL: session.URL}, nil
}
