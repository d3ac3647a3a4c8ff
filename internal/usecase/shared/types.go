package shared

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type HoldRequest struct {
	Code        string
	Email       string
	HoldID      uuid.UUID
	Now         time.Time
	ExpiresAt   time.Time
	MaxUses     int
	ReleasedCap int
}

type ClaimRequest struct {
	Code           string
	Email          string
	OrderReference string
	Now            time.Time
	MaxUses        int
}

type ClaimOutcome string

const (
	// ClaimConfirmedHold converted the email's live hold into a claim.
	ClaimConfirmedHold ClaimOutcome = "confirmed_hold"
	// ClaimDirect claimed without a hold (expired or never placed).
	ClaimDirect ClaimOutcome = "direct"
	// ClaimDuplicate means the order reference was already recorded.
	ClaimDuplicate ClaimOutcome = "duplicate"
)

type LedgerReset struct {
	Code        string
	Count       int
	ClearEmails bool
}

type CheckoutSessionRequest struct {
	ProductID     string
	ProductName   string
	Amount        decimal.Decimal
	Currency      string
	CustomerEmail string
	PromoCode     string
	Metadata      map[string]string
}

type CheckoutSession struct {
	ID  string
	URL string
}

type PurchaseConfirmation struct {
	OrderReference string `json:"orderReference"`
	Email          string `json:"email"`
	ProductID      string `json:"productId"`
	ProductName    string `json:"productName"`
	PromoCode      string `json:"promoCode,omitempty"`
}
