package promo

import "time"

type Redemption struct {
	Email          string    `json:"email"`
	OrderReference string    `json:"orderReference"`
	RedeemedAt     time.Time `json:"redeemedAt"`
}
