package response

import (
	"time"

	"plugin-storefront/internal/domain/promo"
	"plugin-storefront/internal/usecase/commands"

	"github.com/jinzhu/copier"
)

type PromoStatusResponse struct {
	Code            string     `json:"code"`
	ProductID       string     `json:"productId"`
	DiscountPercent int        `json:"discountPercent"`
	Total           int        `json:"total"`
	Claimed         int        `json:"claimed"`
	Held            int        `json:"held"`
	Remaining       int        `json:"remaining"`
	Active          bool       `json:"active"`
	Timed           bool       `json:"timed"`
	Released        *int       `json:"released,omitempty"`
	AvailableNow    *int       `json:"availableNow,omitempty"`
	NextReleaseTime *time.Time `json:"nextReleaseTime,omitempty"`
	PromoStartTime  *time.Time `json:"promoStartTime,omitempty"`
	PromoEndTime    *time.Time `json:"promoEndTime,omitempty"`
}

func FromStats(s *promo.Stats) *PromoStatusResponse {
	res := &PromoStatusResponse{
		Code:            s.Code,
		ProductID:       s.ProductID,
		DiscountPercent: s.DiscountPercent,
		Total:           s.Total,
		Claimed:         s.Claimed,
		Held:            s.Held,
		Remaining:       s.Remaining,
		Active:          s.Active,
	}
	if t := s.Timed; t != nil {
		res.Timed = true
		res.Released = &t.Released
		res.AvailableNow = &t.AvailableNow
		res.NextReleaseTime = t.NextReleaseTime
		res.PromoStartTime = &t.PromoStartTime
		res.PromoEndTime = &t.PromoEndTime
	}
	return res
}

type AvailabilityResponse struct {
	Available       bool       `json:"available"`
	Reason          string     `json:"reason,omitempty"`
	AllClaimed      bool       `json:"allClaimed"`
	NextReleaseTime *time.Time `json:"nextReleaseTime,omitempty"`
	AvailableNow    int        `json:"availableNow"`
	Remaining       int        `json:"remaining"`
}

func FromAvailability(a *promo.Availability) *AvailabilityResponse {
	return &AvailabilityResponse{
		Available:       a.Available,
		Reason:          string(a.Reason),
		AllClaimed:      a.AllClaimed,
		NextReleaseTime: a.NextReleaseTime,
		AvailableNow:    a.AvailableNow,
		Remaining:       a.Remaining,
	}
}

// RejectionResponse is returned with 409 so clients can show a countdown.
type RejectionResponse struct {
	Available       bool       `json:"available"`
	Reason          string     `json:"reason"`
	Message         string     `json:"message"`
	NextReleaseTime *time.Time `json:"nextReleaseTime,omitempty"`
}

func FromRejection(r *promo.RejectionError) *RejectionResponse {
	return &RejectionResponse{
		Available:       false,
		Reason:          string(r.Reason()),
		Message:         r.Error(),
		NextReleaseTime: r.NextReleaseTime,
	}
}

type ReserveResponse struct {
	HoldID    string    `json:"holdId"`
	Code      string    `json:"code"`
	Email     string    `json:"email"`
	ExpiresAt time.Time `json:"expiresAt"`
	Token     string    `json:"token"`
}

func FromReserveResult(r *commands.ReserveResult) *ReserveResponse {
	return &ReserveResponse{
		HoldID:    r.HoldID.String(),
		Code:      r.Code,
		Email:     r.Email,
		ExpiresAt: r.ExpiresAt,
		Token:     r.Token,
	}
}

type RedemptionResponse struct {
	Email          string    `json:"email"`
	OrderReference string    `json:"orderReference"`
	RedeemedAt     time.Time `json:"redeemedAt"`
}

type RedemptionListResponse struct {
	Code        string               `json:"code"`
	Count       int                  `json:"count"`
	Redemptions []RedemptionResponse `json:"redemptions"`
}

func FromRedemptions(code string, items []promo.Redemption) (*RedemptionListResponse, error) {
	res := &RedemptionListResponse{
		Code:        code,
		Count:       len(items),
		Redemptions: make([]RedemptionResponse, 0, len(items)),
	}
	if len(items) == 0 {
		return res, nil
	}
	if err := copier.Copy(&res.Redemptions, &items); err != nil {
		return nil, err
	}
	return res, nil
}
