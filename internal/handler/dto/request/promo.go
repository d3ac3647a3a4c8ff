package request

import (
	"plugin-storefront/internal/usecase/commands"
)

type PromoValidateRequest struct {
	Code  string `json:"code" binding:"required,max=64"`
	Email string `json:"email" binding:"omitempty,email,max=254"`
}

type PromoReserveRequest struct {
	Code  string `json:"code" binding:"required,max=64"`
	Email string `json:"email" binding:"required,email,max=254"`
}

type PromoCancelRequest struct {
	Token string `json:"token" binding:"required"`
}

type PromoRecordRequest struct {
	Code           string `json:"code" binding:"required,max=64"`
	Email          string `json:"email" binding:"required,email,max=254"`
	OrderReference string `json:"orderReference" binding:"required,max=255"`
}

type PromoResetRequest struct {
	Count         *int `json:"count" binding:"omitempty,min=0"`
	ClearEmails   bool `json:"clearEmails"`
	ResetSchedule bool `json:"resetSchedule"`
}

func (r *PromoRecordRequest) ToInput() commands.RecordInput {
	return commands.RecordInput{
		Code:           r.Code,
		Email:          r.Email,
		OrderReference: r.OrderReference,
	}
}

func (r *PromoResetRequest) ToParams() commands.ResetParams {
	return commands.ResetParams{
		Count:         r.Count,
		ClearEmails:   r.ClearEmails,
		ResetSchedule: r.ResetSchedule,
	}
}
