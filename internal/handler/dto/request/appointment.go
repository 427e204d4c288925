package request

import (
	"strings"

	"github.com/google/uuid"
)

type CreateAppointmentRequest struct {
	ServiceID  uuid.UUID `json:"service_id" binding:"required"`
	Date       string    `json:"date" binding:"required"`
	Time       string    `json:"time" binding:"required"`
	CouponCode *string   `json:"coupon_code,omitempty"`
	Note       *string   `json:"note,omitempty"`
}

func (r CreateAppointmentRequest) GetCouponCode() *string {
	if r.CouponCode == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*r.CouponCode)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func (r CreateAppointmentRequest) GetNote() string {
	if r.Note == nil {
		return ""
	}
	return *r.Note
}
