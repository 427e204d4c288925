package response

import (
	"time"

	"maison-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type AppointmentResponse struct {
	ID            uuid.UUID  `json:"id"`
	ServiceID     uuid.UUID  `json:"service_id"`
	ServiceName   string     `json:"service_name"`
	CustomerID    uuid.UUID  `json:"customer_id"`
	CustomerEmail string     `json:"customer_email"`
	Date          string     `json:"date"`
	Time          string     `json:"time"`
	Status        string     `json:"status"`
	DepositCents  int64      `json:"deposit_cents"`
	CouponID      *uuid.UUID `json:"coupon_id,omitempty"`
	CouponCode    *string    `json:"coupon_code,omitempty"`
	Note          *string    `json:"note,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

type AppointmentListResponse struct {
	ID           uuid.UUID `json:"id"`
	ServiceName  string    `json:"service_name"`
	Date         string    `json:"date"`
	Time         string    `json:"time"`
	Status       string    `json:"status"`
	DepositCents int64     `json:"deposit_cents"`
	CreatedAt    time.Time `json:"created_at"`
}

func FromAppointmentView(view *queries.AppointmentView) *AppointmentResponse {
	return &AppointmentResponse{
		ID:            view.ID,
		ServiceID:     view.ServiceID,
		ServiceName:   view.ServiceName,
		CustomerID:    view.CustomerID,
		CustomerEmail: view.CustomerEmail,
		Date:          view.Date,
		Time:          view.Time,
		Status:        view.Status,
		DepositCents:  view.DepositCents,
		CouponID:      view.CouponID,
		CouponCode:    view.CouponCode,
		Note:          view.Note,
		CreatedAt:     view.CreatedAt,
		UpdatedAt:     view.UpdatedAt,
	}
}

func FromAppointmentListItems(items []*queries.AppointmentListItem) []*AppointmentListResponse {
	responses := make([]*AppointmentListResponse, 0, len(items))
	if err := copier.Copy(&responses, items); err != nil {
		return []*AppointmentListResponse{}
	}
	return responses
}
