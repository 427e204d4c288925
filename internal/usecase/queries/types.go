package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

type SlotView struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
}

type ServiceView struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Description  *string   `json:"description,omitempty"`
	DurationMin  int32     `json:"duration_min"`
	DepositCents int64     `json:"deposit_cents"`
	SortOrder    int32     `json:"sort_order"`
}

type AppointmentView struct {
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

type AppointmentListItem struct {
	ID           uuid.UUID `json:"id"`
	ServiceName  string    `json:"service_name"`
	Date         string    `json:"date"`
	Time         string    `json:"time"`
	Status       string    `json:"status"`
	DepositCents int64     `json:"deposit_cents"`
	CreatedAt    time.Time `json:"created_at"`
}

type RuleView struct {
	ID              uuid.UUID `json:"id"`
	DayOfWeek       int       `json:"day_of_week"`
	StartTime       string    `json:"start_time"`
	EndTime         string    `json:"end_time"`
	SlotDurationMin int       `json:"slot_duration_min"`
	BreakBetweenMin int       `json:"break_between_min"`
	Enabled         bool      `json:"enabled"`
}

type AuthorizedUserView struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	IsActive bool      `json:"is_active"`
}
