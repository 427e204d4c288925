package shared

import (
	"time"

	"github.com/google/uuid"
)

type ServiceSnapshot struct {
	ID           uuid.UUID
	Name         string
	DepositCents int64
	Enabled      bool
}

type CouponSnapshot struct {
	ID             uuid.UUID
	Code           string
	AmountOffCents *int32
	PercentOff     *float64
	ValidFrom      *time.Time
	ValidTo        *time.Time
}

// Minimal snapshot for command-side validation
type AppointmentSnapshot struct {
	ID         uuid.UUID
	ServiceID  uuid.UUID
	CustomerID uuid.UUID
	Date       time.Time
	Time       string
	Status     string
}

type AuthUserSnapshot struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Role         string
	IsActive     bool
}
