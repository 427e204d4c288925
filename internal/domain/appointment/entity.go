package appointment

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus     = errors.New("invalid appointment status")
	ErrInvalidTransition = errors.New("invalid appointment status transition")
	ErrAlreadyCancelled  = errors.New("appointment is already cancelled")
	ErrAlreadyCompleted  = errors.New("appointment is already completed")
)

// Appointment is one booked consultation slot. At most one non-cancelled
// appointment may exist per (date, time); the store enforces this with a
// partial unique index and the booking command re-checks it in the same
// transaction.
type Appointment struct {
	id           uuid.UUID
	serviceID    uuid.UUID
	customerID   uuid.UUID
	date         BookingDate
	slot         SlotTime
	status       Status
	depositCents Money
	couponID     *uuid.UUID
	note         Note
	createdAt    time.Time
	updatedAt    time.Time
}

func NewAppointment(
	serviceID, customerID uuid.UUID,
	date BookingDate,
	slot SlotTime,
	depositCents Money,
	couponID *uuid.UUID,
	note Note,
) *Appointment {
	return &Appointment{
		id:           uuid.New(),
		serviceID:    serviceID,
		customerID:   customerID,
		date:         date,
		slot:         slot,
		status:       StatusPending,
		depositCents: depositCents,
		couponID:     couponID,
		note:         note,
	}
}

func ReconstructAppointment(
	id, serviceID, customerID uuid.UUID,
	date BookingDate,
	slot SlotTime,
	status Status,
	depositCents Money,
	couponID *uuid.UUID,
	note Note,
	createdAt, updatedAt time.Time,
) *Appointment {
	return &Appointment{
		id:           id,
		serviceID:    serviceID,
		customerID:   customerID,
		date:         date,
		slot:         slot,
		status:       status,
		depositCents: depositCents,
		couponID:     couponID,
		note:         note,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (a *Appointment) Cancel() error {
	switch a.status {
	case StatusCancelled:
		return ErrAlreadyCancelled
	case StatusCompleted:
		return ErrAlreadyCompleted
	}
	a.status = StatusCancelled
	return nil
}

func (a *Appointment) TransitionTo(next Status) error {
	if !next.IsValid() {
		return ErrInvalidStatus
	}
	if !a.status.CanTransitionTo(next) {
		return ErrInvalidTransition
	}
	a.status = next
	return nil
}

func (a *Appointment) IsActive() bool {
	return a.status.OccupiesSlot()
}

func (a *Appointment) IsOwnedBy(customerID uuid.UUID) bool {
	return a.customerID == customerID
}

func (a *Appointment) ID() uuid.UUID        { return a.id }
func (a *Appointment) ServiceID() uuid.UUID { return a.serviceID }
func (a *Appointment) CustomerID() uuid.UUID { return a.customerID }
func (a *Appointment) Date() BookingDate    { return a.date }
func (a *Appointment) Slot() SlotTime       { return a.slot }
func (a *Appointment) Status() Status       { return a.status }
func (a *Appointment) DepositCents() Money  { return a.depositCents }
func (a *Appointment) CouponID() *uuid.UUID { return a.couponID }
func (a *Appointment) Note() Note           { return a.note }
func (a *Appointment) CreatedAt() time.Time { return a.createdAt }
func (a *Appointment) UpdatedAt() time.Time { return a.updatedAt }
