package commands

import (
	"context"
	"errors"
	"time"

	"maison-booking/internal/domain/appointment"
	"maison-booking/internal/domain/consultation"
	"maison-booking/internal/domain/coupon"
	"maison-booking/internal/domain/schedule"
	"maison-booking/internal/domain/user"
	"maison-booking/internal/infra"
	"maison-booking/internal/pkg/errs"
	"maison-booking/internal/usecase/queries"
	"maison-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrServiceNotFound         = errs.New("service not found")
	ErrServiceNotBookable      = errs.New("service not bookable")
	ErrCouponNotFound          = errs.New("coupon not found")
	ErrInvalidCoupon           = errs.New("invalid coupon")
	ErrInvalidSlotTime         = errs.New("invalid slot time")
	ErrInvalidNote             = errs.New("invalid note")
	ErrSlotNotOffered          = errs.New("slot not offered on this date")
	ErrBookingConflict         = errs.New("slot already booked")
	ErrAppointmentNotFound     = errs.New("appointment not found")
	ErrNotAppointmentOwner     = errs.New("appointment belongs to another customer")
	ErrInvalidStatus           = errs.New("invalid appointment status")
	ErrInvalidTransition       = errs.New("invalid status transition")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type BookAppointment struct {
	Date       time.Time
	Time       string
	ServiceID  uuid.UUID
	CouponCode *string
	Note       string
}

type BookingCommands interface {
	Book(ctx context.Context, customerID uuid.UUID, cmd BookAppointment) (*queries.AppointmentView, error)
	Cancel(ctx context.Context, actorID uuid.UUID, actorRole user.Role, appointmentID uuid.UUID) error
	UpdateStatus(ctx context.Context, appointmentID uuid.UUID, status string) error
}

type bookingCommandsImpl struct {
	uow                shared.UnitOfWork
	factory            *appointment.Factory
	appointmentQueries queries.AppointmentQueries
}

func NewBookingCommands(
	uow shared.UnitOfWork,
	factory *appointment.Factory,
	appointmentQueries queries.AppointmentQueries,
) BookingCommands {
	return &bookingCommandsImpl{
		uow:                uow,
		factory:            factory,
		appointmentQueries: appointmentQueries,
	}
}

// Book creates a pending appointment for the requested slot. The slot list
// shown to the customer is a snapshot, so availability is re-checked inside
// the transaction; the partial unique index on (date, time) for non-cancelled
// rows is the backstop when two bookers race past the check simultaneously.
func (c *bookingCommandsImpl) Book(ctx context.Context, customerID uuid.UUID, cmd BookAppointment) (*queries.AppointmentView, error) {
	slot, err := appointment.NewSlotTime(cmd.Time)
	if err != nil {
		return nil, ErrInvalidSlotTime
	}
	date := appointment.BookingDateOf(cmd.Date)

	note, err := appointment.NewNote(cmd.Note)
	if err != nil {
		return nil, ErrInvalidNote
	}

	reads := c.uow.CommandReads()

	serviceEntity, err := c.loadService(ctx, reads, cmd.ServiceID)
	if err != nil {
		return nil, err
	}

	couponEntity, err := c.loadCoupon(ctx, reads, cmd.CouponCode)
	if err != nil {
		return nil, err
	}

	if err := c.validateSlotOffered(ctx, reads, date, slot); err != nil {
		return nil, err
	}

	appt, err := c.factory.CreateAppointment(serviceEntity, customerID, date, slot, couponEntity, note)
	if err != nil {
		switch {
		case errors.Is(err, consultation.ErrServiceDisabled):
			return nil, ErrServiceNotBookable
		case errors.Is(err, coupon.ErrCouponExpired), errors.Is(err, coupon.ErrCouponNotYetValid):
			return nil, ErrInvalidCoupon
		default:
			return nil, err
		}
	}

	var appointmentID uuid.UUID
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		taken, err := tx.Appointments().SlotTaken(ctx, tx.DB(), date, slot)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if taken {
			return ErrBookingConflict
		}

		appointmentID, err = tx.Appointments().Create(ctx, tx.DB(), appt)
		if err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				// Lost the race despite the pre-check: the index caught it.
				return ErrBookingConflict
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Read-after-write: return the full view from the read store.
	view, err := c.appointmentQueries.GetByID(ctx, appointmentID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (c *bookingCommandsImpl) Cancel(ctx context.Context, actorID uuid.UUID, actorRole user.Role, appointmentID uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().AppointmentByID(ctx, appointmentID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrAppointmentNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if actorRole == user.RoleCustomer && snap.CustomerID != actorID {
			return ErrNotAppointmentOwner
		}

		current := appointment.Status(snap.Status)
		if current == appointment.StatusCancelled {
			// Cancelling twice is a no-op; the slot is already free.
			return nil
		}
		if current == appointment.StatusCompleted {
			return ErrInvalidTransition
		}

		if err := tx.Appointments().UpdateStatus(ctx, tx.DB(), appointmentID, appointment.StatusCancelled); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
}

func (c *bookingCommandsImpl) UpdateStatus(ctx context.Context, appointmentID uuid.UUID, status string) error {
	next, err := appointment.NewStatus(status)
	if err != nil {
		return ErrInvalidStatus
	}

	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().AppointmentByID(ctx, appointmentID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrAppointmentNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		current := appointment.Status(snap.Status)
		if !current.CanTransitionTo(next) {
			return ErrInvalidTransition
		}

		if err := tx.Appointments().UpdateStatus(ctx, tx.DB(), appointmentID, next); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
}

func (c *bookingCommandsImpl) loadService(ctx context.Context, reads shared.CommandReads, serviceID uuid.UUID) (*consultation.Service, error) {
	snap, err := reads.ServiceByID(ctx, serviceID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	serviceEntity, err := consultation.NewService(snap.ID, snap.Name, snap.DepositCents, snap.Enabled)
	if err != nil {
		return nil, ErrServiceNotBookable
	}
	return serviceEntity, nil
}

func (c *bookingCommandsImpl) loadCoupon(ctx context.Context, reads shared.CommandReads, code *string) (*coupon.Coupon, error) {
	if code == nil {
		return nil, nil
	}

	snap, err := reads.CouponByCode(ctx, *code)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCouponNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	couponEntity, err := coupon.NewCoupon(
		snap.ID,
		snap.Code,
		snap.AmountOffCents,
		snap.PercentOff,
		snap.ValidFrom,
		snap.ValidTo,
	)
	if err != nil {
		return nil, ErrInvalidCoupon
	}
	return couponEntity, nil
}

// validateSlotOffered rejects times the schedule never generates, so the
// ledger only ever holds times that line up with the slot grid.
func (c *bookingCommandsImpl) validateSlotOffered(ctx context.Context, reads shared.CommandReads, date appointment.BookingDate, slot appointment.SlotTime) error {
	rule, err := reads.EnabledRuleByWeekday(ctx, date.Weekday())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrSlotNotOffered
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	requested := slot.String()
	for _, candidate := range schedule.CandidateSlots(rule) {
		if candidate == requested {
			return nil
		}
	}
	return ErrSlotNotOffered
}
