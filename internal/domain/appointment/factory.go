package appointment

import (
	"maison-booking/internal/domain/consultation"
	"maison-booking/internal/domain/coupon"
	"maison-booking/internal/pkg/clock"

	"github.com/google/uuid"
)

type Factory struct {
	Clock clock.Clock
}

func NewFactory(clock clock.Clock) *Factory {
	return &Factory{Clock: clock}
}

// CreateAppointment assembles a pending appointment for a bookable service,
// applying an optional coupon to the deposit. Slot availability is not
// checked here; the booking command re-validates it at write time.
func (f *Factory) CreateAppointment(
	service *consultation.Service,
	customerID uuid.UUID,
	date BookingDate,
	slot SlotTime,
	couponEntity *coupon.Coupon,
	note Note,
) (*Appointment, error) {
	if err := service.ValidateBookable(); err != nil {
		return nil, err
	}

	depositCents := service.DepositCents()

	var couponID *uuid.UUID
	if couponEntity != nil {
		if err := couponEntity.ValidateUsage(f.Clock.Now()); err != nil {
			return nil, err
		}
		depositCents = couponEntity.ApplyTo(depositCents)
		id := couponEntity.ID()
		couponID = &id
	}

	return NewAppointment(
		service.ID(),
		customerID,
		date,
		slot,
		NewMoney(depositCents),
		couponID,
		note,
	), nil
}
