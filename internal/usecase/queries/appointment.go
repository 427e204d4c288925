package queries

import (
	"context"
	"time"

	"maison-booking/internal/infra"
	"maison-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrAppointmentNotFound     = errs.New("appointment not found")
	ErrAppointmentLookupFailed = errs.New("appointment lookup failed")
)

type AppointmentReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*AppointmentView, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*AppointmentListItem, error)
	ListByDate(ctx context.Context, date time.Time) ([]*AppointmentListItem, error)
}

type AppointmentQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*AppointmentView, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*AppointmentListItem, error)
	ListByDate(ctx context.Context, date time.Time) ([]*AppointmentListItem, error)
}

type appointmentQueriesImpl struct {
	appointments AppointmentReadStore
}

func NewAppointmentQueries(appointments AppointmentReadStore) AppointmentQueries {
	return &appointmentQueriesImpl{appointments: appointments}
}

func (q *appointmentQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*AppointmentView, error) {
	view, err := q.appointments.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrAppointmentNotFound
		}
		return nil, errs.Mark(err, ErrAppointmentLookupFailed)
	}
	return view, nil
}

func (q *appointmentQueriesImpl) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*AppointmentListItem, error) {
	items, err := q.appointments.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, errs.Mark(err, ErrAppointmentLookupFailed)
	}
	return items, nil
}

func (q *appointmentQueriesImpl) ListByDate(ctx context.Context, date time.Time) ([]*AppointmentListItem, error) {
	items, err := q.appointments.ListByDate(ctx, date)
	if err != nil {
		return nil, errs.Mark(err, ErrAppointmentLookupFailed)
	}
	return items, nil
}
