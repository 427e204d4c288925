package repository

import (
	"context"

	"maison-booking/internal/domain/appointment"
	"maison-booking/internal/infra"
	"maison-booking/internal/infra/db"
	"maison-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type AppointmentRepository struct{}

func NewAppointmentRepository() *AppointmentRepository {
	return &AppointmentRepository{}
}

const createAppointmentQuery = `
INSERT INTO appointments (id, service_id, customer_id, date, slot_time, status, deposit_cents, coupon_id, note)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING id`

func (r *AppointmentRepository) Create(ctx context.Context, dbtx db.DBTX, appt *appointment.Appointment) (uuid.UUID, error) {
	var note pgtype.Text
	if n := appt.Note().String(); n != "" {
		note = pgconv.StringToPgtype(n)
	}

	row := dbtx.QueryRow(ctx, createAppointmentQuery,
		pgconv.UUIDToPgtype(appt.ID()),
		pgconv.UUIDToPgtype(appt.ServiceID()),
		pgconv.UUIDToPgtype(appt.CustomerID()),
		pgconv.DateToPgtype(appt.Date().Time()),
		appt.Slot().String(),
		string(appt.Status()),
		appt.DepositCents().Cents(),
		pgconv.UUIDPtrToPgtype(appt.CouponID()),
		note,
	)

	var id pgtype.UUID
	if err := row.Scan(&id); err != nil {
		// The partial unique index on (date, slot_time) surfaces here as a
		// duplicate key when two writers race for the same slot.
		return uuid.Nil, infra.WrapRepoErr("failed to create appointment", err)
	}

	return pgconv.UUIDFromPgtype(id), nil
}

const slotTakenQuery = `
SELECT EXISTS (
	SELECT 1 FROM appointments
	WHERE date = $1 AND slot_time = $2 AND status <> 'cancelled'
)`

func (r *AppointmentRepository) SlotTaken(ctx context.Context, dbtx db.DBTX, date appointment.BookingDate, slot appointment.SlotTime) (bool, error) {
	var taken bool
	err := dbtx.QueryRow(ctx, slotTakenQuery, pgconv.DateToPgtype(date.Time()), slot.String()).Scan(&taken)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check slot occupancy", err)
	}
	return taken, nil
}

const updateAppointmentStatusQuery = `
UPDATE appointments
SET status = $2, updated_at = now()
WHERE id = $1`

func (r *AppointmentRepository) UpdateStatus(ctx context.Context, dbtx db.DBTX, id uuid.UUID, status appointment.Status) error {
	tag, err := dbtx.Exec(ctx, updateAppointmentStatusQuery, pgconv.UUIDToPgtype(id), string(status))
	if err != nil {
		return infra.WrapRepoErr("failed to update appointment status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepositoryError(infra.KindNotFound, "appointment not found")
	}
	return nil
}
