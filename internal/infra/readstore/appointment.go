package readstore

import (
	"context"
	"time"

	"maison-booking/internal/infra"
	"maison-booking/internal/infra/db"
	"maison-booking/internal/pkg/pgconv"
	"maison-booking/internal/usecase/queries"
	"maison-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type AppointmentReadStore struct {
	db db.DBTX
}

func NewAppointmentReadStore(dbtx db.DBTX) *AppointmentReadStore {
	return &AppointmentReadStore{db: dbtx}
}

// Cancelled rows are excluded so a freed slot reappears on the very next
// read. The date column is day-granular, so one equality predicate scopes
// the whole local day.
const activeTimesByDateQuery = `
SELECT slot_time
FROM appointments
WHERE date = $1 AND status <> 'cancelled'
ORDER BY slot_time`

func (r *AppointmentReadStore) ActiveTimesByDate(ctx context.Context, date time.Time) ([]string, error) {
	rows, err := r.db.Query(ctx, activeTimesByDateQuery, pgconv.DateToPgtype(date))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list booked times", err)
	}
	defer rows.Close()

	var times []string
	for rows.Next() {
		var t string
		if err := rows.Scan(&t); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booked time", err)
		}
		times = append(times, t)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read booked times", err)
	}

	return times, nil
}

const appointmentViewQuery = `
SELECT a.id, a.service_id, s.name, a.customer_id, u.email,
       a.date, a.slot_time, a.status, a.deposit_cents,
       a.coupon_id, c.code, a.note, a.created_at, a.updated_at
FROM appointments a
JOIN consultation_services s ON s.id = a.service_id
JOIN users u ON u.id = a.customer_id
LEFT JOIN coupons c ON c.id = a.coupon_id
WHERE a.id = $1`

func (r *AppointmentReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AppointmentView, error) {
	row := r.db.QueryRow(ctx, appointmentViewQuery, pgconv.UUIDToPgtype(id))

	var (
		apptID, serviceID, customerID pgtype.UUID
		serviceName, customerEmail    string
		date                          pgtype.Date
		slotTime, status              string
		depositCents                  int64
		couponID                      pgtype.UUID
		couponCode, note              pgtype.Text
		createdAt, updatedAt          pgtype.Timestamptz
	)
	err := row.Scan(
		&apptID, &serviceID, &serviceName, &customerID, &customerEmail,
		&date, &slotTime, &status, &depositCents,
		&couponID, &couponCode, &note, &createdAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("appointment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find appointment by ID", err)
	}

	return &queries.AppointmentView{
		ID:            pgconv.UUIDFromPgtype(apptID),
		ServiceID:     pgconv.UUIDFromPgtype(serviceID),
		ServiceName:   serviceName,
		CustomerID:    pgconv.UUIDFromPgtype(customerID),
		CustomerEmail: customerEmail,
		Date:          pgconv.DateFromPgtype(date).Format("2006-01-02"),
		Time:          slotTime,
		Status:        status,
		DepositCents:  depositCents,
		CouponID:      pgconv.UUIDPtrFromPgtype(couponID),
		CouponCode:    pgconv.StringPtrFromPgtype(couponCode),
		Note:          pgconv.StringPtrFromPgtype(note),
		CreatedAt:     pgconv.TimeFromPgtype(createdAt),
		UpdatedAt:     pgconv.TimeFromPgtype(updatedAt),
	}, nil
}

const appointmentsByCustomerQuery = `
SELECT a.id, s.name, a.date, a.slot_time, a.status, a.deposit_cents, a.created_at
FROM appointments a
JOIN consultation_services s ON s.id = a.service_id
WHERE a.customer_id = $1
ORDER BY a.date DESC, a.slot_time DESC`

func (r *AppointmentReadStore) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*queries.AppointmentListItem, error) {
	rows, err := r.db.Query(ctx, appointmentsByCustomerQuery, pgconv.UUIDToPgtype(customerID))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list appointments by customer", err)
	}
	defer rows.Close()

	return scanAppointmentListItems(rows)
}

const appointmentsByDateQuery = `
SELECT a.id, s.name, a.date, a.slot_time, a.status, a.deposit_cents, a.created_at
FROM appointments a
JOIN consultation_services s ON s.id = a.service_id
WHERE a.date = $1
ORDER BY a.slot_time`

func (r *AppointmentReadStore) ListByDate(ctx context.Context, date time.Time) ([]*queries.AppointmentListItem, error) {
	rows, err := r.db.Query(ctx, appointmentsByDateQuery, pgconv.DateToPgtype(date))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list appointments by date", err)
	}
	defer rows.Close()

	return scanAppointmentListItems(rows)
}

const appointmentSnapshotQuery = `
SELECT id, service_id, customer_id, date, slot_time, status
FROM appointments
WHERE id = $1`

func (r *AppointmentReadStore) SnapshotByID(ctx context.Context, id uuid.UUID) (*shared.AppointmentSnapshot, error) {
	row := r.db.QueryRow(ctx, appointmentSnapshotQuery, pgconv.UUIDToPgtype(id))

	var (
		apptID, serviceID, customerID pgtype.UUID
		date                          pgtype.Date
		slotTime, status              string
	)
	err := row.Scan(&apptID, &serviceID, &customerID, &date, &slotTime, &status)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("appointment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find appointment snapshot", err)
	}

	return &shared.AppointmentSnapshot{
		ID:         pgconv.UUIDFromPgtype(apptID),
		ServiceID:  pgconv.UUIDFromPgtype(serviceID),
		CustomerID: pgconv.UUIDFromPgtype(customerID),
		Date:       pgconv.DateFromPgtype(date),
		Time:       slotTime,
		Status:     status,
	}, nil
}

type appointmentListRows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func scanAppointmentListItems(rows appointmentListRows) ([]*queries.AppointmentListItem, error) {
	var items []*queries.AppointmentListItem
	for rows.Next() {
		var (
			id           pgtype.UUID
			serviceName  string
			date         pgtype.Date
			slotTime     string
			status       string
			depositCents int64
			createdAt    pgtype.Timestamptz
		)
		if err := rows.Scan(&id, &serviceName, &date, &slotTime, &status, &depositCents, &createdAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan appointment row", err)
		}
		items = append(items, &queries.AppointmentListItem{
			ID:           pgconv.UUIDFromPgtype(id),
			ServiceName:  serviceName,
			Date:         pgconv.DateFromPgtype(date).Format("2006-01-02"),
			Time:         slotTime,
			Status:       status,
			DepositCents: depositCents,
			CreatedAt:    pgconv.TimeFromPgtype(createdAt),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read appointment rows", err)
	}

	return items, nil
}
