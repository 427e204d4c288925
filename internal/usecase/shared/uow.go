package shared

import (
	"context"
	"time"

	"maison-booking/internal/domain/appointment"
	"maison-booking/internal/domain/schedule"
	"maison-booking/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Appointments() AppointmentRepository
	Rules() RuleRepository
	Users() UserRepository
	Reads() CommandReads
	DB() db.DBTX
}

type CommandReads interface {
	ServiceByID(ctx context.Context, id uuid.UUID) (*ServiceSnapshot, error)
	CouponByCode(ctx context.Context, code string) (*CouponSnapshot, error)
	AppointmentByID(ctx context.Context, id uuid.UUID) (*AppointmentSnapshot, error)
	EnabledRuleByWeekday(ctx context.Context, weekday time.Weekday) (*schedule.Rule, error)
}

type AppointmentRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, appt *appointment.Appointment) (uuid.UUID, error)
	SlotTaken(ctx context.Context, dbtx db.DBTX, date appointment.BookingDate, slot appointment.SlotTime) (bool, error)
	UpdateStatus(ctx context.Context, dbtx db.DBTX, id uuid.UUID, status appointment.Status) error
}

type RuleRepository interface {
	ReplaceWeek(ctx context.Context, dbtx db.DBTX, rules []*schedule.Rule) error
}

type UserRepository interface {
	UpdateLastLogin(ctx context.Context, dbtx db.DBTX, userID uuid.UUID) error
}
