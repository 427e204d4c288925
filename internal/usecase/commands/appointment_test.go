//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"maison-booking/internal/domain/appointment"
	"maison-booking/internal/domain/schedule"
	"maison-booking/internal/domain/user"
	"maison-booking/internal/infra"
	"maison-booking/internal/infra/db"
	"maison-booking/internal/pkg/clock"
	"maison-booking/internal/usecase/commands"
	"maison-booking/internal/usecase/queries"
	"maison-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCommandReads struct {
	service    *shared.ServiceSnapshot
	serviceErr error
	coupon     *shared.CouponSnapshot
	couponErr  error
	appt       *shared.AppointmentSnapshot
	apptErr    error
	rule       *schedule.Rule
	ruleErr    error
}

func (f *fakeCommandReads) ServiceByID(_ context.Context, _ uuid.UUID) (*shared.ServiceSnapshot, error) {
	return f.service, f.serviceErr
}

func (f *fakeCommandReads) CouponByCode(_ context.Context, _ string) (*shared.CouponSnapshot, error) {
	return f.coupon, f.couponErr
}

func (f *fakeCommandReads) AppointmentByID(_ context.Context, _ uuid.UUID) (*shared.AppointmentSnapshot, error) {
	return f.appt, f.apptErr
}

func (f *fakeCommandReads) EnabledRuleByWeekday(_ context.Context, _ time.Weekday) (*schedule.Rule, error) {
	return f.rule, f.ruleErr
}

type fakeAppointmentRepo struct {
	taken     bool
	takenErr  error
	createErr error
	created   *appointment.Appointment
	createdID uuid.UUID
	updatedTo *appointment.Status
	updateErr error
}

func (f *fakeAppointmentRepo) Create(_ context.Context, _ db.DBTX, appt *appointment.Appointment) (uuid.UUID, error) {
	if f.createErr != nil {
		return uuid.Nil, f.createErr
	}
	f.created = appt
	f.createdID = appt.ID()
	return appt.ID(), nil
}

func (f *fakeAppointmentRepo) SlotTaken(_ context.Context, _ db.DBTX, _ appointment.BookingDate, _ appointment.SlotTime) (bool, error) {
	return f.taken, f.takenErr
}

func (f *fakeAppointmentRepo) UpdateStatus(_ context.Context, _ db.DBTX, _ uuid.UUID, status appointment.Status) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updatedTo = &status
	return nil
}

type fakeRuleRepo struct{}

func (f *fakeRuleRepo) ReplaceWeek(_ context.Context, _ db.DBTX, _ []*schedule.Rule) error {
	return nil
}

type fakeUserRepo struct{}

func (f *fakeUserRepo) UpdateLastLogin(_ context.Context, _ db.DBTX, _ uuid.UUID) error {
	return nil
}

type fakeTx struct {
	reads *fakeCommandReads
	appts *fakeAppointmentRepo
}

func (t *fakeTx) Appointments() shared.AppointmentRepository { return t.appts }
func (t *fakeTx) Rules() shared.RuleRepository               { return &fakeRuleRepo{} }
func (t *fakeTx) Users() shared.UserRepository               { return &fakeUserRepo{} }
func (t *fakeTx) Reads() shared.CommandReads                 { return t.reads }
func (t *fakeTx) DB() db.DBTX                                { return nil }

type fakeUoW struct {
	tx *fakeTx
}

func (u *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, u.tx)
}

func (u *fakeUoW) WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	return fn(ctx, nil)
}

func (u *fakeUoW) CommandReads() shared.CommandReads {
	return u.tx.reads
}

type fakeAppointmentQueries struct {
	view *queries.AppointmentView
	err  error
}

func (f *fakeAppointmentQueries) GetByID(_ context.Context, _ uuid.UUID) (*queries.AppointmentView, error) {
	return f.view, f.err
}

func (f *fakeAppointmentQueries) ListByCustomer(_ context.Context, _ uuid.UUID) ([]*queries.AppointmentListItem, error) {
	return nil, nil
}

func (f *fakeAppointmentQueries) ListByDate(_ context.Context, _ time.Time) ([]*queries.AppointmentListItem, error) {
	return nil, nil
}

func mondayRule(t *testing.T) *schedule.Rule {
	t.Helper()
	r, err := schedule.NewRule(uuid.New(), 1, "09:00", "12:00", 30, 10, true)
	require.NoError(t, err)
	return r
}

func newBookingFixture(t *testing.T) (commands.BookingCommands, *fakeCommandReads, *fakeAppointmentRepo) {
	t.Helper()

	reads := &fakeCommandReads{
		service: &shared.ServiceSnapshot{
			ID:           uuid.New(),
			Name:         "Private wine tasting",
			DepositCents: 5000,
			Enabled:      true,
		},
		rule: mondayRule(t),
	}
	appts := &fakeAppointmentRepo{}
	uow := &fakeUoW{tx: &fakeTx{reads: reads, appts: appts}}
	factory := appointment.NewFactory(clock.NewMockClock(time.Date(2026, time.September, 1, 9, 0, 0, 0, time.UTC)))
	apptQueries := &fakeAppointmentQueries{view: &queries.AppointmentView{Status: "pending"}}

	return commands.NewBookingCommands(uow, factory, apptQueries), reads, appts
}

func bookCmd(reads *fakeCommandReads) commands.BookAppointment {
	return commands.BookAppointment{
		Date:      time.Date(2026, time.September, 14, 0, 0, 0, 0, time.UTC), // a Monday
		Time:      "09:40",
		ServiceID: reads.service.ID,
	}
}

func TestBook(t *testing.T) {
	ctx := context.Background()
	customerID := uuid.New()

	t.Run("books an offered free slot", func(t *testing.T) {
		cmds, reads, appts := newBookingFixture(t)

		view, err := cmds.Book(ctx, customerID, bookCmd(reads))
		require.NoError(t, err)
		require.NotNil(t, view)

		require.NotNil(t, appts.created)
		assert.Equal(t, appointment.StatusPending, appts.created.Status())
		assert.Equal(t, "09:40", appts.created.Slot().String())
		assert.Equal(t, int64(5000), appts.created.DepositCents().Cents())
	})

	t.Run("coupon discounts the deposit", func(t *testing.T) {
		cmds, reads, appts := newBookingFixture(t)
		amountOff := int32(1500)
		reads.coupon = &shared.CouponSnapshot{
			ID:             uuid.New(),
			Code:           "VIP26",
			AmountOffCents: &amountOff,
		}

		cmd := bookCmd(reads)
		code := "VIP26"
		cmd.CouponCode = &code

		_, err := cmds.Book(ctx, customerID, cmd)
		require.NoError(t, err)
		assert.Equal(t, int64(3500), appts.created.DepositCents().Cents())
	})

	t.Run("pre-check conflict", func(t *testing.T) {
		cmds, reads, appts := newBookingFixture(t)
		appts.taken = true

		_, err := cmds.Book(ctx, customerID, bookCmd(reads))
		assert.ErrorIs(t, err, commands.ErrBookingConflict)
	})

	t.Run("unique index race maps to conflict", func(t *testing.T) {
		cmds, reads, appts := newBookingFixture(t)
		appts.createErr = infra.WrapRepoErr("failed to create appointment",
			&pgconn.PgError{Code: "23505"})

		_, err := cmds.Book(ctx, customerID, bookCmd(reads))
		assert.ErrorIs(t, err, commands.ErrBookingConflict)
	})

	t.Run("slot off the grid is rejected", func(t *testing.T) {
		cmds, reads, _ := newBookingFixture(t)

		cmd := bookCmd(reads)
		cmd.Time = "09:15"

		_, err := cmds.Book(ctx, customerID, cmd)
		assert.ErrorIs(t, err, commands.ErrSlotNotOffered)
	})

	t.Run("no rule for the weekday rejects the slot", func(t *testing.T) {
		cmds, reads, _ := newBookingFixture(t)
		reads.rule = nil
		reads.ruleErr = infra.WrapRepoErr("no rule", nil, infra.KindNotFound)

		_, err := cmds.Book(ctx, customerID, bookCmd(reads))
		assert.ErrorIs(t, err, commands.ErrSlotNotOffered)
	})

	t.Run("unknown service", func(t *testing.T) {
		cmds, reads, _ := newBookingFixture(t)
		cmd := bookCmd(reads)
		reads.service = nil
		reads.serviceErr = infra.WrapRepoErr("not found", nil, infra.KindNotFound)

		_, err := cmds.Book(ctx, customerID, cmd)
		assert.ErrorIs(t, err, commands.ErrServiceNotFound)
	})

	t.Run("disabled service is not bookable", func(t *testing.T) {
		cmds, reads, _ := newBookingFixture(t)
		reads.service.Enabled = false

		_, err := cmds.Book(ctx, customerID, bookCmd(reads))
		assert.ErrorIs(t, err, commands.ErrServiceNotBookable)
	})

	t.Run("expired coupon", func(t *testing.T) {
		cmds, reads, _ := newBookingFixture(t)
		amountOff := int32(1000)
		expired := time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC)
		reads.coupon = &shared.CouponSnapshot{
			ID:             uuid.New(),
			Code:           "SOLDES25",
			AmountOffCents: &amountOff,
			ValidTo:        &expired,
		}

		cmd := bookCmd(reads)
		code := "SOLDES25"
		cmd.CouponCode = &code

		_, err := cmds.Book(ctx, customerID, cmd)
		assert.ErrorIs(t, err, commands.ErrInvalidCoupon)
	})

	t.Run("malformed slot time", func(t *testing.T) {
		cmds, reads, _ := newBookingFixture(t)
		cmd := bookCmd(reads)
		cmd.Time = "9h40"

		_, err := cmds.Book(ctx, customerID, cmd)
		assert.ErrorIs(t, err, commands.ErrInvalidSlotTime)
	})
}

func TestCancel(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()
	apptID := uuid.New()

	newFixture := func(status string) (commands.BookingCommands, *fakeAppointmentRepo) {
		reads := &fakeCommandReads{
			appt: &shared.AppointmentSnapshot{
				ID:         apptID,
				CustomerID: ownerID,
				Status:     status,
			},
		}
		appts := &fakeAppointmentRepo{}
		uow := &fakeUoW{tx: &fakeTx{reads: reads, appts: appts}}
		factory := appointment.NewFactory(clock.NewMockClock(time.Now()))
		return commands.NewBookingCommands(uow, factory, &fakeAppointmentQueries{}), appts
	}

	t.Run("owner cancels a pending appointment", func(t *testing.T) {
		cmds, appts := newFixture("pending")

		require.NoError(t, cmds.Cancel(ctx, ownerID, user.RoleCustomer, apptID))
		require.NotNil(t, appts.updatedTo)
		assert.Equal(t, appointment.StatusCancelled, *appts.updatedTo)
	})

	t.Run("staff cancels on behalf of any customer", func(t *testing.T) {
		cmds, appts := newFixture("confirmed")

		require.NoError(t, cmds.Cancel(ctx, uuid.New(), user.RoleStaff, apptID))
		require.NotNil(t, appts.updatedTo)
	})

	t.Run("another customer cannot cancel", func(t *testing.T) {
		cmds, _ := newFixture("pending")

		err := cmds.Cancel(ctx, uuid.New(), user.RoleCustomer, apptID)
		assert.ErrorIs(t, err, commands.ErrNotAppointmentOwner)
	})

	t.Run("cancelling a cancelled appointment is a no-op", func(t *testing.T) {
		cmds, appts := newFixture("cancelled")

		require.NoError(t, cmds.Cancel(ctx, ownerID, user.RoleCustomer, apptID))
		assert.Nil(t, appts.updatedTo)
	})

	t.Run("completed appointments stay completed", func(t *testing.T) {
		cmds, _ := newFixture("completed")

		err := cmds.Cancel(ctx, ownerID, user.RoleCustomer, apptID)
		assert.ErrorIs(t, err, commands.ErrInvalidTransition)
	})
}

func TestUpdateStatus(t *testing.T) {
	ctx := context.Background()
	apptID := uuid.New()

	newFixture := func(status string) (commands.BookingCommands, *fakeAppointmentRepo) {
		reads := &fakeCommandReads{
			appt: &shared.AppointmentSnapshot{ID: apptID, CustomerID: uuid.New(), Status: status},
		}
		appts := &fakeAppointmentRepo{}
		uow := &fakeUoW{tx: &fakeTx{reads: reads, appts: appts}}
		factory := appointment.NewFactory(clock.NewMockClock(time.Now()))
		return commands.NewBookingCommands(uow, factory, &fakeAppointmentQueries{}), appts
	}

	t.Run("pending moves to confirmed", func(t *testing.T) {
		cmds, appts := newFixture("pending")

		require.NoError(t, cmds.UpdateStatus(ctx, apptID, "confirmed"))
		require.NotNil(t, appts.updatedTo)
		assert.Equal(t, appointment.StatusConfirmed, *appts.updatedTo)
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		cmds, _ := newFixture("pending")

		err := cmds.UpdateStatus(ctx, apptID, "archived")
		assert.ErrorIs(t, err, commands.ErrInvalidStatus)
	})

	t.Run("pending cannot jump to completed", func(t *testing.T) {
		cmds, _ := newFixture("pending")

		err := cmds.UpdateStatus(ctx, apptID, "completed")
		assert.ErrorIs(t, err, commands.ErrInvalidTransition)
	})
}
