//go:build unit

package appointment_test

import (
	"testing"
	"time"

	"maison-booking/internal/domain/appointment"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAppointment(t *testing.T) *appointment.Appointment {
	t.Helper()

	slot, err := appointment.NewSlotTime("10:30")
	require.NoError(t, err)
	note, err := appointment.NewNote("prefers the back salon")
	require.NoError(t, err)

	return appointment.NewAppointment(
		uuid.New(),
		uuid.New(),
		appointment.NewBookingDate(2026, time.September, 14, time.UTC),
		slot,
		appointment.NewMoney(5000),
		nil,
		note,
	)
}

func TestNewAppointment(t *testing.T) {
	appt := newTestAppointment(t)

	assert.NotEqual(t, uuid.Nil, appt.ID())
	assert.Equal(t, appointment.StatusPending, appt.Status())
	assert.True(t, appt.IsActive())
	assert.Equal(t, "10:30", appt.Slot().String())
	assert.Equal(t, "2026-09-14", appt.Date().String())
	assert.Equal(t, int64(5000), appt.DepositCents().Cents())
}

func TestAppointmentCancel(t *testing.T) {
	t.Run("pending appointment cancels and frees its slot", func(t *testing.T) {
		appt := newTestAppointment(t)

		require.NoError(t, appt.Cancel())
		assert.Equal(t, appointment.StatusCancelled, appt.Status())
		assert.False(t, appt.IsActive())
	})

	t.Run("cancelling twice fails", func(t *testing.T) {
		appt := newTestAppointment(t)
		require.NoError(t, appt.Cancel())

		assert.ErrorIs(t, appt.Cancel(), appointment.ErrAlreadyCancelled)
	})

	t.Run("completed appointment cannot be cancelled", func(t *testing.T) {
		appt := newTestAppointment(t)
		require.NoError(t, appt.TransitionTo(appointment.StatusConfirmed))
		require.NoError(t, appt.TransitionTo(appointment.StatusCompleted))

		assert.ErrorIs(t, appt.Cancel(), appointment.ErrAlreadyCompleted)
	})
}

func TestAppointmentTransitions(t *testing.T) {
	type testCase struct {
		name  string
		from  appointment.Status
		to    appointment.Status
		errIs error
	}

	cases := []testCase{
		{name: "pending to confirmed", from: appointment.StatusPending, to: appointment.StatusConfirmed},
		{name: "pending to cancelled", from: appointment.StatusPending, to: appointment.StatusCancelled},
		{name: "confirmed to completed", from: appointment.StatusConfirmed, to: appointment.StatusCompleted},
		{name: "confirmed to cancelled", from: appointment.StatusConfirmed, to: appointment.StatusCancelled},
		{name: "pending cannot complete directly", from: appointment.StatusPending, to: appointment.StatusCompleted, errIs: appointment.ErrInvalidTransition},
		{name: "completed is terminal", from: appointment.StatusCompleted, to: appointment.StatusConfirmed, errIs: appointment.ErrInvalidTransition},
		{name: "cancelled is terminal", from: appointment.StatusCancelled, to: appointment.StatusPending, errIs: appointment.ErrInvalidTransition},
		{name: "unknown status rejected", from: appointment.StatusPending, to: appointment.Status("archived"), errIs: appointment.ErrInvalidStatus},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			slot, _ := appointment.NewSlotTime("09:00")
			appt := appointment.ReconstructAppointment(
				uuid.New(), uuid.New(), uuid.New(),
				appointment.NewBookingDate(2026, time.September, 14, time.UTC),
				slot, tc.from, appointment.NewMoney(0), nil, appointment.Note{},
				time.Now(), time.Now(),
			)

			err := appt.TransitionTo(tc.to)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				assert.Equal(t, tc.from, appt.Status())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.to, appt.Status())
		})
	}
}

func TestSlotTime(t *testing.T) {
	t.Run("valid time", func(t *testing.T) {
		slot, err := appointment.NewSlotTime("09:40")
		require.NoError(t, err)
		assert.Equal(t, "09:40", slot.String())
		assert.Equal(t, 9*60+40, slot.Minutes())
	})

	t.Run("invalid time", func(t *testing.T) {
		for _, s := range []string{"", "9:40", "09:40:00", "24:00"} {
			_, err := appointment.NewSlotTime(s)
			assert.ErrorIs(t, err, appointment.ErrInvalidSlotTime, "input %q", s)
		}
	})
}

func TestNote(t *testing.T) {
	t.Run("trims whitespace", func(t *testing.T) {
		note, err := appointment.NewNote("  fitting for the autumn collection  ")
		require.NoError(t, err)
		assert.Equal(t, "fitting for the autumn collection", note.String())
	})

	t.Run("rejects overlong note", func(t *testing.T) {
		long := make([]byte, appointment.MaxNoteLength+1)
		for i := range long {
			long[i] = 'a'
		}
		_, err := appointment.NewNote(string(long))
		assert.ErrorIs(t, err, appointment.ErrNoteTooLong)
	})
}

func TestBookingDate(t *testing.T) {
	t.Run("normalizes to midnight and keeps the weekday", func(t *testing.T) {
		paris, err := time.LoadLocation("Europe/Paris")
		require.NoError(t, err)

		late := time.Date(2026, time.September, 14, 23, 45, 0, 0, paris)
		date := appointment.BookingDateOf(late)

		assert.Equal(t, "2026-09-14", date.String())
		assert.Equal(t, time.Monday, date.Weekday())
		assert.Equal(t, 0, date.Time().Hour())
	})
}
