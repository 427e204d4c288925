package appointment

import (
	"errors"
	"strings"
	"time"

	"maison-booking/internal/domain/schedule"
)

var (
	ErrInvalidSlotTime = errors.New("slot time must be HH:MM")
	ErrNoteTooLong     = errors.New("note is too long (max 500 characters)")
)

const MaxNoteLength = 500

// SlotTime is a wall-clock appointment start time. It matches a generated
// slot string exactly, so equality is string equality.
type SlotTime struct {
	minutes int
}

func NewSlotTime(value string) (SlotTime, error) {
	minutes, err := schedule.ParseTimeOfDay(value)
	if err != nil {
		return SlotTime{}, ErrInvalidSlotTime
	}
	return SlotTime{minutes: minutes}, nil
}

func (t SlotTime) String() string {
	return schedule.FormatTimeOfDay(t.minutes)
}

func (t SlotTime) Minutes() int {
	return t.minutes
}

// BookingDate is a calendar day in the boutique's timezone.
type BookingDate struct {
	value time.Time
}

func NewBookingDate(year int, month time.Month, day int, loc *time.Location) BookingDate {
	return BookingDate{value: time.Date(year, month, day, 0, 0, 0, 0, loc)}
}

func BookingDateOf(t time.Time) BookingDate {
	year, month, day := t.Date()
	return BookingDate{value: time.Date(year, month, day, 0, 0, 0, 0, t.Location())}
}

func (d BookingDate) Time() time.Time        { return d.value }
func (d BookingDate) Weekday() time.Weekday  { return d.value.Weekday() }
func (d BookingDate) String() string         { return d.value.Format("2006-01-02") }
func (d BookingDate) Equal(o BookingDate) bool {
	return d.value.Year() == o.value.Year() && d.value.YearDay() == o.value.YearDay()
}

type Note struct {
	value string
}

func NewNote(value string) (Note, error) {
	trimmed := strings.TrimSpace(value)
	if len(trimmed) > MaxNoteLength {
		return Note{}, ErrNoteTooLong
	}
	return Note{value: trimmed}, nil
}

func (n Note) String() string { return n.value }
func (n Note) IsEmpty() bool  { return n.value == "" }

type Money struct {
	cents int64
}

func NewMoney(cents int64) Money {
	if cents < 0 {
		cents = 0
	}
	return Money{cents: cents}
}

func (m Money) Cents() int64 { return m.cents }
