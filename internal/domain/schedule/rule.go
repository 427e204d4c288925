package schedule

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidDayOfWeek    = errors.New("day of week must be between 0 (Sunday) and 6 (Saturday)")
	ErrInvalidTimeOfDay    = errors.New("time of day must be HH:MM")
	ErrInvalidWindow       = errors.New("start time must be before end time")
	ErrInvalidSlotDuration = errors.New("slot duration must be positive")
	ErrInvalidBreak        = errors.New("break between slots cannot be negative")
)

// Rule is a recurring availability window for one weekday.
// The booking flow treats rules as read-only configuration.
type Rule struct {
	id              uuid.UUID
	dayOfWeek       int
	startMinutes    int
	endMinutes      int
	slotDurationMin int
	breakBetweenMin int
	enabled         bool
}

func NewRule(
	id uuid.UUID,
	dayOfWeek int,
	startTime, endTime string,
	slotDurationMin, breakBetweenMin int,
	enabled bool,
) (*Rule, error) {
	if dayOfWeek < 0 || dayOfWeek > 6 {
		return nil, ErrInvalidDayOfWeek
	}

	startMinutes, err := ParseTimeOfDay(startTime)
	if err != nil {
		return nil, err
	}
	endMinutes, err := ParseTimeOfDay(endTime)
	if err != nil {
		return nil, err
	}
	if startMinutes >= endMinutes {
		return nil, ErrInvalidWindow
	}

	if slotDurationMin <= 0 {
		return nil, ErrInvalidSlotDuration
	}
	if breakBetweenMin < 0 {
		return nil, ErrInvalidBreak
	}

	return &Rule{
		id:              id,
		dayOfWeek:       dayOfWeek,
		startMinutes:    startMinutes,
		endMinutes:      endMinutes,
		slotDurationMin: slotDurationMin,
		breakBetweenMin: breakBetweenMin,
		enabled:         enabled,
	}, nil
}

func ReconstructRule(
	id uuid.UUID,
	dayOfWeek int,
	startMinutes, endMinutes, slotDurationMin, breakBetweenMin int,
	enabled bool,
) *Rule {
	return &Rule{
		id:              id,
		dayOfWeek:       dayOfWeek,
		startMinutes:    startMinutes,
		endMinutes:      endMinutes,
		slotDurationMin: slotDurationMin,
		breakBetweenMin: breakBetweenMin,
		enabled:         enabled,
	}
}

func (r *Rule) AppliesTo(weekday time.Weekday) bool {
	return r.enabled && r.dayOfWeek == int(weekday)
}

func (r *Rule) ID() uuid.UUID        { return r.id }
func (r *Rule) DayOfWeek() int       { return r.dayOfWeek }
func (r *Rule) StartMinutes() int    { return r.startMinutes }
func (r *Rule) EndMinutes() int      { return r.endMinutes }
func (r *Rule) StartTime() string    { return FormatTimeOfDay(r.startMinutes) }
func (r *Rule) EndTime() string      { return FormatTimeOfDay(r.endMinutes) }
func (r *Rule) SlotDurationMin() int { return r.slotDurationMin }
func (r *Rule) BreakBetweenMin() int { return r.breakBetweenMin }
func (r *Rule) Enabled() bool        { return r.enabled }

// ParseTimeOfDay converts a zero-padded HH:MM wall-clock string to minutes
// past midnight.
func ParseTimeOfDay(s string) (int, error) {
	if len(s) != 5 || s[2] != ':' {
		return 0, ErrInvalidTimeOfDay
	}
	for _, i := range []int{0, 1, 3, 4} {
		if s[i] < '0' || s[i] > '9' {
			return 0, ErrInvalidTimeOfDay
		}
	}
	hours := int(s[0]-'0')*10 + int(s[1]-'0')
	minutes := int(s[3]-'0')*10 + int(s[4]-'0')
	if hours > 23 || minutes > 59 {
		return 0, ErrInvalidTimeOfDay
	}
	return hours*60 + minutes, nil
}

func FormatTimeOfDay(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
