package queries

import (
	"context"
	"time"

	"maison-booking/internal/domain/schedule"
	"maison-booking/internal/infra"
	"maison-booking/internal/pkg/errs"
)

var ErrAvailabilityLookupFailed = errs.New("availability lookup failed")

// RuleReadStore is the schedule configuration as the read side sees it.
type RuleReadStore interface {
	EnabledByWeekday(ctx context.Context, weekday time.Weekday) (*schedule.Rule, error)
	ListWeek(ctx context.Context) ([]*RuleView, error)
}

// BookedTimesReadStore exposes the slice of the booking ledger the resolver
// needs: which times are taken by an active appointment on one day.
type BookedTimesReadStore interface {
	ActiveTimesByDate(ctx context.Context, date time.Time) ([]string, error)
}

type AvailabilityQueries interface {
	// SlotsForDate returns every candidate slot of the date's weekday rule,
	// each marked available unless an active appointment holds it. The
	// result is computed fresh on every call; the ledger may change between
	// requests so nothing is cached.
	SlotsForDate(ctx context.Context, date time.Time) ([]SlotView, error)
}

type availabilityQueriesImpl struct {
	rules    RuleReadStore
	bookings BookedTimesReadStore
}

func NewAvailabilityQueries(rules RuleReadStore, bookings BookedTimesReadStore) AvailabilityQueries {
	return &availabilityQueriesImpl{
		rules:    rules,
		bookings: bookings,
	}
}

func (q *availabilityQueriesImpl) SlotsForDate(ctx context.Context, date time.Time) ([]SlotView, error) {
	rule, err := q.rules.EnabledByWeekday(ctx, date.Weekday())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			// No schedule for this weekday: nothing offered, not an error.
			return []SlotView{}, nil
		}
		return nil, ErrAvailabilityLookupFailed
	}

	candidates := schedule.CandidateSlots(rule)
	if len(candidates) == 0 {
		return []SlotView{}, nil
	}

	bookedTimes, err := q.bookings.ActiveTimesByDate(ctx, date)
	if err != nil {
		return nil, ErrAvailabilityLookupFailed
	}

	booked := make(map[string]struct{}, len(bookedTimes))
	for _, t := range bookedTimes {
		booked[t] = struct{}{}
	}

	slots := make([]SlotView, len(candidates))
	for i, t := range candidates {
		_, taken := booked[t]
		slots[i] = SlotView{Time: t, Available: !taken}
	}

	return slots, nil
}
