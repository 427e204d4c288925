//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"maison-booking/internal/domain/schedule"
	"maison-booking/internal/infra"
	"maison-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRuleStore struct {
	rule *schedule.Rule
	err  error
}

func (s *stubRuleStore) EnabledByWeekday(_ context.Context, _ time.Weekday) (*schedule.Rule, error) {
	return s.rule, s.err
}

func (s *stubRuleStore) ListWeek(_ context.Context) ([]*queries.RuleView, error) {
	return nil, nil
}

type stubBookedStore struct {
	times []string
	err   error
}

func (s *stubBookedStore) ActiveTimesByDate(_ context.Context, _ time.Time) ([]string, error) {
	return s.times, s.err
}

func newRule(t *testing.T, start, end string, duration, gap int) *schedule.Rule {
	t.Helper()
	r, err := schedule.NewRule(uuid.New(), 1, start, end, duration, gap, true)
	require.NoError(t, err)
	return r
}

func TestSlotsForDate(t *testing.T) {
	ctx := context.Background()
	monday := time.Date(2026, time.September, 14, 0, 0, 0, 0, time.UTC)

	t.Run("every candidate slot appears with its availability", func(t *testing.T) {
		q := queries.NewAvailabilityQueries(
			&stubRuleStore{rule: newRule(t, "09:00", "12:00", 30, 10)},
			&stubBookedStore{times: []string{"09:40", "11:00"}},
		)

		slots, err := q.SlotsForDate(ctx, monday)
		require.NoError(t, err)

		assert.Equal(t, []queries.SlotView{
			{Time: "09:00", Available: true},
			{Time: "09:40", Available: false},
			{Time: "10:20", Available: true},
			{Time: "11:00", Available: false},
			{Time: "11:40", Available: true},
		}, slots)
	})

	t.Run("no rule for the weekday yields an empty list, not an error", func(t *testing.T) {
		q := queries.NewAvailabilityQueries(
			&stubRuleStore{err: infra.WrapRepoErr("no rule", nil, infra.KindNotFound)},
			&stubBookedStore{},
		)

		slots, err := q.SlotsForDate(ctx, monday)
		require.NoError(t, err)
		assert.Empty(t, slots)
		assert.NotNil(t, slots)
	})

	t.Run("booked time not on the grid changes nothing", func(t *testing.T) {
		// A stale row from an older schedule occupies 09:15; the current grid
		// does not offer it, so every offered slot stays available.
		q := queries.NewAvailabilityQueries(
			&stubRuleStore{rule: newRule(t, "09:00", "10:00", 30, 0)},
			&stubBookedStore{times: []string{"09:15"}},
		)

		slots, err := q.SlotsForDate(ctx, monday)
		require.NoError(t, err)
		for _, s := range slots {
			assert.True(t, s.Available, "slot %s", s.Time)
		}
	})

	t.Run("store failures surface as lookup errors", func(t *testing.T) {
		q := queries.NewAvailabilityQueries(
			&stubRuleStore{err: infra.WrapRepoErr("boom", nil)},
			&stubBookedStore{},
		)

		_, err := q.SlotsForDate(ctx, monday)
		assert.ErrorIs(t, err, queries.ErrAvailabilityLookupFailed)
	})

	t.Run("booked lookup failure surfaces as lookup error", func(t *testing.T) {
		q := queries.NewAvailabilityQueries(
			&stubRuleStore{rule: newRule(t, "09:00", "10:00", 30, 0)},
			&stubBookedStore{err: infra.WrapRepoErr("boom", nil)},
		)

		_, err := q.SlotsForDate(ctx, monday)
		assert.ErrorIs(t, err, queries.ErrAvailabilityLookupFailed)
	})
}
