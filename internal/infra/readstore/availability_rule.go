package readstore

import (
	"context"
	"time"

	"maison-booking/internal/domain/schedule"
	"maison-booking/internal/infra"
	"maison-booking/internal/infra/db"
	"maison-booking/internal/pkg/pgconv"
	"maison-booking/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

type RuleReadStore struct {
	db db.DBTX
}

func NewRuleReadStore(dbtx db.DBTX) *RuleReadStore {
	return &RuleReadStore{db: dbtx}
}

// Oldest rule wins when several enabled rules cover the same weekday; the
// ordering is explicit so concurrent admins editing the schedule cannot
// flip which rule the storefront sees.
const enabledRuleByWeekdayQuery = `
SELECT id, day_of_week, start_minutes, end_minutes, slot_duration_min, break_between_min, enabled
FROM availability_rules
WHERE day_of_week = $1 AND enabled
ORDER BY created_at, id
LIMIT 1`

func (r *RuleReadStore) EnabledByWeekday(ctx context.Context, weekday time.Weekday) (*schedule.Rule, error) {
	row := r.db.QueryRow(ctx, enabledRuleByWeekdayQuery, int(weekday))

	var (
		id                       pgtype.UUID
		dayOfWeek                int
		startMinutes, endMinutes int
		slotDurationMin          int
		breakBetweenMin          int
		enabled                  bool
	)
	err := row.Scan(&id, &dayOfWeek, &startMinutes, &endMinutes, &slotDurationMin, &breakBetweenMin, &enabled)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("no enabled rule for weekday", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find rule by weekday", err)
	}

	return schedule.ReconstructRule(pgconv.UUIDFromPgtype(id), dayOfWeek, startMinutes, endMinutes, slotDurationMin, breakBetweenMin, enabled), nil
}

const listWeekQuery = `
SELECT id, day_of_week, start_minutes, end_minutes, slot_duration_min, break_between_min, enabled
FROM availability_rules
ORDER BY day_of_week, created_at, id`

func (r *RuleReadStore) ListWeek(ctx context.Context) ([]*queries.RuleView, error) {
	rows, err := r.db.Query(ctx, listWeekQuery)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list availability rules", err)
	}
	defer rows.Close()

	var views []*queries.RuleView
	for rows.Next() {
		var (
			id                       pgtype.UUID
			dayOfWeek                int
			startMinutes, endMinutes int
			slotDurationMin          int
			breakBetweenMin          int
			enabled                  bool
		)
		if err := rows.Scan(&id, &dayOfWeek, &startMinutes, &endMinutes, &slotDurationMin, &breakBetweenMin, &enabled); err != nil {
			return nil, infra.WrapRepoErr("failed to scan availability rule", err)
		}
		views = append(views, &queries.RuleView{
			ID:              pgconv.UUIDFromPgtype(id),
			DayOfWeek:       dayOfWeek,
			StartTime:       schedule.FormatTimeOfDay(startMinutes),
			EndTime:         schedule.FormatTimeOfDay(endMinutes),
			SlotDurationMin: slotDurationMin,
			BreakBetweenMin: breakBetweenMin,
			Enabled:         enabled,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read availability rules", err)
	}

	return views, nil
}
