package repository

import (
	"context"

	"maison-booking/internal/domain/schedule"
	"maison-booking/internal/infra"
	"maison-booking/internal/infra/db"
	"maison-booking/internal/pkg/pgconv"
)

type RuleRepository struct{}

func NewRuleRepository() *RuleRepository {
	return &RuleRepository{}
}

const deleteAllRulesQuery = `DELETE FROM availability_rules`

const insertRuleQuery = `
INSERT INTO availability_rules (id, day_of_week, start_minutes, end_minutes, slot_duration_min, break_between_min, enabled)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

// ReplaceWeek swaps the whole weekly template in one transaction so the
// storefront never observes a half-updated schedule.
func (r *RuleRepository) ReplaceWeek(ctx context.Context, dbtx db.DBTX, rules []*schedule.Rule) error {
	if _, err := dbtx.Exec(ctx, deleteAllRulesQuery); err != nil {
		return infra.WrapRepoErr("failed to clear availability rules", err)
	}

	for _, rule := range rules {
		_, err := dbtx.Exec(ctx, insertRuleQuery,
			pgconv.UUIDToPgtype(rule.ID()),
			rule.DayOfWeek(),
			rule.StartMinutes(),
			rule.EndMinutes(),
			rule.SlotDurationMin(),
			rule.BreakBetweenMin(),
			rule.Enabled(),
		)
		if err != nil {
			return infra.WrapRepoErr("failed to insert availability rule", err)
		}
	}

	return nil
}
