package commands

import (
	"context"

	"maison-booking/internal/domain/schedule"
	"maison-booking/internal/pkg/errs"
	"maison-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrInvalidRule = errs.New("invalid availability rule")

type WeeklyRule struct {
	DayOfWeek       int
	StartTime       string
	EndTime         string
	SlotDurationMin int
	BreakBetweenMin int
	Enabled         bool
}

type ScheduleCommands interface {
	// ReplaceWeeklyRules swaps the whole weekly schedule atomically so the
	// slot generator never sees a half-updated week.
	ReplaceWeeklyRules(ctx context.Context, rules []WeeklyRule) error
}

type scheduleCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewScheduleCommands(uow shared.UnitOfWork) ScheduleCommands {
	return &scheduleCommandsImpl{uow: uow}
}

func (c *scheduleCommandsImpl) ReplaceWeeklyRules(ctx context.Context, rules []WeeklyRule) error {
	entities := make([]*schedule.Rule, len(rules))
	for i, r := range rules {
		entity, err := schedule.NewRule(
			uuid.New(),
			r.DayOfWeek,
			r.StartTime,
			r.EndTime,
			r.SlotDurationMin,
			r.BreakBetweenMin,
			r.Enabled,
		)
		if err != nil {
			return ErrInvalidRule
		}
		entities[i] = entity
	}

	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Rules().ReplaceWeek(ctx, tx.DB(), entities); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
}
