//go:build unit

package commands_test

import (
	"context"
	"testing"

	"maison-booking/internal/domain/schedule"
	"maison-booking/internal/infra/db"
	"maison-booking/internal/usecase/commands"
	"maison-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingRuleRepo struct {
	replaced []*schedule.Rule
	err      error
}

func (f *recordingRuleRepo) ReplaceWeek(_ context.Context, _ db.DBTX, rules []*schedule.Rule) error {
	f.replaced = rules
	return f.err
}

type scheduleTx struct {
	rules *recordingRuleRepo
}

func (t *scheduleTx) Appointments() shared.AppointmentRepository { return nil }
func (t *scheduleTx) Rules() shared.RuleRepository               { return t.rules }
func (t *scheduleTx) Users() shared.UserRepository               { return nil }
func (t *scheduleTx) Reads() shared.CommandReads                 { return nil }
func (t *scheduleTx) DB() db.DBTX                                { return nil }

type scheduleUoW struct {
	tx *scheduleTx
}

func (u *scheduleUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, u.tx)
}

func (u *scheduleUoW) WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	return fn(ctx, nil)
}

func (u *scheduleUoW) CommandReads() shared.CommandReads { return nil }

func validWeeklyRule() commands.WeeklyRule {
	return commands.WeeklyRule{
		DayOfWeek:       1,
		StartTime:       "09:00",
		EndTime:         "18:00",
		SlotDurationMin: 30,
		BreakBetweenMin: 10,
		Enabled:         true,
	}
}

func TestReplaceWeeklyRules(t *testing.T) {
	ctx := context.Background()

	t.Run("success: swaps the whole week in one call", func(t *testing.T) {
		repo := &recordingRuleRepo{}
		c := commands.NewScheduleCommands(&scheduleUoW{tx: &scheduleTx{rules: repo}})

		saturday := validWeeklyRule()
		saturday.DayOfWeek = 6
		saturday.EndTime = "13:00"

		err := c.ReplaceWeeklyRules(ctx, []commands.WeeklyRule{validWeeklyRule(), saturday})
		require.NoError(t, err)
		require.Len(t, repo.replaced, 2)
		assert.Equal(t, 1, repo.replaced[0].DayOfWeek())
		assert.Equal(t, 6, repo.replaced[1].DayOfWeek())
		assert.NotEqual(t, uuid.Nil, repo.replaced[0].ID())
	})

	t.Run("error: rule failing domain validation surfaces as ErrInvalidRule", func(t *testing.T) {
		repo := &recordingRuleRepo{}
		c := commands.NewScheduleCommands(&scheduleUoW{tx: &scheduleTx{rules: repo}})

		bad := validWeeklyRule()
		bad.StartTime = "19:00"
		bad.EndTime = "09:00"

		err := c.ReplaceWeeklyRules(ctx, []commands.WeeklyRule{bad})
		assert.ErrorIs(t, err, commands.ErrInvalidRule)
		assert.Nil(t, repo.replaced, "nothing must reach the repository")
	})

	t.Run("error: repository failure is not reported as a validation error", func(t *testing.T) {
		repo := &recordingRuleRepo{err: assert.AnError}
		c := commands.NewScheduleCommands(&scheduleUoW{tx: &scheduleTx{rules: repo}})

		err := c.ReplaceWeeklyRules(ctx, []commands.WeeklyRule{validWeeklyRule()})
		require.Error(t, err)
		assert.NotErrorIs(t, err, commands.ErrInvalidRule)
	})
}
