package queries

import (
	"context"

	"maison-booking/internal/pkg/errs"
)

var ErrRuleLookupFailed = errs.New("availability rule lookup failed")

type RuleQueries interface {
	// WeeklyRules returns the full admin-managed schedule, every weekday
	// and rule included, ordered by day then id.
	WeeklyRules(ctx context.Context) ([]*RuleView, error)
}

type ruleQueriesImpl struct {
	rules RuleReadStore
}

func NewRuleQueries(rules RuleReadStore) RuleQueries {
	return &ruleQueriesImpl{rules: rules}
}

func (q *ruleQueriesImpl) WeeklyRules(ctx context.Context) ([]*RuleView, error) {
	views, err := q.rules.ListWeek(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrRuleLookupFailed)
	}
	return views, nil
}
