package response

import (
	"maison-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type RuleResponse struct {
	ID              uuid.UUID `json:"id"`
	DayOfWeek       int       `json:"day_of_week"`
	StartTime       string    `json:"start_time"`
	EndTime         string    `json:"end_time"`
	SlotDurationMin int       `json:"slot_duration_min"`
	BreakBetweenMin int       `json:"break_between_min"`
	Enabled         bool      `json:"enabled"`
}

func FromRuleViews(views []*queries.RuleView) []*RuleResponse {
	responses := make([]*RuleResponse, 0, len(views))
	if err := copier.Copy(&responses, views); err != nil {
		return []*RuleResponse{}
	}
	return responses
}
