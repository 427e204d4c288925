package request

type WeeklyRuleRequest struct {
	DayOfWeek       int    `json:"day_of_week" binding:"min=0,max=6"`
	StartTime       string `json:"start_time" binding:"required"`
	EndTime         string `json:"end_time" binding:"required"`
	SlotDurationMin int    `json:"slot_duration_min" binding:"required,min=1"`
	BreakBetweenMin int    `json:"break_between_min" binding:"min=0"`
	Enabled         bool   `json:"enabled"`
}

type ReplaceRulesRequest struct {
	Rules []WeeklyRuleRequest `json:"rules" binding:"required,dive"`
}

type UpdateAppointmentStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
