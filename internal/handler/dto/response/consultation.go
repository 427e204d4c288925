package response

import (
	"maison-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ServiceResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Description  *string   `json:"description,omitempty"`
	DurationMin  int32     `json:"duration_min"`
	DepositCents int64     `json:"deposit_cents"`
	SortOrder    int32     `json:"sort_order"`
}

type SlotResponse struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
}

type SlotsResponse struct {
	Date  string         `json:"date"`
	Slots []SlotResponse `json:"slots"`
}

func FromServiceViews(views []*queries.ServiceView) []*ServiceResponse {
	responses := make([]*ServiceResponse, 0, len(views))
	if err := copier.Copy(&responses, views); err != nil {
		return []*ServiceResponse{}
	}
	return responses
}

func FromSlotViews(date string, views []queries.SlotView) *SlotsResponse {
	slots := make([]SlotResponse, 0, len(views))
	if err := copier.Copy(&slots, views); err != nil {
		slots = []SlotResponse{}
	}
	return &SlotsResponse{Date: date, Slots: slots}
}
