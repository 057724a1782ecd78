package response

import (
	"staybook/internal/usecase/queries"

	"github.com/google/uuid"
)

type DayResponse struct {
	Date  string `json:"date"`
	State string `json:"state"`
}

type CalendarResponse struct {
	PropertyID uuid.UUID     `json:"propertyId"`
	Days       []DayResponse `json:"days"`
}

type AvailabilityCheckResponse struct {
	PropertyID uuid.UUID `json:"propertyId"`
	Start      string    `json:"start"`
	End        string    `json:"end"`
	Free       bool      `json:"free"`
}

func FromDayViews(propertyID uuid.UUID, days []queries.DayView) *CalendarResponse {
	out := &CalendarResponse{PropertyID: propertyID, Days: make([]DayResponse, len(days))}
	for i, d := range days {
		out.Days[i] = DayResponse{Date: d.Date, State: d.State}
	}
	return out
}
