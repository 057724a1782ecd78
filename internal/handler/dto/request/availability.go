package request

import (
	"time"

	"staybook/internal/domain/availability"
)

// DateRangeQuery is a half-open [start, end) range of calendar dates.
type DateRangeQuery struct {
	Start string `form:"start" binding:"required,datetime=2006-01-02"`
	End   string `form:"end" binding:"required,datetime=2006-01-02"`
}

func (q DateRangeQuery) Parse() (start, end time.Time, err error) {
	if start, err = availability.ParseDate(q.Start); err != nil {
		return time.Time{}, time.Time{}, err
	}
	if end, err = availability.ParseDate(q.End); err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end, nil
}

type SetAvailabilityRangeRequest struct {
	Start  string `json:"start" binding:"required,datetime=2006-01-02"`
	End    string `json:"end" binding:"required,datetime=2006-01-02"`
	IsOpen *bool  `json:"isOpen" binding:"required"`
}

func (r SetAvailabilityRangeRequest) Parse() (start, end time.Time, err error) {
	return DateRangeQuery{Start: r.Start, End: r.End}.Parse()
}

type SetAvailabilityDayRequest struct {
	IsOpen *bool `json:"isOpen" binding:"required"`
}
