package availability

import (
	"errors"
	"time"
)

const dateLayout = "2006-01-02"

var (
	ErrInvalidRange = errors.New("range end must be after range start")
	ErrRangeTooLong = errors.New("range exceeds the maximum length")
)

// MaxRangeDays caps calendar reads and bulk writes.
const MaxRangeDays = 366

// DateRange is a half-open [start, end) span of calendar dates.
type DateRange struct {
	start time.Time
	end   time.Time
}

func NewDateRange(start, end time.Time) (DateRange, error) {
	s, e := DateOf(start), DateOf(end)
	if !s.Before(e) {
		return DateRange{}, ErrInvalidRange
	}
	r := DateRange{start: s, end: e}
	if r.Nights() > MaxRangeDays {
		return DateRange{}, ErrRangeTooLong
	}
	return r, nil
}

// ParseDateRange accepts YYYY-MM-DD bounds.
func ParseDateRange(start, end string) (DateRange, error) {
	s, err := ParseDate(start)
	if err != nil {
		return DateRange{}, err
	}
	e, err := ParseDate(end)
	if err != nil {
		return DateRange{}, err
	}
	return NewDateRange(s, e)
}

func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(dateLayout, s, time.UTC)
}

func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}

func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func (r DateRange) Start() time.Time { return r.start }
func (r DateRange) End() time.Time   { return r.end }

func (r DateRange) Nights() int {
	return int(r.end.Sub(r.start).Hours() / 24)
}

// Dates lists every date in the range; the end date is excluded.
func (r DateRange) Dates() []time.Time {
	out := make([]time.Time, 0, r.Nights())
	for d := r.start; d.Before(r.end); d = d.AddDate(0, 0, 1) {
		out = append(out, d)
	}
	return out
}

func (r DateRange) Contains(t time.Time) bool {
	d := DateOf(t)
	return !d.Before(r.start) && d.Before(r.end)
}

func (r DateRange) Overlaps(o DateRange) bool {
	return r.start.Before(o.end) && o.start.Before(r.end)
}

func (r DateRange) String() string {
	return "[" + FormatDate(r.start) + "," + FormatDate(r.end) + ")"
}
