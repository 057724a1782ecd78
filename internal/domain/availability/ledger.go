package availability

import "time"

type DayState string

const (
	DayOpen    DayState = "open"
	DayBlocked DayState = "blocked"
	DayBooked  DayState = "booked"
	DayPast    DayState = "past"
)

type Day struct {
	Date  time.Time
	State DayState
}

// Ledger evaluates one property's dates against owner blocks, nights held
// by pending or confirmed bookings, and the current date.
type Ledger struct {
	today   time.Time
	blocked map[time.Time]struct{}
	booked  map[time.Time]struct{}
}

func NewLedger(today time.Time, blocked, booked []time.Time) *Ledger {
	l := &Ledger{
		today:   DateOf(today),
		blocked: make(map[time.Time]struct{}, len(blocked)),
		booked:  make(map[time.Time]struct{}, len(booked)),
	}
	for _, d := range blocked {
		l.blocked[DateOf(d)] = struct{}{}
	}
	for _, d := range booked {
		l.booked[DateOf(d)] = struct{}{}
	}
	return l
}

// StateOf reports past before booked before blocked.
func (l *Ledger) StateOf(t time.Time) DayState {
	d := DateOf(t)
	if d.Before(l.today) {
		return DayPast
	}
	if _, ok := l.booked[d]; ok {
		return DayBooked
	}
	if _, ok := l.blocked[d]; ok {
		return DayBlocked
	}
	return DayOpen
}

func (l *Ledger) IsFree(r DateRange) bool {
	for _, d := range r.Dates() {
		if l.StateOf(d) != DayOpen {
			return false
		}
	}
	return true
}

func (l *Ledger) Days(r DateRange) []Day {
	dates := r.Dates()
	out := make([]Day, len(dates))
	for i, d := range dates {
		out[i] = Day{Date: d, State: l.StateOf(d)}
	}
	return out
}
