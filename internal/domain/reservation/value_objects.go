package reservation

import (
	"fmt"
	"time"
)

const DateLayout = "2006-01-02"

// Day truncates t to its calendar date, expressed as midnight UTC.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func ParseDay(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, ErrMalformedDate
	}
	return t, nil
}

// Period is an inclusive range of calendar days.
type Period struct {
	start time.Time
	end   time.Time
}

func NewPeriod(start, end time.Time) (Period, error) {
	if start.IsZero() || end.IsZero() {
		return Period{}, ErrMissingDates
	}
	s, e := Day(start), Day(end)
	if s.After(e) {
		return Period{}, ErrStartAfterEnd
	}
	return Period{start: s, end: e}, nil
}

func (p Period) Start() time.Time { return p.start }
func (p Period) End() time.Time   { return p.end }

func (p Period) IsZero() bool {
	return p.start.IsZero() && p.end.IsZero()
}

// Overlaps uses inclusive bounds on both sides.
func (p Period) Overlaps(o Period) bool {
	return !p.start.After(o.end) && !o.start.After(p.end)
}

func (p Period) Contains(day time.Time) bool {
	d := Day(day)
	return !d.Before(p.start) && !d.After(p.end)
}

func (p Period) Days() int {
	return int(p.end.Sub(p.start).Hours()/24) + 1
}

// Clip returns the part of p inside bounds.
func (p Period) Clip(bounds Period) (Period, bool) {
	if !p.Overlaps(bounds) {
		return Period{}, false
	}
	s, e := p.start, p.end
	if s.Before(bounds.start) {
		s = bounds.start
	}
	if e.After(bounds.end) {
		e = bounds.end
	}
	return Period{start: s, end: e}, true
}

func (p Period) String() string {
	return fmt.Sprintf("[%s, %s]", p.start.Format(DateLayout), p.end.Format(DateLayout))
}
