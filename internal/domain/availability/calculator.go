package availability

import (
	"sort"
	"time"

	"dh-booking/internal/domain/reservation"
)

// DefaultHorizon is [today, today + months].
func DefaultHorizon(today time.Time, months int) reservation.Period {
	start := reservation.Day(today)
	return mustPeriod(start, start.AddDate(0, months, 0))
}

// FreePeriods returns the maximal free ranges inside horizon, in chronological
// order. Occupied periods outside the horizon are ignored and those straddling
// its bounds are clipped.
func FreePeriods(horizon reservation.Period, occupied []reservation.Period) []reservation.Period {
	clipped := make([]reservation.Period, 0, len(occupied))
	for _, o := range occupied {
		if c, ok := o.Clip(horizon); ok {
			clipped = append(clipped, c)
		}
	}
	sort.Slice(clipped, func(i, j int) bool {
		return clipped[i].Start().Before(clipped[j].Start())
	})

	free := make([]reservation.Period, 0, len(clipped)+1)
	cursor := horizon.Start()
	for _, o := range clipped {
		if o.Start().After(cursor) {
			free = append(free, mustPeriod(cursor, o.Start().AddDate(0, 0, -1)))
		}
		if next := o.End().AddDate(0, 0, 1); next.After(cursor) {
			cursor = next
		}
	}
	if !cursor.After(horizon.End()) {
		free = append(free, mustPeriod(cursor, horizon.End()))
	}
	return free
}

// IsFree reports whether period lies entirely in one of the free ranges.
func IsFree(period reservation.Period, free []reservation.Period) bool {
	for _, f := range free {
		if !period.Start().Before(f.Start()) && !period.End().After(f.End()) {
			return true
		}
	}
	return false
}

func mustPeriod(start, end time.Time) reservation.Period {
	p, err := reservation.NewPeriod(start, end)
	if err != nil {
		panic(err)
	}
	return p
}
