//go:build unit

package availability_test

import (
	"math/rand"
	"testing"
	"time"

	"dh-booking/internal/domain/availability"
	"dh-booking/internal/domain/reservation"
	"dh-booking/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

type span struct {
	Start string
	End   string
}

func spans(ps []reservation.Period) []span {
	out := make([]span, 0, len(ps))
	for _, p := range ps {
		out = append(out, span{p.Start().Format(reservation.DateLayout), p.End().Format(reservation.DateLayout)})
	}
	return out
}

func period(start, end string) reservation.Period {
	s, _ := reservation.ParseDay(start)
	e, _ := reservation.ParseDay(end)
	return builder.MustPeriod(s, e)
}

func TestFreePeriods(t *testing.T) {
	horizon := period("2030-03-01", "2030-03-31")

	tests := []struct {
		name     string
		occupied []reservation.Period
		want     []span
	}{
		{
			name: "nothing occupied",
			want: []span{{"2030-03-01", "2030-03-31"}},
		},
		{
			name:     "one stay in the middle",
			occupied: []reservation.Period{period("2030-03-10", "2030-03-15")},
			want:     []span{{"2030-03-01", "2030-03-09"}, {"2030-03-16", "2030-03-31"}},
		},
		{
			name:     "stay on the first day",
			occupied: []reservation.Period{period("2030-03-01", "2030-03-01")},
			want:     []span{{"2030-03-02", "2030-03-31"}},
		},
		{
			name:     "stay on the last day",
			occupied: []reservation.Period{period("2030-03-31", "2030-03-31")},
			want:     []span{{"2030-03-01", "2030-03-30"}},
		},
		{
			name:     "stays straddling both bounds are clipped",
			occupied: []reservation.Period{period("2030-02-20", "2030-03-05"), period("2030-03-28", "2030-04-10")},
			want:     []span{{"2030-03-06", "2030-03-27"}},
		},
		{
			name: "adjacent stays leave no gap",
			occupied: []reservation.Period{
				period("2030-03-10", "2030-03-12"),
				period("2030-03-13", "2030-03-15"),
			},
			want: []span{{"2030-03-01", "2030-03-09"}, {"2030-03-16", "2030-03-31"}},
		},
		{
			name: "one-day gap between stays",
			occupied: []reservation.Period{
				period("2030-03-10", "2030-03-12"),
				period("2030-03-14", "2030-03-15"),
			},
			want: []span{{"2030-03-01", "2030-03-09"}, {"2030-03-13", "2030-03-13"}, {"2030-03-16", "2030-03-31"}},
		},
		{
			name: "unsorted and nested input",
			occupied: []reservation.Period{
				period("2030-03-20", "2030-03-22"),
				period("2030-03-05", "2030-03-15"),
				period("2030-03-07", "2030-03-08"),
			},
			want: []span{{"2030-03-01", "2030-03-04"}, {"2030-03-16", "2030-03-19"}, {"2030-03-23", "2030-03-31"}},
		},
		{
			name:     "fully occupied",
			occupied: []reservation.Period{period("2030-02-01", "2030-04-30")},
			want:     []span{},
		},
		{
			name:     "stays outside the horizon are ignored",
			occupied: []reservation.Period{period("2030-01-01", "2030-02-28"), period("2030-04-01", "2030-04-02")},
			want:     []span{{"2030-03-01", "2030-03-31"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := availability.FreePeriods(horizon, tt.occupied)
			if diff := cmp.Diff(tt.want, spans(got)); diff != "" {
				t.Errorf("FreePeriods() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// freeByDayScan walks the horizon one day at a time.
func freeByDayScan(horizon reservation.Period, occupied []reservation.Period) []span {
	out := []span{}
	var runStart time.Time
	open := false
	for d := horizon.Start(); !d.After(horizon.End()); d = d.AddDate(0, 0, 1) {
		busy := false
		for _, o := range occupied {
			if o.Contains(d) {
				busy = true
				break
			}
		}
		switch {
		case !busy && !open:
			runStart, open = d, true
		case busy && open:
			out = append(out, span{runStart.Format(reservation.DateLayout), d.AddDate(0, 0, -1).Format(reservation.DateLayout)})
			open = false
		}
	}
	if open {
		out = append(out, span{runStart.Format(reservation.DateLayout), horizon.End().Format(reservation.DateLayout)})
	}
	return out
}

func TestFreePeriodsMatchesDayScan(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	base := builder.Day(2030, time.January, 1)

	for i := range 300 {
		hStart := base.AddDate(0, 0, rng.Intn(30))
		horizon := builder.MustPeriod(hStart, hStart.AddDate(0, 0, 10+rng.Intn(80)))

		occupied := make([]reservation.Period, rng.Intn(8))
		for j := range occupied {
			s := base.AddDate(0, 0, rng.Intn(130))
			occupied[j] = builder.MustPeriod(s, s.AddDate(0, 0, rng.Intn(12)))
		}

		got := spans(availability.FreePeriods(horizon, occupied))
		want := freeByDayScan(horizon, occupied)
		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("case %d: horizon %s occupied %v (-scan +sweep):\n%s", i, horizon, occupied, diff)
		}
	}
}

func TestDefaultHorizon(t *testing.T) {
	h := availability.DefaultHorizon(time.Date(2030, 1, 31, 18, 30, 0, 0, time.UTC), 12)
	assert.Equal(t, builder.Day(2030, 1, 31), h.Start())
	assert.Equal(t, builder.Day(2031, 1, 31), h.End())
}

func TestIsFree(t *testing.T) {
	free := []reservation.Period{period("2030-03-01", "2030-03-09"), period("2030-03-16", "2030-03-31")}

	assert.True(t, availability.IsFree(period("2030-03-01", "2030-03-09"), free))
	assert.True(t, availability.IsFree(period("2030-03-20", "2030-03-22"), free))
	assert.False(t, availability.IsFree(period("2030-03-08", "2030-03-10"), free))
	assert.False(t, availability.IsFree(period("2030-03-12", "2030-03-12"), free))
}
