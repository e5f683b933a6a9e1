package rating

import "dh-booking/internal/domain/reservation"

// Eligibility is what the gate knows about a (user, product) pair.
type Eligibility struct {
	Statuses     []reservation.Status
	AlreadyRated bool
}

func (e Eligibility) HasFinishedReservation() bool {
	for _, s := range e.Statuses {
		if s == reservation.StatusFinished {
			return true
		}
	}
	return false
}

// Check distinguishes "already rated" from "not eligible".
func (e Eligibility) Check() error {
	if e.AlreadyRated {
		return ErrAlreadyRated
	}
	if !e.HasFinishedReservation() {
		return ErrNotEligible
	}
	return nil
}

func (e Eligibility) CanRate() bool {
	return e.Check() == nil
}

// Summary is the aggregate of all ratings of one product.
type Summary struct {
	Count   int
	Average float64
}

func Summarize(ratings []Stars) Summary {
	if len(ratings) == 0 {
		return Summary{}
	}
	total := 0
	for _, s := range ratings {
		total += s.Value()
	}
	return Summary{Count: len(ratings), Average: float64(total) / float64(len(ratings))}
}
