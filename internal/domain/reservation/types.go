package reservation

import "strings"

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusConfirmed Status = "CONFIRMED"
	StatusFinished  Status = "FINISHED"
	StatusCancelled Status = "CANCELLED"
)

// allowed[from] lists the statuses reachable from "from".
var allowed = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusFinished, StatusCancelled},
}

func ParseStatus(s string) (Status, error) {
	st := Status(strings.ToUpper(strings.TrimSpace(s)))
	if !st.IsValid() {
		return "", ErrInvalidStatus
	}
	return st, nil
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusFinished, StatusCancelled:
		return true
	default:
		return false
	}
}

// BlocksAdmission reports whether a reservation in this status keeps the
// product's dates unavailable to new reservations.
func (s Status) BlocksAdmission() bool {
	return s == StatusPending || s == StatusConfirmed
}

// Occupies reports whether the status counts as occupied for availability.
func (s Status) Occupies() bool {
	return s == StatusConfirmed
}

func (s Status) IsTerminal() bool {
	return s == StatusFinished || s == StatusCancelled
}

func (s Status) CanTransitionTo(next Status) bool {
	for _, to := range allowed[s] {
		if to == next {
			return true
		}
	}
	return false
}

// ActiveStatuses are the statuses considered by the overlap check.
func ActiveStatuses() []Status {
	return []Status{StatusPending, StatusConfirmed}
}

func StatusStrings(statuses []Status) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return out
}
