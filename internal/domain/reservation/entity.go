package reservation

import (
	"time"

	"dh-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrMissingDates      = errs.NewKind("start and end dates are required", errs.ErrInvalidArgument)
	ErrMalformedDate     = errs.NewKind("dates must use the YYYY-MM-DD format", errs.ErrInvalidArgument)
	ErrStartAfterEnd     = errs.NewKind("start date must not be after end date", errs.ErrInvalidArgument)
	ErrStartInPast       = errs.NewKind("start date must not be before today", errs.ErrInvalidArgument)
	ErrMissingReference  = errs.NewKind("product and user are required", errs.ErrInvalidArgument)
	ErrInvalidStatus     = errs.NewKind("invalid reservation status", errs.ErrInvalidArgument)
	ErrInvalidTransition = errs.NewKind("reservation status transition not allowed", errs.ErrConflict)
)

type Reservation struct {
	id        uuid.UUID
	productID uuid.UUID
	userID    uuid.UUID
	period    Period
	status    Status
	createdAt time.Time
	updatedAt time.Time
}

// ValidateSchedule checks the admission-time rule that a stay cannot start
// before today.
func ValidateSchedule(period Period, today time.Time) error {
	if period.IsZero() {
		return ErrMissingDates
	}
	if period.Start().Before(Day(today)) {
		return ErrStartInPast
	}
	return nil
}

func NewReservation(productID, userID uuid.UUID, period Period, today, now time.Time) (*Reservation, error) {
	if productID == uuid.Nil || userID == uuid.Nil {
		return nil, ErrMissingReference
	}
	if err := ValidateSchedule(period, today); err != nil {
		return nil, err
	}

	return &Reservation{
		id:        NewID(),
		productID: productID,
		userID:    userID,
		period:    period,
		status:    StatusPending,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructReservation(
	id, productID, userID uuid.UUID,
	period Period,
	status Status,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:        id,
		productID: productID,
		userID:    userID,
		period:    period,
		status:    status,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// NewID returns a time-ordered UUIDv7, falling back to v4.
func NewID() uuid.UUID {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New()
	}
	return id
}

func (r *Reservation) TransitionTo(next Status, now time.Time) error {
	if !next.IsValid() {
		return ErrInvalidStatus
	}
	if !r.status.CanTransitionTo(next) {
		return errs.Wrapf(ErrInvalidTransition, "%s -> %s", r.status, next)
	}
	r.status = next
	r.updatedAt = now
	return nil
}

func (r *Reservation) Conflicts(other *Reservation) bool {
	return r.productID == other.productID &&
		r.status.BlocksAdmission() && other.status.BlocksAdmission() &&
		r.period.Overlaps(other.period)
}

func (r *Reservation) ID() uuid.UUID        { return r.id }
func (r *Reservation) ProductID() uuid.UUID { return r.productID }
func (r *Reservation) UserID() uuid.UUID    { return r.userID }
func (r *Reservation) Period() Period       { return r.period }
func (r *Reservation) Status() Status       { return r.status }
func (r *Reservation) CreatedAt() time.Time { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time { return r.updatedAt }
