package shared

import (
	"context"

	"dh-booking/internal/domain/rating"
	"dh-booking/internal/domain/reservation"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// WithinProduct runs fn in one atomic unit that holds the product's
	// admission lock. Units for different products never block each other.
	// Nothing fn wrote survives if it returns an error.
	WithinProduct(ctx context.Context, productID uuid.UUID, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Reservations() ReservationRepository
	Ratings() RatingRepository
	Reads() CommandReads
}

type CommandReads interface {
	ReservationByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
	ReservationsByProductAndUser(ctx context.Context, productID, userID uuid.UUID) ([]*reservation.Reservation, error)
	RatingExists(ctx context.Context, productID, userID uuid.UUID) (bool, error)
}

type ReservationRepository interface {
	Create(ctx context.Context, res *reservation.Reservation) error
	// FindOverlapping returns reservations of productID in one of statuses
	// whose period intersects period (inclusive bounds).
	FindOverlapping(ctx context.Context, productID uuid.UUID, period reservation.Period, statuses []reservation.Status) ([]*reservation.Reservation, error)
	UpdateStatus(ctx context.Context, res *reservation.Reservation) error
}

type RatingRepository interface {
	Create(ctx context.Context, r *rating.Rating) error
}
