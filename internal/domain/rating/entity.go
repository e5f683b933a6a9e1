package rating

import (
	"time"

	"dh-booking/internal/domain/reservation"
	"dh-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidStars     = errs.NewKind("stars must be between 1 and 5", errs.ErrInvalidArgument)
	ErrMissingReference = errs.NewKind("product and user are required for a rating", errs.ErrInvalidArgument)
	ErrAlreadyRated     = errs.NewKind("user has already rated this product", errs.ErrConflict)
	ErrNotEligible      = errs.NewKind("a finished reservation is required to rate this product", errs.ErrPermissionDenied)
)

type Rating struct {
	id        uuid.UUID
	productID uuid.UUID
	userID    uuid.UUID
	stars     Stars
	createdAt time.Time
}

func NewRating(productID, userID uuid.UUID, stars Stars, now time.Time) (*Rating, error) {
	if productID == uuid.Nil || userID == uuid.Nil {
		return nil, ErrMissingReference
	}
	return &Rating{
		id:        reservation.NewID(),
		productID: productID,
		userID:    userID,
		stars:     stars,
		createdAt: now,
	}, nil
}

func ReconstructRating(id, productID, userID uuid.UUID, stars Stars, createdAt time.Time) *Rating {
	return &Rating{
		id:        id,
		productID: productID,
		userID:    userID,
		stars:     stars,
		createdAt: createdAt,
	}
}

func (r *Rating) ID() uuid.UUID        { return r.id }
func (r *Rating) ProductID() uuid.UUID { return r.productID }
func (r *Rating) UserID() uuid.UUID    { return r.userID }
func (r *Rating) Stars() Stars         { return r.stars }
func (r *Rating) CreatedAt() time.Time { return r.createdAt }
