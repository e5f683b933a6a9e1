package queries

import (
	"time"

	"dh-booking/internal/domain/reservation"

	"github.com/google/uuid"
)

// ReservationView is a reservation joined with its product and renter.
type ReservationView struct {
	ID          uuid.UUID          `json:"id"`
	ProductID   uuid.UUID          `json:"product_id"`
	ProductName string             `json:"product_name"`
	UserID      uuid.UUID          `json:"user_id"`
	UserName    string             `json:"user_name"`
	UserEmail   string             `json:"user_email"`
	StartDate   time.Time          `json:"start_date"`
	EndDate     time.Time          `json:"end_date"`
	Status      reservation.Status `json:"status"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

type RatingView struct {
	ID        uuid.UUID `json:"id"`
	ProductID uuid.UUID `json:"product_id"`
	UserID    uuid.UUID `json:"user_id"`
	UserName  string    `json:"user_name"`
	Stars     int       `json:"stars"`
	CreatedAt time.Time `json:"created_at"`
}

type ProductRatingsView struct {
	ProductID uuid.UUID     `json:"product_id"`
	Count     int           `json:"count"`
	Average   float64       `json:"average"`
	Ratings   []*RatingView `json:"ratings"`
}

// AvailabilityView lists the free ranges of a product within [From, To].
type AvailabilityView struct {
	ProductID uuid.UUID            `json:"product_id"`
	From      time.Time            `json:"from"`
	To        time.Time            `json:"to"`
	Free      []reservation.Period `json:"-"`
}
