package shared

import (
	"context"
	"time"

	"dh-booking/internal/domain/reservation"

	"github.com/google/uuid"
)

//go:generate mockgen -source=types.go -destination=../../../tests/mock/shared/types.go -package=sharedmock

type ProductDirectory interface {
	Exists(ctx context.Context, productID uuid.UUID) (bool, error)
	GetName(ctx context.Context, productID uuid.UUID) (string, error)
}

type UserProfile struct {
	ID    uuid.UUID
	Name  string
	Email string
}

type UserDirectory interface {
	Exists(ctx context.Context, userID uuid.UUID) (bool, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (*UserProfile, error)
}

// ReservationSnapshot is what a renter is told about a reservation.
type ReservationSnapshot struct {
	ReservationID uuid.UUID          `json:"reservationId"`
	ProductID     uuid.UUID          `json:"productId"`
	ProductName   string             `json:"productName"`
	UserID        uuid.UUID          `json:"userId"`
	RenterName    string             `json:"renterName"`
	RenterEmail   string             `json:"renterEmail"`
	StartDate     time.Time          `json:"startDate"`
	EndDate       time.Time          `json:"endDate"`
	Status        reservation.Status `json:"status"`
}

type Notifier interface {
	SendReservationConfirmation(ctx context.Context, snapshot ReservationSnapshot, recipientEmail string) error
}

// AvailabilityCache holds computed free periods per product and horizon.
//
// Get also reports the product's cache generation as seen before the caller
// reads the store; Set stores free only while that generation is still
// current, so an Invalidate that lands between the two drops the write.
// A negative version means the generation is unknown and Set must not store.
type AvailabilityCache interface {
	Get(ctx context.Context, productID uuid.UUID, horizon reservation.Period) (free []reservation.Period, version int64, hit bool)
	Set(ctx context.Context, productID uuid.UUID, horizon reservation.Period, version int64, free []reservation.Period)
	Invalidate(ctx context.Context, productID uuid.UUID)
}

type NopAvailabilityCache struct{}

func NewNopAvailabilityCache() *NopAvailabilityCache {
	return &NopAvailabilityCache{}
}

func (NopAvailabilityCache) Get(context.Context, uuid.UUID, reservation.Period) ([]reservation.Period, int64, bool) {
	return nil, -1, false
}

func (NopAvailabilityCache) Set(context.Context, uuid.UUID, reservation.Period, int64, []reservation.Period) {
}

func (NopAvailabilityCache) Invalidate(context.Context, uuid.UUID) {}
