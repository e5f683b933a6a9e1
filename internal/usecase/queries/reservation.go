package queries

import (
	"context"

	"dh-booking/internal/domain/reservation"
	"dh-booking/internal/pkg/errs"
	"dh-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=reservation.go -destination=../../../tests/mock/queries/reservation.go -package=queriesmock

var (
	ErrReservationNotFound = errs.NewKind("reservation not found", errs.ErrNotFound)
	ErrProductNotFound     = errs.NewKind("product not found", errs.ErrNotFound)
)

type ReservationReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*ReservationView, error)
	// FindByProduct returns every reservation of the product when statuses is empty.
	FindByProduct(ctx context.Context, productID uuid.UUID, statuses []reservation.Status) ([]*ReservationView, error)
	FindByProductAndUser(ctx context.Context, productID, userID uuid.UUID) ([]*ReservationView, error)
	// FindOccupied returns the periods of CONFIRMED reservations intersecting horizon.
	FindOccupied(ctx context.Context, productID uuid.UUID, horizon reservation.Period) ([]reservation.Period, error)
}

type ReservationQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*ReservationView, error)
	ListByProduct(ctx context.Context, productID uuid.UUID, statuses []reservation.Status) ([]*ReservationView, error)
	ListByProductAndUser(ctx context.Context, productID, userID uuid.UUID) ([]*ReservationView, error)
}

type reservationQueriesImpl struct {
	repo ReservationReadStore
}

func NewReservationQueries(repo ReservationReadStore) ReservationQueries {
	return &reservationQueriesImpl{repo: repo}
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		return nil, shared.StoreError(err, ErrReservationNotFound)
	}
	return view, nil
}

func (q *reservationQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID) ([]*ReservationView, error) {
	rows, err := q.repo.FindByUser(ctx, userID)
	if err != nil {
		return nil, shared.StoreError(err, nil)
	}
	return rows, nil
}

func (q *reservationQueriesImpl) ListByProduct(ctx context.Context, productID uuid.UUID, statuses []reservation.Status) ([]*ReservationView, error) {
	for _, s := range statuses {
		if !s.IsValid() {
			return nil, reservation.ErrInvalidStatus
		}
	}
	rows, err := q.repo.FindByProduct(ctx, productID, statuses)
	if err != nil {
		return nil, shared.StoreError(err, nil)
	}
	return rows, nil
}

func (q *reservationQueriesImpl) ListByProductAndUser(ctx context.Context, productID, userID uuid.UUID) ([]*ReservationView, error) {
	rows, err := q.repo.FindByProductAndUser(ctx, productID, userID)
	if err != nil {
		return nil, shared.StoreError(err, nil)
	}
	return rows, nil
}
