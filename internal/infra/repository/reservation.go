package repository

import (
	"context"

	"dh-booking/internal/domain/reservation"
	"dh-booking/internal/infra"
	"dh-booking/internal/infra/pgsql"
	"dh-booking/internal/infra/repository/converter"
	"dh-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ReservationWriteQueries interface {
	CreateReservation(ctx context.Context, db pgsql.DBTX, arg pgsql.CreateReservationParams) error
	ListOverlappingReservations(ctx context.Context, db pgsql.DBTX, arg pgsql.ListOverlappingReservationsParams) ([]pgsql.Reservations, error)
	UpdateReservationStatus(ctx context.Context, db pgsql.DBTX, arg pgsql.UpdateReservationStatusParams) (int64, error)
}

type ReservationRepository struct {
	queries ReservationWriteQueries
	db      pgsql.DBTX
}

func NewReservationRepository(queries ReservationWriteQueries, db pgsql.DBTX) *ReservationRepository {
	return &ReservationRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ReservationRepository) Create(ctx context.Context, res *reservation.Reservation) error {
	params := converter.ReservationToCreateParams(res)

	if err := r.queries.CreateReservation(ctx, r.db, params); err != nil {
		return infra.WrapRepoErr("failed to create reservation", err)
	}

	return nil
}

func (r *ReservationRepository) FindOverlapping(ctx context.Context, productID uuid.UUID, period reservation.Period, statuses []reservation.Status) ([]*reservation.Reservation, error) {
	params := pgsql.ListOverlappingReservationsParams{
		ProductID: pgconv.UUIDToPgtype(productID),
		Statuses:  reservation.StatusStrings(statuses),
		StartDate: pgconv.DateToPgtype(period.Start()),
		EndDate:   pgconv.DateToPgtype(period.End()),
	}

	rows, err := r.queries.ListOverlappingReservations(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list overlapping reservations", err)
	}

	result, err := converter.ReservationsToDomain(rows)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert reservations", err, infra.KindDBFailure)
	}
	return result, nil
}

func (r *ReservationRepository) UpdateStatus(ctx context.Context, res *reservation.Reservation) error {
	params := pgsql.UpdateReservationStatusParams{
		ID:        pgconv.UUIDToPgtype(res.ID()),
		Status:    res.Status().String(),
		UpdatedAt: pgconv.TimeToPgtype(res.UpdatedAt()),
	}

	affected, err := r.queries.UpdateReservationStatus(ctx, r.db, params)
	if err != nil {
		return infra.WrapRepoErr("failed to update reservation status", err)
	}
	if affected == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "reservation not found")
	}

	return nil
}
