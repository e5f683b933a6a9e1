package readstore

import (
	"context"

	"dh-booking/internal/domain/reservation"
	"dh-booking/internal/infra"
	"dh-booking/internal/infra/pgsql"
	"dh-booking/internal/infra/repository/converter"
	"dh-booking/internal/pkg/pgconv"
	"dh-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ReservationReadQueries interface {
	GetReservationByID(ctx context.Context, db pgsql.DBTX, id pgtype.UUID) (pgsql.Reservations, error)
	ListReservationsByProductAndUser(ctx context.Context, db pgsql.DBTX, productID, userID pgtype.UUID) ([]pgsql.Reservations, error)
	GetReservationDetailByID(ctx context.Context, db pgsql.DBTX, id pgtype.UUID) (pgsql.ReservationDetailRow, error)
	ListReservationDetailsByUser(ctx context.Context, db pgsql.DBTX, userID pgtype.UUID) ([]pgsql.ReservationDetailRow, error)
	ListReservationDetailsByProduct(ctx context.Context, db pgsql.DBTX, productID pgtype.UUID, statuses []string) ([]pgsql.ReservationDetailRow, error)
	ListReservationDetailsByProductAndUser(ctx context.Context, db pgsql.DBTX, productID, userID pgtype.UUID) ([]pgsql.ReservationDetailRow, error)
	ListOccupiedPeriods(ctx context.Context, db pgsql.DBTX, productID pgtype.UUID, from, to pgtype.Date) ([]pgsql.PeriodRow, error)
}

type ReservationReadStore struct {
	queries ReservationReadQueries
	db      pgsql.DBTX
}

func NewReservationReadStore(queries ReservationReadQueries, db pgsql.DBTX) *ReservationReadStore {
	return &ReservationReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	row, err := r.queries.GetReservationDetailByID(ctx, r.db, pgconv.UUIDToPgtype(id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get reservation view by id", err)
	}
	return mapDetailRow(row), nil
}

func (r *ReservationReadStore) FindByUser(ctx context.Context, userID uuid.UUID) ([]*queries.ReservationView, error) {
	rows, err := r.queries.ListReservationDetailsByUser(ctx, r.db, pgconv.UUIDToPgtype(userID))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations by user", err)
	}
	return mapDetailRows(rows), nil
}

func (r *ReservationReadStore) FindByProduct(ctx context.Context, productID uuid.UUID, statuses []reservation.Status) ([]*queries.ReservationView, error) {
	rows, err := r.queries.ListReservationDetailsByProduct(ctx, r.db, pgconv.UUIDToPgtype(productID), reservation.StatusStrings(statuses))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations by product", err)
	}
	return mapDetailRows(rows), nil
}

func (r *ReservationReadStore) FindByProductAndUser(ctx context.Context, productID, userID uuid.UUID) ([]*queries.ReservationView, error) {
	rows, err := r.queries.ListReservationDetailsByProductAndUser(ctx, r.db, pgconv.UUIDToPgtype(productID), pgconv.UUIDToPgtype(userID))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations by product and user", err)
	}
	return mapDetailRows(rows), nil
}

func (r *ReservationReadStore) FindOccupied(ctx context.Context, productID uuid.UUID, horizon reservation.Period) ([]reservation.Period, error) {
	rows, err := r.queries.ListOccupiedPeriods(ctx, r.db,
		pgconv.UUIDToPgtype(productID),
		pgconv.DateToPgtype(horizon.Start()),
		pgconv.DateToPgtype(horizon.End()))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list occupied periods", err)
	}

	periods := make([]reservation.Period, 0, len(rows))
	for _, row := range rows {
		p, perr := reservation.NewPeriod(pgconv.DateFromPgtype(row.StartDate), pgconv.DateFromPgtype(row.EndDate))
		if perr != nil {
			return nil, infra.WrapRepoErr("stored reservation has an invalid period", perr, infra.KindDBFailure)
		}
		periods = append(periods, p)
	}
	return periods, nil
}

// LoadByID returns the reservation aggregate, for the write side.
func (r *ReservationReadStore) LoadByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	row, err := r.queries.GetReservationByID(ctx, r.db, pgconv.UUIDToPgtype(id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get reservation by id", err)
	}
	res, err := converter.ReservationToDomain(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert reservation", err, infra.KindDBFailure)
	}
	return res, nil
}

func (r *ReservationReadStore) LoadByProductAndUser(ctx context.Context, productID, userID uuid.UUID) ([]*reservation.Reservation, error) {
	rows, err := r.queries.ListReservationsByProductAndUser(ctx, r.db, pgconv.UUIDToPgtype(productID), pgconv.UUIDToPgtype(userID))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations by product and user", err)
	}
	res, err := converter.ReservationsToDomain(rows)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert reservations", err, infra.KindDBFailure)
	}
	return res, nil
}

func mapDetailRow(row pgsql.ReservationDetailRow) *queries.ReservationView {
	return &queries.ReservationView{
		ID:          pgconv.UUIDFromPgtype(row.ID),
		ProductID:   pgconv.UUIDFromPgtype(row.ProductID),
		ProductName: row.ProductName,
		UserID:      pgconv.UUIDFromPgtype(row.UserID),
		UserName:    row.UserName,
		UserEmail:   row.UserEmail,
		StartDate:   pgconv.DateFromPgtype(row.StartDate),
		EndDate:     pgconv.DateFromPgtype(row.EndDate),
		Status:      reservation.Status(row.Status),
		CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:   pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}

func mapDetailRows(rows []pgsql.ReservationDetailRow) []*queries.ReservationView {
	out := make([]*queries.ReservationView, len(rows))
	for i, row := range rows {
		out[i] = mapDetailRow(row)
	}
	return out
}
