package converter

import (
	"dh-booking/internal/domain/rating"
	"dh-booking/internal/domain/reservation"
	"dh-booking/internal/infra/pgsql"
	"dh-booking/internal/pkg/errs"
	"dh-booking/internal/pkg/pgconv"
)

func ReservationToCreateParams(res *reservation.Reservation) pgsql.CreateReservationParams {
	return pgsql.CreateReservationParams{
		ID:        pgconv.UUIDToPgtype(res.ID()),
		ProductID: pgconv.UUIDToPgtype(res.ProductID()),
		UserID:    pgconv.UUIDToPgtype(res.UserID()),
		StartDate: pgconv.DateToPgtype(res.Period().Start()),
		EndDate:   pgconv.DateToPgtype(res.Period().End()),
		Status:    res.Status().String(),
		CreatedAt: pgconv.TimeToPgtype(res.CreatedAt()),
		UpdatedAt: pgconv.TimeToPgtype(res.UpdatedAt()),
	}
}

func ReservationToDomain(row pgsql.Reservations) (*reservation.Reservation, error) {
	period, err := reservation.NewPeriod(pgconv.DateFromPgtype(row.StartDate), pgconv.DateFromPgtype(row.EndDate))
	if err != nil {
		return nil, errs.Wrap(err, "stored reservation has an invalid period")
	}
	status, err := reservation.ParseStatus(row.Status)
	if err != nil {
		return nil, errs.Wrap(err, "stored reservation has an invalid status")
	}
	return reservation.ReconstructReservation(
		pgconv.UUIDFromPgtype(row.ID),
		pgconv.UUIDFromPgtype(row.ProductID),
		pgconv.UUIDFromPgtype(row.UserID),
		period,
		status,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}

func ReservationsToDomain(rows []pgsql.Reservations) ([]*reservation.Reservation, error) {
	out := make([]*reservation.Reservation, 0, len(rows))
	for _, row := range rows {
		res, err := ReservationToDomain(row)
		if err != nil {
			return nil, err
		}
		out = append(out, res)
	}
	return out, nil
}

func RatingToCreateParams(r *rating.Rating) pgsql.CreateRatingParams {
	return pgsql.CreateRatingParams{
		ID:        pgconv.UUIDToPgtype(r.ID()),
		ProductID: pgconv.UUIDToPgtype(r.ProductID()),
		UserID:    pgconv.UUIDToPgtype(r.UserID()),
		Stars:     int16(r.Stars().Value()), // #nosec G115 -- stars are bounded to 1..5
		CreatedAt: pgconv.TimeToPgtype(r.CreatedAt()),
	}
}
