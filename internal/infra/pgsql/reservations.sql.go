package pgsql

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const lockProductForUpdate = `
SELECT id FROM products WHERE id = $1 FOR UPDATE
`

// LockProductForUpdate takes the row lock that serializes admissions per product.
func (q *Queries) LockProductForUpdate(ctx context.Context, db DBTX, productID pgtype.UUID) error {
	var id pgtype.UUID
	return db.QueryRow(ctx, lockProductForUpdate, productID).Scan(&id)
}

const createReservation = `
INSERT INTO reservations (id, product_id, user_id, start_date, end_date, status, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
`

type CreateReservationParams struct {
	ID        pgtype.UUID
	ProductID pgtype.UUID
	UserID    pgtype.UUID
	StartDate pgtype.Date
	EndDate   pgtype.Date
	Status    string
	CreatedAt pgtype.Timestamptz
	UpdatedAt pgtype.Timestamptz
}

func (q *Queries) CreateReservation(ctx context.Context, db DBTX, arg CreateReservationParams) error {
	_, err := db.Exec(ctx, createReservation,
		arg.ID, arg.ProductID, arg.UserID, arg.StartDate, arg.EndDate, arg.Status, arg.CreatedAt, arg.UpdatedAt)
	return err
}

const listOverlappingReservations = `
SELECT id, product_id, user_id, start_date, end_date, status, created_at, updated_at
FROM reservations
WHERE product_id = $1
  AND status = ANY($2::text[])
  AND start_date <= $4
  AND end_date >= $3
ORDER BY start_date, id
`

type ListOverlappingReservationsParams struct {
	ProductID pgtype.UUID
	Statuses  []string
	StartDate pgtype.Date
	EndDate   pgtype.Date
}

func (q *Queries) ListOverlappingReservations(ctx context.Context, db DBTX, arg ListOverlappingReservationsParams) ([]Reservations, error) {
	rows, err := db.Query(ctx, listOverlappingReservations, arg.ProductID, arg.Statuses, arg.StartDate, arg.EndDate)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanReservations)
}

const updateReservationStatus = `
UPDATE reservations SET status = $2, updated_at = $3 WHERE id = $1
`

type UpdateReservationStatusParams struct {
	ID        pgtype.UUID
	Status    string
	UpdatedAt pgtype.Timestamptz
}

func (q *Queries) UpdateReservationStatus(ctx context.Context, db DBTX, arg UpdateReservationStatusParams) (int64, error) {
	tag, err := db.Exec(ctx, updateReservationStatus, arg.ID, arg.Status, arg.UpdatedAt)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const getReservationByID = `
SELECT id, product_id, user_id, start_date, end_date, status, created_at, updated_at
FROM reservations
WHERE id = $1
`

func (q *Queries) GetReservationByID(ctx context.Context, db DBTX, id pgtype.UUID) (Reservations, error) {
	rows, err := db.Query(ctx, getReservationByID, id)
	if err != nil {
		return Reservations{}, err
	}
	return pgx.CollectExactlyOneRow(rows, scanReservations)
}

const listReservationsByProductAndUser = `
SELECT id, product_id, user_id, start_date, end_date, status, created_at, updated_at
FROM reservations
WHERE product_id = $1 AND user_id = $2
ORDER BY start_date, id
`

func (q *Queries) ListReservationsByProductAndUser(ctx context.Context, db DBTX, productID, userID pgtype.UUID) ([]Reservations, error) {
	rows, err := db.Query(ctx, listReservationsByProductAndUser, productID, userID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanReservations)
}

const reservationDetailColumns = `
SELECT r.id, r.product_id, p.name, r.user_id, u.name, u.email,
       r.start_date, r.end_date, r.status, r.created_at, r.updated_at
FROM reservations r
JOIN products p ON p.id = r.product_id
JOIN users u ON u.id = r.user_id
`

const getReservationDetailByID = reservationDetailColumns + `
WHERE r.id = $1
`

func (q *Queries) GetReservationDetailByID(ctx context.Context, db DBTX, id pgtype.UUID) (ReservationDetailRow, error) {
	rows, err := db.Query(ctx, getReservationDetailByID, id)
	if err != nil {
		return ReservationDetailRow{}, err
	}
	return pgx.CollectExactlyOneRow(rows, scanReservationDetail)
}

const listReservationDetailsByUser = reservationDetailColumns + `
WHERE r.user_id = $1
ORDER BY r.start_date DESC, r.id
`

func (q *Queries) ListReservationDetailsByUser(ctx context.Context, db DBTX, userID pgtype.UUID) ([]ReservationDetailRow, error) {
	rows, err := db.Query(ctx, listReservationDetailsByUser, userID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanReservationDetail)
}

// An empty status list means every status.
const listReservationDetailsByProduct = reservationDetailColumns + `
WHERE r.product_id = $1
  AND (cardinality($2::text[]) = 0 OR r.status = ANY($2::text[]))
ORDER BY r.start_date, r.id
`

func (q *Queries) ListReservationDetailsByProduct(ctx context.Context, db DBTX, productID pgtype.UUID, statuses []string) ([]ReservationDetailRow, error) {
	if statuses == nil {
		statuses = []string{}
	}
	rows, err := db.Query(ctx, listReservationDetailsByProduct, productID, statuses)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanReservationDetail)
}

const listReservationDetailsByProductAndUser = reservationDetailColumns + `
WHERE r.product_id = $1 AND r.user_id = $2
ORDER BY r.start_date, r.id
`

func (q *Queries) ListReservationDetailsByProductAndUser(ctx context.Context, db DBTX, productID, userID pgtype.UUID) ([]ReservationDetailRow, error) {
	rows, err := db.Query(ctx, listReservationDetailsByProductAndUser, productID, userID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanReservationDetail)
}

const listOccupiedPeriods = `
SELECT start_date, end_date
FROM reservations
WHERE product_id = $1
  AND status = 'CONFIRMED'
  AND start_date <= $3
  AND end_date >= $2
ORDER BY start_date
`

func (q *Queries) ListOccupiedPeriods(ctx context.Context, db DBTX, productID pgtype.UUID, from, to pgtype.Date) ([]PeriodRow, error) {
	rows, err := db.Query(ctx, listOccupiedPeriods, productID, from, to)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (PeriodRow, error) {
		var p PeriodRow
		err := row.Scan(&p.StartDate, &p.EndDate)
		return p, err
	})
}

func scanReservations(row pgx.CollectableRow) (Reservations, error) {
	var r Reservations
	err := row.Scan(&r.ID, &r.ProductID, &r.UserID, &r.StartDate, &r.EndDate, &r.Status, &r.CreatedAt, &r.UpdatedAt)
	return r, err
}

func scanReservationDetail(row pgx.CollectableRow) (ReservationDetailRow, error) {
	var r ReservationDetailRow
	err := row.Scan(&r.ID, &r.ProductID, &r.ProductName, &r.UserID, &r.UserName, &r.UserEmail,
		&r.StartDate, &r.EndDate, &r.Status, &r.CreatedAt, &r.UpdatedAt)
	return r, err
}
