package pgsql

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const createRating = `
INSERT INTO ratings (id, product_id, user_id, stars, created_at)
VALUES ($1, $2, $3, $4, $5)
`

type CreateRatingParams struct {
	ID        pgtype.UUID
	ProductID pgtype.UUID
	UserID    pgtype.UUID
	Stars     int16
	CreatedAt pgtype.Timestamptz
}

func (q *Queries) CreateRating(ctx context.Context, db DBTX, arg CreateRatingParams) error {
	_, err := db.Exec(ctx, createRating, arg.ID, arg.ProductID, arg.UserID, arg.Stars, arg.CreatedAt)
	return err
}

const ratingExists = `
SELECT EXISTS (SELECT 1 FROM ratings WHERE product_id = $1 AND user_id = $2)
`

func (q *Queries) RatingExists(ctx context.Context, db DBTX, productID, userID pgtype.UUID) (bool, error) {
	var exists bool
	err := db.QueryRow(ctx, ratingExists, productID, userID).Scan(&exists)
	return exists, err
}

const listRatingsByProduct = `
SELECT rt.id, rt.product_id, rt.user_id, u.name, rt.stars, rt.created_at
FROM ratings rt
JOIN users u ON u.id = rt.user_id
WHERE rt.product_id = $1
ORDER BY rt.created_at DESC, rt.id
`

func (q *Queries) ListRatingsByProduct(ctx context.Context, db DBTX, productID pgtype.UUID) ([]RatingDetailRow, error) {
	rows, err := db.Query(ctx, listRatingsByProduct, productID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (RatingDetailRow, error) {
		var r RatingDetailRow
		err := row.Scan(&r.ID, &r.ProductID, &r.UserID, &r.UserName, &r.Stars, &r.CreatedAt)
		return r, err
	})
}
