package readstore

import (
	"context"

	"dh-booking/internal/infra"
	"dh-booking/internal/infra/pgsql"
	"dh-booking/internal/pkg/pgconv"
	"dh-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type RatingReadQueries interface {
	ListRatingsByProduct(ctx context.Context, db pgsql.DBTX, productID pgtype.UUID) ([]pgsql.RatingDetailRow, error)
	RatingExists(ctx context.Context, db pgsql.DBTX, productID, userID pgtype.UUID) (bool, error)
}

type RatingReadStore struct {
	queries RatingReadQueries
	db      pgsql.DBTX
}

func NewRatingReadStore(queries RatingReadQueries, db pgsql.DBTX) *RatingReadStore {
	return &RatingReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *RatingReadStore) FindByProduct(ctx context.Context, productID uuid.UUID) ([]*queries.RatingView, error) {
	rows, err := r.queries.ListRatingsByProduct(ctx, r.db, pgconv.UUIDToPgtype(productID))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list ratings by product", err)
	}

	views := make([]*queries.RatingView, len(rows))
	for i, row := range rows {
		views[i] = &queries.RatingView{
			ID:        pgconv.UUIDFromPgtype(row.ID),
			ProductID: pgconv.UUIDFromPgtype(row.ProductID),
			UserID:    pgconv.UUIDFromPgtype(row.UserID),
			UserName:  row.UserName,
			Stars:     int(row.Stars),
			CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
		}
	}
	return views, nil
}

func (r *RatingReadStore) Exists(ctx context.Context, productID, userID uuid.UUID) (bool, error) {
	exists, err := r.queries.RatingExists(ctx, r.db, pgconv.UUIDToPgtype(productID), pgconv.UUIDToPgtype(userID))
	if err != nil {
		return false, infra.WrapRepoErr("failed to check rating existence", err)
	}
	return exists, nil
}
