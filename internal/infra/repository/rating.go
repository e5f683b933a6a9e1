package repository

import (
	"context"

	"dh-booking/internal/domain/rating"
	"dh-booking/internal/infra"
	"dh-booking/internal/infra/pgsql"
	"dh-booking/internal/infra/repository/converter"
)

type RatingWriteQueries interface {
	CreateRating(ctx context.Context, db pgsql.DBTX, arg pgsql.CreateRatingParams) error
}

type RatingRepository struct {
	queries RatingWriteQueries
	db      pgsql.DBTX
}

func NewRatingRepository(queries RatingWriteQueries, db pgsql.DBTX) *RatingRepository {
	return &RatingRepository{
		queries: queries,
		db:      db,
	}
}

func (r *RatingRepository) Create(ctx context.Context, rt *rating.Rating) error {
	if err := r.queries.CreateRating(ctx, r.db, converter.RatingToCreateParams(rt)); err != nil {
		return infra.WrapRepoErr("failed to create rating", err)
	}
	return nil
}
