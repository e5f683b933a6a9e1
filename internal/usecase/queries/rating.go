package queries

import (
	"context"

	"dh-booking/internal/domain/rating"
	"dh-booking/internal/pkg/errs"
	"dh-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=rating.go -destination=../../../tests/mock/queries/rating.go -package=queriesmock

var errStoredStars = errs.New("stored rating is out of range")

type RatingReadStore interface {
	FindByProduct(ctx context.Context, productID uuid.UUID) ([]*RatingView, error)
}

type RatingQueries interface {
	ListByProduct(ctx context.Context, productID uuid.UUID) (*ProductRatingsView, error)
}

type ratingQueriesImpl struct {
	repo     RatingReadStore
	products shared.ProductDirectory
}

func NewRatingQueries(repo RatingReadStore, products shared.ProductDirectory) RatingQueries {
	return &ratingQueriesImpl{repo: repo, products: products}
}

func (q *ratingQueriesImpl) ListByProduct(ctx context.Context, productID uuid.UUID) (*ProductRatingsView, error) {
	exists, err := q.products.Exists(ctx, productID)
	if err != nil {
		return nil, shared.StoreError(err, ErrProductNotFound)
	}
	if !exists {
		return nil, ErrProductNotFound
	}

	rows, err := q.repo.FindByProduct(ctx, productID)
	if err != nil {
		return nil, shared.StoreError(err, nil)
	}

	stars := make([]rating.Stars, 0, len(rows))
	for _, r := range rows {
		s, serr := rating.NewStars(r.Stars)
		if serr != nil {
			return nil, errs.Wrapf(errStoredStars, "rating %s has %d stars", r.ID, r.Stars)
		}
		stars = append(stars, s)
	}
	summary := rating.Summarize(stars)

	return &ProductRatingsView{
		ProductID: productID,
		Count:     summary.Count,
		Average:   summary.Average,
		Ratings:   rows,
	}, nil
}
