package commands

import (
	"context"
	"log/slog"

	"dh-booking/internal/domain/rating"
	"dh-booking/internal/infra"
	"dh-booking/internal/pkg/clock"
	"dh-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=rating.go -destination=../../../tests/mock/commands/rating.go -package=commandsmock

type SubmitRatingInput struct {
	UserID    uuid.UUID
	ProductID uuid.UUID
	Stars     int
}

type RatingCommands interface {
	// CanRate is true when the user finished a stay and has not rated yet.
	CanRate(ctx context.Context, userID, productID uuid.UUID) (bool, error)
	SubmitRating(ctx context.Context, in SubmitRatingInput) (*rating.Rating, error)
}

type ratingUseCaseImpl struct {
	uow      shared.UnitOfWork
	products shared.ProductDirectory
	users    shared.UserDirectory
	clock    clock.Clock
}

func NewRatingUseCase(
	uow shared.UnitOfWork,
	products shared.ProductDirectory,
	users shared.UserDirectory,
	clk clock.Clock,
) RatingCommands {
	return &ratingUseCaseImpl{
		uow:      uow,
		products: products,
		users:    users,
		clock:    clk,
	}
}

func (uc *ratingUseCaseImpl) CanRate(ctx context.Context, userID, productID uuid.UUID) (bool, error) {
	el, err := eligibility(ctx, uc.uow.CommandReads(), userID, productID)
	if err != nil {
		return false, shared.StoreError(err, nil)
	}
	return el.CanRate(), nil
}

func (uc *ratingUseCaseImpl) SubmitRating(ctx context.Context, in SubmitRatingInput) (*rating.Rating, error) {
	stars, err := rating.NewStars(in.Stars)
	if err != nil {
		return nil, err
	}

	exists, err := uc.products.Exists(ctx, in.ProductID)
	if err != nil {
		return nil, shared.StoreError(err, ErrProductNotFound)
	}
	if !exists {
		return nil, ErrProductNotFound
	}
	exists, err = uc.users.Exists(ctx, in.UserID)
	if err != nil {
		return nil, shared.StoreError(err, ErrUserNotFound)
	}
	if !exists {
		return nil, ErrUserNotFound
	}

	var created *rating.Rating
	err = uc.uow.WithinProduct(ctx, in.ProductID, func(ctx context.Context, tx shared.Tx) error {
		el, derr := eligibility(ctx, tx.Reads(), in.UserID, in.ProductID)
		if derr != nil {
			return derr
		}
		if derr = el.Check(); derr != nil {
			return derr
		}

		r, derr := rating.NewRating(in.ProductID, in.UserID, stars, uc.clock.Now())
		if derr != nil {
			return derr
		}
		if derr = tx.Ratings().Create(ctx, r); derr != nil {
			return derr
		}
		created = r
		return nil
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, rating.ErrAlreadyRated
		}
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return nil, missingReference(ctx, uc.products, in.ProductID)
		}
		return nil, shared.StoreError(err, ErrProductNotFound)
	}

	slog.Info("rating submitted",
		"rating_id", created.ID().String(),
		"product_id", in.ProductID.String(),
		"user_id", in.UserID.String(),
		"stars", stars.Value())
	return created, nil
}

func eligibility(ctx context.Context, reads shared.CommandReads, userID, productID uuid.UUID) (rating.Eligibility, error) {
	history, err := reads.ReservationsByProductAndUser(ctx, productID, userID)
	if err != nil {
		return rating.Eligibility{}, err
	}
	rated, err := reads.RatingExists(ctx, productID, userID)
	if err != nil {
		return rating.Eligibility{}, err
	}

	el := rating.Eligibility{AlreadyRated: rated}
	for _, res := range history {
		el.Statuses = append(el.Statuses, res.Status())
	}
	return el, nil
}
