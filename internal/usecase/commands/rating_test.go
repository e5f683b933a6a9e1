//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"dh-booking/internal/domain/rating"
	"dh-booking/internal/domain/reservation"
	"dh-booking/internal/infra/memstore"
	"dh-booking/internal/pkg/clock"
	"dh-booking/internal/pkg/errs"
	"dh-booking/internal/usecase/commands"
	"dh-booking/internal/usecase/shared"
	"dh-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type ratingFixture struct {
	store     *memstore.Store
	uc        commands.RatingCommands
	productID uuid.UUID
	userID    uuid.UUID
}

func newRatingFixture(t *testing.T) *ratingFixture {
	t.Helper()
	store := memstore.New()
	p := builder.NewProduct("Lake Cabin")
	store.AddProduct(p)
	u, err := builder.NewUserBuilder().BuildDomain()
	require.NoError(t, err)
	store.AddUser(u)

	clk := clock.NewMockClock(time.Date(2030, time.March, 1, 10, 0, 0, 0, time.UTC))
	return &ratingFixture{
		store:     store,
		uc:        commands.NewRatingUseCase(store, memstore.NewProductDirectory(store), memstore.NewUserDirectory(store), clk),
		productID: p.ID(),
		userID:    u.ID(),
	}
}

// stay stores a reservation of the fixture's user directly in the given status.
func (f *ratingFixture) stay(t *testing.T, status reservation.Status) {
	t.Helper()
	res := builder.NewReservationBuilder().
		WithProduct(f.productID).
		WithUser(f.userID).
		WithStatus(status).
		BuildDomain()
	err := f.store.WithinProduct(context.Background(), f.productID, func(ctx context.Context, tx shared.Tx) error {
		return tx.Reservations().Create(ctx, res)
	})
	require.NoError(t, err)
}

func (f *ratingFixture) submit(stars int) (*rating.Rating, error) {
	return f.uc.SubmitRating(context.Background(), commands.SubmitRatingInput{
		UserID:    f.userID,
		ProductID: f.productID,
		Stars:     stars,
	})
}

func TestRatingLifecycle(t *testing.T) {
	f := newRatingFixture(t)
	ctx := context.Background()

	can, err := f.uc.CanRate(ctx, f.userID, f.productID)
	require.NoError(t, err)
	assert.False(t, can, "no stay yet")

	_, err = f.submit(5)
	assert.ErrorIs(t, err, rating.ErrNotEligible)
	assert.Equal(t, errs.KindPermissionDenied, errs.KindOf(err))

	f.stay(t, reservation.StatusFinished)

	can, err = f.uc.CanRate(ctx, f.userID, f.productID)
	require.NoError(t, err)
	assert.True(t, can)

	r, err := f.submit(4)
	require.NoError(t, err)
	assert.Equal(t, 4, r.Stars().Value())
	assert.Equal(t, f.productID, r.ProductID())

	can, err = f.uc.CanRate(ctx, f.userID, f.productID)
	require.NoError(t, err)
	assert.False(t, can, "already rated")

	_, err = f.submit(3)
	assert.ErrorIs(t, err, rating.ErrAlreadyRated)
	assert.Equal(t, errs.KindConflict, errs.KindOf(err))
}

func TestSubmitRatingRejections(t *testing.T) {
	tests := []struct {
		name   string
		status reservation.Status
		stars  int
		errIs  error
		kind   errs.Kind
	}{
		{name: "stars below range", status: reservation.StatusFinished, stars: 0, errIs: rating.ErrInvalidStars, kind: errs.KindInvalidArgument},
		{name: "stars above range", status: reservation.StatusFinished, stars: 6, errIs: rating.ErrInvalidStars, kind: errs.KindInvalidArgument},
		{name: "confirmed stay is not enough", status: reservation.StatusConfirmed, stars: 5, errIs: rating.ErrNotEligible, kind: errs.KindPermissionDenied},
		{name: "cancelled stay is not enough", status: reservation.StatusCancelled, stars: 5, errIs: rating.ErrNotEligible, kind: errs.KindPermissionDenied},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newRatingFixture(t)
			f.stay(t, tt.status)

			_, err := f.submit(tt.stars)
			assert.ErrorIs(t, err, tt.errIs)
			assert.Equal(t, tt.kind, errs.KindOf(err))
		})
	}

	t.Run("unknown product", func(t *testing.T) {
		f := newRatingFixture(t)
		_, err := f.uc.SubmitRating(context.Background(), commands.SubmitRatingInput{
			UserID: f.userID, ProductID: uuid.New(), Stars: 5,
		})
		assert.ErrorIs(t, err, commands.ErrProductNotFound)
	})

	t.Run("unknown user", func(t *testing.T) {
		f := newRatingFixture(t)
		_, err := f.uc.SubmitRating(context.Background(), commands.SubmitRatingInput{
			UserID: uuid.New(), ProductID: f.productID, Stars: 5,
		})
		assert.ErrorIs(t, err, commands.ErrUserNotFound)
	})
}

func TestSubmitRatingVanishedUserIsNotFound(t *testing.T) {
	f := newRatingFixture(t)
	clk := clock.NewMockClock(time.Date(2030, time.March, 1, 10, 0, 0, 0, time.UTC))
	uc := commands.NewRatingUseCase(danglingUnitOfWork{f.store}, memstore.NewProductDirectory(f.store), memstore.NewUserDirectory(f.store), clk)

	_, err := uc.SubmitRating(context.Background(), commands.SubmitRatingInput{
		UserID: f.userID, ProductID: f.productID, Stars: 4,
	})
	assert.ErrorIs(t, err, commands.ErrUserNotFound)
	assert.Equal(t, errs.KindNotFound, errs.KindOf(err))
}

func TestCanRateUnknownPairIsFalse(t *testing.T) {
	f := newRatingFixture(t)
	can, err := f.uc.CanRate(context.Background(), uuid.New(), uuid.New())
	require.NoError(t, err)
	assert.False(t, can)
}
