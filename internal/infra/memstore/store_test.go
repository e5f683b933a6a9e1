//go:build unit

package memstore_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"dh-booking/internal/domain/rating"
	"dh-booking/internal/domain/reservation"
	"dh-booking/internal/infra"
	"dh-booking/internal/infra/memstore"
	"dh-booking/internal/usecase/shared"
	"dh-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type StoreTestSuite struct {
	suite.Suite
	store     *memstore.Store
	productID uuid.UUID
	userID    uuid.UUID
	ctx       context.Context
}

func (s *StoreTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = memstore.New()

	p := builder.NewProduct("Lake Cabin")
	s.store.AddProduct(p)
	s.productID = p.ID()

	u, err := builder.NewUserBuilder().BuildDomain()
	s.Require().NoError(err)
	s.store.AddUser(u)
	s.userID = u.ID()
}

func TestStoreSuite(t *testing.T) {
	suite.Run(t, new(StoreTestSuite))
}

func (s *StoreTestSuite) reservation(start, end time.Time, status reservation.Status) *reservation.Reservation {
	return builder.NewReservationBuilder().
		WithProduct(s.productID).
		WithUser(s.userID).
		WithDates(start, end).
		WithStatus(status).
		BuildDomain()
}

func (s *StoreTestSuite) create(res *reservation.Reservation) error {
	return s.store.WithinProduct(s.ctx, s.productID, func(ctx context.Context, tx shared.Tx) error {
		return tx.Reservations().Create(ctx, res)
	})
}

func (s *StoreTestSuite) TestCommitMakesWritesVisible() {
	res := s.reservation(builder.Day(2030, 3, 10), builder.Day(2030, 3, 12), reservation.StatusConfirmed)
	s.Require().NoError(s.create(res))

	views, err := memstore.NewReservationReadStore(s.store).FindByProduct(s.ctx, s.productID, nil)
	s.Require().NoError(err)
	s.Require().Len(views, 1)
	s.Equal(res.ID(), views[0].ID)
	s.Equal("Lake Cabin", views[0].ProductName)
	s.Equal("guest@example.com", views[0].UserEmail)
}

func (s *StoreTestSuite) TestFailedUnitLeavesNoTrace() {
	boom := errors.New("boom")
	res := s.reservation(builder.Day(2030, 3, 10), builder.Day(2030, 3, 12), reservation.StatusPending)

	err := s.store.WithinProduct(s.ctx, s.productID, func(ctx context.Context, tx shared.Tx) error {
		s.Require().NoError(tx.Reservations().Create(ctx, res))

		// visible inside the unit
		found, err := tx.Reservations().FindOverlapping(ctx, s.productID, res.Period(), reservation.ActiveStatuses())
		s.Require().NoError(err)
		s.Len(found, 1)
		return boom
	})
	s.ErrorIs(err, boom)

	_, err = s.store.CommandReads().ReservationByID(s.ctx, res.ID())
	s.True(infra.IsKind(err, infra.KindNotFound))
}

func (s *StoreTestSuite) TestUnknownProduct() {
	called := false
	err := s.store.WithinProduct(s.ctx, uuid.New(), func(context.Context, shared.Tx) error {
		called = true
		return nil
	})
	s.True(infra.IsKind(err, infra.KindNotFound))
	s.False(called)
}

func (s *StoreTestSuite) TestCommitRejectsOverlapWithinOneUnit() {
	a := s.reservation(builder.Day(2030, 3, 10), builder.Day(2030, 3, 12), reservation.StatusPending)
	b := s.reservation(builder.Day(2030, 3, 12), builder.Day(2030, 3, 14), reservation.StatusPending)

	err := s.store.WithinProduct(s.ctx, s.productID, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Reservations().Create(ctx, a); err != nil {
			return err
		}
		return tx.Reservations().Create(ctx, b)
	})
	s.True(infra.IsKind(err, infra.KindConflict))

	views, err := memstore.NewReservationReadStore(s.store).FindByProduct(s.ctx, s.productID, nil)
	s.Require().NoError(err)
	s.Empty(views, "neither write may survive")
}

func (s *StoreTestSuite) TestCancelledReservationFreesDates() {
	first := s.reservation(builder.Day(2030, 3, 10), builder.Day(2030, 3, 12), reservation.StatusPending)
	s.Require().NoError(s.create(first))

	err := s.store.WithinProduct(s.ctx, s.productID, func(ctx context.Context, tx shared.Tx) error {
		cur, err := tx.Reads().ReservationByID(ctx, first.ID())
		if err != nil {
			return err
		}
		if err := cur.TransitionTo(reservation.StatusCancelled, time.Now()); err != nil {
			return err
		}
		return tx.Reservations().UpdateStatus(ctx, cur)
	})
	s.Require().NoError(err)

	second := s.reservation(builder.Day(2030, 3, 10), builder.Day(2030, 3, 12), reservation.StatusPending)
	s.NoError(s.create(second))
}

func (s *StoreTestSuite) TestUpdateUnknownReservation() {
	ghost := s.reservation(builder.Day(2030, 3, 10), builder.Day(2030, 3, 12), reservation.StatusConfirmed)
	err := s.store.WithinProduct(s.ctx, s.productID, func(ctx context.Context, tx shared.Tx) error {
		return tx.Reservations().UpdateStatus(ctx, ghost)
	})
	s.True(infra.IsKind(err, infra.KindNotFound))
}

func (s *StoreTestSuite) TestFindOccupiedOnlyConfirmed() {
	s.Require().NoError(s.create(s.reservation(builder.Day(2030, 3, 1), builder.Day(2030, 3, 3), reservation.StatusPending)))
	s.Require().NoError(s.create(s.reservation(builder.Day(2030, 3, 10), builder.Day(2030, 3, 12), reservation.StatusConfirmed)))
	s.Require().NoError(s.create(s.reservation(builder.Day(2030, 3, 20), builder.Day(2030, 3, 22), reservation.StatusFinished)))

	horizon := builder.MustPeriod(builder.Day(2030, 3, 1), builder.Day(2030, 3, 31))
	got, err := memstore.NewReservationReadStore(s.store).FindOccupied(s.ctx, s.productID, horizon)
	s.Require().NoError(err)
	s.Require().Len(got, 1)
	s.Equal(builder.Day(2030, 3, 10), got[0].Start())
}

func (s *StoreTestSuite) TestDuplicateRating() {
	stars, _ := rating.NewStars(5)
	rate := func() error {
		return s.store.WithinProduct(s.ctx, s.productID, func(ctx context.Context, tx shared.Tx) error {
			r, err := rating.NewRating(s.productID, s.userID, stars, time.Now())
			if err != nil {
				return err
			}
			return tx.Ratings().Create(ctx, r)
		})
	}

	s.Require().NoError(rate())
	s.True(infra.IsKind(rate(), infra.KindDuplicateKey))

	exists, err := s.store.CommandReads().RatingExists(s.ctx, s.productID, s.userID)
	s.Require().NoError(err)
	s.True(exists)

	views, err := memstore.NewRatingReadStore(s.store).FindByProduct(s.ctx, s.productID)
	s.Require().NoError(err)
	s.Len(views, 1)
}

// Only one of many concurrent admissions for the same dates may win.
func (s *StoreTestSuite) TestConcurrentAdmissionsSameProduct() {
	const workers = 32
	period := builder.MustPeriod(builder.Day(2030, 5, 1), builder.Day(2030, 5, 5))

	var (
		wg        sync.WaitGroup
		succeeded atomic.Int32
		conflicts atomic.Int32
	)
	start := make(chan struct{})
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			err := s.store.WithinProduct(s.ctx, s.productID, func(ctx context.Context, tx shared.Tx) error {
				found, err := tx.Reservations().FindOverlapping(ctx, s.productID, period, reservation.ActiveStatuses())
				if err != nil {
					return err
				}
				if len(found) > 0 {
					return errConflict
				}
				return tx.Reservations().Create(ctx, s.reservation(period.Start(), period.End(), reservation.StatusPending))
			})
			switch {
			case err == nil:
				succeeded.Add(1)
			case errors.Is(err, errConflict):
				conflicts.Add(1)
			}
		}()
	}
	close(start)
	wg.Wait()

	s.Equal(int32(1), succeeded.Load())
	s.Equal(int32(workers-1), conflicts.Load())
}

var errConflict = errors.New("conflict")

func (s *StoreTestSuite) TestWaitingForLockHonoursContext() {
	held := make(chan struct{})
	release := make(chan struct{})
	done := make(chan error, 1)
	go func() {
		done <- s.store.WithinProduct(s.ctx, s.productID, func(context.Context, shared.Tx) error {
			close(held)
			<-release
			return nil
		})
	}()
	<-held

	ctx, cancel := context.WithTimeout(s.ctx, 20*time.Millisecond)
	defer cancel()
	err := s.store.WithinProduct(ctx, s.productID, func(context.Context, shared.Tx) error {
		s.Fail("must not run while the lock is held")
		return nil
	})
	s.ErrorIs(err, context.DeadlineExceeded)

	// other products are not blocked
	other := builder.NewProduct("Beach House")
	s.store.AddProduct(other)
	s.NoError(s.store.WithinProduct(s.ctx, other.ID(), func(context.Context, shared.Tx) error { return nil }))

	close(release)
	s.NoError(<-done)
}

func TestSeed(t *testing.T) {
	productID, userID := uuid.New(), uuid.New()

	t.Run("load from file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "seed.json")
		content := `{
  "products": [{"id": "` + productID.String() + `", "name": "Lake Cabin"}],
  "users": [{"id": "` + userID.String() + `", "name": "Ana", "email": "ana@example.com"}]
}`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		s := memstore.New()
		require.NoError(t, s.LoadSeedFile(path))

		name, err := memstore.NewProductDirectory(s).GetName(context.Background(), productID)
		require.NoError(t, err)
		assert.Equal(t, "Lake Cabin", name)

		profile, err := memstore.NewUserDirectory(s).GetProfile(context.Background(), userID)
		require.NoError(t, err)
		assert.Equal(t, "ana@example.com", profile.Email)
	})

	t.Run("invalid record aborts the whole seed", func(t *testing.T) {
		s := memstore.New()
		err := s.Apply(memstore.Seed{
			Products: []memstore.SeedProduct{{ID: productID, Name: "Lake Cabin"}},
			Users:    []memstore.SeedUser{{ID: userID, Name: "Ana", Email: "not-an-email"}},
		})
		require.Error(t, err)

		ok, err := memstore.NewProductDirectory(s).Exists(context.Background(), productID)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("missing file", func(t *testing.T) {
		assert.Error(t, memstore.New().LoadSeedFile(filepath.Join(t.TempDir(), "absent.json")))
	})
}
