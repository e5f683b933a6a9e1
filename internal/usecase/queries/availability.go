package queries

import (
	"context"
	"log/slog"
	"time"

	"dh-booking/internal/domain/availability"
	"dh-booking/internal/domain/reservation"
	"dh-booking/internal/pkg/clock"
	"dh-booking/internal/pkg/errs"
	"dh-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=availability.go -destination=../../../tests/mock/queries/availability.go -package=queriesmock

var ErrInvalidHorizon = errs.NewKind("availability range start must not be after its end", errs.ErrInvalidArgument)

type AvailabilitySettings struct {
	Location      *time.Location
	HorizonMonths int
}

type AvailabilityQueries interface {
	// GetAvailability returns the free ranges of productID. A nil from means
	// today; a nil to means from plus the configured horizon.
	GetAvailability(ctx context.Context, productID uuid.UUID, from, to *time.Time) (*AvailabilityView, error)
}

type availabilityQueriesImpl struct {
	store    ReservationReadStore
	products shared.ProductDirectory
	cache    shared.AvailabilityCache
	clock    clock.Clock
	settings AvailabilitySettings
}

func NewAvailabilityQueries(
	store ReservationReadStore,
	products shared.ProductDirectory,
	cache shared.AvailabilityCache,
	clk clock.Clock,
	settings AvailabilitySettings,
) AvailabilityQueries {
	if cache == nil {
		cache = shared.NewNopAvailabilityCache()
	}
	return &availabilityQueriesImpl{
		store:    store,
		products: products,
		cache:    cache,
		clock:    clk,
		settings: settings,
	}
}

func (q *availabilityQueriesImpl) GetAvailability(ctx context.Context, productID uuid.UUID, from, to *time.Time) (*AvailabilityView, error) {
	horizon, err := q.horizon(from, to)
	if err != nil {
		return nil, err
	}

	exists, err := q.products.Exists(ctx, productID)
	if err != nil {
		return nil, shared.StoreError(err, ErrProductNotFound)
	}
	if !exists {
		return nil, ErrProductNotFound
	}

	view := &AvailabilityView{
		ProductID: productID,
		From:      horizon.Start(),
		To:        horizon.End(),
	}

	// version is taken before the store read; a status change committed
	// after this point bumps it and the Set below is discarded.
	free, version, hit := q.cache.Get(ctx, productID, horizon)
	if hit {
		view.Free = free
		return view, nil
	}

	occupied, err := q.store.FindOccupied(ctx, productID, horizon)
	if err != nil {
		return nil, shared.StoreError(err, nil)
	}
	view.Free = availability.FreePeriods(horizon, occupied)

	q.cache.Set(ctx, productID, horizon, version, view.Free)
	slog.Debug("availability computed",
		"product_id", productID.String(),
		"horizon", horizon.String(),
		"occupied", len(occupied),
		"free", len(view.Free))

	return view, nil
}

func (q *availabilityQueriesImpl) horizon(from, to *time.Time) (reservation.Period, error) {
	start := clock.Today(q.clock, q.settings.Location)
	if from != nil {
		start = reservation.Day(*from)
	}

	var end time.Time
	if to != nil {
		end = reservation.Day(*to)
	} else {
		end = availability.DefaultHorizon(start, q.months()).End()
	}

	period, err := reservation.NewPeriod(start, end)
	if err != nil {
		return reservation.Period{}, ErrInvalidHorizon
	}
	return period, nil
}

func (q *availabilityQueriesImpl) months() int {
	if q.settings.HorizonMonths <= 0 {
		return 12
	}
	return q.settings.HorizonMonths
}
