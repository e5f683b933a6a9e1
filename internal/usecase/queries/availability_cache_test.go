//go:build unit

package queries_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"dh-booking/internal/domain/reservation"
	"dh-booking/internal/infra/memstore"
	"dh-booking/internal/pkg/clock"
	"dh-booking/internal/usecase/commands"
	"dh-booking/internal/usecase/queries"
	"dh-booking/internal/usecase/shared"
	"dh-booking/tests/common/builder"
	sharedmock "dh-booking/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// generationCache mirrors the redis cache's generation rules in memory.
type generationCache struct {
	mu      sync.Mutex
	gen     map[uuid.UUID]int64
	entries map[string][]reservation.Period
}

func newGenerationCache() *generationCache {
	return &generationCache{
		gen:     map[uuid.UUID]int64{},
		entries: map[string][]reservation.Period{},
	}
}

func (c *generationCache) key(productID uuid.UUID, gen int64, horizon reservation.Period) string {
	return fmt.Sprintf("%s:%d:%s", productID, gen, horizon.String())
}

func (c *generationCache) Get(_ context.Context, productID uuid.UUID, horizon reservation.Period) ([]reservation.Period, int64, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	gen := c.gen[productID]
	free, ok := c.entries[c.key(productID, gen, horizon)]
	return free, gen, ok
}

func (c *generationCache) Set(_ context.Context, productID uuid.UUID, horizon reservation.Period, version int64, free []reservation.Period) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if version < 0 || version != c.gen[productID] {
		return
	}
	c.entries[c.key(productID, version, horizon)] = free
}

func (c *generationCache) Invalidate(_ context.Context, productID uuid.UUID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gen[productID]++
}

// confirmingReadStore confirms a reservation right after the first occupied
// read, before the caller gets to store its result.
type confirmingReadStore struct {
	*memstore.ReservationReadStore
	once    sync.Once
	confirm func()
}

func (r *confirmingReadStore) FindOccupied(ctx context.Context, productID uuid.UUID, horizon reservation.Period) ([]reservation.Period, error) {
	occupied, err := r.ReservationReadStore.FindOccupied(ctx, productID, horizon)
	r.once.Do(r.confirm)
	return occupied, err
}

func TestStatusChangeDuringRecomputeIsNotCached(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)

	store := memstore.New()
	p := builder.NewProduct("Lake Cabin")
	store.AddProduct(p)
	u, err := builder.NewUserBuilder().BuildDomain()
	require.NoError(t, err)
	store.AddUser(u)

	pending := builder.NewReservationBuilder().
		WithProduct(p.ID()).
		WithUser(u.ID()).
		WithDates(builder.Day(2030, time.January, 10), builder.Day(2030, time.January, 12)).
		WithStatus(reservation.StatusPending).
		BuildDomain()
	err = store.WithinProduct(ctx, p.ID(), func(ctx context.Context, tx shared.Tx) error {
		return tx.Reservations().Create(ctx, pending)
	})
	require.NoError(t, err)

	cache := newGenerationCache()
	clk := clock.NewMockClock(time.Date(2029, time.December, 1, 9, 0, 0, 0, time.UTC))
	reservations := commands.NewReservationUseCase(
		store,
		memstore.NewProductDirectory(store),
		memstore.NewUserDirectory(store),
		sharedmock.NewMockNotifier(ctrl),
		cache,
		clk,
		commands.Settings{Location: time.UTC, NotificationTimeout: time.Second},
	)

	reads := &confirmingReadStore{
		ReservationReadStore: memstore.NewReservationReadStore(store),
		confirm: func() {
			_, cerr := reservations.ChangeStatus(ctx, pending.ID(), "CONFIRMED")
			require.NoError(t, cerr)
		},
	}
	q := queries.NewAvailabilityQueries(reads, memstore.NewProductDirectory(store), cache, clk, queries.AvailabilitySettings{
		Location:      time.UTC,
		HorizonMonths: 12,
	})

	from, to := builder.Day(2030, time.January, 1), builder.Day(2030, time.January, 31)

	stale, err := q.GetAvailability(ctx, p.ID(), &from, &to)
	require.NoError(t, err)
	assert.Equal(t, []reservation.Period{builder.MustPeriod(from, to)}, stale.Free)

	want := []reservation.Period{
		builder.MustPeriod(from, builder.Day(2030, time.January, 9)),
		builder.MustPeriod(builder.Day(2030, time.January, 13), to),
	}
	for range 2 {
		view, err := q.GetAvailability(ctx, p.ID(), &from, &to)
		require.NoError(t, err)
		assert.Equal(t, want, view.Free)
	}
}
