// Package memstore is an in-process arena store: records live in maps keyed
// by id, relations are resolved through secondary indexes.
package memstore

import (
	"bytes"
	"context"
	"slices"
	"sync"

	"dh-booking/internal/domain/product"
	"dh-booking/internal/domain/rating"
	"dh-booking/internal/domain/reservation"
	"dh-booking/internal/domain/user"

	"github.com/google/uuid"
)

type ratingKey struct {
	productID uuid.UUID
	userID    uuid.UUID
}

type Store struct {
	mu sync.RWMutex

	products map[uuid.UUID]*product.Product
	users    map[uuid.UUID]*user.User

	reservations map[uuid.UUID]*reservation.Reservation
	byProduct    map[uuid.UUID][]uuid.UUID
	byUser       map[uuid.UUID][]uuid.UUID

	ratings          map[uuid.UUID]*rating.Rating
	ratingsByProduct map[uuid.UUID][]uuid.UUID
	ratingKeys       map[ratingKey]uuid.UUID

	locksMu sync.Mutex
	locks   map[uuid.UUID]chan struct{}
}

func New() *Store {
	return &Store{
		products:         make(map[uuid.UUID]*product.Product),
		users:            make(map[uuid.UUID]*user.User),
		reservations:     make(map[uuid.UUID]*reservation.Reservation),
		byProduct:        make(map[uuid.UUID][]uuid.UUID),
		byUser:           make(map[uuid.UUID][]uuid.UUID),
		ratings:          make(map[uuid.UUID]*rating.Rating),
		ratingsByProduct: make(map[uuid.UUID][]uuid.UUID),
		ratingKeys:       make(map[ratingKey]uuid.UUID),
		locks:            make(map[uuid.UUID]chan struct{}),
	}
}

func (s *Store) AddProduct(p *product.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products[p.ID()] = p
}

func (s *Store) AddUser(u *user.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[u.ID()] = u
}

// lockProduct blocks until the product's admission lock is free or ctx ends.
func (s *Store) lockProduct(ctx context.Context, productID uuid.UUID) (func(), error) {
	s.locksMu.Lock()
	sem, ok := s.locks[productID]
	if !ok {
		sem = make(chan struct{}, 1)
		s.locks[productID] = sem
	}
	s.locksMu.Unlock()

	select {
	case sem <- struct{}{}:
		return func() { <-sem }, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Callers hold at least the read lock for the helpers below.

func (s *Store) productExists(id uuid.UUID) bool {
	_, ok := s.products[id]
	return ok
}

func (s *Store) reservationsOf(ids []uuid.UUID) []*reservation.Reservation {
	out := make([]*reservation.Reservation, 0, len(ids))
	for _, id := range ids {
		if r, ok := s.reservations[id]; ok {
			out = append(out, cloneReservation(r))
		}
	}
	return out
}

func (s *Store) insertReservation(r *reservation.Reservation) {
	s.reservations[r.ID()] = cloneReservation(r)
	s.byProduct[r.ProductID()] = append(s.byProduct[r.ProductID()], r.ID())
	s.byUser[r.UserID()] = append(s.byUser[r.UserID()], r.ID())
}

func (s *Store) insertRating(r *rating.Rating) {
	cp := *r
	s.ratings[r.ID()] = &cp
	s.ratingsByProduct[r.ProductID()] = append(s.ratingsByProduct[r.ProductID()], r.ID())
	s.ratingKeys[ratingKey{productID: r.ProductID(), userID: r.UserID()}] = r.ID()
}

func cloneReservation(r *reservation.Reservation) *reservation.Reservation {
	cp := *r
	return &cp
}

func sortByStart(rs []*reservation.Reservation) {
	slices.SortFunc(rs, func(a, b *reservation.Reservation) int {
		if c := a.Period().Start().Compare(b.Period().Start()); c != 0 {
			return c
		}
		return compareIDs(a.ID(), b.ID())
	})
}

func compareIDs(a, b uuid.UUID) int {
	return bytes.Compare(a[:], b[:])
}
