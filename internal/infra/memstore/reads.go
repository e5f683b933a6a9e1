package memstore

import (
	"context"
	"slices"

	"dh-booking/internal/domain/reservation"
	"dh-booking/internal/infra"
	"dh-booking/internal/usecase/queries"
	"dh-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

// ReservationReadStore serves the reservation projections.
type ReservationReadStore struct {
	s *Store
}

func NewReservationReadStore(s *Store) *ReservationReadStore {
	return &ReservationReadStore{s: s}
}

func (r *ReservationReadStore) FindByID(_ context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	res, ok := r.s.reservations[id]
	if !ok {
		return nil, infra.NewRepoErr(infra.KindNotFound, "reservation not found")
	}
	return r.s.reservationView(res), nil
}

func (r *ReservationReadStore) FindByUser(_ context.Context, userID uuid.UUID) ([]*queries.ReservationView, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	rs := r.s.reservationsOf(r.s.byUser[userID])
	slices.SortFunc(rs, func(a, b *reservation.Reservation) int {
		if c := b.Period().Start().Compare(a.Period().Start()); c != 0 {
			return c
		}
		return compareIDs(a.ID(), b.ID())
	})
	return r.s.reservationViews(rs), nil
}

func (r *ReservationReadStore) FindByProduct(_ context.Context, productID uuid.UUID, statuses []reservation.Status) ([]*queries.ReservationView, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	rs := r.s.reservationsOf(r.s.byProduct[productID])
	if len(statuses) > 0 {
		rs = slices.DeleteFunc(rs, func(res *reservation.Reservation) bool {
			return !slices.Contains(statuses, res.Status())
		})
	}
	sortByStart(rs)
	return r.s.reservationViews(rs), nil
}

func (r *ReservationReadStore) FindByProductAndUser(_ context.Context, productID, userID uuid.UUID) ([]*queries.ReservationView, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	rs := r.s.reservationsOf(r.s.byProduct[productID])
	rs = slices.DeleteFunc(rs, func(res *reservation.Reservation) bool {
		return res.UserID() != userID
	})
	sortByStart(rs)
	return r.s.reservationViews(rs), nil
}

func (r *ReservationReadStore) FindOccupied(_ context.Context, productID uuid.UUID, horizon reservation.Period) ([]reservation.Period, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	rs := r.s.reservationsOf(r.s.byProduct[productID])
	sortByStart(rs)

	var out []reservation.Period
	for _, res := range rs {
		if res.Status().Occupies() && res.Period().Overlaps(horizon) {
			out = append(out, res.Period())
		}
	}
	return out, nil
}

func (s *Store) reservationView(res *reservation.Reservation) *queries.ReservationView {
	view := &queries.ReservationView{
		ID:        res.ID(),
		ProductID: res.ProductID(),
		UserID:    res.UserID(),
		StartDate: res.Period().Start(),
		EndDate:   res.Period().End(),
		Status:    res.Status(),
		CreatedAt: res.CreatedAt(),
		UpdatedAt: res.UpdatedAt(),
	}
	if p, ok := s.products[res.ProductID()]; ok {
		view.ProductName = p.Name()
	}
	if u, ok := s.users[res.UserID()]; ok {
		view.UserName = u.Name()
		view.UserEmail = u.Email().Value()
	}
	return view
}

func (s *Store) reservationViews(rs []*reservation.Reservation) []*queries.ReservationView {
	out := make([]*queries.ReservationView, len(rs))
	for i, res := range rs {
		out[i] = s.reservationView(res)
	}
	return out
}

type RatingReadStore struct {
	s *Store
}

func NewRatingReadStore(s *Store) *RatingReadStore {
	return &RatingReadStore{s: s}
}

// FindByProduct lists ratings newest first.
func (r *RatingReadStore) FindByProduct(_ context.Context, productID uuid.UUID) ([]*queries.RatingView, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	ids := r.s.ratingsByProduct[productID]
	out := make([]*queries.RatingView, 0, len(ids))
	for _, id := range ids {
		rt, ok := r.s.ratings[id]
		if !ok {
			continue
		}
		view := &queries.RatingView{
			ID:        rt.ID(),
			ProductID: rt.ProductID(),
			UserID:    rt.UserID(),
			Stars:     rt.Stars().Value(),
			CreatedAt: rt.CreatedAt(),
		}
		if u, ok := r.s.users[rt.UserID()]; ok {
			view.UserName = u.Name()
		}
		out = append(out, view)
	}
	slices.SortFunc(out, func(a, b *queries.RatingView) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return compareIDs(a.ID, b.ID)
	})
	return out, nil
}

type ProductDirectory struct {
	s *Store
}

func NewProductDirectory(s *Store) *ProductDirectory {
	return &ProductDirectory{s: s}
}

func (d *ProductDirectory) Exists(_ context.Context, productID uuid.UUID) (bool, error) {
	d.s.mu.RLock()
	defer d.s.mu.RUnlock()
	return d.s.productExists(productID), nil
}

func (d *ProductDirectory) GetName(_ context.Context, productID uuid.UUID) (string, error) {
	d.s.mu.RLock()
	defer d.s.mu.RUnlock()
	p, ok := d.s.products[productID]
	if !ok {
		return "", infra.NewRepoErr(infra.KindNotFound, "product not found")
	}
	return p.Name(), nil
}

type UserDirectory struct {
	s *Store
}

func NewUserDirectory(s *Store) *UserDirectory {
	return &UserDirectory{s: s}
}

func (d *UserDirectory) Exists(_ context.Context, userID uuid.UUID) (bool, error) {
	d.s.mu.RLock()
	defer d.s.mu.RUnlock()
	_, ok := d.s.users[userID]
	return ok, nil
}

func (d *UserDirectory) GetProfile(_ context.Context, userID uuid.UUID) (*shared.UserProfile, error) {
	d.s.mu.RLock()
	defer d.s.mu.RUnlock()
	u, ok := d.s.users[userID]
	if !ok {
		return nil, infra.NewRepoErr(infra.KindNotFound, "user not found")
	}
	return &shared.UserProfile{
		ID:    u.ID(),
		Name:  u.Name(),
		Email: u.Email().Value(),
	}, nil
}
