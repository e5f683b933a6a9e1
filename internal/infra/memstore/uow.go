package memstore

import (
	"context"
	"slices"

	"dh-booking/internal/domain/rating"
	"dh-booking/internal/domain/reservation"
	"dh-booking/internal/infra"
	"dh-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

// WithinProduct runs fn holding the product's lock. Writes made through tx
// are staged and applied all at once after fn returns nil.
func (s *Store) WithinProduct(ctx context.Context, productID uuid.UUID, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.mu.RLock()
	exists := s.productExists(productID)
	s.mu.RUnlock()
	if !exists {
		return infra.NewRepoErr(infra.KindNotFound, "product not found")
	}

	unlock, err := s.lockProduct(ctx, productID)
	if err != nil {
		return err
	}
	defer unlock()

	tx := newMemTx(s)
	if err := fn(ctx, tx); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.commit(tx)
}

func (s *Store) CommandReads() shared.CommandReads {
	return &txReads{tx: newMemTx(s)}
}

func (s *Store) commit(tx *memTx) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id := range tx.updates {
		if _, ok := s.reservations[id]; !ok && !tx.isCreated(id) {
			return infra.NewRepoErr(infra.KindNotFound, "reservation not found")
		}
	}
	for i, r := range tx.creates {
		if !r.Status().BlocksAdmission() {
			continue
		}
		for _, other := range s.reservationsOf(s.byProduct[r.ProductID()]) {
			if u, ok := tx.updates[other.ID()]; ok {
				other = u
			}
			if r.Conflicts(other) {
				return infra.NewRepoErr(infra.KindConflict, "overlapping reservation")
			}
		}
		for _, other := range tx.creates[:i] {
			if r.Conflicts(other) {
				return infra.NewRepoErr(infra.KindConflict, "overlapping reservation")
			}
		}
	}
	for _, r := range tx.ratings {
		if _, ok := s.ratingKeys[ratingKey{productID: r.ProductID(), userID: r.UserID()}]; ok {
			return infra.NewRepoErr(infra.KindDuplicateKey, "rating already exists")
		}
	}

	for _, r := range tx.creates {
		s.insertReservation(r)
	}
	for id, r := range tx.updates {
		s.reservations[id] = cloneReservation(r)
	}
	for _, r := range tx.ratings {
		s.insertRating(r)
	}
	return nil
}

type memTx struct {
	store *Store

	creates []*reservation.Reservation
	updates map[uuid.UUID]*reservation.Reservation
	ratings []*rating.Rating
}

func newMemTx(s *Store) *memTx {
	return &memTx{
		store:   s,
		updates: make(map[uuid.UUID]*reservation.Reservation),
	}
}

func (t *memTx) Reservations() shared.ReservationRepository { return &txReservations{tx: t} }
func (t *memTx) Ratings() shared.RatingRepository           { return &txRatings{tx: t} }
func (t *memTx) Reads() shared.CommandReads                 { return &txReads{tx: t} }

func (t *memTx) isCreated(id uuid.UUID) bool {
	return slices.ContainsFunc(t.creates, func(r *reservation.Reservation) bool { return r.ID() == id })
}

// view returns the reservations of productID as this transaction sees them.
func (t *memTx) view(productID uuid.UUID) []*reservation.Reservation {
	t.store.mu.RLock()
	committed := t.store.reservationsOf(t.store.byProduct[productID])
	t.store.mu.RUnlock()

	out := make([]*reservation.Reservation, 0, len(committed)+len(t.creates))
	for _, r := range committed {
		if u, ok := t.updates[r.ID()]; ok {
			r = cloneReservation(u)
		}
		out = append(out, r)
	}
	for _, r := range t.creates {
		if r.ProductID() != productID {
			continue
		}
		if u, ok := t.updates[r.ID()]; ok {
			r = u
		}
		out = append(out, cloneReservation(r))
	}
	return out
}

func (t *memTx) find(id uuid.UUID) (*reservation.Reservation, bool) {
	if u, ok := t.updates[id]; ok {
		return cloneReservation(u), true
	}
	for _, r := range t.creates {
		if r.ID() == id {
			return cloneReservation(r), true
		}
	}
	t.store.mu.RLock()
	defer t.store.mu.RUnlock()
	r, ok := t.store.reservations[id]
	if !ok {
		return nil, false
	}
	return cloneReservation(r), true
}

type txReservations struct {
	tx *memTx
}

func (r *txReservations) Create(_ context.Context, res *reservation.Reservation) error {
	if _, ok := r.tx.find(res.ID()); ok {
		return infra.NewRepoErr(infra.KindDuplicateKey, "reservation id already exists")
	}
	r.tx.creates = append(r.tx.creates, cloneReservation(res))
	return nil
}

func (r *txReservations) FindOverlapping(_ context.Context, productID uuid.UUID, period reservation.Period, statuses []reservation.Status) ([]*reservation.Reservation, error) {
	var out []*reservation.Reservation
	for _, res := range r.tx.view(productID) {
		if slices.Contains(statuses, res.Status()) && res.Period().Overlaps(period) {
			out = append(out, res)
		}
	}
	sortByStart(out)
	return out, nil
}

func (r *txReservations) UpdateStatus(_ context.Context, res *reservation.Reservation) error {
	if _, ok := r.tx.find(res.ID()); !ok {
		return infra.NewRepoErr(infra.KindNotFound, "reservation not found")
	}
	r.tx.updates[res.ID()] = cloneReservation(res)
	return nil
}

type txRatings struct {
	tx *memTx
}

func (r *txRatings) Create(ctx context.Context, rt *rating.Rating) error {
	exists, err := r.tx.Reads().RatingExists(ctx, rt.ProductID(), rt.UserID())
	if err != nil {
		return err
	}
	if exists {
		return infra.NewRepoErr(infra.KindDuplicateKey, "rating already exists")
	}
	cp := *rt
	r.tx.ratings = append(r.tx.ratings, &cp)
	return nil
}

type txReads struct {
	tx *memTx
}

func (r *txReads) ReservationByID(_ context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	res, ok := r.tx.find(id)
	if !ok {
		return nil, infra.NewRepoErr(infra.KindNotFound, "reservation not found")
	}
	return res, nil
}

func (r *txReads) ReservationsByProductAndUser(_ context.Context, productID, userID uuid.UUID) ([]*reservation.Reservation, error) {
	var out []*reservation.Reservation
	for _, res := range r.tx.view(productID) {
		if res.UserID() == userID {
			out = append(out, res)
		}
	}
	sortByStart(out)
	return out, nil
}

func (r *txReads) RatingExists(_ context.Context, productID, userID uuid.UUID) (bool, error) {
	for _, rt := range r.tx.ratings {
		if rt.ProductID() == productID && rt.UserID() == userID {
			return true, nil
		}
	}
	r.tx.store.mu.RLock()
	defer r.tx.store.mu.RUnlock()
	_, ok := r.tx.store.ratingKeys[ratingKey{productID: productID, userID: userID}]
	return ok, nil
}
