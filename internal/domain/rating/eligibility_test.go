//go:build unit

package rating_test

import (
	"testing"
	"time"

	"dh-booking/internal/domain/rating"
	"dh-booking/internal/domain/reservation"
	"dh-booking/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEligibility(t *testing.T) {
	tests := []struct {
		name  string
		in    rating.Eligibility
		errIs error
		kind  errs.Kind
	}{
		{
			name:  "no reservations",
			in:    rating.Eligibility{},
			errIs: rating.ErrNotEligible,
			kind:  errs.KindPermissionDenied,
		},
		{
			name:  "only pending and confirmed",
			in:    rating.Eligibility{Statuses: []reservation.Status{reservation.StatusPending, reservation.StatusConfirmed}},
			errIs: rating.ErrNotEligible,
			kind:  errs.KindPermissionDenied,
		},
		{
			name:  "cancelled does not count",
			in:    rating.Eligibility{Statuses: []reservation.Status{reservation.StatusCancelled}},
			errIs: rating.ErrNotEligible,
			kind:  errs.KindPermissionDenied,
		},
		{
			name: "finished stay",
			in:   rating.Eligibility{Statuses: []reservation.Status{reservation.StatusCancelled, reservation.StatusFinished}},
		},
		{
			name:  "already rated wins over eligibility",
			in:    rating.Eligibility{Statuses: []reservation.Status{reservation.StatusFinished}, AlreadyRated: true},
			errIs: rating.ErrAlreadyRated,
			kind:  errs.KindConflict,
		},
		{
			name:  "already rated without a finished stay",
			in:    rating.Eligibility{AlreadyRated: true},
			errIs: rating.ErrAlreadyRated,
			kind:  errs.KindConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.in.Check()
			if tt.errIs == nil {
				assert.NoError(t, err)
				assert.True(t, tt.in.CanRate())
				return
			}
			assert.ErrorIs(t, err, tt.errIs)
			assert.Equal(t, tt.kind, errs.KindOf(err))
			assert.False(t, tt.in.CanRate())
		})
	}
}

func TestNewStars(t *testing.T) {
	for _, v := range []int{1, 3, 5} {
		s, err := rating.NewStars(v)
		require.NoError(t, err)
		assert.Equal(t, v, s.Value())
	}
	for _, v := range []int{-1, 0, 6} {
		_, err := rating.NewStars(v)
		assert.ErrorIs(t, err, rating.ErrInvalidStars)
		assert.Equal(t, errs.KindInvalidArgument, errs.KindOf(err))
	}
}

func TestNewRating(t *testing.T) {
	stars, _ := rating.NewStars(4)
	now := time.Date(2030, 3, 1, 12, 0, 0, 0, time.UTC)

	r, err := rating.NewRating(uuid.New(), uuid.New(), stars, now)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, r.ID())
	assert.Equal(t, 4, r.Stars().Value())
	assert.Equal(t, now, r.CreatedAt())

	_, err = rating.NewRating(uuid.Nil, uuid.New(), stars, now)
	assert.ErrorIs(t, err, rating.ErrMissingReference)
}

func TestSummarize(t *testing.T) {
	assert.Equal(t, rating.Summary{}, rating.Summarize(nil))

	var in []rating.Stars
	for _, v := range []int{5, 4, 4} {
		s, _ := rating.NewStars(v)
		in = append(in, s)
	}
	got := rating.Summarize(in)
	assert.Equal(t, 3, got.Count)
	assert.InDelta(t, 4.333, got.Average, 0.001)
}
