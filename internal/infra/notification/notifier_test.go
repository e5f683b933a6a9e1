//go:build unit

package notification_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"dh-booking/internal/domain/reservation"
	"dh-booking/internal/infra/notification"
	"dh-booking/internal/pkg/clock"
	"dh-booking/internal/pkg/errs"
	"dh-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedJob struct {
	kind, topic string
	payload     []byte
	runAt       time.Time
}

type fakeJobWriter struct {
	jobs []recordedJob
	err  error
}

func (f *fakeJobWriter) CreateJob(_ context.Context, kind, topic string, payload []byte, runAt time.Time) error {
	if f.err != nil {
		return f.err
	}
	f.jobs = append(f.jobs, recordedJob{kind: kind, topic: topic, payload: payload, runAt: runAt})
	return nil
}

func snapshot() shared.ReservationSnapshot {
	return shared.ReservationSnapshot{
		ReservationID: uuid.New(),
		ProductID:     uuid.New(),
		ProductName:   "Lake Cabin",
		UserID:        uuid.New(),
		RenterName:    "Ana Guest",
		RenterEmail:   "ana@example.com",
		StartDate:     time.Date(2030, time.March, 10, 0, 0, 0, 0, time.UTC),
		EndDate:       time.Date(2030, time.March, 15, 0, 0, 0, 0, time.UTC),
		Status:        reservation.StatusPending,
	}
}

func TestOutboxNotifier(t *testing.T) {
	now := time.Date(2030, time.March, 1, 10, 0, 0, 0, time.UTC)

	t.Run("queues one email job", func(t *testing.T) {
		jobs := &fakeJobWriter{}
		n := notification.NewOutboxNotifier(jobs, clock.NewMockClock(now))
		snap := snapshot()

		require.NoError(t, n.SendReservationConfirmation(context.Background(), snap, "ana@example.com"))
		require.Len(t, jobs.jobs, 1)

		job := jobs.jobs[0]
		assert.Equal(t, notification.KindEmail, job.kind)
		assert.Equal(t, notification.TopicReservationConfirmed, job.topic)
		assert.Equal(t, now, job.runAt)

		var payload notification.ConfirmationPayload
		require.NoError(t, json.Unmarshal(job.payload, &payload))
		assert.Equal(t, "ana@example.com", payload.Recipient)
		assert.Equal(t, snap.ReservationID, payload.Reservation.ReservationID)
		assert.Equal(t, "Lake Cabin", payload.Reservation.ProductName)
		assert.Equal(t, reservation.StatusPending, payload.Reservation.Status)
	})

	t.Run("writer failure is transient", func(t *testing.T) {
		jobs := &fakeJobWriter{err: errors.New("connection reset")}
		n := notification.NewOutboxNotifier(jobs, clock.NewMockClock(now))

		err := n.SendReservationConfirmation(context.Background(), snapshot(), "ana@example.com")
		require.Error(t, err)
		assert.Equal(t, errs.KindTransient, errs.KindOf(err))
		assert.Contains(t, err.Error(), "connection reset")
	})
}

func TestLogNotifier(t *testing.T) {
	assert.NoError(t, notification.NewLogNotifier().SendReservationConfirmation(context.Background(), snapshot(), "ana@example.com"))
}
