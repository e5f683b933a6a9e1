package notification

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"dh-booking/internal/pkg/clock"
	"dh-booking/internal/pkg/errs"
	"dh-booking/internal/usecase/shared"
)

const (
	KindEmail                 = "email"
	TopicReservationConfirmed = "reservation.confirmation"
)

// ConfirmationPayload is the body of a queued confirmation email.
type ConfirmationPayload struct {
	Recipient   string                     `json:"recipient"`
	Reservation shared.ReservationSnapshot `json:"reservation"`
}

type JobWriter interface {
	CreateJob(ctx context.Context, kind, topic string, payload []byte, runAt time.Time) error
}

// OutboxNotifier queues the confirmation as a notification_jobs row; a
// separate sender owns delivery.
type OutboxNotifier struct {
	jobs  JobWriter
	clock clock.Clock
}

func NewOutboxNotifier(jobs JobWriter, clk clock.Clock) *OutboxNotifier {
	return &OutboxNotifier{jobs: jobs, clock: clk}
}

func (n *OutboxNotifier) SendReservationConfirmation(ctx context.Context, snapshot shared.ReservationSnapshot, recipientEmail string) error {
	payload, err := json.Marshal(ConfirmationPayload{
		Recipient:   recipientEmail,
		Reservation: snapshot,
	})
	if err != nil {
		return errs.Wrap(err, "encode confirmation payload")
	}
	if err := n.jobs.CreateJob(ctx, KindEmail, TopicReservationConfirmed, payload, n.clock.Now()); err != nil {
		return errs.AsKind(errs.Wrap(err, "queue confirmation"), errs.ErrTransient)
	}
	return nil
}

// LogNotifier only records the confirmation in the log.
type LogNotifier struct{}

func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

func (LogNotifier) SendReservationConfirmation(ctx context.Context, snapshot shared.ReservationSnapshot, recipientEmail string) error {
	slog.InfoContext(ctx, "reservation confirmation",
		"recipient", recipientEmail,
		"reservation_id", snapshot.ReservationID.String(),
		"product", snapshot.ProductName,
		"renter", snapshot.RenterName,
		"start_date", snapshot.StartDate.Format(time.DateOnly),
		"end_date", snapshot.EndDate.Format(time.DateOnly),
		"status", snapshot.Status.String())
	return nil
}
