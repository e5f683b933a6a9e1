package commands

import (
	"context"
	"log/slog"
	"time"

	"dh-booking/internal/domain/reservation"
	"dh-booking/internal/infra"
	"dh-booking/internal/pkg/clock"
	"dh-booking/internal/pkg/errs"
	"dh-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=reservation.go -destination=../../../tests/mock/commands/reservation.go -package=commandsmock

var (
	ErrProductNotFound     = errs.NewKind("product not found", errs.ErrNotFound)
	ErrUserNotFound        = errs.NewKind("user not found", errs.ErrNotFound)
	ErrReservationNotFound = errs.NewKind("reservation not found", errs.ErrNotFound)
	ErrReservationConflict = errs.NewKind("product not available for the selected dates", errs.ErrConflict)
)

const defaultNotificationTimeout = 5 * time.Second

type Settings struct {
	// Location decides which calendar date counts as today.
	Location            *time.Location
	NotificationTimeout time.Duration
}

type CreateReservationInput struct {
	ProductID uuid.UUID
	UserID    uuid.UUID
	StartDate time.Time
	EndDate   time.Time
}

type CreateReservationResult struct {
	Reservation *shared.ReservationSnapshot
	// Warnings carries failures that happened after the reservation was
	// committed, such as an undelivered confirmation.
	Warnings []string
}

type ReservationCommands interface {
	CreateReservation(ctx context.Context, in CreateReservationInput) (*CreateReservationResult, error)
	ChangeStatus(ctx context.Context, id uuid.UUID, status string) (*reservation.Reservation, error)
}

type reservationUseCaseImpl struct {
	uow      shared.UnitOfWork
	products shared.ProductDirectory
	users    shared.UserDirectory
	notifier shared.Notifier
	cache    shared.AvailabilityCache
	clock    clock.Clock
	settings Settings
}

func NewReservationUseCase(
	uow shared.UnitOfWork,
	products shared.ProductDirectory,
	users shared.UserDirectory,
	notifier shared.Notifier,
	cache shared.AvailabilityCache,
	clk clock.Clock,
	settings Settings,
) ReservationCommands {
	if cache == nil {
		cache = shared.NewNopAvailabilityCache()
	}
	if settings.NotificationTimeout <= 0 {
		settings.NotificationTimeout = defaultNotificationTimeout
	}
	return &reservationUseCaseImpl{
		uow:      uow,
		products: products,
		users:    users,
		notifier: notifier,
		cache:    cache,
		clock:    clk,
		settings: settings,
	}
}

func (uc *reservationUseCaseImpl) CreateReservation(ctx context.Context, in CreateReservationInput) (*CreateReservationResult, error) {
	period, err := reservation.NewPeriod(in.StartDate, in.EndDate)
	if err != nil {
		return nil, err
	}
	if err := reservation.ValidateSchedule(period, clock.Today(uc.clock, uc.settings.Location)); err != nil {
		return nil, err
	}

	if err := uc.requireProduct(ctx, in.ProductID); err != nil {
		return nil, err
	}
	if err := uc.requireUser(ctx, in.UserID); err != nil {
		return nil, err
	}

	var created *reservation.Reservation
	err = uc.uow.WithinProduct(ctx, in.ProductID, func(ctx context.Context, tx shared.Tx) error {
		overlapping, derr := tx.Reservations().FindOverlapping(ctx, in.ProductID, period, reservation.ActiveStatuses())
		if derr != nil {
			return derr
		}
		if len(overlapping) > 0 {
			return ErrReservationConflict
		}

		now := uc.clock.Now()
		res, derr := reservation.NewReservation(in.ProductID, in.UserID, period, clock.Today(uc.clock, uc.settings.Location), now)
		if derr != nil {
			return derr
		}
		if derr = tx.Reservations().Create(ctx, res); derr != nil {
			return derr
		}
		created = res
		return nil
	})
	if err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return nil, ErrReservationConflict
		}
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return nil, missingReference(ctx, uc.products, in.ProductID)
		}
		return nil, shared.StoreError(err, ErrProductNotFound)
	}

	slog.Info("reservation created",
		"reservation_id", created.ID().String(),
		"product_id", created.ProductID().String(),
		"user_id", created.UserID().String(),
		"period", created.Period().String())

	snapshot, warnings := uc.confirm(ctx, created)
	return &CreateReservationResult{
		Reservation: snapshot,
		Warnings:    warnings,
	}, nil
}

// confirm builds the renter-facing snapshot and triggers the confirmation.
// It runs after commit, so nothing here may fail the admission.
func (uc *reservationUseCaseImpl) confirm(ctx context.Context, res *reservation.Reservation) (*shared.ReservationSnapshot, []string) {
	nctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), uc.settings.NotificationTimeout)
	defer cancel()

	snapshot := &shared.ReservationSnapshot{
		ReservationID: res.ID(),
		ProductID:     res.ProductID(),
		UserID:        res.UserID(),
		StartDate:     res.Period().Start(),
		EndDate:       res.Period().End(),
		Status:        res.Status(),
	}

	var warnings []string
	warn := func(msg string, err error) {
		slog.Warn(msg,
			"reservation_id", res.ID().String(),
			"error", err.Error())
		warnings = append(warnings, msg+": "+err.Error())
	}

	name, err := uc.products.GetName(nctx, res.ProductID())
	if err != nil {
		warn("product name unavailable", err)
	}
	snapshot.ProductName = name

	profile, err := uc.users.GetProfile(nctx, res.UserID())
	if err != nil {
		warn("confirmation not sent", err)
		return snapshot, warnings
	}
	snapshot.RenterName = profile.Name
	snapshot.RenterEmail = profile.Email

	if err := uc.notifier.SendReservationConfirmation(nctx, *snapshot, profile.Email); err != nil {
		warn("confirmation not sent", err)
	}
	return snapshot, warnings
}

func (uc *reservationUseCaseImpl) ChangeStatus(ctx context.Context, id uuid.UUID, status string) (*reservation.Reservation, error) {
	next, err := reservation.ParseStatus(status)
	if err != nil {
		return nil, err
	}

	current, err := uc.uow.CommandReads().ReservationByID(ctx, id)
	if err != nil {
		return nil, shared.StoreError(err, ErrReservationNotFound)
	}

	var updated *reservation.Reservation
	err = uc.uow.WithinProduct(ctx, current.ProductID(), func(ctx context.Context, tx shared.Tx) error {
		res, derr := tx.Reads().ReservationByID(ctx, id)
		if derr != nil {
			return derr
		}
		if derr = res.TransitionTo(next, uc.clock.Now()); derr != nil {
			return derr
		}
		if derr = tx.Reservations().UpdateStatus(ctx, res); derr != nil {
			return derr
		}
		updated = res
		return nil
	})
	if err != nil {
		return nil, shared.StoreError(err, ErrReservationNotFound)
	}

	uc.cache.Invalidate(context.WithoutCancel(ctx), updated.ProductID())
	slog.Info("reservation status changed",
		"reservation_id", id.String(),
		"status", updated.Status().String())
	return updated, nil
}

func (uc *reservationUseCaseImpl) requireProduct(ctx context.Context, productID uuid.UUID) error {
	exists, err := uc.products.Exists(ctx, productID)
	if err != nil {
		return shared.StoreError(err, ErrProductNotFound)
	}
	if !exists {
		return ErrProductNotFound
	}
	return nil
}

func (uc *reservationUseCaseImpl) requireUser(ctx context.Context, userID uuid.UUID) error {
	exists, err := uc.users.Exists(ctx, userID)
	if err != nil {
		return shared.StoreError(err, ErrUserNotFound)
	}
	if !exists {
		return ErrUserNotFound
	}
	return nil
}

// missingReference resolves a foreign key violation on insert. The product
// or the user was removed after the existence checks passed; whichever is
// still there is not the culprit.
func missingReference(ctx context.Context, products shared.ProductDirectory, productID uuid.UUID) error {
	exists, err := products.Exists(ctx, productID)
	if err != nil {
		return shared.StoreError(err, ErrProductNotFound)
	}
	if !exists {
		return ErrProductNotFound
	}
	return ErrUserNotFound
}
