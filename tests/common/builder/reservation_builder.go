//go:build unit || e2e

package builder

import (
	"time"

	"dh-booking/internal/domain/product"
	"dh-booking/internal/domain/reservation"
	reqdto "dh-booking/internal/handler/dto/request"
	"dh-booking/internal/infra/pgsql"
	"dh-booking/internal/pkg/pgconv"
	"dh-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

// Day builds a calendar day at midnight UTC.
func Day(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// MustPeriod panics on an invalid range; test input only.
func MustPeriod(start, end time.Time) reservation.Period {
	p, err := reservation.NewPeriod(start, end)
	if err != nil {
		panic(err)
	}
	return p
}

type ReservationBuilder struct {
	ID        uuid.UUID
	ProductID uuid.UUID
	UserID    uuid.UUID
	Start     time.Time
	End       time.Time
	Status    reservation.Status
	CreatedAt time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	now := time.Date(2030, time.January, 1, 9, 0, 0, 0, time.UTC)
	return &ReservationBuilder{
		ID:        uuid.New(),
		ProductID: uuid.New(),
		UserID:    uuid.New(),
		Start:     Day(2030, time.March, 10),
		End:       Day(2030, time.March, 15),
		Status:    reservation.StatusPending,
		CreatedAt: now,
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

func (b *ReservationBuilder) WithProduct(id uuid.UUID) *ReservationBuilder {
	b.ProductID = id
	return b
}

func (b *ReservationBuilder) WithUser(id uuid.UUID) *ReservationBuilder {
	b.UserID = id
	return b
}

func (b *ReservationBuilder) WithDates(start, end time.Time) *ReservationBuilder {
	b.Start, b.End = start, end
	return b
}

func (b *ReservationBuilder) WithStatus(s reservation.Status) *ReservationBuilder {
	b.Status = s
	return b
}

// Build methods
func (b *ReservationBuilder) BuildDomain() *reservation.Reservation {
	return reservation.ReconstructReservation(
		b.ID, b.ProductID, b.UserID,
		MustPeriod(b.Start, b.End),
		b.Status,
		b.CreatedAt, b.CreatedAt,
	)
}

func (b *ReservationBuilder) BuildInfra() pgsql.Reservations {
	return pgsql.Reservations{
		ID:        pgconv.UUIDToPgtype(b.ID),
		ProductID: pgconv.UUIDToPgtype(b.ProductID),
		UserID:    pgconv.UUIDToPgtype(b.UserID),
		StartDate: pgconv.DateToPgtype(b.Start),
		EndDate:   pgconv.DateToPgtype(b.End),
		Status:    string(b.Status),
		CreatedAt: pgconv.TimeToPgtype(b.CreatedAt),
		UpdatedAt: pgconv.TimeToPgtype(b.CreatedAt),
	}
}

func (b *ReservationBuilder) BuildView() *queries.ReservationView {
	return &queries.ReservationView{
		ID:          b.ID,
		ProductID:   b.ProductID,
		ProductName: "Lake Cabin",
		UserID:      b.UserID,
		UserName:    "Test Guest",
		UserEmail:   "guest@example.com",
		StartDate:   b.Start,
		EndDate:     b.End,
		Status:      b.Status,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.CreatedAt,
	}
}

func (b *ReservationBuilder) BuildCreateRequestDTO() reqdto.CreateReservationRequest {
	return reqdto.CreateReservationRequest{
		ProductID: b.ProductID,
		UserID:    b.UserID,
		StartDate: b.Start.Format(reservation.DateLayout),
		EndDate:   b.End.Format(reservation.DateLayout),
	}
}

func NewProduct(name string) *product.Product {
	p, err := product.NewProduct(uuid.New(), name, "")
	if err != nil {
		panic(err)
	}
	return p
}
