package pgsql

import (
	"github.com/jackc/pgx/v5/pgtype"
)

type Reservations struct {
	ID        pgtype.UUID
	ProductID pgtype.UUID
	UserID    pgtype.UUID
	StartDate pgtype.Date
	EndDate   pgtype.Date
	Status    string
	CreatedAt pgtype.Timestamptz
	UpdatedAt pgtype.Timestamptz
}

// ReservationDetailRow is a reservation joined with product and user names.
type ReservationDetailRow struct {
	ID          pgtype.UUID
	ProductID   pgtype.UUID
	ProductName string
	UserID      pgtype.UUID
	UserName    string
	UserEmail   string
	StartDate   pgtype.Date
	EndDate     pgtype.Date
	Status      string
	CreatedAt   pgtype.Timestamptz
	UpdatedAt   pgtype.Timestamptz
}

type Ratings struct {
	ID        pgtype.UUID
	ProductID pgtype.UUID
	UserID    pgtype.UUID
	Stars     int16
	CreatedAt pgtype.Timestamptz
}

type RatingDetailRow struct {
	ID        pgtype.UUID
	ProductID pgtype.UUID
	UserID    pgtype.UUID
	UserName  string
	Stars     int16
	CreatedAt pgtype.Timestamptz
}

type Products struct {
	ID          pgtype.UUID
	Name        string
	Description string
}

type Users struct {
	ID    pgtype.UUID
	Name  string
	Email string
	Role  string
}

type PeriodRow struct {
	StartDate pgtype.Date
	EndDate   pgtype.Date
}
