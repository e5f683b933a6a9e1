//go:build e2e

package e2e

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ResetDB empties every table; products and users are reseeded per test.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_, err := pool.Exec(ctx, `TRUNCATE notification_jobs, ratings, reservations, users, products RESTART IDENTITY CASCADE`)
	return err
}

func SeedProduct(pool *pgxpool.Pool, name string) (uuid.UUID, error) {
	id := uuid.New()
	_, err := pool.Exec(context.Background(),
		`INSERT INTO products (id, name, description) VALUES ($1, $2, '')`, id, name)
	return id, err
}

func SeedUser(pool *pgxpool.Pool, name, email string) (uuid.UUID, error) {
	id := uuid.New()
	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, name, email, role) VALUES ($1, $2, $3, 'USER')`, id, name, email)
	return id, err
}

// SeedReservation writes a row directly, bypassing admission.
func SeedReservation(pool *pgxpool.Pool, productID, userID uuid.UUID, start, end time.Time, status string) (uuid.UUID, error) {
	id := uuid.New()
	_, err := pool.Exec(context.Background(),
		`INSERT INTO reservations (id, product_id, user_id, start_date, end_date, status)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		id, productID, userID, start, end, status)
	return id, err
}
