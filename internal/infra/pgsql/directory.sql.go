package pgsql

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const getProductByID = `
SELECT id, name, description FROM products WHERE id = $1
`

func (q *Queries) GetProductByID(ctx context.Context, db DBTX, id pgtype.UUID) (Products, error) {
	var p Products
	err := db.QueryRow(ctx, getProductByID, id).Scan(&p.ID, &p.Name, &p.Description)
	return p, err
}

const productExists = `
SELECT EXISTS (SELECT 1 FROM products WHERE id = $1)
`

func (q *Queries) ProductExists(ctx context.Context, db DBTX, id pgtype.UUID) (bool, error) {
	var exists bool
	err := db.QueryRow(ctx, productExists, id).Scan(&exists)
	return exists, err
}

const getUserByID = `
SELECT id, name, email, role FROM users WHERE id = $1
`

func (q *Queries) GetUserByID(ctx context.Context, db DBTX, id pgtype.UUID) (Users, error) {
	var u Users
	err := db.QueryRow(ctx, getUserByID, id).Scan(&u.ID, &u.Name, &u.Email, &u.Role)
	return u, err
}

const userExists = `
SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)
`

func (q *Queries) UserExists(ctx context.Context, db DBTX, id pgtype.UUID) (bool, error) {
	var exists bool
	err := db.QueryRow(ctx, userExists, id).Scan(&exists)
	return exists, err
}
