package readstore

import (
	"context"

	"dh-booking/internal/infra"
	"dh-booking/internal/infra/pgsql"
	"dh-booking/internal/pkg/pgconv"
	"dh-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ProductReadQueries interface {
	GetProductByID(ctx context.Context, db pgsql.DBTX, id pgtype.UUID) (pgsql.Products, error)
	ProductExists(ctx context.Context, db pgsql.DBTX, id pgtype.UUID) (bool, error)
}

type UserReadQueries interface {
	GetUserByID(ctx context.Context, db pgsql.DBTX, id pgtype.UUID) (pgsql.Users, error)
	UserExists(ctx context.Context, db pgsql.DBTX, id pgtype.UUID) (bool, error)
}

// ProductReadStore is the product directory backed by the products table.
type ProductReadStore struct {
	queries ProductReadQueries
	db      pgsql.DBTX
}

func NewProductReadStore(queries ProductReadQueries, db pgsql.DBTX) *ProductReadStore {
	return &ProductReadStore{queries: queries, db: db}
}

func (r *ProductReadStore) Exists(ctx context.Context, productID uuid.UUID) (bool, error) {
	exists, err := r.queries.ProductExists(ctx, r.db, pgconv.UUIDToPgtype(productID))
	if err != nil {
		return false, infra.WrapRepoErr("failed to check product existence", err)
	}
	return exists, nil
}

func (r *ProductReadStore) GetName(ctx context.Context, productID uuid.UUID) (string, error) {
	row, err := r.queries.GetProductByID(ctx, r.db, pgconv.UUIDToPgtype(productID))
	if err != nil {
		return "", infra.WrapRepoErr("failed to get product", err)
	}
	return row.Name, nil
}

// UserReadStore is the user directory backed by the users table.
type UserReadStore struct {
	queries UserReadQueries
	db      pgsql.DBTX
}

func NewUserReadStore(queries UserReadQueries, db pgsql.DBTX) *UserReadStore {
	return &UserReadStore{queries: queries, db: db}
}

func (r *UserReadStore) Exists(ctx context.Context, userID uuid.UUID) (bool, error) {
	exists, err := r.queries.UserExists(ctx, r.db, pgconv.UUIDToPgtype(userID))
	if err != nil {
		return false, infra.WrapRepoErr("failed to check user existence", err)
	}
	return exists, nil
}

func (r *UserReadStore) GetProfile(ctx context.Context, userID uuid.UUID) (*shared.UserProfile, error) {
	row, err := r.queries.GetUserByID(ctx, r.db, pgconv.UUIDToPgtype(userID))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get user", err)
	}
	return &shared.UserProfile{
		ID:    pgconv.UUIDFromPgtype(row.ID),
		Name:  row.Name,
		Email: row.Email,
	}, nil
}
