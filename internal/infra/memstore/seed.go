package memstore

import (
	"encoding/json"
	"os"

	"dh-booking/internal/domain/product"
	"dh-booking/internal/domain/user"
	"dh-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

// Seed is the on-disk shape of STORE_SEED_FILE.
type Seed struct {
	Products []SeedProduct `json:"products"`
	Users    []SeedUser    `json:"users"`
}

type SeedProduct struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
}

type SeedUser struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Role  string    `json:"role"`
}

func (s *Store) LoadSeedFile(path string) error {
	raw, err := os.ReadFile(path) // #nosec G304 -- path comes from operator configuration
	if err != nil {
		return errs.Wrapf(err, "read seed file %s", path)
	}
	var seed Seed
	if err := json.Unmarshal(raw, &seed); err != nil {
		return errs.Wrapf(err, "decode seed file %s", path)
	}
	return s.Apply(seed)
}

// Apply validates every record before adding any of them.
func (s *Store) Apply(seed Seed) error {
	products := make([]*product.Product, 0, len(seed.Products))
	for _, sp := range seed.Products {
		p, err := product.NewProduct(sp.ID, sp.Name, sp.Description)
		if err != nil {
			return errs.Wrapf(err, "seed product %q", sp.Name)
		}
		products = append(products, p)
	}

	users := make([]*user.User, 0, len(seed.Users))
	for _, su := range seed.Users {
		email, err := user.NewEmail(su.Email)
		if err != nil {
			return errs.Wrapf(err, "seed user %q", su.Name)
		}
		role, err := user.NewRole(su.Role)
		if err != nil {
			return errs.Wrapf(err, "seed user %q", su.Name)
		}
		u, err := user.NewUser(su.ID, su.Name, email, role)
		if err != nil {
			return errs.Wrapf(err, "seed user %q", su.Name)
		}
		users = append(users, u)
	}

	for _, p := range products {
		s.AddProduct(p)
	}
	for _, u := range users {
		s.AddUser(u)
	}
	return nil
}
