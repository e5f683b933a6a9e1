package product

import (
	"strings"

	"dh-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrEmptyProductName   = errs.NewKind("product name cannot be empty", errs.ErrInvalidArgument)
	ErrProductNameTooLong = errs.NewKind("product name is too long (max 255 characters)", errs.ErrInvalidArgument)
)

const (
	MaxProductNameLength = 255
)

// Product is owned by the catalog; bookings only read it.
type Product struct {
	id          uuid.UUID
	name        string
	description string
}

func NewProduct(id uuid.UUID, name, description string) (*Product, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyProductName
	}
	if len(name) > MaxProductNameLength {
		return nil, ErrProductNameTooLong
	}
	if id == uuid.Nil {
		id = uuid.New()
	}

	return &Product{
		id:          id,
		name:        name,
		description: strings.TrimSpace(description),
	}, nil
}

func (p *Product) ID() uuid.UUID       { return p.id }
func (p *Product) Name() string        { return p.name }
func (p *Product) Description() string { return p.description }
