package user

import (
	"strings"

	"github.com/google/uuid"
)

// User is owned by the identity store; bookings only read it.
type User struct {
	id    uuid.UUID
	name  string
	email Email
	role  Role
}

func NewUser(id uuid.UUID, name string, email Email, role Role) (*User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if id == uuid.Nil {
		id = uuid.New()
	}
	return &User{
		id:    id,
		name:  name,
		email: email,
		role:  role,
	}, nil
}

func (u *User) ID() uuid.UUID { return u.id }
func (u *User) Name() string  { return u.name }
func (u *User) Email() Email  { return u.email }
func (u *User) Role() Role    { return u.role }
