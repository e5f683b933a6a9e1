package user

import (
	"regexp"
	"strings"

	"dh-booking/internal/pkg/errs"
)

var (
	ErrInvalidEmail = errs.NewKind("invalid email format", errs.ErrInvalidArgument)
	ErrInvalidRole  = errs.NewKind("invalid role", errs.ErrInvalidArgument)
	ErrEmptyName    = errs.NewKind("user name cannot be empty", errs.ErrInvalidArgument)
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	s = strings.TrimSpace(s)
	if !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) Value() string {
	return e.value
}
