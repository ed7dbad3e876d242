// Package service implements the business workflows behind the HTTP
// handlers: registration and property creation. Handlers translate
// service sentinel errors into HTTP status codes; the services
// themselves know nothing about HTTP.
package service

import (
	"context"
	"errors"
	"strings"

	"github.com/DiveshR/property-booking-api/internal/auth"
	"github.com/DiveshR/property-booking-api/internal/config"
	"github.com/DiveshR/property-booking-api/internal/utils"
)

// ErrValidation is returned for malformed registration fields. The
// wrapped message describes the failing field.
var ErrValidation = errors.New("validation failed")

// ErrRoleNotAssignable is returned when registration requests a role
// that may not be self-assigned, notably Administrator.
var ErrRoleNotAssignable = errors.New("role is not assignable")

// UserStore is the persistence surface the registration workflow needs.
// *repository.UserRepo satisfies it.
type UserStore interface {
	Create(ctx context.Context, name, email, password string, roleID uint8, cost int) (uint64, error)
}

// RegisterInput carries the registration request fields.
type RegisterInput struct {
	Name                 string
	Email                string
	Password             string
	PasswordConfirmation string
	RoleID               uint8
}

// RegistrationService validates role eligibility at signup, creates the
// user and issues the bearer credential.
type RegistrationService struct {
	Users UserStore
	Cfg   config.Config
}

func NewRegistrationService(users UserStore, cfg config.Config) *RegistrationService {
	return &RegistrationService{Users: users, Cfg: cfg}
}

// Register creates a user with the requested role and returns the
// plaintext access token, which is not retrievable again. All
// validation happens before any persistence; a rejected request
// mutates nothing.
func (s *RegistrationService) Register(ctx context.Context, in RegisterInput) (string, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))

	if in.Name == "" {
		return "", errors.Join(ErrValidation, errors.New("name is required"))
	}
	if in.Email == "" || !strings.Contains(in.Email, "@") {
		return "", errors.Join(ErrValidation, errors.New("a valid email is required"))
	}
	if len(in.Password) < 8 {
		return "", errors.Join(ErrValidation, errors.New("password must be at least 8 characters"))
	}
	if in.Password != in.PasswordConfirmation {
		return "", errors.Join(ErrValidation, errors.New("password confirmation does not match"))
	}
	if !auth.Assignable(in.RoleID) {
		return "", ErrRoleNotAssignable
	}

	uid, err := s.Users.Create(ctx, in.Name, in.Email, in.Password, in.RoleID, s.Cfg.BcryptCost)
	if err != nil {
		return "", err
	}

	access, err := utils.NewAccessToken(s.Cfg.JWTSecret, uid, in.RoleID, s.Cfg.AccessTTLMin)
	if err != nil {
		return "", err
	}
	return access.Token, nil
}
