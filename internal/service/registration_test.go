package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/DiveshR/property-booking-api/internal/auth"
	"github.com/DiveshR/property-booking-api/internal/config"
	"github.com/DiveshR/property-booking-api/internal/repository"
)

// mockUserStore simulates auto-increment ids and the unique email index.
type mockUserStore struct {
	emails map[string]bool
	nextID uint64
	calls  int
}

func newMockUserStore() *mockUserStore {
	return &mockUserStore{emails: map[string]bool{}}
}

func (m *mockUserStore) Create(_ context.Context, name, email, password string, roleID uint8, cost int) (uint64, error) {
	m.calls++
	if m.emails[email] {
		return 0, repository.ErrEmailExists
	}
	m.emails[email] = true
	m.nextID++
	return m.nextID, nil
}

func testCfg() config.Config {
	return config.Config{JWTSecret: "test-secret", AccessTTLMin: 15, BcryptCost: 4}
}

func validInput(roleID uint8) RegisterInput {
	return RegisterInput{
		Name:                 "test",
		Email:                "test@gmail.com",
		Password:             "testPassword",
		PasswordConfirmation: "testPassword",
		RoleID:               roleID,
	}
}

func TestRegisterRejectsAdministratorRole(t *testing.T) {
	store := newMockUserStore()
	svc := NewRegistrationService(store, testCfg())

	_, err := svc.Register(context.Background(), validInput(auth.RoleAdministrator))
	if !errors.Is(err, ErrRoleNotAssignable) {
		t.Fatalf("err = %v, want ErrRoleNotAssignable", err)
	}
	if store.calls != 0 {
		t.Fatal("no user may be created when the role is forbidden")
	}
}

func TestRegisterSucceedsForOwnerAndUser(t *testing.T) {
	for _, roleID := range []uint8{auth.RoleOwner, auth.RoleUser} {
		t.Run(auth.RoleName(roleID), func(t *testing.T) {
			store := newMockUserStore()
			svc := NewRegistrationService(store, testCfg())

			in := validInput(roleID)
			in.Email = strings.ToLower(auth.RoleName(roleID)) + "@gmail.com"
			token, err := svc.Register(context.Background(), in)
			if err != nil {
				t.Fatalf("Register: %v", err)
			}
			if token == "" {
				t.Fatal("expected a non-empty access token")
			}
		})
	}
}

func TestRegisterValidation(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*RegisterInput)
	}{
		{"missing name", func(in *RegisterInput) { in.Name = " " }},
		{"missing email", func(in *RegisterInput) { in.Email = "" }},
		{"malformed email", func(in *RegisterInput) { in.Email = "not-an-email" }},
		{"short password", func(in *RegisterInput) { in.Password = "short"; in.PasswordConfirmation = "short" }},
		{"confirmation mismatch", func(in *RegisterInput) { in.PasswordConfirmation = "different" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := newMockUserStore()
			svc := NewRegistrationService(store, testCfg())

			in := validInput(auth.RoleUser)
			tc.mutate(&in)
			if _, err := svc.Register(context.Background(), in); !errors.Is(err, ErrValidation) {
				t.Fatalf("err = %v, want ErrValidation", err)
			}
			if store.calls != 0 {
				t.Fatal("validation failures must reject before any persistence")
			}
		})
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	store := newMockUserStore()
	svc := NewRegistrationService(store, testCfg())

	if _, err := svc.Register(context.Background(), validInput(auth.RoleUser)); err != nil {
		t.Fatalf("first registration: %v", err)
	}
	if _, err := svc.Register(context.Background(), validInput(auth.RoleUser)); !errors.Is(err, repository.ErrEmailExists) {
		t.Fatalf("err = %v, want ErrEmailExists", err)
	}
}
