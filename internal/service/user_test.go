package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"contentshop/internal/repository"
)

func newUserService(t *testing.T) UserService {
	db := newTestDB(t)
	return NewUserService(repository.NewUserRepository(db), "test-secret", time.Hour)
}

func TestUserService(t *testing.T) {
	ctx := context.Background()

	t.Run("register and login", func(t *testing.T) {
		users := newUserService(t)

		session, err := users.Register(ctx, "Anna@Example.com", "wachtwoord123", "Anna")
		if err != nil {
			t.Fatalf("register: %v", err)
		}
		if session.Token == "" {
			t.Error("expected a session token")
		}
		if session.User.Email != "anna@example.com" {
			t.Errorf("email should be normalized, got %q", session.User.Email)
		}
		if session.User.Role != "customer" {
			t.Errorf("role = %q, want customer", session.User.Role)
		}

		again, err := users.Login(ctx, "anna@example.com", "wachtwoord123")
		if err != nil {
			t.Fatalf("login: %v", err)
		}
		if again.User.ID != session.User.ID {
			t.Error("login should resolve the same user")
		}
	})

	t.Run("duplicate email is rejected", func(t *testing.T) {
		users := newUserService(t)

		if _, err := users.Register(ctx, "anna@example.com", "wachtwoord123", "Anna"); err != nil {
			t.Fatal(err)
		}
		if _, err := users.Register(ctx, "anna@example.com", "anderwachtwoord", "Anna"); !errors.Is(err, ErrEmailTaken) {
			t.Fatalf("err = %v, want ErrEmailTaken", err)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		users := newUserService(t)

		if _, err := users.Register(ctx, "anna@example.com", "wachtwoord123", "Anna"); err != nil {
			t.Fatal(err)
		}
		if _, err := users.Login(ctx, "anna@example.com", "verkeerd"); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("err = %v, want ErrInvalidCredentials", err)
		}
	})

	t.Run("unknown email", func(t *testing.T) {
		users := newUserService(t)

		if _, err := users.Login(ctx, "nobody@example.com", "whatever"); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("err = %v, want ErrInvalidCredentials", err)
		}
	})

	t.Run("short password is rejected", func(t *testing.T) {
		users := newUserService(t)

		if _, err := users.Register(ctx, "anna@example.com", "kort", "Anna"); err == nil {
			t.Fatal("expected error for short password")
		}
	})
}
