package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/trendythreads/storefront/internal/core/domain"
	"github.com/trendythreads/storefront/internal/core/ports"
)

type stubUserRepo struct {
	byEmail map[string]*domain.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{byEmail: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	copy := cloneUser(user)
	if copy.ID == "" {
		copy.ID = "id_" + user.Username
	}
	r.byEmail[copy.Email] = cloneUser(copy)
	return cloneUser(copy), nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	if u, ok := r.byEmail[email]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	for _, u := range r.byEmail {
		if u.Username == username {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func TestAuthService_Signup_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, zerolog.Nop())

	user, err := svc.Signup(context.Background(), ports.SignupInput{
		Username: "alice",
		Email:    "a@x.com",
		Password: "p1secret",
	})
	if err != nil {
		t.Fatalf("Signup returned error: %v", err)
	}
	if user == nil || user.ID == "" {
		t.Fatalf("expected created user, got %+v", user)
	}
	if user.PasswordHash == "p1secret" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("p1secret")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestAuthService_Signup_DuplicateEmail(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, zerolog.Nop())

	if _, err := svc.Signup(context.Background(), ports.SignupInput{Username: "alice", Email: "a@x.com", Password: "p1secret"}); err != nil {
		t.Fatalf("first signup failed: %v", err)
	}

	_, err := svc.Signup(context.Background(), ports.SignupInput{Username: "bob", Email: "a@x.com", Password: "other1"})
	if !errors.Is(err, domain.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
	if len(repo.byEmail) != 1 {
		t.Fatalf("duplicate signup must not create a second user, have %d", len(repo.byEmail))
	}
}

func TestAuthService_Signup_MissingFields(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), zerolog.Nop())

	if _, err := svc.Signup(context.Background(), ports.SignupInput{Username: "alice"}); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, zerolog.Nop())

	if _, err := svc.Signup(context.Background(), ports.SignupInput{Username: "alice", Email: "a@x.com", Password: "p1secret"}); err != nil {
		t.Fatalf("signup failed: %v", err)
	}

	user, err := svc.Login(context.Background(), ports.LoginInput{Username: "alice", Password: "p1secret"})
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if user.Username != "alice" {
		t.Fatalf("unexpected user: %+v", user)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, zerolog.Nop())

	_, _ = svc.Signup(context.Background(), ports.SignupInput{Username: "alice", Email: "a@x.com", Password: "goodpass"})

	if _, err := svc.Login(context.Background(), ports.LoginInput{Username: "alice", Password: "badpass"}); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), zerolog.Nop())

	// Unknown user collapses into the same error as a wrong password.
	if _, err := svc.Login(context.Background(), ports.LoginInput{Username: "ghost", Password: "pass"}); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}
