package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/ghuser/gamestore/pkg/auth"
	userdomain "github.com/ghuser/gamestore/services/user/domain"
	"github.com/ghuser/gamestore/services/user/domain/models"
)

type fakeUserRepo struct {
	byID    map[uuid.UUID]*models.User
	byEmail map[string]*models.User
	roles   map[uuid.UUID]string
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byID:    make(map[uuid.UUID]*models.User),
		byEmail: make(map[string]*models.User),
		roles:   make(map[uuid.UUID]string),
	}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *models.User) error {
	if _, exists := f.byEmail[user.Email]; exists {
		return userdomain.ErrEmailAlreadyRegistered
	}
	f.byID[user.ID] = user
	f.byEmail[user.Email] = user
	return nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	u, ok := f.byID[id]
	if !ok {
		return nil, userdomain.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return nil, userdomain.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) SaveLibraryDelta(ctx context.Context, user *models.User) error { return nil }

func (f *fakeUserRepo) UpdateProfile(ctx context.Context, user *models.User) error {
	if _, ok := f.byID[user.ID]; !ok {
		return userdomain.ErrUserNotFound
	}
	return nil
}

func (f *fakeUserRepo) UpdateRole(ctx context.Context, userID uuid.UUID, role string) error {
	if _, ok := f.byID[userID]; !ok {
		return userdomain.ErrUserNotFound
	}
	f.roles[userID] = role
	return nil
}

func (f *fakeUserRepo) Delete(ctx context.Context, userID uuid.UUID) error {
	u, ok := f.byID[userID]
	if !ok {
		return userdomain.ErrUserNotFound
	}
	delete(f.byEmail, u.Email)
	delete(f.byID, userID)
	return nil
}

func newAccountService(repo *fakeUserRepo) *AccountService {
	hasher := &auth.BcryptHasher{Cost: bcrypt.MinCost}
	tokens := auth.NewTokenIssuer("test-secret-key-that-is-long-enough", time.Hour)
	return NewAccountService(repo, hasher, tokens)
}

func TestAccountService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("hashes the password and stores the account", func(t *testing.T) {
		repo := newFakeUserRepo()
		svc := newAccountService(repo)

		user, err := svc.Register(ctx, "Ana", "ana@example.com", "sup3r-secret")
		if err != nil {
			t.Fatalf("Register: %v", err)
		}
		if user.Role != models.DefaultRole {
			t.Errorf("expected default role, got %q", user.Role)
		}
		if user.PasswordHash == "" || user.PasswordHash == "sup3r-secret" {
			t.Error("expected a hashed password")
		}
	})

	t.Run("duplicate email conflicts", func(t *testing.T) {
		repo := newFakeUserRepo()
		svc := newAccountService(repo)

		if _, err := svc.Register(ctx, "Ana", "ana@example.com", "sup3r-secret"); err != nil {
			t.Fatalf("Register: %v", err)
		}
		_, err := svc.Register(ctx, "Other Ana", "ana@example.com", "different")
		if !errors.Is(err, userdomain.ErrEmailAlreadyRegistered) {
			t.Fatalf("expected ErrEmailAlreadyRegistered, got %v", err)
		}
	})

	t.Run("invalid email rejected", func(t *testing.T) {
		svc := newAccountService(newFakeUserRepo())
		_, err := svc.Register(ctx, "Ana", "not-an-email", "sup3r-secret")
		if !errors.Is(err, userdomain.ErrInvalidUser) {
			t.Fatalf("expected ErrInvalidUser, got %v", err)
		}
	})

	t.Run("RegisterAdmin grants the Admin role", func(t *testing.T) {
		svc := newAccountService(newFakeUserRepo())
		user, err := svc.RegisterAdmin(ctx, "Root", "root@example.com", "sup3r-secret")
		if err != nil {
			t.Fatalf("RegisterAdmin: %v", err)
		}
		if user.Role != auth.RoleAdmin {
			t.Errorf("expected Admin role, got %q", user.Role)
		}
	})
}

func TestAccountService_Login(t *testing.T) {
	ctx := context.Background()
	repo := newFakeUserRepo()
	svc := newAccountService(repo)

	if _, err := svc.Register(ctx, "Ana", "ana@example.com", "sup3r-secret"); err != nil {
		t.Fatalf("Register: %v", err)
	}

	t.Run("valid credentials issue a token", func(t *testing.T) {
		token, user, err := svc.Login(ctx, "ana@example.com", "sup3r-secret")
		if err != nil {
			t.Fatalf("Login: %v", err)
		}
		if token == "" {
			t.Error("expected a non-empty token")
		}
		if user.Email != "ana@example.com" {
			t.Errorf("unexpected user %q", user.Email)
		}
	})

	t.Run("wrong password rejected", func(t *testing.T) {
		_, _, err := svc.Login(ctx, "ana@example.com", "wrong")
		if !errors.Is(err, userdomain.ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("unknown email indistinguishable from wrong password", func(t *testing.T) {
		_, _, err := svc.Login(ctx, "nobody@example.com", "sup3r-secret")
		if !errors.Is(err, userdomain.ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})
}

func TestAccountService_ChangeRole(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (*AccountService, *fakeUserRepo, *models.User, *models.User) {
		t.Helper()
		repo := newFakeUserRepo()
		svc := newAccountService(repo)
		admin, err := svc.RegisterAdmin(ctx, "Root", "root@example.com", "sup3r-secret")
		if err != nil {
			t.Fatalf("RegisterAdmin: %v", err)
		}
		target, err := svc.Register(ctx, "Ana", "ana@example.com", "sup3r-secret")
		if err != nil {
			t.Fatalf("Register: %v", err)
		}
		return svc, repo, admin, target
	}

	t.Run("admin promotes a user", func(t *testing.T) {
		svc, repo, admin, target := setup(t)
		updated, err := svc.ChangeRole(ctx, admin.ID, target.ID, auth.RoleAdmin)
		if err != nil {
			t.Fatalf("ChangeRole: %v", err)
		}
		if updated.Role != auth.RoleAdmin {
			t.Errorf("expected Admin role, got %q", updated.Role)
		}
		if repo.roles[target.ID] != auth.RoleAdmin {
			t.Error("expected the role change to be persisted")
		}
	})

	t.Run("non-admin performer forbidden", func(t *testing.T) {
		svc, _, _, target := setup(t)
		other, err := svc.Register(ctx, "Eve", "eve@example.com", "sup3r-secret")
		if err != nil {
			t.Fatalf("Register: %v", err)
		}
		_, err = svc.ChangeRole(ctx, other.ID, target.ID, auth.RoleAdmin)
		if !errors.Is(err, userdomain.ErrNotAuthorized) {
			t.Fatalf("expected ErrNotAuthorized, got %v", err)
		}
	})

	t.Run("unknown performer forbidden", func(t *testing.T) {
		svc, _, _, target := setup(t)
		_, err := svc.ChangeRole(ctx, uuid.New(), target.ID, auth.RoleAdmin)
		if !errors.Is(err, userdomain.ErrNotAuthorized) {
			t.Fatalf("expected ErrNotAuthorized, got %v", err)
		}
	})

	t.Run("unknown target not found", func(t *testing.T) {
		svc, _, admin, _ := setup(t)
		_, err := svc.ChangeRole(ctx, admin.ID, uuid.New(), auth.RoleAdmin)
		if !errors.Is(err, userdomain.ErrUserNotFound) {
			t.Fatalf("expected ErrUserNotFound, got %v", err)
		}
	})

	t.Run("empty role rejected", func(t *testing.T) {
		svc, _, admin, target := setup(t)
		_, err := svc.ChangeRole(ctx, admin.ID, target.ID, "")
		if !errors.Is(err, userdomain.ErrInvalidUser) {
			t.Fatalf("expected ErrInvalidUser, got %v", err)
		}
	})
}

func TestAccountService_UpdateProfile(t *testing.T) {
	ctx := context.Background()
	repo := newFakeUserRepo()
	svc := newAccountService(repo)

	user, err := svc.Register(ctx, "Ana", "ana@example.com", "sup3r-secret")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	updated, err := svc.UpdateProfile(ctx, user.ID, "Ana Maria", "ana.maria@example.com")
	if err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
	if updated.Name != "Ana Maria" || updated.Email != "ana.maria@example.com" {
		t.Errorf("unexpected profile: %q %q", updated.Name, updated.Email)
	}

	if _, err := svc.UpdateProfile(ctx, user.ID, "", "ana@example.com"); !errors.Is(err, userdomain.ErrInvalidUser) {
		t.Fatalf("expected ErrInvalidUser, got %v", err)
	}
}
