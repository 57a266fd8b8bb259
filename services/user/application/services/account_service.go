package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/ghuser/gamestore/pkg/auth"
	userdomain "github.com/ghuser/gamestore/services/user/domain"
	"github.com/ghuser/gamestore/services/user/domain/models"
	"github.com/ghuser/gamestore/services/user/domain/repositories"
)

// AccountService orchestrates registration, login, and account lifecycle.
// The repository publishes UserRegisteredEvent (outbox pattern).
type AccountService struct {
	repo   repositories.UserRepository
	hasher auth.PasswordHasher
	tokens *auth.TokenIssuer
}

// NewAccountService wires an AccountService.
func NewAccountService(repo repositories.UserRepository, hasher auth.PasswordHasher, tokens *auth.TokenIssuer) *AccountService {
	return &AccountService{repo: repo, hasher: hasher, tokens: tokens}
}

// Register creates a regular account with a bcrypt-hashed password.
func (s *AccountService) Register(ctx context.Context, name, email, password string) (*models.User, error) {
	return s.register(ctx, name, email, password, models.DefaultRole)
}

// RegisterAdmin creates an account holding the Admin role. Route-level
// guards restrict who can call this.
func (s *AccountService) RegisterAdmin(ctx context.Context, name, email, password string) (*models.User, error) {
	return s.register(ctx, name, email, password, auth.RoleAdmin)
}

func (s *AccountService) register(ctx context.Context, name, email, password, role string) (*models.User, error) {
	user, err := models.NewUser(name, email, role)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", userdomain.ErrInvalidUser, err)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	if err := user.SetPasswordHash(hash); err != nil {
		return nil, fmt.Errorf("%w: %w", userdomain.ErrInvalidUser, err)
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

// Login verifies credentials and issues a signed token carrying the
// account's email and role. Unknown emails and wrong passwords are
// indistinguishable to the caller.
func (s *AccountService) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, userdomain.ErrUserNotFound) {
			return "", nil, userdomain.ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("get user: %w", err)
	}

	if !s.hasher.Verify(user.PasswordHash, password) {
		return "", nil, userdomain.ErrInvalidCredentials
	}

	token, err := s.tokens.IssueToken(user.Email, user.Role)
	if err != nil {
		return "", nil, fmt.Errorf("issue token: %w", err)
	}

	return token, user, nil
}

// GetByID loads an account with its full library.
func (s *AccountService) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}

// GetByEmail loads an account with its full library.
func (s *AccountService) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}

// ChangeRole assigns newRole to the target account. The performer must
// exist and hold the Admin role; a missing target is reported after the
// authorization check so unauthorized callers learn nothing.
func (s *AccountService) ChangeRole(ctx context.Context, performerID, targetID uuid.UUID, newRole string) (*models.User, error) {
	performer, err := s.repo.GetByID(ctx, performerID)
	if err != nil {
		if errors.Is(err, userdomain.ErrUserNotFound) {
			return nil, userdomain.ErrNotAuthorized
		}
		return nil, fmt.Errorf("get performer: %w", err)
	}
	if performer.Role != auth.RoleAdmin {
		return nil, userdomain.ErrNotAuthorized
	}

	target, err := s.repo.GetByID(ctx, targetID)
	if err != nil {
		return nil, fmt.Errorf("get target: %w", err)
	}

	if err := target.SetRole(newRole); err != nil {
		return nil, fmt.Errorf("%w: %w", userdomain.ErrInvalidUser, err)
	}

	if err := s.repo.UpdateRole(ctx, target.ID, target.Role); err != nil {
		return nil, fmt.Errorf("update role: %w", err)
	}

	return target, nil
}

// UpdateProfile replaces the account's name and email.
func (s *AccountService) UpdateProfile(ctx context.Context, userID uuid.UUID, name, email string) (*models.User, error) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	if err := user.UpdateProfile(name, email); err != nil {
		return nil, fmt.Errorf("%w: %w", userdomain.ErrInvalidUser, err)
	}

	if err := s.repo.UpdateProfile(ctx, user); err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}

	return user, nil
}

// Delete removes an account. Ownership records cascade in storage.
func (s *AccountService) Delete(ctx context.Context, userID uuid.UUID) error {
	if err := s.repo.Delete(ctx, userID); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}
