package service

import (
	"context"

	"skillswap/internal/models"
	"skillswap/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

// UserService provides account registration, authentication, and profile
// update business logic.
type UserService struct {
	userRepo repository.UserRepository
}

// UpdateProfileInput carries optional profile changes; nil fields are left
// untouched.
type UpdateProfileInput struct {
	Username *string
	Email    *string
	Bio      *string
}

// NewUserService returns a new UserService.
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// Register creates a new account. Username and email must both be unused;
// the password is stored only as a bcrypt hash.
func (s *UserService) Register(ctx context.Context, username, email, password string) (*models.User, error) {
	existing, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, models.NewConflictError("Username already exists")
	}

	existing, err = s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, models.NewConflictError("Email already registered")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	user := &models.User{
		Username: username,
		Email:    email,
		Password: string(hashed),
		Avatar:   models.DefaultAvatar,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// Authenticate verifies the credentials and returns the account. Unknown
// email and wrong password produce the same error so accounts cannot be
// enumerated.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, models.NewUnauthorizedError("Invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, models.NewUnauthorizedError("Invalid credentials")
	}

	return user, nil
}

// UpdateProfile applies the requested changes, re-checking uniqueness for a
// changed username or email.
func (s *UserService) UpdateProfile(ctx context.Context, userID uint, in UpdateProfileInput) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if in.Username != nil && *in.Username != user.Username {
		existing, err := s.userRepo.GetByUsername(ctx, *in.Username)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, models.NewConflictError("Username already exists")
		}
		user.Username = *in.Username
	}

	if in.Email != nil && *in.Email != user.Email {
		existing, err := s.userRepo.GetByEmail(ctx, *in.Email)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, models.NewConflictError("Email already registered")
		}
		user.Email = *in.Email
	}

	if in.Bio != nil {
		user.Bio = *in.Bio
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// GetUser returns the account by id.
func (s *UserService) GetUser(ctx context.Context, userID uint) (*models.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

// ListUsers returns a page of accounts.
func (s *UserService) ListUsers(ctx context.Context, limit, offset int) ([]models.User, error) {
	return s.userRepo.List(ctx, limit, offset)
}
