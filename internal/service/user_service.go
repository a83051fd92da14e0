package service

import (
	"context"
	"strings"
	"time"

	"github.com/rustnew/E-commerce-projet/internal/domain"
	"github.com/rustnew/E-commerce-projet/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var validate = validator.New()

// UserService defines the interface for user business logic
type UserService interface {
	Create(ctx context.Context, email, firstName, lastName string, role domain.Role) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
}

type userService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new instance of UserService
func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

// Create validates the input and persists a new user. A duplicate email is
// reported as Conflict: pre-checked here, and caught again by the unique
// constraint if two creations race.
func (s *userService) Create(ctx context.Context, email, firstName, lastName string, role domain.Role) (*domain.User, error) {
	if err := validate.Var(email, "required,email"); err != nil {
		return nil, domain.NewValidation("email", "email must be a valid address")
	}
	if strings.TrimSpace(firstName) == "" {
		return nil, domain.NewValidation("first_name", "first_name must not be empty")
	}
	if strings.TrimSpace(lastName) == "" {
		return nil, domain.NewValidation("last_name", "last_name must not be empty")
	}
	if !role.Valid() {
		return nil, domain.NewValidation("role", "role must be one of: customer, admin")
	}

	existing, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil && !domain.IsNotFound(err) {
		return nil, err
	}
	if existing != nil {
		return nil, domain.NewConflict("user with this email already exists")
	}

	user := &domain.User{
		ID:        uuid.New(),
		Email:     email,
		FirstName: firstName,
		LastName:  lastName,
		Role:      role,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// List retrieves all users
func (s *userService) List(ctx context.Context) ([]*domain.User, error) {
	return s.userRepo.List(ctx)
}
