package service

import (
	"context"
	"strings"
	"time"

	"github.com/rustnew/E-commerce-projet/internal/domain"
	"github.com/rustnew/E-commerce-projet/internal/repository"

	"github.com/google/uuid"
)

// CategoryUpdate carries the optional fields of a partial category update.
// A nil field means "not supplied" and leaves the stored value untouched,
// which is distinct from a supplied empty string.
type CategoryUpdate struct {
	Name        *string
	Description *string
}

// CategoryService defines the interface for category business logic
type CategoryService interface {
	Create(ctx context.Context, name, description string) (*domain.Category, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Category, error)
	List(ctx context.Context) ([]*domain.Category, error)
	Update(ctx context.Context, id uuid.UUID, upd CategoryUpdate) (*domain.Category, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type categoryService struct {
	categoryRepo repository.CategoryRepository
}

// NewCategoryService creates a new instance of CategoryService
func NewCategoryService(categoryRepo repository.CategoryRepository) CategoryService {
	return &categoryService{categoryRepo: categoryRepo}
}

// Create validates the input and persists a new category
func (s *categoryService) Create(ctx context.Context, name, description string) (*domain.Category, error) {
	if strings.TrimSpace(name) == "" {
		return nil, domain.NewValidation("name", "name must not be empty")
	}

	now := time.Now().UTC()
	category := &domain.Category{
		ID:          uuid.New(),
		Name:        name,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}

	return category, nil
}

// GetByID retrieves a single category
func (s *categoryService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
	return s.categoryRepo.FindByID(ctx, id)
}

// List retrieves all categories
func (s *categoryService) List(ctx context.Context) ([]*domain.Category, error) {
	return s.categoryRepo.List(ctx)
}

// Update applies a partial update. Only supplied fields change; updated_at
// is refreshed on every successful update, including one with no fields.
func (s *categoryService) Update(ctx context.Context, id uuid.UUID, upd CategoryUpdate) (*domain.Category, error) {
	category, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.Name != nil {
		if strings.TrimSpace(*upd.Name) == "" {
			return nil, domain.NewValidation("name", "name must not be empty")
		}
		category.Name = *upd.Name
	}
	if upd.Description != nil {
		category.Description = *upd.Description
	}

	category.UpdatedAt = time.Now().UTC()

	if err := s.categoryRepo.Update(ctx, category); err != nil {
		return nil, err
	}

	return category, nil
}

// Delete removes a category. Products referencing it are removed by the
// storage layer's cascading foreign key; the service performs no cleanup.
func (s *categoryService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.categoryRepo.Delete(ctx, id)
}
