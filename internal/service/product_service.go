package service

import (
	"context"
	"strings"
	"time"

	"github.com/rustnew/E-commerce-projet/internal/domain"
	"github.com/rustnew/E-commerce-projet/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateProductInput carries the fields of a product creation request.
// The ID and timestamps are always server-generated.
type CreateProductInput struct {
	CategoryID    uuid.UUID
	Name          string
	Description   string
	PriceAV       decimal.Decimal
	PriceAP       decimal.Decimal
	StockQuantity int
	ImageURL      string
}

// ProductUpdate carries the optional fields of a partial product update.
// A nil field means "not supplied".
type ProductUpdate struct {
	CategoryID    *uuid.UUID
	Name          *string
	Description   *string
	PriceAV       *decimal.Decimal
	PriceAP       *decimal.Decimal
	StockQuantity *int
	ImageURL      *string
}

// ProductService defines the interface for product business logic
type ProductService interface {
	Create(ctx context.Context, input CreateProductInput) (*domain.Product, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error)
	List(ctx context.Context) ([]*domain.Product, error)
	Update(ctx context.Context, id uuid.UUID, upd ProductUpdate) (*domain.Product, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type productService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
}

// NewProductService creates a new instance of ProductService
func NewProductService(productRepo repository.ProductRepository, categoryRepo repository.CategoryRepository) ProductService {
	return &productService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
	}
}

// Create validates the input field by field and persists a new product.
// Checks run in a fixed order and short-circuit on the first failure, so
// invalid input never reaches the store as a constraint violation.
func (s *productService) Create(ctx context.Context, input CreateProductInput) (*domain.Product, error) {
	if err := s.checkCategoryExists(ctx, input.CategoryID); err != nil {
		return nil, err
	}
	if strings.TrimSpace(input.Name) == "" {
		return nil, domain.NewValidation("name", "name must not be empty")
	}
	if strings.TrimSpace(input.Description) == "" {
		return nil, domain.NewValidation("description", "description must not be empty")
	}
	if !input.PriceAV.IsPositive() {
		return nil, domain.NewValidation("price_av", "price_av must be greater than zero")
	}
	if !input.PriceAP.IsPositive() {
		return nil, domain.NewValidation("price_ap", "price_ap must be greater than zero")
	}
	if input.StockQuantity < 0 {
		return nil, domain.NewValidation("stock_quantity", "stock_quantity must not be negative")
	}
	if strings.TrimSpace(input.ImageURL) == "" {
		return nil, domain.NewValidation("image_url", "image_url must not be empty")
	}

	now := time.Now().UTC()
	product := &domain.Product{
		ID:            uuid.New(),
		CategoryID:    input.CategoryID,
		Name:          input.Name,
		Description:   input.Description,
		PriceAV:       input.PriceAV,
		PriceAP:       input.PriceAP,
		StockQuantity: input.StockQuantity,
		ImageURL:      input.ImageURL,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

// GetByID retrieves a single product
func (s *productService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	return s.productRepo.FindByID(ctx, id)
}

// List retrieves all products
func (s *productService) List(ctx context.Context) ([]*domain.Product, error) {
	return s.productRepo.List(ctx)
}

// Update applies a partial update, validating only the supplied fields. A
// supplied category_id is re-checked for existence. updated_at is refreshed
// on every successful update, including one with no fields.
func (s *productService) Update(ctx context.Context, id uuid.UUID, upd ProductUpdate) (*domain.Product, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.CategoryID != nil {
		if err := s.checkCategoryExists(ctx, *upd.CategoryID); err != nil {
			return nil, err
		}
		product.CategoryID = *upd.CategoryID
	}
	if upd.Name != nil {
		if strings.TrimSpace(*upd.Name) == "" {
			return nil, domain.NewValidation("name", "name must not be empty")
		}
		product.Name = *upd.Name
	}
	if upd.Description != nil {
		if strings.TrimSpace(*upd.Description) == "" {
			return nil, domain.NewValidation("description", "description must not be empty")
		}
		product.Description = *upd.Description
	}
	if upd.PriceAV != nil {
		if !upd.PriceAV.IsPositive() {
			return nil, domain.NewValidation("price_av", "price_av must be greater than zero")
		}
		product.PriceAV = *upd.PriceAV
	}
	if upd.PriceAP != nil {
		if !upd.PriceAP.IsPositive() {
			return nil, domain.NewValidation("price_ap", "price_ap must be greater than zero")
		}
		product.PriceAP = *upd.PriceAP
	}
	if upd.StockQuantity != nil {
		if *upd.StockQuantity < 0 {
			return nil, domain.NewValidation("stock_quantity", "stock_quantity must not be negative")
		}
		product.StockQuantity = *upd.StockQuantity
	}
	if upd.ImageURL != nil {
		if strings.TrimSpace(*upd.ImageURL) == "" {
			return nil, domain.NewValidation("image_url", "image_url must not be empty")
		}
		product.ImageURL = *upd.ImageURL
	}

	product.UpdatedAt = time.Now().UTC()

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

// Delete removes a product; nothing cascades from it
func (s *productService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.productRepo.Delete(ctx, id)
}

// checkCategoryExists surfaces a dangling category reference as a Validation
// error: the product itself is well-formed, only its reference is not. The
// store re-checks the reference under its foreign key, so a concurrent
// category delete still fails cleanly with the same error kind.
func (s *productService) checkCategoryExists(ctx context.Context, categoryID uuid.UUID) error {
	_, err := s.categoryRepo.FindByID(ctx, categoryID)
	if err != nil {
		if domain.IsNotFound(err) {
			return domain.NewValidation("category_id", "category does not exist")
		}
		return err
	}
	return nil
}
