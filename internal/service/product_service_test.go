package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rustnew/E-commerce-projet/internal/domain"

	"github.com/google/uuid"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/shopspring/decimal"
)

// Mock repository for testing
type mockProductRepository struct {
	products map[uuid.UUID]*domain.Product
}

func newMockProductRepository() *mockProductRepository {
	return &mockProductRepository{
		products: make(map[uuid.UUID]*domain.Product),
	}
}

func (m *mockProductRepository) Create(ctx context.Context, product *domain.Product) error {
	p := *product
	m.products[product.ID] = &p
	return nil
}

func (m *mockProductRepository) List(ctx context.Context) ([]*domain.Product, error) {
	out := []*domain.Product{}
	for _, p := range m.products {
		pp := *p
		out = append(out, &pp)
	}
	return out, nil
}

func (m *mockProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	p, exists := m.products[id]
	if !exists {
		return nil, domain.NewNotFound("product")
	}
	pp := *p
	return &pp, nil
}

func (m *mockProductRepository) Update(ctx context.Context, product *domain.Product) error {
	if _, exists := m.products[product.ID]; !exists {
		return domain.NewNotFound("product")
	}
	p := *product
	m.products[product.ID] = &p
	return nil
}

func (m *mockProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if _, exists := m.products[id]; !exists {
		return domain.NewNotFound("product")
	}
	delete(m.products, id)
	return nil
}

func newProductFixture(t *testing.T) (ProductService, *mockProductRepository, *domain.Category) {
	t.Helper()

	productRepo := newMockProductRepository()
	categoryRepo := newMockCategoryRepository()
	category, err := NewCategoryService(categoryRepo).Create(context.Background(), "Electronics", "desc")
	if err != nil {
		t.Fatalf("fixture category: %v", err)
	}

	return NewProductService(productRepo, categoryRepo), productRepo, category
}

func validProductInput(categoryID uuid.UUID) CreateProductInput {
	return CreateProductInput{
		CategoryID:    categoryID,
		Name:          "Smartphone",
		Description:   "A phone",
		PriceAV:       decimal.RequireFromString("699.99"),
		PriceAP:       decimal.RequireFromString("799.99"),
		StockQuantity: 50,
		ImageURL:      "https://x/y.jpg",
	}
}

// Invalid prices and stock are rejected before any storage write.
func TestProperty_InvalidPriceOrStockNeverPersists(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("non-positive prices and negative stock always fail with Validation", prop.ForAll(
		func(priceCents int64, stock int) bool {
			svc, repo, category := newProductFixture(t)
			ctx := context.Background()

			input := validProductInput(category.ID)
			input.PriceAV = decimal.New(priceCents, -2) // <= 0 by generator
			input.StockQuantity = stock                 // < 0 by generator

			_, err := svc.Create(ctx, input)
			if domain.KindOf(err) != domain.KindValidation {
				t.Logf("FAIL: expected Validation for price %s stock %d, got %v",
					input.PriceAV, stock, err)
				return false
			}

			if len(repo.products) != 0 {
				t.Logf("FAIL: invalid input reached storage")
				return false
			}

			return true
		},
		gen.Int64Range(-100000, 0),
		gen.IntRange(-1000, -1),
	))

	properties.Property("zero price_ap alone is enough to reject", prop.ForAll(
		func(stock int) bool {
			svc, repo, category := newProductFixture(t)

			input := validProductInput(category.ID)
			input.PriceAP = decimal.Zero
			input.StockQuantity = stock

			_, err := svc.Create(context.Background(), input)
			return domain.KindOf(err) == domain.KindValidation && len(repo.products) == 0
		},
		gen.IntRange(0, 1000),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestCreateProductRejectsDanglingCategory(t *testing.T) {
	svc, repo, _ := newProductFixture(t)

	input := validProductInput(uuid.New())
	_, err := svc.Create(context.Background(), input)

	if domain.KindOf(err) != domain.KindValidation {
		t.Fatalf("expected Validation for dangling category, got %v", err)
	}
	var appErr *domain.Error
	if errors.As(err, &appErr) && appErr.Field != "category_id" {
		t.Errorf("error should name category_id, got %q", appErr.Field)
	}
	if len(repo.products) != 0 {
		t.Error("nothing should be persisted")
	}
}

func TestCreateProductChecksCategoryBeforeFields(t *testing.T) {
	svc, _, _ := newProductFixture(t)

	// Both the category reference and the name are invalid; the category
	// check runs first.
	input := validProductInput(uuid.New())
	input.Name = ""

	_, err := svc.Create(context.Background(), input)

	var appErr *domain.Error
	if !errors.As(err, &appErr) || appErr.Field != "category_id" {
		t.Errorf("expected category_id to fail first, got %v", err)
	}
}

func TestCreateProductRoundTripsExactDecimals(t *testing.T) {
	svc, _, category := newProductFixture(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, validProductInput(category.ID))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	got, err := svc.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}

	if got.PriceAV.String() != "699.99" {
		t.Errorf("price_av drifted: %s", got.PriceAV)
	}
	if got.PriceAP.String() != "799.99" {
		t.Errorf("price_ap drifted: %s", got.PriceAP)
	}
}

func TestUpdateProductStockOnly(t *testing.T) {
	svc, _, category := newProductFixture(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, validProductInput(category.ID))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	time.Sleep(time.Millisecond)

	stock := 5
	updated, err := svc.Update(ctx, created.ID, ProductUpdate{StockQuantity: &stock})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	if updated.StockQuantity != 5 {
		t.Errorf("stock_quantity = %d, want 5", updated.StockQuantity)
	}
	if updated.Name != created.Name ||
		updated.Description != created.Description ||
		updated.ImageURL != created.ImageURL ||
		updated.CategoryID != created.CategoryID ||
		!updated.PriceAV.Equal(created.PriceAV) ||
		!updated.PriceAP.Equal(created.PriceAP) {
		t.Error("only stock_quantity may change")
	}
	if !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Error("created_at must never change")
	}
	if !updated.UpdatedAt.After(created.UpdatedAt) {
		t.Error("updated_at should be refreshed")
	}
}

func TestUpdateProductNoOpStillRefreshesUpdatedAt(t *testing.T) {
	svc, _, category := newProductFixture(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, validProductInput(category.ID))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	time.Sleep(time.Millisecond)

	updated, err := svc.Update(ctx, created.ID, ProductUpdate{})
	if err != nil {
		t.Fatalf("no-op Update failed: %v", err)
	}

	if updated.Name != created.Name ||
		updated.Description != created.Description ||
		updated.ImageURL != created.ImageURL ||
		updated.CategoryID != created.CategoryID ||
		updated.StockQuantity != created.StockQuantity ||
		!updated.PriceAV.Equal(created.PriceAV) ||
		!updated.PriceAP.Equal(created.PriceAP) {
		t.Error("no-op update must not change business fields")
	}
	if !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Error("created_at must never change")
	}
	if !updated.UpdatedAt.After(created.UpdatedAt) {
		t.Error("a no-op update still refreshes updated_at")
	}
}

func TestUpdateProductRevalidatesCategory(t *testing.T) {
	svc, _, category := newProductFixture(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, validProductInput(category.ID))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	missing := uuid.New()
	_, err = svc.Update(ctx, created.ID, ProductUpdate{CategoryID: &missing})
	if domain.KindOf(err) != domain.KindValidation {
		t.Errorf("supplied dangling category_id should fail with Validation, got %v", err)
	}
}

func TestUpdateProductRejectsInvalidSuppliedFields(t *testing.T) {
	svc, _, category := newProductFixture(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, validProductInput(category.ID))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	zero := decimal.Zero
	negStock := -1
	empty := ""

	cases := []ProductUpdate{
		{PriceAV: &zero},
		{PriceAP: &zero},
		{StockQuantity: &negStock},
		{Name: &empty},
		{Description: &empty},
		{ImageURL: &empty},
	}

	for i, upd := range cases {
		if _, err := svc.Update(ctx, created.ID, upd); domain.KindOf(err) != domain.KindValidation {
			t.Errorf("case %d: expected Validation, got %v", i, err)
		}
	}
}

func TestUpdateProductNotFound(t *testing.T) {
	svc, _, _ := newProductFixture(t)

	stock := 1
	_, err := svc.Update(context.Background(), uuid.New(), ProductUpdate{StockQuantity: &stock})
	if domain.KindOf(err) != domain.KindNotFound {
		t.Errorf("expected NotFound, got %v", err)
	}
}

func TestDeleteProduct(t *testing.T) {
	svc, _, category := newProductFixture(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, validProductInput(category.ID))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if err := svc.Delete(ctx, created.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if err := svc.Delete(ctx, created.ID); domain.KindOf(err) != domain.KindNotFound {
		t.Errorf("second delete should be NotFound, got %v", err)
	}
}
