package transport

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rustnew/E-commerce-projet/internal/domain"
	"github.com/rustnew/E-commerce-projet/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type stubProductService struct {
	createFn func(ctx context.Context, input service.CreateProductInput) (*domain.Product, error)
	getFn    func(ctx context.Context, id uuid.UUID) (*domain.Product, error)
	listFn   func(ctx context.Context) ([]*domain.Product, error)
	updateFn func(ctx context.Context, id uuid.UUID, upd service.ProductUpdate) (*domain.Product, error)
	deleteFn func(ctx context.Context, id uuid.UUID) error
}

func (s *stubProductService) Create(ctx context.Context, input service.CreateProductInput) (*domain.Product, error) {
	return s.createFn(ctx, input)
}

func (s *stubProductService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	return s.getFn(ctx, id)
}

func (s *stubProductService) List(ctx context.Context) ([]*domain.Product, error) {
	return s.listFn(ctx)
}

func (s *stubProductService) Update(ctx context.Context, id uuid.UUID, upd service.ProductUpdate) (*domain.Product, error) {
	return s.updateFn(ctx, id, upd)
}

func (s *stubProductService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.deleteFn(ctx, id)
}

func newProductRouter(svc service.ProductService) chi.Router {
	router := chi.NewRouter()
	NewProductHandler(svc, zap.NewNop()).RegisterRoutes(router)
	return router
}

func TestCreateProductSerializesPricesAsDecimalStrings(t *testing.T) {
	now := time.Now().UTC()
	router := newProductRouter(&stubProductService{
		createFn: func(ctx context.Context, input service.CreateProductInput) (*domain.Product, error) {
			return &domain.Product{
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
			}, nil
		},
	})

	body := `{
		"category_id": "` + uuid.NewString() + `",
		"name": "Smartphone",
		"description": "A phone",
		"price_av": "699.99",
		"price_ap": "799.99",
		"stock_quantity": 50,
		"image_url": "https://x/y.jpg"
	}`

	req := httptest.NewRequest(http.MethodPost, "/api/products/", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201; body %s", rec.Code, rec.Body)
	}

	// Prices round-trip as exact decimal strings, never as binary floats.
	got := rec.Body.String()
	if !strings.Contains(got, `"price_av":"699.99"`) {
		t.Errorf("price_av not serialized as decimal string: %s", got)
	}
	if !strings.Contains(got, `"price_ap":"799.99"`) {
		t.Errorf("price_ap not serialized as decimal string: %s", got)
	}
}

func TestCreateProductDanglingCategoryMapsTo400(t *testing.T) {
	router := newProductRouter(&stubProductService{
		createFn: func(ctx context.Context, input service.CreateProductInput) (*domain.Product, error) {
			return nil, domain.NewValidation("category_id", "category does not exist")
		},
	})

	body := `{"category_id":"` + uuid.NewString() + `","name":"x","description":"y","price_av":"1","price_ap":"1","stock_quantity":0,"image_url":"z"}`
	req := httptest.NewRequest(http.MethodPost, "/api/products/", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "category_id") {
		t.Error("validation response should name the failing field")
	}
}

func TestUpdateProductForwardsOnlySuppliedFields(t *testing.T) {
	var captured service.ProductUpdate
	router := newProductRouter(&stubProductService{
		updateFn: func(ctx context.Context, id uuid.UUID, upd service.ProductUpdate) (*domain.Product, error) {
			captured = upd
			return &domain.Product{ID: id, PriceAV: decimal.New(1, 0), PriceAP: decimal.New(1, 0)}, nil
		},
	})

	req := httptest.NewRequest(http.MethodPatch, "/api/products/"+uuid.NewString(),
		strings.NewReader(`{"stock_quantity":5}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body %s", rec.Code, rec.Body)
	}
	if captured.StockQuantity == nil || *captured.StockQuantity != 5 {
		t.Error("stock_quantity should be supplied")
	}
	if captured.Name != nil || captured.Description != nil || captured.CategoryID != nil ||
		captured.PriceAV != nil || captured.PriceAP != nil || captured.ImageURL != nil {
		t.Error("unsupplied fields must stay nil")
	}
}

func TestDeleteProductNotFoundMapsTo404(t *testing.T) {
	router := newProductRouter(&stubProductService{
		deleteFn: func(ctx context.Context, id uuid.UUID) error {
			return domain.NewNotFound("product")
		},
	})

	req := httptest.NewRequest(http.MethodDelete, "/api/products/"+uuid.NewString(), nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestCreateProductRejectsMalformedBody(t *testing.T) {
	router := newProductRouter(&stubProductService{
		createFn: func(ctx context.Context, input service.CreateProductInput) (*domain.Product, error) {
			t.Fatal("service must not be called for a malformed body")
			return nil, nil
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/api/products/", strings.NewReader(`{"price_av": not-json`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}
