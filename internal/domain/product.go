package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product represents a product in the catalog. PriceAV and PriceAP are two
// independent price points (list and sale price) kept as exact decimals;
// they serialize as decimal strings, never as binary floats.
type Product struct {
	ID            uuid.UUID       `json:"id" db:"id"`
	CategoryID    uuid.UUID       `json:"category_id" db:"category_id"`
	Name          string          `json:"name" db:"name"`
	Description   string          `json:"description" db:"description"`
	PriceAV       decimal.Decimal `json:"price_av" db:"price_av"`
	PriceAP       decimal.Decimal `json:"price_ap" db:"price_ap"`
	StockQuantity int             `json:"stock_quantity" db:"stock_quantity"`
	ImageURL      string          `json:"image_url" db:"image_url"`
	CreatedAt     time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at" db:"updated_at"`
}
