package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is a catalog record as supplied by the catalog feed.
type Product struct {
	ID       uuid.UUID       `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	ImageURL string          `json:"image_url,omitempty"`
	IsActive bool            `json:"is_active"`
}

// Sale is a promotional price record for a single product. Prices are
// nullable in the feed; a missing or zero price falls back to the product's
// base price when resolved.
type Sale struct {
	ID            uuid.UUID           `json:"id"`
	ProductID     uuid.UUID           `json:"product_id"`
	IsActive      bool                `json:"is_active"`
	StartDate     time.Time           `json:"start_date"`
	EndDate       time.Time           `json:"end_date"`
	OriginalPrice decimal.NullDecimal `json:"original_price"`
	SalePrice     decimal.NullDecimal `json:"sale_price"`
	Title         string              `json:"sale_title"`
	Description   string              `json:"sale_description"`
}

// IsCandidate reports whether the sale is picked up by the resolver at now.
// Only the end of the window is checked.
func (s Sale) IsCandidate(now time.Time) bool {
	return s.IsActive && !s.EndDate.Before(now)
}

// IsEffective reports whether now lies within [StartDate, EndDate).
func (s Sale) IsEffective(now time.Time) bool {
	return s.IsActive && !now.Before(s.StartDate) && now.Before(s.EndDate)
}

type SaleInfo struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	EndDate     time.Time `json:"end_date"`
}

type PricedProduct struct {
	Product
	EffectivePrice decimal.Decimal `json:"effective_price"`
	OriginalPrice  decimal.Decimal `json:"original_price"`
	SaleInfo       *SaleInfo       `json:"sale_info,omitempty"`
}

func (p PricedProduct) OnSale() bool {
	return p.SaleInfo != nil
}

// Snapshot freezes the display fields and effective price for a cart line.
func (p PricedProduct) Snapshot() ProductSnapshot {
	return ProductSnapshot{
		ID:        p.ID,
		Name:      p.Name,
		UnitPrice: p.EffectivePrice,
		ImageURL:  p.ImageURL,
	}
}

type PricedProductList struct {
	Products []PricedProduct `json:"products"`
	Degraded bool            `json:"degraded"`
}
