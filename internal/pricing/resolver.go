// Package pricing resolves the effective price of catalog products against
// promotional sales. It holds no state.
package pricing

import (
	"time"

	"github.com/aaravmahajanofficial/storefront-cart/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Options narrows the resolved list. A nil ProductIDs means no filter; a
// Limit of zero or less means no limit.
type Options struct {
	ProductIDs []uuid.UUID
	Limit      int
}

// CandidateSales keeps active sales whose end date is not before now, in
// feed order. Start dates are not checked.
func CandidateSales(sales []models.Sale, now time.Time) []models.Sale {
	candidates := make([]models.Sale, 0, len(sales))
	for _, sale := range sales {
		if sale.IsCandidate(now) {
			candidates = append(candidates, sale)
		}
	}

	return candidates
}

// Resolve prices every active product that passes the filter, preserving
// product order. When several candidate sales reference one product the
// first one in feed order wins.
func Resolve(products []models.Product, sales []models.Sale, now time.Time, opts Options) []models.PricedProduct {

	byProduct := make(map[uuid.UUID]models.Sale)
	for _, sale := range CandidateSales(sales, now) {
		if _, seen := byProduct[sale.ProductID]; !seen {
			byProduct[sale.ProductID] = sale
		}
	}

	var allowed map[uuid.UUID]struct{}
	if opts.ProductIDs != nil {
		allowed = make(map[uuid.UUID]struct{}, len(opts.ProductIDs))
		for _, id := range opts.ProductIDs {
			allowed[id] = struct{}{}
		}
	}

	priced := make([]models.PricedProduct, 0, len(products))

	for _, product := range products {
		if opts.Limit > 0 && len(priced) == opts.Limit {
			break
		}

		if !product.IsActive {
			continue
		}

		if allowed != nil {
			if _, ok := allowed[product.ID]; !ok {
				continue
			}
		}

		sale, onSale := byProduct[product.ID]
		if !onSale {
			priced = append(priced, models.PricedProduct{
				Product:        product,
				EffectivePrice: product.Price,
				OriginalPrice:  product.Price,
			})
			continue
		}

		priced = append(priced, models.PricedProduct{
			Product:        product,
			EffectivePrice: priceOrBase(sale.SalePrice, product.Price),
			OriginalPrice:  priceOrBase(sale.OriginalPrice, product.Price),
			SaleInfo: &models.SaleInfo{
				Title:       sale.Title,
				Description: sale.Description,
				EndDate:     sale.EndDate,
			},
		})
	}

	return priced
}

// ProductIDs returns the distinct product ids referenced by sales, in first
// appearance order.
func ProductIDs(sales []models.Sale) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(sales))
	ids := make([]uuid.UUID, 0, len(sales))

	for _, sale := range sales {
		if sale.ProductID == uuid.Nil {
			continue
		}
		if _, ok := seen[sale.ProductID]; ok {
			continue
		}
		seen[sale.ProductID] = struct{}{}
		ids = append(ids, sale.ProductID)
	}

	return ids
}

// a missing or zero sale price falls back to the base price
func priceOrBase(price decimal.NullDecimal, base decimal.Decimal) decimal.Decimal {
	if !price.Valid || price.Decimal.IsZero() {
		return base
	}

	return price.Decimal
}
