package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/aaravmahajanofficial/storefront-cart/internal/api/middleware"
	"github.com/aaravmahajanofficial/storefront-cart/internal/errors"
	"github.com/aaravmahajanofficial/storefront-cart/internal/metrics"
	"github.com/aaravmahajanofficial/storefront-cart/internal/models"
	"github.com/aaravmahajanofficial/storefront-cart/internal/pricing"
	repository "github.com/aaravmahajanofficial/storefront-cart/internal/repositories"
	"github.com/aaravmahajanofficial/storefront-cart/internal/utils"
	"github.com/google/uuid"
)

const DefaultPreviewLimit = 8

const (
	feedProducts = "products"
	feedSales    = "sales"
)

type CatalogService interface {
	SalePreview(ctx context.Context) (*models.PricedProductList, error)
	ListProducts(ctx context.Context, ids []uuid.UUID) (*models.PricedProductList, error)
	GetPricedProduct(ctx context.Context, id uuid.UUID) (*models.PricedProduct, error)
}

type catalogService struct {
	products     repository.ProductRepository
	sales        repository.SaleRepository
	previewLimit int
	now          func() time.Time
}

func NewCatalogService(products repository.ProductRepository, sales repository.SaleRepository, previewLimit int) CatalogService {
	return NewCatalogServiceWithClock(products, sales, previewLimit, time.Now)
}

func NewCatalogServiceWithClock(products repository.ProductRepository, sales repository.SaleRepository, previewLimit int, now func() time.Time) CatalogService {
	if previewLimit <= 0 {
		previewLimit = DefaultPreviewLimit
	}

	return &catalogService{
		products:     products,
		sales:        sales,
		previewLimit: previewLimit,
		now:          now,
	}
}

// SalePreview lists the first products that carry a candidate sale. The
// catalog is not queried when no sale references a product.
func (s *catalogService) SalePreview(ctx context.Context) (*models.PricedProductList, error) {

	now := s.now()

	sales, err := s.loadSales(ctx, now)
	if err != nil {
		return nil, err
	}

	ids := pricing.ProductIDs(sales)
	if len(ids) == 0 {
		return &models.PricedProductList{Products: []models.PricedProduct{}}, nil
	}

	products, err := s.loadProducts(ctx, repository.ProductFilter{IDs: ids, Limit: s.previewLimit})
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, errors.FeedFailureError("Request cancelled").WithError(err)
	}

	priced := pricing.Resolve(products, sales, now, pricing.Options{ProductIDs: ids, Limit: s.previewLimit})

	return &models.PricedProductList{Products: sanitizeSaleInfo(priced)}, nil
}

// ListProducts prices the active catalog. A nil ids slice means every
// product; an empty non-nil slice yields an empty list.
func (s *catalogService) ListProducts(ctx context.Context, ids []uuid.UUID) (*models.PricedProductList, error) {

	if ids != nil && len(ids) == 0 {
		return &models.PricedProductList{Products: []models.PricedProduct{}}, nil
	}

	now := s.now()

	products, err := s.loadProducts(ctx, repository.ProductFilter{IDs: ids})
	if err != nil {
		return nil, err
	}

	sales, err := s.loadSales(ctx, now)
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, errors.FeedFailureError("Request cancelled").WithError(err)
	}

	priced := pricing.Resolve(products, sales, now, pricing.Options{ProductIDs: ids})

	return &models.PricedProductList{Products: sanitizeSaleInfo(priced)}, nil
}

func (s *catalogService) GetPricedProduct(ctx context.Context, id uuid.UUID) (*models.PricedProduct, error) {

	list, err := s.ListProducts(ctx, []uuid.UUID{id})
	if err != nil {
		return nil, err
	}

	if len(list.Products) == 0 {
		return nil, errors.NotFoundError("Product not found").WithDetail(id.String())
	}

	return &list.Products[0], nil
}

func (s *catalogService) loadProducts(ctx context.Context, filter repository.ProductFilter) ([]models.Product, error) {

	products, err := s.products.ListActiveProducts(ctx, filter)
	if err != nil {
		return nil, s.feedFailure(ctx, feedProducts, err)
	}

	return products, nil
}

func (s *catalogService) loadSales(ctx context.Context, now time.Time) ([]models.Sale, error) {

	sales, err := s.sales.ListCandidateSales(ctx, now)
	if err != nil {
		return nil, s.feedFailure(ctx, feedSales, err)
	}

	return sales, nil
}

func (s *catalogService) feedFailure(ctx context.Context, feed string, err error) error {

	metrics.RecordFeedFailure(feed)

	middleware.LoggerFromContext(ctx).Error("Feed query failed",
		slog.String("feed", feed),
		slog.String("error", err.Error()),
	)

	return errors.FeedFailureError("Failed to load " + feed).WithError(err)
}

func sanitizeSaleInfo(products []models.PricedProduct) []models.PricedProduct {
	for i := range products {
		if info := products[i].SaleInfo; info != nil {
			info.Title = utils.SanitizeText(info.Title)
			info.Description = utils.SanitizeText(info.Description)
		}
	}

	return products
}
