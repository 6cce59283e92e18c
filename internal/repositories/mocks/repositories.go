// Package mocks holds testify mocks for the repository interfaces.
package mocks

import (
	"context"
	"time"

	"github.com/aaravmahajanofficial/storefront-cart/internal/models"
	repository "github.com/aaravmahajanofficial/storefront-cart/internal/repositories"
	"github.com/stretchr/testify/mock"
)

type ProductRepository struct {
	mock.Mock
}

func (m *ProductRepository) ListActiveProducts(ctx context.Context, filter repository.ProductFilter) ([]models.Product, error) {
	args := m.Called(ctx, filter)

	var products []models.Product
	if v := args.Get(0); v != nil {
		products = v.([]models.Product)
	}

	return products, args.Error(1)
}

type SaleRepository struct {
	mock.Mock
}

func (m *SaleRepository) ListCandidateSales(ctx context.Context, now time.Time) ([]models.Sale, error) {
	args := m.Called(ctx, now)

	var sales []models.Sale
	if v := args.Get(0); v != nil {
		sales = v.([]models.Sale)
	}

	return sales, args.Error(1)
}

type CartRepository struct {
	mock.Mock
}

func (m *CartRepository) GetCart(ctx context.Context, sessionID string) (*models.Cart, error) {
	args := m.Called(ctx, sessionID)

	var cart *models.Cart
	if v := args.Get(0); v != nil {
		cart = v.(*models.Cart)
	}

	return cart, args.Error(1)
}

func (m *CartRepository) SaveCart(ctx context.Context, cart *models.Cart) error {
	return m.Called(ctx, cart).Error(0)
}

func (m *CartRepository) DeleteCart(ctx context.Context, sessionID string) error {
	return m.Called(ctx, sessionID).Error(0)
}

var (
	_ repository.ProductRepository = (*ProductRepository)(nil)
	_ repository.SaleRepository    = (*SaleRepository)(nil)
	_ repository.CartRepository    = (*CartRepository)(nil)
)
