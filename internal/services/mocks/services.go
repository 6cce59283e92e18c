// Package mocks holds testify mocks for the service interfaces.
package mocks

import (
	"context"
	"time"

	"github.com/aaravmahajanofficial/storefront-cart/internal/models"
	service "github.com/aaravmahajanofficial/storefront-cart/internal/services"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type CatalogService struct {
	mock.Mock
}

func (m *CatalogService) SalePreview(ctx context.Context) (*models.PricedProductList, error) {
	args := m.Called(ctx)
	return pricedList(args.Get(0)), args.Error(1)
}

func (m *CatalogService) ListProducts(ctx context.Context, ids []uuid.UUID) (*models.PricedProductList, error) {
	args := m.Called(ctx, ids)
	return pricedList(args.Get(0)), args.Error(1)
}

func (m *CatalogService) GetPricedProduct(ctx context.Context, id uuid.UUID) (*models.PricedProduct, error) {
	args := m.Called(ctx, id)

	var product *models.PricedProduct
	if v := args.Get(0); v != nil {
		product = v.(*models.PricedProduct)
	}

	return product, args.Error(1)
}

type CartService struct {
	mock.Mock
}

func (m *CartService) GetCart(ctx context.Context, sessionID string) (*models.Cart, error) {
	args := m.Called(ctx, sessionID)
	return cartOf(args.Get(0)), args.Error(1)
}

func (m *CartService) AddItem(ctx context.Context, sessionID string, req *models.AddItemRequest) (*models.Cart, error) {
	args := m.Called(ctx, sessionID, req)
	return cartOf(args.Get(0)), args.Error(1)
}

func (m *CartService) UpdateQuantity(ctx context.Context, sessionID string, req *models.UpdateQuantityRequest) (*models.Cart, error) {
	args := m.Called(ctx, sessionID, req)
	return cartOf(args.Get(0)), args.Error(1)
}

func (m *CartService) RemoveItem(ctx context.Context, sessionID string, req *models.RemoveItemRequest) (*models.Cart, error) {
	args := m.Called(ctx, sessionID, req)
	return cartOf(args.Get(0)), args.Error(1)
}

func (m *CartService) ClearCart(ctx context.Context, sessionID string) (*models.Cart, error) {
	args := m.Called(ctx, sessionID)
	return cartOf(args.Get(0)), args.Error(1)
}

func (m *CartService) CheckoutSummary(ctx context.Context, sessionID string) (*models.CheckoutSummary, error) {
	args := m.Called(ctx, sessionID)

	var summary *models.CheckoutSummary
	if v := args.Get(0); v != nil {
		summary = v.(*models.CheckoutSummary)
	}

	return summary, args.Error(1)
}

func (m *CartService) CompleteCheckout(ctx context.Context, sessionID string) (*models.Cart, error) {
	args := m.Called(ctx, sessionID)
	return cartOf(args.Get(0)), args.Error(1)
}

func (m *CartService) EvictIdle(idleSince time.Time) int {
	return m.Called(idleSince).Int(0)
}

func pricedList(v any) *models.PricedProductList {
	if v == nil {
		return nil
	}
	return v.(*models.PricedProductList)
}

func cartOf(v any) *models.Cart {
	if v == nil {
		return nil
	}
	return v.(*models.Cart)
}

var (
	_ service.CatalogService = (*CatalogService)(nil)
	_ service.CartService    = (*CartService)(nil)
)
