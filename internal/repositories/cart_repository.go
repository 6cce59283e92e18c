package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aaravmahajanofficial/storefront-cart/internal/cache"
	"github.com/aaravmahajanofficial/storefront-cart/internal/models"
)

var ErrCartNotFound = errors.New("cart not found")

// CartRepository persists cart sessions across reloads.
type CartRepository interface {
	GetCart(ctx context.Context, sessionID string) (*models.Cart, error)
	SaveCart(ctx context.Context, cart *models.Cart) error
	DeleteCart(ctx context.Context, sessionID string) error
}

type cartRepository struct {
	cache cache.Cache
	ttl   time.Duration
}

func NewCartRepo(c cache.Cache, ttl time.Duration) CartRepository {
	return &cartRepository{cache: c, ttl: ttl}
}

// GetCart also extends the session TTL, so a cart that is only read does not
// expire underneath an active shopper.
func (r *cartRepository) GetCart(ctx context.Context, sessionID string) (*models.Cart, error) {

	var cart models.Cart

	found, err := r.cache.Get(ctx, cache.Key(cache.CartKeyPrefix, sessionID), &cart, r.ttl)
	if err != nil {
		return nil, fmt.Errorf("loading cart: %w", err)
	}

	if !found {
		return nil, ErrCartNotFound
	}

	cart.SessionID = sessionID

	return &cart, nil
}

// SaveCart refreshes the session TTL on every write.
func (r *cartRepository) SaveCart(ctx context.Context, cart *models.Cart) error {

	if err := r.cache.Set(ctx, cache.Key(cache.CartKeyPrefix, cart.SessionID), cart, r.ttl); err != nil {
		return fmt.Errorf("saving cart: %w", err)
	}

	return nil
}

func (r *cartRepository) DeleteCart(ctx context.Context, sessionID string) error {

	if err := r.cache.Delete(ctx, cache.Key(cache.CartKeyPrefix, sessionID)); err != nil {
		return fmt.Errorf("deleting cart: %w", err)
	}

	return nil
}
