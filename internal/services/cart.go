package service

import (
	"context"
	stdErrors "errors"
	"log/slog"
	"sync"
	"time"

	"github.com/aaravmahajanofficial/storefront-cart/internal/api/middleware"
	"github.com/aaravmahajanofficial/storefront-cart/internal/cart"
	"github.com/aaravmahajanofficial/storefront-cart/internal/errors"
	"github.com/aaravmahajanofficial/storefront-cart/internal/metrics"
	"github.com/aaravmahajanofficial/storefront-cart/internal/models"
	repository "github.com/aaravmahajanofficial/storefront-cart/internal/repositories"
	"github.com/aaravmahajanofficial/storefront-cart/internal/utils"
	"github.com/aaravmahajanofficial/storefront-cart/pkg/currency"
)

type CartService interface {
	GetCart(ctx context.Context, sessionID string) (*models.Cart, error)
	AddItem(ctx context.Context, sessionID string, req *models.AddItemRequest) (*models.Cart, error)
	UpdateQuantity(ctx context.Context, sessionID string, req *models.UpdateQuantityRequest) (*models.Cart, error)
	RemoveItem(ctx context.Context, sessionID string, req *models.RemoveItemRequest) (*models.Cart, error)
	ClearCart(ctx context.Context, sessionID string) (*models.Cart, error)
	CheckoutSummary(ctx context.Context, sessionID string) (*models.CheckoutSummary, error)
	CompleteCheckout(ctx context.Context, sessionID string) (*models.Cart, error)
	EvictIdle(idleSince time.Time) int
}

// session pairs a store with the lock that orders its writes to the
// repository.
type session struct {
	mu       sync.Mutex
	store    *cart.Store
	lastUsed time.Time
}

type cartService struct {
	repo     repository.CartRepository
	catalog  CatalogService
	currency string
	now      func() time.Time

	mu       sync.Mutex
	sessions map[string]*session
}

func NewCartService(repo repository.CartRepository, catalog CatalogService, currencyCode string) CartService {
	return &cartService{
		repo:     repo,
		catalog:  catalog,
		currency: currencyCode,
		now:      time.Now,
		sessions: make(map[string]*session),
	}
}

func (s *cartService) GetCart(ctx context.Context, sessionID string) (*models.Cart, error) {

	sess, err := s.session(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	return sess.store.Snapshot(sessionID), nil
}

// AddItem freezes the product's current effective price into the line.
func (s *cartService) AddItem(ctx context.Context, sessionID string, req *models.AddItemRequest) (*models.Cart, error) {

	size, color, err := cleanVariant(req.Size, req.Color)
	if err != nil {
		return nil, err
	}

	product, err := s.catalog.GetPricedProduct(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}

	return s.mutate(ctx, sessionID, func(store *cart.Store) {
		store.AddItem(product.Snapshot(), size, req.Quantity, color)
	})
}

func (s *cartService) UpdateQuantity(ctx context.Context, sessionID string, req *models.UpdateQuantityRequest) (*models.Cart, error) {

	size, color, err := cleanVariant(req.Size, req.Color)
	if err != nil {
		return nil, err
	}

	return s.mutate(ctx, sessionID, func(store *cart.Store) {
		store.UpdateQuantity(req.ProductID, size, req.Quantity, color)
	})
}

func (s *cartService) RemoveItem(ctx context.Context, sessionID string, req *models.RemoveItemRequest) (*models.Cart, error) {

	size, color, err := cleanVariant(req.Size, req.Color)
	if err != nil {
		return nil, err
	}

	return s.mutate(ctx, sessionID, func(store *cart.Store) {
		store.RemoveItem(req.ProductID, size, color)
	})
}

func (s *cartService) ClearCart(ctx context.Context, sessionID string) (*models.Cart, error) {
	return s.mutate(ctx, sessionID, func(store *cart.Store) {
		store.Clear()
	})
}

func (s *cartService) CheckoutSummary(ctx context.Context, sessionID string) (*models.CheckoutSummary, error) {

	snapshot, err := s.GetCart(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	return &models.CheckoutSummary{
		Items:        snapshot.Items,
		ItemCount:    snapshot.ItemCount,
		Subtotal:     snapshot.Total,
		Currency:     s.currency,
		DisplayTotal: currency.Format(snapshot.Total, s.currency),
	}, nil
}

// CompleteCheckout is called once payment succeeded elsewhere. It empties the
// cart; an already empty cart is not an error.
func (s *cartService) CompleteCheckout(ctx context.Context, sessionID string) (*models.Cart, error) {

	snapshot, err := s.ClearCart(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	middleware.LoggerFromContext(ctx).Info("Checkout completed, cart cleared", slog.String("sessionId", sessionID))

	return snapshot, nil
}

// EvictIdle drops in-memory carts not touched since idleSince. Their
// persisted copy is reloaded on next use.
func (s *cartService) EvictIdle(idleSince time.Time) int {

	s.mu.Lock()
	defer s.mu.Unlock()

	evicted := 0
	for id, sess := range s.sessions {
		if sess.lastUsed.Before(idleSince) {
			delete(s.sessions, id)
			evicted++
		}
	}

	return evicted
}

func (s *cartService) mutate(ctx context.Context, sessionID string, apply func(*cart.Store)) (*models.Cart, error) {

	sess, err := s.session(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	apply(sess.store)
	snapshot := sess.store.Snapshot(sessionID)

	s.persist(ctx, snapshot)

	return snapshot, nil
}

// persist writes the snapshot back; an empty cart removes the key. Failures
// are logged only, the in-memory store stays authoritative.
func (s *cartService) persist(ctx context.Context, snapshot *models.Cart) {

	cacheCtx, cancel := utils.WithCacheTimeout(ctx)
	defer cancel()

	var err error
	if len(snapshot.Items) == 0 {
		err = s.repo.DeleteCart(cacheCtx, snapshot.SessionID)
	} else {
		err = s.repo.SaveCart(cacheCtx, snapshot)
	}

	if err != nil {
		middleware.LoggerFromContext(ctx).Error("Failed to persist cart",
			slog.String("sessionId", snapshot.SessionID),
			slog.String("error", err.Error()),
		)
	}
}

func (s *cartService) session(ctx context.Context, sessionID string) (*session, error) {

	if sessionID == "" {
		return nil, errors.BadRequestError("Cart session is required")
	}

	s.mu.Lock()
	if sess, ok := s.sessions[sessionID]; ok {
		sess.lastUsed = s.now()
		s.mu.Unlock()
		return sess, nil
	}
	s.mu.Unlock()

	store, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// another request may have loaded the same session meanwhile
	if sess, ok := s.sessions[sessionID]; ok {
		sess.lastUsed = s.now()
		return sess, nil
	}

	store.Subscribe(func(ev cart.Event) {
		metrics.RecordCartMutation(string(ev.Op))
	})

	sess := &session{store: store, lastUsed: s.now()}
	s.sessions[sessionID] = sess

	return sess, nil
}

func (s *cartService) load(ctx context.Context, sessionID string) (*cart.Store, error) {

	store := cart.New()

	cacheCtx, cancel := utils.WithCacheTimeout(ctx)
	defer cancel()

	persisted, err := s.repo.GetCart(cacheCtx, sessionID)
	if err != nil {
		if stdErrors.Is(err, repository.ErrCartNotFound) {
			return store, nil
		}

		middleware.LoggerFromContext(ctx).Error("Failed to load cart",
			slog.String("sessionId", sessionID),
			slog.String("error", err.Error()),
		)
		return nil, errors.CacheError("Failed to load cart").WithError(err)
	}

	store.Restore(persisted.Items, persisted.UpdatedAt)

	return store, nil
}

// cleanVariant strips markup from the line variant; the size must survive.
func cleanVariant(size, color string) (string, string, error) {

	size = utils.SanitizeText(size)
	if size == "" {
		return "", "", errors.AddValidationError("size", "must not be empty")
	}

	return size, utils.SanitizeText(color), nil
}
