package repository_test

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/aaravmahajanofficial/storefront-cart/internal/cache"
	"github.com/aaravmahajanofficial/storefront-cart/internal/config"
	"github.com/aaravmahajanofficial/storefront-cart/internal/models"
	repository "github.com/aaravmahajanofficial/storefront-cart/internal/repositories"
	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sessionTTL = 48 * time.Hour

func setupCartRepoTest(t *testing.T) (repository.CartRepository, redismock.ClientMock) {
	t.Helper()

	client, mock := redismock.NewClientMock()
	redisCache := cache.NewRedisCache(client, &config.CacheConfig{DefaultTTL: time.Minute})

	return repository.NewCartRepo(redisCache, sessionTTL), mock
}

func sampleCart(sessionID string) *models.Cart {
	return &models.Cart{
		SessionID: sessionID,
		Items: []models.CartItem{
			{
				Product: models.ProductSnapshot{
					ID:        uuid.New(),
					Name:      "Team Jacket",
					UnitPrice: decimal.RequireFromString("750"),
				},
				Size:     "M",
				Quantity: 2,
			},
		},
		ItemCount: 2,
		Total:     decimal.RequireFromString("1500"),
		UpdatedAt: time.Date(2026, 10, 18, 9, 30, 0, 0, time.UTC),
	}
}

func TestCartRepository(t *testing.T) {
	ctx := t.Context()
	sessionID := uuid.NewString()
	key := cache.Key(cache.CartKeyPrefix, sessionID)

	t.Run("GetCart", func(t *testing.T) {
		t.Run("Success", func(t *testing.T) {
			// Arrange
			repo, mock := setupCartRepoTest(t)
			stored := sampleCart(sessionID)
			data, err := json.Marshal(stored)
			require.NoError(t, err)

			mock.ExpectGetEx(key, sessionTTL).SetVal(string(data))

			// Act
			cart, err := repo.GetCart(ctx, sessionID)

			// Assert
			require.NoError(t, err)
			require.Len(t, cart.Items, 1)
			assert.Equal(t, sessionID, cart.SessionID)
			assert.Equal(t, stored.Items[0].Product.ID, cart.Items[0].Product.ID)
			assert.Equal(t, 2, cart.Items[0].Quantity)
			assert.True(t, stored.Items[0].Product.UnitPrice.Equal(cart.Items[0].Product.UnitPrice))
			assert.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run("Failure - Not found", func(t *testing.T) {
			// Arrange
			repo, mock := setupCartRepoTest(t)
			mock.ExpectGetEx(key, sessionTTL).SetErr(redis.Nil)

			// Act
			cart, err := repo.GetCart(ctx, sessionID)

			// Assert
			assert.Nil(t, cart)
			assert.ErrorIs(t, err, repository.ErrCartNotFound)
			assert.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run("Failure - Redis error", func(t *testing.T) {
			// Arrange
			repo, mock := setupCartRepoTest(t)
			redisErr := errors.New("i/o timeout")
			mock.ExpectGetEx(key, sessionTTL).SetErr(redisErr)

			// Act
			cart, err := repo.GetCart(ctx, sessionID)

			// Assert
			assert.Nil(t, cart)
			assert.ErrorIs(t, err, redisErr)
			assert.NotErrorIs(t, err, repository.ErrCartNotFound)
			assert.Contains(t, err.Error(), "loading cart")
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	})

	t.Run("SaveCart", func(t *testing.T) {
		t.Run("Success - Uses session TTL", func(t *testing.T) {
			// Arrange
			repo, mock := setupCartRepoTest(t)
			cart := sampleCart(sessionID)
			data, err := json.Marshal(cart)
			require.NoError(t, err)

			mock.ExpectSet(key, data, sessionTTL).SetVal("OK")

			// Act
			err = repo.SaveCart(ctx, cart)

			// Assert
			require.NoError(t, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run("Failure - Redis error", func(t *testing.T) {
			// Arrange
			repo, mock := setupCartRepoTest(t)
			cart := sampleCart(sessionID)
			data, err := json.Marshal(cart)
			require.NoError(t, err)
			redisErr := errors.New("READONLY replica")

			mock.ExpectSet(key, data, sessionTTL).SetErr(redisErr)

			// Act
			err = repo.SaveCart(ctx, cart)

			// Assert
			require.Error(t, err)
			assert.ErrorIs(t, err, redisErr)
			assert.Contains(t, err.Error(), "saving cart")
		})
	})

	t.Run("DeleteCart", func(t *testing.T) {
		t.Run("Success", func(t *testing.T) {
			// Arrange
			repo, mock := setupCartRepoTest(t)
			mock.ExpectDel(key).SetVal(1)

			// Act
			err := repo.DeleteCart(ctx, sessionID)

			// Assert
			require.NoError(t, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run("Failure - Redis error", func(t *testing.T) {
			// Arrange
			repo, mock := setupCartRepoTest(t)
			redisErr := errors.New("connection refused")
			mock.ExpectDel(key).SetErr(redisErr)

			// Act
			err := repo.DeleteCart(ctx, sessionID)

			// Assert
			require.Error(t, err)
			assert.ErrorIs(t, err, redisErr)
		})
	})
}
