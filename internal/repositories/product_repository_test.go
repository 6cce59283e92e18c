package repository_test

import (
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	repository "github.com/aaravmahajanofficial/storefront-cart/internal/repositories"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var productColumns = []string{"id", "name", "price", "image_url", "is_active"}

func setupProductRepoTest(t *testing.T) (repository.ProductRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err, "Failed to create sqlmock")

	t.Cleanup(func() {
		db.Close()
	})

	return repository.NewProductRepo(db), mock
}

func TestNewProductRepo(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := repository.NewProductRepo(db)
	assert.NotNil(t, repo, "NewProductRepo should return a non-nil repository")
}

func TestListActiveProducts(t *testing.T) {
	ctx := t.Context()

	t.Run("Success - No filter", func(t *testing.T) {
		// Arrange
		repo, mock := setupProductRepoTest(t)
		id1, id2 := uuid.New(), uuid.New()

		expectedSQL := regexp.QuoteMeta(`SELECT id, name, price, image_url, is_active FROM products WHERE is_active = true ORDER BY created_at, id`) + "$"

		mock.ExpectQuery(expectedSQL).
			WillReturnRows(sqlmock.NewRows(productColumns).
				AddRow(id1.String(), "Team Jacket", "1000.00", "https://cdn.example.com/jacket.png", true).
				AddRow(id2.String(), "Driver Cap", "350.50", nil, true))

		// Act
		products, err := repo.ListActiveProducts(ctx, repository.ProductFilter{})

		// Assert
		require.NoError(t, err)
		require.Len(t, products, 2)
		assert.Equal(t, id1, products[0].ID)
		assert.Equal(t, "Team Jacket", products[0].Name)
		assert.True(t, decimal.RequireFromString("1000").Equal(products[0].Price))
		assert.Equal(t, "https://cdn.example.com/jacket.png", products[0].ImageURL)
		assert.True(t, products[0].IsActive)
		assert.Equal(t, id2, products[1].ID)
		assert.Empty(t, products[1].ImageURL, "NULL image should map to an empty string")
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success - Id filter and limit", func(t *testing.T) {
		// Arrange
		repo, mock := setupProductRepoTest(t)
		id1, id2 := uuid.New(), uuid.New()

		expectedSQL := regexp.QuoteMeta(`WHERE is_active = true AND id = ANY($1::uuid[]) ORDER BY created_at, id LIMIT $2`)

		mock.ExpectQuery(expectedSQL).
			WithArgs(pq.Array([]string{id1.String(), id2.String()}), 8).
			WillReturnRows(sqlmock.NewRows(productColumns).
				AddRow(id2.String(), "Driver Cap", "350.50", "", true))

		// Act
		products, err := repo.ListActiveProducts(ctx, repository.ProductFilter{IDs: []uuid.UUID{id1, id2}, Limit: 8})

		// Assert
		require.NoError(t, err)
		require.Len(t, products, 1)
		assert.Equal(t, id2, products[0].ID)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success - Missing optional columns", func(t *testing.T) {
		// Arrange
		repo, mock := setupProductRepoTest(t)
		id := uuid.New()

		mock.ExpectQuery(regexp.QuoteMeta(`FROM products`)).
			WillReturnRows(sqlmock.NewRows(productColumns).AddRow(id.String(), nil, nil, nil, true))

		// Act
		products, err := repo.ListActiveProducts(ctx, repository.ProductFilter{})

		// Assert
		require.NoError(t, err)
		require.Len(t, products, 1)
		assert.Empty(t, products[0].Name)
		assert.True(t, products[0].Price.IsZero())
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success - Empty result", func(t *testing.T) {
		// Arrange
		repo, mock := setupProductRepoTest(t)

		mock.ExpectQuery(regexp.QuoteMeta(`FROM products`)).
			WillReturnRows(sqlmock.NewRows(productColumns))

		// Act
		products, err := repo.ListActiveProducts(ctx, repository.ProductFilter{})

		// Assert
		require.NoError(t, err)
		assert.NotNil(t, products)
		assert.Empty(t, products)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Query error", func(t *testing.T) {
		// Arrange
		repo, mock := setupProductRepoTest(t)
		dbError := errors.New("connection reset")

		mock.ExpectQuery(regexp.QuoteMeta(`FROM products`)).WillReturnError(dbError)

		// Act
		products, err := repo.ListActiveProducts(ctx, repository.ProductFilter{})

		// Assert
		require.Error(t, err)
		assert.Nil(t, products)
		assert.ErrorIs(t, err, dbError)
		assert.Contains(t, err.Error(), "querying products")
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Scan error", func(t *testing.T) {
		// Arrange
		repo, mock := setupProductRepoTest(t)

		mock.ExpectQuery(regexp.QuoteMeta(`FROM products`)).
			WillReturnRows(sqlmock.NewRows(productColumns).AddRow("not-a-uuid", "Cap", "10", nil, true))

		// Act
		products, err := repo.ListActiveProducts(ctx, repository.ProductFilter{})

		// Assert
		require.Error(t, err)
		assert.Nil(t, products)
		assert.Contains(t, err.Error(), "scanning product")
	})

	t.Run("Failure - Row iteration error", func(t *testing.T) {
		// Arrange
		repo, mock := setupProductRepoTest(t)
		rowErr := errors.New("stream interrupted")

		mock.ExpectQuery(regexp.QuoteMeta(`FROM products`)).
			WillReturnRows(sqlmock.NewRows(productColumns).
				AddRow(uuid.NewString(), "Cap", "10", nil, true).
				RowError(0, rowErr))

		// Act
		products, err := repo.ListActiveProducts(ctx, repository.ProductFilter{})

		// Assert
		require.Error(t, err)
		assert.Nil(t, products)
		assert.ErrorIs(t, err, rowErr)
	})
}
