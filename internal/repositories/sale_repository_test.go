package repository_test

import (
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	repository "github.com/aaravmahajanofficial/storefront-cart/internal/repositories"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var saleColumns = []string{"id", "product_id", "is_active", "start_date", "end_date", "original_price", "sale_price", "sale_title", "sale_description"}

func TestListCandidateSales(t *testing.T) {
	ctx := t.Context()
	now := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)
	expectedSQL := regexp.QuoteMeta(`FROM sales WHERE is_active = true AND end_date >= $1 ORDER BY created_at, id`)

	setup := func(t *testing.T) (repository.SaleRepository, sqlmock.Sqlmock) {
		t.Helper()

		db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
		require.NoError(t, err, "Failed to create sqlmock")
		t.Cleanup(func() { db.Close() })

		return repository.NewSaleRepo(db), mock
	}

	t.Run("Success - Feed order kept and nullable columns tolerated", func(t *testing.T) {
		// Arrange
		repo, mock := setup(t)
		saleID1, saleID2 := uuid.New(), uuid.New()
		productID := uuid.New()
		start := now.Add(-time.Hour)
		end := now.Add(24 * time.Hour)

		mock.ExpectQuery(expectedSQL).
			WithArgs(now).
			WillReturnRows(sqlmock.NewRows(saleColumns).
				AddRow(saleID1.String(), productID.String(), true, start, end, "1000", "750", "Race week", "Up to 25% off").
				AddRow(saleID2.String(), productID.String(), true, nil, end, nil, nil, nil, nil))

		// Act
		sales, err := repo.ListCandidateSales(ctx, now)

		// Assert
		require.NoError(t, err)
		require.Len(t, sales, 2)
		assert.Equal(t, saleID1, sales[0].ID)
		assert.Equal(t, productID, sales[0].ProductID)
		assert.Equal(t, start, sales[0].StartDate)
		assert.Equal(t, end, sales[0].EndDate)
		assert.True(t, sales[0].SalePrice.Valid)
		assert.True(t, decimal.NewFromInt(750).Equal(sales[0].SalePrice.Decimal))
		assert.True(t, decimal.NewFromInt(1000).Equal(sales[0].OriginalPrice.Decimal))
		assert.Equal(t, "Race week", sales[0].Title)
		assert.Equal(t, saleID2, sales[1].ID)
		assert.True(t, sales[1].StartDate.IsZero())
		assert.False(t, sales[1].SalePrice.Valid)
		assert.Empty(t, sales[1].Title)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success - Sales without product are skipped", func(t *testing.T) {
		// Arrange
		repo, mock := setup(t)

		mock.ExpectQuery(expectedSQL).
			WithArgs(now).
			WillReturnRows(sqlmock.NewRows(saleColumns).
				AddRow(uuid.NewString(), nil, true, now, now.Add(time.Hour), "10", "5", "t", "d"))

		// Act
		sales, err := repo.ListCandidateSales(ctx, now)

		// Assert
		require.NoError(t, err)
		assert.Empty(t, sales)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Query error", func(t *testing.T) {
		// Arrange
		repo, mock := setup(t)
		dbError := errors.New("relation \"sales\" does not exist")

		mock.ExpectQuery(expectedSQL).WithArgs(now).WillReturnError(dbError)

		// Act
		sales, err := repo.ListCandidateSales(ctx, now)

		// Assert
		require.Error(t, err)
		assert.Nil(t, sales)
		assert.ErrorIs(t, err, dbError)
		assert.Contains(t, err.Error(), "querying sales")
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
