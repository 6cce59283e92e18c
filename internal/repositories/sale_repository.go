package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/aaravmahajanofficial/storefront-cart/internal/models"
	"github.com/aaravmahajanofficial/storefront-cart/internal/utils"
	"github.com/google/uuid"
)

type SaleRepository interface {
	ListCandidateSales(ctx context.Context, now time.Time) ([]models.Sale, error)
}

type saleRepository struct {
	DB *sql.DB
}

func NewSaleRepo(db *sql.DB) SaleRepository {
	return &saleRepository{DB: db}
}

// ListCandidateSales returns active sales whose end date is not before now,
// in feed order. Sales without a product reference are skipped.
func (r *saleRepository) ListCandidateSales(ctx context.Context, now time.Time) ([]models.Sale, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT id, product_id, is_active, start_date, end_date,
		       original_price, sale_price, sale_title, sale_description
		FROM sales
		WHERE is_active = true AND end_date >= $1
		ORDER BY created_at, id
	`

	rows, err := r.DB.QueryContext(dbCtx, query, now)
	if err != nil {
		return nil, fmt.Errorf("querying sales: %w", err)
	}

	defer rows.Close()

	sales := make([]models.Sale, 0)

	for rows.Next() {
		var (
			sale        models.Sale
			productID   uuid.NullUUID
			startDate   sql.NullTime
			title       sql.NullString
			description sql.NullString
		)

		err := rows.Scan(&sale.ID, &productID, &sale.IsActive, &startDate, &sale.EndDate,
			&sale.OriginalPrice, &sale.SalePrice, &title, &description)
		if err != nil {
			return nil, fmt.Errorf("scanning sale: %w", err)
		}

		if !productID.Valid {
			continue
		}

		sale.ProductID = productID.UUID
		sale.StartDate = startDate.Time
		sale.Title = title.String
		sale.Description = description.String

		sales = append(sales, sale)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sales: %w", err)
	}

	return sales, nil
}
