package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/aaravmahajanofficial/storefront-cart/internal/models"
	"github.com/aaravmahajanofficial/storefront-cart/internal/utils"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// ProductFilter narrows the catalog query. A nil IDs slice means every
// active product; Limit <= 0 means no row limit.
type ProductFilter struct {
	IDs   []uuid.UUID
	Limit int
}

type ProductRepository interface {
	ListActiveProducts(ctx context.Context, filter ProductFilter) ([]models.Product, error)
}

type productRepository struct {
	DB *sql.DB
}

func NewProductRepo(db *sql.DB) ProductRepository {
	return &productRepository{DB: db}
}

func (r *productRepository) ListActiveProducts(ctx context.Context, filter ProductFilter) ([]models.Product, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	var query strings.Builder
	var args []any

	query.WriteString(`
		SELECT id, name, price, image_url, is_active
		FROM products
		WHERE is_active = true`)

	if filter.IDs != nil {
		ids := make([]string, len(filter.IDs))
		for i, id := range filter.IDs {
			ids[i] = id.String()
		}
		args = append(args, pq.Array(ids))
		fmt.Fprintf(&query, " AND id = ANY($%d::uuid[])", len(args))
	}

	query.WriteString(" ORDER BY created_at, id")

	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		fmt.Fprintf(&query, " LIMIT $%d", len(args))
	}

	rows, err := r.DB.QueryContext(dbCtx, query.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("querying products: %w", err)
	}

	defer rows.Close()

	products := make([]models.Product, 0)

	for rows.Next() {
		var (
			product  models.Product
			name     sql.NullString
			price    decimal.NullDecimal
			imageURL sql.NullString
		)

		if err := rows.Scan(&product.ID, &name, &price, &imageURL, &product.IsActive); err != nil {
			return nil, fmt.Errorf("scanning product: %w", err)
		}

		product.Name = name.String
		product.Price = price.Decimal
		product.ImageURL = imageURL.String

		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating products: %w", err)
	}

	return products, nil
}
