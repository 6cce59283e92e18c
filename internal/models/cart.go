package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MaxLineQuantity caps the quantity of a single cart line. The request
// validation tags below repeat the value.
const MaxLineQuantity = 999

// LineKey identifies a cart line. An empty Color means "no color".
type LineKey struct {
	ProductID uuid.UUID
	Size      string
	Color     string
}

func (k LineKey) String() string {
	color := k.Color
	if color == "" {
		color = "default"
	}

	return fmt.Sprintf("%s-%s-%s", k.ProductID, k.Size, color)
}

type ProductSnapshot struct {
	ID        uuid.UUID       `json:"id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	ImageURL  string          `json:"image_url,omitempty"`
}

type CartItem struct {
	Product   ProductSnapshot `json:"product"`
	Size      string          `json:"size"`
	Color     string          `json:"color,omitempty"`
	Quantity  int             `json:"quantity"`
	LineTotal decimal.Decimal `json:"line_total"`
}

func (i CartItem) Key() LineKey {
	return LineKey{ProductID: i.Product.ID, Size: i.Size, Color: i.Color}
}

type Cart struct {
	SessionID string          `json:"session_id"`
	Items     []CartItem      `json:"items"`
	ItemCount int             `json:"item_count"`
	Total     decimal.Decimal `json:"total"`
	UpdatedAt time.Time       `json:"updated_at"`
}

type CheckoutSummary struct {
	Items        []CartItem      `json:"items"`
	ItemCount    int             `json:"item_count"`
	Subtotal     decimal.Decimal `json:"subtotal"`
	Currency     string          `json:"currency"`
	DisplayTotal string          `json:"display_total"`
}

type AddItemRequest struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	Size      string    `json:"size"       validate:"required,max=16"`
	Quantity  int       `json:"quantity"   validate:"max=999"`
	Color     string    `json:"color"      validate:"omitempty,max=32"`
}

type UpdateQuantityRequest struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	Size      string    `json:"size"       validate:"required,max=16"`
	Quantity  int       `json:"quantity"   validate:"max=999"`
	Color     string    `json:"color"      validate:"omitempty,max=32"`
}

type RemoveItemRequest struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	Size      string    `json:"size"       validate:"required,max=16"`
	Color     string    `json:"color"      validate:"omitempty,max=32"`
}
