package handlers

import (
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/storefront-cart/internal/api/middleware"
	"github.com/aaravmahajanofficial/storefront-cart/internal/errors"
	"github.com/aaravmahajanofficial/storefront-cart/internal/models"
	service "github.com/aaravmahajanofficial/storefront-cart/internal/services"
	"github.com/aaravmahajanofficial/storefront-cart/internal/utils"
	"github.com/aaravmahajanofficial/storefront-cart/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type CartHandler struct {
	cartService service.CartService
	validator   *validator.Validate
}

func NewCartHandler(cartService service.CartService) *CartHandler {
	return &CartHandler{cartService: cartService, validator: validator.New()}
}

// GetCart godoc
//
//	@Summary		Get the current cart
//	@Description	Returns the lines of the session's cart in insertion order with line totals, item count and total.
//	@Tags			Cart
//	@Produce		json
//	@Param			X-Session-ID	header		string					false	"Cart session id (UUID)"
//	@Success		200				{object}	models.Cart				"Cart snapshot"
//	@Failure		500				{object}	response.ErrorResponse	"Cart storage unavailable"
//	@Router			/cart [get]
func (h *CartHandler) GetCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		sessionID, ok := sessionOrFail(w, r)
		if !ok {
			return
		}

		cart, err := h.cartService.GetCart(r.Context(), sessionID)
		if err != nil {
			logger.Error("Failed to get cart", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, cart)
	}
}

// AddItem godoc
//
//	@Summary		Add a product to the cart
//	@Description	Merges into the line with the same product, size and color or appends a new line. The unit price is frozen at the product's current effective price. Quantities below 1 count as 1.
//	@Tags			Cart
//	@Accept			json
//	@Produce		json
//	@Param			X-Session-ID	header		string					false	"Cart session id (UUID)"
//	@Param			item			body		models.AddItemRequest	true	"Line to add"
//	@Success		200				{object}	models.Cart				"Updated cart"
//	@Failure		400				{object}	response.ErrorResponse	"Invalid request"
//	@Failure		404				{object}	response.ErrorResponse	"Product not found or inactive"
//	@Failure		503				{object}	response.ErrorResponse	"Catalog feed unavailable"
//	@Router			/cart/items [post]
func (h *CartHandler) AddItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		sessionID, ok := sessionOrFail(w, r)
		if !ok {
			return
		}

		var req models.AddItemRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid add item input")
			return
		}

		logger = logger.With(slog.String("productId", req.ProductID.String()), slog.String("size", req.Size))

		cart, err := h.cartService.AddItem(r.Context(), sessionID, &req)
		if err != nil {
			logger.Error("Failed to add item to cart", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Item added to cart", slog.Int("itemCount", cart.ItemCount))
		response.Success(w, http.StatusOK, cart)
	}
}

// UpdateQuantity godoc
//
//	@Summary		Set the quantity of a cart line
//	@Description	Sets the quantity of an existing line. A quantity of zero or less removes the line; an unknown line leaves the cart unchanged.
//	@Tags			Cart
//	@Accept			json
//	@Produce		json
//	@Param			X-Session-ID	header		string							false	"Cart session id (UUID)"
//	@Param			item			body		models.UpdateQuantityRequest	true	"Line and new quantity"
//	@Success		200				{object}	models.Cart						"Updated cart"
//	@Failure		400				{object}	response.ErrorResponse			"Invalid request"
//	@Router			/cart/items [patch]
func (h *CartHandler) UpdateQuantity() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		sessionID, ok := sessionOrFail(w, r)
		if !ok {
			return
		}

		var req models.UpdateQuantityRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid update quantity input")
			return
		}

		cart, err := h.cartService.UpdateQuantity(r.Context(), sessionID, &req)
		if err != nil {
			logger.Error("Failed to update cart quantity", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Cart quantity updated",
			slog.String("productId", req.ProductID.String()),
			slog.Int("quantity", req.Quantity),
		)
		response.Success(w, http.StatusOK, cart)
	}
}

// RemoveItem godoc
//
//	@Summary		Remove a cart line
//	@Description	Removes the line with the given product, size and color. Removing an absent line is a no-op.
//	@Tags			Cart
//	@Accept			json
//	@Produce		json
//	@Param			X-Session-ID	header		string						false	"Cart session id (UUID)"
//	@Param			item			body		models.RemoveItemRequest	true	"Line to remove"
//	@Success		200				{object}	models.Cart					"Updated cart"
//	@Failure		400				{object}	response.ErrorResponse		"Invalid request"
//	@Router			/cart/items [delete]
func (h *CartHandler) RemoveItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		sessionID, ok := sessionOrFail(w, r)
		if !ok {
			return
		}

		var req models.RemoveItemRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid remove item input")
			return
		}

		cart, err := h.cartService.RemoveItem(r.Context(), sessionID, &req)
		if err != nil {
			logger.Error("Failed to remove cart item", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, cart)
	}
}

// ClearCart godoc
//
//	@Summary		Empty the cart
//	@Tags			Cart
//	@Produce		json
//	@Param			X-Session-ID	header		string					false	"Cart session id (UUID)"
//	@Success		200				{object}	models.Cart				"Empty cart"
//	@Failure		500				{object}	response.ErrorResponse	"Cart storage unavailable"
//	@Router			/cart [delete]
func (h *CartHandler) ClearCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sessionID, ok := sessionOrFail(w, r)
		if !ok {
			return
		}

		cart, err := h.cartService.ClearCart(r.Context(), sessionID)
		if err != nil {
			middleware.LoggerFromContext(r.Context()).Error("Failed to clear cart", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, cart)
	}
}

// CheckoutSummary godoc
//
//	@Summary		Checkout summary
//	@Description	Lines, item count, subtotal and the display total rounded to two decimals in the store currency.
//	@Tags			Checkout
//	@Produce		json
//	@Param			X-Session-ID	header		string					false	"Cart session id (UUID)"
//	@Success		200				{object}	models.CheckoutSummary	"Summary"
//	@Failure		500				{object}	response.ErrorResponse	"Cart storage unavailable"
//	@Router			/cart/checkout [get]
func (h *CartHandler) CheckoutSummary() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sessionID, ok := sessionOrFail(w, r)
		if !ok {
			return
		}

		summary, err := h.cartService.CheckoutSummary(r.Context(), sessionID)
		if err != nil {
			middleware.LoggerFromContext(r.Context()).Error("Failed to build checkout summary", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, summary)
	}
}

// CompleteCheckout godoc
//
//	@Summary		Complete checkout
//	@Description	Called after the external checkout succeeded. Clears the cart.
//	@Tags			Checkout
//	@Produce		json
//	@Param			X-Session-ID	header		string					false	"Cart session id (UUID)"
//	@Success		200				{object}	models.Cart				"Empty cart"
//	@Failure		500				{object}	response.ErrorResponse	"Cart storage unavailable"
//	@Router			/cart/checkout/complete [post]
func (h *CartHandler) CompleteCheckout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sessionID, ok := sessionOrFail(w, r)
		if !ok {
			return
		}

		cart, err := h.cartService.CompleteCheckout(r.Context(), sessionID)
		if err != nil {
			middleware.LoggerFromContext(r.Context()).Error("Failed to complete checkout", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, cart)
	}
}

func sessionOrFail(w http.ResponseWriter, r *http.Request) (string, bool) {

	sessionID, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		middleware.LoggerFromContext(r.Context()).Warn("Cart request without session")
		response.Error(w, errors.BadRequestError("Cart session is required"))
		return "", false
	}

	return sessionID, true
}
