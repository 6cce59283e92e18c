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
	"github.com/google/uuid"
)

type CatalogHandler struct {
	catalogService service.CatalogService
}

func NewCatalogHandler(catalogService service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// SalePreview godoc
//
//	@Summary		Products on sale
//	@Description	Up to eight active products that carry a current sale, priced at their effective price. When a feed is unavailable the list is empty and degraded is true.
//	@Tags			Catalog
//	@Produce		json
//	@Success		200	{object}	models.PricedProductList	"Priced products"
//	@Router			/sales [get]
func (h *CatalogHandler) SalePreview() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		list, err := h.catalogService.SalePreview(r.Context())
		if err != nil {
			writeCatalogError(w, r, err)
			return
		}

		response.Success(w, http.StatusOK, list)
	}
}

// ListProducts godoc
//
//	@Summary		Priced catalog
//	@Description	Active products with their effective price and sale info, optionally restricted to a comma separated id list. When a feed is unavailable the list is empty and degraded is true.
//	@Tags			Catalog
//	@Produce		json
//	@Param			ids	query		string						false	"Comma separated product ids (UUID)"
//	@Success		200	{object}	models.PricedProductList	"Priced products"
//	@Failure		400	{object}	response.ErrorResponse		"Malformed id"
//	@Router			/products [get]
func (h *CatalogHandler) ListProducts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		// a present but blank ids parameter is an empty filter, not "everything"
		var ids []uuid.UUID
		query := r.URL.Query()
		if query.Has("ids") {
			ids = []uuid.UUID{}
		}

		for _, raw := range utils.SplitIDs(query.Get("ids")) {
			id, err := uuid.Parse(raw)
			if err != nil {
				middleware.LoggerFromContext(r.Context()).Warn("Invalid product id", slog.String("id", raw))
				response.Error(w, errors.AddValidationError("ids", "must be a list of UUIDs"))
				return
			}
			ids = append(ids, id)
		}

		list, err := h.catalogService.ListProducts(r.Context(), ids)
		if err != nil {
			writeCatalogError(w, r, err)
			return
		}

		response.Success(w, http.StatusOK, list)
	}
}

// a failed feed degrades to an empty list rather than an error page
func writeCatalogError(w http.ResponseWriter, r *http.Request, err error) {

	if errors.IsFeedFailure(err) {
		middleware.LoggerFromContext(r.Context()).Warn("Serving degraded catalog", slog.String("error", err.Error()))
		response.Success(w, http.StatusOK, &models.PricedProductList{Products: []models.PricedProduct{}, Degraded: true})
		return
	}

	middleware.LoggerFromContext(r.Context()).Error("Failed to load catalog", slog.String("error", err.Error()))
	response.Error(w, err)
}
