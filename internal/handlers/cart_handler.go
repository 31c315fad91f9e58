package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/ecoaction/ecopoints-backend/internal/cart"
	"github.com/ecoaction/ecopoints-backend/internal/models"
	"github.com/ecoaction/ecopoints-backend/internal/repository"
	"github.com/ecoaction/ecopoints-backend/internal/service"
	"github.com/go-chi/chi/v5"
)

// CartHandler handles cart-related HTTP requests
type CartHandler struct {
	cart     *cart.Cart
	products *service.ProductService
	logger   *slog.Logger
}

// NewCartHandler creates a new cart handler
func NewCartHandler(c *cart.Cart, products *service.ProductService, logger *slog.Logger) *CartHandler {
	return &CartHandler{
		cart:     c,
		products: products,
		logger:   logger,
	}
}

// AddItemRequest represents the body of an add-to-cart request
type AddItemRequest struct {
	ProductID int `json:"productId"`
}

// CartResponse is the cart view returned by every cart endpoint
type CartResponse struct {
	Items      []models.CartItem `json:"items"`
	TotalPrice int               `json:"totalPrice"`
	TotalItems int               `json:"totalItems"`
}

// GetCart handles GET /api/cart
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.cartView())
}

// AddItem handles POST /api/cart/items
// Adds one unit of the product to the cart:
// - 200: updated cart view
// - 400: invalid request body
// - 404: unknown product
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req AddItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("failed to decode add item request", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	product, err := h.products.GetProduct(r.Context(), req.ProductID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			h.logger.Info("product not found", "productId", req.ProductID)
			writeError(w, http.StatusNotFound, "Product not found")
			return
		}

		h.logger.Error("failed to get product", "productId", req.ProductID, "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	h.cart.Add(*product)
	h.logger.Info("item added to cart", "productId", product.ID, "total_items", h.cart.TotalItems())

	writeJSON(w, http.StatusOK, h.cartView())
}

// RemoveItem handles DELETE /api/cart/items/{productId}
// Removes one unit of the product; removing an absent product is a no-op.
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	productID, err := strconv.Atoi(chi.URLParam(r, "productId"))
	if err != nil {
		h.logger.Warn("invalid product ID format", "productId", chi.URLParam(r, "productId"), "error", err)
		writeError(w, http.StatusBadRequest, "Invalid ID supplied")
		return
	}

	h.cart.Remove(productID)

	writeJSON(w, http.StatusOK, h.cartView())
}

func (h *CartHandler) cartView() CartResponse {
	items := h.cart.Items()
	if items == nil {
		items = []models.CartItem{}
	}
	return CartResponse{
		Items:      items,
		TotalPrice: h.cart.TotalPrice(),
		TotalItems: h.cart.TotalItems(),
	}
}
