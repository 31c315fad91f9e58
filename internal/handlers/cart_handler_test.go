package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ecoaction/ecopoints-backend/internal/cart"
	"github.com/ecoaction/ecopoints-backend/internal/repository"
	"github.com/ecoaction/ecopoints-backend/internal/service"
	"github.com/ecoaction/ecopoints-backend/pkg/logger"
	"github.com/go-chi/chi/v5"
)

func newCartRouter() (*chi.Mux, *cart.Cart) {
	repo := repository.NewInMemoryProductRepository()
	svc := service.NewProductService(repo)
	log := logger.New("error")
	shopCart := cart.New()
	handler := NewCartHandler(shopCart, svc, log)

	r := chi.NewRouter()
	r.Get("/api/cart", handler.GetCart)
	r.Post("/api/cart/items", handler.AddItem)
	r.Delete("/api/cart/items/{productId}", handler.RemoveItem)

	return r, shopCart
}

func TestGetCart_Empty(t *testing.T) {
	r, _ := newCartRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}

	var view CartResponse
	if err := json.NewDecoder(w.Body).Decode(&view); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if len(view.Items) != 0 {
		t.Errorf("expected empty cart, got %d items", len(view.Items))
	}
	if view.TotalPrice != 0 {
		t.Errorf("expected total price 0, got %d", view.TotalPrice)
	}
}

func TestAddItem(t *testing.T) {
	r, _ := newCartRouter()

	// Add the same product twice
	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/cart/items", strings.NewReader(`{"productId": 1}`))
		w := httptest.NewRecorder()

		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d", w.Code)
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var view CartResponse
	if err := json.NewDecoder(w.Body).Decode(&view); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if len(view.Items) != 1 {
		t.Fatalf("expected 1 cart entry, got %d", len(view.Items))
	}
	if view.Items[0].Quantity != 2 {
		t.Errorf("expected quantity 2, got %d", view.Items[0].Quantity)
	}
	if view.TotalPrice != 300 {
		t.Errorf("expected total price 300, got %d", view.TotalPrice)
	}
	if view.TotalItems != 2 {
		t.Errorf("expected total items 2, got %d", view.TotalItems)
	}
}

func TestAddItem_UnknownProduct(t *testing.T) {
	r, _ := newCartRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/cart/items", strings.NewReader(`{"productId": 999}`))
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", w.Code)
	}
}

func TestAddItem_InvalidBody(t *testing.T) {
	r, _ := newCartRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/cart/items", strings.NewReader(`{invalid`))
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", w.Code)
	}
}

func TestRemoveItem(t *testing.T) {
	r, shopCart := newCartRouter()

	repo := repository.NewInMemoryProductRepository()
	product, err := repo.GetByID(context.Background(), 1)
	if err != nil {
		t.Fatalf("GetByID() unexpected error = %v", err)
	}
	shopCart.Add(*product)

	req := httptest.NewRequest(http.MethodDelete, "/api/cart/items/1", nil)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}

	var view CartResponse
	if err := json.NewDecoder(w.Body).Decode(&view); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if len(view.Items) != 0 {
		t.Errorf("expected empty cart after remove, got %d items", len(view.Items))
	}
}
