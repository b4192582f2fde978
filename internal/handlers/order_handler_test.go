package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/weblarek/storefront/internal/models"
	"github.com/weblarek/storefront/internal/repository"
	"github.com/weblarek/storefront/internal/service"
	"github.com/weblarek/storefront/pkg/logger"
)

func newOrderRouter() chi.Router {
	repo := repository.NewInMemoryProductRepository()
	svc := service.NewOrderService(repo)
	log := logger.New("error")
	handler := NewOrderHandler(svc, log)

	r := chi.NewRouter()
	r.Post("/api/order", handler.CreateOrder)
	return r
}

func postOrder(t *testing.T, r chi.Router, body any) *httptest.ResponseRecorder {
	t.Helper()

	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("failed to marshal request: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/order", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateOrder_Success(t *testing.T) {
	r := newOrderRouter()

	w := postOrder(t, r, models.OrderRequest{
		Items:   []string{"p-001", "p-002"},
		Payment: "online",
		Address: "Spb, Nevsky 1",
		Email:   "a@b.co",
		Phone:   "+7 (123) 456-78-90",
		Total:   1200,
	})

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp models.OrderResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if resp.ID == "" {
		t.Error("expected a generated order ID")
	}

	if resp.Total != 1200 {
		t.Errorf("expected total 1200, got %v", resp.Total)
	}
}

func TestCreateOrder_Errors(t *testing.T) {
	r := newOrderRouter()

	base := models.OrderRequest{
		Items:   []string{"p-001"},
		Payment: "online",
		Address: "Spb, Nevsky 1",
		Email:   "a@b.co",
		Phone:   "+7 (123) 456-78-90",
		Total:   750,
	}

	tests := []struct {
		name     string
		mutate   func(req *models.OrderRequest)
		wantCode int
		wantMsg  string
	}{
		{
			name:     "empty order",
			mutate:   func(req *models.OrderRequest) { req.Items = nil },
			wantCode: http.StatusBadRequest,
			wantMsg:  "Order must contain at least one item",
		},
		{
			name:     "unknown product",
			mutate:   func(req *models.OrderRequest) { req.Items = []string{"p-999"} },
			wantCode: http.StatusBadRequest,
			wantMsg:  "Invalid product",
		},
		{
			name:     "total mismatch",
			mutate:   func(req *models.OrderRequest) { req.Total = 1 },
			wantCode: http.StatusBadRequest,
			wantMsg:  "Order total does not match item prices",
		},
		{
			name:     "unsupported payment",
			mutate:   func(req *models.OrderRequest) { req.Payment = "card" },
			wantCode: http.StatusBadRequest,
			wantMsg:  "Unsupported payment method",
		},
		{
			name:     "missing contacts",
			mutate:   func(req *models.OrderRequest) { req.Email = ""; req.Phone = "" },
			wantCode: http.StatusBadRequest,
			wantMsg:  "Address, email and phone are required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := base
			tt.mutate(&req)

			w := postOrder(t, r, req)

			if w.Code != tt.wantCode {
				t.Errorf("expected status %d, got %d", tt.wantCode, w.Code)
			}

			var response map[string]string
			if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
				t.Fatalf("failed to decode error response: %v", err)
			}
			if response["error"] != tt.wantMsg {
				t.Errorf("expected error message %q, got %q", tt.wantMsg, response["error"])
			}
		})
	}
}

func TestCreateOrder_InvalidJSON(t *testing.T) {
	r := newOrderRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/order", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", w.Code)
	}

	var response map[string]string
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode error response: %v", err)
	}
	if response["error"] != "Invalid request body" {
		t.Errorf("expected error message 'Invalid request body', got %q", response["error"])
	}
}
