package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/weblarek/storefront/internal/config"
)

func TestAPIKeyAuth(t *testing.T) {
	cfg := config.AuthConfig{APIKeys: []string{"apitest", "secondkey"}}

	handler := APIKeyAuth(cfg)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	tests := []struct {
		name     string
		apiKey   string
		wantCode int
	}{
		{"valid key", "apitest", http.StatusOK},
		{"second valid key", "secondkey", http.StatusOK},
		{"missing key", "", http.StatusUnauthorized},
		{"invalid key", "wrong", http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/order", nil)
			if tt.apiKey != "" {
				req.Header.Set("api_key", tt.apiKey)
			}
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			if w.Code != tt.wantCode {
				t.Errorf("expected status %d, got %d", tt.wantCode, w.Code)
			}
		})
	}
}
