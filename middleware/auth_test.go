package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestAuthMiddlewareRejectsMissingToken(t *testing.T) {
	var reached bool
	handler := AuthMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
	}))

	tests := []struct {
		name    string
		headers map[string]string
	}{
		{"no authorization header", nil},
		{"upgrade header does not bypass auth", map[string]string{
			"Upgrade":    "websocket",
			"Connection": "Upgrade",
		}},
		{"malformed scheme", map[string]string{"Authorization": "Basic abc"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reached = false
			req := httptest.NewRequest("GET", "/api/tasks", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != http.StatusUnauthorized {
				t.Fatalf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
			}
			if reached {
				t.Fatal("unauthenticated request reached the protected handler")
			}
		})
	}
}

func TestRequireRole(t *testing.T) {
	tests := []struct {
		name     string
		role     string
		allowed  []string
		wantCode int
	}{
		{"allowed role", "hr", []string{"admin", "hr"}, http.StatusOK},
		{"case insensitive match", "HR", []string{"hr"}, http.StatusOK},
		{"disallowed role", "employee", []string{"admin", "hr"}, http.StatusForbidden},
		{"missing identity", "", []string{"admin"}, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := RequireRole(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			}, tt.allowed...)

			req := httptest.NewRequest("GET", "/", nil)
			if tt.role != "" {
				req = req.WithContext(context.WithValue(req.Context(), CtxUserRole, tt.role))
			}

			rec := httptest.NewRecorder()
			handler(rec, req)

			if rec.Code != tt.wantCode {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantCode)
			}
		})
	}
}
