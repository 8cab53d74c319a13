package http

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Flarenzy/netregistry/internal/auth"
)

type stubAuthenticator struct {
	tokens map[string]auth.Principal
}

func (s stubAuthenticator) Authenticate(_ context.Context, token string) (auth.Principal, error) {
	principal, ok := s.tokens[token]
	if !ok {
		return auth.Principal{}, auth.ErrInvalidToken
	}
	return principal, nil
}

func newTestAPI(opts ...Option) *API {
	return NewAPI(
		slog.New(slog.NewTextHandler(io.Discard, nil)),
		stubHealthChecker{},
		stubService{},
		stubAuthenticator{tokens: map[string]auth.Principal{
			"good-token":  {Issuer: "http://keycloak.local/realms/netregistry", Subject: "user-1", Username: "alice"},
			"admin-token": {Issuer: "http://keycloak.local/realms/netregistry", Subject: "user-2", Username: "bob", Roles: []string{"network-admin"}},
		}},
		opts...,
	)
}

func runMiddleware(api *API, path, authz string, next http.HandlerFunc) *httptest.ResponseRecorder {
	return runMiddlewareMethod(api, http.MethodGet, path, authz, next)
}

func runMiddlewareMethod(api *API, method, path, authz string, next http.HandlerFunc) *httptest.ResponseRecorder {
	handler := api.authMiddleware(next)
	req := httptest.NewRequest(method, path, nil)
	if authz != "" {
		req.Header.Set("Authorization", authz)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func noContent(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

func TestAuthMiddlewareAllowsHealthzWithoutToken(t *testing.T) {
	called := false
	rec := runMiddleware(newTestAPI(), "/healthz", "", func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusNoContent)
	})

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected %d, got %d", http.StatusNoContent, rec.Code)
	}
	if !called {
		t.Fatal("expected downstream handler to be called")
	}
}

func TestAuthMiddlewareAllowsSwaggerWithoutToken(t *testing.T) {
	rec := runMiddleware(newTestAPI(), "/swagger/index.html", "", noContent)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected %d, got %d", http.StatusNoContent, rec.Code)
	}
}

func TestAuthMiddlewareRejectsMissingToken(t *testing.T) {
	rec := runMiddleware(newTestAPI(), "/api/v1/networks", "", noContent)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected %d, got %d", http.StatusUnauthorized, rec.Code)
	}
}

func TestAuthMiddlewareRejectsNonBearerScheme(t *testing.T) {
	rec := runMiddleware(newTestAPI(), "/api/v1/networks", "Basic Zm9vOmJhcg==", noContent)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected %d, got %d", http.StatusUnauthorized, rec.Code)
	}
}

func TestAuthMiddlewareRejectsInvalidToken(t *testing.T) {
	rec := runMiddleware(newTestAPI(), "/api/v1/networks", "Bearer not-a-jwt", noContent)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected %d, got %d", http.StatusUnauthorized, rec.Code)
	}
}

func TestAuthMiddlewareAllowsValidToken(t *testing.T) {
	called := false
	rec := runMiddleware(newTestAPI(), "/api/v1/networks", "Bearer good-token", func(w http.ResponseWriter, r *http.Request) {
		called = true
		principal, ok := auth.PrincipalFromContext(r.Context())
		if !ok {
			t.Fatal("expected principal in context")
		}
		if principal.Name() != "alice" {
			t.Fatalf("unexpected principal: %+v", principal)
		}
		w.WriteHeader(http.StatusNoContent)
	})

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected %d, got %d", http.StatusNoContent, rec.Code)
	}
	if !called {
		t.Fatal("expected downstream handler to be called")
	}
}

func TestRouterWithoutAuthenticatorSkipsAuth(t *testing.T) {
	rec := serve(newHandlerTestAPI(stubService{}, nil), http.MethodGet, "/api/v1/networks", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected %d, got %d", http.StatusOK, rec.Code)
	}
}

func TestAuthMiddlewareRequiresAdminRoleForWrites(t *testing.T) {
	api := newTestAPI(WithAdminRole("network-admin"))

	rec := runMiddlewareMethod(api, http.MethodGet, "/api/v1/networks", "Bearer good-token", noContent)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected reads without the role, got %d", rec.Code)
	}

	for _, method := range []string{http.MethodPost, http.MethodPatch, http.MethodDelete} {
		rec = runMiddlewareMethod(api, method, "/api/v1/networks/1", "Bearer good-token", noContent)
		if rec.Code != http.StatusForbidden {
			t.Fatalf("%s: expected %d, got %d", method, http.StatusForbidden, rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "network-admin") {
			t.Fatalf("%s: unexpected body %q", method, rec.Body.String())
		}

		rec = runMiddlewareMethod(api, method, "/api/v1/networks/1", "Bearer admin-token", noContent)
		if rec.Code != http.StatusNoContent {
			t.Fatalf("%s: expected admin write to pass, got %d", method, rec.Code)
		}
	}
}

func TestAuthMiddlewareAllowsWritesWithoutAdminRole(t *testing.T) {
	rec := runMiddlewareMethod(newTestAPI(), http.MethodPost, "/api/v1/networks", "Bearer good-token", noContent)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected %d, got %d", http.StatusNoContent, rec.Code)
	}
}
