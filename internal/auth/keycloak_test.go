package auth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/MicahParks/jwkset"
	"github.com/golang-jwt/jwt/v5"
)

type staticKeyfunc struct {
	secret []byte
}

func (s staticKeyfunc) Keyfunc(_ *jwt.Token) (any, error) {
	return s.secret, nil
}

func (s staticKeyfunc) KeyfuncCtx(_ context.Context) jwt.Keyfunc {
	return s.Keyfunc
}

func (s staticKeyfunc) Storage() jwkset.Storage {
	return nil
}

func (s staticKeyfunc) VerificationKeySet(_ context.Context) (jwt.VerificationKeySet, error) {
	return jwt.VerificationKeySet{}, nil
}

func signToken(t *testing.T, claims jwt.MapClaims, secret []byte) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(secret)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	return signed
}

func makeClaims(issuer string, audience any) jwt.MapClaims {
	now := time.Now()
	return jwt.MapClaims{
		"iss":                issuer,
		"sub":                "user-1",
		"preferred_username": "alice",
		"aud":                audience,
		"iat":                now.Unix(),
		"exp":                now.Add(time.Hour).Unix(),
	}
}

func TestKeycloakAuthenticatorRejectsWrongAudience(t *testing.T) {
	authenticator := &keycloakAuthenticator{
		issuer:   "http://keycloak.local/realms/netregistry",
		audience: "netregistry-api",
		jwks:     staticKeyfunc{secret: []byte("test-secret")},
	}

	token := signToken(t, makeClaims("http://keycloak.local/realms/netregistry", []string{"other-api"}), []byte("test-secret"))
	_, err := authenticator.Authenticate(context.Background(), token)
	if err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestKeycloakAuthenticatorReturnsPrincipal(t *testing.T) {
	authenticator := &keycloakAuthenticator{
		issuer:   "http://keycloak.local/realms/netregistry",
		audience: "netregistry-api",
		jwks:     staticKeyfunc{secret: []byte("test-secret")},
	}

	token := signToken(t, makeClaims("http://keycloak.local/realms/netregistry", []string{"netregistry-api"}), []byte("test-secret"))
	principal, err := authenticator.Authenticate(context.Background(), token)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if principal.Issuer != "http://keycloak.local/realms/netregistry" {
		t.Fatalf("unexpected issuer: %v", principal.Issuer)
	}
	if principal.Subject != "user-1" {
		t.Fatalf("unexpected subject: %v", principal.Subject)
	}
	if principal.Name() != "alice" {
		t.Fatalf("unexpected name: %v", principal.Name())
	}
}

func TestKeycloakAuthenticatorCollectsRoles(t *testing.T) {
	authenticator := &keycloakAuthenticator{
		issuer:   "http://keycloak.local/realms/netregistry",
		audience: "netregistry-api",
		jwks:     staticKeyfunc{secret: []byte("test-secret")},
	}

	claims := makeClaims("http://keycloak.local/realms/netregistry", []string{"netregistry-api"})
	claims["realm_access"] = map[string]any{"roles": []string{"offline_access", "network-admin"}}
	claims["resource_access"] = map[string]any{
		"netregistry-api": map[string]any{"roles": []string{"network-admin", "reader"}},
		"other-client":    map[string]any{"roles": []string{"superuser"}},
	}

	principal, err := authenticator.Authenticate(context.Background(), signToken(t, claims, []byte("test-secret")))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !slices.Equal(principal.Roles, []string{"network-admin", "offline_access", "reader"}) {
		t.Fatalf("unexpected roles: %v", principal.Roles)
	}
	if !principal.CanModify("network-admin") || principal.CanModify("superuser") {
		t.Fatalf("unexpected write access for roles %v", principal.Roles)
	}
}

func TestPrincipalCanModifyWithoutAdminRole(t *testing.T) {
	if !(Principal{Subject: "user-1"}).CanModify("") {
		t.Fatal("expected write access when no admin role is configured")
	}
	if (Principal{Subject: "user-1"}).CanModify("network-admin") {
		t.Fatal("expected no write access without the admin role")
	}
}

func TestKeycloakAuthenticatorRejectsExpiredAndForeignTokens(t *testing.T) {
	authenticator := &keycloakAuthenticator{
		issuer:   "http://keycloak.local/realms/netregistry",
		audience: "netregistry-api",
		jwks:     staticKeyfunc{secret: []byte("test-secret")},
	}

	expired := makeClaims("http://keycloak.local/realms/netregistry", []string{"netregistry-api"})
	expired["exp"] = time.Now().Add(-time.Hour).Unix()
	noExpiry := makeClaims("http://keycloak.local/realms/netregistry", []string{"netregistry-api"})
	delete(noExpiry, "exp")

	tokens := map[string]string{
		"expired":      signToken(t, expired, []byte("test-secret")),
		"no expiry":    signToken(t, noExpiry, []byte("test-secret")),
		"wrong issuer": signToken(t, makeClaims("http://other.local/realms/x", []string{"netregistry-api"}), []byte("test-secret")),
		"wrong key":    signToken(t, makeClaims("http://keycloak.local/realms/netregistry", []string{"netregistry-api"}), []byte("other-secret")),
		"garbage":      "not-a-token",
	}
	for name, token := range tokens {
		if _, err := authenticator.Authenticate(context.Background(), token); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("%s: expected ErrInvalidToken, got %v", name, err)
		}
	}
}

func TestPrincipalNameFallsBackToSubject(t *testing.T) {
	if got := (Principal{Subject: "user-1"}).Name(); got != "user-1" {
		t.Fatalf("expected subject, got %q", got)
	}
}

func TestPrincipalContextRoundTrip(t *testing.T) {
	ctx := WithPrincipal(context.Background(), Principal{Subject: "user-1"})
	principal, ok := PrincipalFromContext(ctx)
	if !ok || principal.Subject != "user-1" {
		t.Fatalf("unexpected principal: %+v %v", principal, ok)
	}
	if _, ok := PrincipalFromContext(context.Background()); ok {
		t.Fatal("expected no principal in empty context")
	}
}

func TestNewKeycloakAuthenticatorDisabled(t *testing.T) {
	authenticator, err := NewKeycloakAuthenticator(context.Background(), Config{})
	if err != nil || authenticator != nil {
		t.Fatalf("expected nil authenticator, got %v %v", authenticator, err)
	}
	if _, err := NewKeycloakAuthenticator(context.Background(), Config{Enabled: true}); err == nil {
		t.Fatal("expected error for missing issuer")
	}
}

func TestNewKeycloakAuthenticatorFailsWhenJWKSUnavailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/certs" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("no jwks"))
	}))
	defer server.Close()

	_, err := NewKeycloakAuthenticator(context.Background(), Config{
		Enabled:  true,
		Issuer:   "http://keycloak.local/realms/netregistry",
		JWKSURL:  server.URL + "/certs",
		Audience: "netregistry-api",
	})
	if err == nil {
		t.Fatal("expected error when jwks endpoint is unavailable")
	}
	if !strings.Contains(err.Error(), "jwks endpoint returned 502") {
		t.Fatalf("unexpected error: %v", err)
	}
}
