// Package auth verifies bearer tokens issued by an OpenID Connect provider.
package auth

import (
	"context"
	"errors"
	"slices"
)

var (
	ErrInvalidToken = errors.New("invalid bearer token")
	ErrForbidden    = errors.New("missing required role")
)

type Config struct {
	Enabled  bool
	Issuer   string
	JWKSURL  string
	Audience string
}

type Authenticator interface {
	Authenticate(ctx context.Context, bearerToken string) (Principal, error)
}

// Principal is the verified identity behind a request.
type Principal struct {
	Issuer   string
	Subject  string
	Username string
	Audience any
	// Roles holds realm roles and the roles granted on the API client.
	Roles  []string
	Claims map[string]any
}

// Name identifies the principal in logs.
func (p Principal) Name() string {
	if p.Username != "" {
		return p.Username
	}
	return p.Subject
}

func (p Principal) HasRole(role string) bool {
	return slices.Contains(p.Roles, role)
}

// CanModify reports whether the principal may change networks, address
// records and PTR overrides. An empty adminRole grants every principal
// write access.
func (p Principal) CanModify(adminRole string) bool {
	return adminRole == "" || p.HasRole(adminRole)
}

type principalContextKey struct{}

func WithPrincipal(ctx context.Context, principal Principal) context.Context {
	return context.WithValue(ctx, principalContextKey{}, principal)
}

func PrincipalFromContext(ctx context.Context) (Principal, bool) {
	principal, ok := ctx.Value(principalContextKey{}).(Principal)
	return principal, ok
}
