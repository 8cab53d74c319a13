package http

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/Flarenzy/netregistry/internal/auth"
)

func (a *API) authMiddleware(next http.Handler) http.Handler {
	if a.authenticator == nil {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/healthz" || r.URL.Path == "/readyz" || strings.HasPrefix(r.URL.Path, "/swagger/") {
			next.ServeHTTP(w, r)
			return
		}

		ctx := r.Context()
		authz := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(authz, "Bearer ")
		if !ok || token == "" {
			a.respond(w, r, http.StatusUnauthorized, ErrorResponse{Error: "missing token"})
			return
		}

		principal, err := a.authenticator.Authenticate(ctx, token)
		if err != nil {
			a.Logger.InfoContext(ctx, "rejected token", "path", r.URL.Path, "err", err)
			a.respond(w, r, http.StatusUnauthorized, ErrorResponse{Error: "invalid token"})
			return
		}

		r = r.WithContext(auth.WithPrincipal(ctx, principal))
		if modifiesRegistry(r.Method) && !principal.CanModify(a.adminRole) {
			a.respondError(w, r, "rejected write by "+principal.Name(), fmt.Errorf("%w %q", auth.ErrForbidden, a.adminRole))
			return
		}
		next.ServeHTTP(w, r)
	})
}

// modifiesRegistry reports whether method changes networks, address
// records or PTR overrides.
func modifiesRegistry(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return false
	}
	return true
}
