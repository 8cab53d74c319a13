package http

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/Flarenzy/netregistry/internal/auth"
	"github.com/Flarenzy/netregistry/internal/domain"
	httpSwagger "github.com/swaggo/http-swagger"
)

// DefaultUnusedListLimit bounds unused_list responses when no limit is
// configured.
const DefaultUnusedListLimit = 4096

type HealthChecker interface {
	Ping(ctx context.Context) error
}

type API struct {
	Logger        *slog.Logger
	health        HealthChecker
	service       domain.NetworkService
	authenticator auth.Authenticator
	adminRole     string
	unusedLimit   int
}

type Option func(*API)

// WithUnusedListLimit caps how many addresses unused_list and
// reserved_list may return.
func WithUnusedListLimit(n int) Option {
	return func(a *API) {
		if n > 0 {
			a.unusedLimit = n
		}
	}
}

// WithAdminRole restricts registry changes to principals holding role.
func WithAdminRole(role string) Option {
	return func(a *API) {
		a.adminRole = role
	}
}

func NewAPI(logger *slog.Logger, health HealthChecker, service domain.NetworkService, authenticator auth.Authenticator, opts ...Option) *API {
	if logger == nil {
		logger = slog.Default()
	}
	a := &API{
		Logger:        logger,
		health:        health,
		service:       service,
		authenticator: authenticator,
		unusedLimit:   DefaultUnusedListLimit,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *API) Router() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", a.handleHealthz)
	mux.HandleFunc("GET /readyz", a.handleReadyz)
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	mux.HandleFunc("GET /api/v1/networks", a.handleListNetworks)
	mux.HandleFunc("POST /api/v1/networks", a.handleCreateNetwork)
	mux.HandleFunc("GET /api/v1/networks/{id}", a.handleGetNetwork)
	mux.HandleFunc("PATCH /api/v1/networks/{id}", a.handleUpdateNetwork)
	mux.HandleFunc("DELETE /api/v1/networks/{id}", a.handleDeleteNetwork)
	mux.HandleFunc("GET /api/v1/networks/{id}/addresses", a.handleListNetworkAddresses)
	mux.HandleFunc("POST /api/v1/networks/{id}/allocate", a.handleAllocateAddress)

	mux.HandleFunc("GET /api/v1/networks/{id}/used_count", a.handleUsedCount)
	mux.HandleFunc("GET /api/v1/networks/{id}/used_list", a.handleUsedList)
	mux.HandleFunc("GET /api/v1/networks/{id}/unused_count", a.handleUnusedCount)
	mux.HandleFunc("GET /api/v1/networks/{id}/unused_list", a.handleUnusedList)
	mux.HandleFunc("GET /api/v1/networks/{id}/first_unused", a.handleFirstUnused)
	mux.HandleFunc("GET /api/v1/networks/{id}/reserved_list", a.handleReservedList)
	mux.HandleFunc("GET /api/v1/networks/{id}/used_host_list", a.handleUsedHostList)
	mux.HandleFunc("GET /api/v1/networks/{id}/ptroverride_list", a.handlePtrOverrideList)
	mux.HandleFunc("GET /api/v1/networks/{id}/ptroverride_host_list", a.handlePtrOverrideHostList)

	mux.HandleFunc("GET /api/v1/prefixes/{addr}/{bits}", a.handleGetNetworkByPrefix)
	mux.HandleFunc("GET /api/v1/addresses/{ip}/network", a.handleFindNetworkByAddress)
	mux.HandleFunc("GET /api/v1/vlans/{vlan}/networks", a.handleListNetworksByVLAN)

	mux.HandleFunc("POST /api/v1/ipaddresses", a.handleCreateAddress)
	mux.HandleFunc("GET /api/v1/ipaddresses/{id}", a.handleGetAddress)
	mux.HandleFunc("PATCH /api/v1/ipaddresses/{id}", a.handleUpdateAddress)
	mux.HandleFunc("DELETE /api/v1/ipaddresses/{id}", a.handleDeleteAddress)

	mux.HandleFunc("POST /api/v1/ptroverrides", a.handleCreatePtrOverride)
	mux.HandleFunc("DELETE /api/v1/ptroverrides/{id}", a.handleDeletePtrOverride)

	return a.authMiddleware(mux)
}

func (a *API) unusedListLimit() int {
	if a.unusedLimit <= 0 {
		return DefaultUnusedListLimit
	}
	return a.unusedLimit
}
