package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/Flarenzy/netregistry/internal/auth"
	appdb "github.com/Flarenzy/netregistry/internal/db"
	"github.com/Flarenzy/netregistry/internal/db/sqlite"
	"github.com/Flarenzy/netregistry/internal/domain"
	apihttp "github.com/Flarenzy/netregistry/internal/http"
)

// store is what the server needs from a backend: transactional
// repositories for the service and a ping for readiness.
type store interface {
	domain.Store
	Ping(ctx context.Context) error
}

func Run(ctx context.Context, cfg Config) error {
	listener, err := net.Listen("tcp", fmt.Sprintf(":%s", cfg.Port))
	if err != nil {
		return fmt.Errorf("listen on port %s: %w", cfg.Port, err)
	}
	defer listener.Close()

	return Serve(ctx, cfg, listener)
}

// Serve wires the application and serves HTTP on listener until ctx is
// cancelled.
func Serve(ctx context.Context, cfg Config, listener net.Listener) error {
	logger, err := newLogger(cfg, os.Stderr)
	if err != nil {
		return err
	}

	authenticator, err := newAuthenticator(ctx, cfg)
	if err != nil {
		return fmt.Errorf("configure auth: %w", err)
	}
	if authenticator != nil {
		logger.Info("auth enabled", "issuer", cfg.Issuer, "audience", cfg.Audience)
	}

	st, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()
	logger.Info("store ready", "driver", cfg.DBDriver)

	service := domain.NewLoggingNetworkService(logger, domain.NewNetworkService(st,
		domain.WithDefaultReserved(cfg.ReservedDefault),
		domain.WithZones(domain.NewZoneIndex(cfg.Zones)),
	))

	api := apihttp.NewAPI(logger, st, service, authenticator,
		apihttp.WithUnusedListLimit(cfg.UnusedListLimit),
		apihttp.WithAdminRole(cfg.AdminRole),
	)

	server := &http.Server{
		Handler:      api.Router(),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("serving", "addr", listener.Addr().String())
		if err := server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return server.Shutdown(shutdownCtx)
}

func newAuthenticator(ctx context.Context, cfg Config) (auth.Authenticator, error) {
	return auth.NewKeycloakAuthenticator(ctx, auth.Config{
		Enabled:  cfg.AuthEnabled,
		Issuer:   cfg.Issuer,
		JWKSURL:  cfg.JWKSURL,
		Audience: cfg.Audience,
	})
}

// openStore connects the configured backend and applies its migrations.
func openStore(ctx context.Context, cfg Config) (store, func(), error) {
	switch cfg.DBDriver {
	case DriverSQLite:
		st, err := sqlite.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return st, func() { _ = st.Close() }, nil
	case DriverPostgres, "":
		pool, err := appdb.NewPool(ctx, cfg.DSN)
		if err != nil {
			return nil, nil, err
		}
		if err := appdb.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, nil, err
		}
		return appdb.NewStore(pool), pool.Close, nil
	default:
		return nil, nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}
}
