package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/Flarenzy/netregistry/internal/auth"
	"github.com/Flarenzy/netregistry/internal/domain"
)

func encode[T any](w http.ResponseWriter, _ *http.Request, status int, v T) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}

func decode[T any](r *http.Request) (T, error) {
	var v T
	if err := json.NewDecoder(r.Body).Decode(&v); err != nil {
		return v, fmt.Errorf("decode json: %w", err)
	}
	return v, nil
}

func parsePathInt64(r *http.Request, name string) (int64, error) {
	raw := r.PathValue(name)
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q", domain.ErrInvalidInput, name, raw)
	}
	return v, nil
}

// statusFor maps a service error onto the HTTP status reported to clients.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrInvalidRange):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrNetworkFull):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrOverlap),
		errors.Is(err, domain.ErrInUse),
		errors.Is(err, domain.ErrMacConflict),
		errors.Is(err, domain.ErrConflict),
		errors.Is(err, domain.ErrFrozen):
		return http.StatusConflict
	case errors.Is(err, domain.ErrUnauthorized), errors.Is(err, auth.ErrInvalidToken):
		return http.StatusUnauthorized
	case errors.Is(err, auth.ErrForbidden):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// respondError logs err and writes it to the client. Internal errors are
// not exposed.
func (a *API) respondError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	ctx := r.Context()
	status := statusFor(err)
	body := ErrorResponse{Error: err.Error()}
	if status == http.StatusInternalServerError {
		a.Logger.ErrorContext(ctx, msg, "err", err.Error())
		body.Error = "internal server error"
	} else {
		a.Logger.InfoContext(ctx, msg, "status", status, "err", err.Error())
	}
	if err := encode(w, r, status, body); err != nil {
		a.Logger.ErrorContext(ctx, "responding to client", "err", err.Error())
	}
}

func (a *API) respond(w http.ResponseWriter, r *http.Request, status int, v any) {
	if err := encode(w, r, status, v); err != nil {
		a.Logger.ErrorContext(r.Context(), "responding to client", "err", err.Error())
	}
}

func badRequest(format string, args ...any) error {
	return fmt.Errorf("%w: %s", domain.ErrInvalidInput, fmt.Sprintf(format, args...))
}
