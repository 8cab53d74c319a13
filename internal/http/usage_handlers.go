package http

import (
	"net/http"
	"strconv"

	"github.com/Flarenzy/netregistry/internal/domain"
)

// networkUsage resolves the usage of the network named by the id path
// value. It reports false after writing an error response.
func (a *API) networkUsage(w http.ResponseWriter, r *http.Request) (*domain.Usage, bool) {
	id, err := parsePathInt64(r, "id")
	if err != nil {
		a.respondError(w, r, "parsing network id", err)
		return nil, false
	}
	usage, err := a.service.NetworkUsage(r.Context(), id)
	if err != nil {
		a.respondError(w, r, "computing network usage", err)
		return nil, false
	}
	return usage, true
}

// listLimit reads the optional limit query value, bounded by the
// configured maximum. It reports false after writing an error response.
func (a *API) listLimit(w http.ResponseWriter, r *http.Request) (int, bool) {
	limit := a.unusedListLimit()
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			a.respondError(w, r, "parsing limit", badRequest("limit %q", raw))
			return 0, false
		}
		limit = min(n, limit)
	}
	return limit, true
}

// @Summary Number of used addresses
// @Tags usage
// @Produce json
// @Param id path int true "Network ID"
// @Success 200 {object} UsedCountResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/networks/{id}/used_count [get]
func (a *API) handleUsedCount(w http.ResponseWriter, r *http.Request) {
	usage, ok := a.networkUsage(w, r)
	if !ok {
		return
	}
	a.respond(w, r, http.StatusOK, UsedCountResponse{
		Network:   usage.Network().Prefix.String(),
		UsedCount: usage.UsedCount(),
	})
}

// @Summary Used addresses
// @Tags usage
// @Produce json
// @Param id path int true "Network ID"
// @Success 200 {array} string
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/networks/{id}/used_list [get]
func (a *API) handleUsedList(w http.ResponseWriter, r *http.Request) {
	usage, ok := a.networkUsage(w, r)
	if !ok {
		return
	}
	a.respond(w, r, http.StatusOK, addrStrings(usage.UsedList()))
}

// @Summary Number of unused addresses
// @Tags usage
// @Produce json
// @Param id path int true "Network ID"
// @Success 200 {object} UnusedCountResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/networks/{id}/unused_count [get]
func (a *API) handleUnusedCount(w http.ResponseWriter, r *http.Request) {
	usage, ok := a.networkUsage(w, r)
	if !ok {
		return
	}
	a.respond(w, r, http.StatusOK, UnusedCountResponse{
		Network:     usage.Network().Prefix.String(),
		UnusedCount: usage.UnusedCount().String(),
	})
}

// @Summary Unused addresses
// @Description Returns unused addresses in ascending order, at most limit of them.
// @Tags usage
// @Produce json
// @Param id path int true "Network ID"
// @Param limit query int false "Maximum number of addresses"
// @Success 200 {array} string
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/networks/{id}/unused_list [get]
func (a *API) handleUnusedList(w http.ResponseWriter, r *http.Request) {
	limit, ok := a.listLimit(w, r)
	if !ok {
		return
	}

	usage, ok := a.networkUsage(w, r)
	if !ok {
		return
	}
	a.respond(w, r, http.StatusOK, addrStrings(usage.UnusedList(limit)))
}

// @Summary First unused address
// @Tags usage
// @Produce json
// @Param id path int true "Network ID"
// @Success 200 {object} FirstUnusedResponse
// @Failure 404 {object} ErrorResponse "network not found or full"
// @Router /api/v1/networks/{id}/first_unused [get]
func (a *API) handleFirstUnused(w http.ResponseWriter, r *http.Request) {
	usage, ok := a.networkUsage(w, r)
	if !ok {
		return
	}
	addr, err := usage.FirstUnused()
	if err != nil {
		a.respondError(w, r, "finding first unused address", err)
		return
	}
	a.respond(w, r, http.StatusOK, FirstUnusedResponse{IP: addr.String()})
}

// @Summary Reserved addresses
// @Description Returns reserved addresses in ascending order, at most limit of them.
// @Tags usage
// @Produce json
// @Param id path int true "Network ID"
// @Param limit query int false "Maximum number of addresses"
// @Success 200 {array} string
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/networks/{id}/reserved_list [get]
func (a *API) handleReservedList(w http.ResponseWriter, r *http.Request) {
	limit, ok := a.listLimit(w, r)
	if !ok {
		return
	}

	usage, ok := a.networkUsage(w, r)
	if !ok {
		return
	}
	a.respond(w, r, http.StatusOK, addrStrings(usage.ReservedList(limit)))
}

// @Summary Hosts bound to each used address
// @Tags usage
// @Produce json
// @Param id path int true "Network ID"
// @Success 200 {object} map[string][]string
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/networks/{id}/used_host_list [get]
func (a *API) handleUsedHostList(w http.ResponseWriter, r *http.Request) {
	usage, ok := a.networkUsage(w, r)
	if !ok {
		return
	}
	a.respond(w, r, http.StatusOK, UsedHostList(usage.UsedHostList()))
}

// @Summary Addresses with a PTR override
// @Tags usage
// @Produce json
// @Param id path int true "Network ID"
// @Success 200 {array} string
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/networks/{id}/ptroverride_list [get]
func (a *API) handlePtrOverrideList(w http.ResponseWriter, r *http.Request) {
	usage, ok := a.networkUsage(w, r)
	if !ok {
		return
	}
	a.respond(w, r, http.StatusOK, addrStrings(usage.PtrOverrideList()))
}

// @Summary PTR override host of each address
// @Tags usage
// @Produce json
// @Param id path int true "Network ID"
// @Success 200 {object} map[string]PtrOverrideHost
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/networks/{id}/ptroverride_host_list [get]
func (a *API) handlePtrOverrideHostList(w http.ResponseWriter, r *http.Request) {
	usage, ok := a.networkUsage(w, r)
	if !ok {
		return
	}
	a.respond(w, r, http.StatusOK, PtrOverrideHostList(usage.PtrOverrideHostList()))
}
