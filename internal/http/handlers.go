package http

import (
	"net/http"
	"net/netip"
)

// @Summary Health check
// @Tags health
// @Success 200 {string} string "ok"
// @Router /healthz [get]
func (a *API) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// @Summary Readiness check
// @Tags health
// @Success 200 {string} string "ready"
// @Failure 503 {string} string "db unavailable"
// @Router /readyz [get]
func (a *API) handleReadyz(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := a.health.Ping(ctx); err != nil {
		a.Logger.ErrorContext(ctx, "db ping failed", "err", err)
		http.Error(w, "db unavailable", http.StatusServiceUnavailable)
		return
	}

	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ready"))
}

// @Summary List networks
// @Tags networks
// @Produce json
// @Success 200 {array} NetworkResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/networks [get]
func (a *API) handleListNetworks(w http.ResponseWriter, r *http.Request) {
	networks, err := a.service.ListNetworks(r.Context())
	if err != nil {
		a.respondError(w, r, "listing networks", err)
		return
	}
	a.respond(w, r, http.StatusOK, networksToResponse(networks))
}

// @Summary Create network
// @Tags networks
// @Accept json
// @Produce json
// @Param network body CreateNetworkRequest true "Network payload"
// @Success 201 {object} NetworkResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/networks [post]
func (a *API) handleCreateNetwork(w http.ResponseWriter, r *http.Request) {
	req, err := decode[CreateNetworkRequest](r)
	defer r.Body.Close()
	if err != nil {
		a.respondError(w, r, "unmarshaling network from request", badRequest("%v", err))
		return
	}

	network, err := a.service.CreateNetwork(r.Context(), req.toInput())
	if err != nil {
		a.respondError(w, r, "creating network", err)
		return
	}
	a.respond(w, r, http.StatusCreated, networkToResponse(network))
}

// @Summary Get network
// @Tags networks
// @Produce json
// @Param id path int true "Network ID"
// @Success 200 {object} NetworkResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/networks/{id} [get]
func (a *API) handleGetNetwork(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathInt64(r, "id")
	if err != nil {
		a.respondError(w, r, "parsing network id", err)
		return
	}

	network, err := a.service.GetNetwork(r.Context(), id)
	if err != nil {
		a.respondError(w, r, "reading network", err)
		return
	}
	a.respond(w, r, http.StatusOK, networkToResponse(network))
}

// @Summary Update network
// @Tags networks
// @Accept json
// @Produce json
// @Param id path int true "Network ID"
// @Param network body UpdateNetworkRequest true "Fields to change"
// @Success 200 {object} NetworkResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/networks/{id} [patch]
func (a *API) handleUpdateNetwork(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathInt64(r, "id")
	if err != nil {
		a.respondError(w, r, "parsing network id", err)
		return
	}
	req, err := decode[UpdateNetworkRequest](r)
	defer r.Body.Close()
	if err != nil {
		a.respondError(w, r, "unmarshaling network update from request", badRequest("%v", err))
		return
	}

	network, err := a.service.UpdateNetwork(r.Context(), id, req.toInput())
	if err != nil {
		a.respondError(w, r, "updating network", err)
		return
	}
	a.respond(w, r, http.StatusOK, networkToResponse(network))
}

// @Summary Delete network
// @Tags networks
// @Param id path int true "Network ID"
// @Success 204
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/networks/{id} [delete]
func (a *API) handleDeleteNetwork(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathInt64(r, "id")
	if err != nil {
		a.respondError(w, r, "parsing network id", err)
		return
	}

	if err := a.service.DeleteNetwork(r.Context(), id); err != nil {
		a.respondError(w, r, "deleting network", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// @Summary Get network by prefix
// @Tags networks
// @Produce json
// @Param addr path string true "Network address" example(10.0.0.0)
// @Param bits path int true "Prefix length" example(24)
// @Success 200 {object} NetworkResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/prefixes/{addr}/{bits} [get]
func (a *API) handleGetNetworkByPrefix(w http.ResponseWriter, r *http.Request) {
	prefix := r.PathValue("addr") + "/" + r.PathValue("bits")
	network, err := a.service.GetNetworkByPrefix(r.Context(), prefix)
	if err != nil {
		a.respondError(w, r, "reading network by prefix", err)
		return
	}
	a.respond(w, r, http.StatusOK, networkToResponse(network))
}

// @Summary Find the network containing an address
// @Tags networks
// @Produce json
// @Param ip path string true "IP address" example(10.0.0.10)
// @Success 200 {object} NetworkResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/addresses/{ip}/network [get]
func (a *API) handleFindNetworkByAddress(w http.ResponseWriter, r *http.Request) {
	network, err := a.service.FindNetworkByAddress(r.Context(), r.PathValue("ip"))
	if err != nil {
		a.respondError(w, r, "finding network by address", err)
		return
	}
	a.respond(w, r, http.StatusOK, networkToResponse(network))
}

// @Summary List networks on a VLAN
// @Tags networks
// @Produce json
// @Param vlan path int true "VLAN ID"
// @Success 200 {array} NetworkResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/vlans/{vlan}/networks [get]
func (a *API) handleListNetworksByVLAN(w http.ResponseWriter, r *http.Request) {
	vlan, err := parsePathInt64(r, "vlan")
	if err != nil {
		a.respondError(w, r, "parsing vlan", err)
		return
	}

	networks, err := a.service.ListNetworksByVLAN(r.Context(), vlan)
	if err != nil {
		a.respondError(w, r, "listing networks by vlan", err)
		return
	}
	a.respond(w, r, http.StatusOK, networksToResponse(networks))
}

func addrStrings(addrs []netip.Addr) []string {
	out := make([]string, 0, len(addrs))
	for _, addr := range addrs {
		out = append(out, addr.String())
	}
	return out
}
