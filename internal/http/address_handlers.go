package http

import (
	"net/http"

	"github.com/Flarenzy/netregistry/internal/domain"
)

// @Summary List address records of a network
// @Tags ipaddresses
// @Produce json
// @Param id path int true "Network ID"
// @Success 200 {array} AddressResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/networks/{id}/addresses [get]
func (a *API) handleListNetworkAddresses(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathInt64(r, "id")
	if err != nil {
		a.respondError(w, r, "parsing network id", err)
		return
	}

	records, err := a.service.ListAddresses(r.Context(), id)
	if err != nil {
		a.respondError(w, r, "listing addresses", err)
		return
	}
	a.respond(w, r, http.StatusOK, addressesToResponse(records))
}

// @Summary Allocate the first unused address of a network
// @Tags ipaddresses
// @Accept json
// @Produce json
// @Param id path int true "Network ID"
// @Param address body AllocateAddressRequest true "Host to bind"
// @Success 201 {object} AddressResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "network not found or full"
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/networks/{id}/allocate [post]
func (a *API) handleAllocateAddress(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathInt64(r, "id")
	if err != nil {
		a.respondError(w, r, "parsing network id", err)
		return
	}
	req, err := decode[AllocateAddressRequest](r)
	defer r.Body.Close()
	if err != nil {
		a.respondError(w, r, "unmarshaling allocation from request", badRequest("%v", err))
		return
	}

	record, err := a.service.AllocateAddress(r.Context(), id, domain.AllocateAddressInput{
		Host: req.Host,
		MAC:  req.MACAddress,
	})
	if err != nil {
		a.respondError(w, r, "allocating address", err)
		return
	}
	a.respond(w, r, http.StatusCreated, addressToResponse(record))
}

// @Summary Create address record
// @Tags ipaddresses
// @Accept json
// @Produce json
// @Param address body CreateAddressRequest true "Address payload"
// @Success 201 {object} AddressResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/ipaddresses [post]
func (a *API) handleCreateAddress(w http.ResponseWriter, r *http.Request) {
	req, err := decode[CreateAddressRequest](r)
	defer r.Body.Close()
	if err != nil {
		a.respondError(w, r, "unmarshaling address from request", badRequest("%v", err))
		return
	}

	record, err := a.service.CreateAddress(r.Context(), domain.CreateAddressInput{
		IP:   req.IP,
		Host: req.Host,
		MAC:  req.MACAddress,
	})
	if err != nil {
		a.respondError(w, r, "creating address", err)
		return
	}
	a.respond(w, r, http.StatusCreated, addressToResponse(record))
}

// @Summary Get address record
// @Tags ipaddresses
// @Produce json
// @Param id path string true "Address record ID"
// @Success 200 {object} AddressResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/ipaddresses/{id} [get]
func (a *API) handleGetAddress(w http.ResponseWriter, r *http.Request) {
	record, err := a.service.GetAddress(r.Context(), domain.AddressRecordID(r.PathValue("id")))
	if err != nil {
		a.respondError(w, r, "reading address", err)
		return
	}
	a.respond(w, r, http.StatusOK, addressToResponse(record))
}

// @Summary Update address record
// @Tags ipaddresses
// @Accept json
// @Produce json
// @Param id path string true "Address record ID"
// @Param address body UpdateAddressRequest true "Fields to change"
// @Success 200 {object} AddressResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/ipaddresses/{id} [patch]
func (a *API) handleUpdateAddress(w http.ResponseWriter, r *http.Request) {
	req, err := decode[UpdateAddressRequest](r)
	defer r.Body.Close()
	if err != nil {
		a.respondError(w, r, "unmarshaling address update from request", badRequest("%v", err))
		return
	}

	record, err := a.service.UpdateAddress(r.Context(), domain.AddressRecordID(r.PathValue("id")), domain.UpdateAddressInput{
		IP:   req.IP,
		Host: req.Host,
		MAC:  req.MACAddress,
	})
	if err != nil {
		a.respondError(w, r, "updating address", err)
		return
	}
	a.respond(w, r, http.StatusOK, addressToResponse(record))
}

// @Summary Delete address record
// @Tags ipaddresses
// @Param id path string true "Address record ID"
// @Success 204
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/ipaddresses/{id} [delete]
func (a *API) handleDeleteAddress(w http.ResponseWriter, r *http.Request) {
	if err := a.service.DeleteAddress(r.Context(), domain.AddressRecordID(r.PathValue("id"))); err != nil {
		a.respondError(w, r, "deleting address", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// @Summary Create PTR override
// @Tags ptroverrides
// @Accept json
// @Produce json
// @Param override body CreatePtrOverrideRequest true "Override payload"
// @Success 201 {object} PtrOverrideResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/ptroverrides [post]
func (a *API) handleCreatePtrOverride(w http.ResponseWriter, r *http.Request) {
	req, err := decode[CreatePtrOverrideRequest](r)
	defer r.Body.Close()
	if err != nil {
		a.respondError(w, r, "unmarshaling ptr override from request", badRequest("%v", err))
		return
	}

	override, err := a.service.CreatePtrOverride(r.Context(), domain.CreatePtrOverrideInput{
		IP:   req.IP,
		Host: req.Host,
	})
	if err != nil {
		a.respondError(w, r, "creating ptr override", err)
		return
	}
	a.respond(w, r, http.StatusCreated, ptrOverrideToResponse(override))
}

// @Summary Delete PTR override
// @Tags ptroverrides
// @Param id path string true "Override ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/ptroverrides/{id} [delete]
func (a *API) handleDeletePtrOverride(w http.ResponseWriter, r *http.Request) {
	if err := a.service.DeletePtrOverride(r.Context(), domain.PtrOverrideID(r.PathValue("id"))); err != nil {
		a.respondError(w, r, "deleting ptr override", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
