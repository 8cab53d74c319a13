package domain

import (
	"errors"
	"fmt"
	"net"
	"net/netip"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrInvalidRange = errors.New("invalid range")
	ErrConflict     = errors.New("conflict")
	ErrOverlap      = errors.New("network overlaps existing network")
	ErrInUse        = errors.New("network in use")
	ErrMacConflict  = errors.New("mac address conflict")
	ErrNetworkFull  = errors.New("no unused address in network")
	ErrFrozen       = errors.New("network is frozen")
	ErrUnauthorized = errors.New("unauthorized")

	ErrNetworkNotFound = fmt.Errorf("network %w", ErrNotFound)
	ErrAddressNotFound = fmt.Errorf("address %w", ErrNotFound)
)

// OverlapError names the existing network a create or update collided with.
type OverlapError struct {
	Prefix   netip.Prefix
	Existing Network
}

func (e *OverlapError) Error() string {
	return fmt.Sprintf("%s overlaps existing network %s", e.Prefix, e.Existing.Prefix)
}

func (e *OverlapError) Unwrap() error {
	return ErrOverlap
}

// MacConflictError carries the record already holding the MAC address.
type MacConflictError struct {
	MAC         net.HardwareAddr
	Conflicting AddressRecord
}

func (e *MacConflictError) Error() string {
	return fmt.Sprintf("macaddress %s already in use by %s", e.MAC, e.Conflicting.Address)
}

func (e *MacConflictError) Unwrap() error {
	return ErrMacConflict
}
