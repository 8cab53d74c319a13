package domain

import (
	"net"
	"net/netip"
)

type CreateNetworkInput struct {
	Network      string
	Description  string
	Location     string
	Category     string
	VLAN         *int64
	DNSDelegated bool
	Frozen       bool
	// Reserved overrides the configured default when set.
	Reserved     *int
}

// UpdateNetworkInput holds the fields of a partial update. Nil fields are
// left unchanged; a negative VLAN clears it.
type UpdateNetworkInput struct {
	Network      *string
	Description  *string
	Location     *string
	Category     *string
	VLAN         *int64
	DNSDelegated *bool
	Frozen       *bool
	Reserved     *int
}

// Empty reports whether the update changes nothing.
func (u UpdateNetworkInput) Empty() bool {
	return u.Network == nil && u.Description == nil && u.Location == nil &&
		u.Category == nil && u.VLAN == nil && u.DNSDelegated == nil &&
		u.Frozen == nil && u.Reserved == nil
}

type CreateAddressInput struct {
	IP   string
	Host string
	MAC  string
}

type AllocateAddressInput struct {
	Host string
	MAC  string
}

// UpdateAddressInput holds the fields of a partial update. An empty MAC
// string unbinds the MAC address.
type UpdateAddressInput struct {
	IP   *string
	Host *string
	MAC  *string
}

type CreatePtrOverrideInput struct {
	IP   string
	Host string
}

// NetworkRecord is the validated form of a network handed to the store.
type NetworkRecord struct {
	Prefix            netip.Prefix
	Description       string
	Location          string
	Category          string
	VLAN              *int64
	DNSDelegated      bool
	Frozen            bool
	Reserved          int
	ReservedRequested int
}

type AddressRecordInput struct {
	ID      AddressRecordID
	Address netip.Addr
	Host    string
	MAC     net.HardwareAddr
}

type PtrOverrideInput struct {
	ID      PtrOverrideID
	Address netip.Addr
	Host    string
}
