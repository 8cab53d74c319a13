package domain

import (
	"net"
	"net/netip"
	"time"
)

type AddressRecordID string

type PtrOverrideID string

// Network is a registered prefix. Reserved is ReservedRequested clamped
// to the capacity of Prefix.
type Network struct {
	ID                int64
	Prefix            netip.Prefix
	Description       string
	Location          string
	Category          string
	VLAN              *int64
	DNSDelegated      bool
	Frozen            bool
	Reserved          int
	ReservedRequested int
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// Is4 reports whether the network is an IPv4 network.
func (n Network) Is4() bool {
	return n.Prefix.Addr().Is4()
}

// AddressRecord is an address assigned to a host, optionally bound to a
// MAC address.
type AddressRecord struct {
	ID        AddressRecordID
	Address   netip.Addr
	Host      string
	MAC       net.HardwareAddr
	Zone      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type PtrOverrideRecord struct {
	ID        PtrOverrideID
	Address   netip.Addr
	Host      string
	CreatedAt time.Time
}
