package domain

import (
	"bytes"
	"context"
	"errors"
	"net"
	"net/netip"
)

// MacChecker enforces MAC address uniqueness:
//   - an address outside every network needs a globally unique MAC
//   - inside a network, a MAC is bound to at most one address of the
//     same family across the network and its VLAN siblings
//
// One IPv4 and one IPv6 address on the same VLAN may share a MAC.
type MacChecker struct {
	networks  NetworkRepository
	addresses AddressRepository
}

func NewMacChecker(networks NetworkRepository, addresses AddressRepository) *MacChecker {
	return &MacChecker{networks: networks, addresses: addresses}
}

// Check returns a *MacConflictError when mac is already bound to a
// record other than exclude.
func (c *MacChecker) Check(ctx context.Context, addr netip.Addr, mac net.HardwareAddr, exclude AddressRecordID) error {
	if len(mac) == 0 {
		return nil
	}

	network, err := c.networks.FindContaining(ctx, addr)
	if errors.Is(err, ErrNotFound) {
		records, err := c.addresses.ListByMAC(ctx, mac)
		if err != nil {
			return err
		}
		return firstConflict(records, mac, exclude)
	}
	if err != nil {
		return err
	}

	siblings := []Network{network}
	if network.VLAN != nil {
		siblings, err = c.networks.ListByVLAN(ctx, *network.VLAN)
		if err != nil {
			return err
		}
	}

	for _, sibling := range siblings {
		if sibling.Is4() != addr.Is4() {
			continue
		}
		records, err := c.addresses.ListInRange(ctx, sibling.Prefix)
		if err != nil {
			return err
		}
		if err := firstConflict(records, mac, exclude); err != nil {
			return err
		}
	}
	return nil
}

func firstConflict(records []AddressRecord, mac net.HardwareAddr, exclude AddressRecordID) error {
	for _, r := range records {
		if r.ID == exclude || !bytes.Equal(r.MAC, mac) {
			continue
		}
		return &MacConflictError{MAC: mac, Conflicting: r}
	}
	return nil
}
