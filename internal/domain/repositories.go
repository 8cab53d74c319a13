package domain

import (
	"context"
	"net"
	"net/netip"
)

type NetworkRepository interface {
	List(ctx context.Context) ([]Network, error)
	FindByID(ctx context.Context, id int64) (Network, error)
	FindByPrefix(ctx context.Context, prefix netip.Prefix) (Network, error)
	// FindContaining returns the network whose range holds addr.
	FindContaining(ctx context.Context, addr netip.Addr) (Network, error)
	ListByVLAN(ctx context.Context, vlan int64) ([]Network, error)
	Create(ctx context.Context, record NetworkRecord) (Network, error)
	Update(ctx context.Context, id int64, record NetworkRecord) (Network, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type AddressRepository interface {
	// ListInRange returns the records inside prefix ordered by address.
	ListInRange(ctx context.Context, prefix netip.Prefix) ([]AddressRecord, error)
	ListByMAC(ctx context.Context, mac net.HardwareAddr) ([]AddressRecord, error)
	FindByID(ctx context.Context, id AddressRecordID) (AddressRecord, error)
	Create(ctx context.Context, input AddressRecordInput) (AddressRecord, error)
	Update(ctx context.Context, input AddressRecordInput) (AddressRecord, error)
	Delete(ctx context.Context, id AddressRecordID) (bool, error)
}

type PtrOverrideRepository interface {
	ListInRange(ctx context.Context, prefix netip.Prefix) ([]PtrOverrideRecord, error)
	Create(ctx context.Context, input PtrOverrideInput) (PtrOverrideRecord, error)
	Delete(ctx context.Context, id PtrOverrideID) (bool, error)
}

type Repositories struct {
	Networks     NetworkRepository
	Addresses    AddressRepository
	PtrOverrides PtrOverrideRepository
}

// Store hands out repositories. Writes that validate against existing
// rows run through WithinTx, which commits fn's work atomically and
// serializes it against other writers.
type Store interface {
	Repositories() Repositories
	WithinTx(ctx context.Context, fn func(ctx context.Context, repos Repositories) error) error
}
