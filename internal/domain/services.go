package domain

import "context"

type NetworkService interface {
	ListNetworks(ctx context.Context) ([]Network, error)
	CreateNetwork(ctx context.Context, input CreateNetworkInput) (Network, error)
	GetNetwork(ctx context.Context, id int64) (Network, error)
	GetNetworkByPrefix(ctx context.Context, prefix string) (Network, error)
	UpdateNetwork(ctx context.Context, id int64, input UpdateNetworkInput) (Network, error)
	DeleteNetwork(ctx context.Context, id int64) error
	FindNetworkByAddress(ctx context.Context, ip string) (Network, error)
	ListNetworksByVLAN(ctx context.Context, vlan int64) ([]Network, error)
	NetworkUsage(ctx context.Context, id int64) (*Usage, error)

	ListAddresses(ctx context.Context, networkID int64) ([]AddressRecord, error)
	GetAddress(ctx context.Context, id AddressRecordID) (AddressRecord, error)
	CreateAddress(ctx context.Context, input CreateAddressInput) (AddressRecord, error)
	AllocateAddress(ctx context.Context, networkID int64, input AllocateAddressInput) (AddressRecord, error)
	UpdateAddress(ctx context.Context, id AddressRecordID, input UpdateAddressInput) (AddressRecord, error)
	DeleteAddress(ctx context.Context, id AddressRecordID) error

	CreatePtrOverride(ctx context.Context, input CreatePtrOverrideInput) (PtrOverrideRecord, error)
	DeletePtrOverride(ctx context.Context, id PtrOverrideID) error
}
