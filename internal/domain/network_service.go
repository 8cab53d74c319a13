package domain

import (
	"context"
	"errors"
	"fmt"
	"net/netip"

	"github.com/Flarenzy/netregistry/internal/addrspace"
)

type networkService struct {
	store           Store
	defaultReserved int
	zones           *ZoneIndex
}

type Option func(*networkService)

// WithDefaultReserved sets the reserved count used when a create request
// does not ask for one.
func WithDefaultReserved(n int) Option {
	return func(s *networkService) {
		if n >= 0 {
			s.defaultReserved = n
		}
	}
}

// WithZones sets the forward zones address records are matched against.
func WithZones(zones *ZoneIndex) Option {
	return func(s *networkService) {
		s.zones = zones
	}
}

func NewNetworkService(store Store, opts ...Option) NetworkService {
	s := &networkService{
		store:           store,
		defaultReserved: addrspace.DefaultReserved,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *networkService) ListNetworks(ctx context.Context) ([]Network, error) {
	return s.store.Repositories().Networks.List(ctx)
}

func (s *networkService) CreateNetwork(ctx context.Context, input CreateNetworkInput) (Network, error) {
	prefix, err := parseNetworkPrefix(input.Network)
	if err != nil {
		return Network{}, err
	}
	if input.VLAN != nil && *input.VLAN < 0 {
		return Network{}, fmt.Errorf("%w: negative vlan", ErrInvalidInput)
	}
	requested := s.defaultReserved
	if input.Reserved != nil {
		if err := checkReserved(*input.Reserved); err != nil {
			return Network{}, err
		}
		requested = *input.Reserved
	}

	record := NetworkRecord{
		Prefix:            prefix,
		Description:       input.Description,
		Location:          input.Location,
		Category:          input.Category,
		VLAN:              input.VLAN,
		DNSDelegated:      input.DNSDelegated,
		Frozen:            input.Frozen,
		Reserved:          addrspace.ClampReserved(prefix, requested),
		ReservedRequested: requested,
	}

	var created Network
	err = s.store.WithinTx(ctx, func(ctx context.Context, repos Repositories) error {
		existing, err := repos.Networks.List(ctx)
		if err != nil {
			return err
		}
		if err := checkOverlap(prefix, existing, 0); err != nil {
			return err
		}
		created, err = repos.Networks.Create(ctx, record)
		return err
	})
	if err != nil {
		return Network{}, err
	}
	return created, nil
}

func (s *networkService) GetNetwork(ctx context.Context, id int64) (Network, error) {
	network, err := s.store.Repositories().Networks.FindByID(ctx, id)
	if err != nil {
		return Network{}, networkNotFound(err)
	}
	return network, nil
}

func (s *networkService) GetNetworkByPrefix(ctx context.Context, prefix string) (Network, error) {
	p, err := parseNetworkPrefix(prefix)
	if err != nil {
		return Network{}, err
	}
	network, err := s.store.Repositories().Networks.FindByPrefix(ctx, p)
	if err != nil {
		return Network{}, networkNotFound(err)
	}
	return network, nil
}

func (s *networkService) UpdateNetwork(ctx context.Context, id int64, input UpdateNetworkInput) (Network, error) {
	if input.Empty() {
		return Network{}, fmt.Errorf("%w: nothing to update", ErrInvalidInput)
	}
	var newPrefix *netip.Prefix
	if input.Network != nil {
		p, err := parseNetworkPrefix(*input.Network)
		if err != nil {
			return Network{}, err
		}
		newPrefix = &p
	}
	if input.Reserved != nil {
		if err := checkReserved(*input.Reserved); err != nil {
			return Network{}, err
		}
	}

	var updated Network
	err := s.store.WithinTx(ctx, func(ctx context.Context, repos Repositories) error {
		current, err := repos.Networks.FindByID(ctx, id)
		if err != nil {
			return networkNotFound(err)
		}

		record := applyNetworkUpdate(current, input)
		if newPrefix != nil && *newPrefix != current.Prefix {
			existing, err := repos.Networks.List(ctx)
			if err != nil {
				return err
			}
			if err := checkOverlap(*newPrefix, existing, current.ID); err != nil {
				return err
			}
			record.Prefix = *newPrefix
		}
		record.Reserved = addrspace.ClampReserved(record.Prefix, record.ReservedRequested)

		updated, err = repos.Networks.Update(ctx, id, record)
		return networkNotFound(err)
	})
	if err != nil {
		return Network{}, err
	}
	return updated, nil
}

func (s *networkService) DeleteNetwork(ctx context.Context, id int64) error {
	return s.store.WithinTx(ctx, func(ctx context.Context, repos Repositories) error {
		network, err := repos.Networks.FindByID(ctx, id)
		if err != nil {
			return networkNotFound(err)
		}
		records, err := repos.Addresses.ListInRange(ctx, network.Prefix)
		if err != nil {
			return err
		}
		if len(records) > 0 {
			return fmt.Errorf("%w: %d addresses in %s", ErrInUse, len(records), network.Prefix)
		}
		deleted, err := repos.Networks.Delete(ctx, id)
		if err != nil {
			return err
		}
		if !deleted {
			return ErrNetworkNotFound
		}
		return nil
	})
}

func (s *networkService) FindNetworkByAddress(ctx context.Context, ip string) (Network, error) {
	addr, err := addrspace.ParseAddr(ip)
	if err != nil {
		return Network{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	network, err := s.store.Repositories().Networks.FindContaining(ctx, addr)
	if err != nil {
		return Network{}, networkNotFound(err)
	}
	return network, nil
}

func (s *networkService) ListNetworksByVLAN(ctx context.Context, vlan int64) ([]Network, error) {
	if vlan < 0 {
		return nil, fmt.Errorf("%w: negative vlan", ErrInvalidInput)
	}
	return s.store.Repositories().Networks.ListByVLAN(ctx, vlan)
}

func (s *networkService) NetworkUsage(ctx context.Context, id int64) (*Usage, error) {
	repos := s.store.Repositories()
	network, err := repos.Networks.FindByID(ctx, id)
	if err != nil {
		return nil, networkNotFound(err)
	}
	records, err := repos.Addresses.ListInRange(ctx, network.Prefix)
	if err != nil {
		return nil, err
	}
	ptrs, err := repos.PtrOverrides.ListInRange(ctx, network.Prefix)
	if err != nil {
		return nil, err
	}
	return NewUsage(network, records, ptrs)
}

func checkReserved(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: negative reserved count", ErrInvalidInput)
	}
	if n > addrspace.MaxReserved {
		return fmt.Errorf("%w: reserved count above %d", ErrInvalidInput, addrspace.MaxReserved)
	}
	return nil
}

func parseNetworkPrefix(s string) (netip.Prefix, error) {
	p, err := addrspace.ParsePrefix(s)
	if err != nil {
		return netip.Prefix{}, fmt.Errorf("%w: %v", ErrInvalidRange, err)
	}
	return p, nil
}

// checkOverlap fails when prefix intersects any network other than the
// one identified by exclude.
func checkOverlap(prefix netip.Prefix, existing []Network, exclude int64) error {
	for _, n := range existing {
		if n.ID == exclude {
			continue
		}
		if addrspace.Overlaps(prefix, n.Prefix) {
			return &OverlapError{Prefix: prefix, Existing: n}
		}
	}
	return nil
}

func applyNetworkUpdate(current Network, input UpdateNetworkInput) NetworkRecord {
	record := NetworkRecord{
		Prefix:            current.Prefix,
		Description:       current.Description,
		Location:          current.Location,
		Category:          current.Category,
		VLAN:              current.VLAN,
		DNSDelegated:      current.DNSDelegated,
		Frozen:            current.Frozen,
		Reserved:          current.Reserved,
		ReservedRequested: current.ReservedRequested,
	}
	if input.Description != nil {
		record.Description = *input.Description
	}
	if input.Location != nil {
		record.Location = *input.Location
	}
	if input.Category != nil {
		record.Category = *input.Category
	}
	if input.VLAN != nil {
		if *input.VLAN < 0 {
			record.VLAN = nil
		} else {
			vlan := *input.VLAN
			record.VLAN = &vlan
		}
	}
	if input.DNSDelegated != nil {
		record.DNSDelegated = *input.DNSDelegated
	}
	if input.Frozen != nil {
		record.Frozen = *input.Frozen
	}
	if input.Reserved != nil {
		record.ReservedRequested = *input.Reserved
	}
	return record
}

func networkNotFound(err error) error {
	if err != nil && errors.Is(err, ErrNotFound) && !errors.Is(err, ErrNetworkNotFound) {
		return ErrNetworkNotFound
	}
	return err
}
