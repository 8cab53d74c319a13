package domain

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/netip"

	"github.com/Flarenzy/netregistry/internal/addrspace"
	"github.com/google/uuid"
	"go4.org/netipx"
)

func (s *networkService) ListAddresses(ctx context.Context, networkID int64) ([]AddressRecord, error) {
	repos := s.store.Repositories()
	network, err := repos.Networks.FindByID(ctx, networkID)
	if err != nil {
		return nil, networkNotFound(err)
	}
	records, err := repos.Addresses.ListInRange(ctx, network.Prefix)
	if err != nil {
		return nil, err
	}
	for i := range records {
		records[i] = s.withZone(records[i])
	}
	return records, nil
}

func (s *networkService) GetAddress(ctx context.Context, id AddressRecordID) (AddressRecord, error) {
	record, err := s.store.Repositories().Addresses.FindByID(ctx, id)
	if err != nil {
		return AddressRecord{}, addressNotFound(err)
	}
	return s.withZone(record), nil
}

func (s *networkService) CreateAddress(ctx context.Context, input CreateAddressInput) (AddressRecord, error) {
	addr, err := addrspace.ParseAddr(input.IP)
	if err != nil {
		return AddressRecord{}, fmt.Errorf("%w: invalid ip", ErrInvalidInput)
	}
	host, mac, err := parseHostAndMAC(input.Host, input.MAC)
	if err != nil {
		return AddressRecord{}, err
	}

	var created AddressRecord
	err = s.store.WithinTx(ctx, func(ctx context.Context, repos Repositories) error {
		if err := checkAssignable(ctx, repos.Networks, addr); err != nil {
			return err
		}
		if err := NewMacChecker(repos.Networks, repos.Addresses).Check(ctx, addr, mac, ""); err != nil {
			return err
		}
		created, err = repos.Addresses.Create(ctx, AddressRecordInput{
			ID:      AddressRecordID(uuid.NewString()),
			Address: addr,
			Host:    host,
			MAC:     mac,
		})
		return err
	})
	if err != nil {
		return AddressRecord{}, err
	}
	return s.withZone(created), nil
}

func (s *networkService) AllocateAddress(ctx context.Context, networkID int64, input AllocateAddressInput) (AddressRecord, error) {
	host, mac, err := parseHostAndMAC(input.Host, input.MAC)
	if err != nil {
		return AddressRecord{}, err
	}

	var created AddressRecord
	err = s.store.WithinTx(ctx, func(ctx context.Context, repos Repositories) error {
		network, err := repos.Networks.FindByID(ctx, networkID)
		if err != nil {
			return networkNotFound(err)
		}
		if network.Frozen {
			return fmt.Errorf("%w: %s", ErrFrozen, network.Prefix)
		}
		records, err := repos.Addresses.ListInRange(ctx, network.Prefix)
		if err != nil {
			return err
		}
		usage, err := NewUsage(network, records, nil)
		if err != nil {
			return err
		}
		addr, err := usage.FirstAssignable()
		if err != nil {
			return err
		}
		if err := checkAssignable(ctx, repos.Networks, addr); err != nil {
			return err
		}
		if err := NewMacChecker(repos.Networks, repos.Addresses).Check(ctx, addr, mac, ""); err != nil {
			return err
		}
		created, err = repos.Addresses.Create(ctx, AddressRecordInput{
			ID:      AddressRecordID(uuid.NewString()),
			Address: addr,
			Host:    host,
			MAC:     mac,
		})
		return err
	})
	if err != nil {
		return AddressRecord{}, err
	}
	return s.withZone(created), nil
}

func (s *networkService) UpdateAddress(ctx context.Context, id AddressRecordID, input UpdateAddressInput) (AddressRecord, error) {
	if input.IP == nil && input.Host == nil && input.MAC == nil {
		return AddressRecord{}, fmt.Errorf("%w: nothing to update", ErrInvalidInput)
	}

	var updated AddressRecord
	err := s.store.WithinTx(ctx, func(ctx context.Context, repos Repositories) error {
		current, err := repos.Addresses.FindByID(ctx, id)
		if err != nil {
			return addressNotFound(err)
		}

		next := AddressRecordInput{ID: current.ID, Address: current.Address, Host: current.Host, MAC: current.MAC}
		if input.IP != nil {
			addr, err := addrspace.ParseAddr(*input.IP)
			if err != nil {
				return fmt.Errorf("%w: invalid ip", ErrInvalidInput)
			}
			next.Address = addr
		}
		if input.Host != nil {
			if !validHostName(*input.Host) {
				return fmt.Errorf("%w: invalid host name", ErrInvalidInput)
			}
			next.Host = canonicalName(*input.Host)
		}
		if input.MAC != nil {
			mac, err := parseMAC(*input.MAC)
			if err != nil {
				return err
			}
			next.MAC = mac
		}

		addrChanged := next.Address != current.Address
		if addrChanged {
			if err := checkAssignable(ctx, repos.Networks, next.Address); err != nil {
				return err
			}
		}
		if addrChanged || next.MAC.String() != current.MAC.String() {
			if err := NewMacChecker(repos.Networks, repos.Addresses).Check(ctx, next.Address, next.MAC, current.ID); err != nil {
				return err
			}
		}

		updated, err = repos.Addresses.Update(ctx, next)
		return addressNotFound(err)
	})
	if err != nil {
		return AddressRecord{}, err
	}
	return s.withZone(updated), nil
}

func (s *networkService) DeleteAddress(ctx context.Context, id AddressRecordID) error {
	deleted, err := s.store.Repositories().Addresses.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrAddressNotFound
	}
	return nil
}

func (s *networkService) CreatePtrOverride(ctx context.Context, input CreatePtrOverrideInput) (PtrOverrideRecord, error) {
	addr, err := addrspace.ParseAddr(input.IP)
	if err != nil {
		return PtrOverrideRecord{}, fmt.Errorf("%w: invalid ip", ErrInvalidInput)
	}
	if !validHostName(input.Host) {
		return PtrOverrideRecord{}, fmt.Errorf("%w: invalid host name", ErrInvalidInput)
	}
	return s.store.Repositories().PtrOverrides.Create(ctx, PtrOverrideInput{
		ID:      PtrOverrideID(uuid.NewString()),
		Address: addr,
		Host:    canonicalName(input.Host),
	})
}

func (s *networkService) DeletePtrOverride(ctx context.Context, id PtrOverrideID) error {
	deleted, err := s.store.Repositories().PtrOverrides.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return fmt.Errorf("ptr override %w", ErrNotFound)
	}
	return nil
}

func (s *networkService) withZone(record AddressRecord) AddressRecord {
	record.Zone = s.zones.Match(record.Host)
	return record
}

// checkAssignable rejects addresses inside frozen networks, and the
// network and broadcast addresses of IPv4 networks larger than a /31.
func checkAssignable(ctx context.Context, networks NetworkRepository, addr netip.Addr) error {
	network, err := networks.FindContaining(ctx, addr)
	if errors.Is(err, ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if network.Frozen {
		return fmt.Errorf("%w: %s", ErrFrozen, network.Prefix)
	}
	if addrspace.HasBroadcast(network.Prefix) {
		r := netipx.RangeOfPrefix(network.Prefix)
		if r.From() == addr || r.To() == addr {
			return fmt.Errorf("%w: network or broadcast ip", ErrInvalidInput)
		}
	}
	return nil
}

func parseHostAndMAC(host, rawMAC string) (string, net.HardwareAddr, error) {
	if !validHostName(host) {
		return "", nil, fmt.Errorf("%w: invalid host name", ErrInvalidInput)
	}
	mac, err := parseMAC(rawMAC)
	if err != nil {
		return "", nil, err
	}
	return canonicalName(host), mac, nil
}

func parseMAC(raw string) (net.HardwareAddr, error) {
	if raw == "" {
		return nil, nil
	}
	mac, err := net.ParseMAC(raw)
	if err != nil || len(mac) != 6 {
		return nil, fmt.Errorf("%w: invalid mac address", ErrInvalidInput)
	}
	return mac, nil
}

func addressNotFound(err error) error {
	if err != nil && errors.Is(err, ErrNotFound) && !errors.Is(err, ErrAddressNotFound) {
		return ErrAddressNotFound
	}
	return err
}
