package domain

import (
	"context"
	"log/slog"
)

type loggingNetworkService struct {
	logger *slog.Logger
	next   NetworkService
}

func NewLoggingNetworkService(logger *slog.Logger, next NetworkService) NetworkService {
	if logger == nil || next == nil {
		return next
	}

	return &loggingNetworkService{
		logger: logger,
		next:   next,
	}
}

func (s *loggingNetworkService) ListNetworks(ctx context.Context) ([]Network, error) {
	networks, err := s.next.ListNetworks(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "list networks failed", "err", err.Error())
	}
	return networks, err
}

func (s *loggingNetworkService) CreateNetwork(ctx context.Context, input CreateNetworkInput) (Network, error) {
	network, err := s.next.CreateNetwork(ctx, input)
	if err != nil {
		s.logger.ErrorContext(ctx, "create network failed", "network", input.Network, "err", err.Error())
		return Network{}, err
	}

	s.logger.InfoContext(ctx, "network created", "id", network.ID, "network", network.Prefix.String(), "reserved", network.Reserved)
	return network, nil
}

func (s *loggingNetworkService) GetNetwork(ctx context.Context, id int64) (Network, error) {
	network, err := s.next.GetNetwork(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "get network failed", "id", id, "err", err.Error())
	}
	return network, err
}

func (s *loggingNetworkService) GetNetworkByPrefix(ctx context.Context, prefix string) (Network, error) {
	network, err := s.next.GetNetworkByPrefix(ctx, prefix)
	if err != nil {
		s.logger.ErrorContext(ctx, "get network by prefix failed", "network", prefix, "err", err.Error())
	}
	return network, err
}

func (s *loggingNetworkService) UpdateNetwork(ctx context.Context, id int64, input UpdateNetworkInput) (Network, error) {
	network, err := s.next.UpdateNetwork(ctx, id, input)
	if err != nil {
		s.logger.ErrorContext(ctx, "update network failed", "id", id, "err", err.Error())
		return Network{}, err
	}

	s.logger.InfoContext(ctx, "network updated", "id", id, "network", network.Prefix.String())
	return network, nil
}

func (s *loggingNetworkService) DeleteNetwork(ctx context.Context, id int64) error {
	err := s.next.DeleteNetwork(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "delete network failed", "id", id, "err", err.Error())
		return err
	}

	s.logger.InfoContext(ctx, "network deleted", "id", id)
	return nil
}

func (s *loggingNetworkService) FindNetworkByAddress(ctx context.Context, ip string) (Network, error) {
	network, err := s.next.FindNetworkByAddress(ctx, ip)
	if err != nil {
		s.logger.ErrorContext(ctx, "find network by address failed", "ip", ip, "err", err.Error())
	}
	return network, err
}

func (s *loggingNetworkService) ListNetworksByVLAN(ctx context.Context, vlan int64) ([]Network, error) {
	networks, err := s.next.ListNetworksByVLAN(ctx, vlan)
	if err != nil {
		s.logger.ErrorContext(ctx, "list networks by vlan failed", "vlan", vlan, "err", err.Error())
	}
	return networks, err
}

func (s *loggingNetworkService) NetworkUsage(ctx context.Context, id int64) (*Usage, error) {
	usage, err := s.next.NetworkUsage(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "network usage failed", "id", id, "err", err.Error())
	}
	return usage, err
}

func (s *loggingNetworkService) ListAddresses(ctx context.Context, networkID int64) ([]AddressRecord, error) {
	records, err := s.next.ListAddresses(ctx, networkID)
	if err != nil {
		s.logger.ErrorContext(ctx, "list addresses failed", "network_id", networkID, "err", err.Error())
	}
	return records, err
}

func (s *loggingNetworkService) GetAddress(ctx context.Context, id AddressRecordID) (AddressRecord, error) {
	record, err := s.next.GetAddress(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "get address failed", "id", string(id), "err", err.Error())
	}
	return record, err
}

func (s *loggingNetworkService) CreateAddress(ctx context.Context, input CreateAddressInput) (AddressRecord, error) {
	record, err := s.next.CreateAddress(ctx, input)
	if err != nil {
		s.logger.ErrorContext(ctx, "create address failed", "ip", input.IP, "host", input.Host, "err", err.Error())
		return AddressRecord{}, err
	}

	s.logger.DebugContext(ctx, "address created", "id", string(record.ID), "ip", record.Address.String(), "host", record.Host)
	return record, nil
}

func (s *loggingNetworkService) AllocateAddress(ctx context.Context, networkID int64, input AllocateAddressInput) (AddressRecord, error) {
	record, err := s.next.AllocateAddress(ctx, networkID, input)
	if err != nil {
		s.logger.ErrorContext(ctx, "allocate address failed", "network_id", networkID, "host", input.Host, "err", err.Error())
		return AddressRecord{}, err
	}

	s.logger.DebugContext(ctx, "address allocated", "network_id", networkID, "id", string(record.ID), "ip", record.Address.String())
	return record, nil
}

func (s *loggingNetworkService) UpdateAddress(ctx context.Context, id AddressRecordID, input UpdateAddressInput) (AddressRecord, error) {
	record, err := s.next.UpdateAddress(ctx, id, input)
	if err != nil {
		s.logger.ErrorContext(ctx, "update address failed", "id", string(id), "err", err.Error())
	}
	return record, err
}

func (s *loggingNetworkService) DeleteAddress(ctx context.Context, id AddressRecordID) error {
	err := s.next.DeleteAddress(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "delete address failed", "id", string(id), "err", err.Error())
		return err
	}

	s.logger.DebugContext(ctx, "address deleted", "id", string(id))
	return nil
}

func (s *loggingNetworkService) CreatePtrOverride(ctx context.Context, input CreatePtrOverrideInput) (PtrOverrideRecord, error) {
	ptr, err := s.next.CreatePtrOverride(ctx, input)
	if err != nil {
		s.logger.ErrorContext(ctx, "create ptr override failed", "ip", input.IP, "host", input.Host, "err", err.Error())
		return PtrOverrideRecord{}, err
	}

	s.logger.DebugContext(ctx, "ptr override created", "id", string(ptr.ID), "ip", ptr.Address.String())
	return ptr, nil
}

func (s *loggingNetworkService) DeletePtrOverride(ctx context.Context, id PtrOverrideID) error {
	err := s.next.DeletePtrOverride(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "delete ptr override failed", "id", string(id), "err", err.Error())
		return err
	}

	s.logger.DebugContext(ctx, "ptr override deleted", "id", string(id))
	return nil
}
