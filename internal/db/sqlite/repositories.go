package sqlite

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/netip"
	"strings"

	"github.com/Flarenzy/netregistry/internal/domain"
	"gorm.io/gorm"
)

type networkRepository struct {
	db *gorm.DB
}

func (r networkRepository) List(ctx context.Context) ([]domain.Network, error) {
	var models []networkModel
	if err := r.db.WithContext(ctx).Order("id").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("list networks: %w", err)
	}
	return toDomainNetworks(models)
}

func (r networkRepository) FindByID(ctx context.Context, id int64) (domain.Network, error) {
	var m networkModel
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		return domain.Network{}, translateError(err)
	}
	return toDomainNetwork(m)
}

func (r networkRepository) FindByPrefix(ctx context.Context, prefix netip.Prefix) (domain.Network, error) {
	var m networkModel
	if err := r.db.WithContext(ctx).First(&m, "network = ?", prefix.String()).Error; err != nil {
		return domain.Network{}, translateError(err)
	}
	return toDomainNetwork(m)
}

func (r networkRepository) FindContaining(ctx context.Context, addr netip.Addr) (domain.Network, error) {
	key := addrKey(addr)
	var m networkModel
	err := r.db.WithContext(ctx).
		Where("family = ? AND first_key <= ? AND last_key >= ?", family(addr), key, key).
		Order("bits DESC").
		First(&m).Error
	if err != nil {
		return domain.Network{}, translateError(err)
	}
	return toDomainNetwork(m)
}

func (r networkRepository) ListByVLAN(ctx context.Context, vlan int64) ([]domain.Network, error) {
	var models []networkModel
	if err := r.db.WithContext(ctx).Where("vlan = ?", vlan).Order("id").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("list networks by vlan: %w", err)
	}
	return toDomainNetworks(models)
}

func (r networkRepository) Create(ctx context.Context, record domain.NetworkRecord) (domain.Network, error) {
	m := toNetworkModel(record)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return domain.Network{}, translateError(err)
	}
	return toDomainNetwork(m)
}

func (r networkRepository) Update(ctx context.Context, id int64, record domain.NetworkRecord) (domain.Network, error) {
	var current networkModel
	if err := r.db.WithContext(ctx).First(&current, "id = ?", id).Error; err != nil {
		return domain.Network{}, translateError(err)
	}

	m := toNetworkModel(record)
	m.ID, m.CreatedAt = current.ID, current.CreatedAt
	if err := r.db.WithContext(ctx).Save(&m).Error; err != nil {
		return domain.Network{}, translateError(err)
	}
	return toDomainNetwork(m)
}

func (r networkRepository) Delete(ctx context.Context, id int64) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&networkModel{}, "id = ?", id)
	if res.Error != nil {
		return false, fmt.Errorf("delete network: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}

type addressRepository struct {
	db *gorm.DB
}

func (r addressRepository) ListInRange(ctx context.Context, prefix netip.Prefix) ([]domain.AddressRecord, error) {
	first, last := prefixKeys(prefix)
	var models []addressModel
	err := r.db.WithContext(ctx).
		Where("family = ? AND addr_key BETWEEN ? AND ?", family(prefix.Addr()), first, last).
		Order("addr_key, host").
		Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("list addresses: %w", err)
	}
	return toDomainAddresses(models)
}

func (r addressRepository) ListByMAC(ctx context.Context, mac net.HardwareAddr) ([]domain.AddressRecord, error) {
	var models []addressModel
	err := r.db.WithContext(ctx).
		Where("macaddress = ?", mac.String()).
		Order("family, addr_key, host").
		Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("list addresses by mac: %w", err)
	}
	return toDomainAddresses(models)
}

func (r addressRepository) FindByID(ctx context.Context, id domain.AddressRecordID) (domain.AddressRecord, error) {
	var m addressModel
	if err := r.db.WithContext(ctx).First(&m, "id = ?", string(id)).Error; err != nil {
		return domain.AddressRecord{}, translateError(err)
	}
	return toDomainAddress(m)
}

func (r addressRepository) Create(ctx context.Context, input domain.AddressRecordInput) (domain.AddressRecord, error) {
	m := addressModel{
		ID:         string(input.ID),
		Address:    input.Address.String(),
		Family:     family(input.Address),
		AddrKey:    addrKey(input.Address),
		Host:       input.Host,
		Macaddress: input.MAC.String(),
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return domain.AddressRecord{}, translateError(err)
	}
	return toDomainAddress(m)
}

func (r addressRepository) Update(ctx context.Context, input domain.AddressRecordInput) (domain.AddressRecord, error) {
	var m addressModel
	if err := r.db.WithContext(ctx).First(&m, "id = ?", string(input.ID)).Error; err != nil {
		return domain.AddressRecord{}, translateError(err)
	}

	m.Address = input.Address.String()
	m.Family = family(input.Address)
	m.AddrKey = addrKey(input.Address)
	m.Host = input.Host
	m.Macaddress = input.MAC.String()
	if err := r.db.WithContext(ctx).Save(&m).Error; err != nil {
		return domain.AddressRecord{}, translateError(err)
	}
	return toDomainAddress(m)
}

func (r addressRepository) Delete(ctx context.Context, id domain.AddressRecordID) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&addressModel{}, "id = ?", string(id))
	if res.Error != nil {
		return false, fmt.Errorf("delete address: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}

type ptrOverrideRepository struct {
	db *gorm.DB
}

func (r ptrOverrideRepository) ListInRange(ctx context.Context, prefix netip.Prefix) ([]domain.PtrOverrideRecord, error) {
	first, last := prefixKeys(prefix)
	var models []ptrOverrideModel
	err := r.db.WithContext(ctx).
		Where("family = ? AND addr_key BETWEEN ? AND ?", family(prefix.Addr()), first, last).
		Order("addr_key").
		Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("list ptr overrides: %w", err)
	}

	out := make([]domain.PtrOverrideRecord, 0, len(models))
	for _, m := range models {
		p, err := toDomainPtrOverride(m)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

func (r ptrOverrideRepository) Create(ctx context.Context, input domain.PtrOverrideInput) (domain.PtrOverrideRecord, error) {
	m := ptrOverrideModel{
		ID:      string(input.ID),
		Address: input.Address.String(),
		Family:  family(input.Address),
		AddrKey: addrKey(input.Address),
		Host:    input.Host,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return domain.PtrOverrideRecord{}, translateError(err)
	}
	return toDomainPtrOverride(m)
}

func (r ptrOverrideRepository) Delete(ctx context.Context, id domain.PtrOverrideID) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&ptrOverrideModel{}, "id = ?", string(id))
	if res.Error != nil {
		return false, fmt.Errorf("delete ptr override: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}

// translateError maps GORM and SQLite errors onto the domain sentinels.
func translateError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return domain.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey), strings.Contains(err.Error(), "UNIQUE constraint failed"):
		if strings.Contains(err.Error(), "networks.network") {
			return fmt.Errorf("%w: %v", domain.ErrOverlap, err)
		}
		return fmt.Errorf("%w: %v", domain.ErrConflict, err)
	}
	return err
}
