package sqlite

import (
	"encoding/hex"
	"fmt"
	"net"
	"net/netip"
	"time"

	"github.com/Flarenzy/netregistry/internal/domain"
	"go4.org/netipx"
)

// Addresses are stored as text plus a fixed-width hex key per family, so
// range and containment queries become lexical comparisons.

type networkModel struct {
	ID                int64     `gorm:"primaryKey;autoIncrement"`
	Network           string    `gorm:"size:64;not null;uniqueIndex"`
	Family            int       `gorm:"not null"`
	Bits              int       `gorm:"not null"`
	FirstKey          string    `gorm:"size:32;not null"`
	LastKey           string    `gorm:"size:32;not null"`
	Description       string    `gorm:"type:text;not null"`
	Location          string    `gorm:"type:text;not null"`
	Category          string    `gorm:"type:text;not null"`
	Vlan              *int64
	DNSDelegated      bool      `gorm:"column:dns_delegated;not null"`
	Frozen            bool      `gorm:"not null"`
	Reserved          int       `gorm:"not null"`
	ReservedRequested int       `gorm:"not null"`
	CreatedAt         time.Time `gorm:"not null"`
	UpdatedAt         time.Time `gorm:"not null"`
}

func (networkModel) TableName() string {
	return "networks"
}

type addressModel struct {
	ID         string    `gorm:"primaryKey;size:36"`
	Address    string    `gorm:"size:45;not null"`
	Family     int       `gorm:"not null"`
	AddrKey    string    `gorm:"size:32;not null"`
	Host       string    `gorm:"size:255;not null"`
	Macaddress string    `gorm:"size:17;not null"`
	CreatedAt  time.Time `gorm:"not null"`
	UpdatedAt  time.Time `gorm:"not null"`
}

func (addressModel) TableName() string {
	return "ip_addresses"
}

type ptrOverrideModel struct {
	ID        string    `gorm:"primaryKey;size:36"`
	Address   string    `gorm:"size:45;not null"`
	Family    int       `gorm:"not null"`
	AddrKey   string    `gorm:"size:32;not null"`
	Host      string    `gorm:"size:255;not null"`
	CreatedAt time.Time `gorm:"not null"`
}

func (ptrOverrideModel) TableName() string {
	return "ptr_overrides"
}

func family(addr netip.Addr) int {
	if addr.Is4() {
		return 4
	}
	return 6
}

func addrKey(addr netip.Addr) string {
	return hex.EncodeToString(addr.AsSlice())
}

func prefixKeys(prefix netip.Prefix) (string, string) {
	r := netipx.RangeOfPrefix(prefix)
	return addrKey(r.From()), addrKey(r.To())
}

func toNetworkModel(record domain.NetworkRecord) networkModel {
	first, last := prefixKeys(record.Prefix)
	return networkModel{
		Network:           record.Prefix.String(),
		Family:            family(record.Prefix.Addr()),
		Bits:              record.Prefix.Bits(),
		FirstKey:          first,
		LastKey:           last,
		Description:       record.Description,
		Location:          record.Location,
		Category:          record.Category,
		Vlan:              record.VLAN,
		DNSDelegated:      record.DNSDelegated,
		Frozen:            record.Frozen,
		Reserved:          record.Reserved,
		ReservedRequested: record.ReservedRequested,
	}
}

func toDomainNetwork(m networkModel) (domain.Network, error) {
	prefix, err := netip.ParsePrefix(m.Network)
	if err != nil {
		return domain.Network{}, fmt.Errorf("decode network %d: %w", m.ID, err)
	}
	return domain.Network{
		ID:                m.ID,
		Prefix:            prefix,
		Description:       m.Description,
		Location:          m.Location,
		Category:          m.Category,
		VLAN:              m.Vlan,
		DNSDelegated:      m.DNSDelegated,
		Frozen:            m.Frozen,
		Reserved:          m.Reserved,
		ReservedRequested: m.ReservedRequested,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}, nil
}

func toDomainNetworks(models []networkModel) ([]domain.Network, error) {
	out := make([]domain.Network, 0, len(models))
	for _, m := range models {
		n, err := toDomainNetwork(m)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

func toDomainAddress(m addressModel) (domain.AddressRecord, error) {
	addr, err := netip.ParseAddr(m.Address)
	if err != nil {
		return domain.AddressRecord{}, fmt.Errorf("decode address %s: %w", m.ID, err)
	}
	var mac net.HardwareAddr
	if m.Macaddress != "" {
		mac, err = net.ParseMAC(m.Macaddress)
		if err != nil {
			return domain.AddressRecord{}, fmt.Errorf("decode mac of %s: %w", m.ID, err)
		}
	}
	return domain.AddressRecord{
		ID:        domain.AddressRecordID(m.ID),
		Address:   addr,
		Host:      m.Host,
		MAC:       mac,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}, nil
}

func toDomainAddresses(models []addressModel) ([]domain.AddressRecord, error) {
	out := make([]domain.AddressRecord, 0, len(models))
	for _, m := range models {
		rec, err := toDomainAddress(m)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}

func toDomainPtrOverride(m ptrOverrideModel) (domain.PtrOverrideRecord, error) {
	addr, err := netip.ParseAddr(m.Address)
	if err != nil {
		return domain.PtrOverrideRecord{}, fmt.Errorf("decode ptr override %s: %w", m.ID, err)
	}
	return domain.PtrOverrideRecord{
		ID:        domain.PtrOverrideID(m.ID),
		Address:   addr,
		Host:      m.Host,
		CreatedAt: m.CreatedAt,
	}, nil
}
