package domain

import (
	"bytes"
	"context"
	"maps"
	"net"
	"net/netip"
	"slices"
	"sync"
	"time"
)

// memStore is an in-memory Store. WithinTx serializes writers and rolls
// back every change made by a failing fn.
type memStore struct {
	txMu sync.Mutex

	mu        sync.Mutex
	nextID    int64
	networks  map[int64]Network
	addresses map[AddressRecordID]AddressRecord
	ptrs      map[PtrOverrideID]PtrOverrideRecord
}

func newMemStore() *memStore {
	return &memStore{
		networks:  make(map[int64]Network),
		addresses: make(map[AddressRecordID]AddressRecord),
		ptrs:      make(map[PtrOverrideID]PtrOverrideRecord),
	}
}

func (m *memStore) Repositories() Repositories {
	return Repositories{
		Networks:     memNetworks{m},
		Addresses:    memAddresses{m},
		PtrOverrides: memPtrOverrides{m},
	}
}

func (m *memStore) WithinTx(ctx context.Context, fn func(context.Context, Repositories) error) error {
	m.txMu.Lock()
	defer m.txMu.Unlock()

	m.mu.Lock()
	nextID := m.nextID
	networks := maps.Clone(m.networks)
	addresses := maps.Clone(m.addresses)
	ptrs := maps.Clone(m.ptrs)
	m.mu.Unlock()

	if err := fn(ctx, m.Repositories()); err != nil {
		m.mu.Lock()
		m.nextID, m.networks, m.addresses, m.ptrs = nextID, networks, addresses, ptrs
		m.mu.Unlock()
		return err
	}
	return nil
}

type memNetworks struct{ m *memStore }

func (r memNetworks) sorted(keep func(Network) bool) []Network {
	out := []Network{}
	for _, n := range r.m.networks {
		if keep(n) {
			out = append(out, n)
		}
	}
	slices.SortFunc(out, func(a, b Network) int { return int(a.ID - b.ID) })
	return out
}

func (r memNetworks) List(context.Context) ([]Network, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	return r.sorted(func(Network) bool { return true }), nil
}

func (r memNetworks) FindByID(_ context.Context, id int64) (Network, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	n, ok := r.m.networks[id]
	if !ok {
		return Network{}, ErrNotFound
	}
	return n, nil
}

func (r memNetworks) FindByPrefix(_ context.Context, prefix netip.Prefix) (Network, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	found := r.sorted(func(n Network) bool { return n.Prefix == prefix })
	if len(found) == 0 {
		return Network{}, ErrNotFound
	}
	return found[0], nil
}

func (r memNetworks) FindContaining(_ context.Context, addr netip.Addr) (Network, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	found := r.sorted(func(n Network) bool { return n.Prefix.Contains(addr) })
	if len(found) == 0 {
		return Network{}, ErrNotFound
	}
	return found[0], nil
}

func (r memNetworks) ListByVLAN(_ context.Context, vlan int64) ([]Network, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	return r.sorted(func(n Network) bool { return n.VLAN != nil && *n.VLAN == vlan }), nil
}

func (r memNetworks) Create(_ context.Context, record NetworkRecord) (Network, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	r.m.nextID++
	now := time.Now().UTC()
	n := networkFromRecord(r.m.nextID, record)
	n.CreatedAt, n.UpdatedAt = now, now
	r.m.networks[n.ID] = n
	return n, nil
}

func (r memNetworks) Update(_ context.Context, id int64, record NetworkRecord) (Network, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	current, ok := r.m.networks[id]
	if !ok {
		return Network{}, ErrNotFound
	}
	n := networkFromRecord(id, record)
	n.CreatedAt, n.UpdatedAt = current.CreatedAt, time.Now().UTC()
	r.m.networks[id] = n
	return n, nil
}

func (r memNetworks) Delete(_ context.Context, id int64) (bool, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if _, ok := r.m.networks[id]; !ok {
		return false, nil
	}
	delete(r.m.networks, id)
	return true, nil
}

func networkFromRecord(id int64, record NetworkRecord) Network {
	return Network{
		ID:                id,
		Prefix:            record.Prefix,
		Description:       record.Description,
		Location:          record.Location,
		Category:          record.Category,
		VLAN:              record.VLAN,
		DNSDelegated:      record.DNSDelegated,
		Frozen:            record.Frozen,
		Reserved:          record.Reserved,
		ReservedRequested: record.ReservedRequested,
	}
}

type memAddresses struct{ m *memStore }

func (r memAddresses) filter(keep func(AddressRecord) bool) []AddressRecord {
	out := []AddressRecord{}
	for _, rec := range r.m.addresses {
		if keep(rec) {
			out = append(out, rec)
		}
	}
	slices.SortFunc(out, func(a, b AddressRecord) int { return a.Address.Compare(b.Address) })
	return out
}

func (r memAddresses) ListInRange(_ context.Context, prefix netip.Prefix) ([]AddressRecord, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	return r.filter(func(rec AddressRecord) bool { return prefix.Contains(rec.Address) }), nil
}

func (r memAddresses) ListByMAC(_ context.Context, mac net.HardwareAddr) ([]AddressRecord, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	return r.filter(func(rec AddressRecord) bool { return bytes.Equal(rec.MAC, mac) }), nil
}

func (r memAddresses) FindByID(_ context.Context, id AddressRecordID) (AddressRecord, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	rec, ok := r.m.addresses[id]
	if !ok {
		return AddressRecord{}, ErrNotFound
	}
	return rec, nil
}

func (r memAddresses) Create(_ context.Context, input AddressRecordInput) (AddressRecord, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	for _, rec := range r.m.addresses {
		if rec.Address == input.Address && rec.Host == input.Host {
			return AddressRecord{}, ErrConflict
		}
	}
	now := time.Now().UTC()
	rec := AddressRecord{ID: input.ID, Address: input.Address, Host: input.Host, MAC: input.MAC, CreatedAt: now, UpdatedAt: now}
	r.m.addresses[rec.ID] = rec
	return rec, nil
}

func (r memAddresses) Update(_ context.Context, input AddressRecordInput) (AddressRecord, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	rec, ok := r.m.addresses[input.ID]
	if !ok {
		return AddressRecord{}, ErrNotFound
	}
	rec.Address, rec.Host, rec.MAC, rec.UpdatedAt = input.Address, input.Host, input.MAC, time.Now().UTC()
	r.m.addresses[rec.ID] = rec
	return rec, nil
}

func (r memAddresses) Delete(_ context.Context, id AddressRecordID) (bool, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if _, ok := r.m.addresses[id]; !ok {
		return false, nil
	}
	delete(r.m.addresses, id)
	return true, nil
}

type memPtrOverrides struct{ m *memStore }

func (r memPtrOverrides) ListInRange(_ context.Context, prefix netip.Prefix) ([]PtrOverrideRecord, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	out := []PtrOverrideRecord{}
	for _, p := range r.m.ptrs {
		if prefix.Contains(p.Address) {
			out = append(out, p)
		}
	}
	slices.SortFunc(out, func(a, b PtrOverrideRecord) int { return a.Address.Compare(b.Address) })
	return out, nil
}

func (r memPtrOverrides) Create(_ context.Context, input PtrOverrideInput) (PtrOverrideRecord, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	for _, p := range r.m.ptrs {
		if p.Address == input.Address {
			return PtrOverrideRecord{}, ErrConflict
		}
	}
	p := PtrOverrideRecord{ID: input.ID, Address: input.Address, Host: input.Host, CreatedAt: time.Now().UTC()}
	r.m.ptrs[p.ID] = p
	return p, nil
}

func (r memPtrOverrides) Delete(_ context.Context, id PtrOverrideID) (bool, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if _, ok := r.m.ptrs[id]; !ok {
		return false, nil
	}
	delete(r.m.ptrs, id)
	return true, nil
}
