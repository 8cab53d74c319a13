package domain

import (
	"fmt"
	"iter"
	"math/big"
	"net/netip"
	"slices"
	"strings"

	"github.com/Flarenzy/netregistry/internal/addrspace"
	"github.com/miekg/dns"
	"go4.org/netipx"
)

// AddressHosts lists the hosts bound to one address.
type AddressHosts struct {
	Address netip.Addr
	Hosts   []string
}

// PtrOverrideHost is one reverse mapping of a network.
type PtrOverrideHost struct {
	Address     netip.Addr
	Host        string
	ReverseName string
}

// Usage holds the derived address views of one network. Records outside
// the network are ignored.
type Usage struct {
	network  Network
	used     []netip.Addr
	hosts    map[netip.Addr][]string
	ptrs     []PtrOverrideRecord
	reserved *netipx.IPSet
	unused   *netipx.IPSet
}

func NewUsage(network Network, records []AddressRecord, ptrs []PtrOverrideRecord) (*Usage, error) {
	reserved, err := addrspace.ReservedSet(network.Prefix, network.Reserved)
	if err != nil {
		return nil, fmt.Errorf("reserved set for %s: %w", network.Prefix, err)
	}

	hosts := make(map[netip.Addr][]string)
	for _, r := range records {
		if !addrspace.Contains(network.Prefix, r.Address) {
			continue
		}
		if !slices.Contains(hosts[r.Address], r.Host) {
			hosts[r.Address] = append(hosts[r.Address], r.Host)
		}
	}

	used := make([]netip.Addr, 0, len(hosts))
	var b netipx.IPSetBuilder
	b.AddPrefix(network.Prefix)
	b.RemoveSet(reserved)
	for addr, names := range hosts {
		used = append(used, addr)
		slices.Sort(names)
		b.Remove(addr)
	}
	slices.SortFunc(used, netip.Addr.Compare)

	unused, err := b.IPSet()
	if err != nil {
		return nil, fmt.Errorf("unused set for %s: %w", network.Prefix, err)
	}

	inRange := make([]PtrOverrideRecord, 0, len(ptrs))
	for _, p := range ptrs {
		if addrspace.Contains(network.Prefix, p.Address) {
			inRange = append(inRange, p)
		}
	}
	slices.SortStableFunc(inRange, func(a, b PtrOverrideRecord) int {
		return a.Address.Compare(b.Address)
	})

	return &Usage{
		network:  network,
		used:     used,
		hosts:    hosts,
		ptrs:     inRange,
		reserved: reserved,
		unused:   unused,
	}, nil
}

func (u *Usage) Network() Network {
	return u.network
}

// UsedCount counts distinct used addresses.
func (u *Usage) UsedCount() int {
	return len(u.used)
}

func (u *Usage) UsedList() []netip.Addr {
	return slices.Clone(u.used)
}

// UnusedCount is the size of the full address set minus used and
// reserved addresses. A reserved address that is also used is removed
// once.
func (u *Usage) UnusedCount() *big.Int {
	return addrspace.SetSize(u.unused)
}

// Unused yields unused addresses in ascending order.
func (u *Usage) Unused() iter.Seq[netip.Addr] {
	return addrspace.SetAddrs(u.unused)
}

// UnusedList returns at most limit unused addresses.
func (u *Usage) UnusedList(limit int) []netip.Addr {
	return addrspace.Take(u.Unused(), limit)
}

// FirstUnused returns the lowest address that is neither reserved nor used.
func (u *Usage) FirstUnused() (netip.Addr, error) {
	ranges := u.unused.Ranges()
	if len(ranges) == 0 {
		return netip.Addr{}, fmt.Errorf("%w: %s", ErrNetworkFull, u.network.Prefix)
	}
	return ranges[0].From(), nil
}

// FirstAssignable is FirstUnused without the network address of IPv4
// networks that have a broadcast address. Address records may not take it
// even when the reserved block is empty.
func (u *Usage) FirstAssignable() (netip.Addr, error) {
	var skip netip.Addr
	if addrspace.HasBroadcast(u.network.Prefix) {
		skip = addrspace.First(u.network.Prefix)
	}
	for _, r := range u.unused.Ranges() {
		addr := r.From()
		if addr == skip {
			if addr == r.To() {
				continue
			}
			addr = addr.Next()
		}
		return addr, nil
	}
	return netip.Addr{}, fmt.Errorf("%w: %s", ErrNetworkFull, u.network.Prefix)
}

func (u *Usage) UsedHostList() []AddressHosts {
	out := make([]AddressHosts, 0, len(u.used))
	for _, addr := range u.used {
		out = append(out, AddressHosts{Address: addr, Hosts: slices.Clone(u.hosts[addr])})
	}
	return out
}

func (u *Usage) PtrOverrideList() []netip.Addr {
	out := make([]netip.Addr, 0, len(u.ptrs))
	for _, p := range u.ptrs {
		if len(out) > 0 && out[len(out)-1] == p.Address {
			continue
		}
		out = append(out, p.Address)
	}
	return out
}

func (u *Usage) PtrOverrideHostList() []PtrOverrideHost {
	out := make([]PtrOverrideHost, 0, len(u.ptrs))
	for _, p := range u.ptrs {
		out = append(out, PtrOverrideHost{
			Address:     p.Address,
			Host:        p.Host,
			ReverseName: reverseName(p.Address),
		})
	}
	return out
}

// Reserved yields the reserved addresses in ascending order.
func (u *Usage) Reserved() iter.Seq[netip.Addr] {
	return addrspace.SetAddrs(u.reserved)
}

func (u *Usage) ReservedCount() *big.Int {
	return addrspace.SetSize(u.reserved)
}

// ReservedList returns at most limit reserved addresses.
func (u *Usage) ReservedList(limit int) []netip.Addr {
	return addrspace.Take(u.Reserved(), limit)
}

func reverseName(addr netip.Addr) string {
	name, err := dns.ReverseAddr(addr.String())
	if err != nil {
		return ""
	}
	return strings.ToLower(name)
}
