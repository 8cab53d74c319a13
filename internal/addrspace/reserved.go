package addrspace

import (
	"math"
	"math/big"
	"net/netip"

	"go4.org/netipx"
)

// DefaultReserved is the number of addresses held back at the low end of
// a network when none is requested.
const DefaultReserved = 4

// MaxReserved is the largest reserved count a network may request. Counts
// are stored as 32-bit integers.
const MaxReserved = math.MaxInt32

// ClampReserved limits requested to the capacity of p. Negative requests
// clamp to zero.
func ClampReserved(p netip.Prefix, requested int) int {
	if requested <= 0 {
		return 0
	}
	n := NumAddresses(p)
	if n.IsInt64() && int64(requested) > n.Int64() {
		return int(n.Int64())
	}
	return requested
}

// HasBroadcast reports whether p reserves its last address as broadcast.
// Only IPv4 networks with more than two addresses do; /31 and /32 are
// point-to-point and host routes.
func HasBroadcast(p netip.Prefix) bool {
	return p.IsValid() && p.Addr().Is4() && p.Bits() < 31
}

// ReservedSet returns the reserved addresses of p: the first count
// addresses, clamped to capacity, plus the IPv4 broadcast address.
func ReservedSet(p netip.Prefix, count int) (*netipx.IPSet, error) {
	var b netipx.IPSetBuilder
	count = ClampReserved(p, count)
	if count > 0 {
		to, ok := AddrAt(p, big.NewInt(int64(count-1)))
		if ok {
			b.AddRange(netipx.IPRangeFrom(First(p), to))
		}
	}
	if HasBroadcast(p) {
		b.Add(Last(p))
	}
	return b.IPSet()
}

// Reserved returns the reserved addresses of p in ascending order.
func Reserved(p netip.Prefix, count int) ([]netip.Addr, error) {
	set, err := ReservedSet(p, count)
	if err != nil {
		return nil, err
	}
	out := []netip.Addr{}
	for a := range SetAddrs(set) {
		out = append(out, a)
	}
	return out, nil
}
