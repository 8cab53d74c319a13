// Package addrspace implements prefix arithmetic over IPv4 and IPv6
// networks. Sizes are big integers since an IPv6 /56 alone holds more
// addresses than an int64 can count.
package addrspace

import (
	"errors"
	"fmt"
	"iter"
	"math/big"
	"net/netip"
	"strings"

	"go4.org/netipx"
)

var (
	ErrInvalidPrefix  = errors.New("invalid prefix")
	ErrInvalidAddress = errors.New("invalid address")
)

// ParsePrefix parses a CIDR string. Host bits must be zero.
func ParsePrefix(s string) (netip.Prefix, error) {
	s = strings.TrimSpace(s)
	p, err := netip.ParsePrefix(s)
	if err != nil {
		return netip.Prefix{}, fmt.Errorf("%w: %v", ErrInvalidPrefix, err)
	}
	if p.Addr().Is4In6() {
		return netip.Prefix{}, fmt.Errorf("%w: %s is an ipv4-mapped prefix", ErrInvalidPrefix, s)
	}
	if p.Masked() != p {
		return netip.Prefix{}, fmt.Errorf("%w: %s has host bits set", ErrInvalidPrefix, s)
	}
	return p, nil
}

// ParseAddr parses an address, unmapping IPv4-mapped IPv6 forms.
func ParseAddr(s string) (netip.Addr, error) {
	a, err := netip.ParseAddr(strings.TrimSpace(s))
	if err != nil {
		return netip.Addr{}, fmt.Errorf("%w: %v", ErrInvalidAddress, err)
	}
	if a.Zone() != "" {
		return netip.Addr{}, fmt.Errorf("%w: zoned address %s", ErrInvalidAddress, s)
	}
	return a.Unmap(), nil
}

// NumAddresses returns 2^(bits-prefixLength).
func NumAddresses(p netip.Prefix) *big.Int {
	if !p.IsValid() {
		return new(big.Int)
	}
	return new(big.Int).Lsh(big.NewInt(1), uint(p.Addr().BitLen()-p.Bits()))
}

func Contains(p netip.Prefix, a netip.Addr) bool {
	return p.IsValid() && a.IsValid() && p.Contains(a)
}

// Overlaps reports whether the ranges of a and b intersect. Prefixes of
// different families never overlap.
func Overlaps(a, b netip.Prefix) bool {
	if !a.IsValid() || !b.IsValid() || a.Addr().Is4() != b.Addr().Is4() {
		return false
	}
	return a.Overlaps(b)
}

func First(p netip.Prefix) netip.Addr {
	return p.Masked().Addr()
}

func Last(p netip.Prefix) netip.Addr {
	return netipx.PrefixLastIP(p.Masked())
}

// Offset returns the distance of a from the first address of p.
func Offset(p netip.Prefix, a netip.Addr) *big.Int {
	return new(big.Int).Sub(addrToBig(a), addrToBig(First(p)))
}

// AddrAt returns the n-th address of p, counting from zero. ok is false
// when n falls outside the prefix.
func AddrAt(p netip.Prefix, n *big.Int) (netip.Addr, bool) {
	if n.Sign() < 0 || n.Cmp(NumAddresses(p)) >= 0 {
		return netip.Addr{}, false
	}
	v := new(big.Int).Add(addrToBig(First(p)), n)
	return bigToAddr(v, p.Addr().BitLen())
}

// RangeSize returns the number of addresses in r.
func RangeSize(r netipx.IPRange) *big.Int {
	if !r.IsValid() {
		return new(big.Int)
	}
	size := new(big.Int).Sub(addrToBig(r.To()), addrToBig(r.From()))
	return size.Add(size, big.NewInt(1))
}

// SetSize returns the number of addresses in s.
func SetSize(s *netipx.IPSet) *big.Int {
	total := new(big.Int)
	if s == nil {
		return total
	}
	for _, r := range s.Ranges() {
		total.Add(total, RangeSize(r))
	}
	return total
}

// Enumerate yields every address of p in ascending order, leaving out
// the addresses in skip. The sequence is lazy and can be ranged over
// more than once; callers bound it with Take.
func Enumerate(p netip.Prefix, skip *netipx.IPSet) iter.Seq[netip.Addr] {
	return func(yield func(netip.Addr) bool) {
		if !p.IsValid() {
			return
		}
		var b netipx.IPSetBuilder
		b.AddPrefix(p.Masked())
		if skip != nil {
			b.RemoveSet(skip)
		}
		set, err := b.IPSet()
		if err != nil {
			return
		}
		for a := range SetAddrs(set) {
			if !yield(a) {
				return
			}
		}
	}
}

// SetAddrs yields the members of s in ascending order.
func SetAddrs(s *netipx.IPSet) iter.Seq[netip.Addr] {
	return func(yield func(netip.Addr) bool) {
		if s == nil {
			return
		}
		for _, r := range s.Ranges() {
			for a := r.From(); ; a = a.Next() {
				if !yield(a) {
					return
				}
				if a == r.To() {
					break
				}
			}
		}
	}
}

// Take collects at most n addresses from seq.
func Take(seq iter.Seq[netip.Addr], n int) []netip.Addr {
	if n <= 0 {
		return []netip.Addr{}
	}
	out := make([]netip.Addr, 0, min(n, 1024))
	for a := range seq {
		out = append(out, a)
		if len(out) == n {
			break
		}
	}
	return out
}

func addrToBig(a netip.Addr) *big.Int {
	return new(big.Int).SetBytes(a.AsSlice())
}

func bigToAddr(i *big.Int, bits int) (netip.Addr, bool) {
	if i.Sign() < 0 || i.BitLen() > bits {
		return netip.Addr{}, false
	}
	if bits == 32 {
		var out [4]byte
		i.FillBytes(out[:])
		return netip.AddrFrom4(out), true
	}
	var out [16]byte
	i.FillBytes(out[:])
	return netip.AddrFrom16(out), true
}
