package domain

import (
	"cmp"
	"slices"
	"strings"

	"github.com/miekg/dns"
)

// ZoneIndex matches host names to the longest forward zone suffix, so
// foo.example.org lands in foo.example.org rather than example.org.
type ZoneIndex struct {
	zones []string
}

func NewZoneIndex(zones []string) *ZoneIndex {
	seen := make(map[string]struct{}, len(zones))
	out := make([]string, 0, len(zones))
	for _, z := range zones {
		z = canonicalName(z)
		if z == "" {
			continue
		}
		if _, ok := seen[z]; ok {
			continue
		}
		seen[z] = struct{}{}
		out = append(out, z)
	}
	slices.SortFunc(out, func(a, b string) int {
		return cmp.Or(cmp.Compare(len(b), len(a)), strings.Compare(a, b))
	})
	return &ZoneIndex{zones: out}
}

// Match returns the zone holding host, or "" when none does.
func (z *ZoneIndex) Match(host string) string {
	if z == nil {
		return ""
	}
	host = canonicalName(host)
	for _, zone := range z.zones {
		if host == zone || strings.HasSuffix(host, "."+zone) {
			return zone
		}
	}
	return ""
}

func canonicalName(name string) string {
	return strings.TrimSuffix(strings.ToLower(strings.TrimSpace(name)), ".")
}

func validHostName(name string) bool {
	name = canonicalName(name)
	if name == "" {
		return false
	}
	if _, ok := dns.IsDomainName(name); !ok {
		return false
	}
	for _, label := range dns.SplitDomainName(name) {
		if strings.HasPrefix(label, "-") || strings.HasSuffix(label, "-") {
			return false
		}
		for _, r := range label {
			if !isHostRune(r) {
				return false
			}
		}
	}
	return true
}

func isHostRune(r rune) bool {
	return r >= 'a' && r <= 'z' || r >= '0' && r <= '9' || r == '-' || r == '_'
}
