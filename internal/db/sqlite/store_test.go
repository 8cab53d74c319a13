package sqlite

import (
	"context"
	"errors"
	"net"
	"net/netip"
	"path/filepath"
	"testing"

	"github.com/Flarenzy/netregistry/internal/domain"
	"github.com/google/uuid"
)

func openStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "netregistry.db")
	store, err := Open(context.Background(), path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store, path
}

func TestStoreNetworkRoundTrip(t *testing.T) {
	store, path := openStore(t)
	ctx := context.Background()
	vlan := int64(42)

	created, err := store.Repositories().Networks.Create(ctx, domain.NetworkRecord{
		Prefix:            netip.MustParsePrefix("10.0.0.0/24"),
		Description:       "office",
		VLAN:              &vlan,
		Reserved:          4,
		ReservedRequested: 6,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == 0 || created.CreatedAt.IsZero() {
		t.Fatalf("unexpected created network: %+v", created)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	reopened, err := Open(ctx, path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	t.Cleanup(func() { _ = reopened.Close() })

	got, err := reopened.Repositories().Networks.FindByPrefix(ctx, netip.MustParsePrefix("10.0.0.0/24"))
	if err != nil {
		t.Fatalf("find by prefix: %v", err)
	}
	if got.ID != created.ID || got.Description != "office" || got.VLAN == nil || *got.VLAN != 42 || got.Reserved != 4 || got.ReservedRequested != 6 {
		t.Fatalf("unexpected network after reopen: %+v", got)
	}
}

func TestStoreFindContainingPrefersLongestPrefix(t *testing.T) {
	store, _ := openStore(t)
	ctx := context.Background()
	networks := store.Repositories().Networks

	for _, p := range []string{"10.0.0.0/16", "10.0.1.0/24", "2001:db8::/56"} {
		if _, err := networks.Create(ctx, domain.NetworkRecord{Prefix: netip.MustParsePrefix(p)}); err != nil {
			t.Fatalf("create %s: %v", p, err)
		}
	}

	cases := map[string]string{
		"10.0.1.200":       "10.0.1.0/24",
		"10.0.2.1":         "10.0.0.0/16",
		"2001:db8::ff":     "2001:db8::/56",
		"10.0.255.255":     "10.0.0.0/16",
		"2001:db8:0:ff::1": "2001:db8::/56",
	}
	for ip, want := range cases {
		got, err := networks.FindContaining(ctx, netip.MustParseAddr(ip))
		if err != nil {
			t.Fatalf("%s: %v", ip, err)
		}
		if got.Prefix.String() != want {
			t.Fatalf("%s: expected %s, got %s", ip, want, got.Prefix)
		}
	}
	if _, err := networks.FindContaining(ctx, netip.MustParseAddr("192.0.2.1")); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestStoreAddressRangeAndMac(t *testing.T) {
	store, _ := openStore(t)
	ctx := context.Background()
	addresses := store.Repositories().Addresses
	mac, _ := net.ParseMAC("aa:bb:cc:dd:ee:ff")

	inputs := []domain.AddressRecordInput{
		{Address: netip.MustParseAddr("10.0.0.200"), Host: "b.example.org", MAC: mac},
		{Address: netip.MustParseAddr("10.0.0.20"), Host: "a.example.org"},
		{Address: netip.MustParseAddr("10.0.1.1"), Host: "c.example.org"},
		{Address: netip.MustParseAddr("2001:db8::1"), Host: "a.example.org", MAC: mac},
	}
	for _, in := range inputs {
		in.ID = domain.AddressRecordID(uuid.NewString())
		if _, err := addresses.Create(ctx, in); err != nil {
			t.Fatalf("create %s: %v", in.Address, err)
		}
	}

	inRange, err := addresses.ListInRange(ctx, netip.MustParsePrefix("10.0.0.0/24"))
	if err != nil {
		t.Fatalf("list in range: %v", err)
	}
	if len(inRange) != 2 || inRange[0].Address.String() != "10.0.0.20" || inRange[1].Address.String() != "10.0.0.200" {
		t.Fatalf("unexpected records in range: %+v", inRange)
	}
	if inRange[1].MAC.String() != "aa:bb:cc:dd:ee:ff" || inRange[0].MAC != nil {
		t.Fatalf("unexpected macs: %v %v", inRange[0].MAC, inRange[1].MAC)
	}

	byMAC, err := addresses.ListByMAC(ctx, mac)
	if err != nil {
		t.Fatalf("list by mac: %v", err)
	}
	if len(byMAC) != 2 {
		t.Fatalf("expected 2 records with mac, got %+v", byMAC)
	}

	_, err = addresses.Create(ctx, domain.AddressRecordInput{
		ID:      domain.AddressRecordID(uuid.NewString()),
		Address: netip.MustParseAddr("10.0.0.20"),
		Host:    "a.example.org",
	})
	if !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestStoreWithinTxRollsBack(t *testing.T) {
	store, _ := openStore(t)
	ctx := context.Background()
	boom := errors.New("boom")

	err := store.WithinTx(ctx, func(ctx context.Context, repos domain.Repositories) error {
		if _, err := repos.Networks.Create(ctx, domain.NetworkRecord{Prefix: netip.MustParsePrefix("10.0.0.0/24")}); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}

	networks, err := store.Repositories().Networks.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(networks) != 0 {
		t.Fatalf("expected rollback, got %+v", networks)
	}
}

func TestStoreBacksNetworkService(t *testing.T) {
	store, _ := openStore(t)
	svc := domain.NewNetworkService(store)
	ctx := context.Background()

	network, err := svc.CreateNetwork(ctx, domain.CreateNetworkInput{Network: "192.0.2.0/28"})
	if err != nil {
		t.Fatalf("create network: %v", err)
	}
	if _, err := svc.CreateNetwork(ctx, domain.CreateNetworkInput{Network: "192.0.2.8/29"}); !errors.Is(err, domain.ErrOverlap) {
		t.Fatalf("expected ErrOverlap, got %v", err)
	}

	allocated, err := svc.AllocateAddress(ctx, network.ID, domain.AllocateAddressInput{Host: "host1.example.org"})
	if err != nil {
		t.Fatalf("allocate: %v", err)
	}
	if allocated.Address.String() != "192.0.2.4" {
		t.Fatalf("expected 192.0.2.4, got %s", allocated.Address)
	}

	if _, err := svc.CreatePtrOverride(ctx, domain.CreatePtrOverrideInput{IP: "192.0.2.4", Host: "host1.example.org"}); err != nil {
		t.Fatalf("create ptr override: %v", err)
	}

	usage, err := svc.NetworkUsage(ctx, network.ID)
	if err != nil {
		t.Fatalf("usage: %v", err)
	}
	if usage.UsedCount() != 1 || usage.UnusedCount().Int64() != 10 {
		t.Fatalf("unexpected usage: used=%d unused=%s", usage.UsedCount(), usage.UnusedCount())
	}
	if len(usage.PtrOverrideList()) != 1 {
		t.Fatalf("expected one ptr override, got %v", usage.PtrOverrideList())
	}

	if err := svc.DeleteNetwork(ctx, network.ID); !errors.Is(err, domain.ErrInUse) {
		t.Fatalf("expected ErrInUse, got %v", err)
	}
}
