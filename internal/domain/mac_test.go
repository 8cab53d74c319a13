package domain

import (
	"context"
	"errors"
	"net/netip"
	"testing"
)

func TestMacConflictWithinVLANSiblings(t *testing.T) {
	svc := NewNetworkService(newMemStore())
	mustCreateNetwork(t, svc, CreateNetworkInput{Network: "10.0.0.0/24", VLAN: ptr(int64(123))})
	mustCreateNetwork(t, svc, CreateNetworkInput{Network: "10.0.1.0/24", VLAN: ptr(int64(123))})
	mustCreateNetwork(t, svc, CreateNetworkInput{Network: "2001:db8::/56", VLAN: ptr(int64(123))})

	first := mustCreateAddress(t, svc, CreateAddressInput{IP: "10.0.0.10", Host: "host1.example.org", MAC: "aa:bb:cc:dd:ee:ff"})

	_, err := svc.CreateAddress(context.Background(), CreateAddressInput{IP: "10.0.1.10", Host: "host2.example.org", MAC: "aa:bb:cc:dd:ee:ff"})
	if !errors.Is(err, ErrMacConflict) {
		t.Fatalf("expected ErrMacConflict, got %v", err)
	}
	var conflict *MacConflictError
	if !errors.As(err, &conflict) || conflict.Conflicting.ID != first.ID {
		t.Fatalf("expected conflict with %s, got %v", first.ID, err)
	}

	if _, err := svc.CreateAddress(context.Background(), CreateAddressInput{IP: "2001:db8::10", Host: "host1.example.org", MAC: "aa:bb:cc:dd:ee:ff"}); err != nil {
		t.Fatalf("expected ipv6 record with same mac to succeed, got %v", err)
	}
}

func TestMacAllowedAcrossDifferentVLANs(t *testing.T) {
	svc := NewNetworkService(newMemStore())
	mustCreateNetwork(t, svc, CreateNetworkInput{Network: "10.0.0.0/24", VLAN: ptr(int64(123))})
	mustCreateNetwork(t, svc, CreateNetworkInput{Network: "10.0.1.0/24", VLAN: ptr(int64(135))})

	mustCreateAddress(t, svc, CreateAddressInput{IP: "10.0.0.10", Host: "host1.example.org", MAC: "aa:bb:cc:dd:ee:ff"})
	mustCreateAddress(t, svc, CreateAddressInput{IP: "10.0.1.10", Host: "host2.example.org", MAC: "aa:bb:cc:dd:ee:ff"})
}

func TestMacConflictWithinNetworkWithoutVLAN(t *testing.T) {
	svc := NewNetworkService(newMemStore())
	mustCreateNetwork(t, svc, CreateNetworkInput{Network: "10.0.0.0/24"})
	mustCreateNetwork(t, svc, CreateNetworkInput{Network: "10.0.1.0/24"})

	mustCreateAddress(t, svc, CreateAddressInput{IP: "10.0.0.10", Host: "host1.example.org", MAC: "aa:bb:cc:dd:ee:ff"})
	mustCreateAddress(t, svc, CreateAddressInput{IP: "10.0.1.10", Host: "host2.example.org", MAC: "aa:bb:cc:dd:ee:ff"})

	_, err := svc.CreateAddress(context.Background(), CreateAddressInput{IP: "10.0.0.11", Host: "host3.example.org", MAC: "AA-BB-CC-DD-EE-FF"})
	if !errors.Is(err, ErrMacConflict) {
		t.Fatalf("expected ErrMacConflict, got %v", err)
	}
}

func TestMacUniqueGloballyOutsideNetworks(t *testing.T) {
	svc := NewNetworkService(newMemStore())
	mustCreateNetwork(t, svc, CreateNetworkInput{Network: "10.0.0.0/24"})
	mustCreateAddress(t, svc, CreateAddressInput{IP: "10.0.0.10", Host: "host1.example.org", MAC: "aa:bb:cc:dd:ee:ff"})

	_, err := svc.CreateAddress(context.Background(), CreateAddressInput{IP: "198.51.100.7", Host: "host2.example.org", MAC: "aa:bb:cc:dd:ee:ff"})
	if !errors.Is(err, ErrMacConflict) {
		t.Fatalf("expected ErrMacConflict, got %v", err)
	}
}

func TestMacCheckerExcludesRecordBeingUpdated(t *testing.T) {
	store := newMemStore()
	svc := NewNetworkService(store)
	mustCreateNetwork(t, svc, CreateNetworkInput{Network: "10.0.0.0/24"})
	rec := mustCreateAddress(t, svc, CreateAddressInput{IP: "10.0.0.10", Host: "host1.example.org", MAC: "aa:bb:cc:dd:ee:ff"})

	repos := store.Repositories()
	checker := NewMacChecker(repos.Networks, repos.Addresses)
	if err := checker.Check(context.Background(), netip.MustParseAddr("10.0.0.12"), rec.MAC, rec.ID); err != nil {
		t.Fatalf("expected excluded record to pass, got %v", err)
	}
	if err := checker.Check(context.Background(), netip.MustParseAddr("10.0.0.12"), rec.MAC, ""); !errors.Is(err, ErrMacConflict) {
		t.Fatalf("expected ErrMacConflict, got %v", err)
	}
	if err := checker.Check(context.Background(), netip.MustParseAddr("10.0.0.12"), nil, ""); err != nil {
		t.Fatalf("expected records without mac to pass, got %v", err)
	}
}
