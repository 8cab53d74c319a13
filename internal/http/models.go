package http

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/Flarenzy/netregistry/internal/domain"
)

// NetworkResponse is the view of a network returned to clients.
type NetworkResponse struct {
	ID           int64     `json:"id" example:"1"`
	Network      string    `json:"network" example:"10.0.0.0/24"`
	Description  string    `json:"description" example:"Office network"`
	Location     string    `json:"location" example:"building-a"`
	Category     string    `json:"category" example:"office"`
	VLAN         *int64    `json:"vlan" example:"100"`
	DNSDelegated bool      `json:"dns_delegated" example:"false"`
	Frozen       bool      `json:"frozen" example:"false"`
	Reserved     int       `json:"reserved" example:"4"`
	CreatedAt    time.Time `json:"created_at" example:"2024-05-10T15:04:05Z"`
	UpdatedAt    time.Time `json:"updated_at" example:"2024-05-10T15:04:05Z"`
}

// CreateNetworkRequest is the payload accepted when creating a network.
// Reserved falls back to the server default when omitted.
type CreateNetworkRequest struct {
	Network      string `json:"network" example:"10.0.0.0/24"`
	Description  string `json:"description" example:"Office network"`
	Location     string `json:"location" example:"building-a"`
	Category     string `json:"category" example:"office"`
	VLAN         *int64 `json:"vlan" example:"100"`
	DNSDelegated bool   `json:"dns_delegated" example:"false"`
	Frozen       bool   `json:"frozen" example:"false"`
	Reserved     *int   `json:"reserved" example:"4"`
}

// UpdateNetworkRequest is a partial update. Omitted fields are left
// unchanged; a negative vlan clears it.
type UpdateNetworkRequest struct {
	Network      *string `json:"network" example:"10.0.0.0/23"`
	Description  *string `json:"description" example:"Office network"`
	Location     *string `json:"location" example:"building-a"`
	Category     *string `json:"category" example:"office"`
	VLAN         *int64  `json:"vlan" example:"100"`
	DNSDelegated *bool   `json:"dns_delegated" example:"true"`
	Frozen       *bool   `json:"frozen" example:"true"`
	Reserved     *int    `json:"reserved" example:"8"`
}

// AddressResponse is the view of an address record returned to clients.
type AddressResponse struct {
	ID         string    `json:"id" example:"50e8400-e29b-41d4-a716-446655440000"`
	IP         string    `json:"ip" example:"10.0.0.10"`
	Host       string    `json:"host" example:"printer-1.example.org"`
	MACAddress string    `json:"macaddress,omitempty" example:"aa:bb:cc:dd:ee:ff"`
	Zone       string    `json:"zone,omitempty" example:"example.org"`
	CreatedAt  time.Time `json:"created_at" example:"2024-05-10T15:04:05Z"`
	UpdatedAt  time.Time `json:"updated_at" example:"2024-05-10T15:04:05Z"`
}

// CreateAddressRequest is the payload accepted when assigning an address.
type CreateAddressRequest struct {
	IP         string `json:"ip" example:"10.0.0.10"`
	Host       string `json:"host" example:"printer-1.example.org"`
	MACAddress string `json:"macaddress" example:"aa:bb:cc:dd:ee:ff"`
}

// AllocateAddressRequest asks for the first unused address of a network.
type AllocateAddressRequest struct {
	Host       string `json:"host" example:"printer-1.example.org"`
	MACAddress string `json:"macaddress" example:"aa:bb:cc:dd:ee:ff"`
}

// UpdateAddressRequest is a partial update. An empty macaddress unbinds
// the MAC address.
type UpdateAddressRequest struct {
	IP         *string `json:"ip" example:"10.0.0.11"`
	Host       *string `json:"host" example:"printer-2.example.org"`
	MACAddress *string `json:"macaddress" example:"aa:bb:cc:dd:ee:ff"`
}

type PtrOverrideResponse struct {
	ID        string    `json:"id" example:"50e8400-e29b-41d4-a716-446655440000"`
	IP        string    `json:"ip" example:"10.0.0.10"`
	Host      string    `json:"host" example:"printer-1.example.org"`
	CreatedAt time.Time `json:"created_at" example:"2024-05-10T15:04:05Z"`
}

type CreatePtrOverrideRequest struct {
	IP   string `json:"ip" example:"10.0.0.10"`
	Host string `json:"host" example:"printer-1.example.org"`
}

type UsedCountResponse struct {
	Network   string `json:"network" example:"10.0.0.0/24"`
	UsedCount int    `json:"used_count" example:"12"`
}

// UnusedCountResponse carries the count as a decimal string since IPv6
// networks exceed the range of JSON numbers.
type UnusedCountResponse struct {
	Network     string `json:"network" example:"10.0.0.0/24"`
	UnusedCount string `json:"unused_count" example:"240"`
}

type FirstUnusedResponse struct {
	IP string `json:"ip" example:"10.0.0.4"`
}

// ErrorResponse is a simple envelope for error messages.
type ErrorResponse struct {
	Error string `json:"error" example:"network not found"`
}

type PtrOverrideHost struct {
	Host        string `json:"host" example:"printer-1.example.org"`
	ReverseName string `json:"reverse_name" example:"10.0.0.10.in-addr.arpa."`
}

// UsedHostList maps each used address to its hosts. It marshals to a JSON
// object whose keys keep ascending address order.
type UsedHostList []domain.AddressHosts

func (l UsedHostList) MarshalJSON() ([]byte, error) {
	return marshalOrdered(len(l), func(i int) (string, any) {
		return l[i].Address.String(), l[i].Hosts
	})
}

// PtrOverrideHostList maps each overridden address to its reverse record,
// keeping ascending address order.
type PtrOverrideHostList []domain.PtrOverrideHost

func (l PtrOverrideHostList) MarshalJSON() ([]byte, error) {
	return marshalOrdered(len(l), func(i int) (string, any) {
		return l[i].Address.String(), PtrOverrideHost{Host: l[i].Host, ReverseName: l[i].ReverseName}
	})
}

func marshalOrdered(n int, entry func(int) (string, any)) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i := range n {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, value := entry(i)
		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(value)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func networkToResponse(n domain.Network) NetworkResponse {
	return NetworkResponse{
		ID:           n.ID,
		Network:      n.Prefix.String(),
		Description:  n.Description,
		Location:     n.Location,
		Category:     n.Category,
		VLAN:         n.VLAN,
		DNSDelegated: n.DNSDelegated,
		Frozen:       n.Frozen,
		Reserved:     n.Reserved,
		CreatedAt:    n.CreatedAt,
		UpdatedAt:    n.UpdatedAt,
	}
}

func networksToResponse(networks []domain.Network) []NetworkResponse {
	out := make([]NetworkResponse, 0, len(networks))
	for _, n := range networks {
		out = append(out, networkToResponse(n))
	}
	return out
}

func addressToResponse(rec domain.AddressRecord) AddressResponse {
	resp := AddressResponse{
		ID:        string(rec.ID),
		IP:        rec.Address.String(),
		Host:      rec.Host,
		Zone:      rec.Zone,
		CreatedAt: rec.CreatedAt,
		UpdatedAt: rec.UpdatedAt,
	}
	if len(rec.MAC) > 0 {
		resp.MACAddress = rec.MAC.String()
	}
	return resp
}

func addressesToResponse(records []domain.AddressRecord) []AddressResponse {
	out := make([]AddressResponse, 0, len(records))
	for _, rec := range records {
		out = append(out, addressToResponse(rec))
	}
	return out
}

func ptrOverrideToResponse(p domain.PtrOverrideRecord) PtrOverrideResponse {
	return PtrOverrideResponse{
		ID:        string(p.ID),
		IP:        p.Address.String(),
		Host:      p.Host,
		CreatedAt: p.CreatedAt,
	}
}

func (r CreateNetworkRequest) toInput() domain.CreateNetworkInput {
	return domain.CreateNetworkInput{
		Network:      r.Network,
		Description:  r.Description,
		Location:     r.Location,
		Category:     r.Category,
		VLAN:         r.VLAN,
		DNSDelegated: r.DNSDelegated,
		Frozen:       r.Frozen,
		Reserved:     r.Reserved,
	}
}

func (r UpdateNetworkRequest) toInput() domain.UpdateNetworkInput {
	return domain.UpdateNetworkInput{
		Network:      r.Network,
		Description:  r.Description,
		Location:     r.Location,
		Category:     r.Category,
		VLAN:         r.VLAN,
		DNSDelegated: r.DNSDelegated,
		Frozen:       r.Frozen,
		Reserved:     r.Reserved,
	}
}
