package db

import (
	"context"
	"net/netip"

	"github.com/Flarenzy/netregistry/internal/domain"
	"github.com/jackc/pgx/v5/pgtype"
)

type NetworkRepository struct {
	queries *Queries
}

func NewNetworkRepository(queries *Queries) *NetworkRepository {
	return &NetworkRepository{queries: queries}
}

func (r *NetworkRepository) List(ctx context.Context) ([]domain.Network, error) {
	rows, err := r.queries.ListNetworks(ctx)
	if err != nil {
		return nil, translateError(err)
	}
	return toDomainNetworks(rows), nil
}

func (r *NetworkRepository) FindByID(ctx context.Context, id int64) (domain.Network, error) {
	row, err := r.queries.GetNetworkByID(ctx, id)
	if err != nil {
		return domain.Network{}, translateError(err)
	}
	return toDomainNetwork(row), nil
}

func (r *NetworkRepository) FindByPrefix(ctx context.Context, prefix netip.Prefix) (domain.Network, error) {
	row, err := r.queries.GetNetworkByPrefix(ctx, prefix)
	if err != nil {
		return domain.Network{}, translateError(err)
	}
	return toDomainNetwork(row), nil
}

func (r *NetworkRepository) FindContaining(ctx context.Context, addr netip.Addr) (domain.Network, error) {
	row, err := r.queries.GetNetworkContaining(ctx, addr)
	if err != nil {
		return domain.Network{}, translateError(err)
	}
	return toDomainNetwork(row), nil
}

func (r *NetworkRepository) ListByVLAN(ctx context.Context, vlan int64) ([]domain.Network, error) {
	rows, err := r.queries.ListNetworksByVlan(ctx, vlan)
	if err != nil {
		return nil, translateError(err)
	}
	return toDomainNetworks(rows), nil
}

func (r *NetworkRepository) Create(ctx context.Context, record domain.NetworkRecord) (domain.Network, error) {
	row, err := r.queries.CreateNetwork(ctx, toNetworkParams(record))
	if err != nil {
		return domain.Network{}, translateError(err)
	}
	return toDomainNetwork(row), nil
}

func (r *NetworkRepository) Update(ctx context.Context, id int64, record domain.NetworkRecord) (domain.Network, error) {
	row, err := r.queries.UpdateNetwork(ctx, id, toNetworkParams(record))
	if err != nil {
		return domain.Network{}, translateError(err)
	}
	return toDomainNetwork(row), nil
}

func (r *NetworkRepository) Delete(ctx context.Context, id int64) (bool, error) {
	deleted, err := r.queries.DeleteNetworkByID(ctx, id)
	if err != nil {
		return false, translateError(err)
	}
	return deleted > 0, nil
}

func toNetworkParams(record domain.NetworkRecord) NetworkParams {
	params := NetworkParams{
		Network:           record.Prefix,
		Description:       record.Description,
		Location:          record.Location,
		Category:          record.Category,
		DnsDelegated:      record.DNSDelegated,
		Frozen:            record.Frozen,
		Reserved:          int32(record.Reserved),
		ReservedRequested: int32(record.ReservedRequested),
	}
	if record.VLAN != nil {
		params.Vlan = pgtype.Int8{Int64: *record.VLAN, Valid: true}
	}
	return params
}

func toDomainNetworks(rows []NetworkRow) []domain.Network {
	out := make([]domain.Network, 0, len(rows))
	for _, row := range rows {
		out = append(out, toDomainNetwork(row))
	}
	return out
}

func toDomainNetwork(row NetworkRow) domain.Network {
	network := domain.Network{
		ID:                row.ID,
		Prefix:            row.Network,
		Description:       row.Description,
		Location:          row.Location,
		Category:          row.Category,
		DNSDelegated:      row.DnsDelegated,
		Frozen:            row.Frozen,
		Reserved:          int(row.Reserved),
		ReservedRequested: int(row.ReservedRequested),
		CreatedAt:         row.CreatedAt.Time,
		UpdatedAt:         row.UpdatedAt.Time,
	}
	if row.Vlan.Valid {
		vlan := row.Vlan.Int64
		network.VLAN = &vlan
	}
	return network
}
