package db

import (
	"context"
	"fmt"
	"net"
	"net/netip"

	"github.com/Flarenzy/netregistry/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type AddressRepository struct {
	queries *Queries
}

func NewAddressRepository(queries *Queries) *AddressRepository {
	return &AddressRepository{queries: queries}
}

func (r *AddressRepository) ListInRange(ctx context.Context, prefix netip.Prefix) ([]domain.AddressRecord, error) {
	rows, err := r.queries.ListIPAddressesInRange(ctx, prefix)
	if err != nil {
		return nil, translateError(err)
	}
	return toDomainAddresses(rows), nil
}

func (r *AddressRepository) ListByMAC(ctx context.Context, mac net.HardwareAddr) ([]domain.AddressRecord, error) {
	rows, err := r.queries.ListIPAddressesByMac(ctx, mac)
	if err != nil {
		return nil, translateError(err)
	}
	return toDomainAddresses(rows), nil
}

func (r *AddressRepository) FindByID(ctx context.Context, id domain.AddressRecordID) (domain.AddressRecord, error) {
	parsedID, err := parseUUID(string(id))
	if err != nil {
		return domain.AddressRecord{}, fmt.Errorf("%w: invalid address id", domain.ErrInvalidInput)
	}

	row, err := r.queries.GetIPAddressByID(ctx, parsedID)
	if err != nil {
		return domain.AddressRecord{}, translateError(err)
	}
	return toDomainAddress(row), nil
}

func (r *AddressRepository) Create(ctx context.Context, input domain.AddressRecordInput) (domain.AddressRecord, error) {
	params, err := toAddressParams(input)
	if err != nil {
		return domain.AddressRecord{}, err
	}

	row, err := r.queries.CreateIPAddress(ctx, params)
	if err != nil {
		return domain.AddressRecord{}, translateError(err)
	}
	return toDomainAddress(row), nil
}

func (r *AddressRepository) Update(ctx context.Context, input domain.AddressRecordInput) (domain.AddressRecord, error) {
	params, err := toAddressParams(input)
	if err != nil {
		return domain.AddressRecord{}, err
	}

	row, err := r.queries.UpdateIPAddress(ctx, params)
	if err != nil {
		return domain.AddressRecord{}, translateError(err)
	}
	return toDomainAddress(row), nil
}

func (r *AddressRepository) Delete(ctx context.Context, id domain.AddressRecordID) (bool, error) {
	parsedID, err := parseUUID(string(id))
	if err != nil {
		return false, fmt.Errorf("%w: invalid address id", domain.ErrInvalidInput)
	}

	deleted, err := r.queries.DeleteIPAddressByID(ctx, parsedID)
	if err != nil {
		return false, translateError(err)
	}
	return deleted > 0, nil
}

func toAddressParams(input domain.AddressRecordInput) (IPAddressParams, error) {
	parsedID, err := parseUUID(string(input.ID))
	if err != nil {
		return IPAddressParams{}, fmt.Errorf("%w: invalid address id", domain.ErrInvalidInput)
	}
	return IPAddressParams{
		ID:         parsedID,
		Address:    input.Address,
		Host:       input.Host,
		Macaddress: macArg(input.MAC),
	}, nil
}

// macArg binds an absent MAC as SQL NULL.
func macArg(mac net.HardwareAddr) any {
	if len(mac) == 0 {
		return nil
	}
	return mac
}

func toDomainAddresses(rows []IPAddressRow) []domain.AddressRecord {
	out := make([]domain.AddressRecord, 0, len(rows))
	for _, row := range rows {
		out = append(out, toDomainAddress(row))
	}
	return out
}

func toDomainAddress(row IPAddressRow) domain.AddressRecord {
	return domain.AddressRecord{
		ID:        domain.AddressRecordID(uuidString(row.ID)),
		Address:   row.Address,
		Host:      row.Host,
		MAC:       row.Macaddress,
		CreatedAt: row.CreatedAt.Time,
		UpdatedAt: row.UpdatedAt.Time,
	}
}

func parseUUID(id string) (pgtype.UUID, error) {
	u, err := uuid.Parse(id)
	if err != nil {
		return pgtype.UUID{}, err
	}

	var parsed pgtype.UUID
	copy(parsed.Bytes[:], u[:])
	parsed.Valid = true

	return parsed, nil
}

func uuidString(id pgtype.UUID) string {
	if !id.Valid {
		return ""
	}
	return uuid.UUID(id.Bytes).String()
}
