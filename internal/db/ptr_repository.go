package db

import (
	"context"
	"fmt"
	"net/netip"

	"github.com/Flarenzy/netregistry/internal/domain"
)

type PtrOverrideRepository struct {
	queries *Queries
}

func NewPtrOverrideRepository(queries *Queries) *PtrOverrideRepository {
	return &PtrOverrideRepository{queries: queries}
}

func (r *PtrOverrideRepository) ListInRange(ctx context.Context, prefix netip.Prefix) ([]domain.PtrOverrideRecord, error) {
	rows, err := r.queries.ListPtrOverridesInRange(ctx, prefix)
	if err != nil {
		return nil, translateError(err)
	}

	out := make([]domain.PtrOverrideRecord, 0, len(rows))
	for _, row := range rows {
		out = append(out, toDomainPtrOverride(row))
	}
	return out, nil
}

func (r *PtrOverrideRepository) Create(ctx context.Context, input domain.PtrOverrideInput) (domain.PtrOverrideRecord, error) {
	parsedID, err := parseUUID(string(input.ID))
	if err != nil {
		return domain.PtrOverrideRecord{}, fmt.Errorf("%w: invalid ptr override id", domain.ErrInvalidInput)
	}

	row, err := r.queries.CreatePtrOverride(ctx, parsedID, input.Address, input.Host)
	if err != nil {
		return domain.PtrOverrideRecord{}, translateError(err)
	}
	return toDomainPtrOverride(row), nil
}

func (r *PtrOverrideRepository) Delete(ctx context.Context, id domain.PtrOverrideID) (bool, error) {
	parsedID, err := parseUUID(string(id))
	if err != nil {
		return false, fmt.Errorf("%w: invalid ptr override id", domain.ErrInvalidInput)
	}

	deleted, err := r.queries.DeletePtrOverrideByID(ctx, parsedID)
	if err != nil {
		return false, translateError(err)
	}
	return deleted > 0, nil
}

func toDomainPtrOverride(row PtrOverrideRow) domain.PtrOverrideRecord {
	return domain.PtrOverrideRecord{
		ID:        domain.PtrOverrideID(uuidString(row.ID)),
		Address:   row.Address,
		Host:      row.Host,
		CreatedAt: row.CreatedAt.Time,
	}
}
