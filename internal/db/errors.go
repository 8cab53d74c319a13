package db

import (
	"errors"
	"fmt"

	"github.com/Flarenzy/netregistry/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	uniqueViolation    = "23505"
	exclusionViolation = "23P01"
	checkViolation     = "23514"

	networkPrefixConstraint = "networks_network_key"
)

// translateError maps driver errors onto the domain sentinels.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case exclusionViolation:
		return fmt.Errorf("%w: %s", domain.ErrOverlap, pgErr.Detail)
	case uniqueViolation:
		if pgErr.ConstraintName == networkPrefixConstraint {
			return fmt.Errorf("%w: %s", domain.ErrOverlap, pgErr.Detail)
		}
		return fmt.Errorf("%w: %s", domain.ErrConflict, pgErr.ConstraintName)
	case checkViolation:
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, pgErr.ConstraintName)
	}
	return err
}
