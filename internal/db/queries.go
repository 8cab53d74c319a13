package db

import (
	"context"
	"net"
	"net/netip"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
)

type DBTX interface {
	Exec(context.Context, string, ...any) (pgconn.CommandTag, error)
	Query(context.Context, string, ...any) (pgx.Rows, error)
	QueryRow(context.Context, string, ...any) pgx.Row
}

// Queries holds the SQL used by the repositories. It runs against the
// pool or a transaction alike.
type Queries struct {
	db DBTX
}

func New(db DBTX) *Queries {
	return &Queries{db: db}
}

func (q *Queries) WithTx(tx pgx.Tx) *Queries {
	return &Queries{db: tx}
}

type NetworkRow struct {
	ID                int64
	Network           netip.Prefix
	Description       string
	Location          string
	Category          string
	Vlan              pgtype.Int8
	DnsDelegated      bool
	Frozen            bool
	Reserved          int32
	ReservedRequested int32
	CreatedAt         pgtype.Timestamptz
	UpdatedAt         pgtype.Timestamptz
}

type IPAddressRow struct {
	ID         pgtype.UUID
	Address    netip.Addr
	Host       string
	Macaddress net.HardwareAddr
	CreatedAt  pgtype.Timestamptz
	UpdatedAt  pgtype.Timestamptz
}

type PtrOverrideRow struct {
	ID        pgtype.UUID
	Address   netip.Addr
	Host      string
	CreatedAt pgtype.Timestamptz
}

const networkColumns = `id, network, description, location, category, vlan, dns_delegated, frozen, reserved, reserved_requested, created_at, updated_at`

func scanNetwork(row pgx.Row) (NetworkRow, error) {
	var n NetworkRow
	err := row.Scan(
		&n.ID,
		&n.Network,
		&n.Description,
		&n.Location,
		&n.Category,
		&n.Vlan,
		&n.DnsDelegated,
		&n.Frozen,
		&n.Reserved,
		&n.ReservedRequested,
		&n.CreatedAt,
		&n.UpdatedAt,
	)
	return n, err
}

func collectNetworks(rows pgx.Rows, err error) ([]NetworkRow, error) {
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (NetworkRow, error) {
		return scanNetwork(row)
	})
}

const listNetworks = `SELECT ` + networkColumns + ` FROM networks ORDER BY id`

func (q *Queries) ListNetworks(ctx context.Context) ([]NetworkRow, error) {
	return collectNetworks(q.db.Query(ctx, listNetworks))
}

const getNetworkByID = `SELECT ` + networkColumns + ` FROM networks WHERE id = $1`

func (q *Queries) GetNetworkByID(ctx context.Context, id int64) (NetworkRow, error) {
	return scanNetwork(q.db.QueryRow(ctx, getNetworkByID, id))
}

const getNetworkByPrefix = `SELECT ` + networkColumns + ` FROM networks WHERE network = $1::cidr`

func (q *Queries) GetNetworkByPrefix(ctx context.Context, prefix netip.Prefix) (NetworkRow, error) {
	return scanNetwork(q.db.QueryRow(ctx, getNetworkByPrefix, prefix))
}

const getNetworkContaining = `SELECT ` + networkColumns + ` FROM networks
WHERE network >>= $1::inet
ORDER BY masklen(network) DESC
LIMIT 1`

func (q *Queries) GetNetworkContaining(ctx context.Context, addr netip.Addr) (NetworkRow, error) {
	return scanNetwork(q.db.QueryRow(ctx, getNetworkContaining, addr))
}

const listNetworksByVlan = `SELECT ` + networkColumns + ` FROM networks WHERE vlan = $1 ORDER BY id`

func (q *Queries) ListNetworksByVlan(ctx context.Context, vlan int64) ([]NetworkRow, error) {
	return collectNetworks(q.db.Query(ctx, listNetworksByVlan, vlan))
}

type NetworkParams struct {
	Network           netip.Prefix
	Description       string
	Location          string
	Category          string
	Vlan              pgtype.Int8
	DnsDelegated      bool
	Frozen            bool
	Reserved          int32
	ReservedRequested int32
}

const createNetwork = `INSERT INTO networks (network, description, location, category, vlan, dns_delegated, frozen, reserved, reserved_requested)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING ` + networkColumns

func (q *Queries) CreateNetwork(ctx context.Context, arg NetworkParams) (NetworkRow, error) {
	return scanNetwork(q.db.QueryRow(ctx, createNetwork,
		arg.Network,
		arg.Description,
		arg.Location,
		arg.Category,
		arg.Vlan,
		arg.DnsDelegated,
		arg.Frozen,
		arg.Reserved,
		arg.ReservedRequested,
	))
}

const updateNetwork = `UPDATE networks
SET network = $2, description = $3, location = $4, category = $5, vlan = $6,
    dns_delegated = $7, frozen = $8, reserved = $9, reserved_requested = $10, updated_at = now()
WHERE id = $1
RETURNING ` + networkColumns

func (q *Queries) UpdateNetwork(ctx context.Context, id int64, arg NetworkParams) (NetworkRow, error) {
	return scanNetwork(q.db.QueryRow(ctx, updateNetwork,
		id,
		arg.Network,
		arg.Description,
		arg.Location,
		arg.Category,
		arg.Vlan,
		arg.DnsDelegated,
		arg.Frozen,
		arg.Reserved,
		arg.ReservedRequested,
	))
}

const deleteNetworkByID = `DELETE FROM networks WHERE id = $1`

func (q *Queries) DeleteNetworkByID(ctx context.Context, id int64) (int64, error) {
	tag, err := q.db.Exec(ctx, deleteNetworkByID, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const addressColumns = `id, address, host, macaddress, created_at, updated_at`

func scanIPAddress(row pgx.Row) (IPAddressRow, error) {
	var a IPAddressRow
	err := row.Scan(&a.ID, &a.Address, &a.Host, &a.Macaddress, &a.CreatedAt, &a.UpdatedAt)
	return a, err
}

func collectIPAddresses(rows pgx.Rows, err error) ([]IPAddressRow, error) {
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (IPAddressRow, error) {
		return scanIPAddress(row)
	})
}

const listIPAddressesInRange = `SELECT ` + addressColumns + ` FROM ip_addresses
WHERE address <<= $1::cidr
ORDER BY address, host`

func (q *Queries) ListIPAddressesInRange(ctx context.Context, prefix netip.Prefix) ([]IPAddressRow, error) {
	return collectIPAddresses(q.db.Query(ctx, listIPAddressesInRange, prefix))
}

const listIPAddressesByMac = `SELECT ` + addressColumns + ` FROM ip_addresses
WHERE macaddress = $1::macaddr
ORDER BY address, host`

func (q *Queries) ListIPAddressesByMac(ctx context.Context, mac net.HardwareAddr) ([]IPAddressRow, error) {
	return collectIPAddresses(q.db.Query(ctx, listIPAddressesByMac, mac))
}

const getIPAddressByID = `SELECT ` + addressColumns + ` FROM ip_addresses WHERE id = $1`

func (q *Queries) GetIPAddressByID(ctx context.Context, id pgtype.UUID) (IPAddressRow, error) {
	return scanIPAddress(q.db.QueryRow(ctx, getIPAddressByID, id))
}

type IPAddressParams struct {
	ID         pgtype.UUID
	Address    netip.Addr
	Host       string
	Macaddress any
}

const createIPAddress = `INSERT INTO ip_addresses (id, address, host, macaddress)
VALUES ($1, $2, $3, $4)
RETURNING ` + addressColumns

func (q *Queries) CreateIPAddress(ctx context.Context, arg IPAddressParams) (IPAddressRow, error) {
	return scanIPAddress(q.db.QueryRow(ctx, createIPAddress, arg.ID, arg.Address, arg.Host, arg.Macaddress))
}

const updateIPAddress = `UPDATE ip_addresses
SET address = $2, host = $3, macaddress = $4, updated_at = now()
WHERE id = $1
RETURNING ` + addressColumns

func (q *Queries) UpdateIPAddress(ctx context.Context, arg IPAddressParams) (IPAddressRow, error) {
	return scanIPAddress(q.db.QueryRow(ctx, updateIPAddress, arg.ID, arg.Address, arg.Host, arg.Macaddress))
}

const deleteIPAddressByID = `DELETE FROM ip_addresses WHERE id = $1`

func (q *Queries) DeleteIPAddressByID(ctx context.Context, id pgtype.UUID) (int64, error) {
	tag, err := q.db.Exec(ctx, deleteIPAddressByID, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const ptrOverrideColumns = `id, address, host, created_at`

func scanPtrOverride(row pgx.Row) (PtrOverrideRow, error) {
	var p PtrOverrideRow
	err := row.Scan(&p.ID, &p.Address, &p.Host, &p.CreatedAt)
	return p, err
}

const listPtrOverridesInRange = `SELECT ` + ptrOverrideColumns + ` FROM ptr_overrides
WHERE address <<= $1::cidr
ORDER BY address`

func (q *Queries) ListPtrOverridesInRange(ctx context.Context, prefix netip.Prefix) ([]PtrOverrideRow, error) {
	rows, err := q.db.Query(ctx, listPtrOverridesInRange, prefix)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (PtrOverrideRow, error) {
		return scanPtrOverride(row)
	})
}

const createPtrOverride = `INSERT INTO ptr_overrides (id, address, host)
VALUES ($1, $2, $3)
RETURNING ` + ptrOverrideColumns

func (q *Queries) CreatePtrOverride(ctx context.Context, id pgtype.UUID, addr netip.Addr, host string) (PtrOverrideRow, error) {
	return scanPtrOverride(q.db.QueryRow(ctx, createPtrOverride, id, addr, host))
}

const deletePtrOverrideByID = `DELETE FROM ptr_overrides WHERE id = $1`

func (q *Queries) DeletePtrOverrideByID(ctx context.Context, id pgtype.UUID) (int64, error) {
	tag, err := q.db.Exec(ctx, deletePtrOverrideByID, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const acquireWriteLock = `SELECT pg_advisory_xact_lock($1)`

// AcquireWriteLock serializes writers until the surrounding transaction ends.
func (q *Queries) AcquireWriteLock(ctx context.Context, key int64) error {
	_, err := q.db.Exec(ctx, acquireWriteLock, key)
	return err
}
