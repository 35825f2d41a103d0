package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/axiomhq/nhuff/internal/blob"
)

func Open(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}
	cfg.MaxConns = 5
	cfg.MinConns = 1
	cfg.MaxConnLifetime = time.Hour
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("pgxpool: %w", err)
	}
	return pool, nil
}

func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS code_tables (
  name TEXT PRIMARY KEY,
  radix INTEGER NOT NULL,
  tbl BYTEA NOT NULL,
  updated_at TIMESTAMPTZ NOT NULL
)`)
	return err
}

type tableRepoPostgres struct {
	pool  *pgxpool.Pool
	codec blob.Codec
}

// NewTableRepoPostgres stores tables in the code_tables relation, packed
// with codec.
func NewTableRepoPostgres(pool *pgxpool.Pool, codec blob.Codec) TableRepo {
	return &tableRepoPostgres{pool: pool, codec: codec}
}

func (r *tableRepoPostgres) Save(ctx context.Context, rec *Record) error {
	b, err := blob.MarshalTable(rec.Table, r.codec)
	if err != nil {
		return fmt.Errorf("marshal table %q: %w", rec.Name, err)
	}
	_, err = r.pool.Exec(ctx, `
INSERT INTO code_tables (name, radix, tbl, updated_at)
VALUES ($1, $2, $3, $4)
ON CONFLICT (name) DO UPDATE
SET radix = EXCLUDED.radix, tbl = EXCLUDED.tbl, updated_at = EXCLUDED.updated_at`,
		rec.Name, rec.Table.Radix(), b, rec.UpdatedAt)
	if err != nil {
		return fmt.Errorf("save table %q: %w", rec.Name, err)
	}
	return nil
}

func (r *tableRepoPostgres) FindByName(ctx context.Context, name string) (*Record, error) {
	var (
		b         []byte
		updatedAt time.Time
	)
	err := r.pool.QueryRow(ctx,
		`SELECT tbl, updated_at FROM code_tables WHERE name = $1`, name).Scan(&b, &updatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find table %q: %w", name, err)
	}
	tbl, err := blob.UnmarshalTable(b)
	if err != nil {
		return nil, fmt.Errorf("decode table %q: %w", name, err)
	}
	return &Record{Name: name, Table: tbl, UpdatedAt: updatedAt}, nil
}

func (r *tableRepoPostgres) List(ctx context.Context) ([]string, error) {
	rows, err := r.pool.Query(ctx, `SELECT name FROM code_tables ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list tables: %w", err)
	}
	names, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("list tables: %w", err)
	}
	return names, nil
}
