package snapshot

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/zenhr/zenhr-backend-go/internal/pkg/database"
)

// PostgresBackend keeps the document as a single JSONB row. Save is a full
// replace via upsert, which preserves the endpoint contract: one resource,
// read whole, write whole.
type PostgresBackend struct {
	db *database.DB
}

func NewPostgresBackend(ctx context.Context, db *database.DB) (*PostgresBackend, error) {
	_, err := db.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS app_state (
			id SMALLINT PRIMARY KEY,
			document JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`)
	if err != nil {
		return nil, fmt.Errorf("ensure app_state table: %w", err)
	}
	return &PostgresBackend{db: db}, nil
}

func (p *PostgresBackend) Load(ctx context.Context) ([]byte, error) {
	var data []byte
	err := p.db.QueryRow(ctx, `SELECT document FROM app_state WHERE id = 1`).Scan(&data)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNoSnapshot
	}
	if err != nil {
		return nil, fmt.Errorf("load snapshot row: %w", err)
	}
	return data, nil
}

func (p *PostgresBackend) Save(ctx context.Context, data []byte) error {
	_, err := p.db.Exec(ctx, `
		INSERT INTO app_state (id, document, updated_at)
		VALUES (1, $1, NOW())
		ON CONFLICT (id) DO UPDATE SET document = EXCLUDED.document, updated_at = NOW()
	`, data)
	if err != nil {
		return fmt.Errorf("save snapshot row: %w", err)
	}
	return nil
}

func (p *PostgresBackend) Mode() string {
	return "postgres"
}
