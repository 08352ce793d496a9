package postgres

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

//go:embed schema.sql
var schemaSQL string

// runMigrations aplica el esquema embebido. El DDL es idempotente
// (CREATE TABLE IF NOT EXISTS / CREATE INDEX IF NOT EXISTS), así que se
// ejecuta completo en cada arranque.
func runMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	log.Info().Msg("aplicando esquema de base de datos")
	if _, err := pool.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("aplicar esquema: %w", err)
	}
	return nil
}
