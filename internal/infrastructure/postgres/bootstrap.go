package postgres

import (
	"context"
	_ "embed"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

//go:embed schema.sql
var schemaSQL string

// bootstrapLockKey clave del advisory lock que serializa el arranque cuando
// varios procesos levantan contra la misma base a la vez.
const bootstrapLockKey = 740031001

// seedCategory categoría sembrada en el primer arranque.
type seedCategory struct {
	name string
	gain string
}

var seedCategories = []seedCategory{
	{"Ternero", "0.8"},
	{"Novillo", "0.7"},
	{"Vaquillona", "0.6"},
	{"Vaca", "0.4"},
	{"Toro", "0.5"},
}

// Bootstrap deja la base lista para servir: aplica el esquema, siembra las
// categorías iniciales si la tabla está vacía y crea el admin provisorio
// (password_hash NULL) si no existe ninguna fila admin. Corre una sola vez
// por proceso, antes del loop de requests, y todo dentro de una transacción
// con pg_advisory_xact_lock: N procesos arrancando a la vez crean exactamente
// un admin provisorio y un juego de categorías.
func Bootstrap(ctx context.Context, pool *pgxpool.Pool, adminEmail string) error {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin bootstrap: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, bootstrapLockKey); err != nil {
		return fmt.Errorf("advisory lock: %w", err)
	}

	if _, err := tx.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("aplicar esquema: %w", err)
	}

	now := time.Now()

	var categoryCount int
	if err := tx.QueryRow(ctx, `SELECT COUNT(*) FROM categories`).Scan(&categoryCount); err != nil {
		return fmt.Errorf("contar categorías: %w", err)
	}
	if categoryCount == 0 {
		for _, c := range seedCategories {
			_, err := tx.Exec(ctx, `
				INSERT INTO categories (name, is_active, daily_gain_kg, created_at, updated_at)
				VALUES ($1, TRUE, $2, $3, $3)`, c.name, c.gain, now)
			if err != nil {
				return fmt.Errorf("sembrar categoría %s: %w", c.name, err)
			}
		}
	}

	var adminCount int
	if err := tx.QueryRow(ctx, `SELECT COUNT(*) FROM users WHERE is_admin`).Scan(&adminCount); err != nil {
		return fmt.Errorf("contar admins: %w", err)
	}
	if adminCount == 0 {
		_, err := tx.Exec(ctx, `
			INSERT INTO users (email, password_hash, is_admin, is_active, created_at, updated_at)
			VALUES ($1, NULL, TRUE, TRUE, $2, $2)`, strings.ToLower(adminEmail), now)
		if err != nil {
			return fmt.Errorf("crear admin provisorio: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit bootstrap: %w", err)
	}
	return nil
}
