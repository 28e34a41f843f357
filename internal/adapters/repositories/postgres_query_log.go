// Package repositories holds the Postgres-backed implementations of the
// persistence ports.
package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// Postgres-backed implementation of the QueryLog port.
type PostgresQueryLog struct{ DB *sql.DB }

func NewPostgresQueryLog(db *sql.DB) *PostgresQueryLog {
	return &PostgresQueryLog{DB: db}
}

// Record stores one processed calculation. The calculation id is the primary
// key, so replaying the same calculation leaves the first record in place.
func (p *PostgresQueryLog) Record(ctx context.Context, calculationID, phone string, request, response []byte) error {
	if p.DB == nil {
		return errors.New("postgres query log: DB is nil")
	}

	now := time.Now()
	query := `
	INSERT INTO queries (calculation_id, logged_date, logged_time, phone, request, response)
	VALUES ($1, $2, $3, $4, $5, $6)
	ON CONFLICT (calculation_id) DO NOTHING;
	`
	_, err := p.DB.ExecContext(ctx, query,
		calculationID,
		now.Format("2006-01-02"),
		now.Format("15:04:05"),
		phone,
		request,
		response,
	)
	if err != nil {
		return fmt.Errorf("record query: insert queries row: %w", err)
	}

	return nil
}

// Response returns the stored result payload for a past calculation.
func (p *PostgresQueryLog) Response(ctx context.Context, calculationID string) ([]byte, error) {
	if p.DB == nil {
		return nil, errors.New("postgres query log: DB is nil")
	}

	query := `
	SELECT response
	FROM queries
	WHERE calculation_id = $1;
	`
	var response []byte
	err := p.DB.QueryRowContext(ctx, query, calculationID).Scan(&response)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("load response: calculation %q not found", calculationID)
	}
	if err != nil {
		return nil, fmt.Errorf("load response: query queries table: %w", err)
	}

	return response, nil
}

// UpsertSample stores the latest corrected price-per-km for a calculation.
// Re-correcting the same calculation replaces the previous sample.
func (p *PostgresQueryLog) UpsertSample(ctx context.Context, calculationID string, pricePerKm float64) error {
	if p.DB == nil {
		return errors.New("postgres query log: DB is nil")
	}

	query := `
	INSERT INTO samples (calculation_id, price_per_km, updated_at)
	VALUES ($1, $2, $3)
	ON CONFLICT (calculation_id) DO UPDATE
	SET price_per_km = EXCLUDED.price_per_km,
	    updated_at = EXCLUDED.updated_at;
	`
	_, err := p.DB.ExecContext(ctx, query, calculationID, pricePerKm, time.Now())
	if err != nil {
		return fmt.Errorf("upsert sample: insert samples row: %w", err)
	}

	return nil
}
