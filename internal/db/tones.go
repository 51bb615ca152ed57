package db

import (
	"context"
	"fmt"
)

// ListActiveTones retrieves active tones ordered by display_order.
// An empty toneContext returns tones for every context.
func (db *DB) ListActiveTones(ctx context.Context, toneContext string) ([]Tone, error) {
	query := `SELECT id, value, label, COALESCE(description, ''), context, display_order, is_active, created_at, updated_at
		FROM tones WHERE is_active = TRUE`
	args := []any{}

	if toneContext != "" {
		query += " AND context = $1"
		args = append(args, toneContext)
	}
	query += " ORDER BY display_order ASC"

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list tones: %w", err)
	}
	defer rows.Close()

	var tones []Tone
	for rows.Next() {
		var t Tone
		if err := rows.Scan(&t.ID, &t.Value, &t.Label, &t.Description, &t.Context, &t.DisplayOrder, &t.IsActive, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan tone: %w", err)
		}
		tones = append(tones, t)
	}
	return tones, nil
}

// CreateTone inserts a new tone for a context
func (db *DB) CreateTone(ctx context.Context, value, label, description, toneContext string, displayOrder int) (*Tone, error) {
	var t Tone
	err := db.pool.QueryRow(ctx,
		`INSERT INTO tones (value, label, description, context, display_order)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, value, label, COALESCE(description, ''), context, display_order, is_active, created_at, updated_at`,
		value, label, nullIfEmpty(description), toneContext, displayOrder,
	).Scan(&t.ID, &t.Value, &t.Label, &t.Description, &t.Context, &t.DisplayOrder, &t.IsActive, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create tone: %w", err)
	}
	return &t, nil
}

// DeactivateTone soft-deletes a tone by flipping its active flag
func (db *DB) DeactivateTone(ctx context.Context, value, toneContext string) error {
	result, err := db.pool.Exec(ctx,
		`UPDATE tones SET is_active = FALSE, updated_at = NOW()
		 WHERE value = $1 AND context = $2`,
		value, toneContext,
	)
	if err != nil {
		return fmt.Errorf("failed to deactivate tone: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("tone not found: %s (%s)", value, toneContext)
	}
	return nil
}
