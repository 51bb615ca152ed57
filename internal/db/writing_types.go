package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// ListWritingTypes retrieves all active writing types ordered by display_order
func (db *DB) ListWritingTypes(ctx context.Context) ([]WritingType, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, value, label, COALESCE(description, ''), COALESCE(icon, ''),
		        length_options, context_fields, display_order, is_active, created_at, updated_at
		 FROM writing_types
		 WHERE is_active = TRUE
		 ORDER BY display_order ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list writing types: %w", err)
	}
	defer rows.Close()

	var types []WritingType
	for rows.Next() {
		var wt WritingType
		if err := rows.Scan(&wt.ID, &wt.Value, &wt.Label, &wt.Description, &wt.Icon,
			&wt.LengthOptions, &wt.ContextFields, &wt.DisplayOrder, &wt.IsActive, &wt.CreatedAt, &wt.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan writing type: %w", err)
		}
		types = append(types, wt)
	}
	return types, nil
}

// GetWritingTypeByValue retrieves an active writing type by its slug.
// Returns nil when not found.
func (db *DB) GetWritingTypeByValue(ctx context.Context, value string) (*WritingType, error) {
	var wt WritingType
	err := db.pool.QueryRow(ctx,
		`SELECT id, value, label, COALESCE(description, ''), COALESCE(icon, ''),
		        length_options, context_fields, display_order, is_active, created_at, updated_at
		 FROM writing_types
		 WHERE value = $1 AND is_active = TRUE`,
		value,
	).Scan(&wt.ID, &wt.Value, &wt.Label, &wt.Description, &wt.Icon,
		&wt.LengthOptions, &wt.ContextFields, &wt.DisplayOrder, &wt.IsActive, &wt.CreatedAt, &wt.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get writing type %s: %w", value, err)
	}
	return &wt, nil
}

// DeactivateWritingType soft-deletes a writing type by flipping its active flag
func (db *DB) DeactivateWritingType(ctx context.Context, value string) error {
	result, err := db.pool.Exec(ctx,
		`UPDATE writing_types SET is_active = FALSE, updated_at = NOW() WHERE value = $1`,
		value,
	)
	if err != nil {
		return fmt.Errorf("failed to deactivate writing type: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("writing type not found: %s", value)
	}
	return nil
}

// ListRoleLevels retrieves all active role levels ordered by display_order
func (db *DB) ListRoleLevels(ctx context.Context) ([]RoleLevel, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, value, label, display_order, is_active
		 FROM role_levels
		 WHERE is_active = TRUE
		 ORDER BY display_order ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list role levels: %w", err)
	}
	defer rows.Close()

	var levels []RoleLevel
	for rows.Next() {
		var rl RoleLevel
		if err := rows.Scan(&rl.ID, &rl.Value, &rl.Label, &rl.DisplayOrder, &rl.IsActive); err != nil {
			return nil, fmt.Errorf("failed to scan role level: %w", err)
		}
		levels = append(levels, rl)
	}
	return levels, nil
}
