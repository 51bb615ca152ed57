package db

import (
	"context"
	"fmt"
)

// SaveGeneration appends one generation record to the history log
func (db *DB) SaveGeneration(ctx context.Context, g *Generation) (*Generation, error) {
	var saved Generation
	err := db.pool.QueryRow(ctx,
		`INSERT INTO generations (writing_type, role_level, company_name, role_name, tone, word_limit, prompt, output)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id, writing_type, COALESCE(role_level, ''), COALESCE(company_name, ''),
		           COALESCE(role_name, ''), COALESCE(tone, ''), word_limit, prompt, output, created_at`,
		g.WritingType, nullIfEmpty(g.RoleLevel), nullIfEmpty(g.CompanyName),
		nullIfEmpty(g.RoleName), nullIfEmpty(g.Tone), g.WordLimit, g.Prompt, g.Output,
	).Scan(&saved.ID, &saved.WritingType, &saved.RoleLevel, &saved.CompanyName,
		&saved.RoleName, &saved.Tone, &saved.WordLimit, &saved.Prompt, &saved.Output, &saved.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to save generation: %w", err)
	}
	return &saved, nil
}

// ListGenerations retrieves recent generation records, newest first
func (db *DB) ListGenerations(ctx context.Context, limit int) ([]Generation, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := db.pool.Query(ctx,
		`SELECT id, writing_type, COALESCE(role_level, ''), COALESCE(company_name, ''),
		        COALESCE(role_name, ''), COALESCE(tone, ''), word_limit, prompt, output, created_at
		 FROM generations
		 ORDER BY created_at DESC
		 LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list generations: %w", err)
	}
	defer rows.Close()

	var generations []Generation
	for rows.Next() {
		var g Generation
		if err := rows.Scan(&g.ID, &g.WritingType, &g.RoleLevel, &g.CompanyName,
			&g.RoleName, &g.Tone, &g.WordLimit, &g.Prompt, &g.Output, &g.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan generation: %w", err)
		}
		generations = append(generations, g)
	}
	return generations, nil
}
