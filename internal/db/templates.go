package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// GetLatestTemplate retrieves the active template with the highest version
// for a writing type. Returns nil when no active template exists.
func (db *DB) GetLatestTemplate(ctx context.Context, writingType string) (*PromptTemplate, error) {
	var t PromptTemplate
	err := db.pool.QueryRow(ctx,
		`SELECT id, writing_type, name, template_content, version, COALESCE(notes, ''), is_active, created_at, updated_at
		 FROM prompt_templates
		 WHERE writing_type = $1 AND is_active = TRUE
		 ORDER BY version DESC
		 LIMIT 1`,
		writingType,
	).Scan(&t.ID, &t.WritingType, &t.Name, &t.TemplateContent, &t.Version, &t.Notes, &t.IsActive, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get template for %s: %w", writingType, err)
	}
	return &t, nil
}

// ListTemplates retrieves all active templates ordered by writing type and
// descending version
func (db *DB) ListTemplates(ctx context.Context) ([]PromptTemplate, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, writing_type, name, template_content, version, COALESCE(notes, ''), is_active, created_at, updated_at
		 FROM prompt_templates
		 WHERE is_active = TRUE
		 ORDER BY writing_type ASC, version DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list templates: %w", err)
	}
	defer rows.Close()

	var templates []PromptTemplate
	for rows.Next() {
		var t PromptTemplate
		if err := rows.Scan(&t.ID, &t.WritingType, &t.Name, &t.TemplateContent, &t.Version, &t.Notes, &t.IsActive, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan template: %w", err)
		}
		templates = append(templates, t)
	}
	return templates, nil
}

// CreateTemplate inserts a new template version for a writing type. The
// version is always one past the current maximum so the new row becomes the
// latest active template.
func (db *DB) CreateTemplate(ctx context.Context, writingType, name, content, notes string) (*PromptTemplate, error) {
	var t PromptTemplate
	err := db.pool.QueryRow(ctx,
		`INSERT INTO prompt_templates (writing_type, name, template_content, version, notes)
		 VALUES ($1, $2, $3,
		         (SELECT COALESCE(MAX(version), 0) + 1 FROM prompt_templates WHERE writing_type = $1),
		         $4)
		 RETURNING id, writing_type, name, template_content, version, COALESCE(notes, ''), is_active, created_at, updated_at`,
		writingType, name, content, nullIfEmpty(notes),
	).Scan(&t.ID, &t.WritingType, &t.Name, &t.TemplateContent, &t.Version, &t.Notes, &t.IsActive, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create template: %w", err)
	}
	return &t, nil
}

// DeactivateTemplate soft-deletes a template by flipping its active flag
func (db *DB) DeactivateTemplate(ctx context.Context, writingType string, version int) error {
	result, err := db.pool.Exec(ctx,
		`UPDATE prompt_templates SET is_active = FALSE, updated_at = NOW()
		 WHERE writing_type = $1 AND version = $2`,
		writingType, version,
	)
	if err != nil {
		return fmt.Errorf("failed to deactivate template: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("template not found: %s v%d", writingType, version)
	}
	return nil
}
