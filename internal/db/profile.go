package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// GetActiveProfile retrieves the single active profile record.
// Returns nil when no active profile exists.
func (db *DB) GetActiveProfile(ctx context.Context) (*Profile, error) {
	var p Profile
	err := db.pool.QueryRow(ctx,
		`SELECT id, name, email, COALESCE(phone, ''), COALESCE(location, ''),
		        COALESCE(linkedin, ''), COALESCE(github, ''), COALESCE(website, ''),
		        COALESCE(current_position, ''), COALESCE(education, ''),
		        key_skills, COALESCE(technical_stack, ''), top_projects,
		        leadership, certifications, is_active, updated_at
		 FROM profile
		 WHERE is_active = TRUE
		 LIMIT 1`,
	).Scan(&p.ID, &p.Name, &p.Email, &p.Phone, &p.Location,
		&p.LinkedIn, &p.GitHub, &p.Website,
		&p.CurrentPosition, &p.Education,
		&p.KeySkills, &p.TechnicalStack, &p.TopProjects,
		&p.Leadership, &p.Certifications, &p.IsActive, &p.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get active profile: %w", err)
	}
	return &p, nil
}

// UpdateProfile updates the active profile in place
func (db *DB) UpdateProfile(ctx context.Context, p *Profile) (*Profile, error) {
	var updated Profile
	err := db.pool.QueryRow(ctx,
		`UPDATE profile SET
		     name = $1, email = $2, phone = $3, location = $4,
		     linkedin = $5, github = $6, website = $7,
		     current_position = $8, education = $9,
		     key_skills = $10, technical_stack = $11, top_projects = $12,
		     leadership = $13, certifications = $14, updated_at = NOW()
		 WHERE is_active = TRUE
		 RETURNING id, name, email, COALESCE(phone, ''), COALESCE(location, ''),
		           COALESCE(linkedin, ''), COALESCE(github, ''), COALESCE(website, ''),
		           COALESCE(current_position, ''), COALESCE(education, ''),
		           key_skills, COALESCE(technical_stack, ''), top_projects,
		           leadership, certifications, is_active, updated_at`,
		p.Name, p.Email, nullIfEmpty(p.Phone), nullIfEmpty(p.Location),
		nullIfEmpty(p.LinkedIn), nullIfEmpty(p.GitHub), nullIfEmpty(p.Website),
		nullIfEmpty(p.CurrentPosition), nullIfEmpty(p.Education),
		p.KeySkills, nullIfEmpty(p.TechnicalStack), p.TopProjects,
		p.Leadership, p.Certifications,
	).Scan(&updated.ID, &updated.Name, &updated.Email, &updated.Phone, &updated.Location,
		&updated.LinkedIn, &updated.GitHub, &updated.Website,
		&updated.CurrentPosition, &updated.Education,
		&updated.KeySkills, &updated.TechnicalStack, &updated.TopProjects,
		&updated.Leadership, &updated.Certifications, &updated.IsActive, &updated.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return &updated, nil
}
