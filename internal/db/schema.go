package db

import (
	"context"
	"fmt"
)

// schemaStatements holds the DDL for every table the store uses.
// Statements are idempotent so EnsureSchema can run at startup.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS writing_types (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		value TEXT NOT NULL,
		label TEXT NOT NULL,
		description TEXT,
		icon TEXT,
		length_options JSONB NOT NULL DEFAULT '[]',
		context_fields JSONB NOT NULL DEFAULT '[]',
		display_order INT NOT NULL DEFAULT 0,
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS writing_types_value_active
		ON writing_types (value) WHERE is_active`,
	`CREATE TABLE IF NOT EXISTS tones (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		value TEXT NOT NULL,
		label TEXT NOT NULL,
		description TEXT,
		context TEXT NOT NULL CHECK (context IN ('email', 'linkedin')),
		display_order INT NOT NULL DEFAULT 0,
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS tones_value_context_active
		ON tones (value, context) WHERE is_active`,
	`CREATE TABLE IF NOT EXISTS role_levels (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		value TEXT NOT NULL,
		label TEXT NOT NULL,
		display_order INT NOT NULL DEFAULT 0,
		is_active BOOLEAN NOT NULL DEFAULT TRUE
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS role_levels_value_active
		ON role_levels (value) WHERE is_active`,
	`CREATE TABLE IF NOT EXISTS profile (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		name TEXT NOT NULL,
		email TEXT NOT NULL,
		phone TEXT,
		location TEXT,
		linkedin TEXT,
		github TEXT,
		website TEXT,
		current_position TEXT,
		education TEXT,
		key_skills JSONB NOT NULL DEFAULT '[]',
		technical_stack TEXT,
		top_projects JSONB NOT NULL DEFAULT '[]',
		leadership JSONB NOT NULL DEFAULT '[]',
		certifications JSONB NOT NULL DEFAULT '[]',
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS prompt_templates (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		writing_type TEXT NOT NULL,
		name TEXT NOT NULL,
		template_content TEXT NOT NULL,
		version INT NOT NULL DEFAULT 1,
		notes TEXT,
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		UNIQUE (writing_type, version)
	)`,
	`CREATE TABLE IF NOT EXISTS generations (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		writing_type TEXT NOT NULL,
		role_level TEXT,
		company_name TEXT,
		role_name TEXT,
		tone TEXT,
		word_limit INT NOT NULL DEFAULT 0,
		prompt TEXT NOT NULL,
		output TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS generations_created_at ON generations (created_at DESC)`,
}

// EnsureSchema creates all tables and indexes if they do not exist
func (db *DB) EnsureSchema(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := db.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema statement: %w", err)
		}
	}
	return nil
}
