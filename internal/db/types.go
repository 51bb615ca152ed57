package db

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Writing type slug constants for the built-in document categories
const (
	WritingTypeColdEmail       = "cold_email"
	WritingTypeCoverLetter     = "cover_letter"
	WritingTypeLinkedInMessage = "linkedin_message"
	WritingTypeFollowUp        = "follow_up"
)

// Tone context constants
const (
	ToneContextEmail    = "email"
	ToneContextLinkedIn = "linkedin"
)

// WritingType represents a category of document to generate
type WritingType struct {
	ID            uuid.UUID         `json:"id"`
	Value         string            `json:"value"`
	Label         string            `json:"label"`
	Description   string            `json:"description"`
	Icon          string            `json:"icon"`
	LengthOptions IntArray          `json:"length_options"`
	ContextFields ContextFieldArray `json:"context_fields"`
	DisplayOrder  int               `json:"display_order"`
	IsActive      bool              `json:"is_active"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
}

// ContextField describes a configurable input attached to a writing type
type ContextField struct {
	FieldName string `json:"field_name"`
	Label     string `json:"label"`
	InputKind string `json:"input_kind"`
	Required  bool   `json:"required"`
}

// Tone represents a named tone of voice scoped to a context
type Tone struct {
	ID           uuid.UUID `json:"id"`
	Value        string    `json:"value"`
	Label        string    `json:"label"`
	Description  string    `json:"description"`
	Context      string    `json:"context"`
	DisplayOrder int       `json:"display_order"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// RoleLevel represents a seniority framing for self-presentation
type RoleLevel struct {
	ID           uuid.UUID `json:"id"`
	Value        string    `json:"value"`
	Label        string    `json:"label"`
	DisplayOrder int       `json:"display_order"`
	IsActive     bool      `json:"is_active"`
}

// Profile represents the single active user identity record
type Profile struct {
	ID              uuid.UUID    `json:"id"`
	Name            string       `json:"name"`
	Email           string       `json:"email"`
	Phone           string       `json:"phone"`
	Location        string       `json:"location"`
	LinkedIn        string       `json:"linkedin"`
	GitHub          string       `json:"github"`
	Website         string       `json:"website"`
	CurrentPosition string       `json:"current_position"`
	Education       string       `json:"education"`
	KeySkills       StringArray  `json:"key_skills"`
	TechnicalStack  string       `json:"technical_stack"`
	TopProjects     ProjectArray `json:"top_projects"`
	Leadership      StringArray  `json:"leadership"`
	Certifications  StringArray  `json:"certifications"`
	IsActive        bool         `json:"is_active"`
	UpdatedAt       time.Time    `json:"updated_at"`
}

// Project is one entry in a profile's top_projects list
type Project struct {
	Name   string `json:"name"`
	Impact string `json:"impact"`
}

// PromptTemplate is a versioned text blueprint for a writing type
type PromptTemplate struct {
	ID              uuid.UUID `json:"id"`
	WritingType     string    `json:"writing_type"`
	Name            string    `json:"name"`
	TemplateContent string    `json:"template_content"`
	Version         int       `json:"version"`
	Notes           string    `json:"notes"`
	IsActive        bool      `json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// Generation is one append-only history record of a generated document
type Generation struct {
	ID          uuid.UUID `json:"id"`
	WritingType string    `json:"writing_type"`
	RoleLevel   string    `json:"role_level"`
	CompanyName string    `json:"company_name"`
	RoleName    string    `json:"role_name"`
	Tone        string    `json:"tone"`
	WordLimit   int       `json:"word_limit"`
	Prompt      string    `json:"prompt"`
	Output      string    `json:"output"`
	CreatedAt   time.Time `json:"created_at"`
}

// StringArray handles JSONB string arrays
type StringArray []string

// Scan implements the Scanner interface for StringArray
func (a *StringArray) Scan(src interface{}) error {
	if src == nil {
		*a = []string{}
		return nil
	}
	source, ok := src.([]byte)
	if !ok {
		return errors.New("type assertion .([]byte) failed")
	}
	return json.Unmarshal(source, a)
}

// Value implements the Valuer interface for StringArray
func (a StringArray) Value() (driver.Value, error) {
	if a == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(a)
}

// IntArray handles JSONB integer arrays
type IntArray []int

// Scan implements the Scanner interface for IntArray
func (a *IntArray) Scan(src interface{}) error {
	if src == nil {
		*a = []int{}
		return nil
	}
	source, ok := src.([]byte)
	if !ok {
		return errors.New("type assertion .([]byte) failed")
	}
	return json.Unmarshal(source, a)
}

// Value implements the Valuer interface for IntArray
func (a IntArray) Value() (driver.Value, error) {
	if a == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(a)
}

// ProjectArray handles JSONB arrays of projects
type ProjectArray []Project

// Scan implements the Scanner interface for ProjectArray
func (a *ProjectArray) Scan(src interface{}) error {
	if src == nil {
		*a = []Project{}
		return nil
	}
	source, ok := src.([]byte)
	if !ok {
		return errors.New("type assertion .([]byte) failed")
	}
	return json.Unmarshal(source, a)
}

// Value implements the Valuer interface for ProjectArray
func (a ProjectArray) Value() (driver.Value, error) {
	if a == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(a)
}

// ContextFieldArray handles JSONB arrays of context field descriptors
type ContextFieldArray []ContextField

// Scan implements the Scanner interface for ContextFieldArray
func (a *ContextFieldArray) Scan(src interface{}) error {
	if src == nil {
		*a = []ContextField{}
		return nil
	}
	source, ok := src.([]byte)
	if !ok {
		return errors.New("type assertion .([]byte) failed")
	}
	return json.Unmarshal(source, a)
}

// Value implements the Valuer interface for ContextFieldArray
func (a ContextFieldArray) Value() (driver.Value, error) {
	if a == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(a)
}
