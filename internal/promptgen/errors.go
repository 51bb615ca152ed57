package promptgen

import "fmt"

// TemplateNotFoundError indicates no active template exists for a writing type
type TemplateNotFoundError struct {
	WritingType string
}

func (e *TemplateNotFoundError) Error() string {
	return fmt.Sprintf("no active template found for writing type: %s", e.WritingType)
}

// ProfileNotFoundError indicates no active profile exists
type ProfileNotFoundError struct{}

func (e *ProfileNotFoundError) Error() string {
	return "no active profile found"
}
