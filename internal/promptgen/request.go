package promptgen

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// Message directions
const (
	DirectionSent     = "sent"
	DirectionReceived = "received"
)

// ConversationMessage is one turn in a back-and-forth exchange. Messages are
// not persisted by the generator; they arrive with the request and only shape
// the transcript block of the prompt.
type ConversationMessage struct {
	ID        string    `json:"id,omitempty"`
	Direction string    `json:"direction" validate:"omitempty,oneof=sent received"`
	Text      string    `json:"text"`
	Timestamp string    `json:"timestamp,omitempty"`
	DateTime  time.Time `json:"datetime,omitempty"`
}

// GenerationRequest is the parameter bag for one prompt assembly.
// WordLimit has no enforced upper bound; the UI constrains it to 1-1000.
type GenerationRequest struct {
	WritingType         string                `json:"writing_type" validate:"required"`
	RoleLevel           string                `json:"role_level"`
	CompanyName         string                `json:"company_name"`
	RoleName            string                `json:"role_name"`
	JobDescription      string                `json:"job_description"`
	CompanyInfo         string                `json:"company_info"`
	SpecificDetails     string                `json:"specific_details"`
	LinkedInPersonInfo  string                `json:"linkedin_person_info"`
	ConversationContext []ConversationMessage `json:"conversation_context"`
	Tone                string                `json:"tone" validate:"required"`
	WordLimit           int                   `json:"word_limit" validate:"required,min=1"`
}

// Validate validates the GenerationRequest using the validator.
func (r *GenerationRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
