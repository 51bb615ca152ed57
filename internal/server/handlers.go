package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/sabbir/outreach-composer/internal/db"
	"github.com/sabbir/outreach-composer/internal/promptgen"
)

// generateRequest is the POST /generate payload
type generateRequest struct {
	promptgen.GenerationRequest
	PromptOnly bool `json:"prompt_only"`
}

// generateResponse is the POST /generate reply
type generateResponse struct {
	Prompt string `json:"prompt"`
	Output string `json:"output,omitempty"`
	ID     string `json:"id,omitempty"`
}

// handleGenerate assembles the prompt for a request and, unless prompt_only is
// set, sends it to the LLM and records the result in the history log.
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	prompt, err := s.assembler.BuildPrompt(r.Context(), &req.GenerationRequest)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	if req.PromptOnly {
		s.jsonResponse(w, http.StatusOK, generateResponse{Prompt: prompt})
		return
	}

	if s.llm == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "no LLM client configured; set GEMINI_API_KEY or use prompt_only")
		return
	}

	output, err := s.llm.GenerateContent(r.Context(), prompt)
	if err != nil {
		s.errorResponse(w, http.StatusBadGateway, err.Error())
		return
	}

	saved, err := s.store.SaveGeneration(r.Context(), &db.Generation{
		WritingType: req.WritingType,
		RoleLevel:   req.RoleLevel,
		CompanyName: req.CompanyName,
		RoleName:    req.RoleName,
		Tone:        req.Tone,
		WordLimit:   req.WordLimit,
		Prompt:      prompt,
		Output:      output,
	})
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, generateResponse{
		Prompt: prompt,
		Output: output,
		ID:     saved.ID.String(),
	})
}

// handleListWritingTypes returns all active writing types
func (s *Server) handleListWritingTypes(w http.ResponseWriter, r *http.Request) {
	types, err := s.store.ListWritingTypes(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"writing_types": types})
}

// handleGetWritingType returns one active writing type by slug
func (s *Server) handleGetWritingType(w http.ResponseWriter, r *http.Request) {
	value := r.PathValue("value")

	wt, err := s.store.GetWritingTypeByValue(r.Context(), value)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	if wt == nil {
		notFound := &ErrNotFound{Kind: "writing type", Key: value}
		s.errorResponse(w, HTTPStatus(notFound), notFound.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, wt)
}

// handleDeactivateWritingType soft-deletes a writing type
func (s *Server) handleDeactivateWritingType(w http.ResponseWriter, r *http.Request) {
	if err := s.store.DeactivateWritingType(r.Context(), r.PathValue("value")); err != nil {
		s.errorResponse(w, http.StatusNotFound, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "deactivated"})
}

// handleListTones returns active tones, optionally filtered by ?context=
func (s *Server) handleListTones(w http.ResponseWriter, r *http.Request) {
	tones, err := s.store.ListActiveTones(r.Context(), r.URL.Query().Get("context"))
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"tones": tones})
}

// createToneRequest is the POST /tones payload
type createToneRequest struct {
	Value        string `json:"value"`
	Label        string `json:"label"`
	Description  string `json:"description"`
	Context      string `json:"context"`
	DisplayOrder int    `json:"display_order"`
}

// handleCreateTone inserts a new tone
func (s *Server) handleCreateTone(w http.ResponseWriter, r *http.Request) {
	var req createToneRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return
	}
	if req.Value == "" || req.Label == "" || req.Context == "" {
		s.errorResponse(w, http.StatusBadRequest, "value, label and context are required")
		return
	}

	tone, err := s.store.CreateTone(r.Context(), req.Value, req.Label, req.Description, req.Context, req.DisplayOrder)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusCreated, tone)
}

// handleDeactivateTone soft-deletes a tone; context comes from ?context=
func (s *Server) handleDeactivateTone(w http.ResponseWriter, r *http.Request) {
	toneContext := r.URL.Query().Get("context")
	if toneContext == "" {
		s.errorResponse(w, http.StatusBadRequest, "context query parameter is required")
		return
	}

	if err := s.store.DeactivateTone(r.Context(), r.PathValue("value"), toneContext); err != nil {
		s.errorResponse(w, http.StatusNotFound, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "deactivated"})
}

// handleListRoleLevels returns all active role levels
func (s *Server) handleListRoleLevels(w http.ResponseWriter, r *http.Request) {
	levels, err := s.store.ListRoleLevels(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"role_levels": levels})
}

// handleGetProfile returns the active profile
func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := s.store.GetActiveProfile(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	if profile == nil {
		notFound := &promptgen.ProfileNotFoundError{}
		s.errorResponse(w, HTTPStatus(notFound), notFound.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, profile)
}

// handleUpdateProfile replaces the active profile's fields
func (s *Server) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	var profile db.Profile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return
	}
	if profile.Name == "" || profile.Email == "" {
		s.errorResponse(w, http.StatusBadRequest, "name and email are required")
		return
	}

	updated, err := s.store.UpdateProfile(r.Context(), &profile)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	if updated == nil {
		notFound := &promptgen.ProfileNotFoundError{}
		s.errorResponse(w, HTTPStatus(notFound), notFound.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, updated)
}

// handleListTemplates returns all active templates
func (s *Server) handleListTemplates(w http.ResponseWriter, r *http.Request) {
	templates, err := s.store.ListTemplates(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"templates": templates})
}

// createTemplateRequest is the POST /templates payload
type createTemplateRequest struct {
	WritingType     string `json:"writing_type"`
	Name            string `json:"name"`
	TemplateContent string `json:"template_content"`
	Notes           string `json:"notes"`
}

// handleCreateTemplate inserts a new template version for a writing type
func (s *Server) handleCreateTemplate(w http.ResponseWriter, r *http.Request) {
	var req createTemplateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return
	}
	if req.WritingType == "" || req.Name == "" || req.TemplateContent == "" {
		s.errorResponse(w, http.StatusBadRequest, "writing_type, name and template_content are required")
		return
	}

	// The writing type must exist before templates can target it
	wt, err := s.store.GetWritingTypeByValue(r.Context(), req.WritingType)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	if wt == nil {
		notFound := &ErrNotFound{Kind: "writing type", Key: req.WritingType}
		s.errorResponse(w, HTTPStatus(notFound), notFound.Error())
		return
	}

	template, err := s.store.CreateTemplate(r.Context(), req.WritingType, req.Name, req.TemplateContent, req.Notes)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusCreated, template)
}

// handleDeactivateTemplate soft-deletes one template version
func (s *Server) handleDeactivateTemplate(w http.ResponseWriter, r *http.Request) {
	version, err := strconv.Atoi(r.PathValue("version"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "version must be an integer")
		return
	}

	if err := s.store.DeactivateTemplate(r.Context(), r.PathValue("writing_type"), version); err != nil {
		s.errorResponse(w, http.StatusNotFound, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "deactivated"})
}

// handleListHistory returns recent generation records, newest first
func (s *Server) handleListHistory(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			s.errorResponse(w, http.StatusBadRequest, "limit must be an integer")
			return
		}
		limit = n
	}

	generations, err := s.store.ListGenerations(r.Context(), limit)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"generations": generations})
}
