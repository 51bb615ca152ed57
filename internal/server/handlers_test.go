package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sabbir/outreach-composer/internal/db"
)

// fakeStore backs the handlers with canned records
type fakeStore struct {
	template     *db.PromptTemplate
	profile      *db.Profile
	tones        []db.Tone
	writingTypes []db.WritingType
	roleLevels   []db.RoleLevel
	templates    []db.PromptTemplate
	generations  []db.Generation

	saved        []*db.Generation
	toneContexts []string
	historyLimit int
}

func (s *fakeStore) GetLatestTemplate(_ context.Context, _ string) (*db.PromptTemplate, error) {
	return s.template, nil
}

func (s *fakeStore) GetActiveProfile(_ context.Context) (*db.Profile, error) {
	return s.profile, nil
}

func (s *fakeStore) ListActiveTones(_ context.Context, toneContext string) ([]db.Tone, error) {
	s.toneContexts = append(s.toneContexts, toneContext)
	return s.tones, nil
}

func (s *fakeStore) ListWritingTypes(_ context.Context) ([]db.WritingType, error) {
	return s.writingTypes, nil
}

func (s *fakeStore) GetWritingTypeByValue(_ context.Context, value string) (*db.WritingType, error) {
	for i := range s.writingTypes {
		if s.writingTypes[i].Value == value {
			return &s.writingTypes[i], nil
		}
	}
	return nil, nil
}

func (s *fakeStore) DeactivateWritingType(_ context.Context, value string) error {
	return nil
}

func (s *fakeStore) ListRoleLevels(_ context.Context) ([]db.RoleLevel, error) {
	return s.roleLevels, nil
}

func (s *fakeStore) CreateTone(_ context.Context, value, label, description, toneContext string, displayOrder int) (*db.Tone, error) {
	return &db.Tone{ID: uuid.New(), Value: value, Label: label, Description: description, Context: toneContext, DisplayOrder: displayOrder, IsActive: true}, nil
}

func (s *fakeStore) DeactivateTone(_ context.Context, value, toneContext string) error {
	return nil
}

func (s *fakeStore) UpdateProfile(_ context.Context, p *db.Profile) (*db.Profile, error) {
	if s.profile == nil {
		return nil, nil
	}
	return p, nil
}

func (s *fakeStore) ListTemplates(_ context.Context) ([]db.PromptTemplate, error) {
	return s.templates, nil
}

func (s *fakeStore) CreateTemplate(_ context.Context, writingType, name, content, notes string) (*db.PromptTemplate, error) {
	return &db.PromptTemplate{ID: uuid.New(), WritingType: writingType, Name: name, TemplateContent: content, Notes: notes, Version: 1, IsActive: true}, nil
}

func (s *fakeStore) DeactivateTemplate(_ context.Context, writingType string, version int) error {
	return nil
}

func (s *fakeStore) SaveGeneration(_ context.Context, g *db.Generation) (*db.Generation, error) {
	saved := *g
	saved.ID = uuid.New()
	s.saved = append(s.saved, &saved)
	return &saved, nil
}

func (s *fakeStore) ListGenerations(_ context.Context, limit int) ([]db.Generation, error) {
	s.historyLimit = limit
	return s.generations, nil
}

// fakeLLM returns a canned completion
type fakeLLM struct {
	output string
	err    error
	prompt string
}

func (c *fakeLLM) GenerateContent(_ context.Context, prompt string) (string, error) {
	c.prompt = prompt
	return c.output, c.err
}

func (c *fakeLLM) Model() string { return "fake-model" }
func (c *fakeLLM) Close() error  { return nil }

func newTestStore() *fakeStore {
	return &fakeStore{
		template: &db.PromptTemplate{
			WritingType:     db.WritingTypeColdEmail,
			Name:            "cold email",
			TemplateContent: "Write for {profile.name}, tone {tone}, limit {wordLimit}",
			Version:         1,
			IsActive:        true,
		},
		profile: &db.Profile{
			Name:  "Sabbir Ahmed",
			Email: "sabbir@example.com",
		},
		tones: []db.Tone{
			{Value: "professional", Description: "Clear and direct", Context: db.ToneContextEmail},
		},
		writingTypes: []db.WritingType{
			{Value: db.WritingTypeColdEmail, Label: "Cold Email", IsActive: true},
		},
		roleLevels: []db.RoleLevel{
			{Value: "intern", Label: "Intern", IsActive: true},
		},
	}
}

func doRequest(s *Server, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	rec := httptest.NewRecorder()
	s.routes().ServeHTTP(rec, req)
	return rec
}

func TestHandleGenerate_PromptOnly(t *testing.T) {
	store := newTestStore()
	s := newServer(store, nil)

	body := `{"writing_type": "cold_email", "tone": "professional", "word_limit": 150, "prompt_only": true}`
	rec := doRequest(s, http.MethodPost, "/generate", body)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp generateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Write for Sabbir Ahmed, tone professional, limit 150", resp.Prompt)
	assert.Empty(t, resp.Output)
	assert.Empty(t, store.saved)
}

func TestHandleGenerate_FullPath(t *testing.T) {
	store := newTestStore()
	client := &fakeLLM{output: "Hi there, quick note..."}
	s := newServer(store, client)

	body := `{"writing_type": "cold_email", "tone": "professional", "word_limit": 150}`
	rec := doRequest(s, http.MethodPost, "/generate", body)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp generateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Hi there, quick note...", resp.Output)
	assert.NotEmpty(t, resp.ID)

	// The assembled prompt is what went to the model and into history
	assert.Equal(t, resp.Prompt, client.prompt)
	require.Len(t, store.saved, 1)
	assert.Equal(t, resp.Prompt, store.saved[0].Prompt)
	assert.Equal(t, "Hi there, quick note...", store.saved[0].Output)
}

func TestHandleGenerate_ValidationError(t *testing.T) {
	s := newServer(newTestStore(), nil)

	rec := doRequest(s, http.MethodPost, "/generate", `{"writing_type": "cold_email"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(s, http.MethodPost, "/generate", `{not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleGenerate_TemplateNotFound(t *testing.T) {
	store := newTestStore()
	store.template = nil
	s := newServer(store, nil)

	body := `{"writing_type": "cold_email", "tone": "professional", "word_limit": 150, "prompt_only": true}`
	rec := doRequest(s, http.MethodPost, "/generate", body)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleGenerate_NoClient(t *testing.T) {
	s := newServer(newTestStore(), nil)

	body := `{"writing_type": "cold_email", "tone": "professional", "word_limit": 150}`
	rec := doRequest(s, http.MethodPost, "/generate", body)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestHandleGenerate_LLMFailure(t *testing.T) {
	store := newTestStore()
	s := newServer(store, &fakeLLM{err: assert.AnError})

	body := `{"writing_type": "cold_email", "tone": "professional", "word_limit": 150}`
	rec := doRequest(s, http.MethodPost, "/generate", body)
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Empty(t, store.saved)
}

func TestHandleListWritingTypes(t *testing.T) {
	s := newServer(newTestStore(), nil)

	rec := doRequest(s, http.MethodGet, "/writing-types", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "cold_email")
}

func TestHandleGetWritingType_NotFound(t *testing.T) {
	s := newServer(newTestStore(), nil)

	rec := doRequest(s, http.MethodGet, "/writing-types/nonexistent", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doRequest(s, http.MethodGet, "/writing-types/cold_email", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandleListTones_ContextFilter(t *testing.T) {
	store := newTestStore()
	s := newServer(store, nil)

	rec := doRequest(s, http.MethodGet, "/tones?context=linkedin", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"linkedin"}, store.toneContexts)
}

func TestHandleGetProfile_NotFound(t *testing.T) {
	store := newTestStore()
	store.profile = nil
	s := newServer(store, nil)

	rec := doRequest(s, http.MethodGet, "/profile", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleUpdateProfile(t *testing.T) {
	s := newServer(newTestStore(), nil)

	rec := doRequest(s, http.MethodPut, "/profile", `{"name": "Sabbir Ahmed", "email": "sabbir@example.com"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(s, http.MethodPut, "/profile", `{"name": ""}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleCreateTemplate(t *testing.T) {
	s := newServer(newTestStore(), nil)

	body := `{"writing_type": "cold_email", "name": "v2", "template_content": "Hello {profile.name}"}`
	rec := doRequest(s, http.MethodPost, "/templates", body)
	assert.Equal(t, http.StatusCreated, rec.Code)

	// Unknown writing type is rejected
	body = `{"writing_type": "press_release", "name": "v1", "template_content": "x"}`
	rec = doRequest(s, http.MethodPost, "/templates", body)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleDeactivateTemplate_BadVersion(t *testing.T) {
	s := newServer(newTestStore(), nil)

	rec := doRequest(s, http.MethodDelete, "/templates/cold_email/abc", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(s, http.MethodDelete, "/templates/cold_email/2", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandleDeactivateTone_RequiresContext(t *testing.T) {
	s := newServer(newTestStore(), nil)

	rec := doRequest(s, http.MethodDelete, "/tones/professional", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(s, http.MethodDelete, "/tones/professional?context=email", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandleListHistory(t *testing.T) {
	store := newTestStore()
	s := newServer(store, nil)

	rec := doRequest(s, http.MethodGet, "/history?limit=5", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 5, store.historyLimit)

	rec = doRequest(s, http.MethodGet, "/history?limit=abc", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleHealth(t *testing.T) {
	s := newServer(newTestStore(), nil)

	rec := doRequest(s, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status": "ok"}`, rec.Body.String())
}
