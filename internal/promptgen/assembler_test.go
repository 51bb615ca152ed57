package promptgen

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sabbir/outreach-composer/internal/db"
)

// fakeStore returns canned records for assembler tests
type fakeStore struct {
	template    *db.PromptTemplate
	profile     *db.Profile
	tones       []db.Tone
	templateErr error
	profileErr  error
	tonesErr    error

	toneContexts []string
}

func (s *fakeStore) GetLatestTemplate(_ context.Context, _ string) (*db.PromptTemplate, error) {
	return s.template, s.templateErr
}

func (s *fakeStore) GetActiveProfile(_ context.Context) (*db.Profile, error) {
	return s.profile, s.profileErr
}

func (s *fakeStore) ListActiveTones(_ context.Context, toneContext string) ([]db.Tone, error) {
	s.toneContexts = append(s.toneContexts, toneContext)
	return s.tones, s.tonesErr
}

func newFakeStore(templateContent string) *fakeStore {
	return &fakeStore{
		template: &db.PromptTemplate{
			WritingType:     db.WritingTypeColdEmail,
			Name:            "test template",
			TemplateContent: templateContent,
			Version:         3,
			IsActive:        true,
		},
		profile: testProfile(),
		tones: []db.Tone{
			{Value: "professional", Description: "Clear and business-appropriate", Context: db.ToneContextEmail},
		},
	}
}

func baseRequest() *GenerationRequest {
	return &GenerationRequest{
		WritingType: db.WritingTypeColdEmail,
		RoleLevel:   "software_engineer",
		Tone:        "professional",
		WordLimit:   150,
	}
}

func TestBuildPrompt_Success(t *testing.T) {
	store := newFakeStore("For {profile.name}: {rolePresentation} Tone: {toneDescription} Limit: {wordLimit}")
	assembler := NewAssembler(store)

	prompt, err := assembler.BuildPrompt(context.Background(), baseRequest())
	require.NoError(t, err)
	assert.Contains(t, prompt, "For Sabbir Ahmed:")
	assert.Contains(t, prompt, "- Clear and business-appropriate")
	assert.Contains(t, prompt, "Limit: 150")
}

func TestBuildPrompt_TemplateNotFound(t *testing.T) {
	store := newFakeStore("{profile.name}")
	store.template = nil
	assembler := NewAssembler(store)

	_, err := assembler.BuildPrompt(context.Background(), baseRequest())
	require.Error(t, err)

	var notFound *TemplateNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, db.WritingTypeColdEmail, notFound.WritingType)
}

func TestBuildPrompt_ProfileNotFound(t *testing.T) {
	store := newFakeStore("{profile.name}")
	store.profile = nil
	assembler := NewAssembler(store)

	_, err := assembler.BuildPrompt(context.Background(), baseRequest())
	require.Error(t, err)

	var notFound *ProfileNotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestBuildPrompt_StoreFaultPropagates(t *testing.T) {
	store := newFakeStore("{profile.name}")
	storeErr := errors.New("connection refused")
	store.tonesErr = storeErr
	assembler := NewAssembler(store)

	_, err := assembler.BuildPrompt(context.Background(), baseRequest())
	assert.ErrorIs(t, err, storeErr)
}

func TestBuildPrompt_CancelledContext(t *testing.T) {
	store := newFakeStore("{profile.name}")
	store.profileErr = context.Canceled
	assembler := NewAssembler(store)

	_, err := assembler.BuildPrompt(context.Background(), baseRequest())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBuildPrompt_CompanyNameDefault(t *testing.T) {
	store := newFakeStore("Target: {companyName} - {roleName}")
	assembler := NewAssembler(store)

	req := baseRequest()
	req.CompanyName = ""
	req.RoleName = ""

	prompt, err := assembler.BuildPrompt(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "Target: [Company] - [Role]", prompt)
}

func TestBuildPrompt_Idempotent(t *testing.T) {
	store := newFakeStore("{rolePresentation}\n{conversationHistory}\n{toneDescription}\n{companyName}")
	assembler := NewAssembler(store)

	req := baseRequest()
	req.WritingType = db.WritingTypeLinkedInMessage
	req.ConversationContext = []ConversationMessage{
		{Direction: DirectionReceived, Text: "thanks for reaching out"},
	}

	first, err := assembler.BuildPrompt(context.Background(), req)
	require.NoError(t, err)
	second, err := assembler.BuildPrompt(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestBuildPrompt_UnknownPlaceholderPassthrough(t *testing.T) {
	store := newFakeStore("known {profile.name}, unknown {unknownField}")
	assembler := NewAssembler(store)

	prompt, err := assembler.BuildPrompt(context.Background(), baseRequest())
	require.NoError(t, err)
	assert.Contains(t, prompt, "{unknownField}")
	assert.Contains(t, prompt, "Sabbir Ahmed")
}

func TestBuildPrompt_ToneMissIsSoft(t *testing.T) {
	store := newFakeStore("tone[{toneDescription}]")
	assembler := NewAssembler(store)

	req := baseRequest()
	req.Tone = "nonexistent_tone"

	prompt, err := assembler.BuildPrompt(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "tone[]", prompt)
}

func TestBuildPrompt_ToneContextSelection(t *testing.T) {
	store := newFakeStore("{toneDescription}")
	assembler := NewAssembler(store)

	req := baseRequest()
	req.WritingType = db.WritingTypeLinkedInMessage
	_, err := assembler.BuildPrompt(context.Background(), req)
	require.NoError(t, err)

	req = baseRequest()
	req.WritingType = db.WritingTypeFollowUp
	_, err = assembler.BuildPrompt(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, []string{db.ToneContextLinkedIn, db.ToneContextEmail}, store.toneContexts)
}

func TestBuildPrompt_ConversationGatedByWritingType(t *testing.T) {
	store := newFakeStore("history[{conversationHistory}] rule[{conversationRule1}] critical[{criticalRule}]")
	assembler := NewAssembler(store)

	req := baseRequest()
	req.ConversationContext = []ConversationMessage{
		{Direction: DirectionSent, Text: "we spoke last week"},
	}

	prompt, err := assembler.BuildPrompt(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "history[] rule[] critical[]", prompt)
}

func TestGenerationRequest_Validate(t *testing.T) {
	req := baseRequest()
	assert.NoError(t, req.Validate())

	missing := &GenerationRequest{Tone: "warm", WordLimit: 50}
	assert.Error(t, missing.Validate())

	zeroLimit := baseRequest()
	zeroLimit.WordLimit = 0
	assert.Error(t, zeroLimit.Validate())

	// No upper bound on word limit
	large := baseRequest()
	large.WordLimit = 5000
	assert.NoError(t, large.Validate())
}
