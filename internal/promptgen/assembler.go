package promptgen

import (
	"context"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/sabbir/outreach-composer/internal/db"
)

// Store is the read-only view of the configuration store the assembler needs
type Store interface {
	GetLatestTemplate(ctx context.Context, writingType string) (*db.PromptTemplate, error)
	GetActiveProfile(ctx context.Context) (*db.Profile, error)
	ListActiveTones(ctx context.Context, toneContext string) ([]db.Tone, error)
}

// Assembler turns a GenerationRequest into a final prompt string
type Assembler struct {
	store Store
}

// NewAssembler creates an assembler backed by a store
func NewAssembler(store Store) *Assembler {
	return &Assembler{store: store}
}

// BuildPrompt fetches the latest active template, the active profile, and the
// tones for the writing type's context, derives the template context, and
// substitutes everything into the template content. The three fetches run
// concurrently; if any fails or the context is cancelled the whole call fails
// and no partial prompt is returned. Read-only and idempotent for a fixed
// store snapshot.
func (a *Assembler) BuildPrompt(ctx context.Context, req *GenerationRequest) (string, error) {
	var (
		template *db.PromptTemplate
		profile  *db.Profile
		tones    []db.Tone
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		template, err = a.store.GetLatestTemplate(gCtx, req.WritingType)
		return err
	})
	g.Go(func() error {
		var err error
		profile, err = a.store.GetActiveProfile(gCtx)
		return err
	})
	g.Go(func() error {
		var err error
		tones, err = a.store.ListActiveTones(gCtx, ToneContextFor(req.WritingType))
		return err
	})
	if err := g.Wait(); err != nil {
		return "", err
	}

	if template == nil {
		return "", &TemplateNotFoundError{WritingType: req.WritingType}
	}
	if profile == nil {
		return "", &ProfileNotFoundError{}
	}

	derived := Derive(req, profile, tones)
	return Render(template.TemplateContent, placeholderMap(req, profile, derived)), nil
}

// placeholderMap builds the full substitution map: profile fields, request
// fields with defaults applied, and derived fields. Every key a template may
// reference maps to at least an empty string.
func placeholderMap(req *GenerationRequest, profile *db.Profile, derived DerivedContext) map[string]string {
	return map[string]string{
		"profile.name":             profile.Name,
		"profile.email":            profile.Email,
		"profile.phone":            profile.Phone,
		"profile.location":         profile.Location,
		"profile.linkedin":         profile.LinkedIn,
		"profile.github":           profile.GitHub,
		"profile.website":          profile.Website,
		"profile.current_position": profile.CurrentPosition,
		"profile.education":        profile.Education,
		"profile.topSkills":        derived.TopSkills,
		"profile.technical_stack":  profile.TechnicalStack,
		"profile.keyAchievement":   derived.KeyAchievement,
		"profile.keyProjects":      derived.KeyProjects,
		"profile.leadership":       derived.LeadershipHighlight,

		"roleLevel":          req.RoleLevel,
		"rolePresentation":   derived.RolePresentation,
		"companyName":        defaultIfEmpty(req.CompanyName, "[Company]"),
		"roleName":           defaultIfEmpty(req.RoleName, "[Role]"),
		"jobDescription":     labeledOrEmpty("JOB REQUIREMENTS: ", req.JobDescription),
		"companyInfo":        labeledOrEmpty("COMPANY INFO: ", req.CompanyInfo),
		"specificDetails":    labeledOrEmpty("SPECIFIC DETAILS: ", req.SpecificDetails),
		"linkedinPersonInfo": defaultIfEmpty(req.LinkedInPersonInfo, "General outreach"),
		"tone":               req.Tone,
		"toneDescription":    derived.ToneDescription,
		"wordLimit":          strconv.Itoa(req.WordLimit),

		"conversationHistory": derived.ConversationHistory,
		"conversationRule1":   derived.ConversationRule1,
		"conversationRule2":   derived.ConversationRule2,
		"conversationRule3":   derived.ConversationRule3,
		"criticalRule":        derived.CriticalRule,
	}
}
