package db

import (
	"context"
	"fmt"
)

// seedWritingTypes mirrors the default document catalog
var seedWritingTypes = []WritingType{
	{
		Value:       WritingTypeColdEmail,
		Label:       "Cold Email to HR",
		Description: "Direct outreach to hiring manager",
		Icon:        "mail",
		LengthOptions: IntArray{50, 75, 100, 130, 150, 180, 200, 250},
		ContextFields: ContextFieldArray{
			{FieldName: "companyName", Label: "Company Name", InputKind: "text", Required: false},
			{FieldName: "roleName", Label: "Role Name", InputKind: "text", Required: false},
			{FieldName: "jobDescription", Label: "Job Description", InputKind: "textarea", Required: false},
			{FieldName: "companyInfo", Label: "Company Info", InputKind: "textarea", Required: false},
			{FieldName: "specificDetails", Label: "Specific Details", InputKind: "textarea", Required: false},
		},
		DisplayOrder: 1,
	},
	{
		Value:       WritingTypeCoverLetter,
		Label:       "Cover Letter",
		Description: "Formal application document",
		Icon:        "file-text",
		LengthOptions: IntArray{100, 150, 200, 250, 300, 350, 400, 450, 500},
		ContextFields: ContextFieldArray{
			{FieldName: "companyName", Label: "Company Name", InputKind: "text", Required: false},
			{FieldName: "roleName", Label: "Role Name", InputKind: "text", Required: false},
			{FieldName: "jobDescription", Label: "Job Description", InputKind: "textarea", Required: false},
			{FieldName: "companyInfo", Label: "Company Info", InputKind: "textarea", Required: false},
			{FieldName: "specificDetails", Label: "Specific Details", InputKind: "textarea", Required: false},
		},
		DisplayOrder: 2,
	},
	{
		Value:       WritingTypeLinkedInMessage,
		Label:       "LinkedIn Message",
		Description: "Short professional connection",
		Icon:        "briefcase",
		LengthOptions: IntArray{3, 5, 10, 15, 30, 40, 50, 60, 75, 100, 120, 150},
		ContextFields: ContextFieldArray{
			{FieldName: "linkedinPersonInfo", Label: "Person/Company Info", InputKind: "textarea", Required: false},
			{FieldName: "specificDetails", Label: "Specific Details", InputKind: "textarea", Required: false},
			{FieldName: "conversationContext", Label: "Conversation History", InputKind: "conversation", Required: false},
		},
		DisplayOrder: 3,
	},
	{
		Value:       WritingTypeFollowUp,
		Label:       "Follow-up Email",
		Description: "After application or interview",
		Icon:        "send",
		LengthOptions: IntArray{10, 20, 40, 50, 75, 100, 120, 150, 180, 200, 250},
		ContextFields: ContextFieldArray{
			{FieldName: "companyName", Label: "Company Name", InputKind: "text", Required: false},
			{FieldName: "roleName", Label: "Role Name", InputKind: "text", Required: false},
			{FieldName: "specificDetails", Label: "Specific Details", InputKind: "textarea", Required: false},
			{FieldName: "conversationContext", Label: "Conversation History", InputKind: "conversation", Required: false},
		},
		DisplayOrder: 4,
	},
}

// seedTones mirrors the default tone catalog for both contexts
var seedTones = []Tone{
	{Value: "professional", Label: "Professional", Description: "Clear and business-appropriate", Context: ToneContextEmail, DisplayOrder: 1},
	{Value: "warm", Label: "Warm", Description: "Friendly and approachable", Context: ToneContextEmail, DisplayOrder: 2},
	{Value: "concise", Label: "Concise", Description: "Brief and to the point", Context: ToneContextEmail, DisplayOrder: 3},
	{Value: "enthusiastic", Label: "Enthusiastic", Description: "Energetic and passionate", Context: ToneContextEmail, DisplayOrder: 4},
	{Value: "humble", Label: "Humble", Description: "Respectful and grateful", Context: ToneContextEmail, DisplayOrder: 5},
	{Value: "casual_professional", Label: "Casual Professional", Description: "Friendly but professional", Context: ToneContextLinkedIn, DisplayOrder: 1},
	{Value: "conversational", Label: "Conversational", Description: "Natural and approachable", Context: ToneContextLinkedIn, DisplayOrder: 2},
	{Value: "direct", Label: "Direct", Description: "Straight to the point", Context: ToneContextLinkedIn, DisplayOrder: 3},
	{Value: "warm", Label: "Warm", Description: "Friendly and genuine", Context: ToneContextLinkedIn, DisplayOrder: 4},
	{Value: "respectful", Label: "Respectful", Description: "Polite and courteous", Context: ToneContextLinkedIn, DisplayOrder: 5},
}

// seedRoleLevels mirrors the default seniority framings
var seedRoleLevels = []RoleLevel{
	{Value: "intern", Label: "Intern", DisplayOrder: 1},
	{Value: "junior", Label: "Junior Software Engineer", DisplayOrder: 2},
	{Value: "software_engineer", Label: "Software Engineer", DisplayOrder: 3},
	{Value: "associate", Label: "Associate Software Engineer", DisplayOrder: 4},
	{Value: "senior", Label: "Senior Software Engineer", DisplayOrder: 5},
}

// seedTemplates holds the version-1 prompt templates for each writing type
var seedTemplates = map[string]string{
	WritingTypeLinkedInMessage: `You are writing a LinkedIn message for {profile.name}.

TARGET ROLE LEVEL: {roleLevel}
{rolePresentation}

KEY INFO:
- Education: {profile.education}
- Current Role: {profile.current_position}
- Top Skills: {profile.topSkills}
- Key Achievement: {profile.keyAchievement}
- Leadership: {profile.leadership}

{conversationHistory}

PERSON/COMPANY INFO:
{linkedinPersonInfo}

{specificDetails}

LINKEDIN MESSAGE RULES - FOLLOW EXACTLY:
1. {conversationRule1}
2. Keep it CONVERSATIONAL - like you're chatting, not writing an email
3. {conversationRule2}
4. Main point (1-2 sentences)
5. {conversationRule3}
6. End casually: "Looking forward to hearing from you!" or "Would love to connect!"
7. NO formal email signatures - just your first name

WORD LIMIT: STRICTLY {wordLimit} words maximum. COUNT EVERY WORD. If you go over, CUT content.

TONE: {tone}
{toneDescription}

CRITICAL RULES:
1. NO email format (no "Respected", no formal signatures)
2. NO long paragraphs - keep sentences short
3. {criticalRule}
4. Maximum {wordLimit} words - COUNT and STAY UNDER
5. Sound human and natural
6. End with first name only

Generate ONLY the LinkedIn message. No explanations. No email format. Just the message.`,

	WritingTypeColdEmail: `You are writing a Cold Email to HR for {profile.name}.

TARGET: {companyName} - {roleName}
TARGET LEVEL: {roleLevel}

{rolePresentation}

PROFILE:
- Current: {profile.current_position}
- Education: {profile.education}
- Key Skills: {profile.topSkills}
- Top Projects: {profile.keyProjects}
- Leadership: {profile.leadership}

{companyInfo}
{jobDescription}
{specificDetails}

Generate a cold email following this structure:

SUBJECT: Brief, value-focused subject

Respected HR / Respected Hiring Manager,

PARAGRAPH 1: {rolePresentation}

PARAGRAPH 2: Express interest in {roleName} at {companyName}

PARAGRAPH 3: 2-3 achievements with numbers (projects, impact)

PARAGRAPH 4: How you can contribute to their needs

CLOSING: Gratitude and request for discussion

Yours Faithfully,
{profile.name}
{profile.phone} | {profile.email}
{profile.linkedin}

WORD LIMIT: STRICTLY maximum {wordLimit} words total

TONE: {tone}
{toneDescription}
CRITICAL: Maximum {wordLimit} words. COUNT every word and STAY UNDER the limit.

Generate ONLY the cold email. No explanations.`,

	WritingTypeCoverLetter: `You are writing a Cover Letter for {profile.name}.

TARGET: {companyName} - {roleName}
TARGET LEVEL: {roleLevel}

{rolePresentation}

PROFILE:
- Current: {profile.current_position}
- Education: {profile.education}
- Key Skills: {profile.topSkills}
- Top Projects: {profile.keyProjects}
- Leadership: {profile.leadership}

{companyInfo}
{jobDescription}
{specificDetails}

Generate a formal cover letter:

{profile.name}
{profile.location}
{profile.email} | {profile.phone}

Date: [Current Date]

Respected [Name] / To Whom It May Concern,
{companyName}

PARAGRAPH 1: Introduction + Interest in {roleName}
PARAGRAPH 2: 3-4 achievements with impact
PARAGRAPH 3: Fit & contribution
PARAGRAPH 4: Closing

Yours Faithfully,
{profile.name}

WORD LIMIT: STRICTLY maximum {wordLimit} words total

TONE: {tone}
{toneDescription}
CRITICAL: Maximum {wordLimit} words. COUNT every word and STAY UNDER the limit.

Generate ONLY the cover letter. No explanations.`,

	WritingTypeFollowUp: `You are writing a Follow-up Email for {profile.name}.

TARGET: {companyName} - {roleName}
TARGET LEVEL: {roleLevel}

{rolePresentation}

PROFILE:
- Current: {profile.current_position}
- Education: {profile.education}
- Key Skills: {profile.topSkills}
- Top Projects: {profile.keyProjects}
- Leadership: {profile.leadership}

{conversationHistory}

{companyInfo}
{jobDescription}
{specificDetails}

Generate a follow-up email:

SUBJECT: Reference previous interaction

Respected [Name],

PARAGRAPH 1: {conversationRule2}
PARAGRAPH 2: Reaffirm interest + new value
PARAGRAPH 3: {conversationRule3}

Thank you for your consideration.

Respectfully,
{profile.name}
{profile.phone} | {profile.email}

FOLLOW-UP RULES:
1. {conversationRule1}
2. {criticalRule}

WORD LIMIT: STRICTLY maximum {wordLimit} words total

TONE: {tone}
{toneDescription}
CRITICAL: Maximum {wordLimit} words. COUNT every word and STAY UNDER the limit.

Generate ONLY the follow-up email. No explanations.`,
}

// seedProfile is the default active profile
var seedProfile = Profile{
	Name:            "Sabbir Ahmed",
	Email:           "msa29.cse@gmail.com",
	Phone:           "+880 1990-607209",
	Location:        "Matuail, Dhaka-1362",
	LinkedIn:        "linkedin.com/in/msabbirahmed",
	GitHub:          "github.com/sabbirahmed404",
	Website:         "sabbir.codemypixel.com",
	CurrentPosition: "Software Engineer at Codemypixel",
	Education:       "Green University of Bangladesh, BS in Computer Science and Engineering (Feb 2022 – Feb 2026), CGPA: 3.2/4.0",
	KeySkills: StringArray{
		"Full-Stack Development (React, Next.js, Node.js)",
		"AI/ML (PyTorch, RAG, Prompt Engineering, AI Agents)",
		"SaaS Development & Product Management",
		"Low-Code Automation (Make, n8n)",
		"Data Analysis & Visualization",
		"Leadership & Team Management",
	},
	TechnicalStack: "Python, TypeScript, Node.js, PyTorch, JavaScript, Next.js, React, REST API, Supabase, Firebase, OpenAI, Stripe, MongoDB, Docker, Hugging Face",
	TopProjects: ProjectArray{
		{Name: "Topfloor Trends SAAS", Impact: "Integrated Google Ads API reducing campaign deployment to under 60 seconds, built AI pipeline converting 180 minutes of footage into 20+ short reels automatically"},
		{Name: "AI-Powered Lead Automation System", Impact: "Schedules over 500 qualified sales appointments per month, saving sales staff 2-3 hours daily"},
		{Name: "TextGPT & IQR.code SMS", Impact: "Developed RAG-powered SaaS enabling instant AI agent conversations via QR codes for B2B and B2C engagement"},
	},
	Leadership: StringArray{
		"IEEE Student Branch GUB Executive Committee Member - Best Executive of the Year",
		"Green University Photography Club General Secretary",
		"Led team as official photographer for GUB CSE Carnival 2024, covering 12 events",
	},
	Certifications: StringArray{
		"Google Data Analytics Specialization",
		"Hugging Face AI Agents Fundamentals",
		"IBM Python 101 for Data Science",
	},
}

// Seed populates an empty database with the default catalog: writing types,
// tones, role levels, version-1 templates, and the active profile. Existing
// rows are left untouched.
func (db *DB) Seed(ctx context.Context) error {
	for _, wt := range seedWritingTypes {
		_, err := db.pool.Exec(ctx,
			`INSERT INTO writing_types (value, label, description, icon, length_options, context_fields, display_order)
			 SELECT $1, $2, $3, $4, $5, $6, $7
			 WHERE NOT EXISTS (SELECT 1 FROM writing_types WHERE value = $1 AND is_active)`,
			wt.Value, wt.Label, nullIfEmpty(wt.Description), nullIfEmpty(wt.Icon),
			wt.LengthOptions, wt.ContextFields, wt.DisplayOrder,
		)
		if err != nil {
			return fmt.Errorf("failed to seed writing type %s: %w", wt.Value, err)
		}
	}

	for _, t := range seedTones {
		_, err := db.pool.Exec(ctx,
			`INSERT INTO tones (value, label, description, context, display_order)
			 SELECT $1, $2, $3, $4, $5
			 WHERE NOT EXISTS (SELECT 1 FROM tones WHERE value = $1 AND context = $4 AND is_active)`,
			t.Value, t.Label, nullIfEmpty(t.Description), t.Context, t.DisplayOrder,
		)
		if err != nil {
			return fmt.Errorf("failed to seed tone %s/%s: %w", t.Value, t.Context, err)
		}
	}

	for _, rl := range seedRoleLevels {
		_, err := db.pool.Exec(ctx,
			`INSERT INTO role_levels (value, label, display_order)
			 SELECT $1, $2, $3
			 WHERE NOT EXISTS (SELECT 1 FROM role_levels WHERE value = $1 AND is_active)`,
			rl.Value, rl.Label, rl.DisplayOrder,
		)
		if err != nil {
			return fmt.Errorf("failed to seed role level %s: %w", rl.Value, err)
		}
	}

	for writingType, content := range seedTemplates {
		_, err := db.pool.Exec(ctx,
			`INSERT INTO prompt_templates (writing_type, name, template_content, version)
			 SELECT $1, $2, $3, 1
			 WHERE NOT EXISTS (SELECT 1 FROM prompt_templates WHERE writing_type = $1)`,
			writingType, "Default "+writingType+" template", content,
		)
		if err != nil {
			return fmt.Errorf("failed to seed template %s: %w", writingType, err)
		}
	}

	p := seedProfile
	_, err := db.pool.Exec(ctx,
		`INSERT INTO profile (name, email, phone, location, linkedin, github, website,
		                      current_position, education, key_skills, technical_stack,
		                      top_projects, leadership, certifications)
		 SELECT $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14
		 WHERE NOT EXISTS (SELECT 1 FROM profile WHERE is_active)`,
		p.Name, p.Email, nullIfEmpty(p.Phone), nullIfEmpty(p.Location),
		nullIfEmpty(p.LinkedIn), nullIfEmpty(p.GitHub), nullIfEmpty(p.Website),
		nullIfEmpty(p.CurrentPosition), nullIfEmpty(p.Education),
		p.KeySkills, nullIfEmpty(p.TechnicalStack),
		p.TopProjects, p.Leadership, p.Certifications,
	)
	if err != nil {
		return fmt.Errorf("failed to seed profile: %w", err)
	}

	return nil
}
