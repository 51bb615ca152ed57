package promptgen

import (
	"fmt"
	"strings"

	"github.com/sabbir/outreach-composer/internal/db"
)

// Fixed profile summary strings. These are deliberately not derived from
// profile.top_projects; the structured project data stays available on the
// Profile for templates that reference it directly.
const (
	keyAchievementSummary = "Built systems saving 2-3 hours daily, 500+ leads/month automation"
	keyProjectsSummary    = "Built AI systems saving 2-3 hours daily, 500+ leads/month automation"
	fallbackLeadership    = "IEEE Best Executive Award"
)

const conversationReplyHeader = `CONVERSATION HISTORY (READ CAREFULLY):
%s

CRITICAL: This is a REPLY to their last message. You MUST:
1. Directly reference/respond to what they just said
2. Keep the conversational flow natural
3. Don't introduce yourself again if you already did
4. Build on the existing conversation`

// DerivedContext holds every higher-order value a template may reference,
// computed from the request plus the fetched profile and tone records.
type DerivedContext struct {
	RolePresentation    string
	ConversationHistory string
	ConversationRule1   string
	ConversationRule2   string
	ConversationRule3   string
	CriticalRule        string
	ToneDescription     string
	TopSkills           string
	KeyAchievement      string
	KeyProjects         string
	LeadershipHighlight string
}

// Derive computes the full derived context. Pure function of its inputs.
func Derive(req *GenerationRequest, profile *db.Profile, tones []db.Tone) DerivedContext {
	d := DerivedContext{
		RolePresentation:    DeriveRolePresentation(req.RoleLevel, profile.Name),
		ToneDescription:     DeriveToneDescription(req.Tone, tones),
		TopSkills:           topSkills(profile.KeySkills),
		KeyAchievement:      keyAchievementSummary,
		KeyProjects:         keyProjectsSummary,
		LeadershipHighlight: leadershipHighlight(profile.Leadership),
	}
	d.ConversationHistory, d.ConversationRule1, d.ConversationRule2, d.ConversationRule3, d.CriticalRule =
		deriveConversation(req.WritingType, req.ConversationContext, profile.Name)
	return d
}

// DeriveRolePresentation returns the self-presentation sentence for a role
// level. Total over all inputs: any value outside intern/senior, including
// the empty string, resolves to the generic sentence.
func DeriveRolePresentation(roleLevel, name string) string {
	switch roleLevel {
	case "intern":
		return fmt.Sprintf(`Present as: "I'm %s, a final-year CS student at Green University of Bangladesh specializing in AI/ML and full-stack development."`, name)
	case "senior":
		return fmt.Sprintf(`Present as: "I'm %s, CTO & Lead Software Engineer at Codemypixel."`, name)
	default:
		return fmt.Sprintf(`Present as: "I'm %s, a Software Engineer specializing in AI/ML and full-stack development."`, name)
	}
}

// ConversationApplies reports whether conversation-history formatting applies
// to a writing type.
func ConversationApplies(writingType string) bool {
	return writingType == db.WritingTypeLinkedInMessage || writingType == db.WritingTypeFollowUp
}

// HasConversation reports whether at least one message carries non-blank text
func HasConversation(messages []ConversationMessage) bool {
	for _, msg := range messages {
		if strings.TrimSpace(msg.Text) != "" {
			return true
		}
	}
	return false
}

// ToneContextFor returns the tone context a writing type draws from
func ToneContextFor(writingType string) string {
	if writingType == db.WritingTypeLinkedInMessage {
		return db.ToneContextLinkedIn
	}
	return db.ToneContextEmail
}

// DeriveToneDescription looks up the requested tone among the fetched tones.
// A miss is not an error: the description resolves to the empty string and
// generation proceeds.
func DeriveToneDescription(tone string, tones []db.Tone) string {
	for _, t := range tones {
		if t.Value == tone {
			return "- " + t.Description
		}
	}
	return ""
}

// deriveConversation computes the five conversation-derived strings:
// history block, three ordered rules, and the critical rule.
func deriveConversation(writingType string, messages []ConversationMessage, profileName string) (history, rule1, rule2, rule3, critical string) {
	if !ConversationApplies(writingType) {
		return "", "", "", "", ""
	}

	if HasConversation(messages) {
		history = fmt.Sprintf(conversationReplyHeader, renderTranscript(messages, profileName))
		rule1 = "Start by responding to their message - acknowledge what they said"
		rule2 = "Continue the conversation naturally"
		rule3 = "Next step or question based on conversation"
		critical = "MUST respond to their last message first"
		return history, rule1, rule2, rule3, critical
	}

	if writingType == db.WritingTypeLinkedInMessage {
		history = "This is an INITIAL message."
		rule1 = `Start with casual greeting: "Hi [Name]," or "Hey [Name],"`
		rule2 = "Brief intro (1 line max)"
		rule3 = "Simple ask or question"
		critical = "Start with casual greeting"
	} else {
		history = "This is an INITIAL follow-up email."
		rule1 = `Start with formal salutation: "Respected [Name]," or "Dear [Name],"`
		rule2 = "Reference your previous application or interview"
		rule3 = "Reaffirm interest and request a status update"
		critical = "Start with formal salutation"
	}
	return history, rule1, rule2, rule3, critical
}

// renderTranscript renders non-blank messages in order, one line each:
// [<sender>]: <text>, or [<sender> (<timestamp>)]: <text> when a timestamp
// is available. The sender is the profile name for sent messages and the
// literal "They" otherwise.
func renderTranscript(messages []ConversationMessage, profileName string) string {
	var lines []string
	for _, msg := range messages {
		if strings.TrimSpace(msg.Text) == "" {
			continue
		}
		sender := "They"
		if msg.Direction == DirectionSent {
			sender = profileName
		}
		if ts := messageTimestamp(msg); ts != "" {
			lines = append(lines, fmt.Sprintf("[%s (%s)]: %s", sender, ts, msg.Text))
		} else {
			lines = append(lines, fmt.Sprintf("[%s]: %s", sender, msg.Text))
		}
	}
	return strings.Join(lines, "\n")
}

// messageTimestamp returns the human timestamp label for a message,
// deriving one from the machine-readable instant when no label is set.
func messageTimestamp(msg ConversationMessage) string {
	if msg.Timestamp != "" {
		return msg.Timestamp
	}
	if !msg.DateTime.IsZero() {
		return msg.DateTime.Format("Jan 2, 3:04 PM")
	}
	return ""
}

// topSkills joins the first three key skills, fewer if the list is shorter
func topSkills(skills []string) string {
	if len(skills) > 3 {
		skills = skills[:3]
	}
	return strings.Join(skills, ", ")
}

// leadershipHighlight returns the first leadership entry or the fallback
func leadershipHighlight(leadership []string) string {
	if len(leadership) > 0 {
		return leadership[0]
	}
	return fallbackLeadership
}

// defaultIfEmpty returns fallback when value is the empty string
func defaultIfEmpty(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

// labeledOrEmpty prefixes a free-text field with its label, or collapses to
// the empty string when the field is unset so no label leaks into the prompt.
func labeledOrEmpty(label, value string) string {
	if value == "" {
		return ""
	}
	return label + value
}
