package db

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWritingTypeConstants(t *testing.T) {
	// Verify slug constants are defined
	types := []string{
		WritingTypeColdEmail,
		WritingTypeCoverLetter,
		WritingTypeLinkedInMessage,
		WritingTypeFollowUp,
	}

	for _, wt := range types {
		assert.NotEmpty(t, wt, "writing type constant should not be empty")
	}
}

func TestStringArray_ScanValue(t *testing.T) {
	var a StringArray
	require.NoError(t, a.Scan([]byte(`["Go", "Python"]`)))
	assert.Equal(t, StringArray{"Go", "Python"}, a)

	require.NoError(t, a.Scan(nil))
	assert.Empty(t, a)

	v, err := StringArray{"x"}.Value()
	require.NoError(t, err)
	assert.JSONEq(t, `["x"]`, string(v.([]byte)))

	v, err = StringArray(nil).Value()
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(v.([]byte)))

	assert.Error(t, a.Scan(42))
}

func TestProjectArray_ScanValue(t *testing.T) {
	var a ProjectArray
	require.NoError(t, a.Scan([]byte(`[{"name": "Bidding Bot", "impact": "500+ leads/month"}]`)))
	require.Len(t, a, 1)
	assert.Equal(t, "Bidding Bot", a[0].Name)
	assert.Equal(t, "500+ leads/month", a[0].Impact)
}

func TestContextFieldArray_Scan(t *testing.T) {
	var a ContextFieldArray
	require.NoError(t, a.Scan([]byte(`[{"field_name": "companyName", "label": "Company", "input_kind": "text", "required": true}]`)))
	require.Len(t, a, 1)
	assert.Equal(t, "companyName", a[0].FieldName)
	assert.True(t, a[0].Required)
}

func TestNullIfEmpty(t *testing.T) {
	assert.Nil(t, nullIfEmpty(""))

	p := nullIfEmpty("value")
	require.NotNil(t, p)
	assert.Equal(t, "value", *p)
}

func TestSeedCatalogsCoverEveryWritingType(t *testing.T) {
	slugs := map[string]bool{}
	for _, wt := range seedWritingTypes {
		slugs[wt.Value] = true
		assert.NotEmpty(t, wt.Label)
		assert.NotEmpty(t, wt.LengthOptions)
	}

	for _, slug := range []string{WritingTypeColdEmail, WritingTypeCoverLetter, WritingTypeLinkedInMessage, WritingTypeFollowUp} {
		assert.True(t, slugs[slug], "missing seed writing type %s", slug)
		assert.Contains(t, seedTemplates, slug, "missing seed template for %s", slug)
	}
}

func TestSeedTemplatesCarryCorePlaceholders(t *testing.T) {
	for slug, content := range seedTemplates {
		assert.Contains(t, content, "{profile.name}", "template %s", slug)
		assert.Contains(t, content, "{wordLimit}", "template %s", slug)
		assert.Contains(t, content, "{rolePresentation}", "template %s", slug)
	}

	// Conversation blocks only appear where conversations apply
	for _, slug := range []string{WritingTypeLinkedInMessage, WritingTypeFollowUp} {
		assert.Contains(t, seedTemplates[slug], "{conversationHistory}", "template %s", slug)
	}
	assert.NotContains(t, seedTemplates[WritingTypeColdEmail], "{conversationHistory}")
	assert.NotContains(t, seedTemplates[WritingTypeCoverLetter], "{conversationHistory}")
}

func TestSeedTonesSplitByContext(t *testing.T) {
	var email, linkedin int
	for _, tone := range seedTones {
		switch tone.Context {
		case ToneContextEmail:
			email++
		case ToneContextLinkedIn:
			linkedin++
		default:
			t.Fatalf("unexpected tone context %q", tone.Context)
		}
		assert.NotEmpty(t, tone.Description, "tone %s", tone.Value)
	}
	assert.NotZero(t, email)
	assert.NotZero(t, linkedin)
}

func TestSeedProfile(t *testing.T) {
	assert.Equal(t, "Sabbir Ahmed", seedProfile.Name)
	assert.NotEmpty(t, seedProfile.Email)
	assert.GreaterOrEqual(t, len(seedProfile.KeySkills), 3)
	assert.NotEmpty(t, seedProfile.TopProjects)
}

func TestSchemaStatementsAreOrdered(t *testing.T) {
	// Tables referenced by prompt_templates must be created first
	joined := strings.Join(schemaStatements, "\n")
	assert.Less(t, strings.Index(joined, "CREATE TABLE IF NOT EXISTS writing_types"),
		strings.Index(joined, "CREATE TABLE IF NOT EXISTS prompt_templates"))
}
