package promptgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRender(t *testing.T) {
	template := "Hello {name}, welcome to {company}!"
	data := map[string]string{
		"name":    "Alice",
		"company": "Acme Corp",
	}

	result := Render(template, data)
	assert.Equal(t, "Hello Alice, welcome to Acme Corp!", result)
}

func TestRender_DottedKeys(t *testing.T) {
	template := "From: {profile.name} <{profile.email}>"
	data := map[string]string{
		"profile.name":  "Sabbir Ahmed",
		"profile.email": "sabbir@example.com",
	}

	result := Render(template, data)
	assert.Equal(t, "From: Sabbir Ahmed <sabbir@example.com>", result)
}

func TestRender_UnknownTokenLeftVerbatim(t *testing.T) {
	template := "Known: {known}, unknown: {unknownField}"
	data := map[string]string{"known": "yes"}

	result := Render(template, data)
	assert.Equal(t, "Known: yes, unknown: {unknownField}", result)
}

func TestRender_UnusedKeyIsNoOp(t *testing.T) {
	template := "No placeholders here"
	data := map[string]string{"key": "value"}

	result := Render(template, data)
	assert.Equal(t, template, result)
}

func TestRender_EmptyValues(t *testing.T) {
	template := "before{empty}after"
	data := map[string]string{"empty": ""}

	result := Render(template, data)
	assert.Equal(t, "beforeafter", result)
}

func TestRender_RepeatedToken(t *testing.T) {
	template := "{word} and {word} again"
	data := map[string]string{"word": "echo"}

	result := Render(template, data)
	assert.Equal(t, "echo and echo again", result)
}
