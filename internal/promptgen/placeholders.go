// Package promptgen assembles generation prompts from database-resident
// templates, the active profile, and typed request parameters.
package promptgen

import "strings"

// Render replaces every literal {key} occurrence in template with the value
// mapped for key, for every key in data. Dotted keys such as profile.name are
// matched literally as {profile.name}. Replacement is plain textual
// substitution: a key absent from the template is a no-op, and a {token} with
// no matching key is left verbatim.
func Render(template string, data map[string]string) string {
	result := template
	for key, value := range data {
		result = strings.ReplaceAll(result, "{"+key+"}", value)
	}
	return result
}
