package services

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var strictPolicy = bluemonday.StrictPolicy()

// SanitizeText strips any markup from free-text user input such as
// qualification statements, motivation drafts and decision reasonings
func SanitizeText(input string) string {
	return strings.TrimSpace(strictPolicy.Sanitize(input))
}

// runAnswerTextKeys are the free-text JSON fields of the answers block
var runAnswerTextKeys = []string{
	"qualification",
	"procedural_justification",
	"motivation",
	"dispositif",
}

// SanitizeRunAnswers cleans every free-text field of the answers block
func SanitizeRunAnswers(answers map[string]interface{}) map[string]interface{} {
	for _, key := range runAnswerTextKeys {
		if value, ok := answers[key].(string); ok {
			answers[key] = SanitizeText(value)
		}
	}
	return answers
}
