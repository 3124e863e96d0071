package services

import (
	"strconv"
	"strings"
)

// shortHashLength is the fixed width of the base-36 token in case ids
const shortHashLength = 8

// templateTagRules maps template-id keywords to the 3-letter domain tag
// embedded in case ids. Order matters: the military keyword must win over
// the plain penal one.
var templateTagRules = []struct {
	Keyword string
	Tag     string
}{
	{"MILIT", "MIL"},
	{"PENAL", "PEN"},
	{"FONCIER", "FON"},
	{"TRAVAIL", "TRA"},
	{"CONST", "CON"},
	{"FAMILLE", "FAM"},
	{"COMMERC", "COM"},
	{"ADMIN", "ADM"},
}

// NormalizeSeed trims the seed and maps an empty result to "0"
func NormalizeSeed(seed string) string {
	s := strings.TrimSpace(seed)
	if s == "" {
		return "0"
	}
	return s
}

// ShortHash hashes the input with the generator seed hash and formats the
// result as a fixed-length base-36 token
func ShortHash(input string) string {
	h := seedHash(input)()
	token := strconv.FormatUint(uint64(h), 36)
	for len(token) < shortHashLength {
		token = "0" + token
	}
	return token
}

// TemplateTag derives the 3-letter domain tag from a template id,
// falling back to GEN for unrecognized ids
func TemplateTag(templateID string) string {
	upper := strings.ToUpper(templateID)
	for _, rule := range templateTagRules {
		if strings.Contains(upper, rule.Keyword) {
			return rule.Tag
		}
	}
	return "GEN"
}

// MakeCaseID derives the stable case id for a (template, seed) pair.
// Same inputs always yield the same id.
func MakeCaseID(templateID, seed string) string {
	normalized := NormalizeSeed(seed)
	return "RDC-" + TemplateTag(templateID) + "-" + ShortHash(templateID+":"+normalized)
}
