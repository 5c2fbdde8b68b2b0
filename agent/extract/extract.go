// Package extract pulls typed lead-field candidates out of raw utterances
// using rule-based matching. Absence of a match is silent: a message with no
// recognizable entities produces no candidates and no error.
package extract

import (
	"regexp"
	"strings"
	"unicode"

	statex "github.com/viliokaized/prime-intake/agent/state"
)

// Candidate is a single typed field value found in a message.
type Candidate struct {
	Field statex.Field
	Value string
}

var (
	emailRe = regexp.MustCompile(`\b[\w.\-]+@[\w.\-]+\.\w+\b`)
	phoneRe = regexp.MustCompile(`\+?\d[\d\s\-().]{7,}`)
	nameRe  = regexp.MustCompile(`(?i)(?:my name is|it's|i am|i'm)\s+([a-zA-Z\s]+)`)
)

var insuranceTypes = []string{"auto", "health", "life", "home", "commercial"}

// Extract returns zero or more field candidates found in text. At most one
// candidate per field is produced: the first match wins within a message,
// mirroring the first-write-wins semantics applied across messages.
func Extract(text string) []Candidate {
	var out []Candidate

	if m := emailRe.FindString(text); m != "" {
		out = append(out, Candidate{Field: statex.FieldEmail, Value: m})
	}
	if m := phoneRe.FindString(text); m != "" {
		out = append(out, Candidate{Field: statex.FieldPhone, Value: strings.TrimSpace(m)})
	}
	if m := nameRe.FindStringSubmatch(text); m != nil {
		if name := capitalizeWords(strings.TrimSpace(m[1])); name != "" {
			out = append(out, Candidate{Field: statex.FieldName, Value: name})
		}
	}

	lower := strings.ToLower(text)
	for _, t := range insuranceTypes {
		if strings.Contains(lower, t) {
			out = append(out, Candidate{Field: statex.FieldInsuranceType, Value: t})
			break
		}
	}

	return out
}

// Apply merges candidates into the lead under first-write-wins semantics and
// returns the fields that were actually written this call.
func Apply(lead *statex.Lead, candidates []Candidate) []statex.Field {
	var written []statex.Field
	for _, c := range candidates {
		if lead.Set(c.Field, c.Value) {
			written = append(written, c.Field)
		}
	}
	return written
}

func capitalizeWords(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}
