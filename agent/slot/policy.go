// Package slot implements the slot-filling policy: which lead field to ask
// for next and how to ask for it.
package slot

import (
	statex "github.com/viliokaized/prime-intake/agent/state"
)

// Order is the fixed priority in which missing fields are asked for.
var Order = []statex.Field{
	statex.FieldName,
	statex.FieldEmail,
	statex.FieldPhone,
	statex.FieldInsuranceType,
}

var prompts = map[statex.Field]string{
	statex.FieldName:          "May I have your full name?",
	statex.FieldEmail:         "Could you share your email address?",
	statex.FieldPhone:         "What's the best phone number to reach you?",
	statex.FieldInsuranceType: "What type of insurance do you need? (auto, health, life, home)",
}

// NextMissing returns the first unset field in priority order, or "" when the
// lead is complete.
func NextMissing(lead *statex.Lead) statex.Field {
	for _, f := range Order {
		if !lead.Has(f) {
			return f
		}
	}
	return ""
}

// Prompt returns the static question for a field.
func Prompt(field statex.Field) string {
	return prompts[field]
}

// IsComplete reports whether no field is missing.
func IsComplete(lead *statex.Lead) bool {
	return NextMissing(lead) == ""
}
