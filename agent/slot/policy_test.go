package slot

import (
	"testing"

	statex "github.com/viliokaized/prime-intake/agent/state"
)

func TestNextMissingFollowsPriorityOrder(t *testing.T) {
	t.Parallel()

	var lead statex.Lead

	// Filling out of order never changes the asking order.
	lead.Set(statex.FieldPhone, "+1 555-1234")
	if got := NextMissing(&lead); got != statex.FieldName {
		t.Fatalf("NextMissing() = %q, want name", got)
	}

	lead.Set(statex.FieldName, "Jane")
	if got := NextMissing(&lead); got != statex.FieldEmail {
		t.Fatalf("NextMissing() = %q, want email", got)
	}

	lead.Set(statex.FieldEmail, "jane@acme.com")
	if got := NextMissing(&lead); got != statex.FieldInsuranceType {
		t.Fatalf("NextMissing() = %q, want insurance type", got)
	}

	lead.Set(statex.FieldInsuranceType, "auto")
	if got := NextMissing(&lead); got != "" {
		t.Fatalf("NextMissing() = %q, want none", got)
	}
	if !IsComplete(&lead) {
		t.Fatal("lead with no missing field must be complete")
	}
}

func TestPromptsExistForEveryField(t *testing.T) {
	t.Parallel()

	for _, f := range Order {
		if Prompt(f) == "" {
			t.Fatalf("missing prompt for field %q", f)
		}
	}
}
