package extract

import (
	"testing"

	statex "github.com/viliokaized/prime-intake/agent/state"
)

func candidateValue(cands []Candidate, field statex.Field) (string, bool) {
	for _, c := range cands {
		if c.Field == field {
			return c.Value, true
		}
	}
	return "", false
}

func TestExtract(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want map[statex.Field]string
	}{
		{
			name: "email",
			text: "you can write to jane.doe@acme.io anytime",
			want: map[statex.Field]string{statex.FieldEmail: "jane.doe@acme.io"},
		},
		{
			name: "phone with plus and separators",
			text: "call me on +1 (555) 123-4567 tomorrow",
			want: map[statex.Field]string{statex.FieldPhone: "+1 (555) 123-4567"},
		},
		{
			name: "phone without plus",
			text: "my number is 0878 123456",
			want: map[statex.Field]string{statex.FieldPhone: "0878 123456"},
		},
		{
			name: "short digit runs are not phones",
			text: "I have 3 cars and 2 kids",
			want: map[statex.Field]string{},
		},
		{
			name: "name via my name is",
			text: "Hello, my name is jane doe",
			want: map[statex.Field]string{statex.FieldName: "Jane Doe"},
		},
		{
			name: "name via i'm",
			text: "hi, I'm Ann",
			want: map[statex.Field]string{statex.FieldName: "Ann"},
		},
		{
			name: "name via i am",
			text: "i am Bob Smith",
			want: map[statex.Field]string{statex.FieldName: "Bob Smith"},
		},
		{
			name: "name via it's",
			text: "it's Carol",
			want: map[statex.Field]string{statex.FieldName: "Carol"},
		},
		{
			name: "insurance type case-insensitive",
			text: "I want HEALTH coverage",
			want: map[statex.Field]string{statex.FieldInsuranceType: "health"},
		},
		{
			name: "commercial insurance",
			text: "looking for commercial insurance for my shop",
			want: map[statex.Field]string{statex.FieldInsuranceType: "commercial"},
		},
		{
			name: "several fields in one message",
			text: "my name is Jane, email jane@acme.com, I need auto insurance",
			want: map[statex.Field]string{
				statex.FieldName:          "Jane",
				statex.FieldEmail:         "jane@acme.com",
				statex.FieldInsuranceType: "auto",
			},
		},
		{
			name: "nothing recognizable",
			text: "what does a deductible mean?",
			want: map[statex.Field]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cands := Extract(tt.text)
			for field, want := range tt.want {
				got, ok := candidateValue(cands, field)
				if !ok {
					t.Fatalf("expected candidate for %s", field)
				}
				if got != want {
					t.Fatalf("field %s = %q, want %q", field, got, want)
				}
			}
			for _, c := range cands {
				if _, expected := tt.want[c.Field]; !expected {
					t.Fatalf("unexpected candidate %s=%q", c.Field, c.Value)
				}
			}
		})
	}
}

func TestApplyFirstWriteWins(t *testing.T) {
	t.Parallel()

	var lead statex.Lead
	written := Apply(&lead, Extract("I'm Ann, ann@x.com"))
	if len(written) != 2 {
		t.Fatalf("expected two fields written, got %v", written)
	}

	written = Apply(&lead, Extract("actually I'm Bob, bob@y.com"))
	if len(written) != 0 {
		t.Fatalf("expected no overwrite, got %v", written)
	}
	if lead.Name != "Ann" || lead.Email != "ann@x.com" {
		t.Fatalf("first-write-wins violated: %+v", lead)
	}
}
