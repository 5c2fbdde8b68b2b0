package knowledge

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	contractx "github.com/viliokaized/prime-intake/agent/contract"
)

func writeDoc(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func TestLoadBaseConcatenatesInNameOrder(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeDoc(t, dir, "b-claims.md", "Claims are processed within 5 days.")
	writeDoc(t, dir, "a-coverage.txt", "Auto coverage includes collision.")
	writeDoc(t, dir, "ignored.pdf", "binary")
	writeDoc(t, dir, "empty.txt", "   \n")

	base, err := LoadBase(dir)
	if err != nil {
		t.Fatalf("LoadBase() error = %v", err)
	}

	want := "Auto coverage includes collision.\n\nClaims are processed within 5 days."
	if base.Text() != want {
		t.Fatalf("Text() = %q, want %q", base.Text(), want)
	}
}

func TestLoadBaseMissingDirIsEmpty(t *testing.T) {
	t.Parallel()

	base, err := LoadBase(filepath.Join(t.TempDir(), "does-not-exist"))
	if err != nil {
		t.Fatalf("LoadBase() error = %v", err)
	}
	if base.Text() != "" {
		t.Fatalf("Text() = %q, want empty", base.Text())
	}
}

func TestLoadBaseBlankDirIsEmpty(t *testing.T) {
	t.Parallel()

	base, err := LoadBase("  ")
	if err != nil {
		t.Fatalf("LoadBase() error = %v", err)
	}
	if base.Text() != "" {
		t.Fatalf("Text() = %q, want empty", base.Text())
	}
}

func TestNewAnswererValidatesConfig(t *testing.T) {
	t.Parallel()

	if _, err := NewAnswerer(Config{Model: "gpt-4"}, &Base{}); err == nil {
		t.Fatal("missing api key accepted")
	}
	if _, err := NewAnswerer(Config{APIKey: "sk-test"}, &Base{}); err == nil {
		t.Fatal("missing model accepted")
	}
}

// A full identity triple short-circuits to the canned acknowledgment, so no
// network call happens even with a bogus key.
func TestAnswerShortCircuitsOnFullIdentity(t *testing.T) {
	t.Parallel()

	a, err := NewAnswerer(Config{APIKey: "sk-test", Model: "gpt-4"}, &Base{})
	if err != nil {
		t.Fatalf("NewAnswerer() error = %v", err)
	}

	got, err := a.Answer(context.Background(), contractx.AnswerRequest{
		Question: "what now?",
		Name:     "John Smith",
		Email:    "john@smith.com",
		Phone:    "+15550102030",
	})
	if err != nil {
		t.Fatalf("Answer() error = %v", err)
	}
	if !strings.Contains(got, "You're all set") {
		t.Fatalf("Answer() = %q", got)
	}
}

func TestAnswerPromptIncludesContext(t *testing.T) {
	t.Parallel()

	base := &Base{text: "Home insurance covers fire damage."}
	a, err := NewAnswerer(Config{APIKey: "sk-test", Model: "gpt-4"}, base)
	if err != nil {
		t.Fatalf("NewAnswerer() error = %v", err)
	}

	prompt := a.answerPrompt(contractx.AnswerRequest{
		Question:     "does home insurance cover fire?",
		Supplemental: "Policy #42: deductible $500.",
	})

	for _, want := range []string{
		"Home insurance covers fire damage.",
		"Policy #42: deductible $500.",
		"Question: does home insurance cover fire?",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}
