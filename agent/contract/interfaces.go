package contract

import (
	"context"

	statex "github.com/viliokaized/prime-intake/agent/state"
)

// Answerer is the knowledge answer gateway: question + context in, friendly
// natural-language reply out.
type Answerer interface {
	// Answer produces a knowledge-base answer, or the canned "all set"
	// acknowledgment when the request carries a full identity triple.
	Answer(ctx context.Context, req AnswerRequest) (string, error)

	// Generate invokes the raw generation capability with a system
	// instruction. Used only for the defensive free-form fallback.
	Generate(ctx context.Context, system, user string) (string, error)
}

// Notifier delivers a completed lead to the outbound notification endpoint.
type Notifier interface {
	Notify(ctx context.Context, lead statex.Lead) error
}

// Persister writes a completed lead to durable storage.
type Persister interface {
	Persist(ctx context.Context, lead statex.Lead) error
}

// TextExtractor turns an uploaded document into plain text for the
// session's supplemental knowledge.
type TextExtractor interface {
	ExtractText(filename string, data []byte) (string, error)
}
