package state

import (
	"strings"
	"sync"
	"time"
)

// Role of a transcript turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn is one exchanged message in a conversation transcript.
type Turn struct {
	Role    Role      `json:"role"`
	Content string    `json:"content"`
	At      time.Time `json:"at"`
}

// Conversation is the per-session dialog state. It exclusively owns its Lead
// and transcript; nothing here is shared across sessions.
//
// All mutation happens while the conversation is locked. The orchestrator
// holds the lock for an entire turn so a turn is never interleaved with
// another turn for the same session, and Dispatched can only flip
// false -> true under that exclusion.
type Conversation struct {
	mu sync.Mutex

	SessionID string

	Lead Lead

	// Dispatched is monotonic: set at most once, when the completed lead has
	// been delivered to both the notifier and the persister.
	Dispatched bool

	// AwaitingBookingConfirmation is transient: set by the booking webhook,
	// consumed and cleared by the very next chat message.
	AwaitingBookingConfirmation bool

	// LastAsked is the slot the previous bot turn asked about. Cleared once
	// that field is filled.
	LastAsked Field

	Transcript []Turn

	// SupplementalKnowledge is freeform text contributed by uploaded
	// documents, scoped to this session only.
	SupplementalKnowledge string

	CreatedAt time.Time
	UpdatedAt time.Time
}

func newConversation(sessionID string, now time.Time) *Conversation {
	return &Conversation{
		SessionID: sessionID,
		CreatedAt: now.UTC(),
		UpdatedAt: now.UTC(),
	}
}

// Lock acquires the per-session mutex. The caller must hold it for the whole
// turn-processing sequence.
func (c *Conversation) Lock() { c.mu.Lock() }

// Unlock releases the per-session mutex.
func (c *Conversation) Unlock() { c.mu.Unlock() }

// AppendUser records a user turn. Caller must hold the lock.
func (c *Conversation) AppendUser(content string, now time.Time) {
	c.Transcript = append(c.Transcript, Turn{Role: RoleUser, Content: content, At: now.UTC()})
	c.Touch(now)
}

// AppendAssistant records a bot turn. Caller must hold the lock.
func (c *Conversation) AppendAssistant(content string, now time.Time) {
	c.Transcript = append(c.Transcript, Turn{Role: RoleAssistant, Content: content, At: now.UTC()})
	c.Touch(now)
}

// AppendKnowledge adds uploaded document text to the session-scoped
// supplemental knowledge. Caller must hold the lock.
func (c *Conversation) AppendKnowledge(text string, now time.Time) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}
	if c.SupplementalKnowledge == "" {
		c.SupplementalKnowledge = text
	} else {
		c.SupplementalKnowledge += "\n\n" + text
	}
	c.Touch(now)
}

func (c *Conversation) Touch(now time.Time) {
	c.UpdatedAt = now.UTC()
}
