package state

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

var (
	ErrUnknownSession = errors.New("session not found")
	ErrInvalidSession = errors.New("session id is empty")
)

const defaultSweepInterval = 5 * time.Minute

// StoreOption customizes a Store.
type StoreOption func(*Store)

// WithTTL bounds session retention: conversations idle longer than ttl are
// evicted by the janitor. A zero ttl keeps conversations for the lifetime of
// the process, matching the original behavior.
func WithTTL(ttl time.Duration) StoreOption {
	return func(s *Store) {
		if ttl > 0 {
			s.ttl = ttl
		}
	}
}

func WithSweepInterval(interval time.Duration) StoreOption {
	return func(s *Store) {
		if interval > 0 {
			s.sweepInterval = interval
		}
	}
}

func WithClock(now func() time.Time) StoreOption {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// Store owns all Conversations, keyed by an opaque client-supplied session
// id. Conversations are created lazily on first contact.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*Conversation

	ttl           time.Duration
	sweepInterval time.Duration
	now           func() time.Time
}

func NewStore(opts ...StoreOption) *Store {
	s := &Store{
		sessions:      make(map[string]*Conversation, 64),
		sweepInterval: defaultSweepInterval,
		now:           time.Now,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// GetOrCreate returns the Conversation for sessionID, creating an empty one
// on first contact.
func (s *Store) GetOrCreate(sessionID string) (*Conversation, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return nil, ErrInvalidSession
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if conv, ok := s.sessions[sessionID]; ok {
		return conv, nil
	}
	conv := newConversation(sessionID, s.now())
	s.sessions[sessionID] = conv
	return conv, nil
}

// MarkBookingPending flags a session so the next chat message acknowledges
// the booking. Unknown sessions are an error: the booking webhook only fires
// for sessions that already talked to us.
func (s *Store) MarkBookingPending(sessionID string) error {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return ErrInvalidSession
	}

	s.mu.Lock()
	conv, ok := s.sessions[sessionID]
	s.mu.Unlock()
	if !ok {
		return ErrUnknownSession
	}

	conv.Lock()
	conv.AwaitingBookingConfirmation = true
	conv.Touch(s.now())
	conv.Unlock()
	return nil
}

// AppendKnowledge adds extracted document text to a session's supplemental
// knowledge, creating the session if it has not talked to us yet.
func (s *Store) AppendKnowledge(sessionID, text string) error {
	conv, err := s.GetOrCreate(sessionID)
	if err != nil {
		return err
	}
	conv.Lock()
	conv.AppendKnowledge(text, s.now())
	conv.Unlock()
	return nil
}

// Len returns the number of live conversations.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Sweep evicts conversations idle longer than the configured TTL and returns
// the number removed. No-op when no TTL is set.
func (s *Store) Sweep(now time.Time) int {
	if s.ttl <= 0 {
		return 0
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	cutoff := now.Add(-s.ttl)
	for id, conv := range s.sessions {
		if conv.UpdatedAt.Before(cutoff) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

// RunJanitor sweeps periodically until the context is cancelled. It returns
// immediately when no TTL is configured.
func (s *Store) RunJanitor(ctx context.Context) {
	if s.ttl <= 0 {
		return
	}

	ticker := time.NewTicker(s.sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if removed := s.Sweep(s.now()); removed > 0 {
				log.Debug().Int("removed", removed).Msg("session janitor evicted idle conversations")
			}
		}
	}
}
