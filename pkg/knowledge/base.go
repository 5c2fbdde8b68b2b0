// Package knowledge implements the knowledge answer gateway: a process-wide
// knowledge base loaded at startup plus an OpenAI-backed answerer that turns
// a question and contextual text into a short, friendly reply.
package knowledge

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"
)

// Base is the static knowledge text the answerer grounds its replies in.
type Base struct {
	text string
}

// Text returns the concatenated knowledge base content.
func (b *Base) Text() string {
	if b == nil {
		return ""
	}
	return b.text
}

// LoadBase reads all .txt and .md documents under dir, concatenated in file
// name order. A missing directory is not an error: the bot still runs, it
// just has nothing to ground answers in.
func LoadBase(dir string) (*Base, error) {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return &Base{}, nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Warn().Str("dir", dir).Msg("knowledge base directory does not exist")
			return &Base{}, nil
		}
		return nil, err
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(e.Name())) {
		case ".txt", ".md":
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	var parts []string
	for _, name := range names {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		if content := strings.TrimSpace(string(data)); content != "" {
			parts = append(parts, content)
		}
	}

	log.Info().Int("documents", len(parts)).Str("dir", dir).Msg("knowledge base loaded")
	return &Base{text: strings.Join(parts, "\n\n")}, nil
}
