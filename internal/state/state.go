// Package state remembers a content hash per generated page so the sitemap
// only bumps lastmod for pages whose HTML actually changed.
package state

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/zeebo/blake3"
)

// Page is the remembered state of one slug.
type Page struct {
	Hash    string `json:"hash"`
	LastMod string `json:"lastmod"`
}

type State struct {
	Pages map[string]Page `json:"pages"`
}

func New() *State {
	return &State{Pages: map[string]Page{}}
}

// Load reads a state file. A missing file yields an empty state.
func Load(file string) (*State, error) {
	b, err := os.ReadFile(file)
	if errors.Is(err, fs.ErrNotExist) {
		return New(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read state file '%s': %w", file, err)
	}
	s := New()
	if err := json.Unmarshal(b, s); err != nil {
		return nil, fmt.Errorf("failed to parse state file '%s': %w", file, err)
	}
	if s.Pages == nil {
		s.Pages = map[string]Page{}
	}
	return s, nil
}

// Hash is the hex BLAKE3-256 digest of content.
func Hash(content []byte) string {
	sum := blake3.Sum256(content)
	return hex.EncodeToString(sum[:])
}

// Record stores the hash of slug's content and reports whether it differs
// from the previous run. A changed or new page gets today as lastmod.
func (s *State) Record(slug string, content []byte, today string) bool {
	h := Hash(content)
	prev, ok := s.Pages[slug]
	if ok && prev.Hash == h {
		return false
	}
	s.Pages[slug] = Page{Hash: h, LastMod: today}
	return true
}

// Save writes the state as indented JSON with slugs in sorted order.
func (s *State) Save(file string) error {
	b, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode state: %w", err)
	}
	if err := os.WriteFile(file, append(b, '\n'), 0o644); err != nil {
		return fmt.Errorf("failed to write state file '%s': %w", file, err)
	}
	return nil
}
