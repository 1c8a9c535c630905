// Package variation provides the in-memory store for user-saved recipe
// variations. Variations live only for the current session and are
// never deleted or edited.
package variation

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"forgottenflavors/internal/domain"
	"forgottenflavors/internal/logger"
)

// Fallback display values for blank fields.
const (
	defaultName  = "Untitled variation"
	defaultNotes = "No notes provided."
)

// Store keeps saved variations grouped by recipe, insertion order
// preserved. Safe for concurrent access.
type Store struct {
	mu       sync.RWMutex
	byRecipe map[domain.ID][]domain.Variation
	log      *logger.Logger
}

// NewStore creates an empty variation store.
func NewStore(log *logger.Logger) *Store {
	return &Store{
		byRecipe: make(map[domain.ID][]domain.Variation),
		log:      log,
	}
}

// Save appends a variation to the recipe's list. Saving with both
// fields blank is a no-op and reports ok=false. Blank individual
// fields fall back to placeholder text.
func (s *Store) Save(recipeID domain.ID, name, notes string) (domain.Variation, bool) {
	name = strings.TrimSpace(name)
	notes = strings.TrimSpace(notes)
	if name == "" && notes == "" {
		return domain.Variation{}, false
	}

	if name == "" {
		name = defaultName
	}
	if notes == "" {
		notes = defaultNotes
	}

	v := domain.Variation{
		ID:    fmt.Sprintf("%s-%d", recipeID, time.Now().UnixMilli()),
		Name:  name,
		Notes: notes,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.byRecipe[recipeID] = append(s.byRecipe[recipeID], v)
	s.log.Debug("saved variation %q for recipe %s", v.Name, recipeID)
	return v, true
}

// ListFor returns the recipe's saved variations in insertion order, or
// an empty slice when none exist.
func (s *Store) ListFor(recipeID domain.ID) []domain.Variation {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stored := s.byRecipe[recipeID]
	out := make([]domain.Variation, len(stored))
	copy(out, stored)
	return out
}
