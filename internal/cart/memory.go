// Package cart provides the in-memory shopping cart store. Cart state
// lives only for the current session; there is no persistence.
package cart

import (
	"sync"

	"forgottenflavors/internal/catalog"
	"forgottenflavors/internal/domain"
	"forgottenflavors/internal/logger"
)

// ItemID builds the composite line key for a (recipe, item name) pair.
func ItemID(recipeID domain.ID, itemName string) string {
	return string(recipeID) + ":" + itemName
}

// Store is an in-memory cart. Lines keep insertion order. Safe for
// concurrent access.
type Store struct {
	mu    sync.RWMutex
	lines []*domain.CartItem
	index map[string]*domain.CartItem
	log   *logger.Logger
}

// NewStore creates an empty cart.
func NewStore(log *logger.Logger) *Store {
	return &Store{
		index: make(map[string]*domain.CartItem),
		log:   log,
	}
}

// AddItem puts one unit of the named item in the cart. A line with the
// same (recipe, item name) key is incremented instead of duplicated.
func (s *Store) AddItem(r domain.Recipe, itemName string) domain.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return *s.addLocked(r, itemName)
}

func (s *Store) addLocked(r domain.Recipe, itemName string) *domain.CartItem {
	id := ItemID(r.ID, itemName)
	if line, ok := s.index[id]; ok {
		line.Quantity++
		s.log.Debug("cart line %s incremented to %d", id, line.Quantity)
		return line
	}

	line := &domain.CartItem{
		ID:         id,
		RecipeID:   r.ID,
		RecipeName: r.Name,
		ItemName:   itemName,
		Quantity:   1,
		UnitPrice:  MockPrice(itemName),
	}
	s.lines = append(s.lines, line)
	s.index[id] = line
	s.log.Debug("cart line %s added at $%.2f", id, line.UnitPrice)
	return line
}

// AddKit adds every derived kit item for the recipe and returns how
// many entries were added. Duplicate names within the kit increment the
// same line once each. An empty kit is a no-op and returns 0, letting
// the caller decide whether to open the cart view.
func (s *Store) AddKit(r domain.Recipe) int {
	items := catalog.KitItems(r)
	if len(items) == 0 {
		return 0
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, item := range items {
		s.addLocked(r, item)
	}
	s.log.Info("added %d-item kit for %q to cart", len(items), r.Name)
	return len(items)
}

// UpdateQuantity adds delta to a line's quantity. A result of zero or
// less removes the line entirely.
func (s *Store) UpdateQuantity(lineID string, delta int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	line, ok := s.index[lineID]
	if !ok {
		return domain.ErrNotFound
	}

	line.Quantity += delta
	if line.Quantity <= 0 {
		s.removeLocked(lineID)
		s.log.Debug("cart line %s removed (quantity reached 0)", lineID)
		return nil
	}
	return nil
}

// RemoveItem removes a line unconditionally.
func (s *Store) RemoveItem(lineID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.index[lineID]; !ok {
		return domain.ErrNotFound
	}
	s.removeLocked(lineID)
	s.log.Debug("cart line %s removed", lineID)
	return nil
}

func (s *Store) removeLocked(lineID string) {
	delete(s.index, lineID)
	for i, line := range s.lines {
		if line.ID == lineID {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			return
		}
	}
}

// Items returns the cart lines in insertion order.
func (s *Store) Items() []domain.CartItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.CartItem, len(s.lines))
	for i, line := range s.lines {
		out[i] = *line
	}
	return out
}

// Subtotal is the sum of quantity times unit price over all lines.
func (s *Store) Subtotal() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var total float64
	for _, line := range s.lines {
		total += float64(line.Quantity) * line.UnitPrice
	}
	return total
}

// ItemCount is the sum of quantities over all lines.
func (s *Store) ItemCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, line := range s.lines {
		count += line.Quantity
	}
	return count
}
