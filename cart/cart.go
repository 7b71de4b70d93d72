package cart

import (
	"sync"

	"github.com/Xebarter/Manziz/entity"
)

// Line is one menu item in a cart: the item snapshot plus quantity and an
// optional free-text note.
type Line struct {
	Item     entity.MenuItem `json:"item"`
	Quantity int             `json:"quantity"`
	Note     string          `json:"note,omitempty"`
}

// Store holds one customer's cart. State is loaded from the adapter at
// construction and written back after every mutation; a corrupt or missing
// snapshot loads as an empty cart.
type Store struct {
	mu      sync.Mutex
	lines   []Line
	adapter Adapter
}

func NewStore(adapter Adapter) *Store {
	s := &Store{adapter: adapter}
	if lines, err := adapter.Load(); err == nil {
		s.lines = lines
	}
	return s
}

// AddItem appends a new line with quantity 1, or bumps the quantity of an
// existing line for the same item. A non-empty note replaces the old one.
func (s *Store) AddItem(item entity.MenuItem, note string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.lines {
		if s.lines[i].Item.ID == item.ID {
			s.lines[i].Quantity++
			if note != "" {
				s.lines[i].Note = note
			}
			s.persist()
			return
		}
	}
	s.lines = append(s.lines, Line{Item: item, Quantity: 1, Note: note})
	s.persist()
}

func (s *Store) RemoveItem(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.remove(id)
	s.persist()
}

// UpdateQuantity sets the quantity for id; anything below 1 removes the line.
func (s *Store) UpdateQuantity(id string, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if quantity <= 0 {
		s.remove(id)
		s.persist()
		return
	}
	for i := range s.lines {
		if s.lines[i].Item.ID == id {
			s.lines[i].Quantity = quantity
			break
		}
	}
	s.persist()
}

func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = nil
	s.persist()
}

func (s *Store) Lines() []Line {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Line, len(s.lines))
	copy(out, s.lines)
	return out
}

func (s *Store) TotalPrice() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	var total int64
	for _, l := range s.lines {
		total += l.Item.Price * int64(l.Quantity)
	}
	return total
}

func (s *Store) TotalItems() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, l := range s.lines {
		n += l.Quantity
	}
	return n
}

func (s *Store) remove(id string) {
	kept := s.lines[:0]
	for _, l := range s.lines {
		if l.Item.ID != id {
			kept = append(kept, l)
		}
	}
	s.lines = kept
}

func (s *Store) persist() {
	// Persistence is best effort; the in-memory cart stays authoritative.
	_ = s.adapter.Save(s.lines)
}
