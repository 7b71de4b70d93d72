package cart

import (
	"path/filepath"
	"regexp"
	"sync"
)

var tokenPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

// ValidToken guards the cart token so it is safe to use as a filename.
func ValidToken(token string) bool {
	return tokenPattern.MatchString(token)
}

// Manager hands out one Store per cart token. With a directory configured
// each cart is backed by its own JSON file; without one, carts live only
// in memory.
type Manager struct {
	mu     sync.Mutex
	dir    string
	stores map[string]*Store
}

func NewManager(dir string) *Manager {
	return &Manager{dir: dir, stores: make(map[string]*Store)}
}

func (m *Manager) Get(token string) *Store {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.stores[token]; ok {
		return s
	}
	var adapter Adapter
	if m.dir != "" {
		adapter = NewFileAdapter(filepath.Join(m.dir, token+".json"))
	} else {
		adapter = NewMemoryAdapter()
	}
	s := NewStore(adapter)
	m.stores[token] = s
	return s
}
