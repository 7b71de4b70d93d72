package cart

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
)

// Adapter is the persistence boundary of a cart. Load errors are treated
// as an empty cart by the Store, never surfaced to the customer.
type Adapter interface {
	Load() ([]Line, error)
	Save(lines []Line) error
}

// MemoryAdapter keeps the snapshot in process. Used in tests and as the
// fallback when no cart directory is configured.
type MemoryAdapter struct {
	lines []Line
}

func NewMemoryAdapter() *MemoryAdapter { return &MemoryAdapter{} }

func (a *MemoryAdapter) Load() ([]Line, error) {
	out := make([]Line, len(a.lines))
	copy(out, a.lines)
	return out, nil
}

func (a *MemoryAdapter) Save(lines []Line) error {
	a.lines = make([]Line, len(lines))
	copy(a.lines, lines)
	return nil
}

// FileAdapter persists the cart as a JSON file, one file per cart token,
// so carts survive restarts the way the browser-local cart survived reloads.
type FileAdapter struct {
	path string
}

func NewFileAdapter(path string) *FileAdapter { return &FileAdapter{path: path} }

func (a *FileAdapter) Load() ([]Line, error) {
	data, err := os.ReadFile(a.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	var lines []Line
	if err := json.Unmarshal(data, &lines); err != nil {
		// Malformed snapshot reads as an empty cart.
		return nil, err
	}
	return lines, nil
}

func (a *FileAdapter) Save(lines []Line) error {
	if err := os.MkdirAll(filepath.Dir(a.path), 0o755); err != nil {
		return err
	}
	data, err := json.Marshal(lines)
	if err != nil {
		return err
	}
	return os.WriteFile(a.path, data, 0o644)
}
