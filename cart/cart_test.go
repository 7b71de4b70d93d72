package cart

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Xebarter/Manziz/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func item(id string, price int64) entity.MenuItem {
	return entity.MenuItem{ID: id, Name: "item-" + id, Price: price, IsAvailable: true}
}

func TestAddItemMergesByID(t *testing.T) {
	s := NewStore(NewMemoryAdapter())

	s.AddItem(item("a", 18000), "no onions")
	s.AddItem(item("a", 18000), "extra cheese")

	lines := s.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].Quantity)
	// The second note wins.
	assert.Equal(t, "extra cheese", lines[0].Note)
}

func TestAddItemKeepsOldNoteWhenNewOneEmpty(t *testing.T) {
	s := NewStore(NewMemoryAdapter())

	s.AddItem(item("a", 18000), "no onions")
	s.AddItem(item("a", 18000), "")

	lines := s.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, "no onions", lines[0].Note)
}

func TestTotalsMatchLineSums(t *testing.T) {
	s := NewStore(NewMemoryAdapter())

	s.AddItem(item("a", 18000), "")
	s.AddItem(item("a", 18000), "")
	s.AddItem(item("b", 6000), "")
	s.UpdateQuantity("b", 3)

	assert.Equal(t, 5, s.TotalItems())
	assert.Equal(t, int64(2*18000+3*6000), s.TotalPrice())
}

func TestUpdateQuantityZeroRemovesLine(t *testing.T) {
	s := NewStore(NewMemoryAdapter())
	s.AddItem(item("a", 18000), "")
	s.AddItem(item("b", 6000), "")

	s.UpdateQuantity("a", 0)

	r := NewStore(NewMemoryAdapter())
	r.AddItem(item("a", 18000), "")
	r.AddItem(item("b", 6000), "")
	r.RemoveItem("a")

	assert.Equal(t, r.Lines(), s.Lines())
	assert.Equal(t, 1, s.TotalItems())
}

func TestClearEmptiesCart(t *testing.T) {
	s := NewStore(NewMemoryAdapter())
	s.AddItem(item("a", 18000), "")
	s.Clear()

	assert.Empty(t, s.Lines())
	assert.Zero(t, s.TotalItems())
	assert.Zero(t, s.TotalPrice())
}

func TestFileAdapterRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cart.json")

	s := NewStore(NewFileAdapter(path))
	s.AddItem(item("a", 18000), "note")
	s.AddItem(item("b", 6000), "")

	reloaded := NewStore(NewFileAdapter(path))
	assert.Equal(t, s.Lines(), reloaded.Lines())
	assert.Equal(t, s.TotalPrice(), reloaded.TotalPrice())
}

func TestMalformedSnapshotLoadsAsEmptyCart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cart.json")
	require.NoError(t, os.WriteFile(path, []byte("{definitely not json"), 0o644))

	s := NewStore(NewFileAdapter(path))
	assert.Empty(t, s.Lines())
	assert.Zero(t, s.TotalItems())
}

func TestManagerKeysStoresByToken(t *testing.T) {
	m := NewManager(t.TempDir())

	a := m.Get("token-a")
	a.AddItem(item("x", 10000), "")

	b := m.Get("token-b")
	assert.Empty(t, b.Lines())
	assert.Same(t, a, m.Get("token-a"))
}

func TestValidToken(t *testing.T) {
	assert.True(t, ValidToken("abc-123_XYZ"))
	assert.False(t, ValidToken(""))
	assert.False(t, ValidToken("../escape"))
	assert.False(t, ValidToken("has space"))
}
