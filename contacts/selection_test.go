// ABOUTME: Tests for the bulk-action selection set
// ABOUTME: Select-all binds to the visible slice, not the full collection
package contacts

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"calldeck/models"
)

func TestSelection_Toggle(t *testing.T) {
	sel := NewSelection()
	id := uuid.New()

	sel.Toggle(id)
	assert.True(t, sel.Has(id))
	assert.Equal(t, 1, sel.Count())

	sel.Toggle(id)
	assert.False(t, sel.Has(id))
	assert.Equal(t, 0, sel.Count())
}

func TestSelection_SelectAllReplacesWithVisible(t *testing.T) {
	all, _ := fixtureContacts()
	sel := NewSelection()

	// A selection made before filtering
	stale := uuid.New()
	sel.Toggle(stale)

	visible := Filter{Source: models.SourceImport}.Apply(all)
	sel.SelectAll(visible)

	assert.Equal(t, len(visible), sel.Count())
	assert.False(t, sel.Has(stale), "select-all replaces prior picks")
	for _, c := range visible {
		assert.True(t, sel.Has(c.ID))
	}
}

func TestSelection_AllSelected(t *testing.T) {
	all, _ := fixtureContacts()
	sel := NewSelection()

	assert.False(t, sel.AllSelected(nil), "empty visible set is never all-selected")
	assert.False(t, sel.AllSelected(all))

	sel.SelectAll(all)
	assert.True(t, sel.AllSelected(all))

	sel.Toggle(all[0].ID)
	assert.False(t, sel.AllSelected(all))
}

func TestSelection_Clear(t *testing.T) {
	all, _ := fixtureContacts()
	sel := NewSelection()
	sel.SelectAll(all)

	sel.Clear()
	assert.Equal(t, 0, sel.Count())
	assert.Empty(t, sel.IDs())
}

func TestSelection_IDsAreStable(t *testing.T) {
	all, _ := fixtureContacts()
	sel := NewSelection()
	sel.SelectAll(all)

	first := sel.IDs()
	second := sel.IDs()
	assert.Equal(t, first, second, "iteration order must not flap between calls")
	assert.Len(t, first, len(all))
}
