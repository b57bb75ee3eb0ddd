// ABOUTME: Tests for the durable onboarding draft store
// ABOUTME: Round-trips a selection across store reopens
package draft

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"calldeck/models"
)

func openTestStore(t *testing.T, path string) *Store {
	t.Helper()
	store, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestStore_LoadWithoutSave(t *testing.T) {
	store := openTestStore(t, filepath.Join(t.TempDir(), "drafts"))

	_, found, err := store.LoadSelection()
	require.NoError(t, err)
	assert.False(t, found)
}

func TestStore_SaveAndLoad(t *testing.T) {
	store := openTestStore(t, filepath.Join(t.TempDir(), "drafts"))

	saved := models.BusinessSelection{
		Industry:    "retail",
		Subcategory: "supermarket",
	}
	require.NoError(t, store.SaveSelection(saved))

	got, found, err := store.LoadSelection()
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, saved, got)
}

func TestStore_DraftSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "drafts")

	store, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, store.SaveSelection(models.BusinessSelection{Industry: "healthcare"}))
	require.NoError(t, store.Close())

	reopened := openTestStore(t, path)
	got, found, err := reopened.LoadSelection()
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "healthcare", got.Industry)
}

func TestStore_ClearSelection(t *testing.T) {
	store := openTestStore(t, filepath.Join(t.TempDir(), "drafts"))

	require.NoError(t, store.ClearSelection(), "clearing a missing draft is a no-op")

	require.NoError(t, store.SaveSelection(models.BusinessSelection{Industry: "finance"}))
	require.NoError(t, store.ClearSelection())

	_, found, err := store.LoadSelection()
	require.NoError(t, err)
	assert.False(t, found)
}
