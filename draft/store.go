// ABOUTME: Durable client-side draft storage for the onboarding wizard
// ABOUTME: Badger-backed; the draft is deleted once the profile submit succeeds
package draft

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/dgraph-io/badger/v3"

	"calldeck/models"
)

var selectionKey = []byte("business_selection")

// Store keeps in-progress onboarding state on disk so the wizard survives
// process restarts. Only the selection chain is durable; the profile form
// is rebuilt each run.
type Store struct {
	db *badger.DB
}

// DefaultPath returns the XDG location of the draft database.
func DefaultPath() string {
	return filepath.Join(xdg.DataHome, "calldeck", "drafts")
}

// Open opens (creating if needed) the draft database at path.
func Open(path string) (*Store, error) {
	opts := badger.DefaultOptions(path).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open draft store: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveSelection persists the wizard's selection chain.
func (s *Store) SaveSelection(sel models.BusinessSelection) error {
	buf, err := json.Marshal(sel)
	if err != nil {
		return fmt.Errorf("failed to encode selection: %w", err)
	}
	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(selectionKey, buf)
	})
	if err != nil {
		return fmt.Errorf("failed to save selection draft: %w", err)
	}
	return nil
}

// LoadSelection returns the saved selection and whether one exists.
func (s *Store) LoadSelection() (models.BusinessSelection, bool, error) {
	var sel models.BusinessSelection
	found := false
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(selectionKey)
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			if err := json.Unmarshal(val, &sel); err != nil {
				return err
			}
			found = true
			return nil
		})
	})
	if err != nil {
		return models.BusinessSelection{}, false, fmt.Errorf("failed to load selection draft: %w", err)
	}
	return sel, found, nil
}

// ClearSelection removes the saved draft. Clearing a missing draft is a
// no-op.
func (s *Store) ClearSelection() error {
	err := s.db.Update(func(txn *badger.Txn) error {
		err := txn.Delete(selectionKey)
		if err == badger.ErrKeyNotFound {
			return nil
		}
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to clear selection draft: %w", err)
	}
	return nil
}
