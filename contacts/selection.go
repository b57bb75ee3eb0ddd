// ABOUTME: Row selection set for the contacts list
// ABOUTME: Select-all binds to the currently visible rows; clear drops everything
package contacts

import (
	"sort"

	"github.com/google/uuid"

	"calldeck/models"
)

// Selection is a set of contact ids. It is independent of the filtered
// view: filtering does not drop already-selected rows.
type Selection struct {
	ids map[uuid.UUID]bool
}

func NewSelection() *Selection {
	return &Selection{ids: make(map[uuid.UUID]bool)}
}

// Toggle flips membership of one contact.
func (s *Selection) Toggle(id uuid.UUID) {
	if s.ids[id] {
		delete(s.ids, id)
		return
	}
	s.ids[id] = true
}

// Has reports whether the contact is selected.
func (s *Selection) Has(id uuid.UUID) bool {
	return s.ids[id]
}

// Count returns the number of selected contacts.
func (s *Selection) Count() int {
	return len(s.ids)
}

// SelectAll replaces the selection with exactly the given visible rows,
// regardless of prior contents. Passing an empty slice yields an empty
// selection.
func (s *Selection) SelectAll(visible []models.Contact) {
	s.ids = make(map[uuid.UUID]bool, len(visible))
	for _, contact := range visible {
		s.ids[contact.ID] = true
	}
}

// Clear empties the selection.
func (s *Selection) Clear() {
	s.ids = make(map[uuid.UUID]bool)
}

// AllSelected reports whether every visible row is selected. False when
// nothing is visible, matching the header-checkbox convention.
func (s *Selection) AllSelected(visible []models.Contact) bool {
	if len(visible) == 0 {
		return false
	}
	for _, contact := range visible {
		if !s.ids[contact.ID] {
			return false
		}
	}
	return true
}

// IDs returns the selected ids in a stable order.
func (s *Selection) IDs() []uuid.UUID {
	out := make([]uuid.UUID, 0, len(s.ids))
	for id := range s.ids {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].String() < out[j].String() })
	return out
}

// Bulk actions accepted by the backend.
const (
	BulkDelete       = "delete"
	BulkSetStatus    = "set_status"
	BulkAssignGroup  = "assign_group"
	BulkScheduleCall = "schedule_call"
)
