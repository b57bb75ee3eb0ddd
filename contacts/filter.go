// ABOUTME: Pure in-memory filter engine for the contacts list
// ABOUTME: Visible set is the intersection of search, status, group, and source criteria
package contacts

import (
	"strings"

	"github.com/google/uuid"

	"calldeck/models"
)

// Filter holds the four independent list criteria. A zero-valued criterion
// is a wildcard on that axis.
type Filter struct {
	Search  string
	Status  string
	GroupID *uuid.UUID
	Source  string
}

// Empty reports whether no criterion is active.
func (f Filter) Empty() bool {
	return f.Search == "" && f.Status == "" && f.GroupID == nil && f.Source == ""
}

// Apply returns the contacts satisfying every active criterion. Pure and
// deterministic: same inputs, same output, input order preserved.
func (f Filter) Apply(all []models.Contact) []models.Contact {
	if f.Empty() {
		return all
	}
	matched := make([]models.Contact, 0, len(all))
	for _, contact := range all {
		if f.Matches(&contact) {
			matched = append(matched, contact)
		}
	}
	return matched
}

// Matches reports whether a single contact passes every active criterion.
func (f Filter) Matches(c *models.Contact) bool {
	if !f.matchesSearch(c) {
		return false
	}
	if f.Status != "" && c.Status != f.Status {
		return false
	}
	if f.GroupID != nil && (c.Group == nil || c.Group.ID != *f.GroupID) {
		return false
	}
	if f.Source != "" && c.Source != f.Source {
		return false
	}
	return true
}

// matchesSearch is a case-insensitive substring match across first name,
// last name, email, phone, and company. A contact matches if ANY field
// contains the term.
func (f Filter) matchesSearch(c *models.Contact) bool {
	if f.Search == "" {
		return true
	}
	term := strings.ToLower(f.Search)
	for _, field := range []string{c.FirstName, c.LastName, c.Email, c.Phone, c.CompanyName} {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}
