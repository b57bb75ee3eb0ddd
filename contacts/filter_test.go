// ABOUTME: Tests for client-side contact filtering
// ABOUTME: Search matches any field; equality filters intersect
package contacts

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"calldeck/models"
)

func fixtureContacts() ([]models.Contact, models.ContactGroup) {
	vip := models.ContactGroup{ID: uuid.New(), Name: "VIP"}

	return []models.Contact{
		{
			ID:          uuid.New(),
			FirstName:   "Amara",
			LastName:    "Okafor",
			Email:       "amara@acme.com",
			Phone:       "+15550100",
			CompanyName: "Acme Corp",
			Status:      models.ContactStatusActive,
			Source:      models.SourceManual,
			Group:       &vip,
		},
		{
			ID:          uuid.New(),
			FirstName:   "Ben",
			LastName:    "Keller",
			Email:       "ben@northwind.io",
			Phone:       "+15550101",
			CompanyName: "Northwind",
			Status:      models.ContactStatusInactive,
			Source:      models.SourceImport,
		},
		{
			ID:          uuid.New(),
			FirstName:   "Carla",
			LastName:    "Mendes",
			Email:       "carla@acme.com",
			Phone:       "+15550102",
			CompanyName: "Acme Corp",
			Status:      models.ContactStatusActive,
			Source:      models.SourceImport,
		},
	}, vip
}

func TestFilter_EmptyIsWildcard(t *testing.T) {
	all, _ := fixtureContacts()

	got := Filter{}.Apply(all)
	assert.Len(t, got, len(all))
	assert.True(t, Filter{}.Empty())
}

func TestFilter_SearchMatchesAnyField(t *testing.T) {
	all, _ := fixtureContacts()

	tests := []struct {
		name   string
		search string
		want   []string
	}{
		{"first name", "amara", []string{"Amara"}},
		{"last name", "keller", []string{"Ben"}},
		{"email domain", "ACME.COM", []string{"Amara", "Carla"}},
		{"phone", "0101", []string{"Ben"}},
		{"company", "northwind", []string{"Ben"}},
		{"no match", "zebra", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter{Search: tt.search}.Apply(all)
			var names []string
			for _, c := range got {
				names = append(names, c.FirstName)
			}
			assert.Equal(t, tt.want, names)
		})
	}
}

func TestFilter_EqualityFiltersIntersect(t *testing.T) {
	all, _ := fixtureContacts()

	got := Filter{Status: models.ContactStatusActive, Source: models.SourceImport}.Apply(all)
	require.Len(t, got, 1)
	assert.Equal(t, "Carla", got[0].FirstName)
}

func TestFilter_GroupMatchesByID(t *testing.T) {
	all, vip := fixtureContacts()

	got := Filter{GroupID: &vip.ID}.Apply(all)
	require.Len(t, got, 1)
	assert.Equal(t, "Amara", got[0].FirstName)

	other := uuid.New()
	assert.Empty(t, Filter{GroupID: &other}.Apply(all))
}

func TestFilter_SearchAndEqualityCombine(t *testing.T) {
	all, _ := fixtureContacts()

	got := Filter{Search: "acme", Status: models.ContactStatusActive}.Apply(all)
	require.Len(t, got, 2)

	got = Filter{Search: "acme", Status: models.ContactStatusInactive}.Apply(all)
	assert.Empty(t, got)
}

func TestFilter_PreservesOrder(t *testing.T) {
	all, _ := fixtureContacts()

	got := Filter{Source: models.SourceImport}.Apply(all)
	require.Len(t, got, 2)
	assert.Equal(t, "Ben", got[0].FirstName)
	assert.Equal(t, "Carla", got[1].FirstName)
}
