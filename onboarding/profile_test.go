// ABOUTME: Tests for the business-profile accumulator
// ABOUTME: Insertion order, no dedupe, index deletes, required-field checks
package onboarding

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"calldeck/models"
)

func TestProfileBuilder_ListsKeepInsertionOrder(t *testing.T) {
	b := NewProfileBuilder()

	assert.True(t, b.AddUSP("fast"))
	assert.True(t, b.AddUSP("cheap"))
	assert.True(t, b.AddUSP("fast"), "duplicates are kept")

	assert.Equal(t, []string{"fast", "cheap", "fast"}, b.USPs())
}

func TestProfileBuilder_TrimsAndRejectsEmpty(t *testing.T) {
	b := NewProfileBuilder()

	assert.True(t, b.AddCompetitor("  Acme  "))
	assert.False(t, b.AddCompetitor("   "))
	assert.False(t, b.AddUSP(""))

	assert.Equal(t, []string{"Acme"}, b.Competitors())
	assert.Empty(t, b.USPs())
}

func TestProfileBuilder_RemoveByIndex(t *testing.T) {
	b := NewProfileBuilder()
	b.AddUSP("one")
	b.AddUSP("two")
	b.AddUSP("three")

	b.RemoveUSP(1)
	assert.Equal(t, []string{"one", "three"}, b.USPs())

	b.RemoveUSP(5)
	b.RemoveUSP(-1)
	assert.Equal(t, []string{"one", "three"}, b.USPs(), "out-of-range deletes are ignored")
}

func TestProfileBuilder_ValidateRequiresBothFields(t *testing.T) {
	b := NewProfileBuilder()
	assert.Error(t, b.Validate())

	b.SetDescription("We sell groceries")
	assert.Error(t, b.Validate(), "target audience still missing")

	b.SetTargetAudience("Neighborhood families")
	assert.NoError(t, b.Validate())

	b.SetDescription("   ")
	assert.Error(t, b.Validate(), "whitespace-only input does not satisfy required")
}

func TestProfileBuilder_PayloadCombinesSelectionAndLists(t *testing.T) {
	b := NewProfileBuilder()
	b.SetDescription("Grocery chain")
	b.SetTargetAudience("Families")
	b.AddUSP("fresh produce")
	b.AddCompetitor("BigMart")

	sel := models.BusinessSelection{
		Industry:      "retail",
		Subcategory:   "supermarket",
		BusinessType:  "grocery",
		BusinessModel: "chain",
	}
	p := b.Payload(sel)

	assert.Equal(t, "retail", p.Industry)
	assert.Equal(t, "chain", p.BusinessModel)
	assert.Equal(t, []string{"fresh produce"}, p.UniqueSellingPoints)
	assert.Equal(t, []string{"BigMart"}, p.Competitors)

	// The payload owns its slices
	b.AddUSP("late mutation")
	assert.Equal(t, []string{"fresh produce"}, p.UniqueSellingPoints)
}

func TestProfileBuilder_EmptyListsMarshalAsArrays(t *testing.T) {
	b := NewProfileBuilder()
	b.SetDescription("d")
	b.SetTargetAudience("a")

	p := b.Payload(models.BusinessSelection{})
	require.NotNil(t, p.UniqueSellingPoints)
	require.NotNil(t, p.Competitors)
	assert.Empty(t, p.UniqueSellingPoints)
	assert.Empty(t, p.Competitors)
}
