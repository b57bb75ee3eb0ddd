// ABOUTME: Tests for model helpers
// ABOUTME: Name joining, priority vocabulary, import progress math
package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestContactFullName(t *testing.T) {
	c := &Contact{FirstName: "Amara", LastName: "Okafor"}
	assert.Equal(t, "Amara Okafor", c.FullName())

	solo := &Contact{FirstName: "Cher"}
	assert.Equal(t, "Cher", solo.FullName())
}

func TestValidPriority(t *testing.T) {
	for _, p := range []string{PriorityLow, PriorityNormal, PriorityHigh, PriorityUrgent} {
		assert.True(t, ValidPriority(p), p)
	}
	assert.False(t, ValidPriority("asap"))
	assert.False(t, ValidPriority(""))
}

func TestScheduledCallBulk(t *testing.T) {
	id := uuid.New()

	single := &ScheduledCall{ContactID: &id}
	assert.False(t, single.Bulk())

	bulk := &ScheduledCall{ContactIDs: []uuid.UUID{id}}
	assert.True(t, bulk.Bulk())
}

func TestBusinessSelectionComplete(t *testing.T) {
	partial := BusinessSelection{Industry: "retail", Subcategory: "supermarket"}
	assert.False(t, partial.Complete())

	full := BusinessSelection{
		Industry:      "retail",
		Subcategory:   "supermarket",
		BusinessType:  "grocery",
		BusinessModel: "chain",
	}
	assert.True(t, full.Complete())
}

func TestImportStatusProgress(t *testing.T) {
	processing := &ImportStatus{Status: ImportStatusProcessing, ProcessedRows: 50, TotalRows: 200}
	assert.False(t, processing.Terminal())
	assert.Equal(t, 25.0, processing.Percent())

	done := &ImportStatus{Status: ImportStatusCompleted, ProcessedRows: 200, TotalRows: 200}
	assert.True(t, done.Terminal())
	assert.Equal(t, 100.0, done.Percent())

	failed := &ImportStatus{Status: ImportStatusFailed}
	assert.True(t, failed.Terminal())
	assert.Equal(t, 0.0, failed.Percent())
}
