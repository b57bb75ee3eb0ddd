// ABOUTME: Tests for call scheduling endpoints
// ABOUTME: Single vs bulk payload shape and pre-network validation
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"calldeck/models"
)

func TestScheduleCall_RequiresTime(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	err := client.ScheduleCall(context.Background(), uuid.New(), time.Time{}, "", "", "")
	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, "Schedule date and time is required", valErr.Message)
}

func TestScheduleCall_RejectsUnknownPriority(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	err := client.ScheduleCall(context.Background(), uuid.New(), time.Now(), "asap", "", "")
	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)
}

func TestScheduleCall_SinglePayload(t *testing.T) {
	var gotPath string
	var body map[string]json.RawMessage
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
	}))

	id := uuid.New()
	err := client.ScheduleCall(context.Background(), id, time.Now().Add(time.Hour), "", "follow up", "prefers mornings")
	require.NoError(t, err)

	assert.Equal(t, "/calls/scheduled/", gotPath)
	assert.Contains(t, body, "contact")
	assert.NotContains(t, body, "contact_ids", "single mode never carries an id list")

	var priority string
	require.NoError(t, json.Unmarshal(body["priority"], &priority))
	assert.Equal(t, models.PriorityNormal, priority, "priority defaults to normal")
}

func TestBulkScheduleCalls_BulkPayload(t *testing.T) {
	var gotPath string
	var body map[string]json.RawMessage
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
	}))

	ids := []uuid.UUID{uuid.New(), uuid.New()}
	err := client.BulkScheduleCalls(context.Background(), ids, time.Now().Add(time.Hour), models.PriorityHigh)
	require.NoError(t, err)

	assert.Equal(t, "/calls/bulk_initiate/", gotPath)
	assert.Contains(t, body, "contact_ids")
	assert.NotContains(t, body, "contact", "bulk mode never carries a single contact")
	assert.NotContains(t, body, "reason", "reason only travels in single mode")
}

func TestBulkScheduleCalls_RejectsEmptySelection(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	err := client.BulkScheduleCalls(context.Background(), nil, time.Now(), "")
	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, "No contacts selected", valErr.Message)
}
