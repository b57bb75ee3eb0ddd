// ABOUTME: Call scheduling endpoints
// ABOUTME: Single-contact scheduling and bulk initiation over a selection
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"

	"calldeck/models"
)

// ScheduleCall books a call for one contact. Reason and notes only exist in
// single mode.
func (c *Client) ScheduleCall(ctx context.Context, contactID uuid.UUID, at time.Time, priority, reason, notes string) error {
	if at.IsZero() {
		return &ValidationError{Message: "Schedule date and time is required"}
	}
	if priority == "" {
		priority = models.PriorityNormal
	}
	if !models.ValidPriority(priority) {
		return &ValidationError{Message: "Priority must be one of low, normal, high, urgent"}
	}

	call := &models.ScheduledCall{
		ContactID:   &contactID,
		ScheduledAt: at,
		Priority:    priority,
		Reason:      reason,
		Notes:       notes,
	}
	return c.do(ctx, http.MethodPost, "/calls/scheduled/", call, nil)
}

// BulkScheduleCalls books calls for a selection of contacts in one request.
func (c *Client) BulkScheduleCalls(ctx context.Context, contactIDs []uuid.UUID, at time.Time, priority string) error {
	if len(contactIDs) == 0 {
		return &ValidationError{Message: "No contacts selected"}
	}
	if at.IsZero() {
		return &ValidationError{Message: "Schedule date and time is required"}
	}
	if priority == "" {
		priority = models.PriorityNormal
	}
	if !models.ValidPriority(priority) {
		return &ValidationError{Message: "Priority must be one of low, normal, high, urgent"}
	}

	call := &models.ScheduledCall{
		ContactIDs:  contactIDs,
		ScheduledAt: at,
		Priority:    priority,
	}
	return c.do(ctx, http.MethodPost, "/calls/bulk_initiate/", call, nil)
}
