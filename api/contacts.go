// ABOUTME: Contact endpoints: CRUD, groups, stats, bulk actions, CSV import
// ABOUTME: Mutations validate required fields locally before any network call
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"calldeck/models"
	"calldeck/session"
)

// ContactInput is the create/update payload for a contact. Group is a weak
// reference: null clears membership, it never cascades.
type ContactInput struct {
	FirstName   string     `json:"first_name"`
	LastName    string     `json:"last_name,omitempty"`
	Email       string     `json:"email,omitempty"`
	Phone       string     `json:"phone"`
	CompanyName string     `json:"company_name,omitempty"`
	JobTitle    string     `json:"job_title,omitempty"`
	City        string     `json:"city,omitempty"`
	Status      string     `json:"status,omitempty"`
	Group       *uuid.UUID `json:"group"`
	Notes       string     `json:"notes,omitempty"`
}

// Validate enforces the pre-persistence invariant: first name and phone are
// always non-empty.
func (in *ContactInput) Validate() error {
	if strings.TrimSpace(in.FirstName) == "" || strings.TrimSpace(in.Phone) == "" {
		return &ValidationError{Message: "First name and phone are required"}
	}
	return nil
}

// listEnvelope tolerates both paginated ({"results": [...]}) and bare-array
// collection responses.
type listEnvelope[T any] struct {
	Results []T `json:"results"`
}

func decodeList[T any](payload json.RawMessage) ([]T, error) {
	var bare []T
	if err := json.Unmarshal(payload, &bare); err == nil {
		return bare, nil
	}
	var env listEnvelope[T]
	if err := json.Unmarshal(payload, &env); err != nil {
		return nil, fmt.Errorf("failed to decode collection: %w", err)
	}
	return env.Results, nil
}

// ListContacts fetches the full contact collection.
func (c *Client) ListContacts(ctx context.Context) ([]models.Contact, error) {
	var payload json.RawMessage
	if err := c.do(ctx, http.MethodGet, "/contacts/", nil, &payload); err != nil {
		return nil, err
	}
	return decodeList[models.Contact](payload)
}

// CreateContact creates a contact after local validation.
func (c *Client) CreateContact(ctx context.Context, in *ContactInput) (*models.Contact, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	var contact models.Contact
	if err := c.do(ctx, http.MethodPost, "/contacts/", in, &contact); err != nil {
		return nil, err
	}
	return &contact, nil
}

// UpdateContact replaces a contact's fields.
func (c *Client) UpdateContact(ctx context.Context, id uuid.UUID, in *ContactInput) (*models.Contact, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	var contact models.Contact
	path := fmt.Sprintf("/contacts/%s/", id)
	if err := c.do(ctx, http.MethodPut, path, in, &contact); err != nil {
		return nil, err
	}
	return &contact, nil
}

// ListGroups fetches all contact groups.
func (c *Client) ListGroups(ctx context.Context) ([]models.ContactGroup, error) {
	var payload json.RawMessage
	if err := c.do(ctx, http.MethodGet, "/contacts/groups/", nil, &payload); err != nil {
		return nil, err
	}
	return decodeList[models.ContactGroup](payload)
}

// CreateGroup creates a contact group.
func (c *Client) CreateGroup(ctx context.Context, name, description, color string) (*models.ContactGroup, error) {
	if strings.TrimSpace(name) == "" {
		return nil, &ValidationError{Message: "Group name is required"}
	}
	req := map[string]string{
		"name":        strings.TrimSpace(name),
		"description": strings.TrimSpace(description),
		"color":       color,
	}
	var group models.ContactGroup
	if err := c.do(ctx, http.MethodPost, "/contacts/groups/", req, &group); err != nil {
		return nil, err
	}
	return &group, nil
}

// Stats fetches the aggregate contact counters.
func (c *Client) Stats(ctx context.Context) (*models.ContactStats, error) {
	var stats models.ContactStats
	if err := c.do(ctx, http.MethodGet, "/contacts/stats/", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// BulkRequest carries a bulk action over a selection of contact ids.
type BulkRequest struct {
	ContactIDs []uuid.UUID       `json:"contact_ids"`
	Action     string            `json:"action"`
	Params     map[string]string `json:"params,omitempty"`
}

// BulkAction submits a bulk action as a single request. On success callers
// clear the selection and refetch the collection; there is no optimistic
// local mutation.
func (c *Client) BulkAction(ctx context.Context, req *BulkRequest) error {
	if len(req.ContactIDs) == 0 {
		return &ValidationError{Message: "No contacts selected"}
	}
	return c.do(ctx, http.MethodPost, "/contacts/bulk_action/", req, nil)
}

// StartImport uploads a CSV file and returns the async import id.
func (c *Client) StartImport(ctx context.Context, filename string, content []byte, targetGroup string) (string, error) {
	fields := map[string]string{}
	if targetGroup != "" {
		fields["target_group"] = targetGroup
	}
	var resp struct {
		ImportID string `json:"import_id"`
	}
	if err := c.upload(ctx, "/contacts/import/", "file", filename, content, fields, &resp); err != nil {
		return "", err
	}
	if resp.ImportID == "" {
		return "", fmt.Errorf("import did not return an id")
	}
	return resp.ImportID, nil
}

// ImportStatus fetches the state of a running import.
func (c *Client) ImportStatus(ctx context.Context, importID string) (*models.ImportStatus, error) {
	var status models.ImportStatus
	path := fmt.Sprintf("/contacts/import/%s/status/", importID)
	if err := c.do(ctx, http.MethodGet, path, nil, &status); err != nil {
		return nil, err
	}
	if status.ImportID == "" {
		status.ImportID = importID
	}
	return &status, nil
}

// ImportTemplate downloads the CSV import template.
func (c *Client) ImportTemplate(ctx context.Context) ([]byte, error) {
	sess, err := c.Session()
	if err != nil {
		return nil, err
	}
	if !sess.Authenticated() {
		return nil, session.ErrNotAuthenticated
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+"/contacts/import/template/", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+sess.AccessToken)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, newAPIError(resp.StatusCode, payload)
	}
	return payload, nil
}
