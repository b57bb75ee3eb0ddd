// ABOUTME: Tests for contact endpoints: collection decoding, validation, import
// ABOUTME: Mutations must fail locally before any request is issued
package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"calldeck/session"
)

func TestListContacts_ToleratesBothCollectionShapes(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"bare array", `[{"first_name": "Amara"}, {"first_name": "Ben"}]`},
		{"paginated envelope", `{"count": 2, "results": [{"first_name": "Amara"}, {"first_name": "Ben"}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(tt.body))
			}))

			list, err := client.ListContacts(context.Background())
			require.NoError(t, err)
			require.Len(t, list, 2)
			assert.Equal(t, "Amara", list[0].FirstName)
		})
	}
}

func TestCreateContact_ValidatesBeforeNetwork(t *testing.T) {
	var called atomic.Bool
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called.Store(true)
	}))

	tests := []struct {
		name  string
		input ContactInput
	}{
		{"missing first name", ContactInput{Phone: "+15550100"}},
		{"missing phone", ContactInput{FirstName: "Amara"}},
		{"whitespace only", ContactInput{FirstName: "  ", Phone: "  "}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := client.CreateContact(context.Background(), &tt.input)
			var valErr *ValidationError
			require.ErrorAs(t, err, &valErr)
			assert.Equal(t, "First name and phone are required", valErr.Message)
		})
	}
	assert.False(t, called.Load())
}

func TestUpdateContact_UsesPutWithID(t *testing.T) {
	id := uuid.New()
	var gotMethod, gotPath string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`{"first_name": "Amara"}`))
	}))

	_, err := client.UpdateContact(context.Background(), id, &ContactInput{FirstName: "Amara", Phone: "+15550100"})
	require.NoError(t, err)
	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, "/contacts/"+id.String()+"/", gotPath)
}

func TestBulkAction_RejectsEmptySelection(t *testing.T) {
	var called atomic.Bool
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called.Store(true)
	}))

	err := client.BulkAction(context.Background(), &BulkRequest{Action: "delete"})
	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, "No contacts selected", valErr.Message)
	assert.False(t, called.Load())
}

func TestBulkAction_SendsSingleRequest(t *testing.T) {
	var calls atomic.Int32
	var gotBody map[string]json.RawMessage
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
	}))

	ids := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}
	err := client.BulkAction(context.Background(), &BulkRequest{
		ContactIDs: ids,
		Action:     "set_status",
		Params:     map[string]string{"status": "active"},
	})
	require.NoError(t, err)
	assert.Equal(t, int32(1), calls.Load(), "the whole selection travels in one request")

	var sentIDs []uuid.UUID
	require.NoError(t, json.Unmarshal(gotBody["contact_ids"], &sentIDs))
	assert.Equal(t, ids, sentIDs)
}

func TestStartImport_UploadsMultipart(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		file, header, err := r.FormFile("file")
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		defer func() { _ = file.Close() }()
		content, err := io.ReadAll(file)
		assert.NoError(t, err)

		assert.Equal(t, "contacts.csv", header.Filename)
		assert.Equal(t, "first_name,phone\nAmara,+15550100\n", string(content))
		assert.Equal(t, "vip", r.FormValue("target_group"))

		_ = json.NewEncoder(w).Encode(map[string]string{"import_id": "imp-42"})
	}))
	t.Cleanup(server.Close)

	store := session.NewMemoryStore()
	require.NoError(t, store.Save(&session.Session{AccessToken: "access-token"}))
	client := NewWithHTTPClient(server.URL, server.Client(), store)

	id, err := client.StartImport(context.Background(), "contacts.csv", []byte("first_name,phone\nAmara,+15550100\n"), "vip")
	require.NoError(t, err)
	assert.Equal(t, "imp-42", id)
}

func TestImportStatus_FillsMissingID(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/contacts/import/imp-42/status/", r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"status":         "processing",
			"processed_rows": 50,
			"total_rows":     200,
		})
	}))

	status, err := client.ImportStatus(context.Background(), "imp-42")
	require.NoError(t, err)
	assert.Equal(t, "imp-42", status.ImportID)
	assert.Equal(t, 25.0, status.Percent())
}
