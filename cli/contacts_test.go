// ABOUTME: Tests for the contacts CLI commands
// ABOUTME: Drives list filtering through the documented flag names
package cli

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"calldeck/api"
	"calldeck/models"
	"calldeck/session"
)

func newListServer(t *testing.T, contacts []models.Contact) *api.Client {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(contacts)
	}))
	t.Cleanup(server.Close)

	store := session.NewMemoryStore()
	require.NoError(t, store.Save(&session.Session{AccessToken: "access-token"}))
	return api.NewWithHTTPClient(server.URL, server.Client(), store)
}

func captureStdout(t *testing.T, fn func() error) (string, error) {
	t.Helper()
	orig := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	runErr := fn()

	os.Stdout = orig
	require.NoError(t, w.Close())
	out, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(out), runErr
}

func TestListContactsCommand_SearchFlag(t *testing.T) {
	client := newListServer(t, []models.Contact{
		{FirstName: "Amara", LastName: "Okafor", Phone: "+15550100", CompanyName: "Acme Corp"},
		{FirstName: "Ben", LastName: "Keller", Phone: "+15550101", CompanyName: "Northwind"},
	})

	out, err := captureStdout(t, func() error {
		return ListContactsCommand(client, []string{"--search", "northwind"})
	})
	require.NoError(t, err)
	assert.Contains(t, out, "Ben Keller")
	assert.NotContains(t, out, "Amara")
}

func TestListContactsCommand_StatusFlag(t *testing.T) {
	client := newListServer(t, []models.Contact{
		{FirstName: "Amara", Phone: "+15550100", Status: models.ContactStatusActive},
		{FirstName: "Ben", Phone: "+15550101", Status: models.ContactStatusBlocked},
	})

	out, err := captureStdout(t, func() error {
		return ListContactsCommand(client, []string{"--status", "blocked"})
	})
	require.NoError(t, err)
	assert.Contains(t, out, "Ben")
	assert.NotContains(t, out, "Amara")
}
