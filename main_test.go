// ABOUTME: Tests for the command router wiring
// ABOUTME: Client construction and usage-text flag agreement
package main

import (
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"calldeck/api"
	"calldeck/config"
	"calldeck/session"
)

func TestClientWiring(t *testing.T) {
	store := session.NewFileStore()
	require.NotNil(t, store)

	client := api.New(config.Load(), store)
	require.NotNil(t, client)

	sess, err := client.Session()
	require.NoError(t, err)
	require.NotNil(t, sess)
}

func TestPrintUsage_DocumentsRegisteredFlags(t *testing.T) {
	orig := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	printUsage()

	os.Stdout = orig
	require.NoError(t, w.Close())
	out, err := io.ReadAll(r)
	require.NoError(t, err)
	usage := string(out)

	// The documented contacts-list flag must match the registered one.
	assert.Contains(t, usage, "--search <text>")
	assert.NotContains(t, usage, "--query")

	for _, command := range []string{
		"auth login", "contacts list", "contacts import", "contacts import-template",
		"calls schedule", "onboarding select", "viz groups", "calldeck tui",
	} {
		assert.Contains(t, usage, command)
	}
}
