// ABOUTME: Tests for session persistence and token expiry hints
// ABOUTME: Covers XDG paths, file permissions, device ID minting, exp claims
package session

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/adrg/xdg"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPath(t *testing.T) {
	expectedBase := filepath.Join(xdg.DataHome, "calldeck")
	assert.Equal(t, expectedBase, Dir())
	assert.Equal(t, "session.json", filepath.Base(Path()))
	assert.True(t, strings.HasPrefix(Path(), expectedBase))
}

func TestFileStore_LoadMissingYieldsEmptySession(t *testing.T) {
	store := NewFileStoreAt(filepath.Join(t.TempDir(), "session.json"))

	sess, err := store.Load()
	require.NoError(t, err)
	require.NotNil(t, sess)
	assert.False(t, sess.Authenticated())
}

func TestFileStore_SaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	store := NewFileStoreAt(path)

	require.NoError(t, store.Save(&Session{
		AccessToken:  "access",
		RefreshToken: "refresh",
	}))

	sess, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "access", sess.AccessToken)
	assert.Equal(t, "refresh", sess.RefreshToken)
	assert.True(t, sess.Authenticated())

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm(), "session file must not be world-readable")
}

func TestFileStore_MintsDeviceIDOnFirstSave(t *testing.T) {
	store := NewFileStoreAt(filepath.Join(t.TempDir(), "session.json"))

	sess := &Session{AccessToken: "x"}
	require.NoError(t, store.Save(sess))
	assert.True(t, strings.HasPrefix(sess.DeviceID, "calldeck-"))

	minted := sess.DeviceID
	require.NoError(t, store.Save(sess))
	assert.Equal(t, minted, sess.DeviceID, "device id is stable across saves")
}

func TestFileStore_Clear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	store := NewFileStoreAt(path)
	require.NoError(t, store.Save(&Session{AccessToken: "x"}))

	require.NoError(t, store.Clear())
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	require.NoError(t, store.Clear(), "clearing a missing file is a no-op")
}

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": exp.Unix(),
	})
	s, err := token.SignedString([]byte("test-key"))
	require.NoError(t, err)
	return s
}

func TestSession_Expired(t *testing.T) {
	now := time.Now()

	live := &Session{AccessToken: signedToken(t, now.Add(time.Hour))}
	assert.False(t, live.Expired(now))

	stale := &Session{AccessToken: signedToken(t, now.Add(-time.Hour))}
	assert.True(t, stale.Expired(now))
}

func TestSession_ExpiredEdgeCases(t *testing.T) {
	now := time.Now()

	var nilSession *Session
	assert.True(t, nilSession.Expired(now), "no session is always expired")
	assert.True(t, (&Session{}).Expired(now), "no token is always expired")

	opaque := &Session{AccessToken: "not-a-jwt"}
	assert.False(t, opaque.Expired(now), "unparseable tokens are treated as live")
}

func TestGenerateDeviceID(t *testing.T) {
	a := GenerateDeviceID()
	b := GenerateDeviceID()

	assert.True(t, strings.HasPrefix(a, "calldeck-"))
	assert.NotEqual(t, a, b)
}

func TestMemoryStore_CopiesOnLoadAndSave(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.Save(&Session{AccessToken: "x"}))

	sess, err := store.Load()
	require.NoError(t, err)
	sess.AccessToken = "mutated"

	again, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "x", again.AccessToken, "callers get copies, not the stored record")
}
