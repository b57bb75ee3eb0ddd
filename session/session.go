// ABOUTME: Session storage for access/refresh tokens and the signed-in user
// ABOUTME: Persists a single JSON record at an XDG path behind an injectable Store
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/golang-jwt/jwt/v5"
	"github.com/oklog/ulid/v2"

	"calldeck/models"
)

// ErrNotAuthenticated is returned when no session exists or the stored
// session has no access token. Callers should direct the user to log in.
var ErrNotAuthenticated = errors.New("not authenticated: run `calldeck auth login`")

// Session holds the bearer tokens and user record returned by the auth API.
type Session struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token,omitempty"`
	User         *models.User `json:"user,omitempty"`
	DeviceID     string       `json:"device_id,omitempty"`
}

// Authenticated reports whether the session carries an access token.
func (s *Session) Authenticated() bool {
	return s != nil && s.AccessToken != ""
}

// Expired reports whether the access token's exp claim has passed. The
// claim is read without signature verification: the backend is the
// authority, this is only a hint to refresh before a doomed request.
// Tokens without a parseable exp claim are treated as live.
func (s *Session) Expired(now time.Time) bool {
	if !s.Authenticated() {
		return true
	}
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(s.AccessToken, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return now.After(exp.Time)
}

// Store abstracts session persistence so tests can inject a memory backend.
type Store interface {
	Load() (*Session, error)
	Save(*Session) error
	Clear() error
}

// Dir returns the XDG-compliant directory for calldeck data.
func Dir() string {
	return filepath.Join(xdg.DataHome, "calldeck")
}

// Path returns the XDG-compliant path of the session file.
func Path() string {
	return filepath.Join(Dir(), "session.json")
}

// FileStore persists the session as a JSON file with 0600 permissions.
type FileStore struct {
	path string
}

// NewFileStore creates a store at the default XDG path.
func NewFileStore() *FileStore {
	return &FileStore{path: Path()}
}

// NewFileStoreAt creates a store at an explicit path.
func NewFileStoreAt(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads the stored session. A missing file yields an empty session,
// not an error; callers decide whether that is fatal.
func (fs *FileStore) Load() (*Session, error) {
	f, err := os.Open(fs.path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Session{}, nil
		}
		return nil, fmt.Errorf("failed to open session file: %w", err)
	}
	defer func() { _ = f.Close() }()

	sess := &Session{}
	if err := json.NewDecoder(f).Decode(sess); err != nil {
		return nil, fmt.Errorf("failed to decode session: %w", err)
	}
	return sess, nil
}

// Save writes the session, minting a device id on first save.
func (fs *FileStore) Save(sess *Session) error {
	if sess.DeviceID == "" {
		sess.DeviceID = GenerateDeviceID()
	}

	dir := filepath.Dir(fs.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create session directory: %w", err)
	}

	f, err := os.OpenFile(fs.path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("failed to create session file: %w", err)
	}
	defer func() { _ = f.Close() }()

	if err := json.NewEncoder(f).Encode(sess); err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	return nil
}

// Clear removes the session file. Clearing a missing file is a no-op.
func (fs *FileStore) Clear() error {
	if err := os.Remove(fs.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove session file: %w", err)
	}
	return nil
}

// MemoryStore keeps the session in memory. Used by tests and the TUI's
// pre-login state.
type MemoryStore struct {
	sess *Session
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sess: &Session{}}
}

func (ms *MemoryStore) Load() (*Session, error) {
	copied := *ms.sess
	return &copied, nil
}

func (ms *MemoryStore) Save(sess *Session) error {
	if sess.DeviceID == "" {
		sess.DeviceID = GenerateDeviceID()
	}
	copied := *sess
	ms.sess = &copied
	return nil
}

func (ms *MemoryStore) Clear() error {
	ms.sess = &Session{}
	return nil
}

// GenerateDeviceID creates a unique device identifier using ULID.
func GenerateDeviceID() string {
	entropy := ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0)
	id := ulid.MustNew(ulid.Timestamp(time.Now()), entropy)
	return fmt.Sprintf("calldeck-%s", id.String())
}
