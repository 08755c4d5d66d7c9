package gamesync

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/quinfall/companion/internal/domain"
	"github.com/quinfall/companion/internal/logger"
	"github.com/quinfall/companion/internal/utils"
)

// Credentials is the flat credential record persisted under the saves
// directory. Either a bearer token pair or an API key authorizes
// requests; both empty means the companion runs offline.
type Credentials struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	APIKey       string `json:"api_key"`
	LastUpdated  string `json:"last_updated"`
}

// Configured reports whether any usable credential is present.
func (c Credentials) Configured() bool {
	return c.AccessToken != "" || c.APIKey != ""
}

// CredentialsStore persists credentials to a single JSON file and
// serves the current value to the HTTP client. Safe for concurrent
// use.
type CredentialsStore struct {
	path string

	mu      sync.RWMutex
	current Credentials
}

// NewCredentialsStore creates a store backed by the credentials file
// in savesDir. Call Load to pick up a previously saved record.
func NewCredentialsStore(savesDir string) *CredentialsStore {
	return &CredentialsStore{path: filepath.Join(savesDir, domain.CredentialsSaveFile)}
}

// Path returns the backing file path
func (s *CredentialsStore) Path() string { return s.path }

// Load reads the saved credentials. A missing file is not an error;
// the store just stays unconfigured.
func (s *CredentialsStore) Load(ctx context.Context) error {
	var creds Credentials
	if err := utils.LoadJSON(s.path, &creds); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}

	s.mu.Lock()
	s.current = creds
	s.mu.Unlock()

	logger.FromContext(ctx).Info(LogMsgCredentialsLoaded, "path", s.path)
	return nil
}

// Current returns the credentials as last loaded or saved.
func (s *CredentialsStore) Current() Credentials {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// SetTokens stores a bearer token pair. An empty refresh token keeps
// the previous one, matching token refresh responses that omit it.
func (s *CredentialsStore) SetTokens(ctx context.Context, access, refresh string) error {
	s.mu.Lock()
	s.current.AccessToken = access
	if refresh != "" {
		s.current.RefreshToken = refresh
	}
	creds := s.stamp()
	s.mu.Unlock()

	return s.save(ctx, creds)
}

// SetAPIKey stores an API key credential.
func (s *CredentialsStore) SetAPIKey(ctx context.Context, key string) error {
	s.mu.Lock()
	s.current.APIKey = key
	creds := s.stamp()
	s.mu.Unlock()

	return s.save(ctx, creds)
}

// Clear wipes the stored credentials, both in memory and on disk.
func (s *CredentialsStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	s.current = Credentials{}
	creds := s.stamp()
	s.mu.Unlock()

	if err := s.save(ctx, creds); err != nil {
		return err
	}
	logger.FromContext(ctx).Info(LogMsgCredentialsCleared, "path", s.path)
	return nil
}

// stamp refreshes LastUpdated; callers hold the lock.
func (s *CredentialsStore) stamp() Credentials {
	s.current.LastUpdated = time.Now().UTC().Format(time.RFC3339)
	return s.current
}

// save writes the record with owner-only permissions. Tokens grant
// account access, so the shared world-readable JSON helper is not
// used here.
func (s *CredentialsStore) save(ctx context.Context, creds Credentials) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create saves directory: %w", err)
	}
	data, err := json.MarshalIndent(creds, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal credentials: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write credentials file: %w", err)
	}
	logger.FromContext(ctx).Info(LogMsgCredentialsSaved, "path", s.path)
	return nil
}
