// Package tokenstore persists the single opaque bearer credential that
// identifies the authenticated session, surviving process restarts.
//
// The store is deliberately fail-silent: storage errors are logged and
// treated as "no token". A corrupted local database must degrade to the
// logged-out state, never block the caller.
package tokenstore

import (
	"context"

	"github.com/mveldre/rentahouse/internal/client/repositories/settings"
	"github.com/mveldre/rentahouse/internal/logging"
)

// tokenKey is the fixed settings key under which the credential lives.
const tokenKey = "rentahouse_token"

// Store keeps exactly zero or one credential.
type Store struct {
	repo settings.Repository
	log  logging.Logger
}

func New(repo settings.Repository, log logging.Logger) *Store {
	return &Store{repo: repo, log: log}
}

// Get returns the stored credential. The second return value reports whether
// a credential is present; storage failures read as absent.
func (s *Store) Get(ctx context.Context) (string, bool) {
	token, err := s.repo.Get(ctx, tokenKey)
	if err != nil {
		s.log.Warn(ctx, "failed to read token, treating as absent", "error", err)
		return "", false
	}
	return token, token != ""
}

// Set stores the credential, overwriting any previous value. A failed write
// is logged but not surfaced to the caller.
func (s *Store) Set(ctx context.Context, token string) {
	if err := s.repo.Set(ctx, tokenKey, token); err != nil {
		s.log.Error(ctx, "failed to save token", "error", err)
	}
}

// Remove deletes the stored credential. Removing an absent credential is a
// no-op; failures are logged only.
func (s *Store) Remove(ctx context.Context) {
	if err := s.repo.Delete(ctx, tokenKey); err != nil {
		s.log.Error(ctx, "failed to remove token", "error", err)
	}
}
