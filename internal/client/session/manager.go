// Package session owns the process-wide authentication state: who is logged
// in right now. No other component mutates that state; everything goes
// through Restore, LoginUser, and Logout.
package session

import (
	"context"
	"sync"

	"github.com/mveldre/rentahouse/internal/client/models"
	"github.com/mveldre/rentahouse/internal/logging"
)

// State is the lifecycle phase of the session.
type State int

const (
	// StateInitializing holds from construction until the first Restore
	// resolves.
	StateInitializing State = iota

	// StateAuthenticated means a validated user is present.
	StateAuthenticated

	// StateUnauthenticated means no valid credential exists.
	StateUnauthenticated
)

// Client is the slice of the API client the session manager needs.
type Client interface {
	GetMeWithToken(ctx context.Context, token string) (*models.User, error)
	Logout(ctx context.Context) error
}

// TokenStore is the credential persistence surface the manager needs.
type TokenStore interface {
	Get(ctx context.Context) (string, bool)
	Remove(ctx context.Context)
}

// Manager derives the session from the token store at startup and exposes
// the only mutation entry points. All state transitions happen under one
// mutex, so the token store and session state act as a single serialized
// resource ("last write wins").
type Manager struct {
	mu     sync.Mutex
	state  State
	user   *models.User
	client Client
	tokens TokenStore
	log    logging.Logger
}

func NewManager(client Client, tokens TokenStore, log logging.Logger) *Manager {
	return &Manager{
		state:  StateInitializing,
		client: client,
		tokens: tokens,
		log:    log,
	}
}

// Restore performs the startup check: if a credential is stored, validate it
// by fetching the current user; on any failure the credential is removed and
// the session ends up unauthenticated. Restore always resolves — validation
// errors are logged, not returned, so a corrupted or expired token can never
// wedge the client in a broken authenticated-looking state.
func (m *Manager) Restore(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()

	token, ok := m.tokens.Get(ctx)
	if !ok {
		m.setUnauthenticated()
		return
	}

	user, err := m.client.GetMeWithToken(ctx, token)
	if err != nil {
		m.log.Warn(ctx, "stored credential rejected, logging out", "error", err)
		m.tokens.Remove(ctx)
		m.setUnauthenticated()
		return
	}

	m.state = StateAuthenticated
	m.user = user
}

// LoginUser records a user that the caller already authenticated through the
// API client (which persisted the token as a side effect). No re-validation
// call is made.
func (m *Manager) LoginUser(user *models.User) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.state = StateAuthenticated
	m.user = user
}

// Logout clears the persisted credential and the in-memory session. The
// session always ends unauthenticated, even if credential removal fails —
// the UI must never be left stuck logged-in.
func (m *Manager) Logout(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.client.Logout(ctx); err != nil {
		m.log.Warn(ctx, "logout cleanup failed, clearing session anyway", "error", err)
		m.tokens.Remove(ctx)
	}
	m.setUnauthenticated()
}

func (m *Manager) setUnauthenticated() {
	m.state = StateUnauthenticated
	m.user = nil
}

// CurrentUser returns the authenticated user, or nil.
func (m *Manager) CurrentUser() *models.User {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.user
}

// IsAuthenticated reports whether a validated user is present.
func (m *Manager) IsAuthenticated() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state == StateAuthenticated
}

// IsInitializing reports whether the first startup check has not resolved yet.
func (m *Manager) IsInitializing() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state == StateInitializing
}
