// Package api implements the client for the RentAHouse REST API.
//
// The client owns no state of its own: every call is a pure function of the
// request descriptor and the current credential. Authentication is attached
// automatically from the credential store unless an explicit token is used.
package api

import (
	"context"

	"github.com/mveldre/rentahouse/internal/client/models"
)

// CredentialStore is the persistence surface the client needs for the bearer
// token. *tokenstore.Store satisfies it.
type CredentialStore interface {
	Get(ctx context.Context) (string, bool)
	Set(ctx context.Context, token string)
	Remove(ctx context.Context)
}

// AuthResponse is the success shape of login and register.
type AuthResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// Client defines the logical operations of the RentAHouse API.
//
// Login and Register persist the returned token via the credential store
// before returning. Logout removes the persisted credential; the remote has
// no logout endpoint, so the call never touches the network.
type Client interface {
	Login(ctx context.Context, email, password string) (*AuthResponse, error)
	Register(ctx context.Context, fullName, email, password, phone string) (*AuthResponse, error)
	GetMe(ctx context.Context) (*models.User, error)
	GetMeWithToken(ctx context.Context, token string) (*models.User, error)
	ListProperties(ctx context.Context, filters map[string]string) ([]models.Property, error)
	GetProperty(ctx context.Context, id int64) (*models.Property, error)
	CreateComment(ctx context.Context, postID string, content string, rating int) error
	CreateFeedback(ctx context.Context, content string) error
	Logout(ctx context.Context) error
}
