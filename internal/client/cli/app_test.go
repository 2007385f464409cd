package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/mveldre/rentahouse/internal/client/api"
	"github.com/mveldre/rentahouse/internal/client/models"
	"github.com/mveldre/rentahouse/internal/client/session"
	"github.com/mveldre/rentahouse/internal/logging"
)

// fakeAPI implements api.Client for CLI tests.
type fakeAPI struct {
	loginResp *api.AuthResponse
	loginErr  error
	lastLogin [2]string

	registerResp *api.AuthResponse
	registerErr  error
	lastRegister [4]string

	me    *models.User
	meErr error

	properties  []models.Property
	listErr     error
	lastFilters map[string]string

	property *models.Property
	getErr   error
	lastID   int64

	commentErr  error
	lastComment struct {
		postID  string
		content string
		rating  int
	}

	feedbackErr  error
	lastFeedback string

	tokens *fakeTokens
}

// fakeTokens implements session.TokenStore.
type fakeTokens struct {
	token string
	has   bool
}

func (f *fakeTokens) Get(context.Context) (string, bool) { return f.token, f.has }
func (f *fakeTokens) Remove(context.Context)             { f.token, f.has = "", false }

func (f *fakeAPI) Login(_ context.Context, email, password string) (*api.AuthResponse, error) {
	f.lastLogin = [2]string{email, password}
	return f.loginResp, f.loginErr
}

func (f *fakeAPI) Register(_ context.Context, fullName, email, password, phone string) (*api.AuthResponse, error) {
	f.lastRegister = [4]string{fullName, email, password, phone}
	return f.registerResp, f.registerErr
}

func (f *fakeAPI) GetMe(context.Context) (*models.User, error) { return f.me, f.meErr }

func (f *fakeAPI) GetMeWithToken(_ context.Context, _ string) (*models.User, error) {
	return f.me, f.meErr
}

func (f *fakeAPI) ListProperties(_ context.Context, filters map[string]string) ([]models.Property, error) {
	f.lastFilters = filters
	return f.properties, f.listErr
}

func (f *fakeAPI) GetProperty(_ context.Context, id int64) (*models.Property, error) {
	f.lastID = id
	return f.property, f.getErr
}

func (f *fakeAPI) CreateComment(_ context.Context, postID, content string, rating int) error {
	f.lastComment.postID = postID
	f.lastComment.content = content
	f.lastComment.rating = rating
	return f.commentErr
}

func (f *fakeAPI) CreateFeedback(_ context.Context, content string) error {
	f.lastFeedback = content
	return f.feedbackErr
}

func (f *fakeAPI) Logout(ctx context.Context) error {
	if f.tokens != nil {
		f.tokens.Remove(ctx)
	}
	return nil
}

// newTestApp wires an App around the fake client with a scripted stdin and
// captured stdout.
func newTestApp(client *fakeAPI, input string) (*App, *bytes.Buffer) {
	if client.tokens == nil {
		client.tokens = &fakeTokens{}
	}
	out := &bytes.Buffer{}
	return &App{
		client:  client,
		session: session.NewManager(client, client.tokens, logging.NewNopLogger()),
		reader:  bufio.NewReader(strings.NewReader(input)),
		out:     out,
		log:     logging.NewNopLogger(),
	}, out
}

func stubInputs(t *testing.T, lines []string, password []byte) {
	t.Helper()
	origST, origGP := getSimpleText, getPassword
	t.Cleanup(func() {
		getSimpleText = origST
		getPassword = origGP
	})

	i := 0
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if i >= len(lines) {
			return "", io.EOF
		}
		line := lines[i]
		i++
		return line, nil
	}
	getPassword = func(_ io.Writer) ([]byte, error) {
		return append([]byte(nil), password...), nil
	}
}
