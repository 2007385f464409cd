// Package cli is the interactive front end of the RentAHouse client: a
// read-eval-print loop over the session manager and the API client. All
// rendering and input handling lives here; auth state and network access do
// not.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"

	"github.com/mveldre/rentahouse/internal/client/api"
	"github.com/mveldre/rentahouse/internal/client/config"
	"github.com/mveldre/rentahouse/internal/client/repositories/settings"
	"github.com/mveldre/rentahouse/internal/client/session"
	"github.com/mveldre/rentahouse/internal/client/storage"
	"github.com/mveldre/rentahouse/internal/client/tokenstore"
	"github.com/mveldre/rentahouse/internal/logging"

	_ "modernc.org/sqlite"
)

type App struct {
	config  *config.Config
	client  api.Client
	session *session.Manager
	db      *sql.DB
	reader  *bufio.Reader
	out     io.Writer
	log     logging.Logger
}

func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	db, err := storage.Open(ctx, cfg.DatabaseDSN)
	if err != nil {
		return nil, err
	}

	repo := settings.NewSQLiteRepository(db)
	tokens := tokenstore.New(repo, log)
	client := api.NewHTTPClient(cfg.BaseURL, tokens, log).WithTimeout(cfg.RequestTimeout)
	sess := session.NewManager(client, tokens, log)

	return &App{
		config:  cfg,
		client:  client,
		session: sess,
		db:      db,
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
		log:     log,
	}, nil
}

func (a *App) Close() error {
	return a.db.Close()
}

// Run restores the session from the stored credential and enters the REPL.
func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to RentAHouse (type 'help' for commands)")

	a.session.Restore(ctx)
	if user := a.session.CurrentUser(); user != nil {
		fmt.Fprintf(a.out, "Logged in as %s\n", user.Email)
	}

	runREPL(ctx, a, a.status, a.reader, a.out)
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}

func (a *App) status() string {
	if user := a.session.CurrentUser(); user != nil {
		return fmt.Sprintf("(%s)", user.Email)
	}
	return ""
}
