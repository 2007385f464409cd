package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a
// lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Register(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	List(ctx context.Context) error
	Search(ctx context.Context, args []string) error
	Mine(ctx context.Context) error
	Show(ctx context.Context, args []string) error
	Comment(ctx context.Context, args []string) error
	Feedback(ctx context.Context) error
}

// runREPL starts the read-eval-print loop.
//
// It reads a line, parses the first token as the command, and dispatches to
// methods on 'a'. Unknown commands are reported back to the user. The loop
// exits on EOF or when the user types "exit" or "quit".
//
// Commands:
//
//	help              — show available commands
//	login             — authenticate
//	register          — create an account
//	logout            — log out
//	whoami            — show the current account
//	l | list          — list all property listings
//	search k=v ...    — list filtered listings (e.g. search bedroom=2)
//	mine              — list the current user's listings (requires login)
//	show <id>         — show one listing with comments
//	comment <id>      — leave a rating comment (requires login)
//	feedback          — send feedback about the service
//	exit | quit       — leave the program
//
// Errors returned by command handlers are ignored here; handlers report
// their own failures. This keeps the loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader, out io.Writer) {
	for {
		fmt.Fprintf(out, "rah %s> ", statusFn())
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				fmt.Fprintln(out, "Available commands: (l)ist, search, mine, show, comment, feedback, whoami, logout, exit")
			} else {
				fmt.Fprintln(out, "Available commands: (l)ist, search, show, feedback, login, register, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "register":
			_ = a.Register(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami":
			_ = a.WhoAmI(ctx)

		case "l", "list":
			_ = a.List(ctx)

		case "search":
			_ = a.Search(ctx, args)

		case "mine":
			_ = a.Mine(ctx)

		case "show":
			_ = a.Show(ctx, args)

		case "comment":
			_ = a.Comment(ctx, args)

		case "feedback":
			_ = a.Feedback(ctx)

		case "exit", "quit":
			fmt.Fprintln(out, "Bye!")
			return

		default:
			fmt.Fprintln(out, "Unknown command:", cmd)
		}
	}
}
