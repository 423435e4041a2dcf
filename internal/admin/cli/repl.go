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
	Logout(ctx context.Context) error
	Stats(ctx context.Context) error
	Markets(ctx context.Context) error
	Categories(ctx context.Context) error
	Banners(ctx context.Context) error
	UserMessages(ctx context.Context) error
	MarketMessages(ctx context.Context) error
	Users(ctx context.Context) error
}

// runREPL reads a line, parses the first token as the command, and
// dispatches to methods on a. Data screens are gated behind a session;
// unknown commands are reported back. The loop exits on EOF or when the
// operator types "exit" or "quit".
//
// Any errors returned by command handlers are ignored here; handlers
// surface their own errors through the notifier. This keeps the loop
// resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader, w io.Writer) {
	fmt.Fprintln(w, "Marketplace admin console (type 'help' for commands)")

	for {
		fmt.Fprintf(w, "admin %s> ", statusFn())
		line, err := reader.ReadString('\n')
		if err != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		if requiresSession(cmd) && !a.isLoggedIn() {
			fmt.Fprintln(w, "Please login first")
			continue
		}

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				fmt.Fprintln(w, "Available commands: stats, markets, categories, banners, usermsgs, marketmsgs, users, logout, exit")
			} else {
				fmt.Fprintln(w, "Available commands: login, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "stats":
			_ = a.Stats(ctx)

		case "m", "markets":
			_ = a.Markets(ctx)

		case "c", "categories":
			_ = a.Categories(ctx)

		case "b", "banners":
			_ = a.Banners(ctx)

		case "usermsgs":
			_ = a.UserMessages(ctx)

		case "marketmsgs":
			_ = a.MarketMessages(ctx)

		case "u", "users":
			_ = a.Users(ctx)

		case "exit", "quit":
			fmt.Fprintln(w, "Bye!")
			return

		default:
			fmt.Fprintln(w, "Unknown command:", cmd)
		}
	}
}

func requiresSession(cmd string) bool {
	switch cmd {
	case "stats", "m", "markets", "c", "categories", "b", "banners",
		"usermsgs", "marketmsgs", "u", "users":
		return true
	}
	return false
}
