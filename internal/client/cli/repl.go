package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Feed(ctx context.Context) error
	Category(ctx context.Context, name string) error
	Search(ctx context.Context, query string) error
	WatchlistView(ctx context.Context) error
	Watch(ctx context.Context, id string) error
	Show(ctx context.Context, id string) error
	Sell(ctx context.Context) error
	Settings(ctx context.Context) error
	MyListings(ctx context.Context) error
	Verify(ctx context.Context, id string) error
	Transfer(ctx context.Context, id, newOwnerID string) error
	Ping(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the marketplace CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Always available:
//	  - help              — show available commands
//	  - feed              — load the product feed
//	  - category <name>   — load one category section
//	  - search <text>     — full-text search (minimum 2 characters)
//	  - watchlist         — show watched products
//	  - watch <id>        — toggle a product on the watchlist
//	  - show <id>         — show a single product
//	  - verify <id>       — verify a product's nano tag
//	  - sell              — draft and submit a listing
//	  - settings          — show the active configuration
//	  - ping              — check server reachability
//	  - exit | quit       — leave the program
//
//	Not logged in:
//	  - register          — create an account
//	  - login             — authenticate
//
//	Logged in:
//	  - mylistings        — show own listings
//	  - transfer <id> <owner> — transfer ownership
//	  - whoami            — show the current identity
//	  - logout            — log out
//
// Any errors returned by command handlers are ignored here; handlers should
// log their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("market %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			printlnFn("Available commands: feed, category <name>, search <text>, watchlist, watch <id>, show <id>, verify <id>, sell, settings, ping, exit")
			if a.isLoggedIn() {
				printlnFn("Account commands: mylistings, transfer <id> <owner>, whoami, logout")
			} else {
				printlnFn("Account commands: register, login")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami":
			_ = a.WhoAmI(ctx)

		case "f", "feed":
			_ = a.Feed(ctx)

		case "category":
			if len(args) == 0 {
				printlnFn("Usage: category <name>")
				continue
			}
			_ = a.Category(ctx, args[0])

		case "search":
			if len(args) == 0 {
				printlnFn("Usage: search <text>")
				continue
			}
			_ = a.Search(ctx, strings.Join(args, " "))

		case "watchlist":
			_ = a.WatchlistView(ctx)

		case "watch":
			if len(args) == 0 {
				printlnFn("Usage: watch <id>")
				continue
			}
			_ = a.Watch(ctx, args[0])

		case "show":
			if len(args) == 0 {
				printlnFn("Usage: show <id>")
				continue
			}
			_ = a.Show(ctx, args[0])

		case "sell":
			_ = a.Sell(ctx)

		case "settings":
			_ = a.Settings(ctx)

		case "mylistings":
			_ = a.MyListings(ctx)

		case "verify":
			if len(args) == 0 {
				printlnFn("Usage: verify <id>")
				continue
			}
			_ = a.Verify(ctx, args[0])

		case "transfer":
			if len(args) < 2 {
				printlnFn("Usage: transfer <id> <owner>")
				continue
			}
			_ = a.Transfer(ctx, args[0], args[1])

		case "ping":
			_ = a.Ping(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
