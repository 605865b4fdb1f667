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
	Login(ctx context.Context) error
	Signup(ctx context.Context) error
	Forgot(ctx context.Context) error
	Events(ctx context.Context) error
	Show(ctx context.Context) error
	Create(ctx context.Context) error
	Book(ctx context.Context) error
	Tickets(ctx context.Context) error
	Save(ctx context.Context) error
	Saved(ctx context.Context) error
	Profile(ctx context.Context) error
	EditProfile(ctx context.Context) error
	Settings(ctx context.Context) error
	Share(ctx context.Context) error
	Manage(ctx context.Context) error
	Logout(ctx context.Context) error
}

// report prints a handler error without breaking the loop.
func report(err error) {
	if err != nil {
		printlnFn("Error:", err)
	}
}

// runREPL reads a line from the scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Browsing commands work logged out; booking and profile commands need a
// session. Handlers do their own prompting, so commands take no arguments.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("el %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: (e)vents, show, create, book, tickets, save, saved, profile, editprofile, settings, share, manage, logout, exit")
			} else {
				printlnFn("Available commands: (e)vents, show, login, signup, forgot, exit")
			}

		case "login":
			report(a.Login(ctx))

		case "signup":
			report(a.Signup(ctx))

		case "forgot":
			report(a.Forgot(ctx))

		case "e", "events":
			report(a.Events(ctx))

		case "show":
			report(a.Show(ctx))

		case "create":
			report(a.Create(ctx))

		case "book":
			report(a.Book(ctx))

		case "tickets":
			report(a.Tickets(ctx))

		case "save":
			report(a.Save(ctx))

		case "saved":
			report(a.Saved(ctx))

		case "profile":
			report(a.Profile(ctx))

		case "editprofile":
			report(a.EditProfile(ctx))

		case "settings":
			report(a.Settings(ctx))

		case "share":
			report(a.Share(ctx))

		case "manage":
			report(a.Manage(ctx))

		case "logout":
			report(a.Logout(ctx))

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
