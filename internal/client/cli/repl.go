package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface is the command surface the REPL needs. The real App satisfies
// it; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	exec(ctx context.Context, cmd string, args []string) error
}

// runREPL reads one command per line from reader and dispatches it to a.
// The loop exits on EOF or when the user types "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the session status (from statusFn). "help" lists the
// commands available in the current state. Session-only commands are
// refused while logged out; errors from handlers are printed, not returned.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("sd %s > ", statusFn()))

		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		name, args := parts[0], parts[1:]

		switch name {
		case "help":
			printlnFn(helpText(a.isLoggedIn()))
			continue
		case "exit", "quit":
			printlnFn("Bye!")
			return
		}

		cmd, ok := lookup(name)
		if !ok {
			printlnFn("Unknown command:", name)
			continue
		}
		if cmd.needsSession && !a.isLoggedIn() {
			printlnFn("Please log in first.")
			continue
		}
		if !cmd.needsSession && cmd.anonymousOnly && a.isLoggedIn() {
			printlnFn("Already logged in.")
			continue
		}

		if err := a.exec(ctx, name, args); err != nil {
			printlnFn("Error:", describeError(err))
		}
	}
}
