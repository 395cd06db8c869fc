// Package cli provides the interactive salesdesk command-line client.
//
// App is a thin driver over the client core: every command prompts for its
// input, calls a service facade or the auth controller, and prints the
// result. Errors are printed as one-line notices and never end the loop.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits or
// input ends. Commands that need a session are refused while the auth
// controller is not Authenticated, so a session lost mid-command sends the
// user back to login before anything else runs.
package cli
