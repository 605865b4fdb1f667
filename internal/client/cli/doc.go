// Package cli is the interactive terminal client. It wires the config,
// session store, API client, and services together and runs a REPL that
// dispatches commands to screen handlers.
package cli
