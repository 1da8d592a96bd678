// Package cli provides the interactive marketplace command-line client.
//
// It wires configuration, local storage, API services, and an interactive
// REPL. Typical flow: probe the cached session, print server reachability,
// load the feed, and execute user commands.
//
// Key features:
//   - Register / Login / Logout against the backend, session cached locally
//   - Browse the feed, a category section, search results, or the watchlist
//   - Show a single product with its blockchain verification verdict
//   - Sell flow: draft a listing, attach up to four images, submit, and
//     activate the issued nano tag from the QR view
//   - Watchlist toggling backed by the local overlay store
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App, Router, and runREPL for details.
package cli
