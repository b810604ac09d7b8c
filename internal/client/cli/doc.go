// Package cli provides the interactive timeline command-line client.
//
// It wires configuration, the gRPC gateway, the live event subscription and
// an interactive REPL. Typical flow: subscribe to the event collection,
// start a background connectivity watcher, and execute user commands.
//
// Key features:
//   - Add / Edit events with reference suggestions
//   - List / Show events and standalone reference tags
//   - Select an event to highlight what it references
//   - Draw the timeline in the terminal, follow live updates
//   - Map markers and per-event map overlays
//   - Import from YAML, export as YAML, SVG or PNG
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App, StartOnlineStatusWatcher, and runREPL for details.
package cli
