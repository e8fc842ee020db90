// Package cli provides the interactive hotelctl command-line client.
//
// It wires configuration, the local session database, the authenticated API
// client and the resource services into a REPL. Each screen of the panel is
// a command; protected commands consult the route guard first and send the
// user to login when there is no session.
//
// Key features:
//   - Login / Register / Logout, with the session kept across restarts
//   - Dashboard overview
//   - Staff, department and salary management
//   - Salary export to XLSX
//   - API URL override and client metrics
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
