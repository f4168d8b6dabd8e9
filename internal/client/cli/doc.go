// Package cli provides the interactive GroupGo terminal client.
//
// It wires configuration, the local database, the API client, the session
// manager, the router and the route guard, then runs a REPL whose commands
// open screens by route path:
//
//   - login, register, forgot: public screens
//   - profile, events, create: protected screens, gated by the route guard
//   - logout: drops the session and returns to the login screen
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
