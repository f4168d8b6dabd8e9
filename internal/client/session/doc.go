// Package session owns the client's authentication state.
//
// A Manager derives the Session from the stored credential by calling the
// profile endpoint, exposes Login and Logout, and publishes every state
// transition to subscribers. It is the only writer of the session; views
// and the route guard read snapshots.
//
// States: Unauthenticated, Loading, Authenticated, Error. The manager starts
// in Loading when a credential is stored and in Unauthenticated otherwise.
package session
