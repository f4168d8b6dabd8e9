// Package router tracks the client's current location and the route table.
// Screens are addressed by path, as they were in the web client, so the
// session manager and the route guard can reason about public and protected
// locations.
package router

const (
	RouteLogin          = "/"
	RouteRegister       = "/register"
	RouteForgotPassword = "/forgot-password"
	RouteProfile        = "/perfil"
	RouteEvents         = "/event"
	RouteCreateEvent    = "/createEvent"
)

// EntryRoute is where unauthenticated users are sent.
const EntryRoute = RouteLogin

var publicRoutes = map[string]struct{}{
	RouteLogin:          {},
	RouteRegister:       {},
	RouteForgotPassword: {},
}

// IsPublic reports whether path is reachable without a session.
func IsPublic(path string) bool {
	_, ok := publicRoutes[path]
	return ok
}
