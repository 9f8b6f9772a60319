package middleware

import (
	"net/http"

	"github.com/gorilla/mux"
)

const unknownRoute = "unknown"

// routeName is the name of the matched mux route, so metrics and logs stay
// bounded no matter which exercise id or day is in the path.
func routeName(r *http.Request) string {
	route := mux.CurrentRoute(r)
	if route == nil {
		return unknownRoute
	}
	if name := route.GetName(); name != "" {
		return name
	}
	return unknownRoute
}
