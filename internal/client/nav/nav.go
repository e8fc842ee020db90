// Package nav names the panel's screens and the view-layer collaborators
// that the API client signals into.
package nav

import "strings"

type Route string

const (
	Login       Route = "/login"
	Register    Route = "/register"
	Dashboard   Route = "/"
	Staff       Route = "/staff"
	Departments Route = "/departments"
	Salaries    Route = "/salaries"
)

var routes = map[string]Route{
	string(Login):       Login,
	string(Register):    Register,
	string(Dashboard):   Dashboard,
	string(Staff):       Staff,
	string(Departments): Departments,
	string(Salaries):    Salaries,
}

// Resolve maps a path to a known route. Unknown paths resolve to Dashboard.
func Resolve(path string) Route {
	p := strings.TrimSpace(path)
	p = strings.TrimPrefix(p, "#")
	if len(p) > 1 {
		p = strings.TrimSuffix(p, "/")
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	if r, ok := routes[p]; ok {
		return r
	}
	return Dashboard
}

// Protected reports whether the route requires an authenticated session.
func (r Route) Protected() bool {
	return r != Login && r != Register
}

// Navigator moves the view layer to another screen.
type Navigator interface {
	Current() Route
	Navigate(to Route)
}

// Notifier shows a transient message to the user.
type Notifier interface {
	Notify(msg string)
}
