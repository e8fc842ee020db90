// Package guard decides whether a protected screen may be shown.
package guard

import "github.com/dmitrijs2005/hotelpanel/internal/client/session"

type Decision int

const (
	ShowLoading Decision = iota
	Allow
	RedirectToLogin
)

func (d Decision) String() string {
	switch d {
	case ShowLoading:
		return "show-loading"
	case Allow:
		return "allow"
	case RedirectToLogin:
		return "redirect-to-login"
	default:
		return "unknown"
	}
}

// Decide never redirects while the persisted session is still being read.
func Decide(loading bool, s session.Session) Decision {
	switch {
	case loading:
		return ShowLoading
	case s.Authenticated():
		return Allow
	default:
		return RedirectToLogin
	}
}

// Source is what the guard reads; *session.Store satisfies it.
type Source interface {
	Loading() bool
	Get() session.Session
}

func Check(src Source) Decision {
	return Decide(src.Loading(), src.Get())
}
