package cli

import (
	"context"
	"os"

	"github.com/dmitrijs2005/hotelpanel/internal/client/models"
	"github.com/dmitrijs2005/hotelpanel/internal/client/nav"
	"github.com/dmitrijs2005/hotelpanel/internal/client/services"
	"golang.org/x/term"
)

// getSimpleText, getWithDefault, getPassword and isTerminal are indirections
// used to facilitate testing.
var (
	getSimpleText  = GetSimpleText
	getWithDefault = GetWithDefault
	getPassword    = GetPassword
	isTerminal     = term.IsTerminal
)

// readSecret reads a password without echo from a terminal, or as a plain
// line when input is piped. The password travels to the backend as a JSON
// string, so it is returned as one.
func (a *App) readSecret() (string, error) {
	if !isTerminal(int(os.Stdin.Fd())) {
		return getSimpleText(a.reader, "Enter password", a.out)
	}
	pw, err := getPassword(a.out)
	if err != nil {
		return "", err
	}
	return string(pw), nil
}

// Login shows the login screen: it prompts for credentials and establishes
// the session. Failures are reported with the message matching their cause
// and leave the session untouched.
func (a *App) Login(ctx context.Context) error {
	a.setRoute(nav.Login)

	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := a.readSecret()
	if err != nil {
		return err
	}

	user, err := a.authService.Login(ctx, models.Credentials{Email: email, Password: password})
	if err != nil {
		if lerr, ok := services.IsLoginError(err); ok {
			a.println(lerr.Message)
			return err
		}
		return a.fail(err, services.MsgLoginFailed)
	}

	a.setRoute(nav.Dashboard)
	a.printf("Welcome back, %s!\n", user.Name)
	return nil
}

// Register prompts for name, email and password and creates an account.
// It does not log in.
func (a *App) Register(ctx context.Context) error {
	a.setRoute(nav.Register)

	name, err := getSimpleText(a.reader, "Enter name", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := a.readSecret()
	if err != nil {
		return err
	}

	_, err = a.authService.Register(ctx, models.RegisterRequest{Name: name, Email: email, Password: password})
	if err != nil {
		return a.fail(err, "Registration failed")
	}

	a.setRoute(nav.Login)
	a.println("Registration successful. Please log in.")
	return nil
}

// Logout drops the session. The backend is not contacted.
func (a *App) Logout(ctx context.Context) error {
	err := a.authService.Logout(ctx)
	a.setRoute(nav.Login)
	if err != nil {
		a.log.Warn(ctx, "session storage not cleared", "error", err)
	}
	a.println("Logged out.")
	return nil
}
