// Package services contains the application services of the hotel panel
// client. Each one talks to the backend through client.Client; only
// AuthService touches the session.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/hotelpanel/internal/client/client"
	"github.com/dmitrijs2005/hotelpanel/internal/client/models"
	"github.com/dmitrijs2005/hotelpanel/internal/logging"
)

// User-facing login failure messages.
const (
	MsgLoginNetwork = "Unable to connect to the server. Please ensure the backend is running."
	MsgLoginFailed  = "Login failed. Please check your credentials."
)

// LoginFailure classifies why a login did not succeed.
type LoginFailure int

const (
	LoginOther LoginFailure = iota
	LoginNetwork
	LoginRejected
)

func (k LoginFailure) String() string {
	switch k {
	case LoginNetwork:
		return "network"
	case LoginRejected:
		return "rejected"
	default:
		return "other"
	}
}

// LoginError carries the classification and the message to show the user.
type LoginError struct {
	Kind    LoginFailure
	Message string
	Err     error
}

func (e *LoginError) Error() string { return e.Message }

func (e *LoginError) Unwrap() error { return e.Err }

// SessionWriter is the part of session.Store that AuthService mutates.
type SessionWriter interface {
	Set(ctx context.Context, token string, user models.User) error
	Clear(ctx context.Context) error
}

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Login: authenticate against the server and establish the session.
//     The session is left untouched on failure.
//   - Register: create an account on the server; does not log in.
//   - Logout: drop the session locally. The server is not contacted.
type AuthService interface {
	Login(ctx context.Context, creds models.Credentials) (models.User, error)
	Register(ctx context.Context, req models.RegisterRequest) (models.User, error)
	Logout(ctx context.Context) error
}

type authService struct {
	client   client.Client
	sessions SessionWriter
	log      logging.Logger
}

func NewAuthService(c client.Client, sessions SessionWriter, log logging.Logger) AuthService {
	return &authService{client: c, sessions: sessions, log: log}
}

func (a *authService) Login(ctx context.Context, creds models.Credentials) (models.User, error) {
	if err := models.Validate(creds); err != nil {
		return models.User{}, err
	}

	var res models.AuthResult
	if err := a.client.Post(ctx, "/auth/login", creds, &res); err != nil {
		lerr := classifyLogin(err)
		a.log.Warn(ctx, "login failed", "email", creds.Email, "kind", lerr.Kind.String(), "error", err)
		return models.User{}, lerr
	}

	if err := a.sessions.Set(ctx, res.Token, res.User); err != nil {
		a.log.Error(ctx, "login response unusable", "error", err)
		return models.User{}, &LoginError{Kind: LoginOther, Message: MsgLoginFailed, Err: err}
	}

	a.log.Info(ctx, "logged in", "user_id", res.User.ID)
	return res.User, nil
}

func classifyLogin(err error) *LoginError {
	if client.IsNetwork(err) {
		return &LoginError{Kind: LoginNetwork, Message: MsgLoginNetwork, Err: err}
	}
	if msg, ok := client.ServerMessage(err); ok {
		return &LoginError{Kind: LoginRejected, Message: msg, Err: err}
	}
	return &LoginError{Kind: LoginOther, Message: MsgLoginFailed, Err: err}
}

func (a *authService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	if err := models.Validate(req); err != nil {
		return models.User{}, err
	}

	var u models.User
	if err := a.client.Post(ctx, "/auth/register", req, &u); err != nil {
		return models.User{}, fmt.Errorf("register: %w", err)
	}
	return u, nil
}

func (a *authService) Logout(ctx context.Context) error {
	return a.sessions.Clear(ctx)
}

// IsLoginError reports whether err is a classified login failure and
// returns it.
func IsLoginError(err error) (*LoginError, bool) {
	var lerr *LoginError
	ok := errors.As(err, &lerr)
	return lerr, ok
}
