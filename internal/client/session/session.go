// Package session holds the process-wide authentication state: the bearer
// token and the user it belongs to. The state is mirrored into durable
// storage so a restarted client resumes the previous session.
//
// A token is never observable without its user and vice versa; Set, Clear
// and Load keep memory and storage in that shape.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/hotelpanel/internal/client/models"
	"github.com/dmitrijs2005/hotelpanel/internal/client/storage"
	"github.com/dmitrijs2005/hotelpanel/internal/logging"
	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidSession = errors.New("session requires both a token and a user")

// Session is a snapshot of the authentication state. The zero value is the
// unauthenticated session.
type Session struct {
	Token string
	User  *models.User
}

func (s Session) Authenticated() bool {
	return s.Token != "" && s.User != nil
}

type Store struct {
	mu      sync.RWMutex
	repo    storage.Repository
	log     logging.Logger
	now     func() time.Time
	current Session
	loading bool
}

// NewStore returns a store in the loading state. Call Load once at start-up.
func NewStore(repo storage.Repository, log logging.Logger) *Store {
	return &Store{
		repo:    repo,
		log:     log,
		now:     time.Now,
		loading: true,
	}
}

// Loading reports whether the persisted session has not been read yet.
func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

func (s *Store) Get() Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.clone()
}

func (s *Store) Set(ctx context.Context, token string, user models.User) error {
	if token == "" || user.IsZero() {
		return ErrInvalidSession
	}

	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	err = s.repo.Atomically(ctx, func(ctx context.Context, kv storage.KV) error {
		if err := kv.Set(ctx, storage.KeyToken, []byte(token)); err != nil {
			return err
		}
		return kv.Set(ctx, storage.KeyUser, raw)
	})
	if err != nil {
		return fmt.Errorf("persist session: %w", err)
	}

	s.current = Session{Token: token, User: &user}
	s.log.Info(ctx, "session established", "user_id", user.ID)
	return nil
}

// Clear drops the session from memory and from storage. Memory is cleared
// even when the storage delete fails.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = Session{}
	if err := s.wipe(ctx); err != nil {
		s.log.Error(ctx, "failed to clear persisted session", "error", err)
		return fmt.Errorf("clear session: %w", err)
	}
	s.log.Info(ctx, "session cleared")
	return nil
}

// Load reads the persisted session. Half sessions, undecodable users and
// JWTs that expired beyond the clock-skew leeway are discarded and wiped from storage.
// The store leaves the loading state whatever the outcome.
func (s *Store) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer func() { s.loading = false }()

	token, err := s.repo.Get(ctx, storage.KeyToken)
	if err != nil {
		return fmt.Errorf("load token: %w", err)
	}
	rawUser, err := s.repo.Get(ctx, storage.KeyUser)
	if err != nil {
		return fmt.Errorf("load user: %w", err)
	}

	switch {
	case len(token) == 0 && len(rawUser) == 0:
		return nil
	case len(token) == 0 || len(rawUser) == 0:
		s.log.Warn(ctx, "discarding incomplete persisted session")
		return s.wipe(ctx)
	}

	var user models.User
	if err := json.Unmarshal(rawUser, &user); err != nil || user.IsZero() {
		s.log.Warn(ctx, "discarding persisted session with unreadable user", "error", err)
		return s.wipe(ctx)
	}

	if tokenExpired(string(token), s.now()) {
		s.log.Info(ctx, "persisted session token has expired")
		return s.wipe(ctx)
	}

	s.current = Session{Token: string(token), User: &user}
	s.log.Debug(ctx, "session restored", "user_id", user.ID)
	return nil
}

func (s *Store) wipe(ctx context.Context) error {
	return s.repo.Atomically(ctx, func(ctx context.Context, kv storage.KV) error {
		if err := kv.Delete(ctx, storage.KeyToken); err != nil {
			return err
		}
		return kv.Delete(ctx, storage.KeyUser)
	})
}

func (s Session) clone() Session {
	if s.User == nil {
		return s
	}
	u := *s.User
	return Session{Token: s.Token, User: &u}
}

// expiryLeeway absorbs clock skew between this machine and the token issuer.
// Tokens inside the window are kept and left to the server's 401.
const expiryLeeway = 5 * time.Minute

// tokenExpired reports whether token is a JWT whose exp claim lies more than
// expiryLeeway before now. Opaque tokens and JWTs without exp never expire
// locally.
func tokenExpired(token string, now time.Time) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return !exp.Add(expiryLeeway).After(now)
}
