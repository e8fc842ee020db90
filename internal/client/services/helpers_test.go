package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/dmitrijs2005/hotelpanel/internal/client/apitest"
	"github.com/dmitrijs2005/hotelpanel/internal/client/client"
	"github.com/dmitrijs2005/hotelpanel/internal/client/models"
	"github.com/dmitrijs2005/hotelpanel/internal/client/nav"
	"github.com/dmitrijs2005/hotelpanel/internal/client/session"
	"github.com/dmitrijs2005/hotelpanel/internal/client/storage"
	"github.com/dmitrijs2005/hotelpanel/internal/logging"
	"github.com/stretchr/testify/require"
)

var ann = models.User{ID: "u1", Name: "Ann", Email: "a@b.c", Role: "admin"}

type view struct {
	current  nav.Route
	messages []string
}

func (v *view) Current() nav.Route    { return v.current }
func (v *view) Navigate(to nav.Route) { v.current = to }
func (v *view) Notify(msg string)     { v.messages = append(v.messages, msg) }

type env struct {
	backend *apitest.Backend
	repo    *storage.SQLiteRepository
	store   *session.Store
	client  *client.HTTPClient
	view    *view
}

// newEnv wires a real session store and HTTP client against a fake backend
// at baseURL, or a freshly started one when baseURL is empty.
func newEnv(t *testing.T, baseURL string) *env {
	t.Helper()
	ctx := context.Background()

	db, err := storage.Open(ctx, filepath.Join(t.TempDir(), "svc.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	repo := storage.NewSQLiteRepository(db)

	store := session.NewStore(repo, logging.Nop())
	require.NoError(t, store.Load(ctx))

	b := apitest.New()
	if baseURL == "" {
		baseURL = b.Start(t)
	}
	v := &view{current: nav.Login}
	c := client.New(baseURL, store, client.WithNavigator(v), client.WithNotifier(v))

	return &env{backend: b, repo: repo, store: store, client: c, view: v}
}

// serveJSON starts a server answering path with body and 404 elsewhere.
// It returns the base URL.
func serveJSON(t *testing.T, path, body string) string {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc(path, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv.URL
}

// loggedIn returns an env whose session is already established as ann/"abc".
func loggedIn(t *testing.T) *env {
	t.Helper()
	e := newEnv(t, "")
	e.backend.Authorize("abc")
	require.NoError(t, e.store.Set(context.Background(), "abc", ann))
	e.view.current = nav.Dashboard
	return e
}
