// Package apitest provides an in-process fake of the hotel backend for tests.
//
// Backend keeps users, departments, staff and salary records in memory and
// serves them under the same routes the real API exposes. References are
// populated on read (department inside staff, staff inside salary) unless
// Populate is turned off, and responses use the {"success","data"} envelope
// unless Wrap is turned off.
package apitest

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/dmitrijs2005/hotelpanel/internal/client/models"
	"github.com/dmitrijs2005/hotelpanel/internal/common"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

// Call is one request seen by the backend.
type Call struct {
	Method        string
	Path          string
	Authorization string
	RequestID     string
}

type account struct {
	user     models.User
	password string
	token    string
}

type Backend struct {
	mu sync.Mutex

	Wrap     bool
	Populate bool

	accounts    map[string]*account
	live        map[string]bool
	departments []models.Department
	staff       []models.Staff
	salaries    []models.Salary
	calls       []Call
	seq         int
}

func New() *Backend {
	return &Backend{
		Wrap:     true,
		Populate: true,
		accounts: make(map[string]*account),
		live:     make(map[string]bool),
	}
}

// Start serves the backend until the test ends and returns the base URL,
// including the /api/v1 prefix.
func (b *Backend) Start(t testing.TB) string {
	t.Helper()
	srv := httptest.NewServer(b.Router())
	t.Cleanup(srv.Close)
	return srv.URL + "/api/v1"
}

// UnreachableURL returns the base URL of a server that has already shut down.
func UnreachableURL(t testing.TB) string {
	t.Helper()
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL + "/api/v1"
	srv.Close()
	return url
}

func (b *Backend) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(chiMiddleware.AllowContentType("application/json"))
	r.Use(b.record)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/login", b.login)
		r.Post("/auth/register", b.register)

		r.Group(func(r chi.Router) {
			r.Use(b.requireToken)

			r.Get("/staff", b.listStaff)
			r.Post("/staff", b.createStaff)
			r.Put("/staff/{id}", b.updateStaff)
			r.Delete("/staff/{id}", b.deleteStaff)

			r.Get("/department", b.listDepartments)
			r.Post("/department", b.createDepartment)
			r.Put("/department/{id}", b.updateDepartment)
			r.Delete("/department/{id}", b.deleteDepartment)

			r.Get("/salary", b.listSalaries)
			r.Post("/salary", b.createSalary)
			r.Delete("/salary/{id}", b.deleteSalary)
		})
	})
	return r
}

// AddUser registers an account whose login always yields token.
func (b *Backend) AddUser(u models.User, password, token string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.accounts[u.Email] = &account{user: u, password: password, token: token}
}

// ExpireSessions invalidates every issued token.
func (b *Backend) ExpireSessions() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.live = make(map[string]bool)
}

// Authorize makes token valid without a login round trip.
func (b *Backend) Authorize(token string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.live[token] = true
}

func (b *Backend) Calls() []Call {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]Call(nil), b.calls...)
}

// CallsTo returns the calls whose path ends with suffix.
func (b *Backend) CallsTo(suffix string) []Call {
	var out []Call
	for _, c := range b.Calls() {
		if strings.HasSuffix(c.Path, suffix) {
			out = append(out, c)
		}
	}
	return out
}

func (b *Backend) SeedDepartment(d models.Department) models.Department {
	b.mu.Lock()
	defer b.mu.Unlock()
	if d.ID == "" {
		d.ID = b.nextID("dep")
	}
	b.departments = append(b.departments, d)
	return d
}

func (b *Backend) SeedStaff(s models.Staff) models.Staff {
	b.mu.Lock()
	defer b.mu.Unlock()
	if s.ID == "" {
		s.ID = b.nextID("stf")
	}
	s.Department = models.RefTo[models.Department](s.Department.ID)
	b.staff = append(b.staff, s)
	return s
}

func (b *Backend) SeedSalary(s models.Salary) models.Salary {
	b.mu.Lock()
	defer b.mu.Unlock()
	if s.ID == "" {
		s.ID = b.nextID("sal")
	}
	s.Staff = models.RefTo[models.Staff](s.Staff.ID)
	b.salaries = append(b.salaries, s)
	return s
}

func (b *Backend) nextID(prefix string) string {
	b.seq++
	return fmt.Sprintf("%s-%d", prefix, b.seq)
}

func (b *Backend) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		b.calls = append(b.calls, Call{
			Method:        r.Method,
			Path:          r.URL.Path,
			Authorization: r.Header.Get(common.AuthHeaderName),
			RequestID:     r.Header.Get(common.RequestIDHeaderName),
		})
		b.mu.Unlock()
		next.ServeHTTP(w, r)
	})
}

func (b *Backend) requireToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := strings.CutPrefix(r.Header.Get(common.AuthHeaderName), common.BearerPrefix)

		b.mu.Lock()
		valid := ok && b.live[token]
		b.mu.Unlock()

		if !valid {
			fail(w, http.StatusUnauthorized, "Not authorized to access this route")
			return
		}
		next.ServeHTTP(w, r)
	})
}
