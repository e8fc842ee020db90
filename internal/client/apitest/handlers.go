package apitest

import (
	"encoding/json"
	"net/http"
	"slices"

	"github.com/dmitrijs2005/hotelpanel/internal/client/models"
	"github.com/go-chi/chi/v5"
)

type staffView struct {
	models.Staff
	Department any `json:"department"`
}

type salaryView struct {
	models.Salary
	Staff any `json:"staff"`
}

func (b *Backend) reply(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if b.Wrap {
		_ = json.NewEncoder(w).Encode(map[string]any{"success": true, "data": payload})
		return
	}
	_ = json.NewEncoder(w).Encode(payload)
}

func fail(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{"success": false, "message": msg})
}

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		fail(w, http.StatusBadRequest, "Malformed request body")
		return false
	}
	return true
}

func (b *Backend) login(w http.ResponseWriter, r *http.Request) {
	var in models.Credentials
	if !decode(w, r, &in) {
		return
	}
	if in.Email == "" || in.Password == "" {
		fail(w, http.StatusBadRequest, "Please provide an email and password")
		return
	}

	b.mu.Lock()
	acc, ok := b.accounts[in.Email]
	if ok && acc.password == in.Password {
		b.live[acc.token] = true
	}
	b.mu.Unlock()

	if !ok || acc.password != in.Password {
		fail(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	// login answers in the flat {success, token, user} shape when unwrapped
	if b.Wrap {
		b.reply(w, http.StatusOK, models.AuthResult{Token: acc.token, User: acc.user})
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{"success": true, "token": acc.token, "user": acc.user})
}

func (b *Backend) register(w http.ResponseWriter, r *http.Request) {
	var in models.RegisterRequest
	if !decode(w, r, &in) {
		return
	}
	if in.Name == "" || in.Email == "" || in.Password == "" {
		fail(w, http.StatusBadRequest, "Please provide name, email and password")
		return
	}

	b.mu.Lock()
	if _, exists := b.accounts[in.Email]; exists {
		b.mu.Unlock()
		fail(w, http.StatusBadRequest, "User already exists")
		return
	}
	u := models.User{ID: b.nextID("usr"), Name: in.Name, Email: in.Email, Role: "admin"}
	b.accounts[in.Email] = &account{user: u, password: in.Password, token: "tok-" + u.ID}
	b.mu.Unlock()

	b.reply(w, http.StatusCreated, u)
}

// departments

func (b *Backend) listDepartments(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	out := slices.Clone(b.departments)
	b.mu.Unlock()
	if out == nil {
		out = []models.Department{}
	}
	b.reply(w, http.StatusOK, out)
}

func (b *Backend) createDepartment(w http.ResponseWriter, r *http.Request) {
	var in models.Department
	if !decode(w, r, &in) {
		return
	}
	if in.Name == "" {
		fail(w, http.StatusBadRequest, "Department name is required")
		return
	}
	in.ID = ""
	in.CreatedAt = "2024-01-01T00:00:00.000Z"
	b.reply(w, http.StatusCreated, b.SeedDepartment(in))
}

func (b *Backend) updateDepartment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var in models.Department
	if !decode(w, r, &in) {
		return
	}

	b.mu.Lock()
	i := slices.IndexFunc(b.departments, func(d models.Department) bool { return d.ID == id })
	if i >= 0 {
		in.ID = id
		in.CreatedAt = b.departments[i].CreatedAt
		b.departments[i] = in
	}
	b.mu.Unlock()

	if i < 0 {
		fail(w, http.StatusNotFound, "Department not found")
		return
	}
	b.reply(w, http.StatusOK, in)
}

func (b *Backend) deleteDepartment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	b.mu.Lock()
	n := len(b.departments)
	b.departments = slices.DeleteFunc(b.departments, func(d models.Department) bool { return d.ID == id })
	found := len(b.departments) != n
	b.mu.Unlock()

	if !found {
		fail(w, http.StatusNotFound, "Department not found")
		return
	}
	b.reply(w, http.StatusOK, map[string]any{})
}

// staff

func (b *Backend) viewStaff(s models.Staff) staffView {
	v := staffView{Staff: s, Department: s.Department.ID}
	if !b.Populate {
		return v
	}
	for _, d := range b.departments {
		if d.ID == s.Department.ID {
			v.Department = d
		}
	}
	return v
}

func (b *Backend) listStaff(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	out := make([]staffView, 0, len(b.staff))
	for _, s := range b.staff {
		out = append(out, b.viewStaff(s))
	}
	b.mu.Unlock()
	b.reply(w, http.StatusOK, out)
}

func (b *Backend) createStaff(w http.ResponseWriter, r *http.Request) {
	var in models.Staff
	if !decode(w, r, &in) {
		return
	}
	if in.FirstName == "" || in.LastName == "" || in.Email == "" {
		fail(w, http.StatusBadRequest, "Missing required staff fields")
		return
	}
	in.ID = ""
	s := b.SeedStaff(in)

	b.mu.Lock()
	v := b.viewStaff(s)
	b.mu.Unlock()
	b.reply(w, http.StatusCreated, v)
}

func (b *Backend) updateStaff(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var in models.Staff
	if !decode(w, r, &in) {
		return
	}

	b.mu.Lock()
	i := slices.IndexFunc(b.staff, func(s models.Staff) bool { return s.ID == id })
	var v staffView
	if i >= 0 {
		in.ID = id
		in.Department = models.RefTo[models.Department](in.Department.ID)
		b.staff[i] = in
		v = b.viewStaff(in)
	}
	b.mu.Unlock()

	if i < 0 {
		fail(w, http.StatusNotFound, "Staff not found")
		return
	}
	b.reply(w, http.StatusOK, v)
}

func (b *Backend) deleteStaff(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	b.mu.Lock()
	n := len(b.staff)
	b.staff = slices.DeleteFunc(b.staff, func(s models.Staff) bool { return s.ID == id })
	found := len(b.staff) != n
	b.mu.Unlock()

	if !found {
		fail(w, http.StatusNotFound, "Staff not found")
		return
	}
	b.reply(w, http.StatusOK, map[string]any{})
}

// salaries

func (b *Backend) viewSalary(s models.Salary) salaryView {
	v := salaryView{Salary: s, Staff: s.Staff.ID}
	if !b.Populate {
		return v
	}
	for _, st := range b.staff {
		if st.ID == s.Staff.ID {
			v.Staff = b.viewStaff(st)
		}
	}
	return v
}

func (b *Backend) listSalaries(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	out := make([]salaryView, 0, len(b.salaries))
	for _, s := range b.salaries {
		out = append(out, b.viewSalary(s))
	}
	b.mu.Unlock()
	b.reply(w, http.StatusOK, out)
}

func (b *Backend) createSalary(w http.ResponseWriter, r *http.Request) {
	var in models.Salary
	if !decode(w, r, &in) {
		return
	}
	if in.Staff.ID == "" || in.Amount <= 0 {
		fail(w, http.StatusBadRequest, "Staff and a positive amount are required")
		return
	}
	in.ID = ""
	s := b.SeedSalary(in)

	b.mu.Lock()
	v := b.viewSalary(s)
	b.mu.Unlock()
	b.reply(w, http.StatusCreated, v)
}

func (b *Backend) deleteSalary(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	b.mu.Lock()
	n := len(b.salaries)
	b.salaries = slices.DeleteFunc(b.salaries, func(s models.Salary) bool { return s.ID == id })
	found := len(b.salaries) != n
	b.mu.Unlock()

	if !found {
		fail(w, http.StatusNotFound, "Salary record not found")
		return
	}
	b.reply(w, http.StatusOK, map[string]any{})
}
