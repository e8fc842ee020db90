package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// User is the authenticated principal. The backend sends "_id"; some
// deployments send "id" instead, and either may be a string or a number.
// Both keys are accepted on decode and the id is kept as a string.
type User struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func (u *User) UnmarshalJSON(b []byte) error {
	type plain User
	var aux struct {
		plain
		ID    json.RawMessage `json:"_id"`
		AltID json.RawMessage `json:"id"`
	}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	*u = User(aux.plain)

	id, err := decodeID(aux.ID)
	if err != nil {
		return fmt.Errorf("user _id: %w", err)
	}
	if id == "" {
		if id, err = decodeID(aux.AltID); err != nil {
			return fmt.Errorf("user id: %w", err)
		}
	}
	u.ID = id
	return nil
}

// decodeID reads an id that is a JSON string or number. Absent and null
// ids decode to "".
func decodeID(raw json.RawMessage) (string, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return "", nil
	}
	if raw[0] == '"' {
		var s string
		err := json.Unmarshal(raw, &s)
		return s, err
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var n json.Number
	if err := dec.Decode(&n); err != nil {
		return "", fmt.Errorf("want string or number, got %s", raw)
	}
	return n.String(), nil
}

// IsZero reports whether u carries no identity at all.
func (u User) IsZero() bool {
	return u == User{}
}

type Role string

const (
	RoleAdmin   Role = "admin"
	RoleStaff   Role = "staff"
	RoleManager Role = "manager"
)

type StaffStatus string

const (
	StaffActive   StaffStatus = "active"
	StaffInactive StaffStatus = "inactive"
)

type SalaryStatus string

const (
	SalaryPaid    SalaryStatus = "paid"
	SalaryPending SalaryStatus = "pending"
)

type Department struct {
	ID          string `json:"_id,omitempty"`
	Name        string `json:"name" validate:"required"`
	Description string `json:"description,omitempty"`
	CreatedAt   string `json:"createdAt,omitempty"`
}

type Staff struct {
	ID         string          `json:"_id,omitempty"`
	FirstName  string          `json:"firstName" validate:"required"`
	LastName   string          `json:"lastName" validate:"required"`
	Email      string          `json:"email" validate:"required,email"`
	Phone      string          `json:"phone" validate:"required"`
	Department Ref[Department] `json:"department" validate:"required"`
	Role       Role            `json:"role" validate:"oneof=admin staff manager"`
	Status     StaffStatus     `json:"status" validate:"oneof=active inactive"`
	JoinedDate string          `json:"joinedDate,omitempty"`
	Salary     *float64        `json:"salary,omitempty"`
}

// FullName is "First Last".
func (s Staff) FullName() string {
	return strings.TrimSpace(s.FirstName + " " + s.LastName)
}

// DepartmentName returns the populated department name, or "Unknown".
func (s Staff) DepartmentName() string {
	if s.Department.Populated() {
		return s.Department.Value.Name
	}
	return "Unknown"
}

type Salary struct {
	ID          string       `json:"_id,omitempty"`
	Staff       Ref[Staff]   `json:"staff" validate:"required"`
	Amount      float64      `json:"amount" validate:"gt=0"`
	PaymentDate string       `json:"paymentDate" validate:"required"`
	Status      SalaryStatus `json:"status" validate:"oneof=paid pending"`
	Month       string       `json:"month" validate:"required"`
	Year        int          `json:"year" validate:"required"`
}

// StaffName renders the salary's staff member, or "Unknown Staff" when the
// backend sent only an id.
func (s Salary) StaffName() string {
	if s.Staff.Populated() {
		return s.Staff.Value.FullName()
	}
	return "Unknown Staff"
}

type Credentials struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResult is the login payload after unwrapping.
type AuthResult struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type DashboardStats struct {
	TotalStaff       int     `json:"totalStaff"`
	ActiveStaff      int     `json:"activeStaff"`
	InactiveStaff    int     `json:"inactiveStaff"`
	TotalDepartments int     `json:"totalDepartments"`
	RecentStaff      []Staff `json:"recentStaff"`
}
