package services

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/dmitrijs2005/hotelpanel/internal/client/client"
	"github.com/dmitrijs2005/hotelpanel/internal/client/models"
)

var ErrMissingID = errors.New("record id is required")

func itemPath(base, id string) (string, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", ErrMissingID
	}
	return base + "/" + url.PathEscape(id), nil
}

type StaffService interface {
	// List returns every staff member, narrowed by search when it is not
	// blank. See FilterStaff.
	List(ctx context.Context, search string) ([]models.Staff, error)
	Create(ctx context.Context, s models.Staff) (models.Staff, error)
	Update(ctx context.Context, id string, s models.Staff) (models.Staff, error)
	Delete(ctx context.Context, id string) error
}

type staffService struct {
	client client.Client
}

func NewStaffService(c client.Client) StaffService {
	return &staffService{client: c}
}

func (s *staffService) List(ctx context.Context, search string) ([]models.Staff, error) {
	var list []models.Staff
	if err := s.client.Get(ctx, "/staff", &list); err != nil {
		return nil, fmt.Errorf("list staff: %w", err)
	}
	return FilterStaff(list, search), nil
}

func (s *staffService) Create(ctx context.Context, in models.Staff) (models.Staff, error) {
	if err := models.Validate(in); err != nil {
		return models.Staff{}, err
	}
	var out models.Staff
	if err := s.client.Post(ctx, "/staff", in, &out); err != nil {
		return models.Staff{}, fmt.Errorf("create staff: %w", err)
	}
	return out, nil
}

func (s *staffService) Update(ctx context.Context, id string, in models.Staff) (models.Staff, error) {
	path, err := itemPath("/staff", id)
	if err != nil {
		return models.Staff{}, err
	}
	if err := models.Validate(in); err != nil {
		return models.Staff{}, err
	}
	var out models.Staff
	if err := s.client.Put(ctx, path, in, &out); err != nil {
		return models.Staff{}, fmt.Errorf("update staff %s: %w", id, err)
	}
	return out, nil
}

func (s *staffService) Delete(ctx context.Context, id string) error {
	path, err := itemPath("/staff", id)
	if err != nil {
		return err
	}
	if err := s.client.Delete(ctx, path); err != nil {
		return fmt.Errorf("delete staff %s: %w", id, err)
	}
	return nil
}

// FilterStaff keeps members whose "First Last" or email contains term,
// ignoring case. A blank term keeps everyone.
func FilterStaff(list []models.Staff, term string) []models.Staff {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return list
	}
	out := make([]models.Staff, 0, len(list))
	for _, s := range list {
		name := strings.ToLower(s.FirstName + " " + s.LastName)
		if strings.Contains(name, term) || strings.Contains(strings.ToLower(s.Email), term) {
			out = append(out, s)
		}
	}
	return out
}

type DepartmentService interface {
	List(ctx context.Context) ([]models.Department, error)
	Create(ctx context.Context, d models.Department) (models.Department, error)
	Update(ctx context.Context, id string, d models.Department) (models.Department, error)
	Delete(ctx context.Context, id string) error
}

type departmentService struct {
	client client.Client
}

func NewDepartmentService(c client.Client) DepartmentService {
	return &departmentService{client: c}
}

func (s *departmentService) List(ctx context.Context) ([]models.Department, error) {
	var list []models.Department
	if err := s.client.Get(ctx, "/department", &list); err != nil {
		return nil, fmt.Errorf("list departments: %w", err)
	}
	return list, nil
}

func (s *departmentService) Create(ctx context.Context, in models.Department) (models.Department, error) {
	if err := models.Validate(in); err != nil {
		return models.Department{}, err
	}
	var out models.Department
	if err := s.client.Post(ctx, "/department", in, &out); err != nil {
		return models.Department{}, fmt.Errorf("create department: %w", err)
	}
	return out, nil
}

func (s *departmentService) Update(ctx context.Context, id string, in models.Department) (models.Department, error) {
	path, err := itemPath("/department", id)
	if err != nil {
		return models.Department{}, err
	}
	if err := models.Validate(in); err != nil {
		return models.Department{}, err
	}
	var out models.Department
	if err := s.client.Put(ctx, path, in, &out); err != nil {
		return models.Department{}, fmt.Errorf("update department %s: %w", id, err)
	}
	return out, nil
}

func (s *departmentService) Delete(ctx context.Context, id string) error {
	path, err := itemPath("/department", id)
	if err != nil {
		return err
	}
	if err := s.client.Delete(ctx, path); err != nil {
		return fmt.Errorf("delete department %s: %w", id, err)
	}
	return nil
}

type SalaryService interface {
	List(ctx context.Context) ([]models.Salary, error)
	Create(ctx context.Context, s models.Salary) (models.Salary, error)
	Delete(ctx context.Context, id string) error
}

type salaryService struct {
	client client.Client
}

func NewSalaryService(c client.Client) SalaryService {
	return &salaryService{client: c}
}

func (s *salaryService) List(ctx context.Context) ([]models.Salary, error) {
	var list []models.Salary
	if err := s.client.Get(ctx, "/salary", &list); err != nil {
		return nil, fmt.Errorf("list salaries: %w", err)
	}
	return list, nil
}

func (s *salaryService) Create(ctx context.Context, in models.Salary) (models.Salary, error) {
	if err := models.Validate(in); err != nil {
		return models.Salary{}, err
	}
	var out models.Salary
	if err := s.client.Post(ctx, "/salary", in, &out); err != nil {
		return models.Salary{}, fmt.Errorf("create salary: %w", err)
	}
	return out, nil
}

func (s *salaryService) Delete(ctx context.Context, id string) error {
	path, err := itemPath("/salary", id)
	if err != nil {
		return err
	}
	if err := s.client.Delete(ctx, path); err != nil {
		return fmt.Errorf("delete salary %s: %w", id, err)
	}
	return nil
}
