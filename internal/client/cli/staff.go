package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/hotelpanel/internal/client/models"
	"github.com/dmitrijs2005/hotelpanel/internal/client/nav"
)

const msgLoadFailed = "Failed to load data"

// Staff lists staff members, optionally narrowed by a search term matched
// against full name and email.
func (a *App) Staff(ctx context.Context, search string) error {
	return a.protected(ctx, nav.Staff, func(ctx context.Context) error {
		list, err := a.staffService.List(ctx, search)
		if err != nil {
			return a.fail(err, msgLoadFailed)
		}
		if len(list) == 0 {
			a.println("No staff members found.")
			return nil
		}

		rows := make([][]string, 0, len(list))
		for _, s := range list {
			rows = append(rows, []string{s.ID, s.FullName(), s.Email, s.Phone, s.DepartmentName(), string(s.Role), string(s.Status)})
		}
		a.table([]string{"ID", "NAME", "EMAIL", "PHONE", "DEPARTMENT", "ROLE", "STATUS"}, rows)
		return nil
	})
}

func (a *App) StaffAdd(ctx context.Context) error {
	return a.protected(ctx, nav.Staff, func(ctx context.Context) error {
		if err := a.showDepartmentChoices(ctx); err != nil {
			return err
		}

		in, err := a.staffForm(models.Staff{Role: models.RoleStaff, Status: models.StaffActive})
		if err != nil {
			return err
		}
		if _, err := a.staffService.Create(ctx, in); err != nil {
			return a.fail(err, "Operation failed")
		}
		a.println("Staff added")
		return nil
	})
}

func (a *App) StaffEdit(ctx context.Context, id string) error {
	return a.protected(ctx, nav.Staff, func(ctx context.Context) error {
		list, err := a.staffService.List(ctx, "")
		if err != nil {
			return a.fail(err, msgLoadFailed)
		}

		var current *models.Staff
		for i := range list {
			if list[i].ID == id {
				current = &list[i]
				break
			}
		}
		if current == nil {
			return a.fail(fmt.Errorf("staff member %q %w", id, errNotFound), msgLoadFailed)
		}

		if err := a.showDepartmentChoices(ctx); err != nil {
			return err
		}

		in, err := a.staffForm(*current)
		if err != nil {
			return err
		}
		if _, err := a.staffService.Update(ctx, id, in); err != nil {
			return a.fail(err, "Operation failed")
		}
		a.println("Staff updated")
		return nil
	})
}

func (a *App) StaffDelete(ctx context.Context, id string) error {
	return a.protected(ctx, nav.Staff, func(ctx context.Context) error {
		ok, err := a.confirm("Delete this staff member?")
		if err != nil || !ok {
			return err
		}
		if err := a.staffService.Delete(ctx, id); err != nil {
			return a.fail(err, "Failed to delete staff")
		}
		a.println("Staff deleted successfully")
		return nil
	})
}

func (a *App) showDepartmentChoices(ctx context.Context) error {
	depts, err := a.departmentService.List(ctx)
	if err != nil {
		return a.fail(err, msgLoadFailed)
	}
	if len(depts) == 0 {
		a.println("No departments found. Create one with 'dept-add' first.")
		return nil
	}

	rows := make([][]string, 0, len(depts))
	for _, d := range depts {
		rows = append(rows, []string{d.ID, d.Name})
	}
	a.table([]string{"DEPARTMENT ID", "NAME"}, rows)
	return nil
}

// staffForm prompts for the editable staff fields, offering cur's values as
// defaults. Only form fields are carried into the result.
func (a *App) staffForm(cur models.Staff) (models.Staff, error) {
	var out models.Staff
	fields := []struct {
		prompt  string
		current string
		set     func(string)
	}{
		{"First name", cur.FirstName, func(v string) { out.FirstName = v }},
		{"Last name", cur.LastName, func(v string) { out.LastName = v }},
		{"Email", cur.Email, func(v string) { out.Email = v }},
		{"Phone", cur.Phone, func(v string) { out.Phone = v }},
		{"Department ID", cur.Department.RefID(), func(v string) { out.Department = models.RefTo[models.Department](v) }},
		{"Role (admin/staff/manager)", string(cur.Role), func(v string) { out.Role = models.Role(v) }},
		{"Status (active/inactive)", string(cur.Status), func(v string) { out.Status = models.StaffStatus(v) }},
	}

	for _, f := range fields {
		v, err := getWithDefault(a.reader, f.prompt, f.current, a.out)
		if err != nil {
			return models.Staff{}, err
		}
		f.set(v)
	}
	return out, nil
}
