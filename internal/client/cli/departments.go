package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/hotelpanel/internal/client/models"
	"github.com/dmitrijs2005/hotelpanel/internal/client/nav"
)

var getMultiline = GetMultiline

func (a *App) Departments(ctx context.Context) error {
	return a.protected(ctx, nav.Departments, func(ctx context.Context) error {
		depts, err := a.departmentService.List(ctx)
		if err != nil {
			return a.fail(err, "Failed to load departments")
		}
		if len(depts) == 0 {
			a.println("No departments found.")
			return nil
		}

		rows := make([][]string, 0, len(depts))
		for _, d := range depts {
			desc := d.Description
			if desc == "" {
				desc = "No description provided."
			}
			rows = append(rows, []string{d.ID, d.Name, desc})
		}
		a.table([]string{"ID", "NAME", "DESCRIPTION"}, rows)
		return nil
	})
}

func (a *App) DepartmentAdd(ctx context.Context) error {
	return a.protected(ctx, nav.Departments, func(ctx context.Context) error {
		name, err := getSimpleText(a.reader, "Department name", a.out)
		if err != nil {
			return err
		}
		desc, err := getMultiline(a.reader, "Description", a.out)
		if err != nil {
			return err
		}

		if _, err := a.departmentService.Create(ctx, models.Department{Name: name, Description: desc}); err != nil {
			return a.fail(err, "Operation failed")
		}
		a.println("Department added")
		return nil
	})
}

func (a *App) DepartmentEdit(ctx context.Context, id string) error {
	return a.protected(ctx, nav.Departments, func(ctx context.Context) error {
		depts, err := a.departmentService.List(ctx)
		if err != nil {
			return a.fail(err, "Failed to load departments")
		}

		var cur *models.Department
		for i := range depts {
			if depts[i].ID == id {
				cur = &depts[i]
				break
			}
		}
		if cur == nil {
			return a.fail(fmt.Errorf("department %q %w", id, errNotFound), "Failed to load departments")
		}

		name, err := getWithDefault(a.reader, "Department name", cur.Name, a.out)
		if err != nil {
			return err
		}
		desc, err := getWithDefault(a.reader, "Description", cur.Description, a.out)
		if err != nil {
			return err
		}

		if _, err := a.departmentService.Update(ctx, id, models.Department{Name: name, Description: desc}); err != nil {
			return a.fail(err, "Operation failed")
		}
		a.println("Department updated")
		return nil
	})
}

func (a *App) DepartmentDelete(ctx context.Context, id string) error {
	return a.protected(ctx, nav.Departments, func(ctx context.Context) error {
		ok, err := a.confirm("Are you sure? This cannot be undone.")
		if err != nil || !ok {
			return err
		}
		if err := a.departmentService.Delete(ctx, id); err != nil {
			return a.fail(err, "Failed to delete department")
		}
		a.println("Department deleted")
		return nil
	})
}
