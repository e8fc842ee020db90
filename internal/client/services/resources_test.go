package services

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/hotelpanel/internal/client/client"
	"github.com/dmitrijs2005/hotelpanel/internal/client/models"
	"github.com/dmitrijs2005/hotelpanel/internal/client/nav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStaff(first, last, email, deptID string) models.Staff {
	return models.Staff{
		FirstName:  first,
		LastName:   last,
		Email:      email,
		Phone:      "555-0100",
		Department: models.RefTo[models.Department](deptID),
		Role:       models.RoleStaff,
		Status:     models.StaffActive,
	}
}

func TestFilterStaff(t *testing.T) {
	list := []models.Staff{
		{FirstName: "Ann", LastName: "Lee", Email: "ann@hotel.example"},
		{FirstName: "Bob", LastName: "Stone", Email: "bob@frontdesk.example"},
	}

	assert.Len(t, FilterStaff(list, ""), 2)
	assert.Len(t, FilterStaff(list, "   "), 2)
	assert.Equal(t, "Ann", FilterStaff(list, "ANN LE")[0].FirstName)
	assert.Equal(t, "Bob", FilterStaff(list, "frontdesk")[0].FirstName)
	assert.Empty(t, FilterStaff(list, "zed"))
}

func TestStaffService_CRUD(t *testing.T) {
	ctx := context.Background()
	e := loggedIn(t)
	dep := e.backend.SeedDepartment(models.Department{Name: "Housekeeping"})
	svc := NewStaffService(e.client)

	created, err := svc.Create(ctx, newStaff("Ann", "Lee", "ann@hotel.example", dep.ID))
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	assert.Equal(t, "Housekeeping", created.DepartmentName())

	upd := newStaff("Ann", "Lee-Park", "ann@hotel.example", dep.ID)
	upd.Status = models.StaffInactive
	updated, err := svc.Update(ctx, created.ID, upd)
	require.NoError(t, err)
	assert.Equal(t, "Lee-Park", updated.LastName)
	assert.Equal(t, models.StaffInactive, updated.Status)

	list, err := svc.List(ctx, "park")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, created.ID, list[0].ID)

	require.NoError(t, svc.Delete(ctx, created.ID))
	list, err = svc.List(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestStaffService_ListUnpopulatedDepartment(t *testing.T) {
	e := loggedIn(t)
	e.backend.Populate = false
	dep := e.backend.SeedDepartment(models.Department{Name: "Kitchen"})
	e.backend.SeedStaff(newStaff("Ann", "Lee", "ann@hotel.example", dep.ID))

	list, err := NewStaffService(e.client).List(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, dep.ID, list[0].Department.ID)
	assert.Equal(t, "Unknown", list[0].DepartmentName())
}

func TestStaffService_ValidationBeforeNetwork(t *testing.T) {
	e := loggedIn(t)
	svc := NewStaffService(e.client)

	_, err := svc.Create(context.Background(), models.Staff{FirstName: "Ann"})
	require.ErrorIs(t, err, models.ErrValidation)

	_, err = svc.Update(context.Background(), "", newStaff("A", "B", "a@b.example", "d"))
	require.ErrorIs(t, err, ErrMissingID)

	assert.Empty(t, e.backend.Calls())
}

func TestStaffService_DeleteMissing(t *testing.T) {
	e := loggedIn(t)

	err := NewStaffService(e.client).Delete(context.Background(), "nope")

	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 404, apiErr.Status)
	assert.True(t, e.store.Get().Authenticated())
}

func TestDepartmentService_CRUD(t *testing.T) {
	ctx := context.Background()
	e := loggedIn(t)
	svc := NewDepartmentService(e.client)

	d, err := svc.Create(ctx, models.Department{Name: "Spa", Description: "Wellness"})
	require.NoError(t, err)
	require.NotEmpty(t, d.ID)

	d2, err := svc.Update(ctx, d.ID, models.Department{Name: "Spa & Pool"})
	require.NoError(t, err)
	assert.Equal(t, "Spa & Pool", d2.Name)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Spa & Pool", list[0].Name)

	require.NoError(t, svc.Delete(ctx, d.ID))
	list, err = svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	_, err = svc.Create(ctx, models.Department{})
	require.ErrorIs(t, err, models.ErrValidation)
}

func TestSalaryService_CRUD(t *testing.T) {
	ctx := context.Background()
	e := loggedIn(t)
	dep := e.backend.SeedDepartment(models.Department{Name: "Kitchen"})
	st := e.backend.SeedStaff(newStaff("Ann", "Lee", "ann@hotel.example", dep.ID))
	svc := NewSalaryService(e.client)

	sal, err := svc.Create(ctx, models.Salary{
		Staff:       models.RefTo[models.Staff](st.ID),
		Amount:      2500,
		PaymentDate: "2024-05-31",
		Status:      models.SalaryPaid,
		Month:       "May",
		Year:        2024,
	})
	require.NoError(t, err)
	assert.Equal(t, "Ann Lee", sal.StaffName())

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 2500.0, list[0].Amount)

	require.NoError(t, svc.Delete(ctx, sal.ID))
	list, err = svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestResources_401EndsSession(t *testing.T) {
	e := loggedIn(t)
	e.view.current = nav.Salaries
	e.backend.ExpireSessions()

	_, err := NewSalaryService(e.client).List(context.Background())

	require.ErrorIs(t, err, client.ErrUnauthorized)
	assert.False(t, e.store.Get().Authenticated())
	assert.Equal(t, nav.Login, e.view.current)
}

func TestItemPath_EscapesID(t *testing.T) {
	p, err := itemPath("/staff", "a/b c")
	require.NoError(t, err)
	assert.Equal(t, "/staff/a%2Fb%20c", p)
}
