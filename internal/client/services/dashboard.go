package services

import (
	"context"
	"slices"

	"github.com/dmitrijs2005/hotelpanel/internal/client/models"
	"golang.org/x/sync/errgroup"
)

// RecentStaffLimit is how many of the latest staff members the dashboard
// lists.
const RecentStaffLimit = 5

type DashboardService interface {
	Stats(ctx context.Context) (models.DashboardStats, error)
}

type dashboardService struct {
	staff       StaffService
	departments DepartmentService
}

func NewDashboardService(staff StaffService, departments DepartmentService) DashboardService {
	return &dashboardService{staff: staff, departments: departments}
}

// Stats fetches staff and departments in parallel and waits for both calls
// to finish, even when one of them fails.
func (d *dashboardService) Stats(ctx context.Context) (models.DashboardStats, error) {
	var (
		g     errgroup.Group
		staff []models.Staff
		depts []models.Department
	)

	g.Go(func() error {
		var err error
		staff, err = d.staff.List(ctx, "")
		return err
	})
	g.Go(func() error {
		var err error
		depts, err = d.departments.List(ctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return models.DashboardStats{}, err
	}
	return BuildStats(staff, depts), nil
}

// BuildStats derives the dashboard figures. The backend lists staff oldest
// first, so the recent list is the tail in reverse.
func BuildStats(staff []models.Staff, depts []models.Department) models.DashboardStats {
	stats := models.DashboardStats{
		TotalStaff:       len(staff),
		TotalDepartments: len(depts),
	}
	for _, s := range staff {
		switch s.Status {
		case models.StaffActive:
			stats.ActiveStaff++
		case models.StaffInactive:
			stats.InactiveStaff++
		}
	}

	recent := slices.Clone(staff[max(0, len(staff)-RecentStaffLimit):])
	slices.Reverse(recent)
	stats.RecentStaff = recent
	return stats
}
