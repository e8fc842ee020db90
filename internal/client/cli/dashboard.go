package cli

import (
	"context"

	"github.com/dmitrijs2005/hotelpanel/internal/client/nav"
)

// Dashboard prints the staff and department totals and the most recently
// added staff members.
func (a *App) Dashboard(ctx context.Context) error {
	return a.protected(ctx, nav.Dashboard, func(ctx context.Context) error {
		stats, err := a.dashboardService.Stats(ctx)
		if err != nil {
			return a.fail(err, "Failed to load dashboard data")
		}

		a.println("Dashboard Overview")
		a.table(nil, [][]string{
			{"Total Staff", itoa(stats.TotalStaff)},
			{"Active Staff", itoa(stats.ActiveStaff)},
			{"Inactive Staff", itoa(stats.InactiveStaff)},
			{"Departments", itoa(stats.TotalDepartments)},
		})

		a.println()
		a.println("Recently Added Staff")
		if len(stats.RecentStaff) == 0 {
			a.println("No recent staff found.")
			return nil
		}
		rows := make([][]string, 0, len(stats.RecentStaff))
		for _, s := range stats.RecentStaff {
			rows = append(rows, []string{s.FullName(), s.Email, string(s.Status)})
		}
		a.table([]string{"NAME", "EMAIL", "STATUS"}, rows)
		return nil
	})
}
