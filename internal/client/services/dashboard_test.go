package services

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/dmitrijs2005/hotelpanel/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

// goroutines owned by other tests' HTTP clients and databases
var leakOpts = []goleak.Option{
	goleak.IgnoreTopFunction("net/http.(*persistConn).readLoop"),
	goleak.IgnoreTopFunction("net/http.(*persistConn).writeLoop"),
	goleak.IgnoreTopFunction("database/sql.(*DB).connectionOpener"),
	goleak.IgnoreTopFunction("internal/poll.runtime_pollWait"),
}

type fakeStaff struct {
	StaffService
	list  []models.Staff
	err   error
	delay time.Duration
	calls atomic.Int32
}

func (f *fakeStaff) List(ctx context.Context, search string) ([]models.Staff, error) {
	f.calls.Add(1)
	time.Sleep(f.delay)
	return f.list, f.err
}

type fakeDepts struct {
	DepartmentService
	list  []models.Department
	err   error
	delay time.Duration
	done  atomic.Bool
}

func (f *fakeDepts) List(ctx context.Context) ([]models.Department, error) {
	time.Sleep(f.delay)
	f.done.Store(true)
	return f.list, f.err
}

func staffN(n int, inactiveEvery int) []models.Staff {
	out := make([]models.Staff, n)
	for i := range out {
		out[i] = models.Staff{ID: fmt.Sprintf("s%d", i+1), Status: models.StaffActive}
		if inactiveEvery > 0 && (i+1)%inactiveEvery == 0 {
			out[i].Status = models.StaffInactive
		}
	}
	return out
}

func ids(list []models.Staff) []string {
	out := make([]string, len(list))
	for i, s := range list {
		out[i] = s.ID
	}
	return out
}

func TestBuildStats(t *testing.T) {
	stats := BuildStats(staffN(7, 3), []models.Department{{ID: "d1"}, {ID: "d2"}})

	assert.Equal(t, 7, stats.TotalStaff)
	assert.Equal(t, 5, stats.ActiveStaff)
	assert.Equal(t, 2, stats.InactiveStaff)
	assert.Equal(t, 2, stats.TotalDepartments)
	assert.Equal(t, []string{"s7", "s6", "s5", "s4", "s3"}, ids(stats.RecentStaff))
}

func TestBuildStats_FewerThanLimit(t *testing.T) {
	stats := BuildStats(staffN(2, 0), nil)
	assert.Equal(t, []string{"s2", "s1"}, ids(stats.RecentStaff))
	assert.Zero(t, stats.TotalDepartments)

	empty := BuildStats(nil, nil)
	assert.Empty(t, empty.RecentStaff)
}

func TestBuildStats_DoesNotReorderInput(t *testing.T) {
	in := staffN(3, 0)
	_ = BuildStats(in, nil)
	assert.Equal(t, []string{"s1", "s2", "s3"}, ids(in))
}

func TestDashboard_FetchesInParallel(t *testing.T) {
	defer goleak.VerifyNone(t, leakOpts...)

	staff := &fakeStaff{list: staffN(3, 0), delay: 100 * time.Millisecond}
	depts := &fakeDepts{list: []models.Department{{ID: "d1"}}, delay: 100 * time.Millisecond}
	d := NewDashboardService(staff, depts)

	start := time.Now()
	stats, err := d.Stats(context.Background())
	elapsed := time.Since(start)

	require.NoError(t, err)
	assert.Equal(t, 3, stats.TotalStaff)
	assert.Equal(t, 1, stats.TotalDepartments)
	assert.Less(t, elapsed, 190*time.Millisecond)
}

func TestDashboard_WaitsForBothOnFailure(t *testing.T) {
	defer goleak.VerifyNone(t, leakOpts...)

	boom := errors.New("staff endpoint down")
	staff := &fakeStaff{err: boom}
	depts := &fakeDepts{delay: 50 * time.Millisecond}
	d := NewDashboardService(staff, depts)

	_, err := d.Stats(context.Background())

	require.ErrorIs(t, err, boom)
	assert.True(t, depts.done.Load(), "department fetch must settle before Stats returns")
}

func TestDashboard_AgainstBackend(t *testing.T) {
	ctx := context.Background()
	e := loggedIn(t)
	dep := e.backend.SeedDepartment(models.Department{Name: "Front desk"})
	for i := 0; i < 6; i++ {
		s := newStaff(fmt.Sprintf("F%d", i), "L", fmt.Sprintf("s%d@hotel.example", i), dep.ID)
		if i == 0 {
			s.Status = models.StaffInactive
		}
		e.backend.SeedStaff(s)
	}

	d := NewDashboardService(NewStaffService(e.client), NewDepartmentService(e.client))
	stats, err := d.Stats(ctx)
	require.NoError(t, err)

	assert.Equal(t, 6, stats.TotalStaff)
	assert.Equal(t, 5, stats.ActiveStaff)
	assert.Equal(t, 1, stats.InactiveStaff)
	assert.Equal(t, 1, stats.TotalDepartments)
	require.Len(t, stats.RecentStaff, 5)
	assert.Equal(t, "F5", stats.RecentStaff[0].FirstName)
	assert.Len(t, e.backend.CallsTo("/staff"), 1)
	assert.Len(t, e.backend.CallsTo("/department"), 1)
}
