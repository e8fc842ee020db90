package cli

import (
	"context"
	"strconv"

	"github.com/dmitrijs2005/hotelpanel/internal/client/client"
	"github.com/dmitrijs2005/hotelpanel/internal/client/storage"
)

func itoa(n int) string { return strconv.Itoa(n) }

// Status prints who is signed in, the current screen and the backend in use.
func (a *App) Status(_ context.Context) error {
	s := a.store.Get()
	if s.Authenticated() {
		a.printf("Signed in as %s <%s> (%s)\n", s.User.Name, s.User.Email, orDash(s.User.Role))
	} else {
		a.println("Not signed in")
	}
	a.printf("Screen:  %s\n", a.Current())
	a.printf("Backend: %s\n", a.api.BaseURL())
	return nil
}

// APIURL shows, stores or removes the backend URL override. A stored
// override is read at start-up, so changes apply on the next run.
func (a *App) APIURL(ctx context.Context, arg string) error {
	switch arg {
	case "":
		a.printf("Backend: %s\n", a.api.BaseURL())
		v, err := a.repo.Get(ctx, storage.KeyAPIURL)
		if err != nil {
			return a.fail(err, "Could not read the saved API URL")
		}
		if len(v) > 0 {
			a.printf("Saved override: %s\n", v)
		}
		return nil

	case "reset":
		if err := client.ClearBaseURLOverride(ctx, a.repo); err != nil {
			return a.fail(err, "Could not reset the API URL")
		}
		a.println("API URL override removed. Restart hotelctl to apply.")
		return nil
	}

	if err := client.SetBaseURLOverride(ctx, a.repo, arg); err != nil {
		a.println(err.Error())
		return err
	}
	a.println("API URL saved. Restart hotelctl to apply.")
	return nil
}

// Stats prints the request counters collected by the API client.
func (a *App) Stats(_ context.Context) error {
	lines, err := client.Summary(a.metrics)
	if err != nil {
		return a.fail(err, "Could not read metrics")
	}
	if len(lines) == 0 {
		a.println("No requests made yet.")
		return nil
	}
	for _, l := range lines {
		a.println(l)
	}
	return nil
}
