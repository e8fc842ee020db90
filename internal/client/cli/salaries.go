package cli

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/dmitrijs2005/hotelpanel/internal/client/models"
	"github.com/dmitrijs2005/hotelpanel/internal/client/nav"
	"github.com/dmitrijs2005/hotelpanel/internal/client/report"
)

// now is a test seam for form defaults.
var now = time.Now

func (a *App) Salaries(ctx context.Context) error {
	return a.protected(ctx, nav.Salaries, func(ctx context.Context) error {
		list, err := a.salaryService.List(ctx)
		if err != nil {
			return a.fail(err, "Failed to load salary data")
		}
		if len(list) == 0 {
			a.println("No salary records found.")
			return nil
		}

		rows := make([][]string, 0, len(list))
		for _, s := range list {
			rows = append(rows, []string{
				s.ID,
				s.StaffName(),
				fmt.Sprintf("%s %d", s.Month, s.Year),
				"$" + strconv.FormatFloat(s.Amount, 'f', -1, 64),
				shortDate(s.PaymentDate),
				string(s.Status),
			})
		}
		a.table([]string{"ID", "STAFF", "PERIOD", "AMOUNT", "PAYMENT DATE", "STATUS"}, rows)
		return nil
	})
}

func (a *App) SalaryAdd(ctx context.Context) error {
	return a.protected(ctx, nav.Salaries, func(ctx context.Context) error {
		staff, err := a.staffService.List(ctx, "")
		if err != nil {
			return a.fail(err, "Failed to load salary data")
		}
		rows := make([][]string, 0, len(staff))
		for _, s := range staff {
			rows = append(rows, []string{s.ID, s.FullName()})
		}
		a.table([]string{"STAFF ID", "NAME"}, rows)

		in, err := a.salaryForm()
		if err != nil {
			return a.fail(err, "Operation failed")
		}
		if _, err := a.salaryService.Create(ctx, in); err != nil {
			return a.fail(err, "Operation failed")
		}
		a.println("Salary record added")
		return nil
	})
}

func (a *App) salaryForm() (models.Salary, error) {
	t := now()
	ask := func(prompt, def string) (string, error) {
		return getWithDefault(a.reader, prompt, def, a.out)
	}

	staffID, err := ask("Staff ID", "")
	if err != nil {
		return models.Salary{}, err
	}
	amountText, err := ask("Amount ($)", "")
	if err != nil {
		return models.Salary{}, err
	}
	paymentDate, err := ask("Payment date (YYYY-MM-DD)", t.Format(time.DateOnly))
	if err != nil {
		return models.Salary{}, err
	}
	month, err := ask("Month", t.Month().String())
	if err != nil {
		return models.Salary{}, err
	}
	yearText, err := ask("Year", strconv.Itoa(t.Year()))
	if err != nil {
		return models.Salary{}, err
	}
	status, err := ask("Status (paid/pending)", string(models.SalaryPaid))
	if err != nil {
		return models.Salary{}, err
	}

	amount, err := strconv.ParseFloat(amountText, 64)
	if err != nil {
		return models.Salary{}, fmt.Errorf("%w: amount must be a number", models.ErrValidation)
	}
	year, err := strconv.Atoi(yearText)
	if err != nil {
		return models.Salary{}, fmt.Errorf("%w: year must be a whole number", models.ErrValidation)
	}

	return models.Salary{
		Staff:       models.RefTo[models.Staff](staffID),
		Amount:      amount,
		PaymentDate: paymentDate,
		Status:      models.SalaryStatus(status),
		Month:       month,
		Year:        year,
	}, nil
}

func (a *App) SalaryDelete(ctx context.Context, id string) error {
	return a.protected(ctx, nav.Salaries, func(ctx context.Context) error {
		ok, err := a.confirm("Delete this salary record?")
		if err != nil || !ok {
			return err
		}
		if err := a.salaryService.Delete(ctx, id); err != nil {
			return a.fail(err, "Failed to delete salary")
		}
		a.println("Salary record deleted")
		return nil
	})
}

// Export writes the salary table to an XLSX workbook at path.
func (a *App) Export(ctx context.Context, path string) error {
	return a.protected(ctx, nav.Salaries, func(ctx context.Context) error {
		list, err := a.salaryService.List(ctx)
		if err != nil {
			return a.fail(err, "Failed to load salary data")
		}
		written, err := report.SaveSalaries(path, list)
		if err != nil {
			return a.fail(err, "Export failed")
		}
		a.printf("Exported %d salary records to %s\n", len(list), written)
		return nil
	})
}
