// Package report exports panel data to spreadsheet files.
package report

import (
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/hotelpanel/internal/client/models"
	"github.com/dmitrijs2005/hotelpanel/internal/filex"
	"github.com/xuri/excelize/v2"
)

const SalarySheet = "Salaries"

var salaryHeader = []any{"Staff Name", "Month", "Year", "Amount", "Payment Date", "Status"}

// WriteSalaries writes the payroll table as an XLSX workbook to w.
func WriteSalaries(w io.Writer, salaries []models.Salary) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SalarySheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("create header style: %w", err)
	}
	if err := f.SetSheetRow(SalarySheet, "A1", &salaryHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	if err := f.SetRowStyle(SalarySheet, 1, 1, bold); err != nil {
		return fmt.Errorf("style header: %w", err)
	}

	for i, s := range salaries {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []any{s.StaffName(), s.Month, s.Year, s.Amount, s.PaymentDate, string(s.Status)}
		if err := f.SetSheetRow(SalarySheet, cell, &row); err != nil {
			return fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	if err := f.SetColWidth(SalarySheet, "A", "A", 24); err != nil {
		return err
	}
	if err := f.SetColWidth(SalarySheet, "B", "F", 14); err != nil {
		return err
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

// SaveSalaries writes the workbook to path, creating parent directories.
// It returns the absolute path written.
func SaveSalaries(path string, salaries []models.Salary) (string, error) {
	abs, err := filex.EnsureParentDir(path)
	if err != nil {
		return "", err
	}

	out, err := os.Create(abs)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", abs, err)
	}
	if err := WriteSalaries(out, salaries); err != nil {
		_ = out.Close()
		return "", err
	}
	if err := out.Close(); err != nil {
		return "", err
	}
	return abs, nil
}
