// Package xlsx writes the monthly analytics workbook and reads doctor
// rosters from spreadsheets.
package xlsx

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"mrtrack/internal/domain"
)

// Sheet names of the analytics workbook, in tab order.
const (
	SheetFieldReps = "Field Reps"
	SheetDoctors   = "Doctors"
	SheetProducts  = "Products"
	SheetExpenses  = "Expenses"
)

// Workbook is everything rendered into the monthly report.
type Workbook struct {
	Month        string
	GeneratedOn  string
	FieldReps    []domain.FieldRepBusinessStat
	Doctors      []domain.DoctorBusinessStat
	Products     []domain.ProductPromotionStat
	Expenses     []domain.DailyExpense
	ExpenseTotal domain.MonthlyExpenseSummary
}

// WriteWorkbook renders wb as an .xlsx document into w.
func WriteWorkbook(w io.Writer, wb *Workbook) error {
	f := excelize.NewFile()
	defer f.Close()

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("xlsx: header style: %w", err)
	}

	if err := f.SetSheetName("Sheet1", SheetFieldReps); err != nil {
		return fmt.Errorf("xlsx: rename sheet: %w", err)
	}
	for _, name := range []string{SheetDoctors, SheetProducts, SheetExpenses} {
		if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("xlsx: new sheet %s: %w", name, err)
		}
	}

	reps := [][]any{{"Rank", "Field Rep ID", "Field Rep", "Visits", "Total Business", "Incentive"}}
	for i, s := range wb.FieldReps {
		reps = append(reps, []any{i + 1, s.FieldRepID, s.FieldRepName, s.VisitCount, s.TotalBusiness, s.Incentive})
	}
	doctors := [][]any{{"Rank", "Doctor ID", "Doctor", "Visits", "Total Business"}}
	for i, s := range wb.Doctors {
		doctors = append(doctors, []any{i + 1, s.DoctorID, s.DoctorName, s.VisitCount, s.TotalBusiness})
	}
	products := [][]any{{"Rank", "Product ID", "Product", "Times Promoted"}}
	for i, s := range wb.Products {
		products = append(products, []any{i + 1, s.ProductID, s.ProductName, s.Count})
	}
	expenses := [][]any{{"Date", "Field Rep ID", "Field Rep", "HQ Allowance", "Fare Allowance", "Other", "Other Note", "Total"}}
	for _, e := range wb.Expenses {
		expenses = append(expenses, []any{e.Date, e.FieldRepID, e.FieldRepName, e.HQAllowance, e.FareAllowance, e.OtherExpenses, e.OtherExpensesNote, e.TotalExpense})
	}
	t := wb.ExpenseTotal
	expenses = append(expenses,
		[]any{},
		[]any{"Month " + wb.Month, "", "Totals", t.TotalHQ, t.TotalFare, t.TotalOther, "", t.Total},
		[]any{"Approved", t.Approved, "Pending", t.Pending, "Rejected", t.Rejected},
		[]any{"Generated on", wb.GeneratedOn},
	)

	for sheet, rows := range map[string][][]any{
		SheetFieldReps: reps,
		SheetDoctors:   doctors,
		SheetProducts:  products,
		SheetExpenses:  expenses,
	} {
		if err := writeRows(f, sheet, rows); err != nil {
			return err
		}
		if err := f.SetRowStyle(sheet, 1, 1, bold); err != nil {
			return fmt.Errorf("xlsx: style %s: %w", sheet, err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("xlsx: write: %w", err)
	}
	return nil
}

func writeRows(f *excelize.File, sheet string, rows [][]any) error {
	for i := range rows {
		if len(rows[i]) == 0 {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("xlsx: %s row %d: %w", sheet, i+1, err)
		}
		if err := f.SetSheetRow(sheet, cell, &rows[i]); err != nil {
			return fmt.Errorf("xlsx: %s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}
