package xlsx_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"mrtrack/internal/domain"
	"mrtrack/internal/xlsx"
)

func TestWriteWorkbook(t *testing.T) {
	var buf bytes.Buffer
	err := xlsx.WriteWorkbook(&buf, &xlsx.Workbook{
		Month:       "2024-01",
		GeneratedOn: "2024-01-31",
		FieldReps: []domain.FieldRepBusinessStat{
			{FieldRepID: "mr1", FieldRepName: "Rahul Kumar", TotalBusiness: 1999, VisitCount: 2, Incentive: 99},
		},
		Products: []domain.ProductPromotionStat{{ProductID: "p1", ProductName: "Cardiocare Plus", Count: 4}},
		Expenses: []domain.DailyExpense{
			{Date: "2024-01-05", FieldRepID: "mr1", HQAllowance: 500, FareAllowance: 300, TotalExpense: 800},
		},
		ExpenseTotal: domain.MonthlyExpenseSummary{Total: 800, TotalHQ: 500, TotalFare: 300, Approved: 1},
	})
	require.NoError(t, err)

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{xlsx.SheetFieldReps, xlsx.SheetDoctors, xlsx.SheetProducts, xlsx.SheetExpenses}, f.GetSheetList())

	rows, err := f.GetRows(xlsx.SheetFieldReps)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"1", "mr1", "Rahul Kumar", "2", "1999", "99"}, rows[1])

	doctors, err := f.GetRows(xlsx.SheetDoctors)
	require.NoError(t, err)
	assert.Len(t, doctors, 1)

	total, err := f.GetCellValue(xlsx.SheetExpenses, "H4")
	require.NoError(t, err)
	assert.Equal(t, "800", total)
}

func rosterFile(t *testing.T, rows [][]any) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	for i := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &rows[i]))
	}
	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	return &buf
}

func TestReadDoctors(t *testing.T) {
	buf := rosterFile(t, [][]any{
		{"Name", "ID", "Town", "Latitude", "Longitude"},
		{"Dr. A", "d1", "Mumbai", "19.1", "72.8"},
		{"Dr. B", "d2", "Thane", "", ""},
		{"", "d3", "Nowhere"},
	})

	doctors, err := xlsx.ReadDoctors(buf)
	require.NoError(t, err)
	require.Len(t, doctors, 2)

	assert.Equal(t, "d1", doctors[0].ID)
	assert.Equal(t, "Mumbai", doctors[0].Town)
	require.NotNil(t, doctors[0].Location)
	assert.Equal(t, 72.8, doctors[0].Location.Lng)
	assert.Nil(t, doctors[1].Location)
}

func TestReadDoctors_MissingColumn(t *testing.T) {
	_, err := xlsx.ReadDoctors(rosterFile(t, [][]any{{"Name", "Town"}, {"Dr. A", "Mumbai"}}))
	assert.ErrorContains(t, err, `"id"`)
}
