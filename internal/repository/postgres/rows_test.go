package postgres

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mrtrack/internal/domain"
)

func TestDoctorRow_ToDomain_Location(t *testing.T) {
	row := doctorRow{ID: "d1", Lat: sql.NullFloat64{Float64: 19.1, Valid: true}, Lng: sql.NullFloat64{Float64: 72.8, Valid: true}}
	d := row.toDomain()
	require.NotNil(t, d.Location)
	assert.Equal(t, 19.1, d.Location.Lat)

	row = doctorRow{ID: "d2"}
	assert.Nil(t, row.toDomain().Location)
}

func TestVisitRow_ToDomain_DecodesJSON(t *testing.T) {
	row := visitRow{
		ID:                  "v1",
		ProductsPromoted:    []byte(`["p1","p2"]`),
		ProductWiseBusiness: []byte(`[{"product_id":"p1","amount":1200}]`),
		Lat:                 19.07,
	}
	v, err := row.toDomain()
	require.NoError(t, err)
	assert.Equal(t, []string{"p1", "p2"}, v.ProductsPromoted)
	assert.Equal(t, []domain.ProductAmount{{ProductID: "p1", Amount: 1200}}, v.ProductWiseBusiness)
	assert.Equal(t, 19.07, v.Location.Lat)

	empty, err := (&visitRow{ID: "v2"}).toDomain()
	require.NoError(t, err)
	assert.NotNil(t, empty.ProductsPromoted)
	assert.Empty(t, empty.ProductsPromoted)

	_, err = (&visitRow{ID: "v3", ProductsPromoted: []byte(`{`)}).toDomain()
	assert.Error(t, err)
}

func TestApprovalRow_RoundTripsExpense(t *testing.T) {
	a := domain.DailyApproval{
		ID: "a1", FieldRepID: "mr1", FieldRepName: "Rahul", Date: "2024-01-10",
		Status: domain.ApprovalStatusApproved, ApprovedBy: "Admin", ApprovedAt: "2024-01-11",
		Expense: &domain.DailyExpense{ID: "e1", HQAllowance: 500, FareAllowance: 250, OtherExpenses: 40, TotalExpense: 790},
	}
	row := newApprovalRow(&a)
	assert.True(t, row.ExpenseID.Valid)

	back := row.toDomain()
	require.NotNil(t, back.Expense)
	assert.Equal(t, int64(790), back.Expense.TotalExpense)
	assert.Equal(t, "mr1", back.Expense.FieldRepID)
	assert.Equal(t, "2024-01-10", back.Expense.Date)
	assert.Equal(t, a.Status, back.Status)

	a.Expense = nil
	row = newApprovalRow(&a)
	assert.False(t, row.ExpenseID.Valid)
	assert.Nil(t, row.toDomain().Expense)
}

func TestIsDuplicateKey(t *testing.T) {
	assert.True(t, isDuplicateKey(errors.New(`ERROR: duplicate key value violates unique constraint "field_reps_username_key"`)))
	assert.False(t, isDuplicateKey(errors.New("connection refused")))
	assert.False(t, isDuplicateKey(nil))
}
