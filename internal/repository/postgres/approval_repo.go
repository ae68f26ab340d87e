package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"mrtrack/internal/domain"
	"mrtrack/internal/port"
)

// approvalRow flattens a DailyApproval and its expense into one table row.
// A NULL expense_id means the day has no expense attached.
type approvalRow struct {
	ID                string         `db:"id"`
	FieldRepID        string         `db:"field_rep_id"`
	FieldRepName      string         `db:"field_rep_name"`
	Date              string         `db:"date"`
	VisitCount        int            `db:"visit_count"`
	ShopVisitCount    int            `db:"shop_visit_count"`
	Status            string         `db:"status"`
	RejectionReason   string         `db:"rejection_reason"`
	ApprovedBy        string         `db:"approved_by"`
	ApprovedAt        string         `db:"approved_at"`
	ExpenseID         sql.NullString `db:"expense_id"`
	HQAllowance       int64          `db:"hq_allowance"`
	FareAllowance     int64          `db:"fare_allowance"`
	OtherExpenses     int64          `db:"other_expenses"`
	OtherExpensesNote string         `db:"other_expenses_note"`
	TotalExpense      int64          `db:"total_expense"`
}

func newApprovalRow(a *domain.DailyApproval) approvalRow {
	row := approvalRow{
		ID:              a.ID,
		FieldRepID:      a.FieldRepID,
		FieldRepName:    a.FieldRepName,
		Date:            a.Date,
		VisitCount:      a.VisitCount,
		ShopVisitCount:  a.ShopVisitCount,
		Status:          string(a.Status),
		RejectionReason: a.RejectionReason,
		ApprovedBy:      a.ApprovedBy,
		ApprovedAt:      a.ApprovedAt,
	}
	if e := a.Expense; e != nil {
		row.ExpenseID = sql.NullString{String: e.ID, Valid: true}
		row.HQAllowance = e.HQAllowance
		row.FareAllowance = e.FareAllowance
		row.OtherExpenses = e.OtherExpenses
		row.OtherExpensesNote = e.OtherExpensesNote
		row.TotalExpense = e.TotalExpense
	}
	return row
}

func (r *approvalRow) toDomain() domain.DailyApproval {
	a := domain.DailyApproval{
		ID:              r.ID,
		FieldRepID:      r.FieldRepID,
		FieldRepName:    r.FieldRepName,
		Date:            r.Date,
		VisitCount:      r.VisitCount,
		ShopVisitCount:  r.ShopVisitCount,
		Status:          domain.ApprovalStatus(r.Status),
		RejectionReason: r.RejectionReason,
		ApprovedBy:      r.ApprovedBy,
		ApprovedAt:      r.ApprovedAt,
	}
	if r.ExpenseID.Valid {
		a.Expense = &domain.DailyExpense{
			ID:                r.ExpenseID.String,
			FieldRepID:        r.FieldRepID,
			FieldRepName:      r.FieldRepName,
			Date:              r.Date,
			HQAllowance:       r.HQAllowance,
			FareAllowance:     r.FareAllowance,
			OtherExpenses:     r.OtherExpenses,
			OtherExpensesNote: r.OtherExpensesNote,
			TotalExpense:      r.TotalExpense,
		}
	}
	return a
}

const approvalColumns = `id, field_rep_id, field_rep_name, date, visit_count, shop_visit_count, status,
	rejection_reason, approved_by, approved_at, expense_id, hq_allowance, fare_allowance,
	other_expenses, other_expenses_note, total_expense`

type approvalRepo struct {
	db *sqlx.DB
}

// NewApprovalRepo creates a new PostgreSQL-backed ApprovalRepository.
func NewApprovalRepo(db *sqlx.DB) port.ApprovalRepository {
	return &approvalRepo{db: db}
}

func (r *approvalRepo) Create(ctx context.Context, approval *domain.DailyApproval) error {
	row := newApprovalRow(approval)
	_, err := r.db.NamedExecContext(ctx,
		`INSERT INTO daily_approvals (`+approvalColumns+`)
		 VALUES (:id, :field_rep_id, :field_rep_name, :date, :visit_count, :shop_visit_count, :status,
			:rejection_reason, :approved_by, :approved_at, :expense_id, :hq_allowance, :fare_allowance,
			:other_expenses, :other_expenses_note, :total_expense)`, row)
	if err != nil {
		if isDuplicateKey(err) {
			return domain.ErrDuplicateID
		}
		return fmt.Errorf("approvalRepo.Create: %w", err)
	}
	return nil
}

func (r *approvalRepo) SetExpense(ctx context.Context, id string, expense *domain.DailyExpense) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE daily_approvals SET
			expense_id = $2, hq_allowance = $3, fare_allowance = $4,
			other_expenses = $5, other_expenses_note = $6, total_expense = $7
		 WHERE id = $1 AND status = 'pending'`,
		id, expense.ID, expense.HQAllowance, expense.FareAllowance,
		expense.OtherExpenses, expense.OtherExpensesNote, expense.TotalExpense)
	if err != nil {
		return fmt.Errorf("approvalRepo.SetExpense: %w", err)
	}
	return r.pendingWriteResult(ctx, "approvalRepo.SetExpense", id, result)
}

func (r *approvalRepo) Decide(ctx context.Context, approval *domain.DailyApproval) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE daily_approvals SET
			status = $2, rejection_reason = $3, approved_by = $4, approved_at = $5
		 WHERE id = $1 AND status = 'pending'`,
		approval.ID, string(approval.Status), approval.RejectionReason, approval.ApprovedBy, approval.ApprovedAt)
	if err != nil {
		return fmt.Errorf("approvalRepo.Decide: %w", err)
	}
	return r.pendingWriteResult(ctx, "approvalRepo.Decide", approval.ID, result)
}

// pendingWriteResult tells a decided approval apart from a missing one when a
// pending-only update matched no row.
func (r *approvalRepo) pendingWriteResult(ctx context.Context, op, id string, result sql.Result) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if rows > 0 {
		return nil
	}
	var exists bool
	if err := r.db.GetContext(ctx, &exists, `SELECT EXISTS (SELECT 1 FROM daily_approvals WHERE id = $1)`, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if !exists {
		return domain.ErrNotFound
	}
	return domain.ErrApprovalNotPending
}

func (r *approvalRepo) IncrementCounts(ctx context.Context, fieldRepID, date string, visits, shopVisits int) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE daily_approvals SET
			visit_count = visit_count + $3, shop_visit_count = shop_visit_count + $4
		 WHERE field_rep_id = $1 AND date = $2 AND status = 'pending'`,
		fieldRepID, date, visits, shopVisits)
	if err != nil {
		return fmt.Errorf("approvalRepo.IncrementCounts: %w", err)
	}
	return nil
}

func (r *approvalRepo) GetByID(ctx context.Context, id string) (*domain.DailyApproval, error) {
	return r.getOne(ctx, "approvalRepo.GetByID",
		`SELECT `+approvalColumns+` FROM daily_approvals WHERE id = $1`, id)
}

func (r *approvalRepo) GetByFieldRepAndDate(ctx context.Context, fieldRepID, date string) (*domain.DailyApproval, error) {
	return r.getOne(ctx, "approvalRepo.GetByFieldRepAndDate",
		`SELECT `+approvalColumns+` FROM daily_approvals WHERE field_rep_id = $1 AND date = $2`, fieldRepID, date)
}

func (r *approvalRepo) getOne(ctx context.Context, op, query string, args ...any) (*domain.DailyApproval, error) {
	var row approvalRow
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	a := row.toDomain()
	return &a, nil
}

func (r *approvalRepo) List(ctx context.Context) ([]domain.DailyApproval, error) {
	var rows []approvalRow
	if err := r.db.SelectContext(ctx, &rows, `SELECT `+approvalColumns+` FROM daily_approvals ORDER BY seq`); err != nil {
		return nil, fmt.Errorf("approvalRepo.List: %w", err)
	}
	approvals := make([]domain.DailyApproval, len(rows))
	for i := range rows {
		approvals[i] = rows[i].toDomain()
	}
	return approvals, nil
}
