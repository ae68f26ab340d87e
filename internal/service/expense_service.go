package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"mrtrack/internal/domain"
	"mrtrack/internal/port"
)

// SubmitExpenseInput is the DTO for a rep's daily expense claim.
type SubmitExpenseInput struct {
	FieldRepID        string `json:"field_rep_id"`
	Date              string `json:"date"`
	HQAllowance       int64  `json:"hq_allowance"`
	FareAllowance     int64  `json:"fare_allowance"`
	OtherExpenses     int64  `json:"other_expenses"`
	OtherExpensesNote string `json:"other_expenses_note"`
}

// ExpenseService handles daily expense submission.
type ExpenseService interface {
	Submit(ctx context.Context, actor Actor, input *SubmitExpenseInput) (*domain.DailyApproval, error)
}

type expenseService struct {
	repos Repositories
	cache port.StatsCache
	cal   Calendar
}

// NewExpenseService creates a new ExpenseService implementation.
func NewExpenseService(repos Repositories, cache port.StatsCache, cal Calendar) ExpenseService {
	return &expenseService{
		repos: repos,
		cache: cache,
		cal:   cal,
	}
}

// Submit files or replaces the expense for one rep-day. The first submission
// opens that day's pending report; later submissions overwrite the claim
// while it is still pending.
func (s *expenseService) Submit(ctx context.Context, actor Actor, input *SubmitExpenseInput) (*domain.DailyApproval, error) {
	if input.HQAllowance < 0 || input.FareAllowance < 0 || input.OtherExpenses < 0 {
		return nil, domain.ErrInvalidAmount
	}
	rep, err := activeFieldRep(ctx, s.repos.FieldReps, actor, input.FieldRepID)
	if err != nil {
		return nil, err
	}
	date := input.Date
	if date == "" {
		date = s.cal.Today()
	} else if !domain.ValidDate(date) {
		return nil, domain.ErrInvalidDate
	}

	expense := &domain.DailyExpense{
		ID:                fmt.Sprintf("exp-%s-%s", date, rep.ID),
		FieldRepID:        rep.ID,
		FieldRepName:      rep.Name,
		Date:              date,
		HQAllowance:       input.HQAllowance,
		FareAllowance:     input.FareAllowance,
		OtherExpenses:     input.OtherExpenses,
		OtherExpensesNote: strings.TrimSpace(input.OtherExpensesNote),
	}
	expense.Recompute()

	approval, err := s.repos.Approvals.GetByFieldRepAndDate(ctx, rep.ID, date)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		approval, err = s.openApproval(ctx, rep, date, expense)
		if errors.Is(err, domain.ErrDuplicateID) {
			// another submission opened the day first
			approval, err = s.repos.Approvals.GetByFieldRepAndDate(ctx, rep.ID, date)
			if err != nil {
				return nil, fmt.Errorf("expense.Submit: %w", err)
			}
			approval, err = s.replaceExpense(ctx, approval, expense)
		}
	case err != nil:
		return nil, fmt.Errorf("expense.Submit: %w", err)
	default:
		approval, err = s.replaceExpense(ctx, approval, expense)
	}
	if err != nil {
		return nil, err
	}

	invalidateStats(ctx, s.cache, "expense")
	return approval, nil
}

// replaceExpense swaps the claim on an existing report. The write only lands
// while the report is pending, whatever the copy read earlier said.
func (s *expenseService) replaceExpense(ctx context.Context, approval *domain.DailyApproval, expense *domain.DailyExpense) (*domain.DailyApproval, error) {
	if approval.Status.IsTerminal() {
		return nil, domain.ErrApprovalNotPending
	}
	if approval.Expense != nil {
		expense.ID = approval.Expense.ID
	}
	if err := s.repos.Approvals.SetExpense(ctx, approval.ID, expense); err != nil {
		if errors.Is(err, domain.ErrApprovalNotPending) {
			return nil, err
		}
		return nil, fmt.Errorf("expense.Submit: %w", err)
	}
	stored, err := s.repos.Approvals.GetByID(ctx, approval.ID)
	if err != nil {
		return nil, fmt.Errorf("expense.Submit: %w", err)
	}
	return stored, nil
}

func (s *expenseService) openApproval(ctx context.Context, rep *domain.FieldRep, date string, expense *domain.DailyExpense) (*domain.DailyApproval, error) {
	visits, err := s.repos.Visits.CountByFieldRepAndDate(ctx, rep.ID, date)
	if err != nil {
		return nil, fmt.Errorf("expense.Submit: %w", err)
	}
	shopVisits, err := s.repos.ShopVisits.CountByFieldRepAndDate(ctx, rep.ID, date)
	if err != nil {
		return nil, fmt.Errorf("expense.Submit: %w", err)
	}

	approval := &domain.DailyApproval{
		ID:             fmt.Sprintf("approval-%s-%s", date, rep.ID),
		FieldRepID:     rep.ID,
		FieldRepName:   rep.Name,
		Date:           date,
		VisitCount:     visits,
		ShopVisitCount: shopVisits,
		Expense:        expense,
		Status:         domain.ApprovalStatusPending,
	}
	if err := s.repos.Approvals.Create(ctx, approval); err != nil {
		return nil, fmt.Errorf("expense.Submit: %w", err)
	}
	return approval, nil
}
