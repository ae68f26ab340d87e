package analytics

import (
	"strings"
	"time"

	"mrtrack/internal/domain"
)

// window holds the calendar-day boundaries derived from the clock.
type window struct {
	todayStr string
	today    time.Time
	weekAgo  time.Time
	monthAgo time.Time
}

func (e *Engine) windows() window {
	todayStr := e.Today()
	today, _ := domain.ParseDate(todayStr)
	return window{
		todayStr: todayStr,
		today:    today,
		weekAgo:  today.AddDate(0, 0, -weekWindowDays),
		monthAgo: today.AddDate(0, 0, -monthWindowDays),
	}
}

// MonthlyExpenseSummary totals the allowances claimed in a month and counts
// the days by approval status. An empty fieldRepID covers every rep. Month
// matching is the same string prefix test used by MonthlyExpenses.
func (e *Engine) MonthlyExpenseSummary(fieldRepID, yearMonth string) domain.MonthlyExpenseSummary {
	summary := domain.MonthlyExpenseSummary{Month: yearMonth, FieldRepID: fieldRepID}
	for i := range e.data.Approvals {
		a := &e.data.Approvals[i]
		if a.Expense == nil || !strings.HasPrefix(a.Date, yearMonth) {
			continue
		}
		if fieldRepID != "" && a.FieldRepID != fieldRepID {
			continue
		}
		summary.TotalHQ += a.Expense.HQAllowance
		summary.TotalFare += a.Expense.FareAllowance
		summary.TotalOther += a.Expense.OtherExpenses
		summary.Days++
		switch a.Status {
		case domain.ApprovalStatusApproved:
			summary.Approved++
		case domain.ApprovalStatusPending:
			summary.Pending++
		case domain.ApprovalStatusRejected:
			summary.Rejected++
		}
	}
	summary.Total = summary.TotalHQ + summary.TotalFare + summary.TotalOther
	return summary
}

// Approvals returns the approvals matching filter in log order, along with
// status counts taken over the whole approval log.
func (e *Engine) Approvals(filter domain.ApprovalFilter) domain.ApprovalList {
	list := domain.ApprovalList{Approvals: make([]domain.DailyApproval, 0)}
	search := strings.ToLower(strings.TrimSpace(filter.Search))
	for i := range e.data.Approvals {
		a := &e.data.Approvals[i]
		switch a.Status {
		case domain.ApprovalStatusPending:
			list.Counts.Pending++
		case domain.ApprovalStatusApproved:
			list.Counts.Approved++
		case domain.ApprovalStatusRejected:
			list.Counts.Rejected++
		}

		if filter.Status != "" && a.Status != filter.Status {
			continue
		}
		if filter.FieldRepID != "" && a.FieldRepID != filter.FieldRepID {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(a.FieldRepName), search) {
			continue
		}
		list.Approvals = append(list.Approvals, *a)
	}
	return list
}

// DashboardSummary computes the admin dashboard headline numbers for today.
func (e *Engine) DashboardSummary() domain.DashboardSummary {
	today := e.Today()
	month := today[:len(domain.MonthLayout)]
	summary := domain.DashboardSummary{
		Date:           today,
		TotalFieldReps: len(e.data.FieldReps),
		TotalDoctors:   len(e.data.Doctors),
	}

	for i := range e.data.Visits {
		v := &e.data.Visits[i]
		if v.Date == today {
			summary.VisitsToday++
		}
		if strings.HasPrefix(v.Date, month) {
			summary.BusinessThisMonth += v.BusinessGenerated
		}
	}
	for i := range e.data.FieldReps {
		if e.data.FieldReps[i].IsActive() {
			summary.ActiveFieldReps++
		}
	}
	for i := range e.data.Products {
		if e.data.Products[i].IsActive() {
			summary.ActiveProducts++
		}
	}
	for i := range e.data.Approvals {
		if e.data.Approvals[i].Status == domain.ApprovalStatusPending {
			summary.PendingApprovals++
		}
	}
	return summary
}
