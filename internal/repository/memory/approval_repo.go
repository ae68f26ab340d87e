package memory

import (
	"context"

	"mrtrack/internal/domain"
	"mrtrack/internal/port"
)

type approvalRepo struct {
	s *Store
}

// NewApprovalRepo creates an in-memory ApprovalRepository.
func NewApprovalRepo(s *Store) port.ApprovalRepository {
	return &approvalRepo{s: s}
}

func (r *approvalRepo) Create(_ context.Context, approval *domain.DailyApproval) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i := range r.s.approvals {
		a := &r.s.approvals[i]
		if a.ID == approval.ID || (a.FieldRepID == approval.FieldRepID && a.Date == approval.Date) {
			return domain.ErrDuplicateID
		}
	}
	r.s.approvals = append(r.s.approvals, copyApproval(*approval))
	return nil
}

// pendingLocked finds a stored approval that may still be written to.
// Callers hold the write lock.
func (r *approvalRepo) pendingLocked(id string) (*domain.DailyApproval, error) {
	for i := range r.s.approvals {
		if r.s.approvals[i].ID != id {
			continue
		}
		if r.s.approvals[i].Status != domain.ApprovalStatusPending {
			return nil, domain.ErrApprovalNotPending
		}
		return &r.s.approvals[i], nil
	}
	return nil, domain.ErrNotFound
}

func (r *approvalRepo) SetExpense(_ context.Context, id string, expense *domain.DailyExpense) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	a, err := r.pendingLocked(id)
	if err != nil {
		return err
	}
	e := *expense
	a.Expense = &e
	return nil
}

func (r *approvalRepo) Decide(_ context.Context, approval *domain.DailyApproval) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	a, err := r.pendingLocked(approval.ID)
	if err != nil {
		return err
	}
	a.Status = approval.Status
	a.RejectionReason = approval.RejectionReason
	a.ApprovedBy = approval.ApprovedBy
	a.ApprovedAt = approval.ApprovedAt
	return nil
}

func (r *approvalRepo) IncrementCounts(_ context.Context, fieldRepID, date string, visits, shopVisits int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i := range r.s.approvals {
		a := &r.s.approvals[i]
		if a.FieldRepID == fieldRepID && a.Date == date && a.Status == domain.ApprovalStatusPending {
			a.VisitCount += visits
			a.ShopVisitCount += shopVisits
			return nil
		}
	}
	return nil
}

func (r *approvalRepo) GetByID(_ context.Context, id string) (*domain.DailyApproval, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for i := range r.s.approvals {
		if r.s.approvals[i].ID == id {
			a := copyApproval(r.s.approvals[i])
			return &a, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *approvalRepo) GetByFieldRepAndDate(_ context.Context, fieldRepID, date string) (*domain.DailyApproval, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for i := range r.s.approvals {
		if r.s.approvals[i].FieldRepID == fieldRepID && r.s.approvals[i].Date == date {
			a := copyApproval(r.s.approvals[i])
			return &a, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *approvalRepo) List(_ context.Context) ([]domain.DailyApproval, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]domain.DailyApproval, len(r.s.approvals))
	for i := range r.s.approvals {
		out[i] = copyApproval(r.s.approvals[i])
	}
	return out, nil
}
