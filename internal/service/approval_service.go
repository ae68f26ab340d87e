package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"mrtrack/internal/analytics"
	"mrtrack/internal/domain"
	"mrtrack/internal/logging"
	"mrtrack/internal/port"
)

// ApprovalService drives the back-office review of daily reports.
type ApprovalService interface {
	List(ctx context.Context, actor Actor, filter domain.ApprovalFilter) (*domain.ApprovalList, error)
	GetByID(ctx context.Context, actor Actor, id string) (*domain.DailyApproval, error)
	Approve(ctx context.Context, actor Actor, id string) (*domain.DailyApproval, error)
	Reject(ctx context.Context, actor Actor, id, reason string) (*domain.DailyApproval, error)
}

type approvalService struct {
	repos    Repositories
	cache    port.StatsCache
	notifier port.Notifier
	cal      Calendar
}

// NewApprovalService creates a new ApprovalService implementation.
func NewApprovalService(repos Repositories, cache port.StatsCache, notifier port.Notifier, cal Calendar) ApprovalService {
	return &approvalService{
		repos:    repos,
		cache:    cache,
		notifier: notifier,
		cal:      cal,
	}
}

func (s *approvalService) List(ctx context.Context, actor Actor, filter domain.ApprovalFilter) (*domain.ApprovalList, error) {
	if filter.Status != "" && !domain.ValidApprovalStatuses[filter.Status] {
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrInvalidStatus, filter.Status)
	}
	repID, err := actor.ScopeFieldRep(filter.FieldRepID)
	if err != nil {
		return nil, err
	}
	filter.FieldRepID = repID

	approvals, err := s.repos.Approvals.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("approval.List: %w", err)
	}
	list := analytics.New(&analytics.Dataset{Approvals: approvals}).Approvals(filter)
	return &list, nil
}

func (s *approvalService) GetByID(ctx context.Context, actor Actor, id string) (*domain.DailyApproval, error) {
	approval, err := s.repos.Approvals.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrApprovalNotFound
		}
		return nil, fmt.Errorf("approval.GetByID: %w", err)
	}
	if _, err := actor.ScopeFieldRep(approval.FieldRepID); err != nil {
		return nil, err
	}
	return approval, nil
}

func (s *approvalService) Approve(ctx context.Context, actor Actor, id string) (*domain.DailyApproval, error) {
	return s.decide(ctx, actor, id, func(a *domain.DailyApproval) error {
		return a.Approve(actor.DisplayName(), s.cal.Today())
	})
}

func (s *approvalService) Reject(ctx context.Context, actor Actor, id, reason string) (*domain.DailyApproval, error) {
	return s.decide(ctx, actor, id, func(a *domain.DailyApproval) error {
		return a.Reject(reason)
	})
}

func (s *approvalService) decide(ctx context.Context, actor Actor, id string, transition func(*domain.DailyApproval) error) (*domain.DailyApproval, error) {
	if !actor.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	approval, err := s.GetByID(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if err := transition(approval); err != nil {
		return nil, err
	}
	if err := s.repos.Approvals.Decide(ctx, approval); err != nil {
		switch {
		case errors.Is(err, domain.ErrApprovalNotPending):
			return nil, err
		case errors.Is(err, domain.ErrNotFound):
			return nil, domain.ErrApprovalNotFound
		}
		return nil, fmt.Errorf("approval.decide: %w", err)
	}

	log := logging.Get()
	log.WithFields(logrus.Fields{
		"approval_id":  approval.ID,
		"field_rep_id": approval.FieldRepID,
		"date":         approval.Date,
		"status":       approval.Status,
		"decided_by":   actor.Username,
	}).Info("daily report decided")

	invalidateStats(ctx, s.cache, "approval")
	s.notify(ctx, approval)
	return approval, nil
}

// notify tells the rep about the decision. Delivery problems never undo it.
func (s *approvalService) notify(ctx context.Context, approval *domain.DailyApproval) {
	rep, err := s.repos.FieldReps.GetByID(ctx, approval.FieldRepID)
	if err != nil {
		logging.LogError(logging.Get(), "approval", "load_field_rep", logrus.Fields{"field_rep_id": approval.FieldRepID}, err)
		return
	}
	if rep.Email == "" {
		return
	}
	notice := port.ApprovalNotice{
		ToEmail:  rep.Email,
		ToName:   rep.Name,
		Approval: *approval,
	}
	if err := s.notifier.SendApprovalDecision(ctx, notice); err != nil {
		logging.LogError(logging.Get(), "approval", "notify", logrus.Fields{"approval_id": approval.ID, "to": rep.Email}, err)
	}
}
