package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"mrtrack/internal/domain"
	"mrtrack/internal/service"
)

// MockVisitService is a mock implementation of service.VisitService.
type MockVisitService struct {
	mock.Mock
}

func (m *MockVisitService) RecordVisit(ctx context.Context, actor service.Actor, input *service.RecordVisitInput) (*domain.DoctorVisit, error) {
	args := m.Called(ctx, actor, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DoctorVisit), args.Error(1)
}

func (m *MockVisitService) RecordShopVisit(ctx context.Context, actor service.Actor, input *service.RecordShopVisitInput) (*domain.ShopVisit, error) {
	args := m.Called(ctx, actor, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ShopVisit), args.Error(1)
}

func (m *MockVisitService) ListShopVisits(ctx context.Context, actor service.Actor, fieldRepID, date string) ([]domain.ShopVisit, error) {
	args := m.Called(ctx, actor, fieldRepID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ShopVisit), args.Error(1)
}

// MockExpenseService is a mock implementation of service.ExpenseService.
type MockExpenseService struct {
	mock.Mock
}

func (m *MockExpenseService) Submit(ctx context.Context, actor service.Actor, input *service.SubmitExpenseInput) (*domain.DailyApproval, error) {
	args := m.Called(ctx, actor, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DailyApproval), args.Error(1)
}

// MockApprovalService is a mock implementation of service.ApprovalService.
type MockApprovalService struct {
	mock.Mock
}

func (m *MockApprovalService) List(ctx context.Context, actor service.Actor, filter domain.ApprovalFilter) (*domain.ApprovalList, error) {
	args := m.Called(ctx, actor, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ApprovalList), args.Error(1)
}

func (m *MockApprovalService) GetByID(ctx context.Context, actor service.Actor, id string) (*domain.DailyApproval, error) {
	args := m.Called(ctx, actor, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DailyApproval), args.Error(1)
}

func (m *MockApprovalService) Approve(ctx context.Context, actor service.Actor, id string) (*domain.DailyApproval, error) {
	args := m.Called(ctx, actor, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DailyApproval), args.Error(1)
}

func (m *MockApprovalService) Reject(ctx context.Context, actor service.Actor, id, reason string) (*domain.DailyApproval, error) {
	args := m.Called(ctx, actor, id, reason)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DailyApproval), args.Error(1)
}

// MockReportService is a mock implementation of service.ReportService.
type MockReportService struct {
	mock.Mock
}

func (m *MockReportService) MonthlyWorkbook(ctx context.Context, month string) (*service.WorkbookReport, error) {
	args := m.Called(ctx, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.WorkbookReport), args.Error(1)
}

func (m *MockReportService) ExportVisitsCSV(ctx context.Context, actor service.Actor, fieldRepID string, w io.Writer) error {
	args := m.Called(ctx, actor, fieldRepID, w)
	return args.Error(0)
}

// MockTaskService is a mock implementation of service.TaskService.
type MockTaskService struct {
	mock.Mock
}

func (m *MockTaskService) Assign(ctx context.Context, actor service.Actor, input *service.AssignTaskInput) (*domain.Task, error) {
	args := m.Called(ctx, actor, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Task), args.Error(1)
}

func (m *MockTaskService) List(ctx context.Context, actor service.Actor, filter domain.TaskFilter) (*domain.TaskList, error) {
	args := m.Called(ctx, actor, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TaskList), args.Error(1)
}

func (m *MockTaskService) Agenda(ctx context.Context, actor service.Actor, fieldRepID string) (*domain.TaskAgenda, error) {
	args := m.Called(ctx, actor, fieldRepID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TaskAgenda), args.Error(1)
}

func (m *MockTaskService) Complete(ctx context.Context, actor service.Actor, id string) (*domain.Task, error) {
	args := m.Called(ctx, actor, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Task), args.Error(1)
}

func (m *MockTaskService) Delete(ctx context.Context, actor service.Actor, id string) error {
	args := m.Called(ctx, actor, id)
	return args.Error(0)
}

// MockPasswordResetService is a mock implementation of service.PasswordResetService.
type MockPasswordResetService struct {
	mock.Mock
}

func (m *MockPasswordResetService) ResetFieldRepPassword(ctx context.Context, actor service.Actor, fieldRepID string) (*service.Credentials, error) {
	args := m.Called(ctx, actor, fieldRepID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Credentials), args.Error(1)
}
