package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"mrtrack/internal/domain"
)

// MockVisitRepo is a mock implementation of port.VisitRepository.
type MockVisitRepo struct {
	mock.Mock
}

func (m *MockVisitRepo) Create(ctx context.Context, visit *domain.DoctorVisit) error {
	args := m.Called(ctx, visit)
	return args.Error(0)
}

func (m *MockVisitRepo) List(ctx context.Context) ([]domain.DoctorVisit, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DoctorVisit), args.Error(1)
}

func (m *MockVisitRepo) CountByFieldRepAndDate(ctx context.Context, fieldRepID, date string) (int, error) {
	args := m.Called(ctx, fieldRepID, date)
	return args.Int(0), args.Error(1)
}

// MockShopVisitRepo is a mock implementation of port.ShopVisitRepository.
type MockShopVisitRepo struct {
	mock.Mock
}

func (m *MockShopVisitRepo) Create(ctx context.Context, visit *domain.ShopVisit) error {
	args := m.Called(ctx, visit)
	return args.Error(0)
}

func (m *MockShopVisitRepo) List(ctx context.Context) ([]domain.ShopVisit, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ShopVisit), args.Error(1)
}

func (m *MockShopVisitRepo) ListByFieldRep(ctx context.Context, fieldRepID, date string) ([]domain.ShopVisit, error) {
	args := m.Called(ctx, fieldRepID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ShopVisit), args.Error(1)
}

func (m *MockShopVisitRepo) CountByFieldRepAndDate(ctx context.Context, fieldRepID, date string) (int, error) {
	args := m.Called(ctx, fieldRepID, date)
	return args.Int(0), args.Error(1)
}

// MockApprovalRepo is a mock implementation of port.ApprovalRepository.
type MockApprovalRepo struct {
	mock.Mock
}

func (m *MockApprovalRepo) Create(ctx context.Context, approval *domain.DailyApproval) error {
	args := m.Called(ctx, approval)
	return args.Error(0)
}

func (m *MockApprovalRepo) SetExpense(ctx context.Context, id string, expense *domain.DailyExpense) error {
	args := m.Called(ctx, id, expense)
	return args.Error(0)
}

func (m *MockApprovalRepo) Decide(ctx context.Context, approval *domain.DailyApproval) error {
	args := m.Called(ctx, approval)
	return args.Error(0)
}

func (m *MockApprovalRepo) IncrementCounts(ctx context.Context, fieldRepID, date string, visits, shopVisits int) error {
	args := m.Called(ctx, fieldRepID, date, visits, shopVisits)
	return args.Error(0)
}

func (m *MockApprovalRepo) GetByID(ctx context.Context, id string) (*domain.DailyApproval, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DailyApproval), args.Error(1)
}

func (m *MockApprovalRepo) GetByFieldRepAndDate(ctx context.Context, fieldRepID, date string) (*domain.DailyApproval, error) {
	args := m.Called(ctx, fieldRepID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DailyApproval), args.Error(1)
}

func (m *MockApprovalRepo) List(ctx context.Context) ([]domain.DailyApproval, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DailyApproval), args.Error(1)
}

// MockUserRepo is a mock implementation of port.UserRepository.
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepo) GetByFieldRepID(ctx context.Context, fieldRepID string) (*domain.User, error) {
	args := m.Called(ctx, fieldRepID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepo) SetPassword(ctx context.Context, id, passwordHash string) error {
	args := m.Called(ctx, id, passwordHash)
	return args.Error(0)
}

func (m *MockUserRepo) SetActiveForFieldRep(ctx context.Context, fieldRepID string, active bool) error {
	args := m.Called(ctx, fieldRepID, active)
	return args.Error(0)
}

// MockTaskRepo is a mock implementation of port.TaskRepository.
type MockTaskRepo struct {
	mock.Mock
}

func (m *MockTaskRepo) Create(ctx context.Context, task *domain.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *MockTaskRepo) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Task), args.Error(1)
}

func (m *MockTaskRepo) List(ctx context.Context) ([]domain.Task, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Task), args.Error(1)
}

func (m *MockTaskRepo) Complete(ctx context.Context, task *domain.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *MockTaskRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
