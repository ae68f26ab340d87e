package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"mrtrack/internal/domain"
	"mrtrack/internal/service"
)

// MockAnalyticsService is a mock implementation of service.AnalyticsService.
type MockAnalyticsService struct {
	mock.Mock
}

func (m *MockAnalyticsService) ProductStats(ctx context.Context) ([]domain.ProductPromotionStat, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ProductPromotionStat), args.Error(1)
}

func (m *MockAnalyticsService) DoctorStats(ctx context.Context) ([]domain.DoctorBusinessStat, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DoctorBusinessStat), args.Error(1)
}

func (m *MockAnalyticsService) FieldRepStats(ctx context.Context) ([]domain.FieldRepBusinessStat, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FieldRepBusinessStat), args.Error(1)
}

func (m *MockAnalyticsService) Dashboard(ctx context.Context) (*domain.DashboardSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DashboardSummary), args.Error(1)
}

func (m *MockAnalyticsService) DoctorVisits(ctx context.Context, doctorID string) ([]domain.DoctorVisit, error) {
	args := m.Called(ctx, doctorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DoctorVisit), args.Error(1)
}

func (m *MockAnalyticsService) DoctorActivity(ctx context.Context, doctorID string) (*domain.DoctorActivity, error) {
	args := m.Called(ctx, doctorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DoctorActivity), args.Error(1)
}

func (m *MockAnalyticsService) DoctorsByDistance(ctx context.Context, lat, lng float64) ([]domain.DoctorDistance, error) {
	args := m.Called(ctx, lat, lng)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DoctorDistance), args.Error(1)
}

func (m *MockAnalyticsService) ProductPromotions(ctx context.Context, productID string) (*domain.PromotionCounts, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PromotionCounts), args.Error(1)
}

func (m *MockAnalyticsService) FieldRepVisits(ctx context.Context, actor service.Actor, fieldRepID, date string) ([]domain.DoctorVisit, error) {
	args := m.Called(ctx, actor, fieldRepID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DoctorVisit), args.Error(1)
}

func (m *MockAnalyticsService) FieldRepCoverage(ctx context.Context, actor service.Actor, fieldRepID string) (*domain.CoverageStats, error) {
	args := m.Called(ctx, actor, fieldRepID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CoverageStats), args.Error(1)
}

func (m *MockAnalyticsService) MonthlyExpenses(ctx context.Context, actor service.Actor, fieldRepID, month string) ([]domain.DailyExpense, error) {
	args := m.Called(ctx, actor, fieldRepID, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DailyExpense), args.Error(1)
}

func (m *MockAnalyticsService) ExpenseSummary(ctx context.Context, actor service.Actor, fieldRepID, month string) (*domain.MonthlyExpenseSummary, error) {
	args := m.Called(ctx, actor, fieldRepID, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MonthlyExpenseSummary), args.Error(1)
}

func (m *MockAnalyticsService) DailyTracking(ctx context.Context, actor service.Actor, date string, filter domain.TrackingFilter) (*domain.DailyTracking, error) {
	args := m.Called(ctx, actor, date, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DailyTracking), args.Error(1)
}
