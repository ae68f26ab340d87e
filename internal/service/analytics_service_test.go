package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"mrtrack/internal/cache/noop"
	"mrtrack/internal/domain"
	"mrtrack/internal/service"
	"mrtrack/mocks"
)

func newAnalytics() service.AnalyticsService {
	return service.NewAnalyticsService(memoryRepos(), noop.NewStatsCache(), testCalendar())
}

func TestAnalyticsService_ProductStats_CacheMiss(t *testing.T) {
	cache := new(mocks.MockStatsCache)
	svc := service.NewAnalyticsService(memoryRepos(), cache, testCalendar())

	cache.On("Generation", mock.Anything).Return(int64(4), nil)
	cache.On("Get", mock.Anything, int64(4), "products", mock.Anything).Return(false, nil)
	cache.On("Set", mock.Anything, int64(4), "products", mock.Anything).Return(nil)

	stats, err := svc.ProductStats(context.Background())

	require.NoError(t, err)
	require.Len(t, stats, 2)
	// Both products were promoted twice; p1 was seen first.
	assert.Equal(t, "p1", stats[0].ProductID)
	assert.Equal(t, "Cardiocare Plus", stats[0].ProductName)
	assert.Equal(t, 2, stats[0].Count)
	assert.Equal(t, "p2", stats[1].ProductID)
	assert.Equal(t, 2, stats[1].Count)
	cache.AssertExpectations(t)
}

func TestAnalyticsService_ProductStats_CacheHit(t *testing.T) {
	cache := new(mocks.MockStatsCache)
	svc := service.NewAnalyticsService(memoryRepos(), cache, testCalendar())

	cache.On("Generation", mock.Anything).Return(int64(4), nil)
	cache.On("Get", mock.Anything, int64(4), "products", mock.Anything).
		Run(func(args mock.Arguments) {
			dest := args.Get(3).(*[]domain.ProductPromotionStat)
			*dest = []domain.ProductPromotionStat{{ProductID: "cached", Count: 9}}
		}).
		Return(true, nil)

	stats, err := svc.ProductStats(context.Background())

	require.NoError(t, err)
	require.Len(t, stats, 1)
	assert.Equal(t, "cached", stats[0].ProductID)
	cache.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestAnalyticsService_DoctorStats_CacheErrorsFallThrough(t *testing.T) {
	cache := new(mocks.MockStatsCache)
	svc := service.NewAnalyticsService(memoryRepos(), cache, testCalendar())

	cache.On("Generation", mock.Anything).Return(int64(0), nil)
	cache.On("Get", mock.Anything, int64(0), "doctors", mock.Anything).Return(false, errors.New("connection refused"))
	cache.On("Set", mock.Anything, int64(0), "doctors", mock.Anything).Return(errors.New("connection refused"))

	stats, err := svc.DoctorStats(context.Background())

	require.NoError(t, err)
	require.Len(t, stats, 2)
	assert.Equal(t, "d2", stats[0].DoctorID)
	assert.Equal(t, int64(3000), stats[0].TotalBusiness)
	assert.Equal(t, "d1", stats[1].DoctorID)
	assert.Equal(t, int64(1500), stats[1].TotalBusiness)
	assert.Equal(t, 2, stats[1].VisitCount)
}

func TestAnalyticsService_FieldRepStats(t *testing.T) {
	stats, err := newAnalytics().FieldRepStats(context.Background())

	require.NoError(t, err)
	require.Len(t, stats, 2)
	assert.Equal(t, "mr1", stats[0].FieldRepID)
	assert.Equal(t, int64(4000), stats[0].TotalBusiness)
	assert.Equal(t, int64(200), stats[0].Incentive)
	assert.Equal(t, int64(25), stats[1].Incentive)
}

func TestAnalyticsService_Dashboard(t *testing.T) {
	summary, err := newAnalytics().Dashboard(context.Background())

	require.NoError(t, err)
	assert.Equal(t, testToday, summary.Date)
	assert.Equal(t, 1, summary.VisitsToday)
	assert.Equal(t, 1, summary.ActiveFieldReps)
	assert.Equal(t, 2, summary.TotalFieldReps)
	assert.Equal(t, 1, summary.PendingApprovals)
	assert.Equal(t, int64(4000), summary.BusinessThisMonth)
}

func TestAnalyticsService_DoctorVisits(t *testing.T) {
	visits, err := newAnalytics().DoctorVisits(context.Background(), "d1")

	require.NoError(t, err)
	require.Len(t, visits, 2)
	assert.Equal(t, "v1", visits[0].ID)
	assert.Equal(t, "v3", visits[1].ID)
}

func TestAnalyticsService_DoctorReads_UnknownDoctorIsEmpty(t *testing.T) {
	svc := newAnalytics()

	visits, err := svc.DoctorVisits(context.Background(), "nope")
	require.NoError(t, err)
	assert.NotNil(t, visits)
	assert.Empty(t, visits)

	activity, err := svc.DoctorActivity(context.Background(), "nope")
	require.NoError(t, err)
	assert.Equal(t, domain.DoctorActivity{DoctorID: "nope"}, *activity)
}

func TestAnalyticsService_DoctorActivity(t *testing.T) {
	activity, err := newAnalytics().DoctorActivity(context.Background(), "d2")

	require.NoError(t, err)
	assert.Equal(t, 1, activity.WeeklyVisits)
	assert.Equal(t, "2024-03-10", activity.LastVisitDate)
	assert.True(t, activity.VisitedThisWeek)
}

func TestAnalyticsService_DoctorsByDistance(t *testing.T) {
	doctors, err := newAnalytics().DoctorsByDistance(context.Background(), 19.0596, 72.8295)

	require.NoError(t, err)
	require.Len(t, doctors, 2)
	assert.Equal(t, "d2", doctors[0].ID)
	require.NotNil(t, doctors[0].DistanceKm)
	assert.InDelta(t, 0, *doctors[0].DistanceKm, 1e-9)
}

func TestAnalyticsService_ProductPromotions(t *testing.T) {
	counts, err := newAnalytics().ProductPromotions(context.Background(), "p2")

	require.NoError(t, err)
	assert.Equal(t, 0, counts.Today)
	assert.Equal(t, 1, counts.Week)
	assert.Equal(t, 2, counts.Month)
}

func TestAnalyticsService_ProductPromotions_UnknownProductIsZero(t *testing.T) {
	counts, err := newAnalytics().ProductPromotions(context.Background(), "p99")

	require.NoError(t, err)
	assert.Equal(t, domain.PromotionCounts{ProductID: "p99"}, *counts)
}

func TestAnalyticsService_FieldRepVisits_OwnRep(t *testing.T) {
	visits, err := newAnalytics().FieldRepVisits(context.Background(), rahulActor, "", testToday)

	require.NoError(t, err)
	require.Len(t, visits, 1)
	assert.Equal(t, "v1", visits[0].ID)
}

func TestAnalyticsService_FieldRepVisits_OtherRepForbidden(t *testing.T) {
	_, err := newAnalytics().FieldRepVisits(context.Background(), rahulActor, "mr2", "")
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestAnalyticsService_FieldRepVisits_InvalidDate(t *testing.T) {
	_, err := newAnalytics().FieldRepVisits(context.Background(), adminActor, "mr1", "15-03-2024")
	assert.ErrorIs(t, err, domain.ErrInvalidDate)
}

func TestAnalyticsService_FieldRepReads_UnknownRepIsEmpty(t *testing.T) {
	svc := newAnalytics()

	visits, err := svc.FieldRepVisits(context.Background(), adminActor, "mr9", "")
	require.NoError(t, err)
	assert.Empty(t, visits)

	coverage, err := svc.FieldRepCoverage(context.Background(), adminActor, "mr9")
	require.NoError(t, err)
	assert.Zero(t, coverage.DoctorsCovered)
	assert.Equal(t, 2, coverage.TotalDoctors)

	expenses, err := svc.MonthlyExpenses(context.Background(), adminActor, "mr9", "2024-03")
	require.NoError(t, err)
	assert.Empty(t, expenses)

	summary, err := svc.ExpenseSummary(context.Background(), adminActor, "mr9", "2024-03")
	require.NoError(t, err)
	assert.Equal(t, "mr9", summary.FieldRepID)
	assert.Zero(t, summary.Days)
}

func TestAnalyticsService_FieldRepReads_ScopeStillApplies(t *testing.T) {
	svc := newAnalytics()

	_, err := svc.FieldRepCoverage(context.Background(), rahulActor, "mr9")
	assert.ErrorIs(t, err, domain.ErrForbidden)
	_, err = svc.MonthlyExpenses(context.Background(), rahulActor, "mr2", "")
	assert.ErrorIs(t, err, domain.ErrForbidden)
	_, err = svc.ExpenseSummary(context.Background(), rahulActor, "mr9", "")
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestAnalyticsService_FieldRepCoverage(t *testing.T) {
	stats, err := newAnalytics().FieldRepCoverage(context.Background(), adminActor, "mr2")

	require.NoError(t, err)
	assert.Equal(t, 1, stats.DoctorsCovered)
	assert.Equal(t, 2, stats.TotalDoctors)
	assert.Equal(t, 1, stats.ProductSpread)
	assert.Equal(t, []string{"Dr. Priya Patel"}, stats.MissedDoctors)
}

func TestAnalyticsService_MonthlyExpenses_DefaultsToCurrentMonth(t *testing.T) {
	expenses, err := newAnalytics().MonthlyExpenses(context.Background(), rahulActor, "mr1", "")

	require.NoError(t, err)
	require.Len(t, expenses, 1)
	assert.Equal(t, int64(700), expenses[0].TotalExpense)
}

func TestAnalyticsService_MonthlyExpenses_InvalidMonth(t *testing.T) {
	_, err := newAnalytics().MonthlyExpenses(context.Background(), adminActor, "mr1", "2024-3")
	assert.ErrorIs(t, err, domain.ErrInvalidMonth)
}

func TestAnalyticsService_ExpenseSummary_WholeTeam(t *testing.T) {
	summary, err := newAnalytics().ExpenseSummary(context.Background(), adminActor, "", "2024-03")

	require.NoError(t, err)
	assert.Equal(t, "", summary.FieldRepID)
	assert.Equal(t, int64(1000), summary.TotalHQ)
	assert.Equal(t, int64(500), summary.TotalFare)
	assert.Equal(t, int64(1500), summary.Total)
	assert.Equal(t, 1, summary.Approved)
	assert.Equal(t, 1, summary.Pending)
	assert.Equal(t, 2, summary.Days)
}

func TestAnalyticsService_ExpenseSummary_MRPinnedToOwnRep(t *testing.T) {
	summary, err := newAnalytics().ExpenseSummary(context.Background(), rahulActor, "", "2024-03")

	require.NoError(t, err)
	assert.Equal(t, "mr1", summary.FieldRepID)
	assert.Equal(t, int64(700), summary.Total)
	assert.Equal(t, 1, summary.Days)
}

func TestAnalyticsService_ProductStats_StoresUnderGenerationReadFirst(t *testing.T) {
	cache := new(mocks.MockStatsCache)
	svc := service.NewAnalyticsService(memoryRepos(), cache, testCalendar())

	// The generation is bumped by a write after it was read; the stale
	// result must still be offered under the old generation.
	cache.On("Generation", mock.Anything).Return(int64(7), nil).Once()
	cache.On("Get", mock.Anything, int64(7), "products", mock.Anything).Return(false, nil)
	cache.On("Set", mock.Anything, int64(7), "products", mock.Anything).Return(nil)

	_, err := svc.ProductStats(context.Background())

	require.NoError(t, err)
	cache.AssertExpectations(t)
	cache.AssertNumberOfCalls(t, "Generation", 1)
}

func TestAnalyticsService_FieldRepStats_GenerationErrorSkipsCache(t *testing.T) {
	cache := new(mocks.MockStatsCache)
	svc := service.NewAnalyticsService(memoryRepos(), cache, testCalendar())

	cache.On("Generation", mock.Anything).Return(int64(0), errors.New("connection refused"))

	stats, err := svc.FieldRepStats(context.Background())

	require.NoError(t, err)
	require.Len(t, stats, 2)
	cache.AssertNotCalled(t, "Get", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	cache.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestAnalyticsService_DailyTracking(t *testing.T) {
	repos := memoryRepos()
	require.NoError(t, repos.ShopVisits.Create(context.Background(), &domain.ShopVisit{
		ID: "s1", FieldRepID: "mr1", FieldRepName: "Rahul Kumar", Date: testToday, Time: "09:10",
	}))
	svc := service.NewAnalyticsService(repos, noop.NewStatsCache(), testCalendar())

	tracking, err := svc.DailyTracking(context.Background(), adminActor, "", domain.TrackingFilter{})

	require.NoError(t, err)
	assert.Equal(t, testToday, tracking.Date)
	assert.Equal(t, 1, tracking.Working)
	require.Len(t, tracking.Reps, 2)
	assert.Equal(t, domain.TrackingWorking, tracking.Reps[0].Status)
	assert.Equal(t, 1, tracking.Reps[0].DoctorVisits)
	assert.Equal(t, 1, tracking.Reps[0].ShopVisits)
	assert.Equal(t, "09:10", tracking.Reps[0].FirstPunch)
	assert.Equal(t, domain.TrackingInactive, tracking.Reps[1].Status)
	assert.Len(t, tracking.ShopVisits, 1)
}

func TestAnalyticsService_DailyTracking_Validation(t *testing.T) {
	svc := newAnalytics()

	_, err := svc.DailyTracking(context.Background(), rahulActor, "", domain.TrackingFilter{})
	assert.ErrorIs(t, err, domain.ErrForbidden)
	_, err = svc.DailyTracking(context.Background(), adminActor, "15/03/2024", domain.TrackingFilter{})
	assert.ErrorIs(t, err, domain.ErrInvalidDate)
	_, err = svc.DailyTracking(context.Background(), adminActor, "", domain.TrackingFilter{Status: "leave"})
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
}

func TestRepositories_LoadDataset_Failures(t *testing.T) {
	boom := errors.New("connection reset")
	tests := []struct {
		name      string
		breakRepo func(*service.Repositories)
		want      string
	}{
		{"doctors", func(r *service.Repositories) {
			m := new(mocks.MockDoctorRepo)
			m.On("List", mock.Anything).Return(nil, boom)
			r.Doctors = m
		}, "loading doctors"},
		{"products", func(r *service.Repositories) {
			m := new(mocks.MockProductRepo)
			m.On("List", mock.Anything).Return(nil, boom)
			r.Products = m
		}, "loading products"},
		{"field reps", func(r *service.Repositories) {
			m := new(mocks.MockFieldRepRepo)
			m.On("List", mock.Anything).Return(nil, boom)
			r.FieldReps = m
		}, "loading field reps"},
		{"visits", func(r *service.Repositories) {
			m := new(mocks.MockVisitRepo)
			m.On("List", mock.Anything).Return(nil, boom)
			r.Visits = m
		}, "loading visits"},
		{"shop visits", func(r *service.Repositories) {
			m := new(mocks.MockShopVisitRepo)
			m.On("List", mock.Anything).Return(nil, boom)
			r.ShopVisits = m
		}, "loading shop visits"},
		{"approvals", func(r *service.Repositories) {
			m := new(mocks.MockApprovalRepo)
			m.On("List", mock.Anything).Return(nil, boom)
			r.Approvals = m
		}, "loading approvals"},
		{"tasks", func(r *service.Repositories) {
			m := new(mocks.MockTaskRepo)
			m.On("List", mock.Anything).Return(nil, boom)
			r.Tasks = m
		}, "loading tasks"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repos := memoryRepos()
			tt.breakRepo(&repos)

			_, err := repos.LoadDataset(context.Background())

			assert.ErrorIs(t, err, boom)
			assert.ErrorContains(t, err, tt.want)

			svc := service.NewAnalyticsService(repos, noop.NewStatsCache(), testCalendar())
			_, err = svc.Dashboard(context.Background())
			assert.ErrorIs(t, err, boom)
		})
	}
}
