package service

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"mrtrack/internal/analytics"
	"mrtrack/internal/domain"
	"mrtrack/internal/logging"
	"mrtrack/internal/port"
)

// Stats cache keys. Every write path invalidates all of them at once.
const (
	cacheKeyProductStats  = "products"
	cacheKeyDoctorStats   = "doctors"
	cacheKeyFieldRepStats = "field_reps"
)

// Repositories bundles the stores a dataset snapshot is read from.
type Repositories struct {
	Doctors    port.DoctorRepository
	Products   port.ProductRepository
	FieldReps  port.FieldRepRepository
	Visits     port.VisitRepository
	ShopVisits port.ShopVisitRepository
	Approvals  port.ApprovalRepository
	Users      port.UserRepository
	Tasks      port.TaskRepository
}

// LoadDataset reads a consistent-enough snapshot of every log for the engine.
func (r Repositories) LoadDataset(ctx context.Context) (*analytics.Dataset, error) {
	doctors, err := r.Doctors.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading doctors: %w", err)
	}
	products, err := r.Products.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading products: %w", err)
	}
	reps, err := r.FieldReps.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading field reps: %w", err)
	}
	visits, err := r.Visits.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading visits: %w", err)
	}
	shopVisits, err := r.ShopVisits.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading shop visits: %w", err)
	}
	approvals, err := r.Approvals.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading approvals: %w", err)
	}
	data := &analytics.Dataset{
		Doctors:    doctors,
		Products:   products,
		FieldReps:  reps,
		Visits:     visits,
		ShopVisits: shopVisits,
		Approvals:  approvals,
	}
	if r.Tasks != nil {
		if data.Tasks, err = r.Tasks.List(ctx); err != nil {
			return nil, fmt.Errorf("loading tasks: %w", err)
		}
	}
	return data, nil
}

// AnalyticsService exposes the engine's read views over live data.
type AnalyticsService interface {
	ProductStats(ctx context.Context) ([]domain.ProductPromotionStat, error)
	DoctorStats(ctx context.Context) ([]domain.DoctorBusinessStat, error)
	FieldRepStats(ctx context.Context) ([]domain.FieldRepBusinessStat, error)
	Dashboard(ctx context.Context) (*domain.DashboardSummary, error)

	DoctorVisits(ctx context.Context, doctorID string) ([]domain.DoctorVisit, error)
	DoctorActivity(ctx context.Context, doctorID string) (*domain.DoctorActivity, error)
	DoctorsByDistance(ctx context.Context, lat, lng float64) ([]domain.DoctorDistance, error)
	ProductPromotions(ctx context.Context, productID string) (*domain.PromotionCounts, error)

	FieldRepVisits(ctx context.Context, actor Actor, fieldRepID, date string) ([]domain.DoctorVisit, error)
	FieldRepCoverage(ctx context.Context, actor Actor, fieldRepID string) (*domain.CoverageStats, error)
	MonthlyExpenses(ctx context.Context, actor Actor, fieldRepID, month string) ([]domain.DailyExpense, error)
	ExpenseSummary(ctx context.Context, actor Actor, fieldRepID, month string) (*domain.MonthlyExpenseSummary, error)

	DailyTracking(ctx context.Context, actor Actor, date string, filter domain.TrackingFilter) (*domain.DailyTracking, error)
}

type analyticsService struct {
	repos Repositories
	cache port.StatsCache
	cal   Calendar
}

// NewAnalyticsService creates a new AnalyticsService implementation.
func NewAnalyticsService(repos Repositories, cache port.StatsCache, cal Calendar) AnalyticsService {
	return &analyticsService{
		repos: repos,
		cache: cache,
		cal:   cal,
	}
}

func (s *analyticsService) engine(ctx context.Context) (*analytics.Engine, error) {
	data, err := s.repos.LoadDataset(ctx)
	if err != nil {
		return nil, fmt.Errorf("analytics: %w", err)
	}
	return s.cal.Engine(data), nil
}

// cached serves key from the stats cache, computing and storing it on a miss.
// The generation is read before the dataset, so a value computed from data
// that a concurrent write has since invalidated is stored under a dead
// generation. Cache failures are logged and fall through to a fresh
// computation that is not stored.
func cached[T any](ctx context.Context, s *analyticsService, key string, compute func(*analytics.Engine) T) (T, error) {
	var out T
	gen, genErr := s.cache.Generation(ctx)
	if genErr != nil {
		logging.LogError(logging.Get(), "analytics", "cache_generation", logrus.Fields{"key": key}, genErr)
	} else {
		hit, err := s.cache.Get(ctx, gen, key, &out)
		if err != nil {
			logging.LogError(logging.Get(), "analytics", "cache_get", logrus.Fields{"key": key}, err)
		}
		if hit {
			return out, nil
		}
	}

	e, err := s.engine(ctx)
	if err != nil {
		return out, err
	}
	out = compute(e)
	if genErr != nil {
		return out, nil
	}
	if err := s.cache.Set(ctx, gen, key, out); err != nil {
		logging.LogError(logging.Get(), "analytics", "cache_set", logrus.Fields{"key": key}, err)
	}
	return out, nil
}

func (s *analyticsService) ProductStats(ctx context.Context) ([]domain.ProductPromotionStat, error) {
	return cached(ctx, s, cacheKeyProductStats, (*analytics.Engine).ProductPromotionStats)
}

func (s *analyticsService) DoctorStats(ctx context.Context) ([]domain.DoctorBusinessStat, error) {
	return cached(ctx, s, cacheKeyDoctorStats, (*analytics.Engine).DoctorBusinessStats)
}

func (s *analyticsService) FieldRepStats(ctx context.Context) ([]domain.FieldRepBusinessStat, error) {
	return cached(ctx, s, cacheKeyFieldRepStats, (*analytics.Engine).FieldRepBusinessStats)
}

func (s *analyticsService) Dashboard(ctx context.Context) (*domain.DashboardSummary, error) {
	e, err := s.engine(ctx)
	if err != nil {
		return nil, err
	}
	summary := e.DashboardSummary()
	return &summary, nil
}

// scopeFieldRep applies the actor's rep scope. Unknown reps are not an error:
// every per-rep view is empty or zero for them.
func scopeFieldRep(actor Actor, fieldRepID string) (string, error) {
	id, err := actor.ScopeFieldRep(fieldRepID)
	if err != nil {
		return "", err
	}
	if id == "" {
		return "", domain.ErrFieldRepNotFound
	}
	return id, nil
}

func (s *analyticsService) DoctorVisits(ctx context.Context, doctorID string) ([]domain.DoctorVisit, error) {
	e, err := s.engine(ctx)
	if err != nil {
		return nil, err
	}
	return e.VisitHistoryForDoctor(doctorID), nil
}

func (s *analyticsService) DoctorActivity(ctx context.Context, doctorID string) (*domain.DoctorActivity, error) {
	e, err := s.engine(ctx)
	if err != nil {
		return nil, err
	}
	activity := e.DoctorActivity(doctorID)
	return &activity, nil
}

func (s *analyticsService) DoctorsByDistance(ctx context.Context, lat, lng float64) ([]domain.DoctorDistance, error) {
	e, err := s.engine(ctx)
	if err != nil {
		return nil, err
	}
	return e.DoctorsByDistance(lat, lng), nil
}

func (s *analyticsService) ProductPromotions(ctx context.Context, productID string) (*domain.PromotionCounts, error) {
	e, err := s.engine(ctx)
	if err != nil {
		return nil, err
	}
	counts := e.ProductPromotionCounts(productID)
	return &counts, nil
}

func (s *analyticsService) FieldRepVisits(ctx context.Context, actor Actor, fieldRepID, date string) ([]domain.DoctorVisit, error) {
	id, err := scopeFieldRep(actor, fieldRepID)
	if err != nil {
		return nil, err
	}
	if date != "" && !domain.ValidDate(date) {
		return nil, domain.ErrInvalidDate
	}
	e, err := s.engine(ctx)
	if err != nil {
		return nil, err
	}
	return e.VisitsForFieldRep(id, date), nil
}

func (s *analyticsService) FieldRepCoverage(ctx context.Context, actor Actor, fieldRepID string) (*domain.CoverageStats, error) {
	id, err := scopeFieldRep(actor, fieldRepID)
	if err != nil {
		return nil, err
	}
	e, err := s.engine(ctx)
	if err != nil {
		return nil, err
	}
	stats := e.FieldRepCoverageStats(id)
	return &stats, nil
}

func (s *analyticsService) MonthlyExpenses(ctx context.Context, actor Actor, fieldRepID, month string) ([]domain.DailyExpense, error) {
	id, err := scopeFieldRep(actor, fieldRepID)
	if err != nil {
		return nil, err
	}
	if month == "" {
		month = s.cal.Today()[:7]
	} else if !domain.ValidMonth(month) {
		return nil, domain.ErrInvalidMonth
	}
	e, err := s.engine(ctx)
	if err != nil {
		return nil, err
	}
	return e.MonthlyExpenses(id, month), nil
}

// ExpenseSummary rolls up a month. An admin passing an empty rep gets the
// whole team; an MR user always gets their own rep.
func (s *analyticsService) ExpenseSummary(ctx context.Context, actor Actor, fieldRepID, month string) (*domain.MonthlyExpenseSummary, error) {
	id, err := actor.ScopeFieldRep(fieldRepID)
	if err != nil {
		return nil, err
	}
	if month == "" {
		month = s.cal.Today()[:7]
	} else if !domain.ValidMonth(month) {
		return nil, domain.ErrInvalidMonth
	}
	e, err := s.engine(ctx)
	if err != nil {
		return nil, err
	}
	summary := e.MonthlyExpenseSummary(id, month)
	return &summary, nil
}

// DailyTracking is the admin's live roster view for one day, today by default.
func (s *analyticsService) DailyTracking(ctx context.Context, actor Actor, date string, filter domain.TrackingFilter) (*domain.DailyTracking, error) {
	if !actor.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	if date == "" {
		date = s.cal.Today()
	} else if !domain.ValidDate(date) {
		return nil, domain.ErrInvalidDate
	}
	switch filter.Status {
	case "", domain.TrackingWorking, domain.TrackingOff, domain.TrackingInactive:
	default:
		return nil, fmt.Errorf("%w: unknown tracking status %q", domain.ErrInvalidStatus, filter.Status)
	}
	e, err := s.engine(ctx)
	if err != nil {
		return nil, err
	}
	tracking := e.DailyTracking(date, filter)
	return &tracking, nil
}
