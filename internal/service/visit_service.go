package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"mrtrack/internal/domain"
	"mrtrack/internal/logging"
	"mrtrack/internal/port"
)

// RecordVisitInput is the DTO for logging a doctor visit.
type RecordVisitInput struct {
	FieldRepID          string                 `json:"field_rep_id"`
	DoctorID            string                 `json:"doctor_id" binding:"required"`
	Date                string                 `json:"date"`
	Time                string                 `json:"time"`
	Location            domain.GeoPoint        `json:"location"`
	Notes               string                 `json:"notes"`
	ProductsPromoted    []string               `json:"products_promoted"`
	BusinessGenerated   int64                  `json:"business_generated"`
	ProductWiseBusiness []domain.ProductAmount `json:"product_wise_business"`
}

// RecordShopVisitInput is the DTO for logging a shop visit.
type RecordShopVisitInput struct {
	FieldRepID    string `json:"field_rep_id"`
	ShopName      string `json:"shop_name" binding:"required"`
	Location      string `json:"location"`
	Date          string `json:"date"`
	Time          string `json:"time"`
	Notes         string `json:"notes"`
	ContactPerson string `json:"contact_person"`
}

// VisitService records field activity.
type VisitService interface {
	RecordVisit(ctx context.Context, actor Actor, input *RecordVisitInput) (*domain.DoctorVisit, error)
	RecordShopVisit(ctx context.Context, actor Actor, input *RecordShopVisitInput) (*domain.ShopVisit, error)
	ListShopVisits(ctx context.Context, actor Actor, fieldRepID, date string) ([]domain.ShopVisit, error)
}

type visitService struct {
	repos Repositories
	cache port.StatsCache
	cal   Calendar
}

// NewVisitService creates a new VisitService implementation.
func NewVisitService(repos Repositories, cache port.StatsCache, cal Calendar) VisitService {
	return &visitService{
		repos: repos,
		cache: cache,
		cal:   cal,
	}
}

// activeFieldRep resolves the rep the actor is recording for and checks it can still log work.
func activeFieldRep(ctx context.Context, repo port.FieldRepRepository, actor Actor, fieldRepID string) (*domain.FieldRep, error) {
	id, err := actor.ScopeFieldRep(fieldRepID)
	if err != nil {
		return nil, err
	}
	if id == "" {
		return nil, domain.ErrFieldRepNotFound
	}
	rep, err := repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrFieldRepNotFound
		}
		return nil, fmt.Errorf("loading field rep: %w", err)
	}
	if !rep.IsActive() {
		return nil, domain.ErrFieldRepInactive
	}
	return rep, nil
}

func (s *visitService) resolveDate(date string) (string, error) {
	if date == "" {
		return s.cal.Today(), nil
	}
	if !domain.ValidDate(date) {
		return "", domain.ErrInvalidDate
	}
	return date, nil
}

func (s *visitService) RecordVisit(ctx context.Context, actor Actor, input *RecordVisitInput) (*domain.DoctorVisit, error) {
	rep, err := activeFieldRep(ctx, s.repos.FieldReps, actor, input.FieldRepID)
	if err != nil {
		return nil, err
	}
	date, err := s.resolveDate(input.Date)
	if err != nil {
		return nil, err
	}

	doctor, err := s.repos.Doctors.GetByID(ctx, input.DoctorID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrDoctorNotFound
		}
		return nil, fmt.Errorf("visit.RecordVisit: %w", err)
	}

	promoted := make([]string, 0, len(input.ProductsPromoted))
	for _, id := range input.ProductsPromoted {
		product, err := s.repos.Products.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, domain.ErrProductNotFound
			}
			return nil, fmt.Errorf("visit.RecordVisit: %w", err)
		}
		if !product.IsActive() {
			return nil, domain.ErrProductInactive
		}
		promoted = append(promoted, id)
	}

	if input.BusinessGenerated < 0 {
		return nil, domain.ErrInvalidAmount
	}
	var breakdownTotal int64
	for _, line := range input.ProductWiseBusiness {
		if line.Amount < 0 {
			return nil, domain.ErrInvalidAmount
		}
		breakdownTotal += line.Amount
	}
	business := input.BusinessGenerated
	if business == 0 {
		business = breakdownTotal
	}

	visit := &domain.DoctorVisit{
		ID:                  uuid.New().String(),
		DoctorID:            doctor.ID,
		DoctorName:          doctor.Name,
		FieldRepID:          rep.ID,
		FieldRepName:        rep.Name,
		Date:                date,
		Time:                input.Time,
		Location:            input.Location,
		Notes:               strings.TrimSpace(input.Notes),
		ProductsPromoted:    promoted,
		BusinessGenerated:   business,
		ProductWiseBusiness: input.ProductWiseBusiness,
	}
	if err := s.repos.Visits.Create(ctx, visit); err != nil {
		return nil, fmt.Errorf("visit.RecordVisit: %w", err)
	}

	s.bumpApproval(ctx, rep.ID, date, 1, 0)
	invalidateStats(ctx, s.cache, "visit")
	return visit, nil
}

func (s *visitService) RecordShopVisit(ctx context.Context, actor Actor, input *RecordShopVisitInput) (*domain.ShopVisit, error) {
	rep, err := activeFieldRep(ctx, s.repos.FieldReps, actor, input.FieldRepID)
	if err != nil {
		return nil, err
	}
	date, err := s.resolveDate(input.Date)
	if err != nil {
		return nil, err
	}

	visit := &domain.ShopVisit{
		ID:            uuid.New().String(),
		ShopName:      strings.TrimSpace(input.ShopName),
		Location:      input.Location,
		FieldRepID:    rep.ID,
		FieldRepName:  rep.Name,
		Date:          date,
		Time:          input.Time,
		Notes:         input.Notes,
		ContactPerson: input.ContactPerson,
	}
	if err := s.repos.ShopVisits.Create(ctx, visit); err != nil {
		return nil, fmt.Errorf("visit.RecordShopVisit: %w", err)
	}

	s.bumpApproval(ctx, rep.ID, date, 0, 1)
	return visit, nil
}

func (s *visitService) ListShopVisits(ctx context.Context, actor Actor, fieldRepID, date string) ([]domain.ShopVisit, error) {
	id, err := actor.ScopeFieldRep(fieldRepID)
	if err != nil {
		return nil, err
	}
	if id == "" {
		return nil, domain.ErrFieldRepNotFound
	}
	if date != "" && !domain.ValidDate(date) {
		return nil, domain.ErrInvalidDate
	}
	visits, err := s.repos.ShopVisits.ListByFieldRep(ctx, id, date)
	if err != nil {
		return nil, fmt.Errorf("visit.ListShopVisits: %w", err)
	}
	return visits, nil
}

// bumpApproval keeps the day's pending report counts in step with the logs.
// Days without a report yet, or already decided, are left alone.
func (s *visitService) bumpApproval(ctx context.Context, fieldRepID, date string, visits, shopVisits int) {
	if err := s.repos.Approvals.IncrementCounts(ctx, fieldRepID, date, visits, shopVisits); err != nil {
		logging.LogError(logging.Get(), "visit", "bump_approval", logrus.Fields{"field_rep_id": fieldRepID, "date": date}, err)
	}
}

// invalidateStats drops cached leaderboards after a write; failures are logged.
func invalidateStats(ctx context.Context, cache port.StatsCache, module string) {
	if err := cache.Invalidate(ctx); err != nil {
		logging.LogError(logging.Get(), module, "cache_invalidate", nil, err)
	}
}
