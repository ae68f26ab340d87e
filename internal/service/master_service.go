package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"mrtrack/internal/domain"
	"mrtrack/internal/port"
)

// CreateDoctorInput is the DTO for adding a doctor to the roster.
type CreateDoctorInput struct {
	ID             string           `json:"id"`
	Name           string           `json:"name" binding:"required"`
	Qualification  string           `json:"qualification"`
	Specialization string           `json:"specialization"`
	Town           string           `json:"town"`
	Area           string           `json:"area"`
	Phone          string           `json:"phone"`
	Email          string           `json:"email"`
	Location       *domain.GeoPoint `json:"location"`
}

// CreateProductInput is the DTO for adding a product.
type CreateProductInput struct {
	ID          string               `json:"id"`
	Name        string               `json:"name" binding:"required"`
	Category    string               `json:"category"`
	Status      domain.ProductStatus `json:"status"`
	Description string               `json:"description"`
}

// CreateFieldRepInput is the DTO for onboarding a field rep. A non-empty
// Password also provisions the rep's MR login.
type CreateFieldRepInput struct {
	ID        string `json:"id"`
	Name      string `json:"name" binding:"required"`
	Username  string `json:"username" binding:"required"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Territory string `json:"territory"`
	HQ        string `json:"hq"`
	Password  string `json:"password"`
}

// MasterService manages doctors, products and field reps.
type MasterService interface {
	ListDoctors(ctx context.Context) ([]domain.Doctor, error)
	GetDoctor(ctx context.Context, id string) (*domain.Doctor, error)
	CreateDoctor(ctx context.Context, input *CreateDoctorInput) (*domain.Doctor, error)

	ListProducts(ctx context.Context, actor Actor) ([]domain.Product, error)
	CreateProduct(ctx context.Context, input *CreateProductInput) (*domain.Product, error)
	SetProductStatus(ctx context.Context, id string, status domain.ProductStatus) (*domain.Product, error)

	ListFieldReps(ctx context.Context) ([]domain.FieldRep, error)
	GetFieldRep(ctx context.Context, actor Actor, id string) (*domain.FieldRep, error)
	CreateFieldRep(ctx context.Context, input *CreateFieldRepInput) (*domain.FieldRep, error)
	SetFieldRepStatus(ctx context.Context, id string, status domain.FieldRepStatus) (*domain.FieldRep, error)
}

type masterService struct {
	repos Repositories
	cache port.StatsCache
	cal   Calendar
}

// NewMasterService creates a new MasterService implementation.
func NewMasterService(repos Repositories, cache port.StatsCache, cal Calendar) MasterService {
	return &masterService{
		repos: repos,
		cache: cache,
		cal:   cal,
	}
}

func newID(id string) string {
	if id = strings.TrimSpace(id); id != "" {
		return id
	}
	return uuid.New().String()
}

func (s *masterService) ListDoctors(ctx context.Context) ([]domain.Doctor, error) {
	doctors, err := s.repos.Doctors.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("master.ListDoctors: %w", err)
	}
	return doctors, nil
}

func (s *masterService) GetDoctor(ctx context.Context, id string) (*domain.Doctor, error) {
	doctor, err := s.repos.Doctors.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrDoctorNotFound
		}
		return nil, fmt.Errorf("master.GetDoctor: %w", err)
	}
	return doctor, nil
}

func (s *masterService) CreateDoctor(ctx context.Context, input *CreateDoctorInput) (*domain.Doctor, error) {
	doctor := &domain.Doctor{
		ID:             newID(input.ID),
		Name:           strings.TrimSpace(input.Name),
		Qualification:  input.Qualification,
		Specialization: input.Specialization,
		Town:           input.Town,
		Area:           input.Area,
		Phone:          input.Phone,
		Email:          input.Email,
		CreatedAt:      s.cal.Today(),
		Location:       input.Location,
	}
	if err := s.repos.Doctors.Create(ctx, doctor); err != nil {
		if errors.Is(err, domain.ErrDuplicateID) {
			return nil, err
		}
		return nil, fmt.Errorf("master.CreateDoctor: %w", err)
	}
	invalidateStats(ctx, s.cache, "master")
	return doctor, nil
}

// ListProducts returns the full catalogue to admins. MR users only see the
// products currently being promoted.
func (s *masterService) ListProducts(ctx context.Context, actor Actor) ([]domain.Product, error) {
	products, err := s.repos.Products.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("master.ListProducts: %w", err)
	}
	if actor.IsAdmin() {
		return products, nil
	}
	active := make([]domain.Product, 0, len(products))
	for i := range products {
		if products[i].IsActive() {
			active = append(active, products[i])
		}
	}
	return active, nil
}

func (s *masterService) CreateProduct(ctx context.Context, input *CreateProductInput) (*domain.Product, error) {
	status := input.Status
	if status == "" {
		status = domain.ProductStatusActive
	}
	if status != domain.ProductStatusActive && status != domain.ProductStatusInactive {
		return nil, fmt.Errorf("%w: unknown product status %q", domain.ErrInvalidStatus, status)
	}
	product := &domain.Product{
		ID:          newID(input.ID),
		Name:        strings.TrimSpace(input.Name),
		Category:    input.Category,
		Status:      status,
		Description: input.Description,
	}
	if err := s.repos.Products.Create(ctx, product); err != nil {
		if errors.Is(err, domain.ErrDuplicateID) {
			return nil, err
		}
		return nil, fmt.Errorf("master.CreateProduct: %w", err)
	}
	invalidateStats(ctx, s.cache, "master")
	return product, nil
}

func (s *masterService) SetProductStatus(ctx context.Context, id string, status domain.ProductStatus) (*domain.Product, error) {
	if status != domain.ProductStatusActive && status != domain.ProductStatusInactive {
		return nil, fmt.Errorf("%w: unknown product status %q", domain.ErrInvalidStatus, status)
	}
	if err := s.repos.Products.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("master.SetProductStatus: %w", err)
	}
	product, err := s.repos.Products.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("master.SetProductStatus: %w", err)
	}
	invalidateStats(ctx, s.cache, "master")
	return product, nil
}

func (s *masterService) ListFieldReps(ctx context.Context) ([]domain.FieldRep, error) {
	reps, err := s.repos.FieldReps.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("master.ListFieldReps: %w", err)
	}
	return reps, nil
}

func (s *masterService) GetFieldRep(ctx context.Context, actor Actor, id string) (*domain.FieldRep, error) {
	if _, err := actor.ScopeFieldRep(id); err != nil {
		return nil, err
	}
	rep, err := s.repos.FieldReps.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrFieldRepNotFound
		}
		return nil, fmt.Errorf("master.GetFieldRep: %w", err)
	}
	return rep, nil
}

func (s *masterService) CreateFieldRep(ctx context.Context, input *CreateFieldRepInput) (*domain.FieldRep, error) {
	rep := &domain.FieldRep{
		ID:         newID(input.ID),
		Name:       strings.TrimSpace(input.Name),
		Username:   strings.ToLower(strings.TrimSpace(input.Username)),
		Email:      input.Email,
		Phone:      input.Phone,
		Territory:  input.Territory,
		HQ:         input.HQ,
		Status:     domain.FieldRepStatusActive,
		JoinedDate: s.cal.Today(),
	}

	var user *domain.User
	if input.Password != "" {
		hash, err := HashPassword(input.Password)
		if err != nil {
			return nil, fmt.Errorf("master.CreateFieldRep: %w", err)
		}
		user = &domain.User{
			ID:           uuid.New().String(),
			Username:     rep.Username,
			PasswordHash: hash,
			FullName:     rep.Name,
			Role:         domain.RoleMR,
			FieldRepID:   rep.ID,
			IsActive:     true,
		}
		if _, err := s.repos.Users.GetByUsername(ctx, user.Username); err == nil {
			return nil, domain.ErrDuplicateUsername
		} else if !errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("master.CreateFieldRep: %w", err)
		}
	}

	if err := s.repos.FieldReps.Create(ctx, rep); err != nil {
		if errors.Is(err, domain.ErrDuplicateID) || errors.Is(err, domain.ErrDuplicateUsername) {
			return nil, err
		}
		return nil, fmt.Errorf("master.CreateFieldRep: %w", err)
	}
	if user != nil {
		if err := s.repos.Users.Create(ctx, user); err != nil {
			if errors.Is(err, domain.ErrDuplicateUsername) {
				return nil, err
			}
			return nil, fmt.Errorf("master.CreateFieldRep: %w", err)
		}
	}

	invalidateStats(ctx, s.cache, "master")
	return rep, nil
}

// SetFieldRepStatus moves a rep on or off the active roster. The rep's login
// follows, so an inactive rep can no longer sign in.
func (s *masterService) SetFieldRepStatus(ctx context.Context, id string, status domain.FieldRepStatus) (*domain.FieldRep, error) {
	if status != domain.FieldRepStatusActive && status != domain.FieldRepStatusInactive {
		return nil, fmt.Errorf("%w: unknown field rep status %q", domain.ErrInvalidStatus, status)
	}
	if err := s.repos.FieldReps.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrFieldRepNotFound
		}
		return nil, fmt.Errorf("master.SetFieldRepStatus: %w", err)
	}
	if err := s.repos.Users.SetActiveForFieldRep(ctx, id, status == domain.FieldRepStatusActive); err != nil {
		return nil, fmt.Errorf("master.SetFieldRepStatus: %w", err)
	}
	rep, err := s.repos.FieldReps.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("master.SetFieldRepStatus: %w", err)
	}
	invalidateStats(ctx, s.cache, "master")
	return rep, nil
}
