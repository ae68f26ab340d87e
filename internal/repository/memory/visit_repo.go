package memory

import (
	"context"

	"mrtrack/internal/domain"
	"mrtrack/internal/port"
)

type visitRepo struct {
	s *Store
}

// NewVisitRepo creates an in-memory VisitRepository.
func NewVisitRepo(s *Store) port.VisitRepository {
	return &visitRepo{s: s}
}

func (r *visitRepo) Create(_ context.Context, visit *domain.DoctorVisit) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i := range r.s.visits {
		if r.s.visits[i].ID == visit.ID {
			return domain.ErrDuplicateID
		}
	}
	r.s.visits = append(r.s.visits, copyVisit(*visit))
	return nil
}

func (r *visitRepo) List(_ context.Context) ([]domain.DoctorVisit, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]domain.DoctorVisit, len(r.s.visits))
	for i := range r.s.visits {
		out[i] = copyVisit(r.s.visits[i])
	}
	return out, nil
}

func (r *visitRepo) CountByFieldRepAndDate(_ context.Context, fieldRepID, date string) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	n := 0
	for i := range r.s.visits {
		if r.s.visits[i].FieldRepID == fieldRepID && r.s.visits[i].Date == date {
			n++
		}
	}
	return n, nil
}

type shopVisitRepo struct {
	s *Store
}

// NewShopVisitRepo creates an in-memory ShopVisitRepository.
func NewShopVisitRepo(s *Store) port.ShopVisitRepository {
	return &shopVisitRepo{s: s}
}

func (r *shopVisitRepo) Create(_ context.Context, visit *domain.ShopVisit) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i := range r.s.shopVisits {
		if r.s.shopVisits[i].ID == visit.ID {
			return domain.ErrDuplicateID
		}
	}
	r.s.shopVisits = append(r.s.shopVisits, *visit)
	return nil
}

func (r *shopVisitRepo) List(_ context.Context) ([]domain.ShopVisit, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return append(make([]domain.ShopVisit, 0, len(r.s.shopVisits)), r.s.shopVisits...), nil
}

func (r *shopVisitRepo) ListByFieldRep(_ context.Context, fieldRepID, date string) ([]domain.ShopVisit, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]domain.ShopVisit, 0)
	for i := range r.s.shopVisits {
		v := r.s.shopVisits[i]
		if v.FieldRepID == fieldRepID && (date == "" || v.Date == date) {
			out = append(out, v)
		}
	}
	return out, nil
}

func (r *shopVisitRepo) CountByFieldRepAndDate(ctx context.Context, fieldRepID, date string) (int, error) {
	visits, err := r.ListByFieldRep(ctx, fieldRepID, date)
	return len(visits), err
}
