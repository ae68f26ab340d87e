package memory

import (
	"context"

	"mrtrack/internal/domain"
	"mrtrack/internal/port"
)

type doctorRepo struct {
	s *Store
}

// NewDoctorRepo creates an in-memory DoctorRepository.
func NewDoctorRepo(s *Store) port.DoctorRepository {
	return &doctorRepo{s: s}
}

func (r *doctorRepo) Create(_ context.Context, doctor *domain.Doctor) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i := range r.s.doctors {
		if r.s.doctors[i].ID == doctor.ID {
			return domain.ErrDuplicateID
		}
	}
	r.s.doctors = append(r.s.doctors, copyDoctor(*doctor))
	return nil
}

func (r *doctorRepo) GetByID(_ context.Context, id string) (*domain.Doctor, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for i := range r.s.doctors {
		if r.s.doctors[i].ID == id {
			d := copyDoctor(r.s.doctors[i])
			return &d, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *doctorRepo) List(_ context.Context) ([]domain.Doctor, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]domain.Doctor, len(r.s.doctors))
	for i := range r.s.doctors {
		out[i] = copyDoctor(r.s.doctors[i])
	}
	return out, nil
}

type productRepo struct {
	s *Store
}

// NewProductRepo creates an in-memory ProductRepository.
func NewProductRepo(s *Store) port.ProductRepository {
	return &productRepo{s: s}
}

func (r *productRepo) Create(_ context.Context, product *domain.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i := range r.s.products {
		if r.s.products[i].ID == product.ID {
			return domain.ErrDuplicateID
		}
	}
	r.s.products = append(r.s.products, *product)
	return nil
}

func (r *productRepo) GetByID(_ context.Context, id string) (*domain.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for i := range r.s.products {
		if r.s.products[i].ID == id {
			p := r.s.products[i]
			return &p, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *productRepo) List(_ context.Context) ([]domain.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return append(make([]domain.Product, 0, len(r.s.products)), r.s.products...), nil
}

func (r *productRepo) UpdateStatus(_ context.Context, id string, status domain.ProductStatus) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i := range r.s.products {
		if r.s.products[i].ID == id {
			r.s.products[i].Status = status
			return nil
		}
	}
	return domain.ErrNotFound
}

type fieldRepRepo struct {
	s *Store
}

// NewFieldRepRepo creates an in-memory FieldRepRepository.
func NewFieldRepRepo(s *Store) port.FieldRepRepository {
	return &fieldRepRepo{s: s}
}

func (r *fieldRepRepo) Create(_ context.Context, rep *domain.FieldRep) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i := range r.s.fieldReps {
		if r.s.fieldReps[i].ID == rep.ID {
			return domain.ErrDuplicateID
		}
		if rep.Username != "" && r.s.fieldReps[i].Username == rep.Username {
			return domain.ErrDuplicateUsername
		}
	}
	r.s.fieldReps = append(r.s.fieldReps, *rep)
	return nil
}

func (r *fieldRepRepo) GetByID(_ context.Context, id string) (*domain.FieldRep, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for i := range r.s.fieldReps {
		if r.s.fieldReps[i].ID == id {
			rep := r.s.fieldReps[i]
			return &rep, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *fieldRepRepo) List(_ context.Context) ([]domain.FieldRep, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return append(make([]domain.FieldRep, 0, len(r.s.fieldReps)), r.s.fieldReps...), nil
}

func (r *fieldRepRepo) UpdateStatus(_ context.Context, id string, status domain.FieldRepStatus) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i := range r.s.fieldReps {
		if r.s.fieldReps[i].ID == id {
			r.s.fieldReps[i].Status = status
			return nil
		}
	}
	return domain.ErrNotFound
}
