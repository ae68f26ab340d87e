// Package memory keeps the roster and the visit and approval logs in process.
// It backs the server when no database is configured and is seeded with the
// demo dataset.
package memory

import (
	"sync"

	"mrtrack/internal/analytics"
	"mrtrack/internal/domain"
)

// Store is the shared state behind every in-memory repository.
type Store struct {
	mu sync.RWMutex

	doctors    []domain.Doctor
	products   []domain.Product
	fieldReps  []domain.FieldRep
	visits     []domain.DoctorVisit
	shopVisits []domain.ShopVisit
	approvals  []domain.DailyApproval
	tasks      []domain.Task
	users      []domain.User
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{}
}

// Load replaces the store contents with data and users.
func (s *Store) Load(data *analytics.Dataset, users []domain.User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.doctors, s.products, s.fieldReps = nil, nil, nil
	s.visits, s.shopVisits, s.approvals, s.tasks = nil, nil, nil, nil
	if data != nil {
		for i := range data.Doctors {
			s.doctors = append(s.doctors, copyDoctor(data.Doctors[i]))
		}
		s.products = append(s.products, data.Products...)
		s.fieldReps = append(s.fieldReps, data.FieldReps...)
		for i := range data.Visits {
			s.visits = append(s.visits, copyVisit(data.Visits[i]))
		}
		s.shopVisits = append(s.shopVisits, data.ShopVisits...)
		for i := range data.Approvals {
			s.approvals = append(s.approvals, copyApproval(data.Approvals[i]))
		}
		s.tasks = append(s.tasks, data.Tasks...)
	}
	s.users = append([]domain.User(nil), users...)
}

func copyDoctor(d domain.Doctor) domain.Doctor {
	if d.Location != nil {
		loc := *d.Location
		d.Location = &loc
	}
	return d
}

func copyVisit(v domain.DoctorVisit) domain.DoctorVisit {
	v.ProductsPromoted = append([]string(nil), v.ProductsPromoted...)
	if v.ProductWiseBusiness != nil {
		v.ProductWiseBusiness = append([]domain.ProductAmount(nil), v.ProductWiseBusiness...)
	}
	return v
}

func copyApproval(a domain.DailyApproval) domain.DailyApproval {
	if a.Expense != nil {
		e := *a.Expense
		a.Expense = &e
	}
	return a
}
