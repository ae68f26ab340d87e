package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"mrtrack/internal/domain"
)

// MockDoctorRepo is a mock implementation of port.DoctorRepository.
type MockDoctorRepo struct {
	mock.Mock
}

func (m *MockDoctorRepo) Create(ctx context.Context, doctor *domain.Doctor) error {
	args := m.Called(ctx, doctor)
	return args.Error(0)
}

func (m *MockDoctorRepo) GetByID(ctx context.Context, id string) (*domain.Doctor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Doctor), args.Error(1)
}

func (m *MockDoctorRepo) List(ctx context.Context) ([]domain.Doctor, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Doctor), args.Error(1)
}

// MockProductRepo is a mock implementation of port.ProductRepository.
type MockProductRepo struct {
	mock.Mock
}

func (m *MockProductRepo) Create(ctx context.Context, product *domain.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepo) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockProductRepo) List(ctx context.Context) ([]domain.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *MockProductRepo) UpdateStatus(ctx context.Context, id string, status domain.ProductStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

// MockFieldRepRepo is a mock implementation of port.FieldRepRepository.
type MockFieldRepRepo struct {
	mock.Mock
}

func (m *MockFieldRepRepo) Create(ctx context.Context, rep *domain.FieldRep) error {
	args := m.Called(ctx, rep)
	return args.Error(0)
}

func (m *MockFieldRepRepo) GetByID(ctx context.Context, id string) (*domain.FieldRep, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FieldRep), args.Error(1)
}

func (m *MockFieldRepRepo) List(ctx context.Context) ([]domain.FieldRep, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FieldRep), args.Error(1)
}

func (m *MockFieldRepRepo) UpdateStatus(ctx context.Context, id string, status domain.FieldRepStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}
