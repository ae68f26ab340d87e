package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"mrtrack/internal/domain"
	"mrtrack/internal/service"
)

// MockMasterService is a mock implementation of service.MasterService.
type MockMasterService struct {
	mock.Mock
}

func (m *MockMasterService) ListDoctors(ctx context.Context) ([]domain.Doctor, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Doctor), args.Error(1)
}

func (m *MockMasterService) GetDoctor(ctx context.Context, id string) (*domain.Doctor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Doctor), args.Error(1)
}

func (m *MockMasterService) CreateDoctor(ctx context.Context, input *service.CreateDoctorInput) (*domain.Doctor, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Doctor), args.Error(1)
}

func (m *MockMasterService) ListProducts(ctx context.Context, actor service.Actor) ([]domain.Product, error) {
	args := m.Called(ctx, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *MockMasterService) CreateProduct(ctx context.Context, input *service.CreateProductInput) (*domain.Product, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockMasterService) SetProductStatus(ctx context.Context, id string, status domain.ProductStatus) (*domain.Product, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockMasterService) ListFieldReps(ctx context.Context) ([]domain.FieldRep, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FieldRep), args.Error(1)
}

func (m *MockMasterService) GetFieldRep(ctx context.Context, actor service.Actor, id string) (*domain.FieldRep, error) {
	args := m.Called(ctx, actor, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FieldRep), args.Error(1)
}

func (m *MockMasterService) CreateFieldRep(ctx context.Context, input *service.CreateFieldRepInput) (*domain.FieldRep, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FieldRep), args.Error(1)
}

func (m *MockMasterService) SetFieldRepStatus(ctx context.Context, id string, status domain.FieldRepStatus) (*domain.FieldRep, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FieldRep), args.Error(1)
}
