package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/pageza/foodcourt/backend/internal/models"
	"github.com/pageza/foodcourt/backend/internal/service"
	"github.com/pageza/foodcourt/backend/internal/types"
)

// MockOrderService is a mock implementation of the OrderService interface
type MockOrderService struct {
	mock.Mock
}

func (m *MockOrderService) List(ctx context.Context, p service.ListParams) (service.ListResult[models.Order], error) {
	args := m.Called(ctx, p)
	return args.Get(0).(service.ListResult[models.Order]), args.Error(1)
}

func (m *MockOrderService) Get(ctx context.Context, id uint) (*models.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *MockOrderService) Create(ctx context.Context, req types.CreateOrderRequest) (*models.Order, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *MockOrderService) Update(ctx context.Context, id uint, req types.PatchOrderRequest) (*models.Order, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *MockOrderService) Delete(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}
