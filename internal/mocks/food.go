package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"github.com/pageza/foodcourt/backend/internal/models"
	"github.com/pageza/foodcourt/backend/internal/service"
	"github.com/pageza/foodcourt/backend/internal/types"
)

// MockFoodService is a mock implementation of the FoodService interface
type MockFoodService struct {
	mock.Mock
}

func (m *MockFoodService) List(ctx context.Context, p service.ListParams) (service.ListResult[models.Food], error) {
	args := m.Called(ctx, p)
	return args.Get(0).(service.ListResult[models.Food]), args.Error(1)
}

func (m *MockFoodService) Get(ctx context.Context, id uint) (*models.Food, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Food), args.Error(1)
}

func (m *MockFoodService) Create(ctx context.Context, req types.CreateFoodRequest) (*models.Food, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Food), args.Error(1)
}

func (m *MockFoodService) Update(ctx context.Context, id uint, req types.PatchFoodRequest) (*models.Food, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Food), args.Error(1)
}

func (m *MockFoodService) Delete(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

// MockImageService is a mock implementation of the ImageService interface
type MockImageService struct {
	mock.Mock
}

func (m *MockImageService) Upload(ctx context.Context, r io.Reader) (string, error) {
	args := m.Called(ctx, r)
	return args.String(0), args.Error(1)
}

func (m *MockImageService) Discard(ctx context.Context, ref string) error {
	args := m.Called(ctx, ref)
	return args.Error(0)
}
