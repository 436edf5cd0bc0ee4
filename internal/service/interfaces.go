package service

import (
	"context"
	"io"

	"github.com/pageza/foodcourt/backend/internal/models"
	"github.com/pageza/foodcourt/backend/internal/types"
)

// IAuthService defines the interface for staff authentication
type IAuthService interface {
	Login(ctx context.Context, email, password string) (string, *models.User, error)
	ValidateToken(token string) (*types.TokenClaims, error)
	GenerateToken(user *models.User) (string, error)
}

// IImageService defines the interface for dish picture uploads
type IImageService interface {
	Upload(ctx context.Context, r io.Reader) (string, error)
	Discard(ctx context.Context, ref string) error
}

// ICategoryService defines the interface for category operations
type ICategoryService interface {
	List(ctx context.Context, p ListParams) (ListResult[models.Category], error)
	Get(ctx context.Context, id uint) (*models.Category, error)
	Create(ctx context.Context, req types.CategoryRequest) (*models.Category, error)
	Update(ctx context.Context, id uint, req types.PatchCategoryRequest) (*models.Category, error)
	Delete(ctx context.Context, id uint) error
}

// IFoodService defines the interface for dish operations
type IFoodService interface {
	List(ctx context.Context, p ListParams) (ListResult[models.Food], error)
	Get(ctx context.Context, id uint) (*models.Food, error)
	Create(ctx context.Context, req types.CreateFoodRequest) (*models.Food, error)
	Update(ctx context.Context, id uint, req types.PatchFoodRequest) (*models.Food, error)
	Delete(ctx context.Context, id uint) error
}

type ISizeService interface {
	List(ctx context.Context, p ListParams) (ListResult[models.Size], error)
	Get(ctx context.Context, id uint) (*models.Size, error)
	Create(ctx context.Context, req types.SizeRequest) (*models.Size, error)
	Update(ctx context.Context, id uint, req types.PatchSizeRequest) (*models.Size, error)
	Delete(ctx context.Context, id uint) error
}

type IMakeupService interface {
	List(ctx context.Context, p ListParams) (ListResult[models.FoodMakeup], error)
	Get(ctx context.Context, id uint) (*models.FoodMakeup, error)
	Create(ctx context.Context, req types.MakeupRequest) (*models.FoodMakeup, error)
	Update(ctx context.Context, id uint, req types.PatchMakeupRequest) (*models.FoodMakeup, error)
	Delete(ctx context.Context, id uint) error
}

type IWeightService interface {
	List(ctx context.Context, p ListParams) (ListResult[models.FoodWeight], error)
	Get(ctx context.Context, id uint) (*models.FoodWeight, error)
	Create(ctx context.Context, req types.WeightRequest) (*models.FoodWeight, error)
	Update(ctx context.Context, id uint, req types.PatchWeightRequest) (*models.FoodWeight, error)
	Delete(ctx context.Context, id uint) error
}

// IOrderService defines the interface for customer orders
type IOrderService interface {
	List(ctx context.Context, p ListParams) (ListResult[models.Order], error)
	Get(ctx context.Context, id uint) (*models.Order, error)
	Create(ctx context.Context, req types.CreateOrderRequest) (*models.Order, error)
	Update(ctx context.Context, id uint, req types.PatchOrderRequest) (*models.Order, error)
	Delete(ctx context.Context, id uint) error
}

type IOrderingFoodService interface {
	List(ctx context.Context, p ListParams) (ListResult[models.OrderingFood], error)
	Get(ctx context.Context, id uint) (*models.OrderingFood, error)
	Create(ctx context.Context, req types.CreateOrderingFoodRequest) (*models.OrderingFood, error)
	Update(ctx context.Context, id uint, req types.PatchOrderingFoodRequest) (*models.OrderingFood, error)
	Delete(ctx context.Context, id uint) error
}

var (
	_ IAuthService         = (*AuthService)(nil)
	_ IImageService        = (*ImageService)(nil)
	_ ICategoryService     = (*CategoryService)(nil)
	_ IFoodService         = (*FoodService)(nil)
	_ ISizeService         = (*SizeService)(nil)
	_ IMakeupService       = (*MakeupService)(nil)
	_ IWeightService       = (*WeightService)(nil)
	_ IOrderService        = (*OrderService)(nil)
	_ IOrderingFoodService = (*OrderingFoodService)(nil)
)
