package api

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/pageza/foodcourt/backend/internal/middleware"
	"github.com/pageza/foodcourt/backend/internal/service"
)

// Services bundles everything the HTTP layer depends on.
type Services struct {
	Auth          service.IAuthService
	Images        service.IImageService
	Categories    service.ICategoryService
	Foods         service.IFoodService
	Sizes         service.ISizeService
	Makeups       service.IMakeupService
	Weights       service.IWeightService
	Orders        service.IOrderService
	OrderingFoods service.IOrderingFoodService
}

// NewServices wires the gorm backed services onto db.
func NewServices(db *gorm.DB, auth service.IAuthService, images service.IImageService, phoneRegion string) Services {
	return Services{
		Auth:          auth,
		Images:        images,
		Categories:    service.NewCategoryService(db),
		Foods:         service.NewFoodService(db),
		Sizes:         service.NewSizeService(db),
		Makeups:       service.NewMakeupService(db),
		Weights:       service.NewWeightService(db),
		Orders:        service.NewOrderService(db, phoneRegion),
		OrderingFoods: service.NewOrderingFoodService(db),
	}
}

// SetupAPI mounts /health and the /api/v1 resources on router. orderLimiter
// guards public order submission and may be nil.
func SetupAPI(router *gin.Engine, svc Services, ping Pinger, orderLimiter *middleware.RateLimiter) {
	setupValidator()

	router.GET("/health", HealthCheck(ping))

	v1 := router.Group("/api/v1")
	v1.Use(middleware.Authenticate(svc.Auth))
	v1.GET("/health", HealthCheck(ping))

	var orderGuard gin.HandlerFunc
	if orderLimiter != nil {
		orderGuard = orderLimiter.Middleware()
	}

	NewAuthHandler(svc.Auth).RegisterRoutes(v1)
	NewCategoryHandler(svc.Categories).RegisterRoutes(v1)
	NewFoodHandler(svc.Foods, svc.Images).RegisterRoutes(v1)
	NewSizeHandler(svc.Sizes).RegisterRoutes(v1)
	NewMakeupHandler(svc.Makeups).RegisterRoutes(v1)
	NewWeightHandler(svc.Weights).RegisterRoutes(v1)
	NewOrderHandler(svc.Orders, orderGuard).RegisterRoutes(v1)
	NewOrderingFoodHandler(svc.OrderingFoods).RegisterRoutes(v1)
}
