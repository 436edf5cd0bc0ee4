package api

import (
	"github.com/gin-gonic/gin"

	"github.com/pageza/foodcourt/backend/internal/models"
	"github.com/pageza/foodcourt/backend/internal/service"
	"github.com/pageza/foodcourt/backend/internal/types"
)

// SizeHandler serves /food-sizes
type SizeHandler struct {
	*crudHandler[models.Size, types.SizeRequest, types.SizeRequest, types.PatchSizeRequest, types.SizeResponse]
}

func NewSizeHandler(sizes service.ISizeService) *SizeHandler {
	return &SizeHandler{&crudHandler[models.Size, types.SizeRequest, types.SizeRequest, types.PatchSizeRequest, types.SizeResponse]{
		resource: "size",
		svc:      sizes,
		render:   types.NewSizeResponse,
	}}
}

func (h *SizeHandler) RegisterRoutes(rg *gin.RouterGroup) {
	RegisterResource(rg, "/food-sizes", sizePolicy, h, nil)
}

// MakeupHandler serves /food-makeup
type MakeupHandler struct {
	*crudHandler[models.FoodMakeup, types.MakeupRequest, types.MakeupRequest, types.PatchMakeupRequest, types.MakeupResponse]
}

func NewMakeupHandler(makeups service.IMakeupService) *MakeupHandler {
	return &MakeupHandler{&crudHandler[models.FoodMakeup, types.MakeupRequest, types.MakeupRequest, types.PatchMakeupRequest, types.MakeupResponse]{
		resource: "makeup",
		svc:      makeups,
		render:   types.NewMakeupResponse,
	}}
}

func (h *MakeupHandler) RegisterRoutes(rg *gin.RouterGroup) {
	RegisterResource(rg, "/food-makeup", foodPartPolicy, h, nil)
}

// WeightHandler serves /food-weight
type WeightHandler struct {
	*crudHandler[models.FoodWeight, types.WeightRequest, types.WeightRequest, types.PatchWeightRequest, types.WeightResponse]
}

func NewWeightHandler(weights service.IWeightService) *WeightHandler {
	return &WeightHandler{&crudHandler[models.FoodWeight, types.WeightRequest, types.WeightRequest, types.PatchWeightRequest, types.WeightResponse]{
		resource: "weight",
		svc:      weights,
		render:   types.NewWeightResponse,
	}}
}

func (h *WeightHandler) RegisterRoutes(rg *gin.RouterGroup) {
	RegisterResource(rg, "/food-weight", foodPartPolicy, h, nil)
}
