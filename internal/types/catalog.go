package types

import (
	"time"

	"github.com/pageza/foodcourt/backend/internal/models"
	"github.com/shopspring/decimal"
)

// CategoryRequest is the body of category create and full update.
type CategoryRequest struct {
	Name string `json:"name" binding:"required,max=200"`
}

type PatchCategoryRequest struct {
	Name *string `json:"name" binding:"omitempty,min=1,max=200"`
}

type CategoryResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewCategoryResponse(c models.Category) CategoryResponse {
	return CategoryResponse{ID: c.ID, Name: c.Name, CreatedAt: c.CreatedAt, UpdatedAt: c.UpdatedAt}
}

// SizeRequest creates or replaces a size. Food is ignored when the size is
// nested inside a food create.
type SizeRequest struct {
	Name  string           `json:"name" binding:"required,max=150"`
	Price *decimal.Decimal `json:"price" binding:"required"`
	Food  uint             `json:"food"`
}

type PatchSizeRequest struct {
	Name  *string          `json:"name" binding:"omitempty,min=1,max=150"`
	Price *decimal.Decimal `json:"price"`
	Food  *uint            `json:"food" binding:"omitempty,min=1"`
}

type SizeResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Price     string    `json:"price"`
	Food      uint      `json:"food"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewSizeResponse(s models.Size) SizeResponse {
	return SizeResponse{
		ID:        s.ID,
		Name:      s.Name,
		Price:     s.Price.StringFixed(models.PricePlaces),
		Food:      s.FoodID,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

type MakeupRequest struct {
	Name string `json:"name" binding:"required,max=100"`
	Food uint   `json:"food"`
}

type PatchMakeupRequest struct {
	Name *string `json:"name" binding:"omitempty,min=1,max=100"`
	Food *uint   `json:"food" binding:"omitempty,min=1"`
}

type MakeupResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Food      uint      `json:"food"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewMakeupResponse(m models.FoodMakeup) MakeupResponse {
	return MakeupResponse{ID: m.ID, Name: m.Name, Food: m.FoodID, CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt}
}

type WeightRequest struct {
	Value *decimal.Decimal `json:"value" binding:"required"`
	Food  uint             `json:"food"`
}

type PatchWeightRequest struct {
	Value *decimal.Decimal `json:"value"`
	Food  *uint            `json:"food" binding:"omitempty,min=1"`
}

type WeightResponse struct {
	ID        uint      `json:"id"`
	Value     string    `json:"value"`
	Food      uint      `json:"food"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewWeightResponse(w models.FoodWeight) WeightResponse {
	return WeightResponse{
		ID:        w.ID,
		Value:     w.Value.StringFixed(models.WeightPlaces),
		Food:      w.FoodID,
		CreatedAt: w.CreatedAt,
		UpdatedAt: w.UpdatedAt,
	}
}

// FoodRequest is the flat food body used by full update.
type FoodRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Image       string `json:"image" binding:"required,max=255"`
	Description string `json:"description" binding:"required,max=255"`
	Category    uint   `json:"category" binding:"required"`
}

// CreateFoodRequest carries a dish together with its makeups, sizes and weights.
type CreateFoodRequest struct {
	Name        string          `json:"name" binding:"required,max=100"`
	Image       string          `json:"image" binding:"required,max=255"`
	Description string          `json:"description" binding:"required,max=255"`
	Category    uint            `json:"category" binding:"required"`
	Makeups     []MakeupRequest `json:"makeups" binding:"dive"`
	Sizes       []SizeRequest   `json:"sizes" binding:"dive"`
	Weight      []WeightRequest `json:"weight" binding:"dive"`
}

// Flat returns the dish fields without the nested collections.
func (r CreateFoodRequest) Flat() FoodRequest {
	return FoodRequest{Name: r.Name, Image: r.Image, Description: r.Description, Category: r.Category}
}

type PatchFoodRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=100"`
	Image       *string `json:"image" binding:"omitempty,min=1,max=255"`
	Description *string `json:"description" binding:"omitempty,min=1,max=255"`
	Category    *uint   `json:"category" binding:"omitempty,min=1"`
}

// FoodResponse is the flat food shape.
type FoodResponse struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Image       string    `json:"image"`
	Description string    `json:"description"`
	Category    uint      `json:"category"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func NewFoodResponse(f models.Food) FoodResponse {
	return FoodResponse{
		ID:          f.ID,
		Name:        f.Name,
		Image:       f.Image,
		Description: f.Description,
		Category:    f.CategoryID,
		CreatedAt:   f.CreatedAt,
		UpdatedAt:   f.UpdatedAt,
	}
}

// FoodCreateResponse echoes a created food with the children created alongside it.
type FoodCreateResponse struct {
	FoodResponse
	Makeups []MakeupResponse `json:"makeups"`
	Sizes   []SizeResponse   `json:"sizes"`
	Weight  []WeightResponse `json:"weight"`
}

func NewFoodCreateResponse(f models.Food) FoodCreateResponse {
	return FoodCreateResponse{
		FoodResponse: NewFoodResponse(f),
		Makeups:      makeupResponses(f.Makeups),
		Sizes:        sizeResponses(f.Sizes),
		Weight:       weightResponses(f.Weight),
	}
}

// FoodReadResponse expands the category and nests every child by value.
type FoodReadResponse struct {
	ID          uint             `json:"id"`
	Name        string           `json:"name"`
	Image       string           `json:"image"`
	Description string           `json:"description"`
	Category    CategoryResponse `json:"category"`
	Makeups     []MakeupResponse `json:"makeups"`
	Sizes       []SizeResponse   `json:"sizes"`
	Weight      []WeightResponse `json:"weight"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

func NewFoodReadResponse(f models.Food) FoodReadResponse {
	return FoodReadResponse{
		ID:          f.ID,
		Name:        f.Name,
		Image:       f.Image,
		Description: f.Description,
		Category:    NewCategoryResponse(f.Category),
		Makeups:     makeupResponses(f.Makeups),
		Sizes:       sizeResponses(f.Sizes),
		Weight:      weightResponses(f.Weight),
		CreatedAt:   f.CreatedAt,
		UpdatedAt:   f.UpdatedAt,
	}
}

func makeupResponses(in []models.FoodMakeup) []MakeupResponse {
	out := make([]MakeupResponse, 0, len(in))
	for _, m := range in {
		out = append(out, NewMakeupResponse(m))
	}
	return out
}

func sizeResponses(in []models.Size) []SizeResponse {
	out := make([]SizeResponse, 0, len(in))
	for _, s := range in {
		out = append(out, NewSizeResponse(s))
	}
	return out
}

func weightResponses(in []models.FoodWeight) []WeightResponse {
	out := make([]WeightResponse, 0, len(in))
	for _, w := range in {
		out = append(out, NewWeightResponse(w))
	}
	return out
}

// Patch converts a full update into the equivalent set of field changes.
func (r CategoryRequest) Patch() PatchCategoryRequest {
	return PatchCategoryRequest{Name: &r.Name}
}

func (r SizeRequest) Patch() PatchSizeRequest {
	return PatchSizeRequest{Name: &r.Name, Price: r.Price, Food: &r.Food}
}

func (r MakeupRequest) Patch() PatchMakeupRequest {
	return PatchMakeupRequest{Name: &r.Name, Food: &r.Food}
}

func (r WeightRequest) Patch() PatchWeightRequest {
	return PatchWeightRequest{Value: r.Value, Food: &r.Food}
}

func (r FoodRequest) Patch() PatchFoodRequest {
	return PatchFoodRequest{Name: &r.Name, Image: &r.Image, Description: &r.Description, Category: &r.Category}
}
