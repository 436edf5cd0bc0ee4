package types

import (
	"encoding/json"
	"time"

	"github.com/pageza/foodcourt/backend/internal/models"
	"github.com/shopspring/decimal"
)

// SizeSelectionRequest picks a size of the line's food. Quantity defaults to 1.
type SizeSelectionRequest struct {
	Size     uint `json:"size" binding:"required"`
	Quantity *int `json:"quantity" binding:"omitempty,min=1"`
}

// QuantityOrDefault returns the requested quantity or 1 when none was sent.
func (r SizeSelectionRequest) QuantityOrDefault() uint {
	if r.Quantity == nil {
		return 1
	}
	return uint(*r.Quantity)
}

type OrderLineRequest struct {
	Food         uint                   `json:"food" binding:"required"`
	SizesForSale []SizeSelectionRequest `json:"sizes_for_sale" binding:"dive"`
}

// CreateOrderRequest is a customer submission: the order, its lines and each
// line's size selections.
type CreateOrderRequest struct {
	Name         string             `json:"name" binding:"required,max=140"`
	Email        string             `json:"email" binding:"required,email,max=254"`
	Phone        string             `json:"phone" binding:"required,max=128"`
	Address      string             `json:"address" binding:"required,max=255"`
	Home         string             `json:"home" binding:"required,max=150"`
	Status       string             `json:"status" binding:"omitempty,oneof=waiting canceled on_delivery delivered"`
	OrderingFood []OrderLineRequest `json:"ordering_food" binding:"dive"`
}

// OrderRequest replaces the order's own fields. Lines are not touched.
type OrderRequest struct {
	Name    string `json:"name" binding:"required,max=140"`
	Email   string `json:"email" binding:"required,email,max=254"`
	Phone   string `json:"phone" binding:"required,max=128"`
	Address string `json:"address" binding:"required,max=255"`
	Home    string `json:"home" binding:"required,max=150"`
	Status  string `json:"status" binding:"omitempty,oneof=waiting canceled on_delivery delivered"`
}

type PatchOrderRequest struct {
	Name    *string `json:"name" binding:"omitempty,min=1,max=140"`
	Email   *string `json:"email" binding:"omitempty,email,max=254"`
	Phone   *string `json:"phone" binding:"omitempty,min=1,max=128"`
	Address *string `json:"address" binding:"omitempty,min=1,max=255"`
	Home    *string `json:"home" binding:"omitempty,min=1,max=150"`
	Status  *string `json:"status" binding:"omitempty,oneof=waiting canceled on_delivery delivered"`
}

// CreateOrderingFoodRequest adds a line with its selections to an existing order.
type CreateOrderingFoodRequest struct {
	Order        uint                   `json:"order" binding:"required"`
	Food         uint                   `json:"food" binding:"required"`
	SizesForSale []SizeSelectionRequest `json:"sizes_for_sale" binding:"dive"`
}

// OrderingFoodRequest moves a line to another order or food. Selections are
// not touched.
type OrderingFoodRequest struct {
	Order uint `json:"order" binding:"required"`
	Food  uint `json:"food" binding:"required"`
}

type PatchOrderingFoodRequest struct {
	Order *uint `json:"order" binding:"omitempty,min=1"`
	Food  *uint `json:"food" binding:"omitempty,min=1"`
}

type SizeSelection struct {
	Size     uint `json:"size"`
	Quantity uint `json:"quantity"`
}

// OrderLineResponse is one line inside the order read shape.
type OrderLineResponse struct {
	ID           uint             `json:"id"`
	Food         FoodReadResponse `json:"food"`
	SizesForSale []SizeSelection  `json:"sizes_for_sale"`
	TotalPrice   json.Number      `json:"total_price"`
}

// OrderReadResponse nests every line and adds the computed total.
type OrderReadResponse struct {
	ID           uint                `json:"id"`
	Name         string              `json:"name"`
	Email        string              `json:"email"`
	Phone        string              `json:"phone"`
	Address      string              `json:"address"`
	Home         string              `json:"home"`
	Status       models.OrderStatus  `json:"status"`
	OrderingFood []OrderLineResponse `json:"ordering_food"`
	TotalPrice   json.Number         `json:"total_price"`
	CreatedAt    time.Time           `json:"created_at"`
	UpdatedAt    time.Time           `json:"updated_at"`
}

func NewOrderReadResponse(o models.Order) OrderReadResponse {
	lines := make([]OrderLineResponse, 0, len(o.OrderingFood))
	for _, line := range o.OrderingFood {
		lines = append(lines, OrderLineResponse{
			ID:           line.ID,
			Food:         NewFoodReadResponse(line.Food),
			SizesForSale: sizeSelections(line.SizesForSale),
			TotalPrice:   Money(line.TotalPrice()),
		})
	}
	return OrderReadResponse{
		ID:           o.ID,
		Name:         o.Name,
		Email:        o.Email,
		Phone:        o.Phone,
		Address:      o.Address,
		Home:         o.Home,
		Status:       o.Status,
		OrderingFood: lines,
		TotalPrice:   Money(o.TotalPrice()),
		CreatedAt:    o.CreatedAt,
		UpdatedAt:    o.UpdatedAt,
	}
}

// OrderingFoodResponse is the flat line shape.
type OrderingFoodResponse struct {
	ID           uint            `json:"id"`
	Order        uint            `json:"order"`
	Food         uint            `json:"food"`
	SizesForSale []SizeSelection `json:"sizes_for_sale"`
	TotalPrice   json.Number     `json:"total_price"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

func NewOrderingFoodResponse(l models.OrderingFood) OrderingFoodResponse {
	return OrderingFoodResponse{
		ID:           l.ID,
		Order:        l.OrderID,
		Food:         l.FoodID,
		SizesForSale: sizeSelections(l.SizesForSale),
		TotalPrice:   Money(l.TotalPrice()),
		CreatedAt:    l.CreatedAt,
		UpdatedAt:    l.UpdatedAt,
	}
}

func sizeSelections(in []models.SizeForSale) []SizeSelection {
	out := make([]SizeSelection, 0, len(in))
	for _, s := range in {
		out = append(out, SizeSelection{Size: s.SizeID, Quantity: s.Quantity})
	}
	return out
}

// Money renders d as a JSON number with two decimals.
func Money(d decimal.Decimal) json.Number {
	return json.Number(d.StringFixed(models.PricePlaces))
}

// Patch converts a full update into field changes. An omitted status keeps
// the current one.
func (r OrderRequest) Patch() PatchOrderRequest {
	p := PatchOrderRequest{Name: &r.Name, Email: &r.Email, Phone: &r.Phone, Address: &r.Address, Home: &r.Home}
	if r.Status != "" {
		p.Status = &r.Status
	}
	return p
}

func (r OrderingFoodRequest) Patch() PatchOrderingFoodRequest {
	return PatchOrderingFoodRequest{Order: &r.Order, Food: &r.Food}
}
