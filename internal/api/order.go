package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/foodcourt/backend/internal/models"
	"github.com/pageza/foodcourt/backend/internal/service"
	"github.com/pageza/foodcourt/backend/internal/types"
)

// OrderHandler serves /orders
type OrderHandler struct {
	orders service.IOrderService
	// createGuard runs before order submission, typically a rate limiter.
	createGuard gin.HandlerFunc
}

func NewOrderHandler(orders service.IOrderService, createGuard gin.HandlerFunc) *OrderHandler {
	return &OrderHandler{orders: orders, createGuard: createGuard}
}

func (h *OrderHandler) RegisterRoutes(rg *gin.RouterGroup) {
	var extra Extra
	if h.createGuard != nil {
		extra = Extra{ActionCreate: {h.createGuard}}
	}
	RegisterResource(rg, "/orders", orderPolicy, h, extra)
}

// List godoc
// @Summary List orders
// @Tags orders
// @Produce json
// @Param search query string false "Search by name, email, phone or address"
// @Param status query string false "waiting, canceled, on_delivery or delivered"
// @Param food query int false "Orders containing this food"
// @Param created_at query string false "today, yesterday, week, month or year"
// @Param ordering query string false "id, name, status or created_at, prefix with - for descending"
// @Param page query int false "Page number"
// @Success 200 {object} types.Page[types.OrderReadResponse]
// @Router /orders [get]
func (h *OrderHandler) List(c *gin.Context) {
	p, err := listParams(c)
	if err != nil {
		respondError(c, "order", err)
		return
	}
	res, err := h.orders.List(c.Request.Context(), p)
	if err != nil {
		respondError(c, "order", err)
		return
	}
	writePage(c, res, types.NewOrderReadResponse)
}

// Create godoc
// @Summary Submit an order with its lines
// @Tags orders
// @Accept json
// @Produce json
// @Param body body types.CreateOrderRequest true "Order"
// @Success 201 {object} types.OrderReadResponse
// @Failure 400 {object} map[string]interface{}
// @Failure 429 {object} map[string]string
// @Router /orders [post]
func (h *OrderHandler) Create(c *gin.Context) {
	var req types.CreateOrderRequest
	if err := bindJSON(c, &req); err != nil {
		respondError(c, "order", err)
		return
	}
	order, err := h.orders.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, "order", err)
		return
	}
	c.JSON(http.StatusCreated, types.NewOrderReadResponse(*order))
}

// Retrieve godoc
// @Summary Get an order with its lines and total
// @Tags orders
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} types.OrderReadResponse
// @Failure 404 {object} map[string]string
// @Router /orders/{id} [get]
func (h *OrderHandler) Retrieve(c *gin.Context) {
	id, ok := parseID(c, "order")
	if !ok {
		return
	}
	order, err := h.orders.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, "order", err)
		return
	}
	c.JSON(http.StatusOK, types.NewOrderReadResponse(*order))
}

// Update godoc
// @Summary Replace an order's own fields
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Order ID"
// @Param body body types.OrderRequest true "Order"
// @Success 200 {object} types.OrderReadResponse
// @Router /orders/{id} [put]
func (h *OrderHandler) Update(c *gin.Context) {
	var req types.OrderRequest
	h.update(c, &req, func() types.PatchOrderRequest { return req.Patch() })
}

// PartialUpdate godoc
// @Summary Update some fields of an order, typically its status
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Order ID"
// @Param body body types.PatchOrderRequest true "Fields to change"
// @Success 200 {object} types.OrderReadResponse
// @Router /orders/{id} [patch]
func (h *OrderHandler) PartialUpdate(c *gin.Context) {
	var req types.PatchOrderRequest
	h.update(c, &req, func() types.PatchOrderRequest { return req })
}

func (h *OrderHandler) update(c *gin.Context, body any, patch func() types.PatchOrderRequest) {
	id, ok := parseID(c, "order")
	if !ok {
		return
	}
	if err := bindJSON(c, body); err != nil {
		respondError(c, "order", err)
		return
	}
	order, err := h.orders.Update(c.Request.Context(), id, patch())
	if err != nil {
		respondError(c, "order", err)
		return
	}
	c.JSON(http.StatusOK, types.NewOrderReadResponse(*order))
}

// Destroy godoc
// @Summary Delete an order and its lines
// @Tags orders
// @Security BearerAuth
// @Param id path int true "Order ID"
// @Success 204
// @Router /orders/{id} [delete]
func (h *OrderHandler) Destroy(c *gin.Context) {
	id, ok := parseID(c, "order")
	if !ok {
		return
	}
	if err := h.orders.Delete(c.Request.Context(), id); err != nil {
		respondError(c, "order", err)
		return
	}
	c.Status(http.StatusNoContent)
}

// OrderingFoodHandler serves /order-food
type OrderingFoodHandler struct {
	*crudHandler[models.OrderingFood, types.CreateOrderingFoodRequest, types.OrderingFoodRequest, types.PatchOrderingFoodRequest, types.OrderingFoodResponse]
}

func NewOrderingFoodHandler(lines service.IOrderingFoodService) *OrderingFoodHandler {
	return &OrderingFoodHandler{&crudHandler[models.OrderingFood, types.CreateOrderingFoodRequest, types.OrderingFoodRequest, types.PatchOrderingFoodRequest, types.OrderingFoodResponse]{
		resource: "ordering food",
		svc:      lines,
		render:   types.NewOrderingFoodResponse,
	}}
}

func (h *OrderingFoodHandler) RegisterRoutes(rg *gin.RouterGroup) {
	RegisterResource(rg, "/order-food", orderingFoodPolicy, h, nil)
}
