package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/foodcourt/backend/internal/service"
	"github.com/pageza/foodcourt/backend/internal/types"
)

// CategoryHandler serves /categories
type CategoryHandler struct {
	categories service.ICategoryService
}

func NewCategoryHandler(categories service.ICategoryService) *CategoryHandler {
	return &CategoryHandler{categories: categories}
}

func (h *CategoryHandler) RegisterRoutes(rg *gin.RouterGroup) {
	RegisterResource(rg, "/categories", categoryPolicy, h, nil)
}

// List godoc
// @Summary List categories
// @Tags categories
// @Produce json
// @Param search query string false "Search by name"
// @Param ordering query string false "id, name or created_at, prefix with - for descending"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} types.Page[types.CategoryResponse]
// @Router /categories [get]
func (h *CategoryHandler) List(c *gin.Context) {
	p, err := listParams(c)
	if err != nil {
		respondError(c, "category", err)
		return
	}
	res, err := h.categories.List(c.Request.Context(), p)
	if err != nil {
		respondError(c, "category", err)
		return
	}
	writePage(c, res, types.NewCategoryResponse)
}

// Create godoc
// @Summary Create a category
// @Tags categories
// @Accept json
// @Produce json
// @Param body body types.CategoryRequest true "Category"
// @Success 201 {object} types.CategoryResponse
// @Failure 400 {object} map[string]interface{}
// @Router /categories [post]
func (h *CategoryHandler) Create(c *gin.Context) {
	var req types.CategoryRequest
	if err := bindJSON(c, &req); err != nil {
		respondError(c, "category", err)
		return
	}
	category, err := h.categories.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, "category", err)
		return
	}
	c.JSON(http.StatusCreated, types.NewCategoryResponse(*category))
}

// Retrieve godoc
// @Summary Get a category
// @Tags categories
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {object} types.CategoryResponse
// @Failure 404 {object} map[string]string
// @Router /categories/{id} [get]
func (h *CategoryHandler) Retrieve(c *gin.Context) {
	id, ok := parseID(c, "category")
	if !ok {
		return
	}
	category, err := h.categories.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, "category", err)
		return
	}
	c.JSON(http.StatusOK, types.NewCategoryResponse(*category))
}

// Update godoc
// @Summary Replace a category
// @Tags categories
// @Accept json
// @Produce json
// @Param id path int true "Category ID"
// @Param body body types.CategoryRequest true "Category"
// @Success 200 {object} types.CategoryResponse
// @Router /categories/{id} [put]
func (h *CategoryHandler) Update(c *gin.Context) {
	var req types.CategoryRequest
	h.update(c, &req, func() types.PatchCategoryRequest { return req.Patch() })
}

// PartialUpdate godoc
// @Summary Update some fields of a category
// @Tags categories
// @Accept json
// @Produce json
// @Param id path int true "Category ID"
// @Param body body types.PatchCategoryRequest true "Fields to change"
// @Success 200 {object} types.CategoryResponse
// @Router /categories/{id} [patch]
func (h *CategoryHandler) PartialUpdate(c *gin.Context) {
	var req types.PatchCategoryRequest
	h.update(c, &req, func() types.PatchCategoryRequest { return req })
}

func (h *CategoryHandler) update(c *gin.Context, body any, patch func() types.PatchCategoryRequest) {
	id, ok := parseID(c, "category")
	if !ok {
		return
	}
	if err := bindJSON(c, body); err != nil {
		respondError(c, "category", err)
		return
	}
	category, err := h.categories.Update(c.Request.Context(), id, patch())
	if err != nil {
		respondError(c, "category", err)
		return
	}
	c.JSON(http.StatusOK, types.NewCategoryResponse(*category))
}

// Destroy godoc
// @Summary Delete a category
// @Tags categories
// @Param id path int true "Category ID"
// @Success 204
// @Failure 409 {object} map[string]string
// @Router /categories/{id} [delete]
func (h *CategoryHandler) Destroy(c *gin.Context) {
	id, ok := parseID(c, "category")
	if !ok {
		return
	}
	if err := h.categories.Delete(c.Request.Context(), id); err != nil {
		respondError(c, "category", err)
		return
	}
	c.Status(http.StatusNoContent)
}
