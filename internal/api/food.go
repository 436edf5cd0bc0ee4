package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/rs/zerolog/log"

	"github.com/pageza/foodcourt/backend/internal/service"
	"github.com/pageza/foodcourt/backend/internal/types"
)

const (
	foodPayloadField = "payload"
	foodImageField   = "image"

	// pendingImage stands in for an attached picture while the body is validated.
	pendingImage = "food_images/pending.jpg"
)

// FoodHandler serves /food
type FoodHandler struct {
	foods  service.IFoodService
	images service.IImageService
}

func NewFoodHandler(foods service.IFoodService, images service.IImageService) *FoodHandler {
	return &FoodHandler{foods: foods, images: images}
}

func (h *FoodHandler) RegisterRoutes(rg *gin.RouterGroup) {
	RegisterResource(rg, "/food", foodPolicy, h, nil)
}

// bindFood decodes a food body. Multipart requests carry the JSON document in
// the payload field and may attach the picture as the image file. The picture
// is stored only once the body is valid; the returned reference must be
// discarded when the write fails afterwards.
func (h *FoodHandler) bindFood(c *gin.Context, dst any, setImage func(string)) (string, error) {
	if !strings.HasPrefix(c.ContentType(), binding.MIMEMultipartPOSTForm) {
		return "", bindJSON(c, dst)
	}
	if payload := c.PostForm(foodPayloadField); payload != "" {
		if err := json.Unmarshal([]byte(payload), dst); err != nil {
			return "", &bindError{err: err}
		}
	}
	fh, err := c.FormFile(foodImageField)
	switch {
	case errors.Is(err, http.ErrMissingFile):
		return "", binding.Validator.ValidateStruct(dst)
	case err != nil:
		return "", &bindError{err: err}
	}

	setImage(pendingImage)
	if err := binding.Validator.ValidateStruct(dst); err != nil {
		return "", err
	}
	if h.images == nil {
		return "", service.ErrUnsupportedImage
	}
	f, err := fh.Open()
	if err != nil {
		return "", &bindError{err: err}
	}
	defer f.Close()
	ref, err := h.images.Upload(c.Request.Context(), f)
	if err != nil {
		return "", err
	}
	setImage(ref)
	return ref, nil
}

// discard removes a picture stored for a write that did not happen.
func (h *FoodHandler) discard(c *gin.Context, ref string) {
	if ref == "" {
		return
	}
	if err := h.images.Discard(c.Request.Context(), ref); err != nil {
		log.Ctx(c.Request.Context()).Warn().Err(err).Str("image", ref).Msg("failed to discard image")
	}
}

func (h *FoodHandler) render(c *gin.Context, status int, food types.FoodResponse, full func() any) {
	if ShapeOf(c) == types.ShapeFlat {
		c.JSON(status, food)
		return
	}
	c.JSON(status, full())
}

// List godoc
// @Summary List foods
// @Tags foods
// @Produce json
// @Param search query string false "Search by name"
// @Param category query int false "Filter by category ID"
// @Param created_at query string false "today, yesterday, week, month or year"
// @Param ordering query string false "id, name or created_at, prefix with - for descending"
// @Param page query int false "Page number"
// @Success 200 {object} types.Page[types.FoodReadResponse]
// @Router /food [get]
func (h *FoodHandler) List(c *gin.Context) {
	p, err := listParams(c)
	if err != nil {
		respondError(c, "food", err)
		return
	}
	res, err := h.foods.List(c.Request.Context(), p)
	if err != nil {
		respondError(c, "food", err)
		return
	}
	writePage(c, res, types.NewFoodReadResponse)
}

// Create godoc
// @Summary Create a food with its makeups, sizes and weights
// @Tags foods
// @Accept json,mpfd
// @Produce json
// @Security BearerAuth
// @Param body body types.CreateFoodRequest true "Food"
// @Success 201 {object} types.FoodCreateResponse
// @Failure 400 {object} map[string]interface{}
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /food [post]
func (h *FoodHandler) Create(c *gin.Context) {
	var req types.CreateFoodRequest
	uploaded, err := h.bindFood(c, &req, func(ref string) { req.Image = ref })
	if err != nil {
		respondError(c, "food", err)
		return
	}
	food, err := h.foods.Create(c.Request.Context(), req)
	if err != nil {
		h.discard(c, uploaded)
		respondError(c, "food", err)
		return
	}
	c.JSON(http.StatusCreated, types.NewFoodCreateResponse(*food))
}

// Retrieve godoc
// @Summary Get a food with its category and children
// @Tags foods
// @Produce json
// @Param id path int true "Food ID"
// @Success 200 {object} types.FoodReadResponse
// @Failure 404 {object} map[string]string
// @Router /food/{id} [get]
func (h *FoodHandler) Retrieve(c *gin.Context) {
	id, ok := parseID(c, "food")
	if !ok {
		return
	}
	food, err := h.foods.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, "food", err)
		return
	}
	h.render(c, http.StatusOK, types.NewFoodResponse(*food), func() any { return types.NewFoodReadResponse(*food) })
}

// Update godoc
// @Summary Replace a food's own fields
// @Tags foods
// @Accept json,mpfd
// @Produce json
// @Security BearerAuth
// @Param id path int true "Food ID"
// @Param body body types.FoodRequest true "Food"
// @Success 200 {object} types.FoodResponse
// @Router /food/{id} [put]
func (h *FoodHandler) Update(c *gin.Context) {
	var req types.FoodRequest
	h.update(c, &req, func(ref string) { req.Image = ref }, func() types.PatchFoodRequest { return req.Patch() })
}

// PartialUpdate godoc
// @Summary Update some fields of a food
// @Tags foods
// @Accept json,mpfd
// @Produce json
// @Security BearerAuth
// @Param id path int true "Food ID"
// @Param body body types.PatchFoodRequest true "Fields to change"
// @Success 200 {object} types.FoodResponse
// @Router /food/{id} [patch]
func (h *FoodHandler) PartialUpdate(c *gin.Context) {
	var req types.PatchFoodRequest
	h.update(c, &req, func(ref string) { req.Image = &ref }, func() types.PatchFoodRequest { return req })
}

func (h *FoodHandler) update(c *gin.Context, body any, setImage func(string), patch func() types.PatchFoodRequest) {
	id, ok := parseID(c, "food")
	if !ok {
		return
	}
	uploaded, err := h.bindFood(c, body, setImage)
	if err != nil {
		respondError(c, "food", err)
		return
	}
	food, err := h.foods.Update(c.Request.Context(), id, patch())
	if err != nil {
		h.discard(c, uploaded)
		respondError(c, "food", err)
		return
	}
	h.render(c, http.StatusOK, types.NewFoodResponse(*food), func() any { return types.NewFoodReadResponse(*food) })
}

// Destroy godoc
// @Summary Delete a food and its children
// @Tags foods
// @Security BearerAuth
// @Param id path int true "Food ID"
// @Success 204
// @Failure 409 {object} map[string]string
// @Router /food/{id} [delete]
func (h *FoodHandler) Destroy(c *gin.Context) {
	id, ok := parseID(c, "food")
	if !ok {
		return
	}
	if err := h.foods.Delete(c.Request.Context(), id); err != nil {
		respondError(c, "food", err)
		return
	}
	c.Status(http.StatusNoContent)
}
