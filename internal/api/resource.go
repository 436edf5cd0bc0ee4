package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/foodcourt/backend/internal/service"
)

// crudService is the service surface shared by the flat resources.
type crudService[M, C, P any] interface {
	List(ctx context.Context, p service.ListParams) (service.ListResult[M], error)
	Get(ctx context.Context, id uint) (*M, error)
	Create(ctx context.Context, req C) (*M, error)
	Update(ctx context.Context, id uint, req P) (*M, error)
	Delete(ctx context.Context, id uint) error
}

// crudHandler serves a resource that renders one flat shape. C is the create
// body, U the full update body and P the partial update body.
type crudHandler[M, C any, U interface{ Patch() P }, P, R any] struct {
	resource string
	svc      crudService[M, C, P]
	render   func(M) R
}

func (h *crudHandler[M, C, U, P, R]) List(c *gin.Context) {
	p, err := listParams(c)
	if err != nil {
		respondError(c, h.resource, err)
		return
	}
	res, err := h.svc.List(c.Request.Context(), p)
	if err != nil {
		respondError(c, h.resource, err)
		return
	}
	writePage(c, res, h.render)
}

func (h *crudHandler[M, C, U, P, R]) Create(c *gin.Context) {
	var req C
	if err := bindJSON(c, &req); err != nil {
		respondError(c, h.resource, err)
		return
	}
	m, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, h.resource, err)
		return
	}
	c.JSON(http.StatusCreated, h.render(*m))
}

func (h *crudHandler[M, C, U, P, R]) Retrieve(c *gin.Context) {
	id, ok := parseID(c, h.resource)
	if !ok {
		return
	}
	m, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.resource, err)
		return
	}
	c.JSON(http.StatusOK, h.render(*m))
}

func (h *crudHandler[M, C, U, P, R]) Update(c *gin.Context) {
	var req U
	h.update(c, &req, func() P { return req.Patch() })
}

func (h *crudHandler[M, C, U, P, R]) PartialUpdate(c *gin.Context) {
	var req P
	h.update(c, &req, func() P { return req })
}

func (h *crudHandler[M, C, U, P, R]) update(c *gin.Context, body any, patch func() P) {
	id, ok := parseID(c, h.resource)
	if !ok {
		return
	}
	if err := bindJSON(c, body); err != nil {
		respondError(c, h.resource, err)
		return
	}
	m, err := h.svc.Update(c.Request.Context(), id, patch())
	if err != nil {
		respondError(c, h.resource, err)
		return
	}
	c.JSON(http.StatusOK, h.render(*m))
}

func (h *crudHandler[M, C, U, P, R]) Destroy(c *gin.Context) {
	id, ok := parseID(c, h.resource)
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		respondError(c, h.resource, err)
		return
	}
	c.Status(http.StatusNoContent)
}
