package api

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/pageza/foodcourt/backend/internal/service"
	"github.com/pageza/foodcourt/backend/internal/types"
)

var reservedParams = map[string]bool{"search": true, "ordering": true, "page": true, "page_size": true}

// listParams reads search, ordering, pagination and filter parameters.
func listParams(c *gin.Context) (service.ListParams, error) {
	q := c.Request.URL.Query()
	p := service.ListParams{
		Search:   q.Get("search"),
		Ordering: q.Get("ordering"),
		Filters:  map[string]string{},
	}
	if raw := q.Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 1 {
			return p, service.ErrInvalidPage
		}
		p.Page = page
	}
	if raw := q.Get("page_size"); raw != "" {
		if size, err := strconv.Atoi(raw); err == nil && size > 0 {
			p.PageSize = size
		}
	}
	for key := range q {
		if !reservedParams[key] {
			p.Filters[key] = q.Get(key)
		}
	}
	return p, nil
}

// pageURL returns the absolute URL of the current request pointing at page.
func pageURL(c *gin.Context, page int) *string {
	u := *c.Request.URL
	u.Host = c.Request.Host
	u.Scheme = "http"
	if c.Request.TLS != nil {
		u.Scheme = "https"
	}
	if proto := c.GetHeader("X-Forwarded-Proto"); proto != "" {
		u.Scheme = proto
	}
	q := u.Query()
	if page <= 1 {
		q.Del("page")
	} else {
		q.Set("page", strconv.Itoa(page))
	}
	u.RawQuery = q.Encode()
	s := (&url.URL{Scheme: u.Scheme, Host: u.Host, Path: u.Path, RawQuery: u.RawQuery}).String()
	return &s
}

// writePage renders one page of results in the list envelope.
func writePage[T any, R any](c *gin.Context, res service.ListResult[T], render func(T) R) {
	page := types.Page[R]{
		Count:   res.Count,
		Results: make([]R, 0, len(res.Items)),
	}
	for _, item := range res.Items {
		page.Results = append(page.Results, render(item))
	}
	if res.HasNext() {
		page.Next = pageURL(c, res.Page+1)
	}
	if res.Page > 1 {
		page.Previous = pageURL(c, res.Page-1)
	}
	c.JSON(http.StatusOK, page)
}

// parseID reads the :id path parameter. Anything that is not a positive
// integer is reported as not found.
func parseID(c *gin.Context, resource string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": resource + " not found"})
		return 0, false
	}
	return uint(id), true
}
