package api

import (
	"github.com/gin-gonic/gin"

	"github.com/pageza/foodcourt/backend/internal/middleware"
	"github.com/pageza/foodcourt/backend/internal/types"
)

// Action names one of the six operations a resource exposes.
type Action string

const (
	ActionList          Action = "list"
	ActionCreate        Action = "create"
	ActionRetrieve      Action = "retrieve"
	ActionUpdate        Action = "update"
	ActionPartialUpdate Action = "partial_update"
	ActionDestroy       Action = "destroy"
)

// Permission is a single access check.
type Permission int

const (
	AllowAny Permission = iota
	IsAuthenticated
	IsAdmin
)

func (p Permission) String() string {
	switch p {
	case IsAuthenticated:
		return "IsAuthenticated"
	case IsAdmin:
		return "IsAdmin"
	default:
		return "AllowAny"
	}
}

func (p Permission) guard() gin.HandlerFunc {
	switch p {
	case IsAuthenticated:
		return middleware.RequireAuthenticated()
	case IsAdmin:
		return middleware.RequireStaff()
	default:
		return nil
	}
}

// Rule is what one action of a resource renders and who may call it.
type Rule struct {
	Shape       types.Shape
	Permissions []Permission
}

// Policy maps every action of a resource to its rule. Actions missing from
// the map fall back to the flat shape and no access checks.
type Policy map[Action]Rule

// Rule resolves the rule for action.
func (p Policy) Rule(action Action) Rule {
	if r, ok := p[action]; ok {
		return r
	}
	return Rule{Shape: types.ShapeFlat, Permissions: []Permission{AllowAny}}
}

const shapeKey = "shape"

// Enforce returns the handler chain that checks the action's permissions and
// records its shape for the handler.
func (p Policy) Enforce(action Action) []gin.HandlerFunc {
	rule := p.Rule(action)
	var chain []gin.HandlerFunc
	for _, perm := range rule.Permissions {
		if g := perm.guard(); g != nil {
			chain = append(chain, g)
		}
	}
	shape := rule.Shape
	return append(chain, func(c *gin.Context) {
		c.Set(shapeKey, shape)
		c.Next()
	})
}

// ShapeOf returns the shape selected for the current request.
func ShapeOf(c *gin.Context) types.Shape {
	if v, ok := c.Get(shapeKey); ok {
		if s, ok := v.(types.Shape); ok {
			return s
		}
	}
	return types.ShapeFlat
}

var (
	public = []Permission{AllowAny}
	staff  = []Permission{IsAdmin}
	// staffSession demands a signed-in caller who is also staff.
	staffSession = []Permission{IsAuthenticated, IsAdmin}
)

// Per-resource action tables.
var (
	categoryPolicy = Policy{
		ActionList:          {types.ShapeFlat, public},
		ActionRetrieve:      {types.ShapeFlat, public},
		ActionCreate:        {types.ShapeFlat, public},
		ActionUpdate:        {types.ShapeFlat, public},
		ActionPartialUpdate: {types.ShapeFlat, public},
		ActionDestroy:       {types.ShapeFlat, public},
	}

	sizePolicy = categoryPolicy

	foodPolicy = Policy{
		ActionList:          {types.ShapeRead, public},
		ActionRetrieve:      {types.ShapeRead, public},
		ActionCreate:        {types.ShapeCreate, staff},
		ActionUpdate:        {types.ShapeFlat, staffSession},
		ActionPartialUpdate: {types.ShapeFlat, staffSession},
		ActionDestroy:       {types.ShapeFlat, staffSession},
	}

	foodPartPolicy = Policy{
		ActionList:          {types.ShapeFlat, public},
		ActionRetrieve:      {types.ShapeFlat, public},
		ActionCreate:        {types.ShapeFlat, staff},
		ActionUpdate:        {types.ShapeFlat, staffSession},
		ActionPartialUpdate: {types.ShapeFlat, staffSession},
		ActionDestroy:       {types.ShapeFlat, staffSession},
	}

	orderPolicy = Policy{
		ActionList:          {types.ShapeRead, public},
		ActionRetrieve:      {types.ShapeRead, public},
		ActionCreate:        {types.ShapeCreate, public},
		ActionUpdate:        {types.ShapeRead, staffSession},
		ActionPartialUpdate: {types.ShapeRead, staffSession},
		ActionDestroy:       {types.ShapeRead, staffSession},
	}

	orderingFoodPolicy = Policy{
		ActionList:          {types.ShapeFlat, public},
		ActionRetrieve:      {types.ShapeFlat, public},
		ActionCreate:        {types.ShapeFlat, public},
		ActionUpdate:        {types.ShapeFlat, staffSession},
		ActionPartialUpdate: {types.ShapeFlat, staffSession},
		ActionDestroy:       {types.ShapeFlat, staffSession},
	}
)

// Resource is a handler exposing the six standard actions.
type Resource interface {
	List(c *gin.Context)
	Create(c *gin.Context)
	Retrieve(c *gin.Context)
	Update(c *gin.Context)
	PartialUpdate(c *gin.Context)
	Destroy(c *gin.Context)
}

// Extra holds additional handlers that run for an action after its policy.
type Extra map[Action][]gin.HandlerFunc

// RegisterResource mounts the standard routes of res under path, each guarded
// by its policy rule.
func RegisterResource(rg *gin.RouterGroup, path string, policy Policy, res Resource, extra Extra) {
	route := func(action Action, h gin.HandlerFunc) []gin.HandlerFunc {
		chain := policy.Enforce(action)
		chain = append(chain, extra[action]...)
		return append(chain, h)
	}

	group := rg.Group(path)
	group.GET("", route(ActionList, res.List)...)
	group.POST("", route(ActionCreate, res.Create)...)
	group.GET("/:id", route(ActionRetrieve, res.Retrieve)...)
	group.PUT("/:id", route(ActionUpdate, res.Update)...)
	group.PATCH("/:id", route(ActionPartialUpdate, res.PartialUpdate)...)
	group.DELETE("/:id", route(ActionDestroy, res.Destroy)...)
}
