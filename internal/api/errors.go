package api

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"

	"github.com/pageza/foodcourt/backend/internal/service"
)

// bindError marks a request body that could not be decoded.
type bindError struct {
	err error
}

func (e *bindError) Error() string { return e.err.Error() }
func (e *bindError) Unwrap() error { return e.err }

var validatorOnce sync.Once

// setupValidator makes validation errors report JSON field names.
func setupValidator() {
	validatorOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				return fld.Name
			}
			return name
		})
	})
}

// bindJSON decodes and validates the request body into dst.
func bindJSON(c *gin.Context, dst any) error {
	if err := c.ShouldBindJSON(dst); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return err
		}
		return &bindError{err: err}
	}
	return nil
}

var indexPattern = regexp.MustCompile(`\[(\d+)\]`)

// fieldPath turns "CreateOrderRequest.ordering_food[0].size" into
// "ordering_food.0.size".
func fieldPath(namespace string) string {
	if i := strings.Index(namespace, "."); i >= 0 {
		namespace = namespace[i+1:]
	}
	return indexPattern.ReplaceAllString(namespace, ".$1")
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "email":
		return "Enter a valid email address."
	case "oneof":
		return fmt.Sprintf("%q is not a valid choice.", fmt.Sprint(fe.Value()))
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("Ensure this field has no more than %s characters.", fe.Param())
		}
		return fmt.Sprintf("Ensure this value is less than or equal to %s.", fe.Param())
	case "min":
		if fe.Kind() == reflect.String {
			if fe.Param() == "1" {
				return "This field may not be blank."
			}
			return fmt.Sprintf("Ensure this field has at least %s characters.", fe.Param())
		}
		return fmt.Sprintf("Ensure this value is greater than or equal to %s.", fe.Param())
	default:
		return "Invalid value."
	}
}

func validationFields(verrs validator.ValidationErrors) map[string][]string {
	fields := map[string][]string{}
	for _, fe := range verrs {
		path := fieldPath(fe.Namespace())
		fields[path] = append(fields[path], fieldMessage(fe))
	}
	return fields
}

func validationFailed(c *gin.Context, fields map[string][]string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "fields": fields})
}

// respondError maps a service or binding error onto the JSON error contract.
func respondError(c *gin.Context, resource string, err error) {
	var (
		verr      *service.ValidationError
		verrs     validator.ValidationErrors
		protected *service.ProtectedError
		bad       *bindError
	)
	switch {
	case errors.As(err, &verr):
		validationFailed(c, verr.Fields)
	case errors.As(err, &verrs):
		validationFailed(c, validationFields(verrs))
	case errors.As(err, &bad):
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("malformed request body: %v", bad.err)})
	case errors.Is(err, service.ErrUnsupportedImage):
		validationFailed(c, map[string][]string{"image": {service.ErrUnsupportedImage.Error()}})
	case errors.Is(err, service.ErrInvalidPage):
		c.JSON(http.StatusNotFound, gin.H{"error": "invalid page"})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": resource + " not found"})
	case errors.As(err, &protected):
		c.JSON(http.StatusConflict, gin.H{
			"error": fmt.Sprintf("cannot delete %s: it is referenced by %d %s", protected.Resource, protected.Count, protected.ReferencedBy),
		})
	default:
		log.Ctx(c.Request.Context()).Error().Err(err).Str("resource", resource).Msg("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
