package service

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrNotFound is returned when a requested row does not exist.
	ErrNotFound = errors.New("not found")
	// ErrInvalidPage is returned when a page past the last one is requested.
	ErrInvalidPage = errors.New("invalid page")
	// ErrInvalidCredentials is returned by Login for an unknown email or a wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidToken is returned when a bearer token cannot be trusted.
	ErrInvalidToken = errors.New("invalid token")
)

// ValidationError collects field-scoped messages. Nested fields use dotted
// paths with indexes, e.g. "ordering_food.0.sizes_for_sale.1.size".
type ValidationError struct {
	Fields map[string][]string
}

func NewValidationError() *ValidationError {
	return &ValidationError{Fields: map[string][]string{}}
}

// FieldError builds a ValidationError holding a single message.
func FieldError(field, msg string) *ValidationError {
	v := NewValidationError()
	v.Add(field, msg)
	return v
}

func (e *ValidationError) Add(field, msg string) {
	e.Fields[field] = append(e.Fields[field], msg)
}

// AddAll records every message for field.
func (e *ValidationError) AddAll(field string, msgs []string) {
	for _, m := range msgs {
		e.Add(field, m)
	}
}

func (e *ValidationError) Empty() bool {
	return len(e.Fields) == 0
}

// Err returns e as an error, or nil when nothing was recorded.
func (e *ValidationError) Err() error {
	if e.Empty() {
		return nil
	}
	return e
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, strings.Join(e.Fields[k], " ")))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// ProtectedError reports a delete blocked by rows that still reference the target.
type ProtectedError struct {
	Resource     string
	ID           uint
	ReferencedBy string
	Count        int64
}

func (e *ProtectedError) Error() string {
	return fmt.Sprintf("cannot delete %s %d: referenced by %d %s", e.Resource, e.ID, e.Count, e.ReferencedBy)
}

func notFound(resource string, id uint) error {
	return fmt.Errorf("%s %d: %w", resource, id, ErrNotFound)
}

func missingPK(id uint) string {
	return fmt.Sprintf("Invalid pk \"%d\" - object does not exist.", id)
}

const (
	msgRequired = "This field is required."
	msgBlank    = "This field may not be blank."
)
