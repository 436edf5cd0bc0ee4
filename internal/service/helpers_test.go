package service_test

import (
	"errors"
	"testing"

	"github.com/pageza/foodcourt/backend/internal/service"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T {
	return &v
}

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

// requireFields asserts err is a validation error and returns its fields.
func requireFields(t *testing.T, err error) map[string][]string {
	t.Helper()
	var verr *service.ValidationError
	require.True(t, errors.As(err, &verr), "expected validation error, got %v", err)
	return verr.Fields
}
