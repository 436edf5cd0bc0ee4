package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pageza/foodcourt/backend/internal/service"
	"github.com/pageza/foodcourt/backend/internal/testhelpers"
	"github.com/pageza/foodcourt/backend/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	user := testhelpers.CreateUser(t, db, "staff@example.com", "password123", true)
	authSvc := service.NewAuthService(db, "test-secret", time.Hour)

	token, got, err := authSvc.Login(context.Background(), "Staff@Example.com", "password123")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, user.ID, got.ID)

	claims, err := authSvc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "staff@example.com", claims.Email)
	assert.True(t, claims.IsStaff)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestLoginInvalidCredentials(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	testhelpers.CreateUser(t, db, "staff@example.com", "password123", true)
	authSvc := service.NewAuthService(db, "test-secret", time.Hour)

	_, _, err := authSvc.Login(context.Background(), "staff@example.com", "wrong")
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)

	_, _, err = authSvc.Login(context.Background(), "nobody@example.com", "password123")
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
}

func TestValidateToken(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	user := testhelpers.CreateUser(t, db, "clerk@example.com", "password123", false)
	authSvc := service.NewAuthService(db, "test-secret", time.Hour)

	t.Run("wrong secret", func(t *testing.T) {
		other := service.NewAuthService(db, "other-secret", time.Hour)
		token, err := other.GenerateToken(&user)
		require.NoError(t, err)

		_, err = authSvc.ValidateToken(token)
		assert.ErrorIs(t, err, service.ErrInvalidToken)
	})

	t.Run("expired", func(t *testing.T) {
		claims := &types.TokenClaims{
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
			},
			UserID: user.ID,
			Email:  user.Email,
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
		require.NoError(t, err)

		_, err = authSvc.ValidateToken(token)
		assert.ErrorIs(t, err, service.ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := authSvc.ValidateToken("not-a-token")
		assert.ErrorIs(t, err, service.ErrInvalidToken)
	})

	t.Run("non staff", func(t *testing.T) {
		token, err := authSvc.GenerateToken(&user)
		require.NoError(t, err)

		claims, err := authSvc.ValidateToken(token)
		require.NoError(t, err)
		assert.False(t, claims.IsStaff)
	})
}

func TestEnsureStaff(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	authSvc := service.NewAuthService(db, "test-secret", 0)
	ctx := context.Background()

	created, err := authSvc.EnsureStaff(ctx, "Admin", "Admin@Example.com", "first-pass")
	require.NoError(t, err)
	assert.True(t, created.IsStaff)
	assert.Equal(t, "admin@example.com", created.Email)

	updated, err := authSvc.EnsureStaff(ctx, "Head Admin", "admin@example.com", "second-pass")
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Head Admin", updated.Name)

	_, _, err = authSvc.Login(ctx, "admin@example.com", "first-pass")
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	_, _, err = authSvc.Login(ctx, "admin@example.com", "second-pass")
	assert.NoError(t, err)
}
