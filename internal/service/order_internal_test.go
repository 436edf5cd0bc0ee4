package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/foodcourt/backend/internal/models"
	"github.com/pageza/foodcourt/backend/internal/testhelpers"
)

func TestSaveOrderRejectsStaleStatus(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	catalog := testhelpers.SeedCatalog(t, db)
	order := testhelpers.CreateOrder(t, db, catalog.Pizza.ID, catalog.Small.ID, 1)
	orders := NewOrderService(db, "KG")
	ctx := context.Background()

	// Another request already canceled the order after this one read it.
	require.NoError(t, db.Model(&models.Order{}).Where("id = ?", order.ID).Update("status", models.StatusCanceled).Error)

	stale := order
	stale.Status = models.StatusOnDelivery
	err := orders.save(ctx, &stale, models.StatusWaiting)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "status")

	var stored models.Order
	require.NoError(t, db.First(&stored, order.ID).Error)
	assert.Equal(t, models.StatusCanceled, stored.Status)

	fresh := stored
	fresh.Name = "Jane Doe"
	require.NoError(t, orders.save(ctx, &fresh, models.StatusCanceled))
	require.NoError(t, db.First(&stored, order.ID).Error)
	assert.Equal(t, "Jane Doe", stored.Name)
}
