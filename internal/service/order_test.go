package service_test

import (
	"context"
	"testing"

	"github.com/pageza/foodcourt/backend/internal/models"
	"github.com/pageza/foodcourt/backend/internal/service"
	"github.com/pageza/foodcourt/backend/internal/testhelpers"
	"github.com/pageza/foodcourt/backend/internal/types"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type OrderSuite struct {
	suite.Suite
	ctx     context.Context
	db      *gorm.DB
	catalog testhelpers.Catalog
	orders  *service.OrderService
	lines   *service.OrderingFoodService
}

func TestOrderSuite(t *testing.T) {
	suite.Run(t, new(OrderSuite))
}

func (s *OrderSuite) SetupTest() {
	s.ctx = context.Background()
	s.db = testhelpers.SetupTestDatabase(s.T())
	s.catalog = testhelpers.SeedCatalog(s.T(), s.db)
	s.orders = service.NewOrderService(s.db, "KG")
	s.lines = service.NewOrderingFoodService(s.db)
}

func (s *OrderSuite) orderRequest(lines ...types.OrderLineRequest) types.CreateOrderRequest {
	return types.CreateOrderRequest{
		Name:         "Aida",
		Email:        "aida@example.com",
		Phone:        "0555 123 456",
		Address:      "Chui Ave",
		Home:         "12",
		OrderingFood: lines,
	}
}

func (s *OrderSuite) count(model any) int64 {
	var n int64
	s.Require().NoError(s.db.Model(model).Count(&n).Error)
	return n
}

func (s *OrderSuite) TestCreateOrder() {
	order, err := s.orders.Create(s.ctx, s.orderRequest(
		types.OrderLineRequest{
			Food: s.catalog.Pizza.ID,
			SizesForSale: []types.SizeSelectionRequest{
				{Size: s.catalog.Small.ID, Quantity: ptr(2)},
				{Size: s.catalog.Large.ID},
			},
		},
		types.OrderLineRequest{
			Food:         s.catalog.Salad.ID,
			SizesForSale: []types.SizeSelectionRequest{{Size: s.catalog.Bowl.ID, Quantity: ptr(3)}},
		},
	))
	s.Require().NoError(err)

	s.Equal(models.StatusWaiting, order.Status)
	s.Equal("+996555123456", order.Phone)
	s.Require().Len(order.OrderingFood, 2)
	s.Equal("Margherita", order.OrderingFood[0].Food.Name)
	s.Require().Len(order.OrderingFood[0].SizesForSale, 2)
	s.Equal(uint(1), order.OrderingFood[0].SizesForSale[1].Quantity)
	s.Equal("34.48", order.OrderingFood[0].TotalPrice().StringFixed(2))
	s.Equal("18.00", order.OrderingFood[1].TotalPrice().StringFixed(2))
	s.Equal("52.48", order.TotalPrice().StringFixed(2))
}

func (s *OrderSuite) TestCreateOrderTotal() {
	order, err := s.orders.Create(s.ctx, s.orderRequest(types.OrderLineRequest{
		Food:         s.catalog.Pizza.ID,
		SizesForSale: []types.SizeSelectionRequest{{Size: s.catalog.Small.ID, Quantity: ptr(2)}},
	}))
	s.Require().NoError(err)
	s.Equal("19.98", types.NewOrderReadResponse(*order).TotalPrice.String())
}

func (s *OrderSuite) TestCreateOrderShortName() {
	req := s.orderRequest()
	req.Name = "Jo"

	_, err := s.orders.Create(s.ctx, req)
	fields := requireFields(s.T(), err)
	s.Equal([]string{"Name must be at least 3 characters"}, fields["name"])
	s.Zero(s.count(&models.Order{}))
}

func (s *OrderSuite) TestCreateOrderSizeOfAnotherFood() {
	_, err := s.orders.Create(s.ctx, s.orderRequest(types.OrderLineRequest{
		Food: s.catalog.Pizza.ID,
		SizesForSale: []types.SizeSelectionRequest{
			{Size: s.catalog.Small.ID},
			{Size: s.catalog.Bowl.ID},
		},
	}))
	fields := requireFields(s.T(), err)
	s.Equal([]string{`Size "bowl" does not belong to food "Margherita".`}, fields["ordering_food.0.sizes_for_sale.1.size"])
	s.Zero(s.count(&models.Order{}))
	s.Zero(s.count(&models.OrderingFood{}))
	s.Zero(s.count(&models.SizeForSale{}))
}

func (s *OrderSuite) TestCreateOrderMissingReferences() {
	req := s.orderRequest(types.OrderLineRequest{
		Food:         404,
		SizesForSale: []types.SizeSelectionRequest{{Size: s.catalog.Small.ID}},
	}, types.OrderLineRequest{
		Food:         s.catalog.Pizza.ID,
		SizesForSale: []types.SizeSelectionRequest{{Size: 999}},
	})
	req.Phone = "12"

	_, err := s.orders.Create(s.ctx, req)
	fields := requireFields(s.T(), err)
	s.Equal([]string{`Invalid pk "404" - object does not exist.`}, fields["ordering_food.0.food"])
	s.Equal([]string{`Invalid pk "999" - object does not exist.`}, fields["ordering_food.1.sizes_for_sale.0.size"])
	s.Equal([]string{"Enter a valid phone number."}, fields["phone"])
}

func (s *OrderSuite) TestStatusTransitions() {
	order := testhelpers.CreateOrder(s.T(), s.db, s.catalog.Pizza.ID, s.catalog.Small.ID, 1)

	_, err := s.orders.Update(s.ctx, order.ID, types.PatchOrderRequest{Status: ptr("delivered")})
	s.Equal([]string{`Cannot change status from "waiting" to "delivered".`}, requireFields(s.T(), err)["status"])

	updated, err := s.orders.Update(s.ctx, order.ID, types.PatchOrderRequest{Status: ptr("on_delivery")})
	s.Require().NoError(err)
	s.Equal(models.StatusOnDelivery, updated.Status)

	updated, err = s.orders.Update(s.ctx, order.ID, types.PatchOrderRequest{Status: ptr("delivered")})
	s.Require().NoError(err)
	s.Equal(models.StatusDelivered, updated.Status)

	_, err = s.orders.Update(s.ctx, order.ID, types.PatchOrderRequest{Status: ptr("waiting")})
	s.Contains(requireFields(s.T(), err), "status")

	_, err = s.orders.Update(s.ctx, order.ID, types.PatchOrderRequest{Status: ptr("lost")})
	s.Contains(requireFields(s.T(), err), "status")
}

func (s *OrderSuite) TestFullUpdateKeepsStatusAndLines() {
	order := testhelpers.CreateOrder(s.T(), s.db, s.catalog.Pizza.ID, s.catalog.Small.ID, 2)

	updated, err := s.orders.Update(s.ctx, order.ID, types.OrderRequest{
		Name:    "Jo",
		Email:   "jo@example.com",
		Phone:   "+1 650-253-0000",
		Address: "Main St",
		Home:    "1",
	}.Patch())
	s.Require().NoError(err)
	s.Equal("Jo", updated.Name)
	s.Equal("+16502530000", updated.Phone)
	s.Equal(models.StatusWaiting, updated.Status)
	s.Len(updated.OrderingFood, 1)
	s.Equal("19.98", updated.TotalPrice().StringFixed(2))
}

func (s *OrderSuite) TestDeleteOrderCascades() {
	order := testhelpers.CreateOrder(s.T(), s.db, s.catalog.Pizza.ID, s.catalog.Small.ID, 2)

	s.Require().NoError(s.orders.Delete(s.ctx, order.ID))
	s.Zero(s.count(&models.Order{}))
	s.Zero(s.count(&models.OrderingFood{}))
	s.Zero(s.count(&models.SizeForSale{}))
	s.Equal(int64(3), s.count(&models.Size{}))

	s.ErrorIs(s.orders.Delete(s.ctx, order.ID), service.ErrNotFound)
}

func (s *OrderSuite) TestOrderListing() {
	pizzaOrder := testhelpers.CreateOrder(s.T(), s.db, s.catalog.Pizza.ID, s.catalog.Small.ID, 1)
	saladOrder := testhelpers.CreateOrder(s.T(), s.db, s.catalog.Salad.ID, s.catalog.Bowl.ID, 1)
	s.Require().NoError(s.db.Model(&models.Order{}).Where("id = ?", saladOrder.ID).
		Updates(map[string]any{"status": models.StatusCanceled, "name": "Bakyt"}).Error)

	res, err := s.orders.List(s.ctx, service.ListParams{})
	s.Require().NoError(err)
	s.Require().Len(res.Items, 2)
	s.Equal(saladOrder.ID, res.Items[0].ID)
	s.Equal("6.00", res.Items[0].TotalPrice().StringFixed(2))

	res, err = s.orders.List(s.ctx, service.ListParams{Filters: map[string]string{"ordering_food__food": "1"}})
	s.Require().NoError(err)
	s.Require().Len(res.Items, 1)
	s.Equal(pizzaOrder.ID, res.Items[0].ID)

	res, err = s.orders.List(s.ctx, service.ListParams{Filters: map[string]string{"status": "canceled"}})
	s.Require().NoError(err)
	s.Require().Len(res.Items, 1)
	s.Equal(saladOrder.ID, res.Items[0].ID)

	_, err = s.orders.List(s.ctx, service.ListParams{Filters: map[string]string{"status": "lost"}})
	s.Contains(requireFields(s.T(), err), "status")

	res, err = s.orders.List(s.ctx, service.ListParams{Search: "bakyt"})
	s.Require().NoError(err)
	s.Equal(int64(1), res.Count)

	res, err = s.orders.List(s.ctx, service.ListParams{Ordering: "created_at"})
	s.Require().NoError(err)
	s.Equal(pizzaOrder.ID, res.Items[0].ID)
}

func (s *OrderSuite) TestOrderingFoodLifecycle() {
	order := testhelpers.CreateOrder(s.T(), s.db, s.catalog.Pizza.ID, s.catalog.Small.ID, 1)

	line, err := s.lines.Create(s.ctx, types.CreateOrderingFoodRequest{
		Order:        order.ID,
		Food:         s.catalog.Salad.ID,
		SizesForSale: []types.SizeSelectionRequest{{Size: s.catalog.Bowl.ID, Quantity: ptr(2)}},
	})
	s.Require().NoError(err)
	s.Equal(order.ID, line.OrderID)
	s.Equal("12.00", line.TotalPrice().StringFixed(2))

	reloaded, err := s.orders.Get(s.ctx, order.ID)
	s.Require().NoError(err)
	s.Equal("21.99", reloaded.TotalPrice().StringFixed(2))

	_, err = s.lines.Update(s.ctx, line.ID, types.PatchOrderingFoodRequest{Food: &s.catalog.Pizza.ID})
	s.Equal([]string{`Size "bowl" of this line does not belong to food "Margherita".`}, requireFields(s.T(), err)["food"])

	_, err = s.lines.Create(s.ctx, types.CreateOrderingFoodRequest{Order: 404, Food: s.catalog.Pizza.ID})
	s.Contains(requireFields(s.T(), err), "order")

	other := testhelpers.CreateOrder(s.T(), s.db, s.catalog.Pizza.ID, s.catalog.Large.ID, 1)
	moved, err := s.lines.Update(s.ctx, line.ID, types.OrderingFoodRequest{Order: other.ID, Food: s.catalog.Salad.ID}.Patch())
	s.Require().NoError(err)
	s.Equal(other.ID, moved.OrderID)

	res, err := s.lines.List(s.ctx, service.ListParams{Filters: map[string]string{"order": "2"}})
	s.Require().NoError(err)
	s.Equal(int64(2), res.Count)

	s.Require().NoError(s.lines.Delete(s.ctx, line.ID))
	var selections int64
	s.Require().NoError(s.db.Model(&models.SizeForSale{}).Where("ordering_food_id = ?", line.ID).Count(&selections).Error)
	s.Zero(selections)
	_, err = s.lines.Get(s.ctx, line.ID)
	s.ErrorIs(err, service.ErrNotFound)
}
