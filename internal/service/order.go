package service

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/pageza/foodcourt/backend/internal/models"
	"github.com/pageza/foodcourt/backend/internal/types"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var statusChoices = []string{
	string(models.StatusWaiting),
	string(models.StatusCanceled),
	string(models.StatusOnDelivery),
	string(models.StatusDelivered),
}

var orderList = listSpec{
	search: []string{"orders.name", "orders.email", "orders.phone", "orders.address", "orders.home"},
	ordering: map[string]string{
		"created_at": "orders.created_at",
	},
	defaultOrder: "orders.created_at DESC, orders.id DESC",
	filters: map[string]filterFunc{
		"ordering_food__food": orderFoodFilter,
		"food":                orderFoodFilter,
		"status":              choiceFilter("orders.status", statusChoices...),
	},
}

// orderFoodFilter keeps orders having at least one line for the given food.
func orderFoodFilter(q *gorm.DB, value string) (*gorm.DB, error) {
	next, err := idFilter("ordering_foods.food_id")(q.Session(&gorm.Session{NewDB: true}).Model(&models.OrderingFood{}).Select("ordering_foods.order_id"), value)
	if err != nil {
		return nil, err
	}
	return q.Where("orders.id IN (?)", next), nil
}

// withOrderLines preloads the lines, their foods and selected sizes.
func withOrderLines(db *gorm.DB) *gorm.DB {
	byID := func(db *gorm.DB) *gorm.DB { return db.Order("id") }
	return db.
		Preload("OrderingFood", byID).
		Scopes(withFoodChildren("OrderingFood.Food.")).
		Preload("OrderingFood.SizesForSale", byID).
		Preload("OrderingFood.SizesForSale.Size")
}

// OrderService handles customer orders
type OrderService struct {
	db          *gorm.DB
	phoneRegion string
}

// NewOrderService creates a new OrderService. Phone numbers without a country
// code are parsed for phoneRegion.
func NewOrderService(db *gorm.DB, phoneRegion string) *OrderService {
	return &OrderService{db: db, phoneRegion: phoneRegion}
}

func (s *OrderService) List(ctx context.Context, p ListParams) (ListResult[models.Order], error) {
	q, err := orderList.apply(s.db.WithContext(ctx).Model(&models.Order{}), p)
	if err != nil {
		return ListResult[models.Order]{}, err
	}
	var orders []models.Order
	return paginate(q, p, orderList.orderBy(p.Ordering), &orders, withOrderLines)
}

// Get loads an order with everything needed to price it.
func (s *OrderService) Get(ctx context.Context, id uint) (*models.Order, error) {
	var order models.Order
	if err := s.db.WithContext(ctx).Scopes(withOrderLines).First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("order", id)
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	return &order, nil
}

// Create validates the order, its lines and their size selections, then
// persists all of them in one transaction and returns the reloaded order.
func (s *OrderService) Create(ctx context.Context, req types.CreateOrderRequest) (*models.Order, error) {
	verr := NewValidationError()
	if utf8.RuneCountInString(req.Name) < models.MinOrderNameLength {
		verr.Add("name", fmt.Sprintf("Name must be at least %d characters", models.MinOrderNameLength))
	}
	order := models.Order{
		Name:    req.Name,
		Email:   req.Email,
		Address: req.Address,
		Home:    req.Home,
		Status:  models.StatusWaiting,
	}
	if req.Status != "" {
		order.Status = models.OrderStatus(req.Status)
	}
	s.checkOrderFields(verr, &order, req.Phone)

	lines := make([]models.OrderingFood, 0, len(req.OrderingFood))
	for i, l := range req.OrderingFood {
		line, err := buildLine(ctx, s.db, verr, fmt.Sprintf("ordering_food.%d.", i), l.Food, l.SizesForSale)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	if err := verr.Err(); err != nil {
		return nil, err
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(&order).Error; err != nil {
			return fmt.Errorf("create order: %w", err)
		}
		for i := range lines {
			lines[i].OrderID = order.ID
			if err := createLine(tx, &lines[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Ctx(ctx).Info().
		Uint("order_id", order.ID).
		Int("lines", len(lines)).
		Msg("order created")
	return s.Get(ctx, order.ID)
}

// Update changes the order's own fields. Lines are managed through the
// ordering food resource.
func (s *OrderService) Update(ctx context.Context, id uint, req types.PatchOrderRequest) (*models.Order, error) {
	var order models.Order
	if err := first(ctx, s.db, &order, "order", id); err != nil {
		return nil, err
	}
	previous := order.Status

	verr := NewValidationError()
	if req.Name != nil {
		order.Name = *req.Name
	}
	if req.Email != nil {
		order.Email = *req.Email
	}
	if req.Address != nil {
		order.Address = *req.Address
	}
	if req.Home != nil {
		order.Home = *req.Home
	}
	if req.Status != nil {
		next := models.OrderStatus(*req.Status)
		if next.Valid() && !previous.CanTransitionTo(next) {
			verr.Add("status", fmt.Sprintf("Cannot change status from %q to %q.", previous, next))
		}
		order.Status = next
	}
	phone := order.Phone
	if req.Phone != nil {
		phone = *req.Phone
	}
	s.checkOrderFields(verr, &order, phone)
	if err := verr.Err(); err != nil {
		return nil, err
	}

	if err := s.save(ctx, &order, previous); err != nil {
		return nil, err
	}
	if order.Status != previous {
		log.Ctx(ctx).Info().
			Uint("order_id", id).
			Str("from", string(previous)).
			Str("to", string(order.Status)).
			Msg("order status changed")
	}
	return s.Get(ctx, id)
}

// save writes the order's own fields only while the stored status is still
// previous, so two requests cannot both move the order out of the same status.
func (s *OrderService) save(ctx context.Context, order *models.Order, previous models.OrderStatus) error {
	res := s.db.WithContext(ctx).Model(order).Where("status = ?", previous).Updates(map[string]interface{}{
		"name":    order.Name,
		"email":   order.Email,
		"phone":   order.Phone,
		"address": order.Address,
		"home":    order.Home,
		"status":  order.Status,
	})
	if res.Error != nil {
		return fmt.Errorf("update order: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return FieldError("status", fmt.Sprintf("Order status changed from %q by another request; reload and retry.", previous))
	}
	return nil
}

// Delete removes the order, its lines and their size selections.
func (s *OrderService) Delete(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var order models.Order
		if err := first(ctx, tx, &order, "order", id); err != nil {
			return err
		}
		lineIDs := tx.Model(&models.OrderingFood{}).Select("id").Where("order_id = ?", id)
		if err := tx.Where("ordering_food_id IN (?)", lineIDs).Delete(&models.SizeForSale{}).Error; err != nil {
			return fmt.Errorf("delete size selections: %w", err)
		}
		if err := tx.Where("order_id = ?", id).Delete(&models.OrderingFood{}).Error; err != nil {
			return fmt.Errorf("delete order lines: %w", err)
		}
		if err := tx.Delete(&order).Error; err != nil {
			return fmt.Errorf("delete order: %w", err)
		}
		log.Ctx(ctx).Info().Uint("order_id", id).Msg("order deleted")
		return nil
	})
}

// checkOrderFields validates the scalar order fields and stores the
// normalized phone number on order.
func (s *OrderService) checkOrderFields(verr *ValidationError, order *models.Order, phone string) {
	if !order.Status.Valid() {
		verr.Add("status", fmt.Sprintf("%q is not a valid choice.", order.Status))
	}
	normalized, err := models.NormalizePhone(phone, s.phoneRegion)
	if err != nil {
		verr.Add("phone", "Enter a valid phone number.")
		return
	}
	order.Phone = normalized
}

// buildLine validates one order line and its selections against the line's
// food and returns the unsaved line.
func buildLine(ctx context.Context, db *gorm.DB, verr *ValidationError, prefix string, foodID uint, selections []types.SizeSelectionRequest) (models.OrderingFood, error) {
	line := models.OrderingFood{FoodID: foodID}

	var food models.Food
	err := db.WithContext(ctx).Preload("Sizes").First(&food, foodID).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		verr.Add(prefix+"food", missingPK(foodID))
		return line, nil
	case err != nil:
		return line, fmt.Errorf("get food: %w", err)
	}

	for j, sel := range selections {
		field := fmt.Sprintf("%ssizes_for_sale.%d.size", prefix, j)
		if err := checkSelection(ctx, db, verr, field, &food, sel.Size); err != nil {
			return line, err
		}
		line.SizesForSale = append(line.SizesForSale, models.SizeForSale{
			SizeID:   sel.Size,
			Quantity: sel.QuantityOrDefault(),
		})
	}
	return line, nil
}

// checkSelection enforces that a selected size exists and belongs to food.
func checkSelection(ctx context.Context, db *gorm.DB, verr *ValidationError, field string, food *models.Food, sizeID uint) error {
	if food.HasSize(sizeID) {
		return nil
	}
	var size models.Size
	err := db.WithContext(ctx).First(&size, sizeID).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		verr.Add(field, missingPK(sizeID))
	case err != nil:
		return fmt.Errorf("get size: %w", err)
	default:
		verr.Add(field, fmt.Sprintf("Size %q does not belong to food %q.", size.Name, food.Name))
	}
	return nil
}

// createLine inserts a line and its selections inside tx.
func createLine(tx *gorm.DB, line *models.OrderingFood) error {
	selections := line.SizesForSale
	if err := tx.Omit(clause.Associations).Create(line).Error; err != nil {
		return fmt.Errorf("create order line: %w", err)
	}
	for i := range selections {
		selections[i].OrderingFoodID = line.ID
	}
	if len(selections) > 0 {
		if err := tx.Omit(clause.Associations).Create(&selections).Error; err != nil {
			return fmt.Errorf("create size selections: %w", err)
		}
	}
	line.SizesForSale = selections
	return nil
}
