package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/pageza/foodcourt/backend/internal/models"
	"github.com/pageza/foodcourt/backend/internal/types"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var orderingFoodList = listSpec{
	ordering: map[string]string{
		"created_at": "ordering_foods.created_at",
	},
	defaultOrder: "ordering_foods.created_at DESC, ordering_foods.id DESC",
	filters: map[string]filterFunc{
		"food":  idFilter("ordering_foods.food_id"),
		"order": idFilter("ordering_foods.order_id"),
	},
}

func withSelections(db *gorm.DB) *gorm.DB {
	return db.Preload("SizesForSale", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		Preload("SizesForSale.Size")
}

// OrderingFoodService handles single order lines
type OrderingFoodService struct {
	db *gorm.DB
}

func NewOrderingFoodService(db *gorm.DB) *OrderingFoodService {
	return &OrderingFoodService{db: db}
}

func (s *OrderingFoodService) List(ctx context.Context, p ListParams) (ListResult[models.OrderingFood], error) {
	q, err := orderingFoodList.apply(s.db.WithContext(ctx).Model(&models.OrderingFood{}), p)
	if err != nil {
		return ListResult[models.OrderingFood]{}, err
	}
	var lines []models.OrderingFood
	return paginate(q, p, orderingFoodList.orderBy(p.Ordering), &lines, withSelections)
}

func (s *OrderingFoodService) Get(ctx context.Context, id uint) (*models.OrderingFood, error) {
	var line models.OrderingFood
	if err := s.db.WithContext(ctx).Scopes(withSelections).First(&line, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("ordering food", id)
		}
		return nil, fmt.Errorf("get ordering food: %w", err)
	}
	return &line, nil
}

// Create adds a line with its size selections to an existing order.
func (s *OrderingFoodService) Create(ctx context.Context, req types.CreateOrderingFoodRequest) (*models.OrderingFood, error) {
	verr := NewValidationError()
	if err := s.checkOrder(ctx, verr, req.Order); err != nil {
		return nil, err
	}
	line, err := buildLine(ctx, s.db, verr, "", req.Food, req.SizesForSale)
	if err != nil {
		return nil, err
	}
	if err := verr.Err(); err != nil {
		return nil, err
	}

	line.OrderID = req.Order
	if err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return createLine(tx, &line)
	}); err != nil {
		return nil, err
	}
	log.Ctx(ctx).Info().Uint("order_id", line.OrderID).Uint("ordering_food_id", line.ID).Msg("order line created")
	return s.Get(ctx, line.ID)
}

// Update moves a line to another order or food. Switching the food requires
// every existing selection to belong to the new food.
func (s *OrderingFoodService) Update(ctx context.Context, id uint, req types.PatchOrderingFoodRequest) (*models.OrderingFood, error) {
	line, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	verr := NewValidationError()
	if req.Order != nil && *req.Order != line.OrderID {
		if err := s.checkOrder(ctx, verr, *req.Order); err != nil {
			return nil, err
		}
		line.OrderID = *req.Order
	}
	if req.Food != nil && *req.Food != line.FoodID {
		var food models.Food
		err := s.db.WithContext(ctx).Preload("Sizes").First(&food, *req.Food).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			verr.Add("food", missingPK(*req.Food))
		case err != nil:
			return nil, fmt.Errorf("get food: %w", err)
		default:
			for _, sel := range line.SizesForSale {
				if !food.HasSize(sel.SizeID) {
					verr.Add("food", fmt.Sprintf("Size %q of this line does not belong to food %q.", sel.Size.Name, food.Name))
				}
			}
		}
		line.FoodID = *req.Food
	}
	if err := verr.Err(); err != nil {
		return nil, err
	}

	if err := s.db.WithContext(ctx).Model(&models.OrderingFood{}).Where("id = ?", id).
		Updates(map[string]interface{}{"order_id": line.OrderID, "food_id": line.FoodID}).Error; err != nil {
		return nil, fmt.Errorf("update ordering food: %w", err)
	}
	return s.Get(ctx, id)
}

// Delete removes the line and its size selections.
func (s *OrderingFoodService) Delete(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var line models.OrderingFood
		if err := first(ctx, tx, &line, "ordering food", id); err != nil {
			return err
		}
		if err := tx.Where("ordering_food_id = ?", id).Delete(&models.SizeForSale{}).Error; err != nil {
			return fmt.Errorf("delete size selections: %w", err)
		}
		if err := tx.Omit(clause.Associations).Delete(&line).Error; err != nil {
			return fmt.Errorf("delete ordering food: %w", err)
		}
		return nil
	})
}

func (s *OrderingFoodService) checkOrder(ctx context.Context, verr *ValidationError, id uint) error {
	if id == 0 {
		verr.Add("order", msgRequired)
		return nil
	}
	ok, err := exists(ctx, s.db, &models.Order{}, id)
	if err != nil {
		return err
	}
	if !ok {
		verr.Add("order", missingPK(id))
	}
	return nil
}
