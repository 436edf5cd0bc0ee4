package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/pageza/foodcourt/backend/internal/models"
	"github.com/pageza/foodcourt/backend/internal/types"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var foodList = listSpec{
	search: []string{"foods.name", "foods.description"},
	ordering: map[string]string{
		"name":       "foods.name",
		"created_at": "foods.created_at",
	},
	defaultOrder: "foods.created_at DESC, foods.id DESC",
	filters: map[string]filterFunc{
		"category":   idFilter("foods.category_id"),
		"created_at": dateRangeFilter("foods.created_at"),
	},
}

// withFoodChildren preloads everything the food read shape renders.
func withFoodChildren(prefix string) func(*gorm.DB) *gorm.DB {
	byID := func(db *gorm.DB) *gorm.DB { return db.Order("id") }
	return func(db *gorm.DB) *gorm.DB {
		return db.
			Preload(prefix+"Category").
			Preload(prefix+"Makeups", byID).
			Preload(prefix+"Sizes", byID).
			Preload(prefix+"Weight", byID)
	}
}

// FoodService handles dish operations, including the nested create of a dish
// with its makeups, sizes and weights.
type FoodService struct {
	db *gorm.DB
}

// NewFoodService creates a new FoodService instance
func NewFoodService(db *gorm.DB) *FoodService {
	return &FoodService{db: db}
}

func (s *FoodService) List(ctx context.Context, p ListParams) (ListResult[models.Food], error) {
	q, err := foodList.apply(s.db.WithContext(ctx).Model(&models.Food{}), p)
	if err != nil {
		return ListResult[models.Food]{}, err
	}
	var foods []models.Food
	return paginate(q, p, foodList.orderBy(p.Ordering), &foods, withFoodChildren(""))
}

// Get loads a food with its category and children.
func (s *FoodService) Get(ctx context.Context, id uint) (*models.Food, error) {
	return s.get(s.db.WithContext(ctx), id)
}

func (s *FoodService) get(db *gorm.DB, id uint) (*models.Food, error) {
	var food models.Food
	if err := db.Scopes(withFoodChildren("")).First(&food, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("food", id)
		}
		return nil, fmt.Errorf("get food: %w", err)
	}
	return &food, nil
}

// Create validates the dish and every nested collection, then persists the
// dish and its children in one transaction.
func (s *FoodService) Create(ctx context.Context, req types.CreateFoodRequest) (*models.Food, error) {
	verr := NewValidationError()
	checkFoodFields(verr, req.Flat())
	if err := checkCategory(ctx, s.db, verr, req.Category); err != nil {
		return nil, err
	}
	seen := map[string]bool{}
	for i, size := range req.Sizes {
		prefix := fmt.Sprintf("sizes.%d.", i)
		checkSize(verr, prefix, size.Name, size.Price)
		if seen[size.Name] {
			verr.Add(prefix+"name", "Size with this name already exists for this food.")
		}
		seen[size.Name] = true
	}
	for i, m := range req.Makeups {
		if strings.TrimSpace(m.Name) == "" {
			verr.Add(fmt.Sprintf("makeups.%d.name", i), msgBlank)
		}
	}
	for i, w := range req.Weight {
		checkWeight(verr, fmt.Sprintf("weight.%d.", i), w.Value)
	}
	if err := verr.Err(); err != nil {
		return nil, err
	}

	food := models.Food{
		Name:        req.Name,
		Image:       req.Image,
		Description: req.Description,
		CategoryID:  req.Category,
	}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(&food).Error; err != nil {
			return fmt.Errorf("create food: %w", err)
		}

		makeups := make([]models.FoodMakeup, 0, len(req.Makeups))
		for _, m := range req.Makeups {
			makeups = append(makeups, models.FoodMakeup{Name: m.Name, FoodID: food.ID})
		}
		if len(makeups) > 0 {
			if err := tx.Create(&makeups).Error; err != nil {
				return fmt.Errorf("create makeups: %w", err)
			}
		}

		sizes := make([]models.Size, 0, len(req.Sizes))
		for _, sz := range req.Sizes {
			sizes = append(sizes, models.Size{Name: sz.Name, Price: *sz.Price, FoodID: food.ID})
		}
		if len(sizes) > 0 {
			if err := tx.Create(&sizes).Error; err != nil {
				return fmt.Errorf("create sizes: %w", err)
			}
		}

		weights := make([]models.FoodWeight, 0, len(req.Weight))
		for _, w := range req.Weight {
			weights = append(weights, models.FoodWeight{Value: *w.Value, FoodID: food.ID})
		}
		if len(weights) > 0 {
			if err := tx.Create(&weights).Error; err != nil {
				return fmt.Errorf("create weights: %w", err)
			}
		}

		food.Makeups, food.Sizes, food.Weight = makeups, sizes, weights
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Ctx(ctx).Info().Uint("food_id", food.ID).Int("sizes", len(food.Sizes)).Msg("food created")
	return &food, nil
}

// Update changes the dish's own fields. Children are never touched here.
func (s *FoodService) Update(ctx context.Context, id uint, req types.PatchFoodRequest) (*models.Food, error) {
	var food models.Food
	if err := s.db.WithContext(ctx).First(&food, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("food", id)
		}
		return nil, fmt.Errorf("get food: %w", err)
	}

	if req.Name != nil {
		food.Name = *req.Name
	}
	if req.Image != nil {
		food.Image = *req.Image
	}
	if req.Description != nil {
		food.Description = *req.Description
	}
	verr := NewValidationError()
	if req.Category != nil {
		if err := checkCategory(ctx, s.db, verr, *req.Category); err != nil {
			return nil, err
		}
		food.CategoryID = *req.Category
	}
	checkFoodFields(verr, types.FoodRequest{
		Name: food.Name, Image: food.Image, Description: food.Description, Category: food.CategoryID,
	})
	if err := verr.Err(); err != nil {
		return nil, err
	}

	if err := s.db.WithContext(ctx).Omit(clause.Associations).Save(&food).Error; err != nil {
		return nil, fmt.Errorf("update food: %w", err)
	}
	return &food, nil
}

// Delete removes a food and everything it owns. Foods still referenced by an
// order line are protected.
func (s *FoodService) Delete(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var food models.Food
		if err := tx.First(&food, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFound("food", id)
			}
			return fmt.Errorf("get food: %w", err)
		}

		var lines int64
		if err := tx.Model(&models.OrderingFood{}).Where("food_id = ?", id).Count(&lines).Error; err != nil {
			return fmt.Errorf("count order lines: %w", err)
		}
		if lines > 0 {
			return &ProtectedError{Resource: "food", ID: id, ReferencedBy: "ordering food", Count: lines}
		}

		sizeIDs := tx.Model(&models.Size{}).Select("id").Where("food_id = ?", id)
		if err := tx.Where("size_id IN (?)", sizeIDs).Delete(&models.SizeForSale{}).Error; err != nil {
			return fmt.Errorf("delete size selections: %w", err)
		}
		for _, child := range []interface{}{&models.Size{}, &models.FoodMakeup{}, &models.FoodWeight{}} {
			if err := tx.Where("food_id = ?", id).Delete(child).Error; err != nil {
				return fmt.Errorf("delete food children: %w", err)
			}
		}
		if err := tx.Delete(&food).Error; err != nil {
			return fmt.Errorf("delete food: %w", err)
		}
		log.Ctx(ctx).Info().Uint("food_id", id).Msg("food deleted")
		return nil
	})
}

func checkFoodFields(verr *ValidationError, f types.FoodRequest) {
	if strings.TrimSpace(f.Name) == "" {
		verr.Add("name", msgBlank)
	}
	if strings.TrimSpace(f.Image) == "" {
		verr.Add("image", msgRequired)
	}
}

func checkCategory(ctx context.Context, db *gorm.DB, verr *ValidationError, id uint) error {
	if id == 0 {
		verr.Add("category", msgRequired)
		return nil
	}
	ok, err := exists(ctx, db, &models.Category{}, id)
	if err != nil {
		return err
	}
	if !ok {
		verr.Add("category", missingPK(id))
	}
	return nil
}

// exists reports whether a row of model's table has the given id.
func exists(ctx context.Context, db *gorm.DB, model interface{}, id uint) (bool, error) {
	var n int64
	if err := db.WithContext(ctx).Model(model).Where("id = ?", id).Count(&n).Error; err != nil {
		return false, fmt.Errorf("check reference: %w", err)
	}
	return n > 0, nil
}
