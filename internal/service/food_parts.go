package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/pageza/foodcourt/backend/internal/models"
	"github.com/pageza/foodcourt/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var sizeList = listSpec{
	search: []string{"sizes.name", "CAST(sizes.price AS TEXT)"},
	ordering: map[string]string{
		"id":    "sizes.id",
		"name":  "sizes.name",
		"price": "sizes.price",
	},
	defaultOrder: "sizes.id",
	filters: map[string]filterFunc{
		"food": idFilter("sizes.food_id"),
	},
}

var makeupList = listSpec{
	search: []string{"food_makeups.name"},
	ordering: map[string]string{
		"id":         "food_makeups.id",
		"name":       "food_makeups.name",
		"created_at": "food_makeups.created_at",
	},
	defaultOrder: "food_makeups.created_at DESC, food_makeups.id DESC",
	filters: map[string]filterFunc{
		"food": idFilter("food_makeups.food_id"),
	},
}

var weightList = listSpec{
	search: []string{"CAST(food_weights.value AS TEXT)"},
	ordering: map[string]string{
		"id":         "food_weights.id",
		"value":      "food_weights.value",
		"created_at": "food_weights.created_at",
	},
	defaultOrder: "food_weights.created_at DESC, food_weights.id DESC",
	filters: map[string]filterFunc{
		"food": idFilter("food_weights.food_id"),
	},
}

// SizeService handles the priced sizes of a dish
type SizeService struct {
	db *gorm.DB
}

func NewSizeService(db *gorm.DB) *SizeService {
	return &SizeService{db: db}
}

func (s *SizeService) List(ctx context.Context, p ListParams) (ListResult[models.Size], error) {
	q, err := sizeList.apply(s.db.WithContext(ctx).Model(&models.Size{}), p)
	if err != nil {
		return ListResult[models.Size]{}, err
	}
	var sizes []models.Size
	return paginate(q, p, sizeList.orderBy(p.Ordering), &sizes)
}

func (s *SizeService) Get(ctx context.Context, id uint) (*models.Size, error) {
	var size models.Size
	if err := first(ctx, s.db, &size, "size", id); err != nil {
		return nil, err
	}
	return &size, nil
}

func (s *SizeService) Create(ctx context.Context, req types.SizeRequest) (*models.Size, error) {
	size := models.Size{Name: req.Name, FoodID: req.Food}
	if req.Price != nil {
		size.Price = *req.Price
	}
	if err := s.validate(ctx, &size); err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Create(&size).Error; err != nil {
		return nil, fmt.Errorf("create size: %w", err)
	}
	return &size, nil
}

func (s *SizeService) Update(ctx context.Context, id uint, req types.PatchSizeRequest) (*models.Size, error) {
	size, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		size.Name = *req.Name
	}
	if req.Price != nil {
		size.Price = *req.Price
	}
	moved := req.Food != nil && *req.Food != size.FoodID
	if req.Food != nil {
		size.FoodID = *req.Food
	}
	if err := s.validate(ctx, size); err != nil {
		return nil, err
	}
	if moved {
		if err := s.checkSelections(ctx, size); err != nil {
			return nil, err
		}
	}
	if err := s.db.WithContext(ctx).Save(size).Error; err != nil {
		return nil, fmt.Errorf("update size: %w", err)
	}
	return size, nil
}

// checkSelections refuses to move a size away from the food of any order line
// that already selected it.
func (s *SizeService) checkSelections(ctx context.Context, size *models.Size) error {
	var n int64
	err := s.db.WithContext(ctx).Model(&models.SizeForSale{}).
		Joins("JOIN ordering_foods ON ordering_foods.id = size_for_sales.ordering_food_id").
		Where("size_for_sales.size_id = ? AND ordering_foods.food_id <> ?", size.ID, size.FoodID).
		Count(&n).Error
	if err != nil {
		return fmt.Errorf("check size selections: %w", err)
	}
	if n > 0 {
		return FieldError("food", fmt.Sprintf("Size is selected in %d order line(s) of another food.", n))
	}
	return nil
}

// Delete removes the size together with every order selection of it.
func (s *SizeService) Delete(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var size models.Size
		if err := first(ctx, tx, &size, "size", id); err != nil {
			return err
		}
		if err := tx.Where("size_id = ?", id).Delete(&models.SizeForSale{}).Error; err != nil {
			return fmt.Errorf("delete size selections: %w", err)
		}
		if err := tx.Delete(&size).Error; err != nil {
			return fmt.Errorf("delete size: %w", err)
		}
		return nil
	})
}

func (s *SizeService) validate(ctx context.Context, size *models.Size) error {
	verr := NewValidationError()
	checkSize(verr, "", size.Name, &size.Price)
	if err := checkFood(ctx, s.db, verr, "food", size.FoodID); err != nil {
		return err
	}
	if verr.Fields["food"] == nil && size.Name != "" {
		var n int64
		q := s.db.WithContext(ctx).Model(&models.Size{}).Where("food_id = ? AND name = ?", size.FoodID, size.Name)
		if size.ID != 0 {
			q = q.Where("id <> ?", size.ID)
		}
		if err := q.Count(&n).Error; err != nil {
			return fmt.Errorf("check size name: %w", err)
		}
		if n > 0 {
			verr.Add("name", "Size with this name already exists for this food.")
		}
	}
	return verr.Err()
}

// MakeupService handles the ingredient lines of a dish
type MakeupService struct {
	db *gorm.DB
}

func NewMakeupService(db *gorm.DB) *MakeupService {
	return &MakeupService{db: db}
}

func (s *MakeupService) List(ctx context.Context, p ListParams) (ListResult[models.FoodMakeup], error) {
	q, err := makeupList.apply(s.db.WithContext(ctx).Model(&models.FoodMakeup{}), p)
	if err != nil {
		return ListResult[models.FoodMakeup]{}, err
	}
	var makeups []models.FoodMakeup
	return paginate(q, p, makeupList.orderBy(p.Ordering), &makeups)
}

func (s *MakeupService) Get(ctx context.Context, id uint) (*models.FoodMakeup, error) {
	var makeup models.FoodMakeup
	if err := first(ctx, s.db, &makeup, "food makeup", id); err != nil {
		return nil, err
	}
	return &makeup, nil
}

func (s *MakeupService) Create(ctx context.Context, req types.MakeupRequest) (*models.FoodMakeup, error) {
	makeup := models.FoodMakeup{Name: req.Name, FoodID: req.Food}
	if err := s.validate(ctx, &makeup); err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Create(&makeup).Error; err != nil {
		return nil, fmt.Errorf("create food makeup: %w", err)
	}
	return &makeup, nil
}

func (s *MakeupService) Update(ctx context.Context, id uint, req types.PatchMakeupRequest) (*models.FoodMakeup, error) {
	makeup, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		makeup.Name = *req.Name
	}
	if req.Food != nil {
		makeup.FoodID = *req.Food
	}
	if err := s.validate(ctx, makeup); err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Save(makeup).Error; err != nil {
		return nil, fmt.Errorf("update food makeup: %w", err)
	}
	return makeup, nil
}

func (s *MakeupService) Delete(ctx context.Context, id uint) error {
	var makeup models.FoodMakeup
	if err := first(ctx, s.db, &makeup, "food makeup", id); err != nil {
		return err
	}
	if err := s.db.WithContext(ctx).Delete(&makeup).Error; err != nil {
		return fmt.Errorf("delete food makeup: %w", err)
	}
	return nil
}

func (s *MakeupService) validate(ctx context.Context, m *models.FoodMakeup) error {
	verr := NewValidationError()
	if strings.TrimSpace(m.Name) == "" {
		verr.Add("name", msgBlank)
	}
	if err := checkFood(ctx, s.db, verr, "food", m.FoodID); err != nil {
		return err
	}
	return verr.Err()
}

// WeightService handles the portion weights of a dish
type WeightService struct {
	db *gorm.DB
}

func NewWeightService(db *gorm.DB) *WeightService {
	return &WeightService{db: db}
}

func (s *WeightService) List(ctx context.Context, p ListParams) (ListResult[models.FoodWeight], error) {
	q, err := weightList.apply(s.db.WithContext(ctx).Model(&models.FoodWeight{}), p)
	if err != nil {
		return ListResult[models.FoodWeight]{}, err
	}
	var weights []models.FoodWeight
	return paginate(q, p, weightList.orderBy(p.Ordering), &weights)
}

func (s *WeightService) Get(ctx context.Context, id uint) (*models.FoodWeight, error) {
	var weight models.FoodWeight
	if err := first(ctx, s.db, &weight, "food weight", id); err != nil {
		return nil, err
	}
	return &weight, nil
}

func (s *WeightService) Create(ctx context.Context, req types.WeightRequest) (*models.FoodWeight, error) {
	weight := models.FoodWeight{FoodID: req.Food}
	if req.Value != nil {
		weight.Value = *req.Value
	}
	if err := s.validate(ctx, &weight); err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Create(&weight).Error; err != nil {
		return nil, fmt.Errorf("create food weight: %w", err)
	}
	return &weight, nil
}

func (s *WeightService) Update(ctx context.Context, id uint, req types.PatchWeightRequest) (*models.FoodWeight, error) {
	weight, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Value != nil {
		weight.Value = *req.Value
	}
	if req.Food != nil {
		weight.FoodID = *req.Food
	}
	if err := s.validate(ctx, weight); err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Save(weight).Error; err != nil {
		return nil, fmt.Errorf("update food weight: %w", err)
	}
	return weight, nil
}

func (s *WeightService) Delete(ctx context.Context, id uint) error {
	var weight models.FoodWeight
	if err := first(ctx, s.db, &weight, "food weight", id); err != nil {
		return err
	}
	if err := s.db.WithContext(ctx).Delete(&weight).Error; err != nil {
		return fmt.Errorf("delete food weight: %w", err)
	}
	return nil
}

func (s *WeightService) validate(ctx context.Context, w *models.FoodWeight) error {
	verr := NewValidationError()
	checkWeight(verr, "", &w.Value)
	if err := checkFood(ctx, s.db, verr, "food", w.FoodID); err != nil {
		return err
	}
	return verr.Err()
}

func checkSize(verr *ValidationError, prefix, name string, price *decimal.Decimal) {
	if strings.TrimSpace(name) == "" {
		verr.Add(prefix+"name", msgBlank)
	}
	if price == nil {
		verr.Add(prefix+"price", msgRequired)
		return
	}
	verr.AddAll(prefix+"price", models.CheckDecimal(*price, models.PriceDigits, models.PricePlaces))
}

func checkWeight(verr *ValidationError, prefix string, value *decimal.Decimal) {
	if value == nil {
		verr.Add(prefix+"value", msgRequired)
		return
	}
	verr.AddAll(prefix+"value", models.CheckDecimal(*value, models.WeightDigits, models.WeightPlaces))
}

func checkFood(ctx context.Context, db *gorm.DB, verr *ValidationError, field string, id uint) error {
	if id == 0 {
		verr.Add(field, msgRequired)
		return nil
	}
	ok, err := exists(ctx, db, &models.Food{}, id)
	if err != nil {
		return err
	}
	if !ok {
		verr.Add(field, missingPK(id))
	}
	return nil
}

// first loads the row with the given id into dest or reports it missing.
func first(ctx context.Context, db *gorm.DB, dest interface{}, resource string, id uint) error {
	if err := db.WithContext(ctx).First(dest, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound(resource, id)
		}
		return fmt.Errorf("get %s: %w", resource, err)
	}
	return nil
}
