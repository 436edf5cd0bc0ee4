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
)

var categoryList = listSpec{
	search: []string{"categories.name"},
	ordering: map[string]string{
		"id":         "categories.id",
		"name":       "categories.name",
		"created_at": "categories.created_at",
	},
	defaultOrder: "categories.id",
}

// CategoryService handles menu category operations
type CategoryService struct {
	db *gorm.DB
}

// NewCategoryService creates a new CategoryService instance
func NewCategoryService(db *gorm.DB) *CategoryService {
	return &CategoryService{db: db}
}

func (s *CategoryService) List(ctx context.Context, p ListParams) (ListResult[models.Category], error) {
	q, err := categoryList.apply(s.db.WithContext(ctx).Model(&models.Category{}), p)
	if err != nil {
		return ListResult[models.Category]{}, err
	}
	var categories []models.Category
	return paginate(q, p, categoryList.orderBy(p.Ordering), &categories)
}

func (s *CategoryService) Get(ctx context.Context, id uint) (*models.Category, error) {
	var category models.Category
	if err := s.db.WithContext(ctx).First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("category", id)
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	return &category, nil
}

func (s *CategoryService) Create(ctx context.Context, req types.CategoryRequest) (*models.Category, error) {
	category := models.Category{Name: req.Name}
	if err := s.checkName(ctx, req.Name, 0); err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Create(&category).Error; err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}
	return &category, nil
}

// Update applies the provided fields. A full update passes every field.
func (s *CategoryService) Update(ctx context.Context, id uint, req types.PatchCategoryRequest) (*models.Category, error) {
	category, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		if err := s.checkName(ctx, *req.Name, id); err != nil {
			return nil, err
		}
		category.Name = *req.Name
	}
	if err := s.db.WithContext(ctx).Save(category).Error; err != nil {
		return nil, fmt.Errorf("update category: %w", err)
	}
	return category, nil
}

// Delete removes a category that no food refers to.
func (s *CategoryService) Delete(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var category models.Category
		if err := tx.First(&category, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFound("category", id)
			}
			return fmt.Errorf("get category: %w", err)
		}

		var foods int64
		if err := tx.Model(&models.Food{}).Where("category_id = ?", id).Count(&foods).Error; err != nil {
			return fmt.Errorf("count foods: %w", err)
		}
		if foods > 0 {
			return &ProtectedError{Resource: "category", ID: id, ReferencedBy: "food", Count: foods}
		}

		if err := tx.Delete(&category).Error; err != nil {
			return fmt.Errorf("delete category: %w", err)
		}
		log.Ctx(ctx).Info().Uint("category_id", id).Msg("category deleted")
		return nil
	})
}

func (s *CategoryService) checkName(ctx context.Context, name string, exclude uint) error {
	if strings.TrimSpace(name) == "" {
		return FieldError("name", msgBlank)
	}
	var n int64
	q := s.db.WithContext(ctx).Model(&models.Category{}).Where("name = ?", name)
	if exclude != 0 {
		q = q.Where("id <> ?", exclude)
	}
	if err := q.Count(&n).Error; err != nil {
		return fmt.Errorf("check category name: %w", err)
	}
	if n > 0 {
		return FieldError("name", "category with this name already exists.")
	}
	return nil
}
