package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Category groups dishes on the menu. A category cannot be removed while any
// Food still points at it.
type Category struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Name      string    `gorm:"size:200;not null;uniqueIndex" json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Category) TableName() string {
	return "categories"
}

// Food is a dish. Sizes, makeups and weights belong to it and go away with it.
type Food struct {
	ID          uint         `gorm:"primarykey" json:"id"`
	Name        string       `gorm:"size:100;not null" json:"name"`
	Image       string       `gorm:"size:255;not null" json:"image"`
	Description string       `gorm:"size:255;not null" json:"description"`
	CategoryID  uint         `gorm:"not null;index" json:"category"`
	Category    Category     `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	Sizes       []Size       `gorm:"foreignKey:FoodID;constraint:OnDelete:CASCADE" json:"sizes,omitempty"`
	Makeups     []FoodMakeup `gorm:"foreignKey:FoodID;constraint:OnDelete:CASCADE" json:"makeups,omitempty"`
	Weight      []FoodWeight `gorm:"foreignKey:FoodID;constraint:OnDelete:CASCADE" json:"weight,omitempty"`
	CreatedAt   time.Time    `gorm:"index" json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

func (Food) TableName() string {
	return "foods"
}

// Size is a priced portion of a Food. Names are unique within one food.
type Size struct {
	ID        uint            `gorm:"primarykey" json:"id"`
	Name      string          `gorm:"size:150;not null;uniqueIndex:idx_sizes_food_name" json:"name"`
	Price     decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"price"`
	FoodID    uint            `gorm:"not null;uniqueIndex:idx_sizes_food_name" json:"food"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func (Size) TableName() string {
	return "sizes"
}

// FoodMakeup is one ingredient line of a dish.
type FoodMakeup struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	FoodID    uint      `gorm:"not null;index" json:"food"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (FoodMakeup) TableName() string {
	return "food_makeups"
}

type FoodWeight struct {
	ID        uint            `gorm:"primarykey" json:"id"`
	Value     decimal.Decimal `gorm:"type:decimal(10,3);not null;default:0" json:"value"`
	FoodID    uint            `gorm:"not null;index" json:"food"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func (FoodWeight) TableName() string {
	return "food_weights"
}

// HasSize reports whether sizeID is one of the food's loaded sizes.
func (f *Food) HasSize(sizeID uint) bool {
	for _, s := range f.Sizes {
		if s.ID == sizeID {
			return true
		}
	}
	return false
}
