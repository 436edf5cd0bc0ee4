package models

import (
	"time"
)

// OrderStatus is the delivery state of an order.
type OrderStatus string

const (
	StatusWaiting    OrderStatus = "waiting"
	StatusCanceled   OrderStatus = "canceled"
	StatusOnDelivery OrderStatus = "on_delivery"
	StatusDelivered  OrderStatus = "delivered"
)

// OrderStatuses lists every accepted status value.
var OrderStatuses = []OrderStatus{StatusWaiting, StatusCanceled, StatusOnDelivery, StatusDelivered}

// transitions maps a status to the statuses it may move to.
var transitions = map[OrderStatus][]OrderStatus{
	StatusWaiting:    {StatusOnDelivery, StatusCanceled},
	StatusOnDelivery: {StatusDelivered, StatusCanceled},
}

func (s OrderStatus) Valid() bool {
	for _, v := range OrderStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// CanTransitionTo reports whether an order in status s may be moved to next.
// Re-applying the current status is always allowed.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	if s == next {
		return true
	}
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Order is a customer submission. Lines are owned and removed with it.
type Order struct {
	ID           uint           `gorm:"primarykey" json:"id"`
	Name         string         `gorm:"size:140;not null" json:"name"`
	Email        string         `gorm:"size:254;not null" json:"email"`
	Phone        string         `gorm:"size:128;not null" json:"phone"`
	Address      string         `gorm:"size:255;not null" json:"address"`
	Home         string         `gorm:"size:150;not null" json:"home"`
	Status       OrderStatus    `gorm:"size:20;not null;default:'waiting';index" json:"status"`
	OrderingFood []OrderingFood `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"ordering_food,omitempty"`
	CreatedAt    time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

func (Order) TableName() string {
	return "orders"
}

// OrderingFood is one dish inside an order, split across size selections.
type OrderingFood struct {
	ID           uint          `gorm:"primarykey" json:"id"`
	OrderID      uint          `gorm:"not null;index" json:"order"`
	FoodID       uint          `gorm:"not null;index" json:"food"`
	Food         Food          `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	SizesForSale []SizeForSale `gorm:"foreignKey:OrderingFoodID;constraint:OnDelete:CASCADE" json:"sizes_for_sale,omitempty"`
	CreatedAt    time.Time     `gorm:"index" json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

func (OrderingFood) TableName() string {
	return "ordering_foods"
}

// SizeForSale is a quantity of one size chosen for an order line.
type SizeForSale struct {
	ID             uint      `gorm:"primarykey" json:"id"`
	SizeID         uint      `gorm:"not null;index" json:"size"`
	Size           Size      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Quantity       uint      `gorm:"not null;default:1" json:"quantity"`
	OrderingFoodID uint      `gorm:"not null;index" json:"ordering_food"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (SizeForSale) TableName() string {
	return "size_for_sales"
}
