package db_models

import (
	"github.com/google/uuid"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPaid      OrderStatus = "paid"
	OrderStatusCancelled OrderStatus = "cancelled"
)

type Order struct {
	BaseModel
	AccountID   uuid.UUID   `gorm:"index;not null"`
	OrderNumber string      `gorm:"size:64;uniqueIndex;not null"`
	Status      OrderStatus `gorm:"size:20;default:pending;index"`
	TotalAmount int64       `gorm:"not null"`

	Items   []OrderItem `gorm:"foreignKey:OrderID"`
	Account Account     `gorm:"foreignKey:AccountID"`
}

type OrderItem struct {
	BaseModel
	OrderID   uuid.UUID `gorm:"index;not null"`
	ProductID uuid.UUID `gorm:"index;not null"`
	Quantity  int       `gorm:"not null"`
	UnitPrice int64     `gorm:"not null"` // price at order time

	Product Product `gorm:"foreignKey:ProductID"`
}
