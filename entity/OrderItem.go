package entity

import (
	"gorm.io/gorm"
)

type OrderItem struct {
	gorm.Model
	ProductID string `json:"productId"`
	Title     string `json:"title"`
	UnitPrice int64  `json:"unitPrice"`
	Qty       int    `json:"qty"`
	Total     int64  `json:"total"`

	// Selected option names, comma-joined snapshot.
	Options string `json:"options,omitempty"`
	Note    string `json:"note,omitempty"`

	// Snapshot so order history survives catalog edits.
	RestaurantName string `json:"restaurantName"`

	OrderID uint  `gorm:"index;not null" json:"orderId"`
	Order   Order `json:"-"`
}
