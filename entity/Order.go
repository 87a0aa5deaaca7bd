package entity

import (
	"gorm.io/gorm"
)

const (
	DeliveryMethodDelivery = "delivery"
	DeliveryMethodPickup   = "pickup"
)

const (
	PaymentCash   = "cash"
	PaymentCard   = "card"
	PaymentWallet = "wallet"
)

const (
	DisputeOpen     = "Open"
	DisputeResolved = "Resolved"
	DisputeRefunded = "Refunded"
)

type Order struct {
	gorm.Model
	Status OrderStatus `gorm:"not null" json:"status"`

	Subtotal int64 `json:"subtotal"`
	Tip      int64 `json:"tip"`
	Total    int64 `json:"total"`

	DeliveryMethod  string `json:"deliveryMethod"`
	PaymentMethod   string `json:"paymentMethod"`
	DeliveryAddress string `json:"deliveryAddress,omitempty"`

	UserID       uint   `gorm:"index;not null" json:"userId"`
	User         User   `json:"-"`
	CustomerName string `json:"customerName"`

	RestaurantID   *uint       `gorm:"index" json:"restaurantId,omitempty"`
	Restaurant     *Restaurant `json:"-"`
	RestaurantName string      `json:"restaurantName"`

	OrderItems []OrderItem `json:"items"`

	// Dispute sub-state. Independent of delivery progress except that a
	// Refunded resolution forces Status to Cancelled.
	IsDisputed    bool   `gorm:"not null;default:false" json:"isDisputed"`
	DisputeReason string `json:"disputeReason,omitempty"`
	DisputeStatus string `json:"disputeStatus,omitempty"`
}
