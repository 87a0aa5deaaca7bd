package entity

import (
	"gorm.io/gorm"
)

const (
	RestaurantActive    = "Active"
	RestaurantPending   = "Pending"
	RestaurantSuspended = "Suspended"
)

type Restaurant struct {
	gorm.Model
	Name    string `gorm:"not null" json:"name"`
	Cuisine string `json:"cuisine"`
	Image   string `json:"image"`
	Status  string `gorm:"not null;default:Active" json:"status"`

	// Aggregate maintained by the review service.
	Rating      float64 `gorm:"not null;default:0" json:"rating"`
	ReviewCount int64   `gorm:"not null;default:0" json:"reviewCount"`

	// Catalog blob; menu CRUD lives outside this service.
	MenuJSON string `json:"menu,omitempty"`

	OwnerID uint `gorm:"index" json:"ownerId"`
	Owner   User `gorm:"foreignKey:OwnerID" json:"-"`

	Orders []Order `json:"-"`
}
