package entity

import (
	"gorm.io/gorm"
)

const (
	RoleUser    = "user"
	RolePartner = "partner"
	RoleRider   = "rider"
	RoleAdmin   = "admin"
)

const (
	UserActive    = "Active"
	UserSuspended = "Suspended"
)

type User struct {
	gorm.Model
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `json:"-"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Avatar   string `json:"avatar"`
	Role     string `gorm:"not null;default:user" json:"role"`
	Status   string `gorm:"not null;default:Active" json:"status"`

	// Wallet balance in cents. Invariant: equals the signed sum of the
	// user's transaction log and never goes negative.
	WalletBalance int64 `gorm:"not null;default:0" json:"walletBalance"`

	// Accrual-only loyalty balance.
	LoyaltyPoints int64 `gorm:"not null;default:0" json:"loyaltyPoints"`

	Transactions []WalletTransaction `json:"-"`
	Orders       []Order             `json:"-"`
	Reviews      []Review            `gorm:"foreignKey:UserID" json:"-"`
}
