package entity

import (
	"gorm.io/gorm"
)

// Review targets either a restaurant (numeric id) or a meal kit
// (catalog key), so TargetID stays a string.
type Review struct {
	gorm.Model
	TargetID string `gorm:"index;not null" json:"targetId"`
	Rating   int    `gorm:"not null" json:"rating"`
	Comment  string `json:"comment"`
	Helpful  int    `gorm:"not null;default:0" json:"helpful"`

	UserID     uint   `gorm:"index;not null" json:"userId"`
	User       User   `json:"-"`
	AuthorName string `json:"authorName"`
	AuthorPic  string `json:"authorPic"`
}
