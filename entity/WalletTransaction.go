package entity

import (
	"gorm.io/gorm"
)

const (
	TxCredit = "credit"
	TxDebit  = "debit"
)

// WalletTransaction is one append-only ledger entry. Amount is always
// positive; Type carries the sign.
type WalletTransaction struct {
	gorm.Model
	Type        string `gorm:"not null" json:"type"`
	Amount      int64  `gorm:"not null" json:"amount"`
	Description string `json:"description"`
	Ref         string `gorm:"uniqueIndex" json:"ref"`

	UserID uint `gorm:"index;not null" json:"userId"`
	User   User `json:"-"`
}
