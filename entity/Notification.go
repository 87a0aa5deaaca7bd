package entity

import (
	"gorm.io/gorm"
)

const (
	NotifOrderUpdate   = "order_update"
	NotifNewOrder      = "new_order"
	NotifPromo         = "promo"
	NotifSystem        = "system"
	NotifDisputeUpdate = "dispute_update"
)

// Notification is an in-app inbox record. Targeting: a nil TargetUserID
// and empty TargetRole means broadcast; TargetRole reaches every user of
// that role; TargetUserID reaches exactly one user.
type Notification struct {
	gorm.Model
	Type    string `gorm:"not null" json:"type"`
	Title   string `json:"title"`
	Message string `json:"message"`
	Read    bool   `gorm:"not null;default:false" json:"read"`

	TargetUserID *uint  `gorm:"index" json:"targetUserId,omitempty"`
	TargetRole   string `gorm:"index" json:"targetRole,omitempty"`
}

// VisibleTo applies the targeting rule for one user.
func (n *Notification) VisibleTo(userID uint, role string) bool {
	if n.TargetUserID != nil {
		return *n.TargetUserID == userID
	}
	if n.TargetRole != "" {
		return n.TargetRole == role
	}
	return true
}
