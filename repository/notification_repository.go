package repository

import (
	"toeat/entity"

	"gorm.io/gorm"
)

type NotificationRepository struct {
	DB *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{DB: db}
}

func (r *NotificationRepository) Create(n *entity.Notification) error {
	return r.DB.Create(n).Error
}

// visibleTo is the targeting rule: direct target, role target, or
// broadcast (no target at all).
func (r *NotificationRepository) visibleTo(userID uint, role string) *gorm.DB {
	return r.DB.Model(&entity.Notification{}).
		Where("target_user_id = ? OR (target_user_id IS NULL AND target_role = ?) OR (target_user_id IS NULL AND target_role = '')",
			userID, role)
}

func (r *NotificationRepository) ListVisibleTo(userID uint, role string, limit int) ([]entity.Notification, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	var out []entity.Notification
	err := r.visibleTo(userID, role).
		Order("id DESC").Limit(limit).
		Find(&out).Error
	return out, err
}

func (r *NotificationRepository) MarkAllRead(userID uint, role string) error {
	return r.visibleTo(userID, role).Update("read", true).Error
}

func (r *NotificationRepository) CountUnread(userID uint, role string) (int64, error) {
	var n int64
	err := r.visibleTo(userID, role).Where("read = ?", false).Count(&n).Error
	return n, err
}
