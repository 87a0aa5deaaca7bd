package repository

import (
	"toeat/entity"

	"gorm.io/gorm"
)

type ReviewRepository struct {
	DB *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{DB: db}
}

func (r *ReviewRepository) Create(review *entity.Review) error {
	return r.DB.Create(review).Error
}

func (r *ReviewRepository) ListForTarget(targetID string, limit int) ([]entity.Review, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	var out []entity.Review
	err := r.DB.Where("target_id = ?", targetID).
		Order("id DESC").Limit(limit).
		Find(&out).Error
	return out, err
}

// AggregateForTarget returns sum and count; the service does the rounding.
func (r *ReviewRepository) AggregateForTarget(targetID string) (sum int64, count int64, err error) {
	var row struct {
		Sum   int64
		Count int64
	}
	err = r.DB.Model(&entity.Review{}).
		Select("COALESCE(SUM(rating),0) AS sum, COUNT(*) AS count").
		Where("target_id = ?", targetID).
		Scan(&row).Error
	return row.Sum, row.Count, err
}
