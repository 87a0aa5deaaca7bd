package repository

import (
	"toeat/entity"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) FindByEmail(email string) (*entity.User, error) {
	var user entity.User
	if err := r.DB.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByID(id uint) (*entity.User, error) {
	var user entity.User
	if err := r.DB.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) CountByEmail(email string) (int64, error) {
	var count int64
	if err := r.DB.Model(&entity.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *UserRepository) Create(user *entity.User) error {
	return r.DB.Create(user).Error
}

func (r *UserRepository) Update(userID uint, updates map[string]any) error {
	return r.DB.Model(&entity.User{}).Where("id = ?", userID).Updates(updates).Error
}

func (r *UserRepository) List(limit int) ([]entity.User, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	var users []entity.User
	err := r.DB.Order("id").Limit(limit).Find(&users).Error
	return users, err
}

// AddPoints increments the loyalty balance in place.
func (r *UserRepository) AddPoints(userID uint, points int64) (int64, error) {
	res := r.DB.Model(&entity.User{}).Where("id = ?", userID).
		Update("loyalty_points", gorm.Expr("loyalty_points + ?", points))
	return res.RowsAffected, res.Error
}
