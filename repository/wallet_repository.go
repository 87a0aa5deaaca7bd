package repository

import (
	"toeat/entity"

	"gorm.io/gorm"
)

type WalletRepository struct {
	DB *gorm.DB
}

func NewWalletRepository(db *gorm.DB) *WalletRepository {
	return &WalletRepository{DB: db}
}

func (r *WalletRepository) GetUser(tx *gorm.DB, userID uint) (*entity.User, error) {
	var u entity.User
	if err := tx.First(&u, userID).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *WalletRepository) AppendTransaction(tx *gorm.DB, t *entity.WalletTransaction) error {
	return tx.Create(t).Error
}

func (r *WalletRepository) SetBalance(tx *gorm.DB, userID uint, cents int64) error {
	return tx.Model(&entity.User{}).Where("id = ?", userID).
		Update("wallet_balance", cents).Error
}

func (r *WalletRepository) ListTransactions(userID uint, limit int) ([]entity.WalletTransaction, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	var txs []entity.WalletTransaction
	err := r.DB.Where("user_id = ?", userID).
		Order("id DESC").Limit(limit).
		Find(&txs).Error
	return txs, err
}
