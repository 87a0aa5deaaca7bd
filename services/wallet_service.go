package services

import (
	"errors"

	"toeat/entity"
	"toeat/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WalletService keeps the per-user balance and its append-only
// transaction log consistent: balance always equals the signed sum of
// the log, and a debit never drives it negative.
type WalletService struct {
	DB   *gorm.DB
	Repo *repository.WalletRepository
}

func NewWalletService(db *gorm.DB, repo *repository.WalletRepository) *WalletService {
	return &WalletService{DB: db, Repo: repo}
}

// Debit returns (false, nil) without mutating anything when the balance
// is insufficient. The caller is expected to abort the larger operation.
func (s *WalletService) Debit(userID uint, amount int64, description string) (bool, error) {
	if amount < 0 {
		return false, invalid("amount", "must be non-negative")
	}

	ok := false
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		u, err := s.Repo.GetUser(tx, userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return err
		}
		if amount > u.WalletBalance {
			return nil
		}

		t := entity.WalletTransaction{
			Type:        entity.TxDebit,
			Amount:      amount,
			Description: description,
			Ref:         uuid.NewString(),
			UserID:      userID,
		}
		if err := s.Repo.AppendTransaction(tx, &t); err != nil {
			return err
		}
		if err := s.Repo.SetBalance(tx, userID, u.WalletBalance-amount); err != nil {
			return err
		}
		ok = true
		return nil
	})
	return ok, err
}

func (s *WalletService) Credit(userID uint, amount int64, description string) error {
	if amount < 0 {
		return invalid("amount", "must be non-negative")
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		u, err := s.Repo.GetUser(tx, userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return err
		}

		t := entity.WalletTransaction{
			Type:        entity.TxCredit,
			Amount:      amount,
			Description: description,
			Ref:         uuid.NewString(),
			UserID:      userID,
		}
		if err := s.Repo.AppendTransaction(tx, &t); err != nil {
			return err
		}
		return s.Repo.SetBalance(tx, userID, u.WalletBalance+amount)
	})
}

func (s *WalletService) TopUp(userID uint, amount int64) error {
	if amount <= 0 {
		return invalid("amount", "must be positive")
	}
	return s.Credit(userID, amount, "Wallet Top Up")
}

type WalletView struct {
	Balance      int64                      `json:"balance"`
	Transactions []entity.WalletTransaction `json:"transactions"`
}

func (s *WalletService) View(userID uint) (*WalletView, error) {
	u, err := s.Repo.GetUser(s.DB, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	txs, err := s.Repo.ListTransactions(userID, 0)
	if err != nil {
		return nil, err
	}
	return &WalletView{Balance: u.WalletBalance, Transactions: txs}, nil
}
