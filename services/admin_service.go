package services

import (
	"errors"

	"toeat/entity"
	"toeat/repository"

	"gorm.io/gorm"
)

// AdminService carries the platform-admin operations that sit outside
// the order lifecycle itself: user moderation and ledger inspection.
type AdminService struct {
	Users  *repository.UserRepository
	Wallet *repository.WalletRepository
}

func NewAdminService(users *repository.UserRepository, wallet *repository.WalletRepository) *AdminService {
	return &AdminService{Users: users, Wallet: wallet}
}

func (s *AdminService) ListUsers(limit int) ([]entity.User, error) {
	return s.Users.List(limit)
}

// ToggleUserStatus flips Active <-> Suspended. Suspended users are
// refused at login.
func (s *AdminService) ToggleUserStatus(userID uint) (*entity.User, error) {
	u, err := s.Users.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	next := entity.UserSuspended
	if u.Status == entity.UserSuspended {
		next = entity.UserActive
	}
	if err := s.Users.Update(userID, map[string]any{"status": next}); err != nil {
		return nil, err
	}
	u.Status = next
	return u, nil
}

func (s *AdminService) UserTransactions(userID uint) ([]entity.WalletTransaction, error) {
	if _, err := s.Users.FindByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return s.Wallet.ListTransactions(userID, 0)
}
