package services

import (
	"toeat/repository"
)

// LoyaltyService is an accrual-only point balance. Points are a pure
// function of spend: 10 points per currency unit, i.e. totalCents/10
// rounded down.
type LoyaltyService struct {
	Users *repository.UserRepository
}

func NewLoyaltyService(users *repository.UserRepository) *LoyaltyService {
	return &LoyaltyService{Users: users}
}

func PointsFor(totalCents int64) int64 {
	if totalCents < 0 {
		return 0
	}
	return totalCents / 10
}

func (s *LoyaltyService) Accrue(userID uint, totalCents int64) error {
	points := PointsFor(totalCents)
	if points == 0 {
		return nil
	}
	affected, err := s.Users.AddPoints(userID, points)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrUserNotFound
	}
	return nil
}
