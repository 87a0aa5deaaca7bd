package services

import (
	"errors"
	"math"
	"strconv"

	"toeat/entity"
	"toeat/repository"

	"gorm.io/gorm"
)

type ReviewService struct {
	Repo     *repository.ReviewRepository
	RestRepo *repository.RestaurantRepository
}

func NewReviewService(repo *repository.ReviewRepository, restRepo *repository.RestaurantRepository) *ReviewService {
	return &ReviewService{Repo: repo, RestRepo: restRepo}
}

type RatingSummary struct {
	Average float64 `json:"average"`
	Count   int64   `json:"count"`
}

// Add persists the review and returns the recomputed aggregate for its
// target. When the target is a restaurant the stored rating fields are
// overwritten as well; aggregate maintenance is best-effort and never
// fails the review itself.
func (s *ReviewService) Add(review *entity.Review) (*RatingSummary, error) {
	if review.Rating < 1 || review.Rating > 5 {
		return nil, invalid("rating", "must be between 1 and 5")
	}
	if review.TargetID == "" {
		return nil, invalid("targetId", "is required")
	}

	if err := s.Repo.Create(review); err != nil {
		return nil, err
	}
	return s.Recompute(review.TargetID)
}

// Recompute returns the arithmetic mean (1 decimal place) and count of
// all reviews for the target. Zero reviews gives {0, 0}.
func (s *ReviewService) Recompute(targetID string) (*RatingSummary, error) {
	sum, count, err := s.Repo.AggregateForTarget(targetID)
	if err != nil {
		return nil, err
	}

	out := &RatingSummary{}
	if count > 0 {
		out.Average = math.Round(float64(sum)/float64(count)*10) / 10
		out.Count = count
	}

	if restID, err := strconv.ParseUint(targetID, 10, 64); err == nil {
		if err := s.RestRepo.UpdateRating(uint(restID), out.Average, out.Count); err != nil {
			return out, err
		}
	}
	return out, nil
}

func (s *ReviewService) ListForTarget(targetID string) ([]entity.Review, error) {
	return s.Repo.ListForTarget(targetID, 0)
}

func (s *ReviewService) RestaurantExists(id uint) (bool, error) {
	if _, err := s.RestRepo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
