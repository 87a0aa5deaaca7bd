// services/order_transitions.go
package services

import (
	"errors"

	"toeat/entity"
	"toeat/repository"

	"gorm.io/gorm"
)

// Role-facing wrappers around AdvanceStatus. Partner actions verify
// restaurant ownership first; rider actions operate on the dispatch leg
// of the graph only.

func (s *OrderService) partnerAdvance(partnerID, orderID uint, to entity.OrderStatus) (*entity.Order, error) {
	o, err := s.Repo.GetOrder(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	if o.RestaurantID == nil {
		return nil, ErrForbidden
	}
	ok, err := s.RestRepo.IsOwnedBy(*o.RestaurantID, partnerID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrForbidden
	}
	return s.AdvanceStatus(orderID, string(to))
}

// ----- Partner actions -----

func (s *OrderService) PartnerConfirm(partnerID, orderID uint) (*entity.Order, error) {
	return s.partnerAdvance(partnerID, orderID, entity.StatusConfirmed)
}

func (s *OrderService) PartnerStartPreparing(partnerID, orderID uint) (*entity.Order, error) {
	return s.partnerAdvance(partnerID, orderID, entity.StatusPreparing)
}

func (s *OrderService) PartnerAssignRider(partnerID, orderID uint) (*entity.Order, error) {
	return s.partnerAdvance(partnerID, orderID, entity.StatusRiderAssigned)
}

// PartnerReject cancels; legal only from Placed, Confirmed or Preparing
// (the graph enforces that).
func (s *OrderService) PartnerReject(partnerID, orderID uint) (*entity.Order, error) {
	return s.partnerAdvance(partnerID, orderID, entity.StatusCancelled)
}

// ----- Rider actions -----

func (s *OrderService) RiderPickUp(orderID uint) (*entity.Order, error) {
	return s.AdvanceStatus(orderID, string(entity.StatusOutForDelivery))
}

func (s *OrderService) RiderComplete(orderID uint) (*entity.Order, error) {
	return s.AdvanceStatus(orderID, string(entity.StatusDelivered))
}

// RiderJobs lists the dispatch queue: assigned and in-flight orders.
func (s *OrderService) RiderJobs(limit int) ([]repository.OrderSummary, error) {
	return s.Repo.ListByStatuses(
		[]entity.OrderStatus{entity.StatusRiderAssigned, entity.StatusOutForDelivery}, limit)
}
