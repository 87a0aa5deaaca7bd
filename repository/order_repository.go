package repository

import (
	"time"

	"toeat/entity"

	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// ---------------- Orders ----------------

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) CreateOrderItem(tx *gorm.DB, oi *entity.OrderItem) error {
	return tx.Create(oi).Error
}

func (r *OrderRepository) GetOrder(orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) GetOrderWithItems(orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Preload("OrderItems").First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

type OrderSummary struct {
	ID             uint               `json:"id"`
	Status         entity.OrderStatus `json:"status"`
	Total          int64              `json:"total"`
	RestaurantName string             `json:"restaurantName"`
	CustomerName   string             `json:"customerName"`
	IsDisputed     bool               `json:"isDisputed"`
	DisputeStatus  string             `json:"disputeStatus"`
	CreatedAt      time.Time          `json:"createdAt"`
}

func (r *OrderRepository) summaries(q *gorm.DB, limit int) ([]OrderSummary, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	var out []OrderSummary
	err := q.Model(&entity.Order{}).
		Select("id, status, total, restaurant_name, customer_name, is_disputed, dispute_status, created_at").
		Order("id DESC").Limit(limit).
		Scan(&out).Error
	return out, err
}

func (r *OrderRepository) ListForUser(userID uint, limit int) ([]OrderSummary, error) {
	return r.summaries(r.DB.Where("user_id = ?", userID), limit)
}

func (r *OrderRepository) ListForRestaurant(restID uint, limit int) ([]OrderSummary, error) {
	return r.summaries(r.DB.Where("restaurant_id = ?", restID), limit)
}

func (r *OrderRepository) ListByStatuses(statuses []entity.OrderStatus, limit int) ([]OrderSummary, error) {
	return r.summaries(r.DB.Where("status IN ?", statuses), limit)
}

func (r *OrderRepository) ListAll(limit int) ([]OrderSummary, error) {
	return r.summaries(r.DB, limit)
}

// ---------------- Status updates ----------------

// UpdateStatusGuard is a compare-and-set: the move applies only if the
// order is still in the expected state.
func (r *OrderRepository) UpdateStatusGuard(tx *gorm.DB, orderID uint, from, to entity.OrderStatus) (bool, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND status = ?", orderID, from).
		Update("status", to)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

// OverrideStatus overwrites unconditionally; administrative use only.
func (r *OrderRepository) OverrideStatus(tx *gorm.DB, orderID uint, to entity.OrderStatus) (bool, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ?", orderID).
		Update("status", to)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

// ---------------- Disputes ----------------

func (r *OrderRepository) UpdateDispute(tx *gorm.DB, orderID uint, updates map[string]any) error {
	return tx.Model(&entity.Order{}).Where("id = ?", orderID).Updates(updates).Error
}
