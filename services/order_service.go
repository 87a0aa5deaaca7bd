package services

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"toeat/entity"
	"toeat/repository"

	"gorm.io/gorm"
)

// OrderService is the lifecycle engine. It owns every status transition
// and the dispute sub-state, and drives the notification, wallet and
// loyalty side effects. Side effects run after the primary write commits
// and, except for the refund credit, are best-effort.
type OrderService struct {
	DB       *gorm.DB
	Repo     *repository.OrderRepository
	RestRepo *repository.RestaurantRepository
	Notifs   *NotificationService
	Wallet   *WalletService
	Loyalty  *LoyaltyService
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	restRepo *repository.RestaurantRepository,
	notifs *NotificationService,
	wallet *WalletService,
	loyalty *LoyaltyService,
) *OrderService {
	return &OrderService{
		DB:       db,
		Repo:     repo,
		RestRepo: restRepo,
		Notifs:   notifs,
		Wallet:   wallet,
		Loyalty:  loyalty,
	}
}

// ----- DTOs from Controller -----

type OrderItemIn struct {
	ProductID string   `json:"productId"`
	Title     string   `json:"title" binding:"required"`
	UnitPrice int64    `json:"unitPrice"`
	Qty       int      `json:"qty" binding:"required,min=1"`
	Options   []string `json:"options"`
	Note      string   `json:"note"`
}

type CreateOrderReq struct {
	RestaurantID    *uint         `json:"restaurantId"`
	Items           []OrderItemIn `json:"items"`
	Tip             int64         `json:"tip"`
	DeliveryMethod  string        `json:"deliveryMethod" binding:"omitempty,oneof=delivery pickup"`
	PaymentMethod   string        `json:"paymentMethod" binding:"omitempty,oneof=cash card wallet"`
	DeliveryAddress string        `json:"deliveryAddress"`
}

// Quote is the total the checkout flow must settle (e.g. debit from the
// wallet) before calling Create.
func (req *CreateOrderReq) Quote() int64 {
	var subtotal int64
	for _, it := range req.Items {
		subtotal += it.UnitPrice * int64(it.Qty)
	}
	return subtotal + req.Tip
}

// Create persists a new order in Placed and fires the placement side
// effects: a new_order notification to the partner role and the loyalty
// accrual for the buyer. Payment is the caller's business -- for wallet
// orders the debit must already have happened.
func (s *OrderService) Create(userID uint, req *CreateOrderReq) (*entity.Order, error) {
	if len(req.Items) == 0 {
		return nil, invalid("items", "is required")
	}
	for _, it := range req.Items {
		if it.UnitPrice < 0 {
			return nil, invalid("items", "unit price must be non-negative")
		}
		if it.Qty <= 0 {
			return nil, invalid("items", "qty must be positive")
		}
	}
	if req.Tip < 0 {
		return nil, invalid("tip", "must be non-negative")
	}
	if req.DeliveryMethod == entity.DeliveryMethodDelivery && strings.TrimSpace(req.DeliveryAddress) == "" {
		return nil, invalid("deliveryAddress", "is required for delivery")
	}

	total := req.Quote()
	if total < 0 {
		return nil, invalid("total", "must be non-negative")
	}

	var restName string
	if req.RestaurantID != nil {
		rest, err := s.RestRepo.GetByID(*req.RestaurantID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrRestaurantNotFound
			}
			return nil, err
		}
		restName = rest.Name
	}

	var u entity.User
	if err := s.DB.First(&u, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	customer := u.Name

	order := entity.Order{
		Status:          entity.StatusPlaced,
		Subtotal:        total - req.Tip,
		Tip:             req.Tip,
		Total:           total,
		DeliveryMethod:  req.DeliveryMethod,
		PaymentMethod:   req.PaymentMethod,
		DeliveryAddress: req.DeliveryAddress,
		UserID:          userID,
		CustomerName:    customer,
		RestaurantID:    req.RestaurantID,
		RestaurantName:  restName,
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.CreateOrder(tx, &order); err != nil {
			return err
		}
		for _, it := range req.Items {
			oi := entity.OrderItem{
				ProductID:      it.ProductID,
				Title:          it.Title,
				UnitPrice:      it.UnitPrice,
				Qty:            it.Qty,
				Total:          it.UnitPrice * int64(it.Qty),
				Options:        strings.Join(it.Options, ", "),
				Note:           it.Note,
				RestaurantName: restName,
				OrderID:        order.ID,
			}
			if err := s.Repo.CreateOrderItem(tx, &oi); err != nil {
				return err
			}
			order.OrderItems = append(order.OrderItems, oi)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.Notifs.notify(&entity.Notification{
		Type:       entity.NotifNewOrder,
		Title:      "New Order Received",
		Message:    fmt.Sprintf("Order #%d placed by %s. Value: %s", order.ID, customer, money(order.Total)),
		TargetRole: entity.RolePartner,
	})
	if err := s.Loyalty.Accrue(userID, order.Total); err != nil {
		log.Printf("loyalty accrual for order #%d dropped: %v", order.ID, err)
	}

	return &order, nil
}

// AdvanceStatus applies one graph-legal move. The write is a
// compare-and-set against the state the caller observed, so concurrent
// advances on the same order surface as ErrStatusConflict instead of
// silently clobbering each other.
func (s *OrderService) AdvanceStatus(orderID uint, target string) (*entity.Order, error) {
	to, ok := entity.ParseOrderStatus(target)
	if !ok {
		return nil, invalid("status", "unknown status "+target)
	}

	order, err := s.Repo.GetOrder(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	if !entity.CanTransition(order.Status, to) {
		return nil, ErrInvalidTransition
	}

	moved, err := s.Repo.UpdateStatusGuard(s.DB, orderID, order.Status, to)
	if err != nil {
		return nil, err
	}
	if !moved {
		return nil, ErrStatusConflict
	}
	order.Status = to

	s.notifyStatus(order)
	return order, nil
}

// AdminOverrideStatus overwrites the status with no graph check, even
// out of a terminal state. Kept separate from AdvanceStatus so the
// partner/rider flows cannot reach it.
func (s *OrderService) AdminOverrideStatus(orderID uint, target string) (*entity.Order, error) {
	to, ok := entity.ParseOrderStatus(target)
	if !ok {
		return nil, invalid("status", "unknown status "+target)
	}

	order, err := s.Repo.GetOrder(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	if _, err := s.Repo.OverrideStatus(s.DB, orderID, to); err != nil {
		return nil, err
	}
	order.Status = to

	s.notifyStatus(order)
	return order, nil
}

// FileDispute opens the dispute sub-state and alerts the admins. The
// delivery status is untouched.
func (s *OrderService) FileDispute(orderID uint, reason string) error {
	order, err := s.Repo.GetOrder(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrOrderNotFound
		}
		return err
	}

	err = s.Repo.UpdateDispute(s.DB, order.ID, map[string]any{
		"is_disputed":    true,
		"dispute_reason": reason,
		"dispute_status": entity.DisputeOpen,
	})
	if err != nil {
		return err
	}

	s.Notifs.notify(&entity.Notification{
		Type:       entity.NotifDisputeUpdate,
		Title:      "New Dispute Filed",
		Message:    fmt.Sprintf("Dispute on Order #%d: %s", order.ID, reason),
		TargetRole: entity.RoleAdmin,
	})
	return nil
}

// ResolveDispute closes the dispute. A Refunded resolution additionally
// forces the order to Cancelled and credits the buyer's wallet with the
// full total. Order update and wallet credit are two separate writes;
// a failure in between is a recoverable inconsistency, so the credit
// error is surfaced rather than swallowed.
func (s *OrderService) ResolveDispute(orderID uint, resolution string) error {
	if resolution != entity.DisputeResolved && resolution != entity.DisputeRefunded {
		return invalid("resolution", "must be Resolved or Refunded")
	}

	order, err := s.Repo.GetOrder(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrOrderNotFound
		}
		return err
	}

	updates := map[string]any{"dispute_status": resolution}
	if resolution == entity.DisputeRefunded {
		updates["status"] = entity.StatusCancelled
	}
	if err := s.Repo.UpdateDispute(s.DB, order.ID, updates); err != nil {
		return err
	}

	if resolution == entity.DisputeRefunded {
		desc := fmt.Sprintf("Refund: Order #%d", order.ID)
		if err := s.Wallet.Credit(order.UserID, order.Total, desc); err != nil {
			return fmt.Errorf("dispute refunded but wallet credit failed: %w", err)
		}
	}

	s.Notifs.notify(&entity.Notification{
		Type:         entity.NotifDisputeUpdate,
		Title:        "Dispute Resolved",
		Message:      fmt.Sprintf("Your dispute for Order #%d has been %s.", order.ID, resolution),
		TargetUserID: &order.UserID,
	})
	return nil
}

// ----- Reads -----

func (s *OrderService) Detail(orderID uint) (*entity.Order, error) {
	o, err := s.Repo.GetOrderWithItems(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return o, nil
}

func (s *OrderService) ListForUser(userID uint, limit int) ([]repository.OrderSummary, error) {
	return s.Repo.ListForUser(userID, limit)
}

func (s *OrderService) ListForRestaurant(restID uint, limit int) ([]repository.OrderSummary, error) {
	return s.Repo.ListForRestaurant(restID, limit)
}

func (s *OrderService) ListAll(limit int) ([]repository.OrderSummary, error) {
	return s.Repo.ListAll(limit)
}

// ----- helpers -----

func (s *OrderService) notifyStatus(order *entity.Order) {
	restName := order.RestaurantName
	if restName == "" {
		restName = "Restaurant"
	}
	s.Notifs.notify(&entity.Notification{
		Type:         entity.NotifOrderUpdate,
		Title:        fmt.Sprintf("Order Updated: %s", order.Status),
		Message:      fmt.Sprintf("Your order from %s is now %s.", restName, order.Status),
		TargetUserID: &order.UserID,
	})
}

func money(cents int64) string {
	return fmt.Sprintf("$%d.%02d", cents/100, cents%100)
}
