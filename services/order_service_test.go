package services

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"toeat/entity"
)

func draftFor(rest *entity.Restaurant, totalCents int64) *CreateOrderReq {
	var restID *uint
	if rest != nil {
		restID = &rest.ID
	}
	return &CreateOrderReq{
		RestaurantID:   restID,
		DeliveryMethod: entity.DeliveryMethodPickup,
		PaymentMethod:  entity.PaymentCard,
		Items: []OrderItemIn{
			{ProductID: "m-1", Title: "Margherita", UnitPrice: totalCents, Qty: 1},
		},
	}
}

func TestCreateValidation(t *testing.T) {
	e := newTestEnv(t)
	u := e.createUser(t, "Val Vera", entity.RoleUser, 0)

	cases := []*CreateOrderReq{
		{Items: nil},
		{Items: []OrderItemIn{{Title: "x", UnitPrice: -100, Qty: 1}}},
		{Items: []OrderItemIn{{Title: "x", UnitPrice: 100, Qty: 0}}},
		{Items: []OrderItemIn{{Title: "x", UnitPrice: 100, Qty: 1}}, Tip: -50},
		{
			Items:          []OrderItemIn{{Title: "x", UnitPrice: 100, Qty: 1}},
			DeliveryMethod: entity.DeliveryMethodDelivery, // no address
		},
	}
	for i, req := range cases {
		_, err := e.orders.Create(u.ID, req)
		var ve *ValidationError
		if !errors.As(err, &ve) {
			t.Fatalf("case %d: expected ValidationError, got %v", i, err)
		}
	}

	var count int64
	e.db.Model(&entity.Order{}).Count(&count)
	if count != 0 {
		t.Fatalf("%d orders created from invalid drafts", count)
	}
}

func TestCreatePlacesOrderWithSideEffects(t *testing.T) {
	e := newTestEnv(t)
	owner := e.createUser(t, "Owner Omar", entity.RolePartner, 0)
	rest := e.createRestaurant(t, "Bella Italia", owner.ID)
	u := e.createUser(t, "Eater Ed", entity.RoleUser, 0)

	order, err := e.orders.Create(u.ID, draftFor(rest, 10000))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if order.Status != entity.StatusPlaced {
		t.Fatalf("status = %s, want Placed", order.Status)
	}
	if order.Total != 10000 || order.RestaurantName != "Bella Italia" || order.CustomerName != "Eater Ed" {
		t.Fatalf("unexpected order: %+v", order)
	}
	if len(order.OrderItems) != 1 {
		t.Fatalf("items = %d, want 1", len(order.OrderItems))
	}

	// new_order notification to role partner
	notifs := e.notifications(t, entity.NotifNewOrder)
	if len(notifs) != 1 {
		t.Fatalf("new_order notifications = %d, want 1", len(notifs))
	}
	if notifs[0].TargetRole != entity.RolePartner || notifs[0].TargetUserID != nil {
		t.Fatalf("notification mistargeted: %+v", notifs[0])
	}
	if !strings.Contains(notifs[0].Message, "Eater Ed") || !strings.Contains(notifs[0].Message, "$100.00") {
		t.Fatalf("unexpected message: %q", notifs[0].Message)
	}

	// loyalty: floor($100.00 * 10) = 1000 points
	var buyer entity.User
	e.db.First(&buyer, u.ID)
	if buyer.LoyaltyPoints != 1000 {
		t.Fatalf("points = %d, want 1000", buyer.LoyaltyPoints)
	}
}

func TestAdvanceStatusGraph(t *testing.T) {
	e := newTestEnv(t)
	u := e.createUser(t, "Graph Gail", entity.RoleUser, 0)

	legal := []entity.OrderStatus{
		entity.StatusConfirmed, entity.StatusPreparing, entity.StatusRiderAssigned,
		entity.StatusOutForDelivery, entity.StatusDelivered,
	}

	order, err := e.orders.Create(u.ID, draftFor(nil, 2000))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	for _, to := range legal {
		got, err := e.orders.AdvanceStatus(order.ID, string(to))
		if err != nil {
			t.Fatalf("advance to %s: %v", to, err)
		}
		if got.Status != to {
			t.Fatalf("status = %s, want %s", got.Status, to)
		}
	}

	// each advance produced exactly one order_update to the owner
	updates := e.notifications(t, entity.NotifOrderUpdate)
	if len(updates) != len(legal) {
		t.Fatalf("order_update notifications = %d, want %d", len(updates), len(legal))
	}
	for _, n := range updates {
		if n.TargetUserID == nil || *n.TargetUserID != u.ID {
			t.Fatalf("order_update mistargeted: %+v", n)
		}
	}

	// Delivered is terminal for the normal flow
	if _, err := e.orders.AdvanceStatus(order.ID, string(entity.StatusPreparing)); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition out of Delivered, got %v", err)
	}
}

func TestAdvanceStatusRejectsSkips(t *testing.T) {
	e := newTestEnv(t)
	u := e.createUser(t, "Skip Sam", entity.RoleUser, 0)
	order, _ := e.orders.Create(u.ID, draftFor(nil, 1000))

	for _, to := range []entity.OrderStatus{
		entity.StatusDelivered, entity.StatusOutForDelivery, entity.StatusRiderAssigned,
	} {
		if _, err := e.orders.AdvanceStatus(order.ID, string(to)); !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("Placed -> %s: expected ErrInvalidTransition, got %v", to, err)
		}
	}

	// cancel is legal from Placed
	got, err := e.orders.AdvanceStatus(order.ID, string(entity.StatusCancelled))
	if err != nil || got.Status != entity.StatusCancelled {
		t.Fatalf("cancel from Placed: %v (%v)", err, got)
	}
}

func TestAdvanceStatusSynonyms(t *testing.T) {
	e := newTestEnv(t)
	u := e.createUser(t, "Syn Sue", entity.RoleUser, 0)
	order, _ := e.orders.Create(u.ID, draftFor(nil, 1000))

	if _, err := e.orders.AdvanceStatus(order.ID, "Confirmed"); err != nil {
		t.Fatalf("confirm: %v", err)
	}
	// "Ready" maps onto Preparing
	got, err := e.orders.AdvanceStatus(order.ID, "Ready")
	if err != nil {
		t.Fatalf("Ready: %v", err)
	}
	if got.Status != entity.StatusPreparing {
		t.Fatalf("status = %s, want Preparing", got.Status)
	}
}

func TestAdvanceStatusNotFound(t *testing.T) {
	e := newTestEnv(t)
	if _, err := e.orders.AdvanceStatus(404, string(entity.StatusConfirmed)); !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
}

func TestAdminOverrideIgnoresGraph(t *testing.T) {
	e := newTestEnv(t)
	u := e.createUser(t, "Admin Al", entity.RoleUser, 0)
	order, _ := e.orders.Create(u.ID, draftFor(nil, 1000))

	// straight to a terminal state, then back out of it
	got, err := e.orders.AdminOverrideStatus(order.ID, string(entity.StatusDelivered))
	if err != nil || got.Status != entity.StatusDelivered {
		t.Fatalf("override to Delivered: %v (%v)", err, got)
	}
	got, err = e.orders.AdminOverrideStatus(order.ID, string(entity.StatusPreparing))
	if err != nil || got.Status != entity.StatusPreparing {
		t.Fatalf("override out of Delivered: %v (%v)", err, got)
	}
}

func TestDisputeNotFoundIsAnError(t *testing.T) {
	e := newTestEnv(t)
	if err := e.orders.FileDispute(404, "ghost"); !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("FileDispute: expected ErrOrderNotFound, got %v", err)
	}
	if err := e.orders.ResolveDispute(404, entity.DisputeResolved); !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("ResolveDispute: expected ErrOrderNotFound, got %v", err)
	}
}

func TestFileDispute(t *testing.T) {
	e := newTestEnv(t)
	u := e.createUser(t, "Dispute Dana", entity.RoleUser, 0)
	order, _ := e.orders.Create(u.ID, draftFor(nil, 3000))

	if err := e.orders.FileDispute(order.ID, "missing item"); err != nil {
		t.Fatalf("FileDispute: %v", err)
	}

	var got entity.Order
	e.db.First(&got, order.ID)
	if !got.IsDisputed || got.DisputeStatus != entity.DisputeOpen || got.DisputeReason != "missing item" {
		t.Fatalf("dispute state: %+v", got)
	}
	// delivery status untouched
	if got.Status != entity.StatusPlaced {
		t.Fatalf("status changed to %s", got.Status)
	}

	notifs := e.notifications(t, entity.NotifDisputeUpdate)
	if len(notifs) != 1 || notifs[0].TargetRole != entity.RoleAdmin {
		t.Fatalf("expected one dispute_update to role admin, got %+v", notifs)
	}
}

func TestResolveDisputeRefunded(t *testing.T) {
	e := newTestEnv(t)
	u := e.createUser(t, "Refund Rita", entity.RoleUser, 5000)
	order, _ := e.orders.Create(u.ID, draftFor(nil, 3000))
	if err := e.orders.FileDispute(order.ID, "cold food"); err != nil {
		t.Fatalf("FileDispute: %v", err)
	}

	if err := e.orders.ResolveDispute(order.ID, entity.DisputeRefunded); err != nil {
		t.Fatalf("ResolveDispute: %v", err)
	}

	var got entity.Order
	e.db.First(&got, order.ID)
	if got.Status != entity.StatusCancelled || got.DisputeStatus != entity.DisputeRefunded {
		t.Fatalf("order after refund: status=%s dispute=%s", got.Status, got.DisputeStatus)
	}

	if bal := e.balance(t, u.ID); bal != 8000 {
		t.Fatalf("balance = %d, want 8000", bal)
	}
	var tx entity.WalletTransaction
	e.db.Where("user_id = ? AND type = ?", u.ID, entity.TxCredit).First(&tx)
	if !strings.Contains(tx.Description, fmt.Sprintf("Order #%d", order.ID)) {
		t.Fatalf("refund description %q does not reference the order", tx.Description)
	}

	// resolution notice goes to the buyer, not the admins
	notifs := e.notifications(t, entity.NotifDisputeUpdate)
	last := notifs[len(notifs)-1]
	if last.TargetUserID == nil || *last.TargetUserID != u.ID {
		t.Fatalf("resolution notice mistargeted: %+v", last)
	}
}

func TestResolveDisputeResolvedKeepsStatus(t *testing.T) {
	e := newTestEnv(t)
	u := e.createUser(t, "Keep Kim", entity.RoleUser, 0)
	order, _ := e.orders.Create(u.ID, draftFor(nil, 3000))
	e.orders.FileDispute(order.ID, "late")

	if err := e.orders.ResolveDispute(order.ID, entity.DisputeResolved); err != nil {
		t.Fatalf("ResolveDispute: %v", err)
	}
	var got entity.Order
	e.db.First(&got, order.ID)
	if got.Status != entity.StatusPlaced || got.DisputeStatus != entity.DisputeResolved {
		t.Fatalf("order: status=%s dispute=%s", got.Status, got.DisputeStatus)
	}
	if bal := e.balance(t, u.ID); bal != 0 {
		t.Fatalf("no refund expected, balance = %d", bal)
	}
}

func TestPartnerTransitionsCheckOwnership(t *testing.T) {
	e := newTestEnv(t)
	owner := e.createUser(t, "Owner Opal", entity.RolePartner, 0)
	stranger := e.createUser(t, "Stranger Stu", entity.RolePartner, 0)
	rest := e.createRestaurant(t, "Opal's", owner.ID)
	u := e.createUser(t, "Eater Eve", entity.RoleUser, 0)

	order, err := e.orders.Create(u.ID, draftFor(rest, 1500))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if _, err := e.orders.PartnerConfirm(stranger.ID, order.ID); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden for non-owner, got %v", err)
	}
	got, err := e.orders.PartnerConfirm(owner.ID, order.ID)
	if err != nil || got.Status != entity.StatusConfirmed {
		t.Fatalf("owner confirm: %v (%v)", err, got)
	}
}

// The end-to-end walk from the checkout debit through delivery, dispute
// and refund.
func TestOrderLifecycleEndToEnd(t *testing.T) {
	e := newTestEnv(t)
	owner := e.createUser(t, "Owner Enzo", entity.RolePartner, 0)
	rest := e.createRestaurant(t, "Enzo's", owner.ID)
	u := e.createUser(t, "Wallet Wanda", entity.RoleUser, 25000)

	draft := draftFor(rest, 10000)
	draft.PaymentMethod = entity.PaymentWallet

	// checkout debit precedes order creation
	ok, err := e.wallet.Debit(u.ID, draft.Quote(), "Order payment")
	if err != nil || !ok {
		t.Fatalf("Debit: ok=%v err=%v", ok, err)
	}
	if bal := e.balance(t, u.ID); bal != 15000 {
		t.Fatalf("balance after debit = %d, want 15000", bal)
	}

	order, err := e.orders.Create(u.ID, draft)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	var buyer entity.User
	e.db.First(&buyer, u.ID)
	if buyer.LoyaltyPoints != 1000 {
		t.Fatalf("points = %d, want 1000", buyer.LoyaltyPoints)
	}
	if n := e.notifications(t, entity.NotifNewOrder); len(n) != 1 || n[0].TargetRole != entity.RolePartner {
		t.Fatalf("new_order notification: %+v", n)
	}

	steps := []entity.OrderStatus{
		entity.StatusConfirmed, entity.StatusPreparing, entity.StatusRiderAssigned,
		entity.StatusOutForDelivery, entity.StatusDelivered,
	}
	for i, to := range steps {
		if _, err := e.orders.AdvanceStatus(order.ID, string(to)); err != nil {
			t.Fatalf("advance to %s: %v", to, err)
		}
		if got := e.notifications(t, entity.NotifOrderUpdate); len(got) != i+1 {
			t.Fatalf("after %s: %d order_update notifications, want %d", to, len(got), i+1)
		}
	}

	if err := e.orders.FileDispute(order.ID, "missing item"); err != nil {
		t.Fatalf("FileDispute: %v", err)
	}
	if err := e.orders.ResolveDispute(order.ID, entity.DisputeRefunded); err != nil {
		t.Fatalf("ResolveDispute: %v", err)
	}

	var final entity.Order
	e.db.First(&final, order.ID)
	if final.Status != entity.StatusCancelled || final.DisputeStatus != entity.DisputeRefunded {
		t.Fatalf("final order: %+v", final)
	}
	if bal := e.balance(t, u.ID); bal != 25000 {
		t.Fatalf("final balance = %d, want 25000", bal)
	}
}
