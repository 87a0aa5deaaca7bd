package entity

// OrderStatus is the canonical lifecycle state of an order. Display
// synonyms ("Ready", "Picked Up") are accepted on input by
// ParseOrderStatus but never persisted.
type OrderStatus string

const (
	StatusPlaced         OrderStatus = "Placed"
	StatusConfirmed      OrderStatus = "Confirmed"
	StatusPreparing      OrderStatus = "Preparing"
	StatusRiderAssigned  OrderStatus = "Rider Assigned"
	StatusOutForDelivery OrderStatus = "Out for Delivery"
	StatusDelivered      OrderStatus = "Delivered"
	StatusCancelled      OrderStatus = "Cancelled"
)

// transitions is the lifecycle graph. Delivered and Cancelled are
// terminal; Cancelled is reachable from the pre-dispatch states only.
var transitions = map[OrderStatus][]OrderStatus{
	StatusPlaced:         {StatusConfirmed, StatusCancelled},
	StatusConfirmed:      {StatusPreparing, StatusCancelled},
	StatusPreparing:      {StatusRiderAssigned, StatusCancelled},
	StatusRiderAssigned:  {StatusOutForDelivery},
	StatusOutForDelivery: {StatusDelivered},
	StatusDelivered:      {},
	StatusCancelled:      {},
}

// ParseOrderStatus maps a status string, including the display synonyms,
// onto a canonical status. ok is false for anything unknown.
func ParseOrderStatus(s string) (OrderStatus, bool) {
	switch OrderStatus(s) {
	case StatusPlaced, StatusConfirmed, StatusPreparing, StatusRiderAssigned,
		StatusOutForDelivery, StatusDelivered, StatusCancelled:
		return OrderStatus(s), true
	}
	switch s {
	case "Ready":
		return StatusPreparing, true
	case "Picked Up":
		return StatusOutForDelivery, true
	}
	return "", false
}

// CanTransition reports whether from -> to is a legal move on the graph.
func CanTransition(from, to OrderStatus) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transitions leave the status.
func (s OrderStatus) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}
