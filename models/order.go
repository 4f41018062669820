package models

import "time"

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

// Recognized order statuses. Any other value is rejected by the order schemas.
const (
	OrderStatusCreated    OrderStatus = "Created"
	OrderStatusProcessing OrderStatus = "Processing"
	OrderStatusShipped    OrderStatus = "Shipped"
	OrderStatusDelivered  OrderStatus = "Delivered"
	OrderStatusCancelled  OrderStatus = "Cancelled"
)

// OrderStatuses lists every valid status in declaration order. The order is
// used verbatim in validation messages.
var OrderStatuses = []OrderStatus{
	OrderStatusCreated,
	OrderStatusProcessing,
	OrderStatusShipped,
	OrderStatusDelivered,
	OrderStatusCancelled,
}

// Order is a customer order together with its line items.
type Order struct {
	ID         string      `json:"id"`
	CustomerID string      `json:"customerId"`
	Status     OrderStatus `json:"status"`
	CreatedAt  time.Time   `json:"createdAt"`
	Items      []OrderItem `json:"items"`
}

// OrderItem is a single line of an order. ID is the opaque identifier of the
// line itself; ItemID references the catalog item.
type OrderItem struct {
	ID       string `json:"id"`
	OrderID  string `json:"orderId"`
	ItemID   int64  `json:"itemId"`
	Quantity int64  `json:"quantity"`
}

// OrderDTO is the request body for creating an order.
type OrderDTO struct {
	CustomerID *string      `json:"customerId" xml:"customerId" validate:"required,min=1"`
	Status     *OrderStatus `json:"status" xml:"status" validate:"required,order_status"`
}

// UpdateOrderDTO is the request body for updating an order. CustomerID may be
// omitted, in which case it is normalized to the empty string and the stored
// customer is kept.
type UpdateOrderDTO struct {
	CustomerID *string      `json:"customerId" xml:"customerId"`
	Status     *OrderStatus `json:"status" xml:"status" validate:"required,order_status"`
}

// OrderItemDTO is one element of the add-items request body.
type OrderItemDTO struct {
	ItemID   *int64 `json:"itemId" xml:"itemId" validate:"required,gt=0"`
	Quantity *int64 `json:"quantity" xml:"quantity" validate:"required,gt=0"`
}

// OrderUpsert is the normalized order payload handed to the service layer.
type OrderUpsert struct {
	CustomerID string
	Status     OrderStatus
}

// NewOrderItem is the normalized form of [OrderItemDTO].
type NewOrderItem struct {
	ItemID   int64
	Quantity int64
}
