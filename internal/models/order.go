package models

import "time"

// OrderStatus enumerates the lifecycle states of an order.
// The checkout pipeline always creates orders in StatusProcessing.
type OrderStatus string

const (
	StatusPending    OrderStatus = "pending"
	StatusProcessing OrderStatus = "processing"
	StatusCompleted  OrderStatus = "completed"
)

// CartItem is a product plus the quantity selected.
// A cart holds at most one CartItem per product ID.
type CartItem struct {
	Product
	Quantity int `json:"quantity"`
}

// CustomerInfo holds the delivery contact details collected at checkout.
type CustomerInfo struct {
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	DeliveryDate string `json:"deliveryDate"`
}

// Order is an immutable record of a successful checkout. The item list is
// a detached snapshot of the cart, not a live reference.
type Order struct {
	ID           string       `json:"id"`
	Items        []CartItem   `json:"items"`
	TotalPrice   int          `json:"totalPrice"`
	CustomerInfo CustomerInfo `json:"customerInfo"`
	Status       OrderStatus  `json:"status"`
	OrderDate    time.Time    `json:"orderDate"`
}
