package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderStatus is the lifecycle state of an order. Only Delivered orders
// count towards revenue.
type OrderStatus string

const (
	StatusPendingPayment OrderStatus = "Pending Payment"
	StatusPlaced         OrderStatus = "Placed"
	StatusRejected       OrderStatus = "Rejected"
	StatusDelivered      OrderStatus = "Delivered"
	StatusCancelled      OrderStatus = "Cancelled"
	StatusReturnRequest  OrderStatus = "Return Request"
	StatusReturned       OrderStatus = "Returned"
)

// AllStatuses lists every order status in display order.
var AllStatuses = []OrderStatus{
	StatusPendingPayment,
	StatusPlaced,
	StatusRejected,
	StatusDelivered,
	StatusCancelled,
	StatusReturnRequest,
	StatusReturned,
}

// OrderedItem is a line on an order. ProductName is a snapshot taken at
// order time; Product references the live product document.
type OrderedItem struct {
	Product     primitive.ObjectID `json:"product" bson:"product"`
	ProductName string             `json:"productName" bson:"productName"`
	Quantity    int                `json:"quantity" bson:"quantity"`
	Price       float64            `json:"price" bson:"price"`
}

// Discount breaks an order's total discount into its sources.
type Discount struct {
	BestOffer float64 `json:"bestOffer" bson:"bestOffer"`
	Coupon    float64 `json:"coupon" bson:"coupon"`
	Total     float64 `json:"total" bson:"total"`
}

// Order is the persisted order document.
type Order struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	OrderID       string             `json:"orderId" bson:"orderId"`
	UserID        primitive.ObjectID `json:"userId" bson:"userId"`
	OrderedItems  []OrderedItem      `json:"orderedItems" bson:"orderedItems"`
	TotalPrice    float64            `json:"totalPrice" bson:"totalPrice"`
	Discount      Discount           `json:"discount" bson:"discount"`
	FinalAmount   float64            `json:"finalAmount" bson:"finalAmount"`
	PaymentMethod string             `json:"paymentMethod" bson:"paymentMethod"`
	PaymentStatus string             `json:"paymentStatus" bson:"paymentStatus"`
	Status        OrderStatus        `json:"status" bson:"status"`
	CreatedAt     time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt     time.Time          `json:"updatedAt" bson:"updatedAt"`
}
