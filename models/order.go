package models

type DeliveryMethod string

const (
	DeliveryMethodDelivery DeliveryMethod = "Delivery"
	DeliveryMethodPickup   DeliveryMethod = "Pickup"
)

type PaymentMethod string

const (
	PaymentMethodQRIS PaymentMethod = "QRIS"
	PaymentMethodCOD  PaymentMethod = "COD"
)

type OrderStatus string

const (
	StatusPending        OrderStatus = "Pending"
	StatusPreparing      OrderStatus = "Preparing"
	StatusOutForDelivery OrderStatus = "Out for Delivery"
	StatusCompleted      OrderStatus = "Completed"
	StatusCancelled      OrderStatus = "Cancelled"
)

// OrderItemRequest adalah satu baris pesanan dari customer (input saja,
// tidak disimpan dalam bentuk ini).
type OrderItemRequest struct {
	ItemID   string `json:"itemId" binding:"required"`
	Quantity int    `json:"quantity" binding:"required"`
}

// OrderInput adalah payload pembuatan order setelah validasi bentuk di
// boundary HTTP.
type OrderInput struct {
	Name           string             `json:"name" binding:"required"`
	Phone          string             `json:"phone" binding:"required"`
	Items          []OrderItemRequest `json:"items" binding:"required"`
	DeliveryMethod DeliveryMethod     `json:"deliveryMethod" binding:"required"`
	DeliveryDate   string             `json:"deliveryDate" binding:"required"` // YYYY-MM-DD
	DeliveryTime   string             `json:"deliveryTime"`                    // HH:mm, optional
	PaymentMethod  PaymentMethod      `json:"paymentMethod" binding:"required"`
	Notes          string             `json:"notes"`
}

// OrderLineItem adalah baris pesanan yang dipersist. Nama dan harga di-copy
// dari katalog saat order dibuat; katalog boleh berubah belakangan tanpa
// mengubah history order.
type OrderLineItem struct {
	ItemID    string `json:"itemId" bson:"itemId"`
	ItemName  string `json:"itemName" bson:"itemName"`
	Quantity  int    `json:"quantity" bson:"quantity"`
	UnitPrice int64  `json:"unitPrice" bson:"unitPrice"`
	LineTotal int64  `json:"lineTotal" bson:"lineTotal"`
}

// Order adalah record pesanan sebagaimana tersimpan di store.
// Setelah dibuat, hanya Status dan CancelledAt yang boleh berubah.
type Order struct {
	OrderID        string          `json:"orderId" bson:"orderId"`
	Name           string          `json:"name" bson:"name"`
	Phone          string          `json:"phone" bson:"phone"`
	Items          []OrderLineItem `json:"items" bson:"items"`
	DeliveryMethod DeliveryMethod  `json:"deliveryMethod" bson:"deliveryMethod"`
	DeliveryDate   string          `json:"deliveryDate" bson:"deliveryDate"`
	DeliveryTime   string          `json:"deliveryTime,omitempty" bson:"deliveryTime,omitempty"`
	PaymentMethod  PaymentMethod   `json:"paymentMethod" bson:"paymentMethod"`
	Notes          string          `json:"notes,omitempty" bson:"notes,omitempty"`
	TotalPrice     int64           `json:"totalPrice" bson:"totalPrice"`
	Status         OrderStatus     `json:"status" bson:"status"`
	CreatedAt      string          `json:"createdAt" bson:"createdAt"`
	QrPayload      string          `json:"qrPayload,omitempty" bson:"qrPayload,omitempty"`
	CancelledAt    string          `json:"cancelledAt,omitempty" bson:"cancelledAt,omitempty"`
}
