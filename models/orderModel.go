package models

import "gorm.io/gorm"

const (
	PaymentPending   = "pending"
	PaymentInitiated = "initiated"
	PaymentPaid      = "paid"
	PaymentFailed    = "failed"

	ShippingProcessing = "processing"
	ShippingPending    = "pending"
	ShippingOnTheWay   = "on the way"
	ShippingDelivered  = "delivered"
	ShippingCanceled   = "canceled"

	PaymentMethodCreditCard = "creditcard"
)

func IsValidPaymentStatus(status string) bool {
	switch status {
	case PaymentPending, PaymentInitiated, PaymentPaid, PaymentFailed:
		return true
	}
	return false
}

func IsValidShippingStatus(status string) bool {
	switch status {
	case ShippingProcessing, ShippingPending, ShippingOnTheWay, ShippingDelivered, ShippingCanceled:
		return true
	}
	return false
}

// CanTransitionPayment reports whether an admin update may move the
// payment status from one value to another. "paid" is terminal: nothing
// moves an order back out of it.
func CanTransitionPayment(from, to string) bool {
	if from == PaymentPaid {
		return to == PaymentPaid
	}
	return true
}

// OrderItem is a frozen copy of a cart line. Later catalog or cart price
// changes never touch it.
type OrderItem struct {
	gorm.Model
	OrderID   uint  `json:"orderId"`
	ProductID *uint `json:"productId,omitempty"`
	PackageID *uint `json:"packageId,omitempty"`
	Quantity  int   `json:"quantity"`
	Price     int64 `json:"price"`
}

type Order struct {
	gorm.Model
	UserID          uint        `json:"userId"`
	Fullname        string      `json:"fullname"`
	Phone           string      `json:"phone"`
	ShippingAddress string      `json:"shippingAddress"`
	Items           []OrderItem `json:"items" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	TotalPrice      int64       `json:"totalPrice"`
	PaymentMethod   string      `json:"paymentMethod"`
	InvoiceID       string      `json:"invoiceId" gorm:"index"`
	PaymentStatus   string      `json:"paymentStatus"`
	ShippingStatus  string      `json:"shippingStatus"`
}

// NewOrderFromCart snapshots a cart's lines into a fresh order. Prices and
// total come from the cart, not from a catalog re-fetch.
func NewOrderFromCart(cart *Cart, fullname, phone, shippingAddress, paymentMethod string) Order {
	items := make([]OrderItem, 0, len(cart.Items))
	for _, line := range cart.Items {
		items = append(items, OrderItem{
			ProductID: line.ProductID,
			PackageID: line.PackageID,
			Quantity:  line.Quantity,
			Price:     line.Price,
		})
	}

	return Order{
		UserID:          cart.UserID,
		Fullname:        fullname,
		Phone:           phone,
		ShippingAddress: shippingAddress,
		Items:           items,
		TotalPrice:      cart.TotalPrice,
		PaymentMethod:   paymentMethod,
		PaymentStatus:   PaymentPending,
		ShippingStatus:  ShippingProcessing,
	}
}

// ItemCount sums the quantities over all lines.
func (o *Order) ItemCount() int {
	var count int
	for _, item := range o.Items {
		count += item.Quantity
	}
	return count
}

// ApplyGatewayStatus maps a gateway webhook status onto the order. The
// assignment is flat, so a replayed webhook lands on the same state. An
// order that has reached "paid" is never downgraded by a late non-paid
// notification.
func (o *Order) ApplyGatewayStatus(status string) {
	if o.PaymentStatus == PaymentPaid {
		return
	}
	if status == PaymentPaid {
		o.PaymentStatus = PaymentPaid
		o.ShippingStatus = ShippingPending
		return
	}
	o.PaymentStatus = PaymentFailed
	o.ShippingStatus = ShippingCanceled
}
