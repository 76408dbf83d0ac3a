package models

import (
	"errors"

	"gorm.io/gorm"
)

var (
	ErrQuantityNotPositive = errors.New("quantity must be greater than zero")
	ErrItemNotInCart       = errors.New("item not found in cart")
)

// CartItem is a single cart line. Exactly one of ProductID or PackageID is
// set; a package goes into the cart as its own line, it is never expanded
// into its member products. Price is the catalog price frozen at add time.
type CartItem struct {
	gorm.Model
	CartID    uint  `json:"cartId"`
	ProductID *uint `json:"productId,omitempty"`
	PackageID *uint `json:"packageId,omitempty"`
	Quantity  int   `json:"quantity"`
	Price     int64 `json:"price"`
}

// Matches reports whether this line references the given product or
// package id. Zero means "not asking about that kind".
func (i CartItem) Matches(productID, packageID uint) bool {
	if productID != 0 {
		return i.ProductID != nil && *i.ProductID == productID
	}
	if packageID != 0 {
		return i.PackageID != nil && *i.PackageID == packageID
	}
	return false
}

type Cart struct {
	gorm.Model
	UserID     uint       `json:"userId" gorm:"uniqueIndex"`
	Items      []CartItem `json:"items" gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`
	TotalPrice int64      `json:"totalPrice"`
}

// Recalculate derives TotalPrice from the current lines. It is called
// after every mutation; TotalPrice is never set any other way.
func (c *Cart) Recalculate() {
	var total int64
	for _, item := range c.Items {
		total += item.Price * int64(item.Quantity)
	}
	c.TotalPrice = total
}

func (c *Cart) find(productID, packageID uint) int {
	for idx, item := range c.Items {
		if item.Matches(productID, packageID) {
			return idx
		}
	}
	return -1
}

// Upsert adds a line for the given reference at the given frozen price,
// or increments the quantity of the existing line for the same reference.
func (c *Cart) Upsert(productID, packageID uint, price int64, quantity int) error {
	if quantity <= 0 {
		return ErrQuantityNotPositive
	}

	if idx := c.find(productID, packageID); idx > -1 {
		c.Items[idx].Quantity += quantity
		c.Recalculate()
		return nil
	}

	item := CartItem{CartID: c.ID, Quantity: quantity, Price: price}
	if productID != 0 {
		item.ProductID = &productID
	} else {
		item.PackageID = &packageID
	}
	c.Items = append(c.Items, item)
	c.Recalculate()
	return nil
}

// SetQuantity overwrites the quantity of an existing line.
func (c *Cart) SetQuantity(productID, packageID uint, quantity int) error {
	if quantity <= 0 {
		return ErrQuantityNotPositive
	}

	idx := c.find(productID, packageID)
	if idx == -1 {
		return ErrItemNotInCart
	}
	c.Items[idx].Quantity = quantity
	c.Recalculate()
	return nil
}

// Remove drops the line for the given reference.
func (c *Cart) Remove(productID, packageID uint) error {
	idx := c.find(productID, packageID)
	if idx == -1 {
		return ErrItemNotInCart
	}
	c.Items = append(c.Items[:idx], c.Items[idx+1:]...)
	c.Recalculate()
	return nil
}

func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}
