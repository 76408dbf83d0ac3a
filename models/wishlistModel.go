package models

import (
	"time"

	"gorm.io/gorm"
)

type WishlistItem struct {
	gorm.Model
	WishlistID uint      `json:"wishlistId"`
	ProductID  uint      `json:"productId"`
	AddedAt    time.Time `json:"addedAt"`
	Product    *Product  `json:"product,omitempty"`
}

type Wishlist struct {
	gorm.Model
	UserID uint           `json:"userId" gorm:"uniqueIndex"`
	Items  []WishlistItem `json:"items" gorm:"foreignKey:WishlistID;constraint:OnDelete:CASCADE"`
}

// Contains reports whether the product is already on the wishlist.
func (w *Wishlist) Contains(productID uint) bool {
	for _, item := range w.Items {
		if item.ProductID == productID {
			return true
		}
	}
	return false
}
