package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/autocare-store/autocare-api/initializers"
	"github.com/autocare-store/autocare-api/middlewares"
	"github.com/autocare-store/autocare-api/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const (
	msgCartNotFound     = "Cart not found."
	msgCartItemNotFound = "Item not found in cart."
	msgCartEmpty        = "Your cart is empty."
	msgProductNotFound  = "Product not found."
	msgPackageNotFound  = "Package not found."
	msgRefRequired      = "Provide either a productId or a packageId."
	msgBadQuantity      = "Quantity must be greater than zero."
)

type cartItemRequest struct {
	ProductID uint `json:"productId"`
	PackageID uint `json:"packageId"`
	Quantity  int  `json:"quantity"`
}

// exactly one of productId/packageId must be set
func (r cartItemRequest) validRef() bool {
	return (r.ProductID != 0) != (r.PackageID != 0)
}

func loadCart(userID uint) (models.Cart, error) {
	var cart models.Cart
	err := initializers.DB.Where("user_id = ?", userID).Preload("Items").First(&cart).Error
	return cart, err
}

func loadOrCreateCart(userID uint) (models.Cart, error) {
	cart, err := loadCart(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		cart = models.Cart{UserID: userID}
		err = initializers.DB.Create(&cart).Error
	}
	return cart, err
}

// saveCart rewrites the cart's lines and derived total in one
// transaction, the way a document store would persist the whole cart.
func saveCart(cart *models.Cart) error {
	return initializers.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("cart_id = ?", cart.ID).Delete(&models.CartItem{}).Error; err != nil {
			return err
		}
		for i := range cart.Items {
			cart.Items[i].ID = 0
			cart.Items[i].CartID = cart.ID
		}
		if len(cart.Items) > 0 {
			if err := tx.Create(&cart.Items).Error; err != nil {
				return err
			}
		}
		return tx.Model(&models.Cart{}).Where("id = ?", cart.ID).
			Update("total_price", cart.TotalPrice).Error
	})
}

// resolveCatalogPrice looks the reference up in the catalog and returns
// its current price, which the cart line will freeze.
func resolveCatalogPrice(req cartItemRequest) (int64, string, error) {
	if req.ProductID != 0 {
		var product models.Product
		if err := initializers.DB.First(&product, req.ProductID).Error; err != nil {
			return 0, msgProductNotFound, err
		}
		return product.Price, "", nil
	}

	var pkg models.Package
	if err := initializers.DB.First(&pkg, req.PackageID).Error; err != nil {
		return 0, msgPackageNotFound, err
	}
	return pkg.Price, "", nil
}

// AddToCart adds a product or package line to the caller's cart, merging
// with an existing line for the same reference.
func AddToCart(ctx *gin.Context) {
	principal, _ := middlewares.CurrentPrincipal(ctx)

	var req cartItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}
	if !req.validRef() {
		sendErrorResponse(ctx, http.StatusBadRequest, msgRefRequired)
		return
	}
	if req.Quantity <= 0 {
		sendErrorResponse(ctx, http.StatusBadRequest, msgBadQuantity)
		return
	}

	price, notFoundMsg, err := resolveCatalogPrice(req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, notFoundMsg)
		} else {
			log.Println("Database error:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		}
		return
	}

	cart, err := loadOrCreateCart(principal.UserID)
	if err != nil {
		log.Println("Database error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	if err := cart.Upsert(req.ProductID, req.PackageID, price, req.Quantity); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgBadQuantity)
		return
	}

	if err := saveCart(&cart); err != nil {
		log.Println("Error saving cart:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"message": "Item added to cart.",
		"cart":    cart,
	})
}

// UpdateCartItem overwrites the quantity of an existing line.
func UpdateCartItem(ctx *gin.Context) {
	principal, _ := middlewares.CurrentPrincipal(ctx)

	var req cartItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}
	if !req.validRef() {
		sendErrorResponse(ctx, http.StatusBadRequest, msgRefRequired)
		return
	}
	if req.Quantity <= 0 {
		sendErrorResponse(ctx, http.StatusBadRequest, msgBadQuantity)
		return
	}

	cart, err := loadCart(principal.UserID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		sendErrorResponse(ctx, http.StatusNotFound, msgCartNotFound)
		return
	}
	if err != nil {
		log.Println("Database error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	if err := cart.SetQuantity(req.ProductID, req.PackageID, req.Quantity); err != nil {
		sendErrorResponse(ctx, http.StatusNotFound, msgCartItemNotFound)
		return
	}

	if err := saveCart(&cart); err != nil {
		log.Println("Error saving cart:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"message": "Cart updated successfully.",
		"cart":    cart,
	})
}

// RemoveFromCart drops a line from the caller's cart.
func RemoveFromCart(ctx *gin.Context) {
	principal, _ := middlewares.CurrentPrincipal(ctx)

	var req cartItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}
	if !req.validRef() {
		sendErrorResponse(ctx, http.StatusBadRequest, msgRefRequired)
		return
	}

	cart, err := loadCart(principal.UserID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		sendErrorResponse(ctx, http.StatusNotFound, msgCartNotFound)
		return
	}
	if err != nil {
		log.Println("Database error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	if err := cart.Remove(req.ProductID, req.PackageID); err != nil {
		sendErrorResponse(ctx, http.StatusNotFound, msgCartItemNotFound)
		return
	}

	if err := saveCart(&cart); err != nil {
		log.Println("Error saving cart:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"message": "Item removed from cart.",
		"cart":    cart,
	})
}

type cartLineView struct {
	ProductID *uint  `json:"productId,omitempty"`
	PackageID *uint  `json:"packageId,omitempty"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	Quantity  int    `json:"quantity"`
	Subtotal  int64  `json:"subtotal"`
}

// ViewCart returns the cart with catalog names resolved. An absent or
// empty cart is a normal response, not an error.
func ViewCart(ctx *gin.Context) {
	principal, _ := middlewares.CurrentPrincipal(ctx)

	cart, err := loadCart(principal.UserID)
	if errors.Is(err, gorm.ErrRecordNotFound) || (err == nil && cart.IsEmpty()) {
		sendJSONResponse(ctx, http.StatusOK, gin.H{"message": msgCartEmpty, "cart": nil})
		return
	}
	if err != nil {
		log.Println("Database error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	lines := make([]cartLineView, 0, len(cart.Items))
	for _, item := range cart.Items {
		line := cartLineView{
			ProductID: item.ProductID,
			PackageID: item.PackageID,
			Price:     item.Price,
			Quantity:  item.Quantity,
			Subtotal:  item.Price * int64(item.Quantity),
		}
		if item.ProductID != nil {
			var product models.Product
			if err := initializers.DB.First(&product, *item.ProductID).Error; err == nil {
				line.Name = product.Name
			}
		} else if item.PackageID != nil {
			var pkg models.Package
			if err := initializers.DB.First(&pkg, *item.PackageID).Error; err == nil {
				line.Name = pkg.Name
			}
		}
		lines = append(lines, line)
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"message":    "Cart retrieved successfully.",
		"items":      lines,
		"totalPrice": cart.TotalPrice,
	})
}
