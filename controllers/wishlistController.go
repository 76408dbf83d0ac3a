package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/autocare-store/autocare-api/initializers"
	"github.com/autocare-store/autocare-api/middlewares"
	"github.com/autocare-store/autocare-api/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const msgWishlistNotFound = "Wishlist not found."

func loadOrCreateWishlist(userID uint) (models.Wishlist, error) {
	var wishlist models.Wishlist
	err := initializers.DB.Where("user_id = ?", userID).Preload("Items").First(&wishlist).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		wishlist = models.Wishlist{UserID: userID}
		err = initializers.DB.Create(&wishlist).Error
	}
	return wishlist, err
}

// AddToWishlist puts a product on the caller's wishlist. Duplicates are
// rejected rather than merged.
func AddToWishlist(ctx *gin.Context) {
	principal, _ := middlewares.CurrentPrincipal(ctx)

	var body struct {
		ProductID uint `json:"productId" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	var product models.Product
	if err := initializers.DB.First(&product, body.ProductID).Error; err != nil {
		sendErrorResponse(ctx, http.StatusNotFound, msgProductNotFound)
		return
	}

	wishlist, err := loadOrCreateWishlist(principal.UserID)
	if err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to load wishlist", err)
		return
	}

	if wishlist.Contains(body.ProductID) {
		sendErrorResponse(ctx, http.StatusConflict, "Product is already in the wishlist.")
		return
	}

	item := models.WishlistItem{
		WishlistID: wishlist.ID,
		ProductID:  body.ProductID,
		AddedAt:    time.Now(),
	}
	if err := initializers.DB.Create(&item).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to add product to wishlist", err)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Product added to wishlist successfully"})
}

// GetWishlist returns the caller's wishlist with products resolved.
func GetWishlist(ctx *gin.Context) {
	principal, _ := middlewares.CurrentPrincipal(ctx)

	var wishlist models.Wishlist
	err := initializers.DB.Where("user_id = ?", principal.UserID).
		Preload("Items.Product").
		First(&wishlist).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		sendErrorResponse(ctx, http.StatusNotFound, msgWishlistNotFound)
		return
	}
	if err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to fetch wishlist", err)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"wishlist": wishlist})
}

// RemoveFromWishlist drops a product from the caller's wishlist.
func RemoveFromWishlist(ctx *gin.Context) {
	principal, _ := middlewares.CurrentPrincipal(ctx)

	productID, err := strconv.Atoi(ctx.Param("productId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid product ID")
		return
	}

	var wishlist models.Wishlist
	err = initializers.DB.Where("user_id = ?", principal.UserID).First(&wishlist).Error
	if err != nil {
		sendErrorResponse(ctx, http.StatusNotFound, msgWishlistNotFound)
		return
	}

	result := initializers.DB.Unscoped().
		Where("wishlist_id = ? AND product_id = ?", wishlist.ID, productID).
		Delete(&models.WishlistItem{})
	if result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to remove product from wishlist", result.Error)
		return
	}
	if result.RowsAffected == 0 {
		sendErrorResponse(ctx, http.StatusNotFound, "Product not found in wishlist.")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Product removed from wishlist successfully"})
}
