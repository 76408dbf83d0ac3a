package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func GetHome(ctx *gin.Context) {
	message := `Welcome to the AutoCare Store API.

The following are the endpoints for this API:

AUTH
- POST "/auth/signup" - Create user account
- POST "/auth/login" - Access user account
- PUT "/auth/logout" - Invalidate the current token
- POST "/auth/forgot-password" - Request a password reset code
- POST "/auth/reset-password" - Reset password using the emailed code

CATALOG
- GET "/product" - List products (filters: carEngine, model, year, brand, warranty, category, keywords)
- GET "/product/:id" - Get product by ID
- GET "/category" - List categories
- GET "/package" - List service packages
- GET "/car-brand" - List car brands

CART
- POST "/cart" - Add a product or package to the cart
- GET "/cart" - View the cart
- PUT "/cart" - Update a cart line's quantity
- DELETE "/cart" - Remove a cart line

ORDER
- POST "/order" - Create an order from the cart
- GET "/user/orders" - List your orders
- GET "/order/:orderId" - Get order by ID
- POST "/webhook/moyasar" - Payment gateway callback

WISHLIST
- POST "/wishlist" - Add a product to the wishlist
- GET "/wishlist" - View the wishlist
- DELETE "/wishlist/:productId" - Remove a product from the wishlist`

	ctx.JSON(http.StatusOK, gin.H{
		"message": message,
	})
}
