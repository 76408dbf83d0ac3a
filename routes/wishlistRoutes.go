package routes

import (
	"github.com/autocare-store/autocare-api/controllers"
	"github.com/autocare-store/autocare-api/middlewares"
	"github.com/gin-gonic/gin"
)

func WishlistRoutes(server *gin.Engine) {
	wishlist := server.Group("/wishlist", middlewares.RequireAuth())
	{
		wishlist.POST("", controllers.AddToWishlist)
		wishlist.GET("", controllers.GetWishlist)
		wishlist.DELETE("/:productId", controllers.RemoveFromWishlist)
	}
}
