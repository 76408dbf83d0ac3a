package routes

import (
	"github.com/autocare-store/autocare-api/controllers"
	"github.com/autocare-store/autocare-api/middlewares"
	"github.com/gin-gonic/gin"
)

func CartRoutes(server *gin.Engine) {
	cart := server.Group("/cart", middlewares.RequireAuth())
	{
		cart.POST("", controllers.AddToCart)
		cart.GET("", controllers.ViewCart)
		cart.PUT("", controllers.UpdateCartItem)
		cart.DELETE("", controllers.RemoveFromCart)
	}
}
