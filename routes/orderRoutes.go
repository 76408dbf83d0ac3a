package routes

import (
	"github.com/autocare-store/autocare-api/controllers"
	"github.com/autocare-store/autocare-api/middlewares"
	"github.com/gin-gonic/gin"
)

func OrderRoutes(server *gin.Engine) {
	// Gateway callback carries no session; it is verified by shared token.
	server.POST("/webhook/moyasar", controllers.HandlePaymentWebhook)

	server.GET("/user/orders", middlewares.RequireAuth(), controllers.GetMyOrders)

	order := server.Group("/order", middlewares.RequireAuth())
	{
		order.POST("", controllers.CreateOrderFromCart)
		order.GET("/:orderId", controllers.GetOrder)

		admin := order.Group("", middlewares.RequireAdmin())
		{
			admin.GET("", controllers.GetOrders)
			admin.PUT("/:orderId", controllers.UpdateOrder)
			admin.DELETE("/:orderId", controllers.DeleteOrder)
		}
	}
}
