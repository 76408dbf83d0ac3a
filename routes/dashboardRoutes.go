package routes

import (
	"github.com/autocare-store/autocare-api/controllers"
	"github.com/autocare-store/autocare-api/middlewares"
	"github.com/gin-gonic/gin"
)

func DashboardRoutes(server *gin.Engine) {
	dashboard := server.Group("/dashboard", middlewares.RequireAuth(), middlewares.RequireAdmin())
	{
		dashboard.GET("/stats", controllers.GetDashboardStats)
		dashboard.GET("/sales", controllers.GetSalesStats)
	}
}
