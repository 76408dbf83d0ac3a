package routes

import (
	"github.com/autocare-store/autocare-api/controllers"
	"github.com/autocare-store/autocare-api/middlewares"
	"github.com/gin-gonic/gin"
)

func CategoryRoutes(server *gin.Engine) {
	server.GET("/category", controllers.GetCategories)
	server.GET("/category/:id", controllers.GetCategory)
	server.GET("/category/:id/products", controllers.GetProductsByCategory)

	admin := server.Group("/category", middlewares.RequireAuth(), middlewares.RequireAdmin())
	{
		admin.POST("", controllers.CreateCategory)
		admin.PUT("/:id", controllers.UpdateCategory)
		admin.DELETE("/:id", controllers.DeleteCategory)
	}
}
