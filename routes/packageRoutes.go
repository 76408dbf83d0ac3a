package routes

import (
	"github.com/autocare-store/autocare-api/controllers"
	"github.com/autocare-store/autocare-api/middlewares"
	"github.com/gin-gonic/gin"
)

func PackageRoutes(server *gin.Engine) {
	server.GET("/package", controllers.GetPackages)
	server.GET("/package/:packageId", controllers.GetPackage)

	admin := server.Group("/package", middlewares.RequireAuth(), middlewares.RequireAdmin())
	{
		admin.POST("", controllers.CreatePackage)
		admin.PUT("/:packageId", controllers.UpdatePackage)
		admin.DELETE("/:packageId", controllers.DeletePackage)
	}
}
