package routes

import (
	"github.com/autocare-store/autocare-api/controllers"
	"github.com/autocare-store/autocare-api/middlewares"
	"github.com/gin-gonic/gin"
)

func CarRoutes(server *gin.Engine) {
	car := server.Group("/car", middlewares.RequireAuth())
	{
		car.POST("/details", controllers.RegisterCarByDetails)
		car.POST("/engine", controllers.RegisterCarByEngineNumber)
		car.GET("", controllers.GetMyCars)
		car.GET("/packages/:carId", controllers.GetPackagesForCar)
	}

	server.GET("/car-brand", controllers.GetCarBrands)
	server.POST("/car-brand", middlewares.RequireAuth(), middlewares.RequireAdmin(), controllers.CreateCarBrand)
}
