package routes

import (
	"github.com/autocare-store/autocare-api/controllers"
	"github.com/autocare-store/autocare-api/middlewares"
	"github.com/gin-gonic/gin"
)

func MessageRoutes(server *gin.Engine) {
	server.POST("/message", controllers.AddMessage)
	server.GET("/message", middlewares.RequireAuth(), middlewares.RequireAdmin(), controllers.GetMessages)
	server.DELETE("/message/:id", middlewares.RequireAuth(), middlewares.RequireSuperAdmin(), controllers.DeleteMessage)
}
