package routes

import (
	"github.com/autocare-store/autocare-api/controllers"
	"github.com/gin-gonic/gin"
)

func AuthRoutes(server *gin.Engine) {
	auth := server.Group("/auth")
	{
		auth.POST("/signup", controllers.Signup)
		auth.POST("/login", controllers.Login)
		auth.PUT("/logout", controllers.Logout)
		auth.POST("/forgot-password", controllers.SendForgetCode)
		auth.POST("/reset-password", controllers.ResetPassword)
	}
}
