package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func RequireAdmin() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		principal, exists := CurrentPrincipal(ctx)
		if !exists {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "User not found in context"})
			return
		}

		if !principal.IsAdmin() {
			ctx.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Admin access required"})
			return
		}

		ctx.Next()
	}
}

func RequireSuperAdmin() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		principal, exists := CurrentPrincipal(ctx)
		if !exists {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "User not found in context"})
			return
		}

		if !principal.IsSuperAdmin() {
			ctx.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Super admin access required"})
			return
		}

		ctx.Next()
	}
}
