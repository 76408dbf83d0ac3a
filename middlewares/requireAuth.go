package middlewares

import (
	"errors"
	"net/http"
	"os"
	"strings"

	"github.com/autocare-store/autocare-api/initializers"
	"github.com/autocare-store/autocare-api/models"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

const principalKey = "principal"

var ErrInvalidToken = errors.New("invalid token")

// ParseToken verifies an HS256 bearer token and returns the principal
// encoded in its claims.
func ParseToken(tokenString string) (models.Principal, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		return models.Principal{}, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return models.Principal{}, ErrInvalidToken
	}

	userID, ok := claims["user_id"].(float64)
	if !ok || userID <= 0 {
		return models.Principal{}, ErrInvalidToken
	}

	email, _ := claims["email"].(string)
	role, _ := claims["role"].(string)
	return models.Principal{UserID: uint(userID), Email: email, Role: role}, nil
}

// RequireAuth gates a route on a valid, still-live bearer token and
// attaches the resolved principal for the handler.
func RequireAuth() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		tokenString := bearerToken(ctx)
		if tokenString == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Authorization token is required"})
			return
		}

		principal, err := ParseToken(tokenString)
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid or expired token"})
			return
		}

		var user models.User
		if err := initializers.DB.First(&user, principal.UserID).Error; err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid or expired token"})
			return
		}
		if user.IsDeleted {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Account is deactivated, please log in again"})
			return
		}

		var tokenRecord models.Token
		err = initializers.DB.Where("token = ? AND is_valid = ?", tokenString, true).First(&tokenRecord).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid or expired token"})
			return
		}
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
			return
		}

		principal.Role = user.Role
		SetPrincipal(ctx, principal)
		ctx.Next()
	}
}

// SetPrincipal attaches the resolved principal to the request context.
func SetPrincipal(ctx *gin.Context, principal models.Principal) {
	ctx.Set(principalKey, principal)
}

// CurrentPrincipal returns the principal attached by RequireAuth.
func CurrentPrincipal(ctx *gin.Context) (models.Principal, bool) {
	value, exists := ctx.Get(principalKey)
	if !exists {
		return models.Principal{}, false
	}
	principal, ok := value.(models.Principal)
	return principal, ok
}

func bearerToken(ctx *gin.Context) string {
	header := ctx.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	return strings.TrimPrefix(header, "Bearer ")
}
