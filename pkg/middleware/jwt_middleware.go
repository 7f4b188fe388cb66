package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"wayfarer/pkg/logger"
	"wayfarer/pkg/utils"
)

func JWTAuthMiddleware(issuer *utils.TokenIssuer) gin.HandlerFunc {

	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondError(c, http.StatusUnauthorized, "Authorization header missing or invalid")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := issuer.ValidateToken(tokenString)
		if err != nil {
			utils.RespondError(c, http.StatusUnauthorized, "Could not validate credentials")
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("user_email", claims.Subject)
		c.Request = c.Request.WithContext(logger.WithContext(c.Request.Context(), logger.UserIDKey, claims.UserID))
		c.Next()
	}
}
