package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"housequay/internal/domain"
	jwtsvc "housequay/internal/pkg/jwt"
	"housequay/internal/pkg/response"
)

// JWTAuth validates the Bearer token and stores user_id/role in the context.
func JWTAuth(jwt *jwtsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Missing Authorization header")
			c.Abort()
			return
		}

		if !strings.HasPrefix(h, "Bearer ") {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid Authorization header")
			c.Abort()
			return
		}

		tokenStr := strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
		if tokenStr == "" {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Empty token")
			c.Abort()
			return
		}

		claims, err := jwt.ValidateToken(tokenStr)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid token")
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("role", claims.Role)

		c.Next()
	}
}

// ActorFrom builds the explicit auth context services consume.
// Returns false when the request passed no auth middleware.
func ActorFrom(c *gin.Context) (domain.Actor, bool) {
	userID := c.GetInt64("user_id")
	if userID == 0 {
		return domain.Actor{}, false
	}
	return domain.Actor{
		UserID: userID,
		Role:   domain.UserRole(c.GetString("role")),
	}, true
}
