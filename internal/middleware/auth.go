package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"salonbooking/internal/pkg/jwt"
	"salonbooking/internal/pkg/response"
)

const (
	CtxUserID     = "user_id"
	CtxUserType   = "user_type"
	CtxBusinessID = "business_id"
)

type TokenValidator interface {
	ValidateToken(token string) (*jwt.Claims, error)
}

// Identify attaches the session carried by a bearer token to the context.
// Requests without a token pass through anonymously; a malformed or expired
// token is rejected.
func Identify(tokens TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.Next()
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			response.Error(c, http.StatusUnauthorized, "Authorization header must be 'Bearer <token>'")
			c.Abort()
			return
		}

		claims, err := tokens.ValidateToken(strings.TrimSpace(parts[1]))
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set(CtxUserID, claims.UserID)
		c.Set(CtxUserType, claims.UserType)
		c.Set(CtxBusinessID, claims.BusinessID)
		c.Next()
	}
}
