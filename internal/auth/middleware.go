package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

type errorBody struct {
	Error string `json:"error"`
}

// AuthRequired is a Gin middleware that validates JWT from Authorization: Bearer <token>
func AuthRequired(jwtManager *JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, errorBody{Error: "missing Authorization header"})
			return
		}

		scheme, tokenStr, ok := strings.Cut(header, " ")
		if !ok || !strings.EqualFold(scheme, "bearer") || tokenStr == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, errorBody{Error: "invalid Authorization header format"})
			return
		}

		userID, err := jwtManager.ParseAndValidate(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, errorBody{Error: "invalid or expired token"})
			return
		}

		SetUserID(c, userID)
		c.Next()
	}
}
