package middleware

import (
	"net/http"
	"strings"

	"blogapi/internal/auth"
	"blogapi/internal/utils"

	"github.com/gin-gonic/gin"
)

const claimsKey = "auth_claims"

// RequireAuth gates a route group behind a valid bearer token. Every failure
// mode (missing header, wrong scheme, bad signature, expiry) answers with the
// same generic 401 so callers learn nothing useful for forging tokens; the
// specific reason goes to the server log only.
func RequireAuth(codec *auth.Codec) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		token = strings.TrimSpace(token)
		if !ok || token == "" {
			utils.LogEvent(GetRequestID(c), "auth", "reject", "missing or malformed Authorization header")
			unauthorized(c)
			return
		}

		claims, err := codec.Decode(token)
		if err != nil {
			utils.LogEvent(GetRequestID(c), "auth", "reject", err.Error())
			unauthorized(c)
			return
		}

		c.Set(claimsKey, claims)
		c.Next()
	}
}

func unauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"status":  http.StatusUnauthorized,
		"message": "unauthorized",
		"data":    nil,
	})
}

// ClaimsFrom returns the verified identity stored by RequireAuth.
func ClaimsFrom(c *gin.Context) (auth.Claims, bool) {
	v, ok := c.Get(claimsKey)
	if !ok {
		return auth.Claims{}, false
	}
	claims, ok := v.(auth.Claims)
	return claims, ok
}
