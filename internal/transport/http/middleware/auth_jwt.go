package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"store-ratings/internal/core/auth"
	"store-ratings/internal/domain"
)

const claimsKey = "authClaims"

// AuthJWT rejects requests without a valid bearer token (401) and, when an
// allow-set is given, requests whose role claim is outside it (403). Every
// protected group declares its allow-set explicitly.
func AuthJWT(j *auth.JWTer, allowed ...domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		ah := c.GetHeader("Authorization")
		if !strings.HasPrefix(ah, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "No token, authorization denied"})
			return
		}
		claims, err := j.Parse(strings.TrimPrefix(ah, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Token is not valid"})
			return
		}
		if len(allowed) > 0 {
			ok := false
			for _, r := range allowed {
				if claims.Role == r {
					ok = true
					break
				}
			}
			if !ok {
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Forbidden: Insufficient role"})
				return
			}
		}
		c.Set(claimsKey, claims)
		c.Next()
	}
}

// Claims returns the token payload AuthJWT stored for this request.
func Claims(c *gin.Context) *auth.Claims {
	v, ok := c.Get(claimsKey)
	if !ok {
		return nil
	}
	cl, _ := v.(*auth.Claims)
	return cl
}
