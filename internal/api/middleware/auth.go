package middleware

import (
	"strings"

	"reeldine/internal/pkg/consts"
	"reeldine/internal/pkg/redis"
	"reeldine/internal/pkg/response"
	"reeldine/internal/pkg/security"

	"github.com/gin-gonic/gin"
)

const (
	SubjectIDKey   = "subject_id"
	SubjectKindKey = "subject_kind"
)

// AuthMiddleware validates the bearer token, rejects denylisted signatures
// and injects the principal into the gin context.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := principalFromHeader(c)
		if !ok {
			c.Abort()
			return
		}

		c.Set(SubjectIDKey, claims.SubjectID)
		c.Set(SubjectKindKey, claims.Kind)
		c.Next()
	}
}

// RequireKind additionally restricts a route to one principal kind.
func RequireKind(kind string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(SubjectKindKey) != kind {
			response.Fail(c, 403, "forbidden for this account type")
			c.Abort()
			return
		}
		c.Next()
	}
}

func principalFromHeader(c *gin.Context) (*security.UserClaims, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		response.Fail(c, 401, "missing or malformed token")
		return nil, false
	}
	return validateToken(c, strings.TrimPrefix(authHeader, "Bearer "))
}

func validateToken(c *gin.Context, tokenString string) (*security.UserClaims, bool) {
	signature, err := security.ExtractSignature(tokenString)
	if err != nil {
		response.Fail(c, 401, "missing or malformed token")
		return nil, false
	}

	// a logout denylists the signature until the token would expire anyway
	value, err := redis.GetValue(c.Request.Context(), consts.TokenDenyKey+signature)
	if err != nil {
		response.Fail(c, 500, "something went wrong, please try again later")
		return nil, false
	}
	if value != "" {
		response.Fail(c, 401, "token invalid or expired")
		return nil, false
	}

	claims, err := security.ValidateToken(tokenString)
	if err != nil {
		response.Fail(c, 401, "token invalid or expired")
		return nil, false
	}
	return claims, true
}
