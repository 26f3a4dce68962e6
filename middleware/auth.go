package middleware

import (
	"strings"

	"shoot-scheduler/config"
	"shoot-scheduler/helper"
	"shoot-scheduler/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
)

const identityKey = "identity"

type Claims struct {
	UserID   uint            `json:"user_id"`
	Username string          `json:"username"`
	Role     models.UserRole `json:"role"`
	jwt.RegisteredClaims
}

func AuthMiddleware(settings config.JWTSettings, httpHelper *helper.HTTPHelper) gin.HandlerFunc {
	key := settings.Key()
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			httpHelper.SendUnauthorizedError(c, "Authorization header required", httpHelper.EmptyJsonMap())
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			httpHelper.SendUnauthorizedError(c, "Bearer token required", httpHelper.EmptyJsonMap())
			c.Abort()
			return
		}

		claims := &Claims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return key, nil
		})

		if err != nil {
			httpHelper.SendUnauthorizedError(c, "Invalid token: "+err.Error(), httpHelper.EmptyJsonMap())
			c.Abort()
			return
		}

		if !token.Valid || !claims.Role.Valid() {
			httpHelper.SendUnauthorizedError(c, "Token is not valid", httpHelper.EmptyJsonMap())
			c.Abort()
			return
		}

		c.Set(identityKey, models.Identity{
			ID:       claims.UserID,
			Username: claims.Username,
			Role:     claims.Role,
		})
		c.Set("user_id", claims.UserID)

		c.Next()
	}
}

// CurrentIdentity returns the identity stored by AuthMiddleware.
func CurrentIdentity(c *gin.Context) (models.Identity, bool) {
	value, exists := c.Get(identityKey)
	if !exists {
		return models.Identity{}, false
	}
	identity, ok := value.(models.Identity)
	return identity, ok
}

// RequireRole lets the request through only when the caller holds one of roles.
func RequireRole(httpHelper *helper.HTTPHelper, roles ...models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := CurrentIdentity(c)
		if !ok {
			httpHelper.SendUnauthorizedError(c, "User role not found", httpHelper.EmptyJsonMap())
			c.Abort()
			return
		}

		for _, role := range roles {
			if identity.Role == role {
				c.Next()
				return
			}
		}

		httpHelper.SendServiceError(c, models.ErrorRoleViolation{Required: roles[0], Actual: identity.Role})
		c.Abort()
	}
}
