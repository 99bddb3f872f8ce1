package middleware

import (
	"net/http"
	"strings"

	"github.com/SGRH/SGRH-Backend/src/auth"
	"github.com/SGRH/SGRH-Backend/src/models"
	"github.com/gin-gonic/gin"
)

const (
	ctxUserIDKey = "userId"
	ctxRoleKey   = "role"
)

// AuthMiddleware requires a bearer token signed with secret. A missing
// credential is a 401; a supplied but invalid or expired one is a 403.
func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		// Gets the authorization header
		authHeader := strings.TrimSpace(ctx.GetHeader("Authorization"))
		if authHeader == "" {
			ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Token no proporcionado"})
			ctx.Abort()
			return
		}

		// Divides the header into Bearer and Token
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Token no proporcionado"})
			ctx.Abort()
			return
		}

		claims, err := auth.ParseToken(secret, parts[1])
		if err != nil {
			ctx.JSON(http.StatusForbidden, gin.H{"error": "Token inválido o expirado"})
			ctx.Abort()
			return
		}

		// Sets the token claims in the context for downstream handlers
		ctx.Set(ctxUserIDKey, claims.UserID)
		ctx.Set(ctxRoleKey, claims.Role)
		ctx.Next()
	}
}

// RequireRoles allows the request through only when the authenticated role
// is in the allow-list.
func RequireRoles(allowed ...models.Role) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		role, ok := ctx.Get(ctxRoleKey)
		if !ok {
			ctx.JSON(http.StatusForbidden, gin.H{"error": "Acceso denegado: rol no autorizado"})
			ctx.Abort()
			return
		}
		for _, r := range allowed {
			if role == r {
				ctx.Next()
				return
			}
		}
		ctx.JSON(http.StatusForbidden, gin.H{"error": "Acceso denegado: rol no autorizado"})
		ctx.Abort()
	}
}

// CurrentUserID returns the authenticated user id, zero if absent.
func CurrentUserID(ctx *gin.Context) int {
	if v, ok := ctx.Get(ctxUserIDKey); ok {
		if id, ok := v.(int); ok {
			return id
		}
	}
	return 0
}

// CurrentRole returns the authenticated role, empty if absent.
func CurrentRole(ctx *gin.Context) models.Role {
	if v, ok := ctx.Get(ctxRoleKey); ok {
		if role, ok := v.(models.Role); ok {
			return role
		}
	}
	return ""
}
