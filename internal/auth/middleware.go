package auth

import (
	"log"
	"net/http"
	"strings"

	"critgo/backend/internal/authz"
	"critgo/backend/internal/storage"

	"github.com/gin-gonic/gin"
)

const (
	callerKey = "auth.caller"
	claimsKey = "auth.claims"
)

// Middleware resolves bearer tokens into callers for the handler layer.
type Middleware struct {
	Tokens  *TokenService
	Storage storage.Storage
}

func NewMiddleware(tokens *TokenService, s storage.Storage) *Middleware {
	return &Middleware{Tokens: tokens, Storage: s}
}

// bearerToken extracts the token from the Authorization header, falling back
// to the "token" query parameter for websocket upgrades.
func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return c.Query("token")
}

// Authenticate rejects requests without a valid, non-revoked token and puts
// the resolved caller into the request context.
func (m *Middleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearerToken(c)
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "token de autorización ausente"})
			return
		}

		claims, err := m.Tokens.Parse(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "token inválido o expirado"})
			return
		}

		if claims.JTI != "" {
			revoked, err := m.Storage.IsTokenRevoked(claims.JTI)
			if err != nil {
				// Fail open: an unreachable revocation store must not lock
				// every caller out, but it has to be visible in the logs.
				log.Printf("ERROR: Revocation lookup failed for jti %s, accepting token: %v", claims.JTI, err)
			} else if revoked {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "sesión cerrada"})
				return
			}
		}

		c.Set(callerKey, claims.Caller)
		c.Set(claimsKey, claims)
		c.Next()
	}
}

// RequireAdmin guards admin-only routes. It must run after Authenticate.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		caller, ok := CallerFrom(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "no autenticado"})
			return
		}
		if !caller.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "se requiere rol de administrador"})
			return
		}
		c.Next()
	}
}

// CallerFrom returns the caller resolved by Authenticate, if any.
func CallerFrom(c *gin.Context) (authz.Caller, bool) {
	v, ok := c.Get(callerKey)
	if !ok {
		return authz.Caller{}, false
	}
	caller, ok := v.(authz.Caller)
	return caller, ok
}

// ClaimsFrom returns the full token claims resolved by Authenticate.
func ClaimsFrom(c *gin.Context) (*Claims, bool) {
	v, ok := c.Get(claimsKey)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*Claims)
	return claims, ok
}
