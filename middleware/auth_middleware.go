package middleware

import (
	"fmt"
	"net/http"
	"seo-blog-generator/application/ports/outbound"
	"strings"
	"time"

	"github.com/MicahParks/keyfunc/v2"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	ContextUserIDKey = "userID"
	ContextScopesKey = "scopes"
)

type CustomClaims struct {
	jwt.RegisteredClaims
	Scopes string `json:"scope,omitempty"`
}

type AuthHandler interface {
	AuthMiddleware(publicPaths ...string) gin.HandlerFunc
}

type authHandler struct {
	keyfunc jwt.Keyfunc
}

func NewAuthHandler(jwksURL string, logger outbound.LoggerPort) (AuthHandler, error) {
	options := keyfunc.Options{
		RefreshErrorHandler: func(err error) {
			logger.Error(err, "There was an error with the jwt.Keyfunc")
		},
		RefreshInterval:   time.Hour,
		RefreshRateLimit:  time.Minute * 5,
		RefreshTimeout:    time.Second * 10,
		RefreshUnknownKID: true,
	}

	jwks, err := keyfunc.Get(jwksURL, options)
	if err != nil {
		return nil, fmt.Errorf("create JWKS from %s: %w", jwksURL, err)
	}

	return &authHandler{keyfunc: jwks.Keyfunc}, nil
}

// NewAuthHandlerWithKeyfunc builds a handler around a fixed key lookup.
func NewAuthHandlerWithKeyfunc(kf jwt.Keyfunc) AuthHandler {
	return &authHandler{keyfunc: kf}
}

func (h *authHandler) AuthMiddleware(publicPaths ...string) gin.HandlerFunc {
	public := make(map[string]bool, len(publicPaths))
	for _, path := range publicPaths {
		public[path] = true
	}

	return func(c *gin.Context) {
		if public[c.Request.URL.Path] {
			c.Next()
			return
		}
		tokenString := c.GetHeader("Authorization")
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "authorization header is required"})
			return
		}

		tokenString = strings.TrimPrefix(tokenString, "Bearer ")

		var claims CustomClaims
		token, err := jwt.ParseWithClaims(tokenString, &claims, h.keyfunc)
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "invalid token"})
			return
		}

		c.Set(ContextUserIDKey, claims.Subject)
		c.Set(ContextScopesKey, strings.Fields(claims.Scopes))

		c.Next()
	}
}
