package v1

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rescue365/rescue_dispatch_system/internal/config"
	"github.com/rescue365/rescue_dispatch_system/internal/models"
	"github.com/sirupsen/logrus"
)

const actorContextKey = "actor"

// APIKeyAuthMiddleware authenticates requests by API key
func APIKeyAuthMiddleware(cfg *config.Config, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		apiKey := c.GetHeader("X-API-Key")
		if apiKey == "" {
			// Also accept Authorization: Bearer
			authHeader := c.GetHeader("Authorization")
			if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
				apiKey = strings.TrimPrefix(authHeader, "Bearer ")
			}
		}

		if apiKey == "" {
			log.Warn("API key missing from request")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "API key required"})
			return
		}

		isValid := false
		for _, key := range cfg.APIKeys {
			if key == apiKey {
				isValid = true
				break
			}
		}

		if !isValid {
			log.Warn("Invalid API key provided")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid API key"})
			return
		}

		c.Next()
	}
}

// IdentityMiddleware builds the acting identity from the trusted gateway
// headers. The external identity provider authenticates the user; this
// service only consumes the result. The role is self-selected on the client;
// vet access is re-verified against stored credentials downstream.
func IdentityMiddleware(log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetHeader("X-User-Id")
		if userID == "" {
			log.Warn("Identity headers missing from request")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "user identity required"})
			return
		}

		role := models.Role(c.GetHeader("X-User-Role"))
		switch role {
		case models.RoleBystander, models.RoleRescuer, models.RoleVet, models.RoleDonor:
		case "":
			role = models.RoleBystander
		default:
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "unknown role"})
			return
		}

		c.Set(actorContextKey, models.Actor{
			ID:    userID,
			Email: c.GetHeader("X-User-Email"),
			Role:  role,
		})
		c.Next()
	}
}

// actorFromContext returns the Actor stored by IdentityMiddleware
func actorFromContext(c *gin.Context) models.Actor {
	if v, ok := c.Get(actorContextKey); ok {
		if actor, ok := v.(models.Actor); ok {
			return actor
		}
	}
	return models.Actor{}
}
