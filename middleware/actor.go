package middleware

import (
	"net/http"
	"strings"

	"mentorloop/models"
	"mentorloop/utils"

	"github.com/gin-gonic/gin"
)

const actorContextKey = "actor"

// ActorMiddleware establishes who is calling from the Bearer token's subject
// and role claims. Authorization decisions beyond ownership checks are made
// upstream; this layer only needs a trustworthy identity.
func ActorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
			})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		actorID, role, err := utils.ExtractActorFromToken(tokenString)
		if err != nil || actorID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
			})
			return
		}

		c.Set(actorContextKey, models.Actor{ID: actorID, Role: role})
		c.Next()
	}
}

// ActorFromContext retrieves the actor placed by ActorMiddleware.
func ActorFromContext(c *gin.Context) (models.Actor, bool) {
	val, exists := c.Get(actorContextKey)
	if !exists {
		return models.Actor{}, false
	}
	actor, ok := val.(models.Actor)
	return actor, ok
}
