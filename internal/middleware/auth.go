package middleware

import (
	"net/http"
	"strings"

	"postlink/internal/auth"
	"postlink/internal/config"
	"postlink/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const CurrentUserKey = "current_user"

// AuthRequired validates the bearer token and attaches the resolved user to
// the request context. A missing header, a bad token and a deleted user all
// produce the same 401 so callers cannot tell them apart.
func AuthRequired(database *gorm.DB, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			abortUnauthorized(c)
			return
		}

		parts := strings.Split(header, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			abortUnauthorized(c)
			return
		}

		userID, err := auth.ParseAccessToken(parts[1], cfg)
		if err != nil {
			abortUnauthorized(c)
			return
		}

		var user models.User
		if err := database.First(&user, userID).Error; err != nil {
			abortUnauthorized(c)
			return
		}

		c.Set(CurrentUserKey, &user)
		c.Next()
	}
}

// CurrentUser returns the user attached by AuthRequired. Only call it from
// handlers registered behind the middleware.
func CurrentUser(c *gin.Context) *models.User {
	return c.MustGet(CurrentUserKey).(*models.User)
}

func abortUnauthorized(c *gin.Context) {
	c.Header("WWW-Authenticate", "Bearer")
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "could not validate credentials"})
}
