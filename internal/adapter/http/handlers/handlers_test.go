package handlers

import (
	"github.com/acg-data/bizgenius-sub001/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

func withUser(userID string, admin bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		middleware.SetIdentity(c, middleware.Identity{UserID: userID, Admin: admin})
		c.Next()
	}
}
