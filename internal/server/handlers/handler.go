package handlers

import (
	"strconv"

	"invest-service/internal/server/middleware"

	"github.com/gin-gonic/gin"
)

// pathID parses the :id path param; ok is false after a 400 was written.
func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(400, gin.H{"error": "invalid id"})
		return 0, false
	}
	return uint(id), true
}

// communityScope parses the optional ?community= filter; 0 means all.
func communityScope(c *gin.Context) (uint, bool) {
	raw := c.Query("community")
	if raw == "" {
		return 0, true
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		c.JSON(400, gin.H{"error": "invalid community id"})
		return 0, false
	}
	return uint(id), true
}

// authedUserID returns the JWT subject; ok is false after a 401 was written.
func authedUserID(c *gin.Context) (uint, bool) {
	user, err := middleware.GetUserFromContext(c.Request.Context())
	if err != nil {
		c.JSON(401, gin.H{"error": "unauthorized"})
		return 0, false
	}
	return user.ID, true
}
