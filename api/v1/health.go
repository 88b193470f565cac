package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthCheck reports that the API is up
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  true,
		"message": "SiteTrack API is running",
	})
}
