package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sitetrack-api/services"
	"github.com/sitetrack-api/utils"
)

var summaryService = services.NewSummaryService()

// GetProjectSummary returns spend totals and remaining budget for a project
func GetProjectSummary(c *gin.Context) {
	summary, err := summaryService.GetProjectSummary(c.Param("projectId"))
	if err != nil {
		if utils.IsNotFound(err) {
			c.JSON(http.StatusOK, gin.H{"status": false, "message": "Project not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": false, "message": "Error fetching project summary", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  true,
		"summary": summary,
	})
}
