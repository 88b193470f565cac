package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sitetrack-api/dto"
	"github.com/sitetrack-api/services"
	"github.com/sitetrack-api/utils"
	"go.uber.org/zap"
)

var progressService = services.NewProgressService()

// UpsertProgress adds or updates the progress record of a project section
func UpsertProgress(c *gin.Context) {
	var req dto.UpsertProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request data"})
		return
	}

	record, created, err := progressService.UpsertProgress(req)
	if err != nil {
		if utils.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		zap.L().Error("Error adding progress", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server Error", "error": err.Error()})
		return
	}

	if created {
		c.JSON(http.StatusCreated, gin.H{
			"message": "Progress added successfully",
			"data":    record,
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Progress updated successfully",
		"data":    record,
	})
}

// GetProgress returns all progress records of a project
func GetProgress(c *gin.Context) {
	records, err := progressService.GetProgress(c.Param("projectId"))
	if err != nil {
		zap.L().Error("Error fetching progress", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server Error", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, records)
}
