package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sitetrack-api/dto"
	"github.com/sitetrack-api/services"
	"github.com/sitetrack-api/utils"
	"go.uber.org/zap"
)

var labourService = services.NewLabourService()

// AddLabourRecord adds a contract or daily labour record to a project
func AddLabourRecord(c *gin.Context) {
	var req dto.AddLabourRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data"})
		return
	}

	record, err := labourService.AddLabourRecord(req)
	if err != nil {
		if utils.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		zap.L().Error("Error adding labour record", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Labour record added successfully",
		"data":    record,
	})
}

// ListLabourRecords returns all labour records of a project, newest first
func ListLabourRecords(c *gin.Context) {
	records, err := labourService.ListLabourRecords(c.Param("projectId"))
	if err != nil {
		zap.L().Error("Error fetching labour records", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	c.JSON(http.StatusOK, records)
}
