package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sitetrack-api/dto"
	"github.com/sitetrack-api/services"
	"github.com/sitetrack-api/utils"
)

var equipmentService = services.NewEquipmentService()

// ListEquipment returns all equipment of a project, newest first
func ListEquipment(c *gin.Context) {
	equipment, err := equipmentService.ListEquipment(c.Param("projectId"))
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"status": false, "message": "Error fetching equipment", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": true, "data": equipment})
}

// AddEquipment registers new equipment on a project
func AddEquipment(c *gin.Context) {
	var req dto.AddEquipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": false, "message": "Invalid request data: " + err.Error()})
		return
	}

	equipment, err := equipmentService.AddEquipment(req)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"status": false, "message": "Error adding equipment", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  true,
		"message": "Equipment added successfully",
		"data":    equipment,
	})
}

// UpdateEquipment applies a partial update to equipment
func UpdateEquipment(c *gin.Context) {
	var req dto.UpdateEquipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": false, "message": "Invalid request data: " + err.Error()})
		return
	}

	equipment, err := equipmentService.UpdateEquipment(c.Param("id"), req)
	if err != nil {
		if utils.IsNotFound(err) {
			c.JSON(http.StatusOK, gin.H{"status": false, "message": "Equipment not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": false, "message": "Error updating equipment", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  true,
		"message": "Equipment updated successfully",
		"data":    equipment,
	})
}

// DeleteEquipment deletes equipment together with its usage logs
func DeleteEquipment(c *gin.Context) {
	err := equipmentService.DeleteEquipment(c.Param("id"))
	if err != nil {
		if utils.IsNotFound(err) {
			c.JSON(http.StatusOK, gin.H{"status": false, "message": "Equipment not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": false, "message": "Error deleting equipment", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  true,
		"message": "Equipment and associated logs deleted successfully",
	})
}

// ListEquipmentLogs returns all usage logs of one equipment, newest first
func ListEquipmentLogs(c *gin.Context) {
	logs, err := equipmentService.ListLogs(c.Param("equipmentId"))
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"status": false, "message": "Error fetching equipment logs", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": true, "data": logs})
}

// AddEquipmentLog records a usage entry with derived rental and total cost
func AddEquipmentLog(c *gin.Context) {
	var req dto.AddEquipmentLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": false, "message": "Invalid request data: " + err.Error()})
		return
	}

	log, err := equipmentService.AddLog(req)
	if err != nil {
		if utils.IsNotFound(err) {
			c.JSON(http.StatusOK, gin.H{"status": false, "message": "Equipment not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": false, "message": "Error adding equipment log", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  true,
		"message": "Equipment log added successfully",
		"data":    log,
	})
}

// DeleteEquipmentLog removes a single usage log entry
func DeleteEquipmentLog(c *gin.Context) {
	err := equipmentService.DeleteLog(c.Param("logId"))
	if err != nil {
		if utils.IsNotFound(err) {
			c.JSON(http.StatusOK, gin.H{"status": false, "message": "Log not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": false, "message": "Error deleting equipment log", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  true,
		"message": "Equipment log deleted successfully",
	})
}
