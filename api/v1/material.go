package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sitetrack-api/dto"
	"github.com/sitetrack-api/services"
	"github.com/sitetrack-api/utils"
)

var materialService = services.NewMaterialService()

// AddMaterial inserts a new material for a project
func AddMaterial(c *gin.Context) {
	var req dto.AddMaterialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": false, "message": "Invalid request data: " + err.Error()})
		return
	}

	material, err := materialService.AddMaterial(req)
	if err != nil {
		if utils.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"status": false, "message": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": false, "message": "Error adding material", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":     true,
		"message":    "Material added successfully",
		"materialId": material.ID,
	})
}

// ListMaterials returns all materials of a project, newest first
func ListMaterials(c *gin.Context) {
	materials, err := materialService.ListMaterials(c.Param("projectId"))
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"status": false, "message": "Error fetching materials", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    true,
		"materials": materials,
	})
}

// UpdateMaterial applies a stock-addition or direct update to a material
func UpdateMaterial(c *gin.Context) {
	var req dto.UpdateMaterialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": false, "message": "Invalid request data: " + err.Error()})
		return
	}

	material, err := materialService.UpdateMaterial(c.Param("materialId"), req)
	if err != nil {
		if utils.IsNotFound(err) {
			c.JSON(http.StatusOK, gin.H{"status": false, "message": "Material not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": false, "message": "Error updating material", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   true,
		"message":  "Material updated successfully",
		"material": material,
	})
}

// LogUsage records consumption of a material without changing its stock
func LogUsage(c *gin.Context) {
	var req dto.LogUsageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": false, "message": "Invalid request data: " + err.Error()})
		return
	}

	material, err := materialService.LogUsage(c.Param("materialId"), req)
	if err != nil {
		if utils.IsValidation(err) {
			c.JSON(http.StatusOK, gin.H{"status": false, "message": err.Error()})
			return
		}
		if utils.IsNotFound(err) {
			c.JSON(http.StatusOK, gin.H{"status": false, "message": "Material not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": false, "message": "Error logging material usage", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   true,
		"message":  "Material usage logged successfully",
		"material": material,
	})
}

// GetMaterialHistory returns the update history of a material, newest first
func GetMaterialHistory(c *gin.Context) {
	history, err := materialService.GetHistory(c.Param("materialId"))
	if err != nil {
		if utils.IsNotFound(err) {
			c.JSON(http.StatusOK, gin.H{"status": false, "message": "Material not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": false, "message": "Error fetching material history", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": true,
		"data":   history,
	})
}

// DeleteMaterial removes a material from the ledger
func DeleteMaterial(c *gin.Context) {
	err := materialService.DeleteMaterial(c.Param("materialId"))
	if err != nil {
		if utils.IsNotFound(err) {
			c.JSON(http.StatusOK, gin.H{"status": false, "message": "Material not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": false, "message": "Error deleting material", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  true,
		"message": "Material deleted successfully",
	})
}
