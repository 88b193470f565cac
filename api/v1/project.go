package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sitetrack-api/dto"
	"github.com/sitetrack-api/services"
	"github.com/sitetrack-api/utils"
)

var projectService = services.NewProjectService()

// CreateProject inserts a new project for a user
func CreateProject(c *gin.Context) {
	var req dto.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": false, "message": "Invalid request data: " + err.Error()})
		return
	}

	project, err := projectService.CreateProject(req)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"status": false, "message": "Error", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    true,
		"message":   "Project created successfully",
		"projectId": project.ID,
	})
}

// ListProjects returns all projects of a user, newest first
func ListProjects(c *gin.Context) {
	projects, err := projectService.ListProjects(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"status": false, "message": "Error", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   true,
		"projects": projects,
	})
}

// UpdateProject applies a partial update to a project
func UpdateProject(c *gin.Context) {
	var req dto.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": false, "message": "Invalid request data: " + err.Error()})
		return
	}

	project, err := projectService.UpdateProject(c.Param("projectId"), req)
	if err != nil {
		if utils.IsNotFound(err) {
			c.JSON(http.StatusOK, gin.H{"status": false, "message": "Project not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": false, "message": "Error updating project", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  true,
		"message": "Project updated successfully",
		"project": project,
	})
}

// DeleteProject deletes a project and all its materials
func DeleteProject(c *gin.Context) {
	err := projectService.DeleteProject(c.Param("projectId"))
	if err != nil {
		if utils.IsNotFound(err) {
			c.JSON(http.StatusOK, gin.H{"status": false, "message": "Project not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": false, "message": "Error deleting project", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  true,
		"message": "Project and related materials deleted successfully",
	})
}
