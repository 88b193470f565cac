package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sitetrack-api/dto"
	"github.com/sitetrack-api/services"
	"github.com/sitetrack-api/utils"
)

var userService = services.NewUserService()

// CreateUser creates a user or returns the existing one for the email
func CreateUser(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": false, "message": "Email is required"})
		return
	}

	user, created, err := userService.CreateOrGetUser(req)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"status": false, "message": "Error", "error": err.Error()})
		return
	}

	message := "User created"
	if !created {
		message = "User already exists"
	}
	c.JSON(http.StatusOK, gin.H{
		"status":  true,
		"message": message,
		"userId":  user.ID,
		"name":    user.Name,
	})
}

// UpdateName sets the display name of an existing user
func UpdateName(c *gin.Context) {
	var req dto.UpdateNameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": false, "message": "User ID and name are required"})
		return
	}

	user, err := userService.UpdateName(req.UserID, req.Name)
	if err != nil {
		if utils.IsNotFound(err) {
			c.JSON(http.StatusOK, gin.H{"status": false, "message": "User not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": false, "message": "Error updating name", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  true,
		"message": "Name updated successfully",
		"user":    user,
	})
}
