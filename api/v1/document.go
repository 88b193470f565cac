package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sitetrack-api/services"
	"github.com/sitetrack-api/utils"
	"go.uber.org/zap"
)

// documentService needs the upload directory from config, so it is wired
// in RegisterRoutes instead of at package init.
var documentService *services.DocumentService

// UploadDocument stores an uploaded file and its metadata
func UploadDocument(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": false, "message": "No file uploaded"})
		return
	}

	doc, err := documentService.UploadDocument(
		c.PostForm("projectId"),
		c.PostForm("category"),
		c.PostForm("customName"),
		file,
	)
	if err != nil {
		if utils.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"status": false, "message": err.Error()})
			return
		}
		zap.L().Error("Error uploading document", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"status": false, "message": "Error uploading document"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   true,
		"message":  "Document uploaded successfully",
		"document": doc,
	})
}

// ListDocuments returns all documents of a project, newest first
func ListDocuments(c *gin.Context) {
	docs, err := documentService.ListDocuments(c.Param("projectId"))
	if err != nil {
		zap.L().Error("Error fetching documents", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"status": false, "message": "Error fetching documents"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": true, "documents": docs})
}

// DeleteDocument removes a document record and its stored file
func DeleteDocument(c *gin.Context) {
	err := documentService.DeleteDocument(c.Param("documentId"))
	if err != nil {
		if utils.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"status": false, "message": "Document not found"})
			return
		}
		zap.L().Error("Error deleting document", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"status": false, "message": "Error deleting document"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  true,
		"message": "Document deleted successfully",
	})
}
