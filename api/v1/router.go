package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/sitetrack-api/config"
	"github.com/sitetrack-api/services"
)

// RegisterRoutes attaches all API endpoints to the given group
func RegisterRoutes(router *gin.RouterGroup, cfg *config.Config) {
	documentService = services.NewDocumentService(services.NewLocalStorage(cfg.Storage.UploadDir))

	// Users
	router.POST("/create-user", CreateUser)
	router.POST("/update-name", UpdateName)

	// Projects
	router.POST("/create-project", CreateProject)
	router.GET("/projects/:userId", ListProjects)
	router.PUT("/update-project/:projectId", UpdateProject)
	router.DELETE("/delete-project/:projectId", DeleteProject)

	// Materials
	router.POST("/add-material", AddMaterial)
	router.GET("/materials/:projectId", ListMaterials)
	router.PUT("/update-material/:materialId", UpdateMaterial)
	router.PUT("/log-usage/:materialId", LogUsage)
	router.GET("/material-history/:materialId", GetMaterialHistory)
	router.DELETE("/delete-material/:materialId", DeleteMaterial)

	// Labour
	router.POST("/labour/add", AddLabourRecord)
	router.GET("/labour/project/:projectId", ListLabourRecords)

	// Equipment
	router.GET("/equipment/:projectId", ListEquipment)
	router.POST("/add-equipment", AddEquipment)
	router.PUT("/update-equipment/:id", UpdateEquipment)
	router.DELETE("/delete-equipment/:id", DeleteEquipment)
	router.GET("/equipment-logs/:equipmentId", ListEquipmentLogs)
	router.POST("/add-equipment-log", AddEquipmentLog)
	router.DELETE("/delete-equipment-log/:logId", DeleteEquipmentLog)

	// Progress
	router.POST("/progress/add", UpsertProgress)
	router.GET("/progress/:projectId", GetProgress)

	// Documents
	router.POST("/upload-document", UploadDocument)
	router.GET("/documents/:projectId", ListDocuments)
	router.DELETE("/delete-document/:documentId", DeleteDocument)

	// Summary
	router.GET("/project-summary/:projectId", GetProjectSummary)
}
