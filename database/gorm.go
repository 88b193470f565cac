package database

import (
	"log"
	"os"
	"time"

	"github.com/sitetrack-api/config"
	"github.com/sitetrack-api/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// Initialize sets up the GORM database connection
func Initialize(cfg config.DatabaseConfig) {
	db, err := Connect(cfg.URL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	DB = db

	if err := AutoMigrate(DB); err != nil {
		log.Fatalf("Failed to auto migrate: %v", err)
	}

	log.Println("Connected to database")
}

// Connect opens a postgres connection with the standard pool settings
func Connect(dbURL string) (*gorm.DB, error) {
	// Configure GORM logger
	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			ParameterizedQueries:      true,
		},
	)

	db, err := gorm.Open(postgres.Open(dbURL), &gorm.Config{
		Logger: newLogger,
	})
	if err != nil {
		return nil, err
	}

	// Get and configure the underlying SQL DB
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	// Set connection pool settings
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return db, nil
}

// AutoMigrate migrates all model schemas
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Project{},
		&models.Material{},
		&models.Labour{},
		&models.Equipment{},
		&models.EquipmentLog{},
		&models.ConstructionProgress{},
		&models.Document{},
	)
}
