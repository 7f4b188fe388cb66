package infra

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"wayfarer/internal/models/db_models"
)

func InitPostgresql(dsn string, log *zap.Logger) (*gorm.DB, error) {
	connectionPool, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	log.Info("connected to postgres")
	return connectionPool, nil
}

// Migrate creates or updates the tables backing the service.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&db_models.User{},
		&db_models.TravelPlan{},
		&db_models.Expense{},
	)
}

func ClosePostgresql(db *gorm.DB, log *zap.Logger) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Error("get database instance", zap.Error(err))
		return
	}

	if err := sqlDB.Close(); err != nil {
		log.Error("close database connection", zap.Error(err))
	} else {
		log.Info("postgres connection closed")
	}
}
