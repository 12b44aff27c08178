package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/ramya05916-rgb/Hostel-Leave-Management-System/config"
	"github.com/ramya05916-rgb/Hostel-Leave-Management-System/models"
)

// Connect opens the Postgres pool and migrates the schema. The handle is
// returned to the caller; nothing here is kept as package state.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	if err := db.AutoMigrate(
		&models.Student{},
		&models.LeaveRequest{},
	); err != nil {
		return nil, fmt.Errorf("auto migrate: %w", err)
	}

	return db, nil
}
