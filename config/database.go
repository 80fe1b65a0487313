package config

import (
	"fmt"
	"time"

	"MoodaGo/models"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// InitDB opens the database connection and runs migrations.
// The handle is returned rather than stored in a package global so that
// repositories receive it explicitly.
func InitDB(config Config) (*gorm.DB, error) {
	dsn := config.GetDBConnString()

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := migrateDB(db); err != nil {
		return nil, err
	}

	return db, nil
}

func migrateDB(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Personality{},
		&models.Message{},
		&models.EmotionLog{},
	)
	if err != nil {
		return fmt.Errorf("database migration failed: %v", err)
	}

	if err := models.SeedPersonalities(db); err != nil {
		return fmt.Errorf("personality seed failed: %v", err)
	}

	return nil
}
