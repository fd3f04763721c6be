package database

import (
	"github.com/slidesync/SlideBot/internal/database/models"
	"github.com/slidesync/SlideBot/pkg/config"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB() *gorm.DB {
	db, err := gorm.Open(sqlite.Open(config.DatabaseFile), &gorm.Config{})
	if err != nil {
		panic(err)
	}
	db.Config.Logger = logger.Default.LogMode(logger.Silent)

	err = db.AutoMigrate(
		&models.DeliveryRecord{},
	)
	if err != nil {
		panic(err)
	}

	return db
}
