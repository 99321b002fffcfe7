// file: database/connect.go
package database

import (
	"DevOlympus/config"
	"DevOlympus/models"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"log"
	"time"
)

var DB *gorm.DB

func Connect(cfg config.Config) {
	var err error
	DB, err = gorm.Open(mysql.Open(cfg.DBDSN), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	sqlDB, err := DB.DB()
	if err != nil {
		log.Fatal("Failed to get underlying sql.DB:", err)
	}

	// 连接池参数：空闲/最大连接数，以及连接最长复用时间
	// （1小时的上限用于规避 MySQL 的 wait_timeout 断连问题）
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	log.Println("Database connection successfully established and connection pool configured.")
}

// MigrateTables 自动迁移（默认不在启动时调用，表结构由运维脚本管理）
func MigrateTables() {
	err := DB.AutoMigrate(
		&models.User{},
		&models.Team{},
		&models.TeamMember{},
		&models.Payment{},
		&models.ConsentLetter{},
		&models.EventInfo{},
	)
	if err != nil {
		log.Fatal("Failed to migrate database:", err)
	}
}
