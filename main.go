// file: main.go
package main

import (
	"DevOlympus/config"
	"DevOlympus/controllers"
	"DevOlympus/database"
	"DevOlympus/routes"
	"DevOlympus/services"
	"DevOlympus/utils"
	"log"
)

func main() {
	cfg := config.MustLoad()

	database.Connect(cfg)
	database.InitRedis(cfg)
	utils.InitJWT(cfg.JWTSecret)

	// 禁用自动迁移 (推荐)，表结构由运维脚本管理
	// database.MigrateTables()

	uploader, err := services.NewCloudinaryUploader(cfg.CloudinaryURL)
	if err != nil {
		log.Fatalf("Failed to init asset store client: %v", err)
	}
	controllers.Setup(cfg, uploader)

	r := routes.SetupRouter()

	log.Printf("Starting server on %s", cfg.ListenAddr)
	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
