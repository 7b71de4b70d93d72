package main

import (
	"context"
	"fmt"
	"log"

	"github.com/Xebarter/Manziz/configs"
	"github.com/Xebarter/Manziz/middlewares"
	"github.com/Xebarter/Manziz/realtime"
	"github.com/Xebarter/Manziz/routes"
	"github.com/Xebarter/Manziz/storage"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	if err := configs.ConnectionDB(cfg); err != nil {
		log.Fatal(err)
	}
	db := configs.DB()

	// migrate + seed
	if err := configs.SetupDatabase(); err != nil {
		log.Fatalf("migrate failed: %v", err)
	}
	if err := configs.SeedAdmin(cfg); err != nil {
		log.Fatalf("seed admin failed: %v", err)
	}
	if err := configs.SeedMenu(); err != nil {
		log.Fatalf("seed menu failed: %v", err)
	}

	// realtime change feeds
	hub := realtime.NewHub()
	go hub.Run()

	// uploads
	uploader, err := buildUploader(cfg)
	if err != nil {
		log.Fatalf("storage init failed: %v", err)
	}

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())

	// Serve local uploads (menu images)
	if cfg.StorageDriver == "local" {
		r.Static("/uploads", cfg.UploadDir)
	}

	routes.RegisterRoutes(r, db, cfg, hub, uploader)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}

func buildUploader(cfg *configs.Config) (storage.Uploader, error) {
	if cfg.StorageDriver == "s3" {
		return storage.NewS3(context.Background(), cfg.S3Bucket, cfg.S3Region)
	}
	return storage.NewLocal(cfg.UploadDir, "/uploads"), nil
}
