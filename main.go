package main

import (
	"log"
	"log/slog"
	"os"

	"campusfood/configs"
	"campusfood/middlewares"
	"campusfood/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	if err := configs.ConnectDB(cfg.DBSource); err != nil {
		log.Fatalf("connect database: %v", err)
	}
	if err := configs.SetupDatabase(); err != nil {
		log.Fatalf("migrate database: %v", err)
	}
	if cfg.SeedDemoData {
		if err := configs.SeedDemo(); err != nil {
			log.Fatalf("seed demo data: %v", err)
		}
	}

	r := gin.New()
	r.Use(middlewares.RequestLogger(logger))
	r.Use(gin.Recovery())
	r.Use(middlewares.CORSMiddleware(cfg.CORSOrigins))

	routes.RegisterRoutes(r, configs.DB(), cfg, logger)

	addr := ":" + cfg.Port
	log.Println("server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
