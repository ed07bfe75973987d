package main

import (
	"fmt"
	"log"

	"github.com/ArrowAk07/Green-Chilli/configs"
	"github.com/ArrowAk07/Green-Chilli/middlewares"
	"github.com/ArrowAk07/Green-Chilli/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	configs.ConnectionDB(cfg.DBSource)
	db := configs.DB()

	// migrate
	configs.SetupDatabase()

	if err := configs.SeedAdmin(cfg); err != nil {
		log.Fatalf("seed admin failed: %v", err)
	}
	if err := configs.SeedMenu(); err != nil {
		log.Fatalf("seed menu failed: %v", err)
	}

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())

	routes.RegisterRoutes(r, db, cfg)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("Green Chilli server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
