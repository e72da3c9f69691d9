package main

import (
	"log"
	"time"

	"greencouncil-api/config"
	"greencouncil-api/database"
	routes "greencouncil-api/internal/app/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadEnv()

	if !config.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.Connect(config.DB_URL)
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}
	defer database.Close(db)

	if err := database.Migrate(db); err != nil {
		log.Fatal("Migration failed: ", err)
	}
	if err := database.SeedAdmin(db); err != nil {
		log.Fatal("Admin seed failed: ", err)
	}
	if config.SEED_DEMO_DATA {
		if err := database.SeedDemoData(db); err != nil {
			log.Fatal("Demo data seed failed: ", err)
		}
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.CORS_ORIGIN},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.RegisterRoutes(r, db, time.Now())

	if err := r.Run(":" + config.PORT); err != nil {
		log.Fatal("Server stopped: ", err)
	}
}
